package record

import (
	"go.uber.org/fx"
)

var Module = fx.Module("record_repository",
	fx.Provide(
		NewSQLite,
		fx.Annotate(
			func(repo *SQLite) Repository {
				return repo
			},
			fx.As(new(Repository)),
		),
	),
)
