package fx

import (
	"github.com/NandoXu/ig-reels-analytics/internal/repositories/record"
	"go.uber.org/fx"
)

var Module = fx.Options(
	record.Module,
)
