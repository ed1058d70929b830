package record

import (
	"context"
	"errors"

	"github.com/NandoXu/ig-reels-analytics/internal/domain"
)

var (
	ErrNotFound    = errors.New("record not found")
	ErrInvalidLink = errors.New("no shortcode derivable from link")
)

//go:generate go run go.uber.org/mock/mockgen -source=record.go -destination=mocks/mock.go -package=mocks
type Repository interface {
	// Upsert stores the record keyed by shortcode, replacing any previous
	// scrape of the same post.
	Upsert(ctx context.Context, rec *domain.PostResult) error

	// ListAll returns every stored record, most recent scrape first.
	ListAll(ctx context.Context) ([]*domain.PostResult, error)

	// GetByShortcode returns one stored record or ErrNotFound.
	GetByShortcode(ctx context.Context, shortcode string) (*domain.PostResult, error)

	// DeleteByLink re-derives the shortcode from the link and removes the
	// matching record. A missing record is a warn-level no-op; a link with
	// no derivable shortcode is ErrInvalidLink.
	DeleteByLink(ctx context.Context, link string) error
}
