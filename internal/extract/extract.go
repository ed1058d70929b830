// Package extract defines the contract shared by every extraction strategy:
// an attempt either yields an integer metric or a kind-tagged Failure. The
// orchestrator branches on the failure being nil, never on string sniffing.
package extract

import (
	"context"
	"fmt"
)

// Kind classifies why an extraction attempt failed.
type Kind string

const (
	// KindConfig means the extractor is not runnable at all (browser binary
	// or driver missing).
	KindConfig Kind = "config"
	// KindSetup means the automation runtime failed to start.
	KindSetup Kind = "driver setup"
	// KindBlocked means a login wall, challenge or block page was detected.
	KindBlocked Kind = "blocked"
	// KindHTTP covers transport failures and non-200 responses.
	KindHTTP Kind = "http"
	// KindNoPayload means the expected embedded JSON payload was absent.
	KindNoPayload Kind = "no shared data"
	// KindParse means a payload was found but could not be decoded.
	KindParse Kind = "parse"
	// KindNotFound means the target element or shortcode was never located,
	// even after exhausting the scroll and strategy budget.
	KindNotFound Kind = "not found"
	// KindMissingField means the payload had no usable metric for the target.
	KindMissingField Kind = "missing field"
	// KindExtract wraps DOM-extraction failures after the container was found.
	KindExtract Kind = "extract"
	// KindInternal wraps unexpected errors caught at a stage boundary.
	KindInternal Kind = "internal"
)

// Failure describes one failed extraction attempt. A nil *Failure means
// success.
type Failure struct {
	Kind   Kind
	Detail string
}

func Failf(kind Kind, format string, args ...any) *Failure {
	return &Failure{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

func (f *Failure) String() string {
	if f == nil {
		return ""
	}
	if f.Detail == "" {
		return string(f.Kind)
	}
	return string(f.Kind) + ": " + f.Detail
}

// Error makes a Failure usable as a plain error at package boundaries that
// want one.
func (f *Failure) Error() string { return f.String() }

// Is reports whether the failure carries the given kind. Safe on nil.
func (f *Failure) Is(kind Kind) bool { return f != nil && f.Kind == kind }

//go:generate go run go.uber.org/mock/mockgen -source=extract.go -destination=mocks/mock.go -package=mocks

// LikesExtractor resolves the like count of a single post from its rendered
// post page.
type LikesExtractor interface {
	PostLikes(ctx context.Context, postURL, shortcode string) (int64, *Failure)
}

// DirectViewsExtractor resolves the view count from the public post page
// without browser automation. Cheapest and least reliable path.
type DirectViewsExtractor interface {
	Views(ctx context.Context, postURL, shortcode string) (int64, *Failure)
}

// GridViewsExtractor resolves the view count from the owner's video-grid
// listing, scrolling until the target tile appears.
type GridViewsExtractor interface {
	GridViews(ctx context.Context, shortcode, owner string) (int64, *Failure)
}
