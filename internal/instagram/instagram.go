package instagram

import (
	"context"
	"errors"
	"time"

	"github.com/NandoXu/ig-reels-analytics/internal/domain"
)

var (
	// ErrSessionNotFound means no stored session exists for the username.
	// Scraping proceeds anonymously.
	ErrSessionNotFound = errors.New("session file not found")
	// ErrSessionInvalid means a stored session loaded but failed validation
	// against the API (expired cookies, network trouble). Also soft.
	ErrSessionInvalid = errors.New("session could not be validated")
	// ErrMediaUnavailable means the post object could not be resolved at
	// all. This is terminal for a scrape: every later stage needs at least
	// the owner name.
	ErrMediaUnavailable = errors.New("media unavailable")
)

// Media is the metadata subset the API client resolves for one post.
type Media struct {
	Shortcode string
	Owner     string
	Likes     domain.Count
	Comments  domain.Count
	TakenAt   time.Time
	IsVideo   bool
}

//go:generate go run go.uber.org/mock/mockgen -source=instagram.go -destination=mocks/mock.go -package=mocks
type Client interface {
	// UseSession loads the stored session for username into the client.
	// ErrSessionNotFound and ErrSessionInvalid are soft: the client stays
	// usable anonymously.
	UseSession(username string) error

	// MediaInfo fetches owner, like count, comment count, publish time and
	// the video flag for a shortcode.
	MediaInfo(ctx context.Context, shortcode string) (*Media, error)

	// Login performs a credential login and stores the session for later
	// UseSession calls.
	Login(ctx context.Context, username, password string) error

	// Logout removes the stored session for username.
	Logout(username string) error
}
