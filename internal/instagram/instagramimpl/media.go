package instagramimpl

import (
	"context"
	"fmt"
	"time"

	"github.com/Davincible/goinsta/v3"
	"github.com/NandoXu/ig-reels-analytics/internal/domain"
	"github.com/NandoXu/ig-reels-analytics/internal/instagram"
)

const videoMediaType = 2

// MediaInfo resolves the post object for a shortcode and pulls the metadata
// subset every later pipeline stage depends on. Any failure here means the
// post object is unreachable and is terminal for the scrape.
func (ig *IgImpl) MediaInfo(ctx context.Context, shortcode string) (*instagram.Media, error) {
	type outcome struct {
		media *instagram.Media
		err   error
	}

	done := make(chan outcome, 1)

	go func() {
		defer func() {
			// goinsta panics on some malformed responses; fold those into
			// the same unavailable error the caller already handles.
			if r := recover(); r != nil {
				done <- outcome{err: fmt.Errorf("%w: panic fetching %s: %v", instagram.ErrMediaUnavailable, shortcode, r)}
			}
		}()
		done <- outcome{media: ig.fetchMedia(shortcode)}
	}()

	select {
	case out := <-done:
		if out.err != nil {
			return nil, out.err
		}
		if out.media == nil {
			return nil, fmt.Errorf("%w: %s", instagram.ErrMediaUnavailable, shortcode)
		}
		return out.media, nil
	case <-ctx.Done():
		return nil, fmt.Errorf("fetching media %s: %w", shortcode, ctx.Err())
	}
}

func (ig *IgImpl) fetchMedia(shortcode string) *instagram.Media {
	mediaID, err := goinsta.MediaIDFromShortID(shortcode)
	if err != nil {
		ig.Logger.Warn("Could not derive media id", "shortcode", shortcode, "error", err)
		return nil
	}

	feed, err := ig.Client.GetMedia(mediaID)
	if err != nil {
		ig.Logger.Warn("Media fetch failed", "shortcode", shortcode, "error", err)
		return nil
	}
	if feed == nil || len(feed.Items) == 0 {
		ig.Logger.Warn("Media fetch returned no items", "shortcode", shortcode)
		return nil
	}

	item := feed.Items[0]

	media := &instagram.Media{
		Shortcode: shortcode,
		Owner:     domain.Unknown,
		Likes:     domain.UnknownCount(),
		Comments:  domain.UnknownCount(),
		IsVideo:   item.MediaType == videoMediaType,
	}

	if item.User.Username != "" {
		media.Owner = item.User.Username
	}
	if item.Likes >= 0 {
		media.Likes = domain.CountOf(int64(item.Likes))
	}
	if item.CommentCount >= 0 {
		media.Comments = domain.CountOf(int64(item.CommentCount))
	}
	if item.TakenAt > 0 {
		media.TakenAt = time.Unix(item.TakenAt, 0).UTC()
	}

	return media
}
