package pipelineimpl

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/NandoXu/ig-reels-analytics/internal/domain"
	"github.com/NandoXu/ig-reels-analytics/internal/extract"
	"github.com/NandoXu/ig-reels-analytics/internal/instagram"
	"github.com/NandoXu/ig-reels-analytics/internal/normalize"
	"github.com/NandoXu/ig-reels-analytics/internal/pipeline"
	"github.com/NandoXu/ig-reels-analytics/internal/repositories/record"
	"github.com/NandoXu/ig-reels-analytics/internal/status"
	"github.com/NandoXu/ig-reels-analytics/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Instagram instagram.Client
	Likes     extract.LikesExtractor
	Direct    extract.DirectViewsExtractor
	Grid      extract.GridViewsExtractor
	Records   record.Repository
	Status    status.Sink
	Logger    logger.Logger
}

type PipelineImpl struct {
	Instagram instagram.Client
	Likes     extract.LikesExtractor
	Direct    extract.DirectViewsExtractor
	Grid      extract.GridViewsExtractor
	Records   record.Repository
	Status    status.Sink
	Logger    logger.Logger
}

func New(opts Opts) *PipelineImpl {
	return &PipelineImpl{
		Instagram: opts.Instagram,
		Likes:     opts.Likes,
		Direct:    opts.Direct,
		Grid:      opts.Grid,
		Records:   opts.Records,
		Status:    opts.Status,
		Logger:    opts.Logger.WithComponent("Pipeline"),
	}
}

var _ pipeline.Client = (*PipelineImpl)(nil)

// Scrape runs the stage sequence for one post: identifier, session, metadata,
// likes, views, engagement rate. Only an unparseable identifier or a fully
// unresolvable media object abort the run; every other failure is appended to
// the record's error trail and the remaining stages still execute.
func (p *PipelineImpl) Scrape(ctx context.Context, url, username string) *domain.PostResult {
	rec := domain.NewPostResult(url)

	shortcode := normalize.ExtractShortcode(url)
	if shortcode == "" {
		rec.AppendErrorf("invalid identifier: no shortcode in %q", url)
		return p.finish(rec, "")
	}
	rec.Shortcode = shortcode
	postURL := canonicalURL(url, shortcode)
	rec.URL = postURL

	p.Status.Notify(fmt.Sprintf("Scraping %s", shortcode))
	p.loadSession(rec, username)

	media, err := p.Instagram.MediaInfo(ctx, shortcode)
	if err != nil {
		rec.AppendErrorf("metadata: %v", err)
		p.Logger.Error("Metadata fetch failed", "shortcode", shortcode, "error", err)
		return p.finish(rec, shortcode)
	}
	metadataLikes := p.applyMedia(rec, media)

	likes, fail := p.Likes.PostLikes(ctx, postURL, shortcode)
	if fail == nil {
		rec.Likes = domain.CountOf(likes)
	} else {
		rec.Likes = metadataLikes
		rec.AppendError(fail.String())
		p.Logger.Warn("Likes extraction failed", "shortcode", shortcode, "failure", fail.String())
	}

	p.resolveViews(ctx, rec, postURL, shortcode)

	rec.EngagementRate = normalize.EngagementRate(rec.Likes, rec.Comments, rec.Views)
	return p.finish(rec, shortcode)
}

func (p *PipelineImpl) ScrapeAndStore(ctx context.Context, url, username string) (*domain.PostResult, error) {
	rec := p.Scrape(ctx, url, username)
	if rec.Shortcode == "" {
		return rec, record.ErrInvalidLink
	}
	if err := p.Records.Upsert(ctx, rec); err != nil {
		p.Logger.Error("Failed to store record", "shortcode", rec.Shortcode, "error", err)
		return rec, err
	}
	return rec, nil
}

func (p *PipelineImpl) Batch(ctx context.Context, urls []string, username string) ([]*domain.PostResult, error) {
	records := make([]*domain.PostResult, 0, len(urls))
	for i, url := range urls {
		if err := ctx.Err(); err != nil {
			return records, err
		}
		p.Status.Notify(fmt.Sprintf("Batch %d/%d: %s", i+1, len(urls), url))
		rec, err := p.ScrapeAndStore(ctx, url, username)
		if err != nil {
			p.Logger.Warn("Batch item not stored", "url", url, "error", err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func (p *PipelineImpl) loadSession(rec *domain.PostResult, username string) {
	if username == "" {
		return
	}
	err := p.Instagram.UseSession(username)
	switch {
	case err == nil:
		p.Status.Notify(fmt.Sprintf("Using session for %s", username))
	case errors.Is(err, instagram.ErrSessionNotFound), errors.Is(err, instagram.ErrSessionInvalid):
		p.Logger.Warn("Session unavailable, continuing anonymously", "username", username, "error", err)
		p.Status.Notify(fmt.Sprintf("No usable session for %s, continuing anonymously", username))
	default:
		rec.AppendErrorf("session: %v", err)
		p.Logger.Warn("Session load failed, continuing anonymously", "username", username, "error", err)
	}
}

// applyMedia copies resolved metadata onto the record and returns the
// metadata like count, kept aside as the fallback for the likes stage.
func (p *PipelineImpl) applyMedia(rec *domain.PostResult, media *instagram.Media) domain.Count {
	if media.Owner != "" {
		rec.Owner = media.Owner
	}
	rec.Comments = media.Comments
	rec.IsVideo = media.IsVideo
	if !media.TakenAt.IsZero() {
		rec.PostDate = domain.PostDateOf(media.TakenAt)
	}
	return media.Likes
}

func (p *PipelineImpl) resolveViews(ctx context.Context, rec *domain.PostResult, postURL, shortcode string) {
	if !rec.IsVideo {
		rec.Views = domain.NotApplicableCount()
		return
	}

	views, fail := p.Direct.Views(ctx, postURL, shortcode)
	if fail == nil {
		rec.Views = domain.CountOf(views)
		return
	}
	rec.AppendError(fail.String())
	p.Logger.Warn("Direct view fetch failed", "shortcode", shortcode, "failure", fail.String())

	if rec.Owner == domain.Unknown {
		const msg = "blocked: owner unknown"
		rec.AppendError(msg)
		rec.Views = domain.UnknownCountBecause(msg)
		return
	}

	views, fail = p.Grid.GridViews(ctx, shortcode, rec.Owner)
	if fail == nil {
		rec.Views = domain.CountOf(views)
		return
	}
	rec.AppendError(fail.String())
	rec.Views = domain.UnknownCountBecause(fail.String())
	p.Logger.Warn("Grid view extraction failed", "shortcode", shortcode, "failure", fail.String())
}

func (p *PipelineImpl) finish(rec *domain.PostResult, shortcode string) *domain.PostResult {
	rec.LastRecord = time.Now().UTC()
	target := shortcode
	if target == "" {
		target = rec.URL
	}
	if rec.Failed() {
		p.Status.Notify(fmt.Sprintf("Scrape completed with errors for %s", target))
	} else {
		p.Status.Notify(fmt.Sprintf("Scrape complete for %s", target))
	}
	return rec
}

// canonicalURL keeps a full post link as given and expands a bare shortcode
// into the public post URL.
func canonicalURL(input, shortcode string) string {
	if strings.Contains(input, "instagram.com") {
		return input
	}
	return fmt.Sprintf("https://www.instagram.com/p/%s/", shortcode)
}
