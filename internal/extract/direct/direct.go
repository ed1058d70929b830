// Package direct is the cheapest view-count path: a plain GET against the
// public post page and a walk of the embedded window._sharedData payload.
// It fails often (the payload disappears behind login walls) and the
// pipeline treats it as purely advisory.
package direct

import (
	"context"
	"encoding/json"
	"regexp"

	"github.com/NandoXu/ig-reels-analytics/internal/extract"
	"github.com/NandoXu/ig-reels-analytics/pkg/config"
	"github.com/NandoXu/ig-reels-analytics/pkg/logger"
	"github.com/go-resty/resty/v2"
	"go.uber.org/fx"
)

var sharedDataRe = regexp.MustCompile(`(?s)window\._sharedData\s*=\s*(\{.*?\});</script>`)

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

type Extractor struct {
	client *resty.Client
	logger logger.Logger
}

func New(opts Opts) *Extractor {
	client := resty.New().
		SetHeader("User-Agent", opts.Config.Scraper.UserAgent).
		SetTimeout(opts.Config.Scraper.RequestTimeout)

	return &Extractor{
		client: client,
		logger: opts.Logger.WithComponent("DirectFetch"),
	}
}

var _ extract.DirectViewsExtractor = (*Extractor)(nil)

// Views fetches the post page and reads the view count for shortcode out of
// the embedded shared-data JSON.
func (e *Extractor) Views(ctx context.Context, postURL, shortcode string) (int64, *extract.Failure) {
	e.logger.Info("Attempting direct HTML view scrape", "shortcode", shortcode)

	resp, err := e.client.R().SetContext(ctx).Get(postURL)
	if err != nil {
		return 0, extract.Failf(extract.KindHTTP, "request failed: %v", err)
	}
	if resp.StatusCode() != 200 {
		return 0, extract.Failf(extract.KindHTTP, "status %d", resp.StatusCode())
	}

	m := sharedDataRe.FindSubmatch(resp.Body())
	if m == nil {
		return 0, extract.Failf(extract.KindNoPayload, "window._sharedData not present")
	}

	var payload any
	if err := json.Unmarshal(m[1], &payload); err != nil {
		return 0, extract.Failf(extract.KindParse, "shared data decode: %v", err)
	}

	views, found := findViewCount(payload, shortcode)
	if !found {
		return 0, extract.Failf(extract.KindNotFound, "shortcode %s not in shared data", shortcode)
	}
	if views < 0 {
		return 0, extract.Failf(extract.KindMissingField, "no view count for %s", shortcode)
	}

	e.logger.Info("Views found via direct HTML", "shortcode", shortcode, "views", views)
	return views, nil
}

// findViewCount walks the decoded shared-data tree for the node whose
// shortcode matches the target. It reports (-1, true) when the node exists
// but carries no usable view counter.
func findViewCount(node any, shortcode string) (int64, bool) {
	switch v := node.(type) {
	case []any:
		for _, item := range v {
			if views, found := findViewCount(item, shortcode); found {
				return views, true
			}
		}
	case map[string]any:
		if sc, ok := v["shortcode"].(string); ok && sc == shortcode {
			for _, key := range []string{"video_view_count", "play_count"} {
				if n, ok := v[key].(float64); ok {
					return int64(n), true
				}
			}
			return -1, true
		}
		for _, value := range v {
			if views, found := findViewCount(value, shortcode); found {
				return views, true
			}
		}
	}
	return 0, false
}
