package direct

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/NandoXu/ig-reels-analytics/internal/extract"
	"github.com/NandoXu/ig-reels-analytics/pkg/config"
	"github.com/NandoXu/ig-reels-analytics/pkg/logger"
	"github.com/stretchr/testify/require"
)

func newExtractor(t *testing.T) *Extractor {
	t.Helper()
	cfg := &config.Config{}
	cfg.Scraper.RequestTimeout = 5 * time.Second
	cfg.Scraper.UserAgent = "test-agent"
	return New(Opts{Config: cfg, Logger: logger.New(logger.Opts{})})
}

func page(sharedData string) string {
	return fmt.Sprintf(`<html><head><script type="text/javascript">window._sharedData = %s;</script></head><body></body></html>`, sharedData)
}

func TestViews(t *testing.T) {
	body := page(`{"entry_data":{"PostPage":[{"graphql":{"shortcode_media":{"shortcode":"abc123","video_view_count":4521}}}]}}`)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, body)
	}))
	defer srv.Close()

	views, fail := newExtractor(t).Views(context.Background(), srv.URL, "abc123")
	require.Nil(t, fail)
	require.Equal(t, int64(4521), views)
}

func TestViewsPlayCountFallback(t *testing.T) {
	body := page(`{"items":[{"shortcode":"abc123","play_count":900}]}`)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, body)
	}))
	defer srv.Close()

	views, fail := newExtractor(t).Views(context.Background(), srv.URL, "abc123")
	require.Nil(t, fail)
	require.Equal(t, int64(900), views)
}

func TestViewsNoSharedData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<html><body>login required</body></html>")
	}))
	defer srv.Close()

	_, fail := newExtractor(t).Views(context.Background(), srv.URL, "abc123")
	require.True(t, fail.Is(extract.KindNoPayload))
}

func TestViewsBadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, page(`{"broken": }`))
	}))
	defer srv.Close()

	_, fail := newExtractor(t).Views(context.Background(), srv.URL, "abc123")
	require.True(t, fail.Is(extract.KindParse))
}

func TestViewsShortcodeAbsent(t *testing.T) {
	body := page(`{"entry_data":{"PostPage":[{"graphql":{"shortcode_media":{"shortcode":"other","video_view_count":10}}}]}}`)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, body)
	}))
	defer srv.Close()

	_, fail := newExtractor(t).Views(context.Background(), srv.URL, "abc123")
	require.True(t, fail.Is(extract.KindNotFound))
}

func TestViewsNoViewField(t *testing.T) {
	body := page(`{"entry_data":{"PostPage":[{"graphql":{"shortcode_media":{"shortcode":"abc123","display_url":"x"}}}]}}`)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, body)
	}))
	defer srv.Close()

	_, fail := newExtractor(t).Views(context.Background(), srv.URL, "abc123")
	require.True(t, fail.Is(extract.KindMissingField))
}

func TestViewsHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, fail := newExtractor(t).Views(context.Background(), srv.URL, "abc123")
	require.True(t, fail.Is(extract.KindHTTP))
}

func TestFindViewCountDeepNesting(t *testing.T) {
	tree := map[string]any{
		"a": []any{
			map[string]any{"shortcode": "zzz", "video_view_count": float64(1)},
			map[string]any{
				"b": map[string]any{"shortcode": "target", "play_count": float64(333)},
			},
		},
	}
	views, found := findViewCount(tree, "target")
	require.True(t, found)
	require.Equal(t, int64(333), views)
}
