package browser

import (
	"context"
	"fmt"
	"time"

	"github.com/NandoXu/ig-reels-analytics/internal/extract"
	"github.com/playwright-community/playwright-go"
)

// GridViews renders the owner's reels grid, scrolls until the target tile
// is loaded and parses the view count out of the tile's markup.
func (s *Scraper) GridViews(ctx context.Context, shortcode, owner string) (fViews int64, fFail *extract.Failure) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("Panic in grid views extraction", "shortcode", shortcode, "panic", r)
			fViews, fFail = 0, extract.Failf(extract.KindInternal, "grid extraction panicked: %v", r)
		}
	}()

	gridURL := fmt.Sprintf("https://www.instagram.com/%s/reels/", owner)
	s.logger.Info("Scraping views from reels grid", "shortcode", shortcode, "owner", owner)

	sess, cleanup, fail := s.newSession(ctx, gridURL)
	if fail != nil {
		return 0, fail
	}
	defer cleanup()

	if fail := sess.checkBlocked(); fail != nil {
		return 0, fail
	}
	sess.dismissCookieBanner()

	tileSelector := fmt.Sprintf(`a[href*="/reel/%s/"]`, shortcode)
	if found := sess.scrollUntilPresent(ctx, tileSelector); !found {
		return 0, extract.Failf(extract.KindNotFound,
			"reel %s not in grid after exhausting scroll budget", shortcode)
	}

	container, fail := sess.tileContainer(shortcode)
	if fail != nil {
		return 0, fail
	}

	html, err := outerHTML(container)
	if err != nil || html == "" {
		return 0, extract.Failf(extract.KindExtract, "could not read tile markup: %v", err)
	}

	views, strategy, ok := viewsFromFragment(html)
	if !ok {
		return 0, extract.Failf(extract.KindExtract,
			"no view element matched in tile for %s", shortcode)
	}

	s.logger.Info("Views extracted from grid", "shortcode", shortcode, "views", views, "strategy", strategy)
	return views, nil
}

// scrollUntilPresent scrolls to the bottom repeatedly until the selector
// matches. Two stall counters guard the exit: page height can stop growing
// while same-height tiles still stream in, and tile count can stall while
// the page is still reflowing, so both must exceed their thresholds before
// giving up. The total-scroll ceiling is the hard stop.
func (sess *session) scrollUntilPresent(ctx context.Context, selector string) bool {
	cfg := sess.config.Scraper

	lastHeight := -1.0
	lastTileCount := -1
	stallScrolls := 0
	staleElementScrolls := 0
	totalScrolls := 0

	for {
		if ctx.Err() != nil {
			return false
		}

		if _, err := sess.page.Evaluate(`window.scrollTo(0, document.body.scrollHeight)`); err != nil {
			sess.logger.Debug("Scroll evaluate failed", "error", err)
		}
		// Fixed pause trading wall-clock time for reliability against the
		// lazy-loading grid.
		time.Sleep(cfg.ScrollPause)

		count, err := sess.page.Locator(selector).Count()
		if err == nil && count > 0 {
			sess.logger.Info("Target tile located after scrolling", "scrolls", totalScrolls)
			return true
		}

		rawHeight, _ := sess.page.Evaluate(`document.body.scrollHeight`)
		height := asFloat(rawHeight)
		if height == lastHeight {
			stallScrolls++
		} else {
			stallScrolls = 0
		}
		lastHeight = height

		tileCount, err := sess.page.Locator(`a[href*="/reel/"]`).Count()
		if err == nil {
			if tileCount == lastTileCount {
				staleElementScrolls++
			} else {
				staleElementScrolls = 0
			}
			lastTileCount = tileCount
		}
		totalScrolls++

		if (stallScrolls >= cfg.MaxStallScrolls && staleElementScrolls >= cfg.MaxStaleElementScrolls) ||
			totalScrolls >= cfg.MaxTotalScrolls {
			sess.logger.Warn("Scroll budget exhausted",
				"total_scrolls", totalScrolls,
				"stall_scrolls", stallScrolls,
				"stale_element_scrolls", staleElementScrolls)
			return false
		}
	}
}

// tileContainerPaths ascend from the tile link to its structural container,
// most specific first.
var tileContainerPaths = []string{
	`xpath=//a[contains(@href, "/reel/%s/")]/ancestor::div[@role="link" or @role="button" or @tabindex="0"][1]`,
	`xpath=//a[contains(@href, "/reel/%s/")]/ancestor::div[starts-with(@class, "x")][1]`,
	`xpath=//a[contains(@href, "/reel/%s/")]/..`,
}

func (sess *session) tileContainer(shortcode string) (playwright.Locator, *extract.Failure) {
	for _, path := range tileContainerPaths {
		loc := sess.page.Locator(fmt.Sprintf(path, shortcode))
		n, err := loc.Count()
		if err != nil || n == 0 {
			continue
		}
		return loc.First(), nil
	}
	return nil, extract.Failf(extract.KindExtract, "no containing block found for tile %s", shortcode)
}
