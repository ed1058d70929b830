// Package browser drives a real Chromium instance for the two extraction
// modes that need a rendered DOM: like counts from a single post page and
// view counts from the owner's reels grid. It is the most expensive and
// most fragile path, so every failure is folded into an extract.Failure and
// the browser process is torn down on every exit.
package browser

import (
	"context"
	"os"
	"runtime/debug"
	"strings"
	"time"

	"github.com/NandoXu/ig-reels-analytics/internal/extract"
	"github.com/NandoXu/ig-reels-analytics/pkg/config"
	"github.com/NandoXu/ig-reels-analytics/pkg/logger"
	"github.com/NandoXu/ig-reels-analytics/pkg/retry"
	"github.com/playwright-community/playwright-go"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

type Scraper struct {
	config *config.Config
	logger logger.Logger
}

func New(opts Opts) *Scraper {
	return &Scraper{
		config: opts.Config,
		logger: opts.Logger.WithComponent("BrowserScraper"),
	}
}

var (
	_ extract.LikesExtractor     = (*Scraper)(nil)
	_ extract.GridViewsExtractor = (*Scraper)(nil)
)

// session is one throwaway browser process. Either scraping mode launches a
// fresh one and tears it down unconditionally when done.
type session struct {
	pw      *playwright.Playwright
	browser playwright.BrowserContext
	page    playwright.Page
	logger  logger.Logger
	config  *config.Config
}

// newSession launches a headless persistent-profile browser and navigates
// to url. The returned cleanup func is safe to defer on every path,
// including partial setup failures.
func (s *Scraper) newSession(ctx context.Context, url string) (*session, func(), *extract.Failure) {
	cfg := s.config.Browser

	if cfg.ExecutablePath != "" {
		if _, err := os.Stat(cfg.ExecutablePath); err != nil {
			return nil, func() {}, extract.Failf(extract.KindConfig,
				"browser binary not found at %s", cfg.ExecutablePath)
		}
	}
	if err := os.MkdirAll(cfg.UserDataDir, 0o755); err != nil {
		return nil, func() {}, extract.Failf(extract.KindConfig,
			"cannot create user data dir %s: %v", cfg.UserDataDir, err)
	}

	pw, err := playwright.Run()
	if err != nil {
		return nil, func() {}, extract.Failf(extract.KindSetup, "could not start playwright: %v", err)
	}

	launchOpts := playwright.BrowserTypeLaunchPersistentContextOptions{
		Headless: playwright.Bool(cfg.Headless),
		Args: []string{
			"--window-size=1920,1080",
			"--no-sandbox",
			"--disable-setuid-sandbox",
			"--disable-dev-shm-usage",
			"--disable-gpu",
		},
		UserAgent: playwright.String(s.config.Scraper.UserAgent),
	}
	if cfg.ExecutablePath != "" {
		launchOpts.ExecutablePath = playwright.String(cfg.ExecutablePath)
	}

	browser, err := pw.Chromium.LaunchPersistentContext(cfg.UserDataDir, launchOpts)
	if err != nil {
		_ = pw.Stop()
		return nil, func() {}, extract.Failf(extract.KindSetup, "could not launch browser: %v", err)
	}

	cleanup := func() {
		if err := browser.Close(); err != nil {
			s.logger.Debug("Error closing browser context", "error", err)
		}
		if err := pw.Stop(); err != nil {
			s.logger.Debug("Error stopping playwright", "error", err)
		}
		debug.FreeOSMemory()
	}

	page, err := browser.NewPage()
	if err != nil {
		cleanup()
		return nil, func() {}, extract.Failf(extract.KindSetup, "could not create page: %v", err)
	}

	sess := &session{
		pw:      pw,
		browser: browser,
		page:    page,
		logger:  s.logger,
		config:  s.config,
	}

	gotoOperation := func() error {
		_, err := page.Goto(url, playwright.PageGotoOptions{
			Timeout: playwright.Float(float64(cfg.NavigationTimeout.Milliseconds())),
		})
		return err
	}
	if err := retry.Do(ctx, s.logger, "PageGoto", gotoOperation, retry.DefaultConfig()); err != nil {
		cleanup()
		return nil, func() {}, extract.Failf(extract.KindSetup,
			"could not open %s after retries: %v", url, err)
	}

	// Let the initial scripts settle before reading the page.
	time.Sleep(3 * time.Second)

	return sess, cleanup, nil
}

var (
	blockedURLMarkers  = []string{"login", "challenge"}
	blockedPageMarkers = []string{"login_required", "security check", "something went wrong"}
)

// checkBlocked detects login walls, challenges and block pages. A blocked
// session is terminated immediately; it must never be retried interactively.
func (sess *session) checkBlocked() *extract.Failure {
	currentURL := strings.ToLower(sess.page.URL())
	for _, marker := range blockedURLMarkers {
		if strings.Contains(currentURL, marker) {
			return extract.Failf(extract.KindBlocked, "redirected to %s page, manual login required", marker)
		}
	}

	content, err := sess.page.Content()
	if err != nil {
		return extract.Failf(extract.KindExtract, "could not read page source: %v", err)
	}
	lowered := strings.ToLower(content)
	for _, marker := range blockedPageMarkers {
		if strings.Contains(lowered, marker) {
			return extract.Failf(extract.KindBlocked, "page shows %q, manual login required", marker)
		}
	}
	return nil
}

var cookieSelectors = []string{
	`button:has-text("Accept All")`,
	`button:has-text("Allow all cookies")`,
	`button:has-text("Allow essential and optional cookies")`,
	`div[role="dialog"] button:has-text("Accept")`,
}

// dismissCookieBanner tries the known consent-button shapes in order. The
// banner being absent is the normal case; every miss is swallowed.
func (sess *session) dismissCookieBanner() {
	timeout := playwright.Float(float64(sess.config.Browser.CookieTimeout.Milliseconds()))
	for _, selector := range cookieSelectors {
		err := sess.page.Locator(selector).First().Click(playwright.LocatorClickOptions{
			Timeout: timeout,
		})
		if err == nil {
			sess.logger.Debug("Cookie banner dismissed", "selector", selector)
			time.Sleep(2 * time.Second)
			return
		}
	}
}

// outerHTML reads the rendered markup of one located element.
func outerHTML(loc playwright.Locator) (string, error) {
	v, err := loc.Evaluate("el => el.outerHTML", nil)
	if err != nil {
		return "", err
	}
	html, _ := v.(string)
	return html, nil
}

// asFloat normalizes the number types playwright hands back from Evaluate.
func asFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	}
	return 0
}
