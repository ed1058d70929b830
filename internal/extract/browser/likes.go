package browser

import (
	"context"
	"strings"

	"github.com/NandoXu/ig-reels-analytics/internal/extract"
	"github.com/NandoXu/ig-reels-analytics/internal/normalize"
	"github.com/playwright-community/playwright-go"
)

// likesStrategy is one attempt at reading the like count off a rendered
// post page. Strategies run in strict priority order; first parse wins.
type likesStrategy struct {
	name  string
	probe func(sess *session) (int64, bool)
}

var likesStrategies = []likesStrategy{
	{name: "structural-path", probe: likesByStructuralPath},
	{name: "likes-text", probe: likesByText},
	{name: "like-icon", probe: likesByIconAnchor},
	{name: "page-source", probe: likesByPageSource},
	{name: "smallest-numeric", probe: likesBySmallestNumeric},
}

// PostLikes renders the single-post page and walks the likes strategies.
func (s *Scraper) PostLikes(ctx context.Context, postURL, shortcode string) (fLikes int64, fFail *extract.Failure) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("Panic in likes extraction", "shortcode", shortcode, "panic", r)
			fLikes, fFail = 0, extract.Failf(extract.KindInternal, "likes extraction panicked: %v", r)
		}
	}()

	s.logger.Info("Scraping likes from post page", "shortcode", shortcode)

	sess, cleanup, fail := s.newSession(ctx, postURL)
	if fail != nil {
		return 0, fail
	}
	defer cleanup()

	if fail := sess.checkBlocked(); fail != nil {
		return 0, fail
	}
	sess.dismissCookieBanner()

	for _, strategy := range likesStrategies {
		likes, ok := strategy.probe(sess)
		if !ok {
			continue
		}
		s.logger.Info("Likes extracted", "shortcode", shortcode, "likes", likes, "strategy", strategy.name)
		return likes, nil
	}

	return 0, extract.Failf(extract.KindNotFound, "no likes element matched for %s", shortcode)
}

// Historically accurate element paths. Brittle: any markup shuffle breaks
// them, which is why the later strategies exist.
var likesStructuralPaths = []string{
	`xpath=//section//a[contains(@href, "/liked_by/")]//span//span`,
	`xpath=//main//section//div[@role="button"]//span[contains(@class, "html-span")]`,
}

func likesByStructuralPath(sess *session) (int64, bool) {
	for _, path := range likesStructuralPaths {
		loc := sess.page.Locator(path)
		n, err := loc.Count()
		if err != nil || n == 0 {
			continue
		}
		text, err := loc.First().InnerText(playwright.LocatorInnerTextOptions{
			Timeout: playwright.Float(2000),
		})
		if err != nil {
			continue
		}
		if likes, ok := normalize.ParseCount(text); ok {
			return likes, true
		}
	}
	return 0, false
}

// likesByText sweeps elements whose text or accessibility label mentions
// "likes", skipping anything that also mentions views.
func likesByText(sess *session) (int64, bool) {
	labelled, err := sess.page.Locator(`[aria-label*="likes" i]`).All()
	if err == nil {
		for _, loc := range labelled {
			label, err := loc.GetAttribute("aria-label")
			if err != nil || label == "" {
				continue
			}
			if strings.Contains(strings.ToLower(label), "view") {
				continue
			}
			if likes, ok := firstCountIn(label); ok {
				return likes, true
			}
		}
	}

	spans, err := sess.page.Locator(`span:has-text("likes")`).All()
	if err != nil {
		return 0, false
	}
	for _, loc := range spans {
		text, err := loc.InnerText(playwright.LocatorInnerTextOptions{
			Timeout: playwright.Float(1000),
		})
		if err != nil {
			continue
		}
		lowered := strings.ToLower(text)
		if !strings.Contains(lowered, "likes") || strings.Contains(lowered, "view") {
			continue
		}
		if likes, ok := firstCountIn(text); ok {
			return likes, true
		}
	}
	return 0, false
}

// likesByIconAnchor finds the like icon and inspects the surrounding text
// for a counter.
func likesByIconAnchor(sess *session) (int64, bool) {
	anchors := []string{
		`xpath=(//*[name()="svg"][contains(@aria-label, "Like") or contains(@aria-label, "like")])[1]/ancestor::section[1]`,
		`xpath=(//*[name()="svg"][contains(@aria-label, "Like") or contains(@aria-label, "like")])[1]/ancestor::div[2]`,
	}
	for _, anchor := range anchors {
		loc := sess.page.Locator(anchor)
		n, err := loc.Count()
		if err != nil || n == 0 {
			continue
		}
		text, err := loc.First().InnerText(playwright.LocatorInnerTextOptions{
			Timeout: playwright.Float(2000),
		})
		if err != nil {
			continue
		}
		for _, line := range strings.Fields(text) {
			if strings.Contains(strings.ToLower(line), "view") {
				continue
			}
			if normalize.NumericTextRe.MatchString(line) {
				if likes, ok := normalize.ParseCount(line); ok {
					return likes, true
				}
			}
		}
	}
	return 0, false
}

func likesByPageSource(sess *session) (int64, bool) {
	content, err := sess.page.Content()
	if err != nil {
		return 0, false
	}
	return likesFromSource(content)
}

func likesBySmallestNumeric(sess *session) (int64, bool) {
	content, err := sess.page.Content()
	if err != nil {
		return 0, false
	}
	return smallestNumericText(content)
}
