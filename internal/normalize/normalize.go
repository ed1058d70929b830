// Package normalize holds the text and number helpers shared by every
// extraction path: shortcode derivation from post links, human-abbreviated
// count parsing and the engagement-rate formula.
package normalize

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/NandoXu/ig-reels-analytics/internal/domain"
)

var (
	bareShortcodeRe = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
	urlShortcodeRe  = regexp.MustCompile(`/(?:p|reel|reels)/([A-Za-z0-9_-]+)`)

	// NumericTextRe matches a bare human-readable counter such as "14,886"
	// or "10.5K". DOM strategies use it to pick number-only text nodes.
	NumericTextRe = regexp.MustCompile(`(?i)^\d[\d.,]*[kmb]?$`)
)

// ExtractShortcode derives the post identifier from a post link. Inputs that
// already look like a bare shortcode pass through unchanged; otherwise the
// path segment after /p/, /reel/ or /reels/ is taken. The empty string means
// no shortcode could be derived.
func ExtractShortcode(url string) string {
	if bareShortcodeRe.MatchString(url) {
		return url
	}
	if m := urlShortcodeRe.FindStringSubmatch(url); m != nil {
		return m[1]
	}
	return ""
}

// ParseCount converts an abbreviated counter ("10.5K", "1,234", "2M likes")
// to an integer. The suffix multipliers k, m and b apply to the preceding
// decimal. The second return is false when the text has no parseable number.
func ParseCount(text string) (int64, bool) {
	t := strings.ToLower(strings.TrimSpace(text))
	t = strings.ReplaceAll(t, ",", "")
	for _, word := range []string{"likes", "like", "views", "view"} {
		t = strings.TrimSpace(strings.TrimSuffix(t, word))
	}

	multiplier := float64(1)
	switch {
	case strings.Contains(t, "k"):
		multiplier = 1_000
		t = strings.ReplaceAll(t, "k", "")
	case strings.Contains(t, "m"):
		multiplier = 1_000_000
		t = strings.ReplaceAll(t, "m", "")
	case strings.Contains(t, "b"):
		multiplier = 1_000_000_000
		t = strings.ReplaceAll(t, "b", "")
	}

	t = strings.TrimSpace(t)
	if t == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(t, 64)
	if err != nil {
		return 0, false
	}
	return int64(f * multiplier), true
}

// EngagementRate computes (likes+comments)/views*100 rounded to two decimal
// places. It is computable only when likes and comments are known and views
// is a known positive integer.
func EngagementRate(likes, comments, views domain.Count) domain.Rate {
	if !likes.Known() || !comments.Known() {
		return domain.UnknownRate()
	}
	if !views.Known() || views.Value() <= 0 {
		return domain.UnknownRate()
	}
	er := float64(likes.Value()+comments.Value()) / float64(views.Value()) * 100
	return domain.RateOf(math.Round(er*100) / 100)
}
