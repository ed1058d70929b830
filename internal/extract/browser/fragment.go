package browser

import (
	"regexp"
	"strings"

	"github.com/NandoXu/ig-reels-analytics/internal/normalize"
	"github.com/PuerkitoBio/goquery"
)

// viewCountClass is the CSS-class substring the grid's counter spans have
// carried historically. A/B-tested markup changes break it; it lives here,
// inside the strategy list, so it can be swapped without touching the
// orchestration.
const viewCountClass = "x1vvkbs"

var (
	viewIconRe   = regexp.MustCompile(`(?i)view count icon`)
	likesLabelRe = regexp.MustCompile(`(?i)^\d[\d.,]*[kmb]?\s*likes?$`)
)

// fragmentStrategy is one self-contained attempt at pulling a counter out
// of a rendered DOM fragment. Strategies run in priority order; the first
// parseable value wins.
type fragmentStrategy struct {
	name  string
	probe func(doc *goquery.Document) (int64, bool)
}

var viewStrategies = []fragmentStrategy{
	{name: "view-icon-sibling", probe: viewsByIconSibling},
	{name: "view-icon-class", probe: viewsByIconClass},
	{name: "class-with-floor", probe: viewsByClassWithFloor},
	{name: "largest-numeric", probe: viewsByLargestNumeric},
}

// viewsFromFragment runs the view strategies over one grid-tile fragment.
// The returned name identifies the winning strategy for the logs.
func viewsFromFragment(html string) (int64, string, bool) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return 0, "", false
	}
	for _, strategy := range viewStrategies {
		if views, ok := strategy.probe(doc); ok {
			return views, strategy.name, true
		}
	}
	return 0, "", false
}

func viewIcons(doc *goquery.Document) *goquery.Selection {
	return doc.Find("svg").FilterFunction(func(_ int, s *goquery.Selection) bool {
		label, _ := s.Attr("aria-label")
		return viewIconRe.MatchString(label)
	})
}

// isNumericLeaf reports whether the node is a childless span/div holding
// nothing but a counter ("14,886", "10.5K").
func isNumericLeaf(s *goquery.Selection) bool {
	if s.Children().Length() != 0 {
		return false
	}
	return normalize.NumericTextRe.MatchString(strings.TrimSpace(s.Text()))
}

func hasViewCountClass(s *goquery.Selection) bool {
	class, _ := s.Attr("class")
	return strings.Contains(class, viewCountClass)
}

// viewsByIconSibling: find the view-count icon, then its exact numeric
// sibling. The most reliable way to tell views apart from likes/comments.
func viewsByIconSibling(doc *goquery.Document) (int64, bool) {
	var views int64
	found := false
	viewIcons(doc).EachWithBreak(func(_ int, icon *goquery.Selection) bool {
		icon.NextAll().EachWithBreak(func(_ int, sib *goquery.Selection) bool {
			if !sib.Is("span") || !isNumericLeaf(sib) {
				return true
			}
			if v, ok := normalize.ParseCount(sib.Text()); ok {
				views, found = v, true
				return false
			}
			return true
		})
		return !found
	})
	return views, found
}

// viewsByIconClass: anchored on the icon's parent, search sibling and child
// numerics restricted to the known counter class.
func viewsByIconClass(doc *goquery.Document) (int64, bool) {
	var views int64
	found := false
	viewIcons(doc).EachWithBreak(func(_ int, icon *goquery.Selection) bool {
		parent := icon.Parent()
		candidates := parent.NextAll().Find("span, div").
			AddSelection(parent.Find("span, div"))
		candidates.EachWithBreak(func(_ int, c *goquery.Selection) bool {
			if !hasViewCountClass(c) || !isNumericLeaf(c) {
				return true
			}
			if v, ok := normalize.ParseCount(c.Text()); ok {
				views, found = v, true
				return false
			}
			return true
		})
		return !found
	})
	return views, found
}

// viewsByClassWithFloor: the counter class alone, without the icon anchor.
// The >10 floor guards against picking up an unrelated small badge.
func viewsByClassWithFloor(doc *goquery.Document) (int64, bool) {
	var views int64
	found := false
	doc.Find("span").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if !hasViewCountClass(s) || !isNumericLeaf(s) {
			return true
		}
		if v, ok := normalize.ParseCount(s.Text()); ok && v > 10 {
			views, found = v, true
			return false
		}
		return true
	})
	return views, found
}

// viewsByLargestNumeric: among every purely-numeric node in the tile, views
// are the biggest counter shown.
func viewsByLargestNumeric(doc *goquery.Document) (int64, bool) {
	var best int64
	found := false
	doc.Find("span, div").Each(func(_ int, s *goquery.Selection) {
		if !isNumericLeaf(s) {
			return
		}
		if v, ok := normalize.ParseCount(s.Text()); ok && v > best {
			best, found = v, true
		}
	})
	return best, found
}

// likesFromSource scans a full page source for nodes reading like
// "1,234 likes".
func likesFromSource(html string) (int64, bool) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return 0, false
	}
	var likes int64
	found := false
	doc.Find("span, div, a").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if s.Children().Length() != 0 {
			return true
		}
		text := strings.TrimSpace(s.Text())
		if !likesLabelRe.MatchString(text) {
			return true
		}
		if v, ok := normalize.ParseCount(text); ok {
			likes, found = v, true
			return false
		}
		return true
	})
	return likes, found
}

// smallestNumericText is the last-resort likes heuristic: likes tend to be
// the smallest counter on a post page.
func smallestNumericText(html string) (int64, bool) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return 0, false
	}
	var best int64
	found := false
	doc.Find("span, div").Each(func(_ int, s *goquery.Selection) {
		if !isNumericLeaf(s) {
			return
		}
		v, ok := normalize.ParseCount(s.Text())
		if !ok || v <= 0 {
			return
		}
		if !found || v < best {
			best, found = v, true
		}
	})
	return best, found
}

// firstCountIn picks the first abbreviated counter out of free-form text.
var counterTokenRe = regexp.MustCompile(`(?i)\d[\d.,]*[kmb]?`)

func firstCountIn(text string) (int64, bool) {
	token := counterTokenRe.FindString(text)
	if token == "" {
		return 0, false
	}
	return normalize.ParseCount(token)
}
