package browser

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestViewsFromFragmentIconSibling(t *testing.T) {
	html := `<a href="/reel/abc/">
		<div>
			<svg aria-label="View Count Icon"></svg>
			<span>14,886</span>
		</div>
	</a>`

	views, strategy, ok := viewsFromFragment(html)
	require.True(t, ok)
	require.Equal(t, "view-icon-sibling", strategy)
	require.Equal(t, int64(14886), views)
}

func TestViewsFromFragmentIconClass(t *testing.T) {
	// Icon present but its direct sibling is not the counter; the counter
	// sits deeper, marked by the known class.
	html := `<a href="/reel/abc/">
		<div>
			<svg aria-label="View Count Icon"></svg>
			<div><span class="xabc x1vvkbs">10.5K</span></div>
		</div>
	</a>`

	views, strategy, ok := viewsFromFragment(html)
	require.True(t, ok)
	require.Equal(t, "view-icon-class", strategy)
	require.Equal(t, int64(10500), views)
}

func TestViewsFromFragmentClassWithFloor(t *testing.T) {
	// No icon at all. The badge span with a small number must lose to the
	// class-marked counter, and values at or below the floor are rejected.
	html := `<a href="/reel/abc/">
		<span class="x1vvkbs">9</span>
		<span class="x1vvkbs xother">2,301</span>
	</a>`

	views, strategy, ok := viewsFromFragment(html)
	require.True(t, ok)
	require.Equal(t, "class-with-floor", strategy)
	require.Equal(t, int64(2301), views)
}

func TestViewsFromFragmentLargestNumeric(t *testing.T) {
	html := `<a href="/reel/abc/">
		<span>12</span>
		<span>1.2M</span>
		<span>480</span>
	</a>`

	views, strategy, ok := viewsFromFragment(html)
	require.True(t, ok)
	require.Equal(t, "largest-numeric", strategy)
	require.Equal(t, int64(1200000), views)
}

func TestViewsFromFragmentNothingNumeric(t *testing.T) {
	_, _, ok := viewsFromFragment(`<a href="/reel/abc/"><span>Reels</span></a>`)
	require.False(t, ok)
}

func TestLikesFromSource(t *testing.T) {
	html := `<html><body>
		<span>someuser</span>
		<section><span>14,886 likes</span></section>
		<span>302 comments</span>
	</body></html>`

	likes, ok := likesFromSource(html)
	require.True(t, ok)
	require.Equal(t, int64(14886), likes)
}

func TestLikesFromSourceRejectsViews(t *testing.T) {
	_, ok := likesFromSource(`<html><body><span>14,886 views</span></body></html>`)
	require.False(t, ok)
}

func TestSmallestNumericText(t *testing.T) {
	html := `<html><body>
		<span>98,100</span>
		<span>1,520</span>
		<span>45,000</span>
	</body></html>`

	likes, ok := smallestNumericText(html)
	require.True(t, ok)
	require.Equal(t, int64(1520), likes)
}

func TestFirstCountIn(t *testing.T) {
	v, ok := firstCountIn("Liked by someone and 10.5K others")
	require.True(t, ok)
	require.Equal(t, int64(10500), v)

	_, ok = firstCountIn("no numbers here")
	require.False(t, ok)
}
