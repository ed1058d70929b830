package normalize

import (
	"testing"

	"github.com/NandoXu/ig-reels-analytics/internal/domain"
	"github.com/stretchr/testify/require"
)

func TestExtractShortcode(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"post url", "https://www.instagram.com/p/Cxyz123abcd/", "Cxyz123abcd"},
		{"reel url", "https://www.instagram.com/reel/Cxyz123abcd/", "Cxyz123abcd"},
		{"reels url", "https://www.instagram.com/reels/Cxyz123abcd/", "Cxyz123abcd"},
		{"url with query", "https://www.instagram.com/p/Cxyz123abcd/?igsh=abc", "Cxyz123abcd"},
		{"bare shortcode", "Cxyz123abcd", "Cxyz123abcd"},
		{"shortcode with underscore and dash", "C_yz-123", "C_yz-123"},
		{"profile url", "https://www.instagram.com/someuser/", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ExtractShortcode(tt.in))
		})
	}
}

func TestParseCount(t *testing.T) {
	tests := []struct {
		in   string
		want int64
		ok   bool
	}{
		{"10.5K", 10500, true},
		{"1,234", 1234, true},
		{"2M", 2000000, true},
		{"1.5b", 1500000000, true},
		{"123", 123, true},
		{"14,886 likes", 14886, true},
		{"302 views", 302, true},
		{"12k likes", 12000, true},
		{"abc", 0, false},
		{"", 0, false},
		{"likes", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseCount(tt.in)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				require.Equal(t, tt.want, got)
			}
		})
	}
}

func TestEngagementRate(t *testing.T) {
	rate := EngagementRate(domain.CountOf(100), domain.CountOf(10), domain.CountOf(1000))
	require.True(t, rate.Known())
	require.Equal(t, 11.0, rate.Value())

	rate = EngagementRate(domain.CountOf(250), domain.CountOf(5), domain.CountOf(10000))
	require.True(t, rate.Known())
	require.Equal(t, 2.55, rate.Value())
}

func TestEngagementRateUnknown(t *testing.T) {
	require.False(t, EngagementRate(domain.CountOf(100), domain.CountOf(10), domain.CountOf(0)).Known())
	require.False(t, EngagementRate(domain.UnknownCount(), domain.CountOf(10), domain.CountOf(1000)).Known())
	require.False(t, EngagementRate(domain.CountOf(100), domain.UnknownCount(), domain.CountOf(1000)).Known())
	require.False(t, EngagementRate(domain.CountOf(100), domain.CountOf(10), domain.NotApplicableCount()).Known())
	require.False(t, EngagementRate(domain.CountOf(100), domain.CountOf(10), domain.UnknownCount()).Known())
}

func TestNumericTextRe(t *testing.T) {
	for _, s := range []string{"14,886", "10.5K", "302", "1.2m"} {
		require.True(t, NumericTextRe.MatchString(s), s)
	}
	for _, s := range []string{"likes", "", "k10", "10 likes"} {
		require.False(t, NumericTextRe.MatchString(s), s)
	}
}
