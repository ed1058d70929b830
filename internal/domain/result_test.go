package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCountString(t *testing.T) {
	require.Equal(t, "1234", CountOf(1234).String())
	require.Equal(t, "unknown", UnknownCount().String())
	require.Equal(t, "unknown (blocked: owner unknown)", UnknownCountBecause("blocked: owner unknown").String())
	require.Equal(t, "not applicable", NotApplicableCount().String())
}

func TestCountFromString(t *testing.T) {
	require.Equal(t, CountOf(42), CountFromString("42"))
	require.Equal(t, UnknownCount(), CountFromString("unknown"))
	require.Equal(t, UnknownCount(), CountFromString("garbage"))
	require.Equal(t, NotApplicableCount(), CountFromString("not applicable"))
	require.Equal(t, UnknownCountBecause("http: status 429"), CountFromString("unknown (http: status 429)"))
}

func TestCountJSON(t *testing.T) {
	b, err := json.Marshal(CountOf(99))
	require.NoError(t, err)
	require.Equal(t, "99", string(b))

	b, err = json.Marshal(UnknownCount())
	require.NoError(t, err)
	require.Equal(t, `"unknown"`, string(b))

	var c Count
	require.NoError(t, json.Unmarshal([]byte("77"), &c))
	require.Equal(t, CountOf(77), c)
	require.NoError(t, json.Unmarshal([]byte(`"not applicable"`), &c))
	require.Equal(t, NotApplicableCount(), c)
}

func TestRateRoundTrip(t *testing.T) {
	require.Equal(t, "2.55", RateOf(2.55).String())
	require.Equal(t, "unknown", UnknownRate().String())
	require.Equal(t, RateOf(11), RateFromString("11.00"))
	require.Equal(t, UnknownRate(), RateFromString("unknown"))
}

func TestAppendError(t *testing.T) {
	rec := NewPostResult("https://www.instagram.com/p/abc/")
	require.False(t, rec.Failed())

	rec.AppendError("")
	require.False(t, rec.Failed())

	rec.AppendError("first failure")
	rec.AppendError("second failure")
	require.True(t, rec.Failed())
	require.Equal(t, "first failure | second failure", rec.Error)
}

func TestNewPostResultDefaults(t *testing.T) {
	rec := NewPostResult("some-url")
	require.Equal(t, "some-url", rec.URL)
	require.Equal(t, Unknown, rec.Owner)
	require.False(t, rec.Likes.Known())
	require.False(t, rec.Comments.Known())
	require.False(t, rec.Views.Known())
	require.False(t, rec.EngagementRate.Known())
	require.False(t, rec.PostDate.Known())
	require.False(t, rec.IsVideo)
}
