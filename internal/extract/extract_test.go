package extract

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFailureString(t *testing.T) {
	require.Equal(t, "http: status 429", Failf(KindHTTP, "status %d", 429).String())
	require.Equal(t, "blocked", (&Failure{Kind: KindBlocked}).String())

	var f *Failure
	require.Equal(t, "", f.String())
}

func TestFailureIs(t *testing.T) {
	require.True(t, Failf(KindNotFound, "gone").Is(KindNotFound))
	require.False(t, Failf(KindNotFound, "gone").Is(KindHTTP))

	var f *Failure
	require.False(t, f.Is(KindHTTP))
}
