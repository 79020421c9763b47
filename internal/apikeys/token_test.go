package apikeys

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGenerateToken(t *testing.T) {
	t.Parallel()

	now := time.UnixMilli(1700000000000)
	seen := map[string]bool{}
	for range 50 {
		token, err := generateToken(now)
		require.NoError(t, err)
		require.True(t, ValidFormat(token), token)
		require.True(t, strings.HasPrefix(token, "sd_loyw3v28_"), token)
		require.False(t, seen[token])
		seen[token] = true
	}
}

func TestValidFormat(t *testing.T) {
	t.Parallel()

	secret := strings.Repeat("aB3", 10) + "xY"
	cases := map[string]bool{
		"sd_abc123_" + secret:         true,
		"sd_ABC_" + secret:            false,
		"sk_abc_" + secret:            false,
		"sd_abc_" + secret[:31]:       false,
		"sd_abc_" + secret + "z":      false,
		"sd__" + secret:               false,
		"sd_abc_" + secret[:31] + "-": false,
	}
	for token, want := range cases {
		require.Equal(t, want, ValidFormat(token), token)
	}
}

func TestHashAndPrefix(t *testing.T) {
	t.Parallel()

	token := "sd_loyw3v28_" + strings.Repeat("Q", 32)
	require.Len(t, Hash(token), 64)
	require.Equal(t, Hash(token), Hash(token))
	require.NotEqual(t, Hash(token), Hash(token+"x"))
	require.Equal(t, "sd_loyw3v28_QQQQ", DisplayPrefix(token))
	require.Equal(t, "short", DisplayPrefix("short"))
}
