package domaincheck_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"smartdomain/internal/domaincheck"
)

func TestVariants(t *testing.T) {
	got := domaincheck.Variants("foo", []string{".com", ".io"})
	require.Equal(t, []string{
		"foo.com", "foo.io",
		"fooapp.com", "fooapp.io",
		"getfoo.com", "getfoo.io",
	}, got)
}

func TestVariants_Normalization(t *testing.T) {
	got := domaincheck.Variants("Snap-It 2!", []string{"COM", ".com", " .Io ", ""})
	require.Equal(t, []string{
		"snapit2.com", "snapit2.io",
		"snapit2app.com", "snapit2app.io",
		"getsnapit2.com", "getsnapit2.io",
	}, got)
}

func TestVariants_EmptyBase(t *testing.T) {
	require.Empty(t, domaincheck.Variants("快拍", []string{".com"}))
	require.Empty(t, domaincheck.Variants("---", []string{".com"}))
	require.Empty(t, domaincheck.Variants("foo", nil))
}
