package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateSessionCode(t *testing.T) {
	t.Parallel()

	for i := 0; i < 100; i++ {
		code := GenerateSessionCode()
		require.Len(t, code, CodeLength)
		for _, r := range code {
			require.Contains(t, codeChars, string(r))
		}
		// ambiguous characters never appear
		require.NotContains(t, code, "I")
		require.NotContains(t, code, "O")
		require.NotContains(t, code, "0")
		require.NotContains(t, code, "1")
	}
}

func TestNormalizeSessionCode(t *testing.T) {
	t.Parallel()

	require.Equal(t, "ABCDE", NormalizeSessionCode("abcde"))
	require.Equal(t, "ABCDE", NormalizeSessionCode("  AbCdE\n"))
	require.Equal(t, strings.ToUpper("x2y3z"), NormalizeSessionCode("x2y3z"))
}
