package integration_tests

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func indexOf(t *testing.T, s, substr string) int {
	t.Helper()
	i := strings.Index(s, substr)
	require.GreaterOrEqual(t, i, 0, "%q not found in:\n%s", substr, s)
	return i
}
