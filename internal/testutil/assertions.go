package testutil

import (
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// AssertRegistered checks that the definitions artifact registers messageType
// under identifier with the given buffer size.
func AssertRegistered(t *testing.T, result *HarnessResult, messageType, identifier string, buffer int) {
	t.Helper()

	expected := fmt.Sprintf("REGISTER_TOPIC_WITH_BUFFER(%s, %s, %d);", messageType, identifier, buffer)
	require.True(t,
		strings.Contains(result.Definitions, expected),
		"expected registration %q was not found in definitions:\n%s", expected, result.Definitions,
	)
}

// AssertNoOutput checks that the run left no output directory behind.
func AssertNoOutput(t *testing.T, result *HarnessResult) {
	t.Helper()

	_, err := os.Stat(result.OutputDir)
	require.True(t, os.IsNotExist(err), "output directory %s should not exist", result.OutputDir)
}
