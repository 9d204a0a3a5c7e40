package integration_tests

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/topicgen/internal/testutil"
)

func TestDescriptor_HCLSidecarOverridesComments(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	files := map[string]string{
		"baro.proto":      "// @topic: from_comment\n// @buffer: 2\nmessage Baro {}\n",
		"baro.topics.hcl": "topics = [\"sensor_baro\", \"sensor_baro_filtered\"]\nbuffer = 4\n",
	}

	// --- Act ---
	result := testutil.RunGenerator(t, testutil.Scenario{Files: files})

	// --- Assert ---
	require.NoError(t, result.Err)
	testutil.AssertRegistered(t, result, "Baro", "sensor_baro", 4)
	testutil.AssertRegistered(t, result, "Baro", "sensor_baro_filtered", 4)
	assert.NotContains(t, result.Definitions, "from_comment")
	assert.Contains(t, result.LogOutput, "Sidecar descriptor applied.")
}

func TestDescriptor_PartialSidecarKeepsCommentAnnotations(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	files := map[string]string{
		"baro.proto":      "// @topic: from_comment\n// @buffer: 2\nmessage Baro {}\n",
		"baro.topics.hcl": `buffer = "6"`,
	}

	// --- Act ---
	result := testutil.RunGenerator(t, testutil.Scenario{Files: files})

	// --- Assert ---
	require.NoError(t, result.Err)
	testutil.AssertRegistered(t, result, "Baro", "from_comment", 6)
}

func TestDescriptor_YAMLSidecar(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		ext  string
	}{
		{name: "yaml extension", ext: ".topics.yaml"},
		{name: "yml extension", ext: ".topics.yml"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Arrange ---
			files := map[string]string{
				"gps.proto":    "message Gps {}\n",
				"gps" + tc.ext: "topics: [gps_fix, gps_raw]\nbuffer: 3\nmessage: GpsFix\n",
			}

			// --- Act ---
			result := testutil.RunGenerator(t, testutil.Scenario{Files: files})

			// --- Assert ---
			require.NoError(t, result.Err)
			testutil.AssertRegistered(t, result, "GpsFix", "gps_fix", 3)
			testutil.AssertRegistered(t, result, "GpsFix", "gps_raw", 3)
		})
	}
}

func TestDescriptor_HCLTakesPrecedenceOverYAML(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	files := map[string]string{
		"gps.proto":       "message Gps {}\n",
		"gps.topics.hcl":  `topics = "from_hcl"`,
		"gps.topics.yaml": "topics: from_yaml\n",
	}

	// --- Act ---
	result := testutil.RunGenerator(t, testutil.Scenario{Files: files})

	// --- Assert ---
	require.NoError(t, result.Err)
	testutil.AssertRegistered(t, result, "Gps", "from_hcl", 1)
	assert.NotContains(t, result.Definitions, "from_yaml")
}

func TestDescriptor_MessageOverrideRescuesFileWithoutDeclaration(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	files := map[string]string{
		"wrapped.proto":      "import \"inner.proto\";\n",
		"wrapped.topics.hcl": `message = "Inner"`,
	}

	// --- Act ---
	result := testutil.RunGenerator(t, testutil.Scenario{Files: files})

	// --- Assert ---
	require.NoError(t, result.Err)
	testutil.AssertRegistered(t, result, "Inner", "wrapped", 1)
}
