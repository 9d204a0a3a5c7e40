package integration_tests

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/topicgen/internal/config"
	"github.com/vk/topicgen/internal/testutil"
)

func TestErrorHandling_InvalidDescriptorIsRejected(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		files       map[string]string
		errContains string
	}{
		{
			name: "HCL syntax error",
			files: map[string]string{
				"pose.proto":      "message Pose {}\n",
				"pose.topics.hcl": "topics = [\"pose\"\n",
			},
			errContains: "pose.topics.hcl",
		},
		{
			name: "HCL zero buffer",
			files: map[string]string{
				"pose.proto":      "message Pose {}\n",
				"pose.topics.hcl": "buffer = 0\n",
			},
			errContains: "at least 1",
		},
		{
			name: "YAML unknown key",
			files: map[string]string{
				"pose.proto":       "message Pose {}\n",
				"pose.topics.yaml": "topic: pose\n",
			},
			errContains: "pose.topics.yaml",
		},
		{
			name: "message override is not a type name",
			files: map[string]string{
				"pose.proto":      "message Pose {}\n",
				"pose.topics.hcl": "message = \"2Pose\"\n",
			},
			errContains: "not a valid type name",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Act ---
			result := testutil.RunGenerator(t, testutil.Scenario{Files: tc.files})

			// --- Assert ---
			require.ErrorIs(t, result.Err, config.ErrInvalidDescriptor)
			require.ErrorContains(t, result.Err, tc.errContains)
			testutil.AssertNoOutput(t, result)
		})
	}
}
