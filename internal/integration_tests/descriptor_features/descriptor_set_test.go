package integration_tests

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/topicgen/internal/app"
	"github.com/vk/topicgen/internal/testutil"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/descriptorpb"
)

// writeDescriptorSet serializes fds the way protoc -o does and returns its path.
func writeDescriptorSet(t *testing.T, fds *descriptorpb.FileDescriptorSet) string {
	t.Helper()
	b, err := proto.Marshal(fds)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "schemas.pb")
	require.NoError(t, os.WriteFile(path, b, 0o644))
	return path
}

func TestDescriptorSet_MessageTypeComesFromCompiler(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	fds := &descriptorpb.FileDescriptorSet{
		File: []*descriptorpb.FileDescriptorProto{{
			Name: proto.String("msgs/odom.proto"),
			MessageType: []*descriptorpb.DescriptorProto{
				{Name: proto.String("Odometry")},
				{Name: proto.String("Covariance")},
			},
		}},
	}
	setPath := writeDescriptorSet(t, fds)
	sc := testutil.Scenario{
		// The text scanner would pick "Odom" here.
		Files:     map[string]string{"odom.proto": "// @buffer: 5\nmessage Odom {}\n"},
		Configure: func(cfg *app.Config) { cfg.DescriptorSet = setPath },
	}

	// --- Act ---
	result := testutil.RunGenerator(t, sc)

	// --- Assert ---
	require.NoError(t, result.Err)
	testutil.AssertRegistered(t, result, "Odometry", "odom", 5)
	assert.NotContains(t, result.Definitions, "Odom,")
}

func TestDescriptorSet_CommentsFillMissingAnnotations(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	fds := &descriptorpb.FileDescriptorSet{
		File: []*descriptorpb.FileDescriptorProto{{
			Name:        proto.String("lidar.proto"),
			MessageType: []*descriptorpb.DescriptorProto{{Name: proto.String("Scan")}},
			SourceCodeInfo: &descriptorpb.SourceCodeInfo{
				Location: []*descriptorpb.SourceCodeInfo_Location{{
					Path:            []int32{4, 0},
					Span:            []int32{2, 0, 14},
					LeadingComments: proto.String(" @topic: lidar_scan\n @buffer: 12\n"),
				}},
			},
		}},
	}
	setPath := writeDescriptorSet(t, fds)
	sc := testutil.Scenario{
		Files:     map[string]string{"lidar.proto": "message Scan {}\n"},
		Configure: func(cfg *app.Config) { cfg.DescriptorSet = setPath },
	}

	// --- Act ---
	result := testutil.RunGenerator(t, sc)

	// --- Assert ---
	require.NoError(t, result.Err)
	testutil.AssertRegistered(t, result, "Scan", "lidar_scan", 12)
}

func TestDescriptorSet_UnknownFilesFallBackToScanner(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	setPath := writeDescriptorSet(t, &descriptorpb.FileDescriptorSet{})
	sc := testutil.Scenario{
		Files:     map[string]string{"pose.proto": "message Pose {}\n"},
		Configure: func(cfg *app.Config) { cfg.DescriptorSet = setPath },
	}

	// --- Act ---
	result := testutil.RunGenerator(t, sc)

	// --- Assert ---
	require.NoError(t, result.Err)
	testutil.AssertRegistered(t, result, "Pose", "pose", 1)
}

func TestDescriptorSet_UnreadableSetFailsBeforeWriting(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	bad := filepath.Join(t.TempDir(), "garbage.pb")
	require.NoError(t, os.WriteFile(bad, []byte{0xff, 0xff, 0xff}, 0o644))
	sc := testutil.Scenario{
		Files:     map[string]string{"pose.proto": "message Pose {}\n"},
		Configure: func(cfg *app.Config) { cfg.DescriptorSet = bad },
	}

	// --- Act ---
	result := testutil.RunGenerator(t, sc)

	// --- Assert ---
	require.Error(t, result.Err)
	testutil.AssertNoOutput(t, result)
}

func sharedBaseNameFiles() map[string]string {
	return map[string]string{
		"a/x.proto": "// @topic: ta\nmessage Alpha {}\n",
		"b/x.proto": "// @topic: tb\nmessage Beta {}\n",
	}
}

func fileWithMessage(name, message string) *descriptorpb.FileDescriptorProto {
	return &descriptorpb.FileDescriptorProto{
		Name:        proto.String(name),
		MessageType: []*descriptorpb.DescriptorProto{{Name: proto.String(message)}},
	}
}

func TestDescriptorSet_SharedBaseNameResolvedByDirectory(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	setPath := writeDescriptorSet(t, &descriptorpb.FileDescriptorSet{
		File: []*descriptorpb.FileDescriptorProto{
			fileWithMessage("a/x.proto", "Alpha"),
			fileWithMessage("b/x.proto", "Beta"),
		},
	})
	sc := testutil.Scenario{
		Files:     sharedBaseNameFiles(),
		Configure: func(cfg *app.Config) { cfg.DescriptorSet = setPath },
	}

	// --- Act ---
	result := testutil.RunGenerator(t, sc)

	// --- Assert ---
	require.NoError(t, result.Err)
	testutil.AssertRegistered(t, result, "Alpha", "ta", 1)
	testutil.AssertRegistered(t, result, "Beta", "tb", 1)
	assert.NotContains(t, result.Definitions, "REGISTER_TOPIC_WITH_BUFFER(Alpha, tb, 1);")
}

func TestDescriptorSet_UnresolvableSharedBaseNameFallsBackToScanner(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// Neither compiler name shares a directory with the schema files.
	setPath := writeDescriptorSet(t, &descriptorpb.FileDescriptorSet{
		File: []*descriptorpb.FileDescriptorProto{
			fileWithMessage("left/x.proto", "Left"),
			fileWithMessage("right/x.proto", "Right"),
		},
	})
	sc := testutil.Scenario{
		Files:     sharedBaseNameFiles(),
		Configure: func(cfg *app.Config) { cfg.DescriptorSet = setPath },
	}

	// --- Act ---
	result := testutil.RunGenerator(t, sc)

	// --- Assert ---
	require.NoError(t, result.Err)
	testutil.AssertRegistered(t, result, "Alpha", "ta", 1)
	testutil.AssertRegistered(t, result, "Beta", "tb", 1)
	assert.NotContains(t, result.Definitions, "Left")
	assert.NotContains(t, result.Definitions, "Right")
	assert.Contains(t, result.LogOutput, "Several descriptor set files match the schema file")
	assert.Contains(t, result.LogOutput, "level=WARN")
}
