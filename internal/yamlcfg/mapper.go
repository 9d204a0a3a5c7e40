package yamlcfg

import (
	"fmt"
	"strings"

	"github.com/vk/topicgen/internal/config"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// MapTopicFile converts the YAML DTO into the agnostic descriptor model.
func MapTopicFile(path string, dto YAMLTopicFile) (*config.Descriptor, error) {
	desc := &config.Descriptor{
		Path:    path,
		Topics:  []string(dto.Topics),
		Message: strings.TrimSpace(dto.Message),
	}

	size, err := mapBuffer(dto.Buffer)
	if err != nil {
		return nil, &config.DescriptorError{Path: path, Err: err}
	}
	desc.BufferSize = size
	return desc, nil
}

// mapBuffer applies the same numeric rule as the HCL loader: any number that
// is a whole value (so 4, "4" and 4.0 all work) and at least 1.
func mapBuffer(b YAMLBuffer) (int, error) {
	if !b.Set {
		return 0, nil
	}
	if !b.Scalar {
		return 0, fmt.Errorf("line %d: buffer must be a whole number", b.Line)
	}
	num, err := cty.ParseNumberVal(strings.TrimSpace(b.Value))
	if err != nil {
		return 0, fmt.Errorf("line %d: buffer must be a whole number, got %q", b.Line, b.Value)
	}
	var n int
	if err := gocty.FromCtyValue(num, &n); err != nil {
		return 0, fmt.Errorf("line %d: buffer must be a whole number, got %q", b.Line, b.Value)
	}
	if n < 1 {
		return 0, fmt.Errorf("line %d: buffer size must be at least 1, got %d", b.Line, n)
	}
	return n, nil
}
