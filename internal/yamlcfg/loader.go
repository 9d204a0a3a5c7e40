package yamlcfg

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/vk/topicgen/internal/config"
	"github.com/vk/topicgen/internal/ctxlog"
	"gopkg.in/yaml.v3"
)

// Loader is the YAML implementation of config.DescriptorLoader.
type Loader struct{}

// NewLoader creates a new YAML descriptor loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Extensions implements config.DescriptorLoader.
func (l *Loader) Extensions() []string {
	return []string{".topics.yaml", ".topics.yml"}
}

// Load reads the descriptor at path. Unknown keys are rejected.
func (l *Loader) Load(ctx context.Context, path string) (*config.Descriptor, error) {
	logger := ctxlog.FromContext(ctx)

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read topic descriptor %s: %w", path, err)
	}

	var dto YAMLTopicFile
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&dto); err != nil && !errors.Is(err, io.EOF) {
		return nil, &config.DescriptorError{Path: path, Err: err}
	}

	desc, err := MapTopicFile(path, dto)
	if err != nil {
		return nil, err
	}
	logger.Debug("YAML descriptor loaded.", "path", path, "topics", len(desc.Topics), "buffer", desc.BufferSize, "message", desc.Message)
	return desc, nil
}
