package hcl

import (
	"context"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/topicgen/internal/config"
	"github.com/vk/topicgen/internal/ctxlog"
	"github.com/vk/topicgen/internal/schema"
)

// Extension is the sidecar suffix handled by this loader.
const Extension = ".topics.hcl"

// Loader is the HCL-specific implementation of the config.DescriptorLoader interface.
type Loader struct{}

// NewLoader creates a new HCL descriptor loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Extensions implements config.DescriptorLoader.
func (l *Loader) Extensions() []string {
	return []string{Extension}
}

// Load parses the descriptor at path and translates it into the agnostic model.
func (l *Loader) Load(ctx context.Context, path string) (*config.Descriptor, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL descriptor loader started.", "path", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, &config.DescriptorError{Path: path, Err: diags}
	}

	var root schema.TopicFile
	diags = gohcl.DecodeBody(file.Body, nil, &root)
	if diags.HasErrors() {
		return nil, &config.DescriptorError{Path: path, Err: diags}
	}

	desc, diags := translateTopicFile(ctx, path, &root)
	if diags.HasErrors() {
		return nil, &config.DescriptorError{Path: path, Err: diags}
	}

	logger.Debug("HCL descriptor loaded.", "path", path, "topics", len(desc.Topics), "buffer", desc.BufferSize, "message", desc.Message)
	return desc, nil
}
