package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/vk/topicgen/internal/annotation"
	"github.com/vk/topicgen/internal/config"
	"github.com/vk/topicgen/internal/ctxlog"
	"github.com/vk/topicgen/internal/descriptorset"
	"github.com/vk/topicgen/internal/model"
	"github.com/vk/topicgen/internal/sanitize"
)

// resolveAnnotations combines, in increasing precedence, the defaults, the
// comment annotations in the schema text, the schema compiler's view of the
// file, and the sidecar descriptor.
func (a *App) resolveAnnotations(ctx context.Context, file model.SchemaFile, set *descriptorset.Set) (*annotation.Annotations, error) {
	logger := ctxlog.FromContext(ctx)

	ann := annotation.Parse(file.Path, file.Content)
	if ann.ScanErrors > 0 {
		logger.Debug("Tokenizer errors skipped.", "path", file.Path, "count", ann.ScanErrors)
	}
	if ann.Duplicates > 0 {
		logger.Debug("Duplicate annotations ignored, first one wins.", "path", file.Path, "count", ann.Duplicates)
	}
	if ann.BufferDeclared && !ann.BufferValid {
		logger.Debug("Invalid @buffer annotation, using default.", "path", file.Path, "line", ann.BufferLine, "buffer", annotation.DefaultBufferSize)
	}

	entry, ok, ambiguous := set.Lookup(file.Path)
	switch {
	case ok:
		mergeDescriptorSetEntry(ann, entry)
		logger.Debug("Descriptor set entry applied.", "path", file.Path, "compiled_file", entry.File, "message", ann.MessageType)
	case len(ambiguous) > 0:
		logger.Warn("Several descriptor set files match the schema file, using the schema text instead.", "path", file.Path, "candidates", ambiguous)
	}

	desc, err := a.loadDescriptor(ctx, file.Path)
	if err != nil {
		return nil, err
	}
	if desc != nil {
		if err := mergeDescriptor(ann, desc); err != nil {
			return nil, err
		}
		logger.Debug("Sidecar descriptor applied.", "path", file.Path, "descriptor", desc.Path)
	}

	ann.ApplyDefaults(file.Path)
	return ann, nil
}

// mergeDescriptorSetEntry takes the message declaration from the compiler and
// fills annotations the schema text did not declare from compiler comments.
func mergeDescriptorSetEntry(ann *annotation.Annotations, entry descriptorset.Entry) {
	if entry.HasMessage {
		ann.MessageType = entry.MessageType
		ann.HasMessage = true
	}

	compiled := &annotation.Annotations{}
	for _, c := range entry.Comments {
		compiled.ObserveComment(c.Text, c.Line)
	}
	if !ann.TopicDeclared && compiled.TopicDeclared {
		ann.Topics = compiled.Topics
		ann.TopicDeclared = true
		ann.TopicLine = compiled.TopicLine
	}
	if !ann.BufferDeclared && compiled.BufferDeclared {
		ann.BufferSize = compiled.BufferSize
		ann.BufferDeclared = true
		ann.BufferValid = compiled.BufferValid
		ann.BufferLine = compiled.BufferLine
	}
}

// mergeDescriptor applies the explicit options of a sidecar descriptor.
func mergeDescriptor(ann *annotation.Annotations, desc *config.Descriptor) error {
	if desc.Message != "" {
		if !isTypeName(desc.Message) {
			return &config.DescriptorError{
				Path: desc.Path,
				Err:  fmt.Errorf("message %q is not a valid type name", desc.Message),
			}
		}
		ann.MessageType = desc.Message
		ann.HasMessage = true
	}
	if desc.HasTopics() {
		ann.Topics = desc.Topics
		ann.TopicDeclared = true
	}
	if desc.HasBuffer() {
		ann.BufferSize = desc.BufferSize
		ann.BufferDeclared = true
		ann.BufferValid = true
	}
	return nil
}

func isTypeName(s string) bool {
	return s != "" && sanitize.IsIdentifier(s) && !('0' <= s[0] && s[0] <= '9')
}

// loadDescriptor returns the first sidecar descriptor found next to the schema
// file, or nil when there is none.
func (a *App) loadDescriptor(ctx context.Context, schemaPath string) (*config.Descriptor, error) {
	stem := strings.TrimSuffix(schemaPath, fileExt(schemaPath))
	for _, loader := range a.loaders {
		for _, ext := range loader.Extensions() {
			candidate := stem + ext
			if _, err := os.Stat(candidate); err != nil {
				if errors.Is(err, fs.ErrNotExist) {
					continue
				}
				return nil, fmt.Errorf("error accessing descriptor %s: %w", candidate, err)
			}
			return loader.Load(ctx, candidate)
		}
	}
	return nil, nil
}

// fileExt is filepath.Ext limited to the final path element.
func fileExt(p string) string {
	for i := len(p) - 1; i >= 0 && p[i] != '/' && p[i] != os.PathSeparator; i-- {
		if p[i] == '.' {
			return p[i:]
		}
	}
	return ""
}
