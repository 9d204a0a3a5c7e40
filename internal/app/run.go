package app

import (
	"context"
	"fmt"
	"os"

	"github.com/vk/topicgen/internal/ctxlog"
	"github.com/vk/topicgen/internal/descriptorset"
	"github.com/vk/topicgen/internal/emitter"
	"github.com/vk/topicgen/internal/fsutil"
	"github.com/vk/topicgen/internal/model"
)

// Run executes one generation pass based on the application's configuration.
// Nothing is written unless every input exists and every schema file resolves.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if err := fsutil.CheckExist(a.config.Inputs); err != nil {
		return err
	}

	var set *descriptorset.Set
	if a.config.DescriptorSet != "" {
		var err error
		set, err = descriptorset.Load(a.config.DescriptorSet)
		if err != nil {
			return err
		}
		a.logger.Debug("Descriptor set loaded.", "path", a.config.DescriptorSet, "files", set.Len())
	}

	paths, err := fsutil.ExpandInputs(a.config.Inputs, schemaExtension)
	if err != nil {
		return fmt.Errorf("failed to expand inputs: %w", err)
	}
	a.logger.Debug("Inputs expanded.", "count", len(paths))

	files, err := readSchemaFiles(ctx, paths)
	if err != nil {
		return err
	}

	builder := model.NewBuilder()
	for _, file := range files {
		ann, err := a.resolveAnnotations(ctx, file, set)
		if err != nil {
			return err
		}
		builder.Add(file, ann)
	}
	m := builder.Build(ctx)

	if collisions := m.Collisions(); len(collisions) > 0 {
		if a.config.Strict {
			return &CollisionError{Collisions: collisions}
		}
		for _, c := range collisions {
			a.logger.Warn("Distinct topics share a generated identifier.", "identifier", c.Identifier, "bindings", len(c.Bindings))
		}
	}

	out, err := a.emitter.Emit(m)
	if err != nil {
		return fmt.Errorf("failed to render registry: %w", err)
	}

	if a.config.Check {
		return a.checkOutputs(ctx, out)
	}
	if err := a.writeOutputs(ctx, out); err != nil {
		return err
	}

	a.logger.Info("Topic registry generated.",
		"schemas", len(files),
		"skipped", len(m.Skipped),
		"bindings", m.Len(),
		"output_dir", a.config.OutputDir,
	)
	a.logger.Debug("App.Run method finished.")
	return nil
}

// readSchemaFiles reads every schema file in order. Cancellation is checked
// between files.
func readSchemaFiles(ctx context.Context, paths []string) ([]model.SchemaFile, error) {
	files := make([]model.SchemaFile, 0, len(paths))
	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		content, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("failed to read schema file %s: %w", p, err)
		}
		files = append(files, model.NewSchemaFile(p, string(content)))
	}
	return files, nil
}

func (a *App) writeOutputs(ctx context.Context, out *emitter.Output) error {
	logger := ctxlog.FromContext(ctx)

	if err := os.MkdirAll(a.config.OutputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", a.config.OutputDir, err)
	}
	for _, doc := range out.Documents() {
		path, err := writeFileAtomic(a.config.OutputDir, doc.Name, doc.Content)
		if err != nil {
			return err
		}
		logger.Debug("Artifact written.", "path", path, "bytes", len(doc.Content))
	}
	return nil
}
