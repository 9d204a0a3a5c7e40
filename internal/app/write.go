package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/vk/topicgen/internal/ctxlog"
	"github.com/vk/topicgen/internal/emitter"
)

const outputFileMode = 0o644

// writeFileAtomic replaces dir/name with content. Readers see either the old
// file or the new one, never a partial write.
func writeFileAtomic(dir, name string, content []byte) (string, error) {
	path := filepath.Join(dir, name)

	tmp, err := os.CreateTemp(dir, "."+name+".*.tmp")
	if err != nil {
		return "", fmt.Errorf("failed to create temporary file for %s: %w", path, err)
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		cleanup()
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := tmp.Chmod(outputFileMode); err != nil {
		_ = tmp.Close()
		cleanup()
		return "", fmt.Errorf("failed to set mode on %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		cleanup()
		return "", fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return path, nil
}

// checkOutputs compares the rendered artifacts with the files on disk.
func (a *App) checkOutputs(ctx context.Context, out *emitter.Output) error {
	logger := ctxlog.FromContext(ctx)

	var stale []string
	for _, doc := range out.Documents() {
		path := filepath.Join(a.config.OutputDir, doc.Name)
		current, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			logger.Warn("Generated artifact is missing.", "path", path)
			stale = append(stale, path)
		case err != nil:
			return fmt.Errorf("failed to read %s: %w", path, err)
		case !bytes.Equal(current, doc.Content):
			logger.Warn("Generated artifact is out of date.", "path", path)
			stale = append(stale, path)
		}
	}
	if len(stale) > 0 {
		return &StaleOutputError{Paths: stale}
	}
	logger.Info("Generated artifacts are up to date.", "output_dir", a.config.OutputDir)
	return nil
}
