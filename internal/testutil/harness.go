package testutil

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/topicgen/internal/app"
	"github.com/vk/topicgen/internal/emitter"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// Scenario describes one generator run. Files maps paths relative to a fresh
// temporary root to their content. Inputs are relative to the same root and
// default to the sorted keys of Files that end in .proto when empty.
type Scenario struct {
	Files     map[string]string
	Inputs    []string
	OutputDir string // relative to root, "out" by default

	// Configure adjusts the configuration before the app is built.
	Configure func(cfg *app.Config)
}

// RunGenerator runs a scenario with a background context.
func RunGenerator(t *testing.T, sc Scenario) *HarnessResult {
	t.Helper()
	return RunGeneratorWithContext(context.Background(), t, sc)
}

// RunGeneratorWithContext writes the scenario files into a temporary
// directory, runs the generator once, and reads back whatever it wrote.
func RunGeneratorWithContext(ctx context.Context, t *testing.T, sc Scenario) *HarnessResult {
	t.Helper()

	rootDir := t.TempDir()
	WriteFiles(t, rootDir, sc.Files)

	inputs := sc.Inputs
	if len(inputs) == 0 {
		inputs = SchemaPaths(sc.Files)
	}
	absInputs := make([]string, len(inputs))
	for i, in := range inputs {
		absInputs[i] = filepath.Join(rootDir, in)
	}

	outRel := sc.OutputDir
	if outRel == "" {
		outRel = "out"
	}
	cfg := &app.Config{
		Inputs:    absInputs,
		OutputDir: filepath.Join(rootDir, outRel),
		LogLevel:  "debug",
		LogFormat: "text",
	}
	if sc.Configure != nil {
		sc.Configure(cfg)
	}

	logBuffer := &SafeBuffer{}

	var testApp *app.App
	var panicErr any
	func() {
		defer func() {
			if r := recover(); r != nil {
				panicErr = r
			}
		}()
		testApp = app.NewApp(logBuffer, cfg)
	}()
	if panicErr != nil {
		return &HarnessResult{
			LogOutput: logBuffer.String(),
			Err:       fmt.Errorf("application startup panicked | %v", panicErr),
			RootDir:   rootDir,
			OutputDir: cfg.OutputDir,
		}
	}

	runErr := testApp.Run(ctx)

	if os.Getenv("TOPICGEN_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
	}

	headerName, sourceName := cfg.HeaderName, cfg.SourceName
	if headerName == "" {
		headerName = emitter.DefaultHeaderName
	}
	if sourceName == "" {
		sourceName = emitter.DefaultSourceName
	}

	return &HarnessResult{
		LogOutput:    logBuffer.String(),
		Err:          runErr,
		App:          testApp,
		RootDir:      rootDir,
		OutputDir:    cfg.OutputDir,
		Declarations: readOptional(t, filepath.Join(cfg.OutputDir, headerName)),
		Definitions:  readOptional(t, filepath.Join(cfg.OutputDir, sourceName)),
	}
}

// WriteFiles creates every file under root, making parent directories as needed.
func WriteFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

func readOptional(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return ""
	}
	require.NoError(t, err)
	return string(b)
}
