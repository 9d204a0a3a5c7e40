package testutil

import "github.com/vk/topicgen/internal/app"

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	LogOutput string
	Err       error
	App       *app.App

	// RootDir is the temporary directory the input files were written to.
	RootDir string
	// OutputDir is where the generator was told to write.
	OutputDir string
	// Declarations and Definitions hold the artifacts read back from
	// OutputDir. They are empty when a file was not written.
	Declarations string
	Definitions  string
}
