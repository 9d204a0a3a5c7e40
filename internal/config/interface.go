package config

import "context"

// DescriptorLoader is the interface for a format-specific descriptor loader.
type DescriptorLoader interface {
	// Extensions lists the sidecar suffixes this loader understands, in
	// lookup order (e.g. ".topics.hcl").
	Extensions() []string

	// Load reads and decodes the descriptor at path.
	Load(ctx context.Context, path string) (*Descriptor, error)
}
