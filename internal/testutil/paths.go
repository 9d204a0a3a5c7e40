package testutil

import (
	"path/filepath"
	"sort"
)

// SchemaPaths returns the .proto keys of files in sorted order.
func SchemaPaths(files map[string]string) []string {
	var out []string
	for name := range files {
		if filepath.Ext(name) == ".proto" {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}
