// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines SchemaFile, the immutable input unit of a run.
package model

import (
	"path/filepath"
	"strings"
)

// SchemaFile is a schema path and its raw text.
type SchemaFile struct {
	Path    string
	Content string
}

// NewSchemaFile creates a SchemaFile from already read content.
func NewSchemaFile(path, content string) SchemaFile {
	return SchemaFile{Path: path, Content: content}
}

// Stem returns the file name without its final extension.
func (f SchemaFile) Stem() string {
	base := filepath.Base(f.Path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
