// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the Builder that turns parsed schema files into a
// RegistryModel.
package model

import (
	"context"

	"github.com/vk/topicgen/internal/annotation"
	"github.com/vk/topicgen/internal/ctxlog"
	"github.com/vk/topicgen/internal/sanitize"
)

// Entry is one schema file together with its resolved annotations.
type Entry struct {
	File        SchemaFile
	Annotations *annotation.Annotations
}

// Builder accumulates entries in input order.
type Builder struct {
	entries []Entry
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Add appends a schema file and its annotations.
func (b *Builder) Add(file SchemaFile, a *annotation.Annotations) {
	b.entries = append(b.entries, Entry{File: file, Annotations: a})
}

// Build produces the RegistryModel. Files without a message declaration
// contribute no bindings and are recorded in Skipped.
func (b *Builder) Build(ctx context.Context) *RegistryModel {
	logger := ctxlog.FromContext(ctx)
	m := &RegistryModel{Version: Version}

	for _, e := range b.entries {
		a := e.Annotations
		if a == nil || !a.HasMessage {
			logger.Warn("No message declaration found, skipping schema file.", "path", e.File.Path)
			m.Skipped = append(m.Skipped, e.File)
			continue
		}

		for _, topic := range a.Topics {
			m.Bindings = append(m.Bindings, TopicBinding{
				MessageType: a.MessageType,
				Topic:       topic,
				Identifier:  sanitize.Identifier(topic),
				BufferSize:  a.BufferSize,
				Source:      e.File,
			})
		}
		logger.Debug("Schema file bound.", "path", e.File.Path, "message", a.MessageType, "topics", a.Topics, "buffer", a.BufferSize)
	}

	logger.Debug("Registry model built.", "bindings", len(m.Bindings), "skipped", len(m.Skipped))
	return m
}
