// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines TopicBinding and RegistryModel.
package model

// Version is the format version of RegistryModel. Emitted artifacts carry it
// in their banner so consumers can detect a template change.
const Version = 1

// TopicBinding associates one message type with one topic.
type TopicBinding struct {
	MessageType string
	// Topic is the raw name as written in the annotation or descriptor.
	Topic string
	// Identifier is Topic sanitized for use in generated code.
	Identifier string
	BufferSize int
	// Source is the schema file the binding came from.
	Source SchemaFile
}

// MessageRef is a distinct message type and the schema file that first declared it.
type MessageRef struct {
	MessageType string
	Source      SchemaFile
}

// Collision groups bindings that share one sanitized identifier.
type Collision struct {
	Identifier string
	Bindings   []TopicBinding
}

// RegistryModel is the ordered set of bindings produced by one run.
type RegistryModel struct {
	Version  int
	Bindings []TopicBinding
	// Skipped lists schema files that had no message declaration.
	Skipped []SchemaFile
}

// Len returns the number of bindings.
func (m *RegistryModel) Len() int {
	return len(m.Bindings)
}

// MessageTypes returns every distinct message type in first-appearance order.
func (m *RegistryModel) MessageTypes() []MessageRef {
	var refs []MessageRef
	seen := make(map[string]struct{})
	for _, b := range m.Bindings {
		if _, ok := seen[b.MessageType]; ok {
			continue
		}
		seen[b.MessageType] = struct{}{}
		refs = append(refs, MessageRef{MessageType: b.MessageType, Source: b.Source})
	}
	return refs
}

// Collisions returns the identifiers used by more than one binding, in the
// order each identifier was first seen. The model itself is not modified.
func (m *RegistryModel) Collisions() []Collision {
	index := make(map[string]int)
	var groups []Collision
	for _, b := range m.Bindings {
		i, ok := index[b.Identifier]
		if !ok {
			i = len(groups)
			index[b.Identifier] = i
			groups = append(groups, Collision{Identifier: b.Identifier})
		}
		groups[i].Bindings = append(groups[i].Bindings, b)
	}

	var out []Collision
	for _, g := range groups {
		if len(g.Bindings) > 1 {
			out = append(out, g)
		}
	}
	return out
}
