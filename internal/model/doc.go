// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package model holds the versioned intermediate representation between the
// annotation parser and the code emitter.
//
// # Core Concepts
//
//   - SchemaFile: one input file, read once and never modified.
//
//   - TopicBinding: one (message type, topic) pair, carrying the sanitized
//     identifier and the buffer size. A schema file with N topics yields N
//     bindings.
//
//   - RegistryModel: the ordered list of bindings for one run. Order is input
//     file order, then annotation order within a file. The emitter consumes
//     only this structure, so output templates can change without touching
//     the parsing code.
//
// The Builder never fails and never deduplicates. Two bindings that share an
// identifier are both kept; RegistryModel.Collisions reports them so the caller
// can decide what to do.
package model
