// Package descriptorset reads the structured output of the schema compiler (a
// serialized FileDescriptorSet, as produced by `protoc -o`) so message
// declarations and comments can be taken from the compiler instead of being
// re-derived from schema text.
package descriptorset
