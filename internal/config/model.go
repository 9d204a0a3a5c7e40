package config

import (
	"errors"
	"fmt"
)

// ErrInvalidDescriptor is matched by every DescriptorError.
var ErrInvalidDescriptor = errors.New("invalid topic descriptor")

// Descriptor is the explicit per-schema topic configuration. Zero values mean
// "not set" and leave the comment annotations or defaults in charge.
type Descriptor struct {
	// Path is the file the descriptor was read from.
	Path string
	// Topics overrides the @topic annotation when non-empty.
	Topics []string
	// BufferSize overrides the @buffer annotation when >= 1.
	BufferSize int
	// Message overrides the detected message declaration when non-empty.
	Message string
}

// HasTopics reports whether the descriptor names any topic.
func (d *Descriptor) HasTopics() bool {
	return d != nil && len(d.Topics) > 0
}

// HasBuffer reports whether the descriptor carries a usable buffer size.
func (d *Descriptor) HasBuffer() bool {
	return d != nil && d.BufferSize >= 1
}

// DescriptorError reports a descriptor that exists but cannot be decoded.
type DescriptorError struct {
	Path string
	Err  error
}

func (e *DescriptorError) Error() string {
	return fmt.Sprintf("failed to load topic descriptor %s: %v", e.Path, e.Err)
}

func (e *DescriptorError) Unwrap() error {
	return e.Err
}

func (e *DescriptorError) Is(target error) bool {
	return target == ErrInvalidDescriptor
}
