package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vk/topicgen/internal/model"
)

var (
	// ErrCollision is matched by CollisionError.
	ErrCollision = errors.New("topic identifier collision")
	// ErrStaleOutput is matched by StaleOutputError.
	ErrStaleOutput = errors.New("generated output is stale")
)

// CollisionError is returned in strict mode when two bindings share a
// sanitized identifier.
type CollisionError struct {
	Collisions []model.Collision
}

func (e *CollisionError) Error() string {
	var parts []string
	for _, c := range e.Collisions {
		var users []string
		for _, b := range c.Bindings {
			users = append(users, fmt.Sprintf("%s (%s %q)", b.Source.Path, b.MessageType, b.Topic))
		}
		parts = append(parts, fmt.Sprintf("%q used by %s", c.Identifier, strings.Join(users, ", ")))
	}
	return "identifier collision: " + strings.Join(parts, "; ")
}

func (e *CollisionError) Is(target error) bool {
	return target == ErrCollision
}

// StaleOutputError is returned in check mode when an artifact on disk differs
// from what would be generated.
type StaleOutputError struct {
	Paths []string
}

func (e *StaleOutputError) Error() string {
	return "generated output is out of date: " + strings.Join(e.Paths, ", ")
}

func (e *StaleOutputError) Is(target error) bool {
	return target == ErrStaleOutput
}
