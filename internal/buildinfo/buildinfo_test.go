package buildinfo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	s := String()

	assert.True(t, strings.HasPrefix(s, "topicgen dev (commit=none, date=unknown, go"), s)
}
