// Package buildinfo carries version information set at link time:
//
//	go build -ldflags "-X github.com/vk/topicgen/internal/buildinfo.Version=v1.2.0"
package buildinfo

import (
	"fmt"
	"runtime"
)

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String returns a one-line version banner.
func String() string {
	return fmt.Sprintf("topicgen %s (commit=%s, date=%s, %s)", Version, Commit, Date, runtime.Version())
}
