package descriptorset

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/descriptorpb"
)

// Comment is one comment reported by the compiler, with its 1-based start line.
type Comment struct {
	Text string
	Line int
}

// Entry is what the descriptor set knows about one schema file.
type Entry struct {
	// File is the name recorded by the compiler, e.g. "sensors/baro.proto".
	File        string
	MessageType string
	HasMessage  bool
	// Comments is empty unless the set was built with source info.
	Comments []Comment
}

// Set indexes the files of a FileDescriptorSet by base name. Several files
// may share a base name when they live in different directories.
type Set struct {
	byBase map[string][]Entry
	count  int
}

// Load reads and decodes a binary FileDescriptorSet from path.
func Load(p string) (*Set, error) {
	b, err := os.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("failed to read descriptor set %s: %w", p, err)
	}

	var fds descriptorpb.FileDescriptorSet
	if err := proto.Unmarshal(b, &fds); err != nil {
		return nil, fmt.Errorf("failed to decode descriptor set %s: %w", p, err)
	}
	return New(&fds), nil
}

// New indexes an already decoded FileDescriptorSet. A file name that appears
// more than once is indexed only the first time.
func New(fds *descriptorpb.FileDescriptorSet) *Set {
	s := &Set{byBase: make(map[string][]Entry)}
	seen := make(map[string]struct{})
	for _, fd := range fds.GetFile() {
		name := path.Clean(fd.GetName())
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		base := path.Base(name)
		s.byBase[base] = append(s.byBase[base], newEntry(fd))
		s.count++
	}
	return s
}

// Len returns the number of indexed files.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return s.count
}

// Lookup finds the entry for a schema file path. Among the files sharing its
// base name, the one whose compiler name matches the most trailing path
// elements of schemaPath wins. When that is not a single file, ok is false
// and ambiguous lists the tied compiler names.
func (s *Set) Lookup(schemaPath string) (e Entry, ok bool, ambiguous []string) {
	if s == nil {
		return Entry{}, false, nil
	}
	elems := splitPath(filepath.ToSlash(filepath.Clean(schemaPath)))
	candidates := s.byBase[elems[len(elems)-1]]
	switch len(candidates) {
	case 0:
		return Entry{}, false, nil
	case 1:
		return candidates[0], true, nil
	}

	best, bestScore, tied := -1, 0, false
	for i, c := range candidates {
		score := sharedSuffix(elems, splitPath(path.Clean(c.File)))
		switch {
		case score > bestScore:
			best, bestScore, tied = i, score, false
		case score == bestScore:
			tied = true
		}
	}
	if tied {
		for _, c := range candidates {
			if sharedSuffix(elems, splitPath(path.Clean(c.File))) == bestScore {
				ambiguous = append(ambiguous, c.File)
			}
		}
		return Entry{}, false, ambiguous
	}
	return candidates[best], true, nil
}

func splitPath(p string) []string {
	return strings.Split(strings.TrimPrefix(p, "/"), "/")
}

// sharedSuffix counts the equal trailing elements of a and b.
func sharedSuffix(a, b []string) int {
	n := 0
	for i, j := len(a)-1, len(b)-1; i >= 0 && j >= 0 && a[i] == b[j]; i, j = i-1, j-1 {
		n++
	}
	return n
}

func newEntry(fd *descriptorpb.FileDescriptorProto) Entry {
	e := Entry{File: fd.GetName()}
	if msgs := fd.GetMessageType(); len(msgs) > 0 {
		e.MessageType = msgs[0].GetName()
		e.HasMessage = e.MessageType != ""
	}
	e.Comments = collectComments(fd.GetSourceCodeInfo())
	return e
}

func collectComments(info *descriptorpb.SourceCodeInfo) []Comment {
	var out []Comment
	seen := make(map[Comment]struct{})
	add := func(text string, line int) {
		if text == "" {
			return
		}
		c := Comment{Text: text, Line: line}
		if _, ok := seen[c]; ok {
			return
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}

	for _, loc := range info.GetLocation() {
		span := loc.GetSpan()
		if len(span) == 0 {
			continue
		}
		// Detached and leading comments precede the element; the exact line is
		// not recorded, so they are pinned to the element's start line.
		line := int(span[0]) + 1
		for _, d := range loc.GetLeadingDetachedComments() {
			add(d, line)
		}
		add(loc.GetLeadingComments(), line)
		add(loc.GetTrailingComments(), line)
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Line < out[j].Line })
	return out
}
