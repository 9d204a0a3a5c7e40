package annotation

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"text/scanner"
)

// DefaultBufferSize is used when a file carries no valid @buffer annotation.
const DefaultBufferSize = 1

// declKeyword introduces the message declaration in a schema file.
const declKeyword = "message"

var (
	topicPattern  = regexp.MustCompile(`^@topic\s*:(.*)$`)
	bufferPattern = regexp.MustCompile(`^@buffer\s*:(.*)$`)
)

// Annotations is everything the parser learned about one schema file.
type Annotations struct {
	// MessageType is the first declared message name. Empty when HasMessage is false.
	MessageType string
	HasMessage  bool
	MessageLine int

	// Topics is never empty after Parse: it holds the @topic names or the default.
	Topics        []string
	TopicDeclared bool
	TopicLine     int

	// BufferSize is always >= 1 after Parse.
	BufferSize     int
	BufferDeclared bool
	BufferValid    bool
	BufferLine     int

	// Duplicates counts @topic/@buffer comments ignored because an earlier one won.
	Duplicates int
	// ScanErrors counts tokenizer errors that were skipped over.
	ScanErrors int
}

// Parse tokenizes the content of the schema file at path and returns its
// annotations with defaults applied. It never fails.
func Parse(path, content string) *Annotations {
	a := &Annotations{}

	var s scanner.Scanner
	s.Init(strings.NewReader(content))
	s.Filename = path
	s.Mode = scanner.ScanIdents | scanner.ScanInts | scanner.ScanFloats |
		scanner.ScanChars | scanner.ScanStrings | scanner.ScanRawStrings |
		scanner.ScanComments
	s.Error = func(*scanner.Scanner, string) { a.ScanErrors++ }

	expectName := false
	for tok := s.Scan(); tok != scanner.EOF; tok = s.Scan() {
		switch tok {
		case scanner.Comment:
			a.ObserveComment(s.TokenText(), s.Position.Line)
			continue
		case scanner.Ident:
			text := s.TokenText()
			if expectName && !a.HasMessage {
				a.MessageType = text
				a.HasMessage = true
				a.MessageLine = s.Position.Line
			}
			expectName = text == declKeyword
			continue
		}
		expectName = false
	}

	a.ApplyDefaults(path)
	return a
}

// ObserveComment inspects one comment for annotations. The comment may still
// carry its // or /* */ markers, or be bare text as reported by a schema
// compiler. Line is the line the comment starts on.
func (a *Annotations) ObserveComment(text string, line int) {
	for i, raw := range strings.Split(stripMarkers(text), "\n") {
		body := strings.TrimSpace(raw)
		body = strings.TrimSpace(strings.TrimPrefix(body, "*"))

		if m := topicPattern.FindStringSubmatch(body); m != nil {
			if a.TopicDeclared {
				a.Duplicates++
				continue
			}
			names := strings.Fields(m[1])
			if len(names) == 0 {
				continue
			}
			a.Topics = names
			a.TopicDeclared = true
			a.TopicLine = line + i
			continue
		}

		if m := bufferPattern.FindStringSubmatch(body); m != nil {
			if a.BufferDeclared {
				a.Duplicates++
				continue
			}
			a.BufferDeclared = true
			a.BufferLine = line + i
			a.BufferSize, a.BufferValid = parseBuffer(m[1])
		}
	}
}

// ApplyDefaults fills Topics and BufferSize when no annotation supplied them.
func (a *Annotations) ApplyDefaults(path string) {
	if len(a.Topics) == 0 {
		a.Topics = []string{DefaultTopic(path)}
	}
	if a.BufferSize < 1 {
		a.BufferSize = DefaultBufferSize
	}
}

// DefaultTopic is the topic name used when a schema file declares none: the
// file name without its final extension.
func DefaultTopic(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func parseBuffer(raw string) (int, bool) {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return DefaultBufferSize, false
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil || n < 1 {
		return DefaultBufferSize, false
	}
	return n, true
}

func stripMarkers(text string) string {
	switch {
	case strings.HasPrefix(text, "//"):
		return strings.TrimPrefix(text, "//")
	case strings.HasPrefix(text, "/*"):
		return strings.TrimSuffix(strings.TrimPrefix(text, "/*"), "*/")
	}
	return text
}
