package emitter

import (
	"bytes"
	"embed"
	"fmt"
	"path/filepath"
	"strconv"
	"text/template"

	"github.com/vk/topicgen/internal/model"
)

// Default artifact names, matching what the mreq examples include.
const (
	DefaultHeaderName = "topic_registry_autogen.hpp"
	DefaultSourceName = "topic_registry_autogen.cpp"
)

// bindingSuffix is the extension of the header the schema compiler emits for
// each schema file (nanopb).
const bindingSuffix = ".pb.h"

//go:embed templates/*.tmpl
var templateFS embed.FS

var funcs = template.FuncMap{
	"quote": strconv.Quote,
	"base":  filepath.Base,
}

// Options names the two artifacts.
type Options struct {
	HeaderName string
	SourceName string
}

// Document is one rendered artifact.
type Document struct {
	Name    string
	Content []byte
}

// Output holds both rendered artifacts.
type Output struct {
	Declarations Document
	Definitions  Document
}

// Documents returns the artifacts in write order.
func (o *Output) Documents() []Document {
	return []Document{o.Declarations, o.Definitions}
}

// Emitter renders registry models with the embedded templates.
type Emitter struct {
	opts         Options
	declarations *template.Template
	definitions  *template.Template
}

type includeView struct {
	MessageType string
	Include     string
}

type view struct {
	Version    int
	HeaderName string
	Messages   []includeView
	Bindings   []model.TopicBinding
}

// New parses the embedded templates. Empty option fields get the defaults.
func New(opts Options) (*Emitter, error) {
	if opts.HeaderName == "" {
		opts.HeaderName = DefaultHeaderName
	}
	if opts.SourceName == "" {
		opts.SourceName = DefaultSourceName
	}

	decl, err := parse("declarations.hpp.tmpl")
	if err != nil {
		return nil, err
	}
	def, err := parse("definitions.cpp.tmpl")
	if err != nil {
		return nil, err
	}
	return &Emitter{opts: opts, declarations: decl, definitions: def}, nil
}

// Options returns the effective options.
func (e *Emitter) Options() Options {
	return e.opts
}

// Emit renders both artifacts for m.
func (e *Emitter) Emit(m *model.RegistryModel) (*Output, error) {
	v := view{
		Version:    m.Version,
		HeaderName: e.opts.HeaderName,
		Bindings:   m.Bindings,
	}
	for _, ref := range m.MessageTypes() {
		v.Messages = append(v.Messages, includeView{
			MessageType: ref.MessageType,
			Include:     ref.Source.Stem() + bindingSuffix,
		})
	}

	decl, err := render(e.declarations, v)
	if err != nil {
		return nil, err
	}
	def, err := render(e.definitions, v)
	if err != nil {
		return nil, err
	}

	return &Output{
		Declarations: Document{Name: e.opts.HeaderName, Content: decl},
		Definitions:  Document{Name: e.opts.SourceName, Content: def},
	}, nil
}

func parse(name string) (*template.Template, error) {
	t, err := template.New(name).Funcs(funcs).ParseFS(templateFS, "templates/"+name)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
	}
	return t, nil
}

func render(t *template.Template, v view) ([]byte, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, v); err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", t.Name(), err)
	}
	return buf.Bytes(), nil
}
