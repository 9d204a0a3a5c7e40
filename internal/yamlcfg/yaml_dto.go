package yamlcfg

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// YAMLTopicFile is the on-disk shape of a YAML topic descriptor.
type YAMLTopicFile struct {
	Topics  YAMLTopicList `yaml:"topics"`
	Buffer  YAMLBuffer    `yaml:"buffer"`
	Message string        `yaml:"message"`
}

// YAMLTopicList accepts either a sequence of names or one scalar holding
// whitespace-separated names.
type YAMLTopicList []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *YAMLTopicList) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		if value.Tag == "!!null" {
			*l = nil
			return nil
		}
		*l = strings.Fields(value.Value)
		return nil
	}

	var names []string
	if err := value.Decode(&names); err != nil {
		return err
	}
	var out []string
	for _, n := range names {
		out = append(out, strings.Fields(n)...)
	}
	*l = out
	return nil
}

// YAMLBuffer keeps the raw buffer node so the mapper can report a precise
// error. Set stays false when the key is absent or null.
type YAMLBuffer struct {
	Set    bool
	Scalar bool
	Value  string
	Line   int
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (b *YAMLBuffer) UnmarshalYAML(value *yaml.Node) error {
	*b = YAMLBuffer{
		Set:    true,
		Scalar: value.Kind == yaml.ScalarNode,
		Value:  value.Value,
		Line:   value.Line,
	}
	return nil
}
