// Package yamlcfg provides the YAML implementation of the
// config.DescriptorLoader interface for `<stem>.topics.yaml` sidecar files.
package yamlcfg
