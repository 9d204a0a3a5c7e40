// Package config defines the format-agnostic sidecar descriptor model and the
// DescriptorLoader interface used to read it.
//
// A sidecar descriptor sits next to a schema file (`sensor.proto` ->
// `sensor.topics.hcl` or `sensor.topics.yaml`) and states the topic options
// explicitly instead of scraping them from comments. Concrete loaders for each
// format live in separate packages.
package config
