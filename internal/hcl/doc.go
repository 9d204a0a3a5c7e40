// Package hcl provides the HCL implementation of the config.DescriptorLoader
// interface. It parses `<stem>.topics.hcl` sidecar files, evaluates their
// attributes, and converts the resulting cty values into a config.Descriptor.
package hcl
