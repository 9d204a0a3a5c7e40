// Package schema holds the HCL-tagged structures that a sidecar topic
// descriptor is decoded into before translation to the config model.
package schema

import "github.com/hashicorp/hcl/v2"

// TopicFile represents the top-level structure of a `<stem>.topics.hcl` file:
//
//	topics  = ["sensor_baro", "sensor_baro_filtered"]
//	buffer  = 4
//	message = "SensorBaro"
//
// Topics and Buffer are kept as raw expressions so the loader can accept a
// single space-separated string for topics and a quoted number for buffer.
type TopicFile struct {
	Topics  hcl.Expression `hcl:"topics,optional"`
	Buffer  hcl.Expression `hcl:"buffer,optional"`
	Message string         `hcl:"message,optional"`
}
