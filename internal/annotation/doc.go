// Package annotation extracts the message declaration and the topic
// annotations from the text of a schema file.
//
// Two annotation comments are recognized anywhere in the file:
//
//	// @topic: sensor_baro sensor_baro_filtered
//	// @buffer: 4
//
// Only the first comment of each kind is honored. A missing @topic falls back
// to the file stem, a missing or malformed @buffer falls back to 1.
//
// The file is tokenized rather than matched with a pattern, so a `message`
// keyword inside a comment or a string literal is never taken as the
// declaration.
package annotation
