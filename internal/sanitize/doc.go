// Package sanitize turns arbitrary topic names into text that is safe to embed
// as a generated C/C++ identifier.
package sanitize
