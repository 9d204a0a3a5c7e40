// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the generation lifecycle (validate inputs,
// parse, build the registry model, emit, write), decoupled from any specific
// entrypoint like a CLI.
package app
