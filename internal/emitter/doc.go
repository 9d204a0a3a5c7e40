// Package emitter renders a model.RegistryModel into the two C++ artifacts
// consumed by the mreq runtime: a declarations header and a definitions
// source file holding the register_topics() routine.
//
// Rendering is a pure function of the model. The same model always produces
// the same bytes.
package emitter
