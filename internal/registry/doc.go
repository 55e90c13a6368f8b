// Package registry maps the type names used in patch files and editor
// commands (e.g. "DO") to the compiled Go constructors of each unit variant.
//
// Variant packages register themselves through the Module interface. Once
// populated, the registry is validated so that every constructor produces a
// node whose type name and parameter names agree with what patches may
// reference, which keeps a whole class of load-time errors out of the
// engine.
package registry
