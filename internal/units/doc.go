// Package units holds the concrete node variants: the output tap, the
// physically integrated oscillators, and memoryless shaping units.
//
// Every variant embeds node.Base for its fixed parameter list and keeps typed
// pointers to its own parameters so Run never looks anything up by name.
// Input and output roles are a naming convention only.
package units
