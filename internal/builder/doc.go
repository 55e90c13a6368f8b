// Package builder turns a format-agnostic config.Patch into a node tree using
// the variant registry, and snapshots a node tree back into a Patch.
//
// Building does not bind: the returned root is handed to an engine, which
// resolves references at its next Bind. Dangling references are therefore not
// build errors; unknown node types, unknown parameter names and repeated
// instance names within one group are.
package builder
