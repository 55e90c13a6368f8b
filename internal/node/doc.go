// Package node defines the unit contract shared by every signal-processing
// block in a patch, and Group, the composite that is itself a unit.
//
// A Node exposes a dense, stable index space of parameters (0..count-1) and a
// Run method that advances the unit by one sample reading and writing only
// its own parameters. Nodes never talk to each other directly: they meet in
// the engine's backing store through parameter aliasing.
//
// Group flattens its children's index spaces in declaration order, so groups
// nest to any depth and the engine only ever sees one root.
package node
