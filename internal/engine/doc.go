// Package engine binds a node tree to a packed backing store and drives it
// one sample at a time.
//
// # Bind
//
// Bind always recomputes everything from the declared links:
//
//  1. Allocation: the arena is reset to exactly as many slots as there are
//     value-linked parameters. Walking the flattened index space in order,
//     every parameter is unbound first, then each value-linked parameter takes
//     the next slot and writes its default into it.
//  2. Alias resolution: walking again in order, each reference follows its
//     chain of references to the first value-linked parameter and shares that
//     parameter's slot. Chains that end at an unknown name, or that loop, leave
//     the parameter unbound so it reads as zero.
//
// Finally the output handle is resolved from the qualified name "OUT" with the
// same chain rule.
//
// Problems found while binding are never errors: they are collected in a
// Report and logged, and playback continues with zeros where cables dangle.
//
// # Tick
//
// Tick runs the root once. Aliases share storage, so a write made by one node
// is visible to every later reader in the same tick; declaration order is the
// only ordering there is. Tick performs no lookups and no allocation.
//
// An Engine is not safe for concurrent use. Any Bind invalidates every handle
// issued by the previous Bind.
package engine
