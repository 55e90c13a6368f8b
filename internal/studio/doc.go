// Package studio is the editor-facing surface of a patch: list and edit
// links, add and remove nodes, bind, and render closed sample batches.
//
// Every method takes the same lock, so edits, binds and renders from any
// number of goroutines are serialised onto one logical thread. Edits never
// touch the bound state directly; they mark the studio stale and RunBatch
// refuses to render until Bind has been called again.
package studio
