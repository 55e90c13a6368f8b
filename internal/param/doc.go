// Package param defines the scalar slots that units expose and the storage
// they bind to.
//
// A Parameter carries two independent things: its declared Link (either an
// owned default value or a reference to another parameter by qualified name)
// and its resolved Handle. The Link is what an editor changes; the Handle is
// derived from it by the engine on every bind and is never patched in place.
//
// Storage is an Arena of float32 slots. A Handle is an arena pointer plus a
// slot index and the arena generation it was issued under, so a handle that
// survives a rebind reads as unbound instead of pointing into a reallocated
// buffer.
package param
