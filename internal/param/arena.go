package param

// Arena is the packed backing store for every owned parameter of one bound
// graph. Reset reallocates it and invalidates every handle issued before.
type Arena struct {
	values     []float32
	generation uint64
}

// NewArena returns an empty arena. Handles can only be issued after Reset.
func NewArena() *Arena {
	return &Arena{}
}

// Reset discards the current slots and allocates size fresh zeroed slots.
func (a *Arena) Reset(size int) {
	a.values = make([]float32, size)
	a.generation++
}

// Len is the number of slots allocated by the last Reset.
func (a *Arena) Len() int { return len(a.values) }

// Generation counts Resets; handles from another generation are stale.
func (a *Arena) Generation() uint64 { return a.generation }

// Handle issues a handle for slot i of the current generation.
func (a *Arena) Handle(i int) Handle {
	if i < 0 || i >= len(a.values) {
		panic("param: slot out of range")
	}
	return Handle{arena: a, slot: i, generation: a.generation}
}

// Values returns a copy of the current slot contents.
func (a *Arena) Values() []float32 {
	out := make([]float32, len(a.values))
	copy(out, a.values)
	return out
}

// Handle locates one mutable float32 cell inside an Arena. The zero Handle is
// unbound.
type Handle struct {
	arena      *Arena
	slot       int
	generation uint64
}

// Valid reports whether the handle points at a live slot.
func (h Handle) Valid() bool {
	return h.arena != nil && h.generation == h.arena.generation
}

// Slot returns the slot index and true for a valid handle.
func (h Handle) Slot() (int, bool) {
	if !h.Valid() {
		return 0, false
	}
	return h.slot, true
}

// Same reports whether two valid handles alias the same cell.
func (h Handle) Same(o Handle) bool {
	return h.Valid() && o.Valid() && h.arena == o.arena && h.slot == o.slot
}

// Load reads the cell, 0 when the handle is not valid.
func (h Handle) Load() float32 {
	if !h.Valid() {
		return 0
	}
	return h.arena.values[h.slot]
}

// Store writes the cell. Writes through an invalid handle are dropped.
func (h Handle) Store(v float32) {
	if !h.Valid() {
		return
	}
	h.arena.values[h.slot] = v
}
