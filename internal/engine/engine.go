package engine

import (
	"iter"

	"github.com/vk/phisynth/internal/node"
	"github.com/vk/phisynth/internal/param"
)

// OutputName is the qualified name resolved as the graph's output tap.
const OutputName = "OUT"

// Engine owns a root node, the backing store for its owned parameters and the
// resolved output handle.
type Engine struct {
	root    node.Node
	arena   *param.Arena
	output  param.Handle
	entries []node.Entry
	bound   bool
}

// New returns an unbound engine for root.
func New(root node.Node) *Engine {
	return &Engine{root: root, arena: param.NewArena()}
}

// Root returns the root node. Structural edits made through it take effect
// at the next Bind.
func (e *Engine) Root() node.Node { return e.root }

// Bound reports whether Bind has run at least once.
func (e *Engine) Bound() bool { return e.bound }

// Tick runs every node once in declaration order. It must not be called
// before the first Bind.
func (e *Engine) Tick() {
	if !e.bound {
		panic("engine: Tick called before Bind")
	}
	e.root.Run()
}

// Out reads the output tap, 0 when no "OUT" parameter resolves.
func (e *Engine) Out() float32 {
	return e.output.Load()
}

// Next advances one tick and returns the new output sample.
func (e *Engine) Next() float32 {
	e.Tick()
	return e.Out()
}

// Samples exposes the engine as an infinite sequence: each element costs
// exactly one Tick followed by one Out. Ranging again continues from the
// current state; nothing is replayed.
func (e *Engine) Samples() iter.Seq[float32] {
	return func(yield func(float32) bool) {
		for {
			if !yield(e.Next()) {
				return
			}
		}
	}
}

// Render fills buf with consecutive samples.
func (e *Engine) Render(buf []float32) {
	for i := range buf {
		buf[i] = e.Next()
	}
}

// RunBatch performs n ticks and returns the n output samples as a closed
// batch that is safe to hand to another goroutine.
func (e *Engine) RunBatch(n int) []float32 {
	if n <= 0 {
		return nil
	}
	buf := make([]float32, n)
	e.Render(buf)
	return buf
}

// Backing returns a copy of the backing store.
func (e *Engine) Backing() []float32 {
	return e.arena.Values()
}

// OutputHandle returns the resolved output handle.
func (e *Engine) OutputHandle() param.Handle {
	return e.output
}

// Row describes one parameter after the last Bind.
type Row struct {
	Name  string
	Link  param.Link
	Slot  int // -1 when unbound
	Value float32
}

// Table lists every parameter bound by the last Bind in index order.
func (e *Engine) Table() []Row {
	rows := make([]Row, len(e.entries))
	for i, en := range e.entries {
		slot, ok := en.Param.Handle().Slot()
		if !ok {
			slot = -1
		}
		rows[i] = Row{Name: en.Name, Link: en.Param.Link(), Slot: slot, Value: en.Param.Get()}
	}
	return rows
}
