package param

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParameter_NewIsUnboundAndFree(t *testing.T) {
	p := New("test", 0.5)

	assert.True(t, p.IsUnbound())
	assert.True(t, p.IsFree())
	assert.Equal(t, float32(0), p.Get(), "unbound parameters read as zero")
	assert.Equal(t, float32(0.5), p.Link().Default())
}

func TestParameter_BindReadsAndWritesThroughArena(t *testing.T) {
	arena := NewArena()
	arena.Reset(1)
	p := New("test", 0)
	p.Bind(arena.Handle(0))

	p.Set(123)
	assert.Equal(t, float32(123), p.Get())
	assert.Equal(t, []float32{123}, arena.Values())

	p.Add(1)
	assert.Equal(t, float32(124), p.Get())
}

func TestParameter_SetLinkDefersToNextBind(t *testing.T) {
	arena := NewArena()
	arena.Reset(1)
	p := New("test", 2)
	p.Bind(arena.Handle(0))
	p.Set(2)

	p.SetLink("Osc: x")

	assert.False(t, p.IsFree())
	assert.False(t, p.IsUnbound(), "changing the link must not touch resolved storage")
	assert.Equal(t, float32(2), p.Get())
	assert.Equal(t, "Osc: x", p.Link().Target())
}

func TestParameter_AliasedHandlesShareStorage(t *testing.T) {
	arena := NewArena()
	arena.Reset(1)
	a := New("a", 0)
	b := New("b", 0)
	a.Bind(arena.Handle(0))
	b.Bind(a.Handle())

	a.Set(7)
	assert.Equal(t, float32(7), b.Get())
	b.Set(-3)
	assert.Equal(t, float32(-3), a.Get())
	assert.True(t, a.Handle().Same(b.Handle()))
}

func TestHandle_StaleAfterReset(t *testing.T) {
	arena := NewArena()
	arena.Reset(4)
	h := arena.Handle(3)
	h.Store(9)

	arena.Reset(1)

	assert.False(t, h.Valid())
	assert.Equal(t, float32(0), h.Load())
	assert.NotPanics(t, func() { h.Store(1) }, "stale writes are dropped")
	_, ok := h.Slot()
	assert.False(t, ok)
}

func TestArena_HandleOutOfRangePanics(t *testing.T) {
	arena := NewArena()
	arena.Reset(2)
	require.Panics(t, func() { arena.Handle(2) })
}

func TestLink_String(t *testing.T) {
	testCases := []struct {
		name string
		link Link
		want string
	}{
		{name: "value", link: Value(440), want: "440"},
		{name: "fraction", link: Value(0.25), want: "0.25"},
		{name: "reference", link: Reference("Osc: x"), want: `-> "Osc: x"`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.link.String())
		})
	}
}
