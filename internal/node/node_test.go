package node

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/phisynth/internal/param"
)

// stub is a fixed-arity unit that records when it runs.
type stub struct {
	Base
	log *[]string
}

func newStub(instance string, log *[]string, locals ...string) *stub {
	params := make([]*param.Parameter, len(locals))
	for i, l := range locals {
		params[i] = param.New(l, float32(i))
	}
	return &stub{Base: NewBase("STUB", instance, params...), log: log}
}

func (s *stub) Run() {
	if s.log != nil {
		*s.log = append(*s.log, s.InstanceName())
	}
}

func TestBase_ParameterNames(t *testing.T) {
	s := newStub("A", nil, "x", "y")

	assert.Equal(t, "STUB", s.TypeName())
	assert.Equal(t, 2, s.ParameterCount())
	assert.Equal(t, []string{"A: x", "A: y"}, ParameterNames(s))
}

func TestBase_ParOutOfRangePanics(t *testing.T) {
	s := newStub("A", nil, "x")

	assert.PanicsWithValue(t, `invalid parameter number 1 in STUB "A" of size 1`, func() { s.Par(1) })
	assert.Panics(t, func() { s.Par(-1) })
}

func TestGroup_FlattensChildrenInDeclarationOrder(t *testing.T) {
	inner := NewNamedGroup("inner", newStub("B", nil, "p"), newStub("C", nil, "q", "r"))
	g := NewGroup(newStub("A", nil, "x", "y"), inner, newStub("D", nil, "z"))

	require.Equal(t, 6, g.ParameterCount())
	assert.Equal(t, []string{"A: x", "A: y", "B: p", "C: q", "C: r", "D: z"}, ParameterNames(g))
	assert.Equal(t, "r", g.Par(4).Name())
	assert.Same(t, inner.Par(2), g.Par(4))

	entries := Flatten(g)
	require.Len(t, entries, 6)
	for i, e := range entries {
		assert.Equal(t, g.ParameterName(i), e.Name)
		assert.Same(t, g.Par(i), e.Param)
	}
}

func TestGroup_ParOutOfRangePanicsWithSize(t *testing.T) {
	g := NewGroup(newStub("A", nil, "x", "y"), newStub("B", nil, "z"))

	assert.PanicsWithValue(t, `invalid parameter number 3 in container "container" of size 3`, func() { g.Par(3) })
	assert.PanicsWithValue(t, `invalid parameter number -1 in container "container" of size 3`, func() { g.ParameterName(-1) })
}

func TestGroup_RunVisitsChildrenOnceInOrder(t *testing.T) {
	var log []string
	g := NewGroup(
		newStub("A", &log, "x"),
		NewNamedGroup("inner", newStub("B", &log, "y"), newStub("C", &log, "z")),
		newStub("D", &log, "w"),
	)

	g.Run()

	assert.Equal(t, []string{"A", "B", "C", "D"}, log)
}

func TestGroup_AddRemoveChild(t *testing.T) {
	g := NewGroup(newStub("A", nil, "x"))
	assert.Equal(t, ContainerType, g.TypeName())
	assert.Equal(t, ContainerType, g.InstanceName())

	g.Add(newStub("B", nil, "y", "z"))
	require.Equal(t, 3, g.ParameterCount())

	_, ok := g.Child("B")
	assert.True(t, ok)

	removed, ok := g.Remove("A")
	require.True(t, ok)
	assert.Equal(t, "A", removed.InstanceName())
	assert.Equal(t, []string{"B: y", "B: z"}, ParameterNames(g))

	_, ok = g.Remove("A")
	assert.False(t, ok)
}

func TestLookup_FirstMatchWins(t *testing.T) {
	first := newStub("A", nil, "x")
	second := newStub("A", nil, "x")
	g := NewGroup(first, second)

	assert.Same(t, first.Par(0), Lookup(g, "A: x"))
	assert.Nil(t, Lookup(g, "A: nope"))
}

func TestFreeParameterCount(t *testing.T) {
	s := newStub("A", nil, "x", "y", "z")
	s.Par(1).SetLink("B: q")

	assert.Equal(t, 2, FreeParameterCount(s))
	assert.Equal(t, 2, FreeParameterCount(NewGroup(s)))
}
