package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/phisynth/internal/param"
)

func TestParams_DT(t *testing.T) {
	assert.Equal(t, float32(1.0/48000.0), DefaultParams().DT())

	p, err := NewParams(44100)
	require.NoError(t, err)
	assert.Equal(t, float32(1.0/44100.0), p.DT())

	_, err = NewParams(0)
	assert.Error(t, err)
}

func TestPatch_NodeCountAndLink(t *testing.T) {
	osc := &NodeDecl{Type: "DO", Name: "Osc", Links: []Assignment{
		{Param: "x", Link: param.Value(1)},
		{Param: "frequency", Link: param.Value(220)},
		{Param: "x", Link: param.Reference("LFO: x")},
	}}
	p := &Patch{Elements: []*Element{
		{Node: &NodeDecl{Type: "Output", Name: "Output"}},
		{Group: &GroupDecl{Name: "voice", Elements: []*Element{{Node: osc}}}},
	}}

	assert.Equal(t, 2, p.NodeCount())

	l, ok := osc.Link("x")
	require.True(t, ok)
	assert.Equal(t, param.Reference("LFO: x"), l)

	l, ok = osc.Link("frequency")
	require.True(t, ok)
	assert.Equal(t, float32(220), l.Default())

	_, ok = osc.Link("damp")
	assert.False(t, ok)
}
