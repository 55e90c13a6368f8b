package builder

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/phisynth/internal/config"
	"github.com/vk/phisynth/internal/ctxlog"
	"github.com/vk/phisynth/internal/engine"
	"github.com/vk/phisynth/internal/hcl"
	"github.com/vk/phisynth/internal/node"
	"github.com/vk/phisynth/internal/param"
	"github.com/vk/phisynth/internal/registry"
	"github.com/vk/phisynth/internal/units"
)

func setup(t *testing.T) (context.Context, *registry.Registry) {
	t.Helper()
	return ctxlog.Discard(context.Background()), registry.NewWithModules(&units.Module{})
}

func nodeDecl(typ, name string, links ...config.Assignment) *config.Element {
	return &config.Element{Node: &config.NodeDecl{Type: typ, Name: name, Links: links}}
}

func TestBuild(t *testing.T) {
	ctx, reg := setup(t)
	patch := &config.Patch{Elements: []*config.Element{
		nodeDecl("Output", "Output", config.Assignment{Param: "OUT", Link: param.Reference("Osc: x")}),
		nodeDecl("DO", "Osc", config.Assignment{Param: "damp", Link: param.Value(0)}),
		{Group: &config.GroupDecl{Name: "fx", Elements: []*config.Element{
			nodeDecl("ABS", "Rect", config.Assignment{Param: "inp", Link: param.Reference("Osc: y")}),
		}}},
	}}

	root, err := Build(ctx, patch, reg, config.DefaultParams())
	require.NoError(t, err)

	assert.Equal(t, 3, root.Len())
	assert.Equal(t, 1+6+2, root.ParameterCount())
	assert.Equal(t, param.Reference("Osc: x"), node.Lookup(root, "OUT").Link())
	assert.Equal(t, param.Value(0), node.Lookup(root, "Osc: damp").Link())
	assert.Equal(t, param.Value(440), node.Lookup(root, "Osc: frequency").Link(), "undeclared parameters keep defaults")
	assert.Equal(t, param.Reference("Osc: y"), node.Lookup(root, "Rect: inp").Link())

	fx, ok := root.Child("fx")
	require.True(t, ok)
	assert.Equal(t, node.ContainerType, fx.TypeName())
}

func TestBuild_Errors(t *testing.T) {
	ctx, reg := setup(t)
	testCases := []struct {
		name    string
		patch   *config.Patch
		wantErr string
	}{
		{
			name:    "unknown type",
			patch:   &config.Patch{Elements: []*config.Element{nodeDecl("VCF", "Filter")}},
			wantErr: `node "Filter": unknown node type: "VCF"`,
		},
		{
			name: "unknown parameter",
			patch: &config.Patch{Elements: []*config.Element{
				nodeDecl("DO", "Osc", config.Assignment{Param: "cutoff", Link: param.Value(1)}),
			}},
			wantErr: `node "Osc" (DO): unknown parameter "cutoff"`,
		},
		{
			name: "duplicate instance",
			patch: &config.Patch{Elements: []*config.Element{
				nodeDecl("DO", "Osc"), nodeDecl("PwO", "Osc"),
			}},
			wantErr: `duplicate instance name: "Osc"`,
		},
		{
			name: "error inside group",
			patch: &config.Patch{Elements: []*config.Element{
				{Group: &config.GroupDecl{Name: "g", Elements: []*config.Element{nodeDecl("NOPE", "n")}}},
			}},
			wantErr: `in group "g"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Build(ctx, tc.patch, reg, config.DefaultParams())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestBuild_ErrorsMatchSentinels(t *testing.T) {
	ctx, reg := setup(t)

	_, err := Build(ctx, &config.Patch{Elements: []*config.Element{nodeDecl("VCF", "F")}}, reg, config.DefaultParams())
	assert.ErrorIs(t, err, registry.ErrUnknownType)

	_, err = Build(ctx, &config.Patch{Elements: []*config.Element{
		nodeDecl("ABS", "A", config.Assignment{Param: "x", Link: param.Value(1)}),
	}}, reg, config.DefaultParams())
	assert.ErrorIs(t, err, ErrUnknownParameter)
}

func TestSnapshot_RebuildsIdenticalTree(t *testing.T) {
	ctx, reg := setup(t)
	out := units.NewOutput("Output")
	out.Par(0).SetLink("Osc: x")
	osc := units.NewDampedOscillator("Osc", config.DefaultParams())
	node.Lookup(osc, "Osc: frequency").SetValue(220)
	root := node.NewGroup(out, node.NewNamedGroup("voice", osc))

	snap := Snapshot(root)
	require.Len(t, snap.Elements, 2)
	assert.Equal(t, []config.Assignment{{Param: "OUT", Link: param.Reference("Osc: x")}}, snap.Elements[0].Node.Links)
	require.NotNil(t, snap.Elements[1].Group)
	assert.Len(t, snap.Elements[1].Group.Elements[0].Node.Links, 6)

	rebuilt, err := Build(ctx, snap, reg, config.DefaultParams())
	require.NoError(t, err)
	assert.Equal(t, snap, Snapshot(rebuilt))
	assert.Equal(t, node.ParameterNames(root), node.ParameterNames(rebuilt))
}

func TestSnapshot_SingleNode(t *testing.T) {
	snap := Snapshot(units.NewAbs("Rect"))
	require.Len(t, snap.Elements, 1)
	assert.Equal(t, "ABS", snap.Elements[0].Node.Type)
}

func TestBuild_FromPatchFile(t *testing.T) {
	ctx, reg := setup(t)
	path := filepath.Join(t.TempDir(), "patch.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`
node "Output" "Output" {
  OUT = "Osc: x"
}
node "DO" "Osc" {
  damp = 0
}
`), 0o644))

	patch, err := hcl.NewLoader(config.DefaultParams()).Load(ctx, path)
	require.NoError(t, err)
	root, err := Build(ctx, patch, reg, config.DefaultParams())
	require.NoError(t, err)

	e := engine.New(root)
	report := e.Bind(ctx)
	assert.True(t, report.Clean())
	assert.Equal(t, float32(1), e.Out())
	assert.Equal(t, float32(1), e.Next())
}
