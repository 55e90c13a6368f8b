package studio

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/vk/phisynth/internal/builder"
	"github.com/vk/phisynth/internal/config"
	"github.com/vk/phisynth/internal/ctxlog"
	"github.com/vk/phisynth/internal/engine"
	"github.com/vk/phisynth/internal/node"
	"github.com/vk/phisynth/internal/param"
	"github.com/vk/phisynth/internal/paramid"
	"github.com/vk/phisynth/internal/registry"
)

var (
	// ErrNotBound is returned by RunBatch when the patch changed since the
	// last Bind, or was never bound.
	ErrNotBound = errors.New("patch changed since last bind")
	// ErrUnknownParameter is returned for a qualified name no parameter has.
	ErrUnknownParameter = errors.New("unknown parameter")
	// ErrUnknownNode is returned when removing an instance that is not a
	// top-level child.
	ErrUnknownNode = errors.New("unknown node")
	// ErrDuplicateNode is returned when adding an instance name that is
	// already used at the top level.
	ErrDuplicateNode = errors.New("node already exists")
)

// Observer receives bind and render activity, e.g. for metrics.
type Observer interface {
	ObserveBind(r *engine.Report, elapsed time.Duration)
	ObserveRender(samples int)
}

// Studio owns a root group and the engine that plays it.
type Studio struct {
	mu       sync.Mutex
	params   config.Params
	registry *registry.Registry
	root     *node.Group
	engine   *engine.Engine
	stale    bool
	observer Observer
}

// Option configures a Studio.
type Option func(*Studio)

// WithObserver reports bind and render activity to o.
func WithObserver(o Observer) Option {
	return func(s *Studio) { s.observer = o }
}

// New returns an unbound studio editing root. A nil root starts empty.
func New(p config.Params, r *registry.Registry, root *node.Group, opts ...Option) *Studio {
	if root == nil {
		root = node.NewGroup()
	}
	s := &Studio{
		params:   p,
		registry: r,
		root:     root,
		engine:   engine.New(root),
		stale:    true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListParameters returns every qualified name in index order.
func (s *Studio) ListParameters() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return node.ParameterNames(s.root)
}

// GetLink returns the declared link of the named parameter.
func (s *Studio) GetLink(name string) (param.Link, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := node.Lookup(s.root, name)
	if p == nil {
		return param.Link{}, false
	}
	return p.Link(), true
}

// SetValue makes the named parameter own a slot with default v at the next Bind.
func (s *Studio) SetValue(name string, v float32) error {
	return s.edit(name, func(p *param.Parameter) { p.SetValue(v) })
}

// SetLink makes the named parameter alias target at the next Bind. The
// target is not checked; a dangling reference reads as zero.
func (s *Studio) SetLink(name, target string) error {
	return s.edit(name, func(p *param.Parameter) { p.SetLink(target) })
}

func (s *Studio) edit(name string, apply func(*param.Parameter)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := node.Lookup(s.root, name)
	if p == nil {
		return fmt.Errorf("%w: %q", ErrUnknownParameter, name)
	}
	apply(p)
	s.stale = true
	return nil
}

// AddNode appends a new instance of variant to the root group and returns
// its instance name. An empty instance picks "{prefix}{n}", starting from
// the current child count minus one and skipping names already taken.
func (s *Studio) AddNode(variant, instance string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.registry.Lookup(variant)
	if !ok {
		return "", fmt.Errorf("%w: %q", registry.ErrUnknownType, variant)
	}
	if instance == "" {
		instance = s.defaultName(v.Prefix)
	}
	if err := paramid.ValidateInstance(instance); err != nil {
		return "", err
	}
	if _, exists := s.root.Child(instance); exists {
		return "", fmt.Errorf("%w: %q", ErrDuplicateNode, instance)
	}

	s.root.Add(v.New(instance, s.params))
	s.stale = true
	return instance, nil
}

func (s *Studio) defaultName(prefix string) string {
	for n := max(s.root.Len()-1, 0); ; n++ {
		name := prefix + strconv.Itoa(n)
		if _, taken := s.root.Child(name); !taken {
			return name
		}
	}
}

// RemoveNode drops a top-level child. References into it dangle until
// relinked.
func (s *Studio) RemoveNode(instance string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.root.Remove(instance); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownNode, instance)
	}
	s.stale = true
	return nil
}

// Bind re-derives the backing store from the current links.
func (s *Studio) Bind(ctx context.Context) *engine.Report {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	report := s.engine.Bind(ctx)
	s.stale = false
	if s.observer != nil {
		s.observer.ObserveBind(report, time.Since(start))
	}
	ctxlog.FromContext(ctx).Debug("Studio bound.", "slots", report.Slots, "clean", report.Clean())
	return report
}

// RunBatch performs n ticks and returns the output samples.
func (s *Studio) RunBatch(n int) ([]float32, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stale {
		return nil, ErrNotBound
	}
	if n < 0 {
		return nil, fmt.Errorf("batch size must not be negative, got %d", n)
	}
	batch := s.engine.RunBatch(n)
	if s.observer != nil {
		s.observer.ObserveRender(n)
	}
	return batch, nil
}

// Stale reports whether an edit happened since the last Bind.
func (s *Studio) Stale() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stale
}

// Snapshot describes the current links as a Patch.
func (s *Studio) Snapshot() *config.Patch {
	s.mu.Lock()
	defer s.mu.Unlock()
	return builder.Snapshot(s.root)
}

// Table lists the parameters as resolved by the last Bind.
func (s *Studio) Table() []engine.Row {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Table()
}

// Variants lists the node types AddNode accepts.
func (s *Studio) Variants() []string {
	return s.registry.Types()
}
