package engine

import (
	"context"
	"slices"

	"github.com/vk/phisynth/internal/ctxlog"
	"github.com/vk/phisynth/internal/node"
	"github.com/vk/phisynth/internal/param"
)

// Issue is a reference that could not be bound.
type Issue struct {
	// Parameter is the qualified name of the referencing parameter.
	Parameter string
	// Target is where resolution stopped: the missing name, or the name at
	// which the chain looped back on itself.
	Target string
}

// Report summarises one Bind.
type Report struct {
	Parameters  int
	Slots       int
	Aliased     int
	Unresolved  []Issue
	Cycles      []Issue
	Duplicates  []string
	OutputBound bool
	Generation  uint64
}

// Clean reports whether every reference and the output bound.
func (r *Report) Clean() bool {
	return len(r.Unresolved) == 0 && len(r.Cycles) == 0 && r.OutputBound
}

type outcome int

const (
	resolved outcome = iota
	missing
	looped
)

// resolver follows reference chains over one flattened index space.
type resolver struct {
	entries []node.Entry
	byName  map[string]int
}

func newResolver(entries []node.Entry) (*resolver, []string) {
	r := &resolver{entries: entries, byName: make(map[string]int, len(entries))}
	var duplicates []string
	for i, en := range entries {
		if _, exists := r.byName[en.Name]; exists {
			if !slices.Contains(duplicates, en.Name) {
				duplicates = append(duplicates, en.Name)
			}
			continue
		}
		r.byName[en.Name] = i
	}
	return r, duplicates
}

// root follows name through references until a value-linked parameter.
func (r *resolver) root(name string) (*param.Parameter, outcome, string) {
	var visited []string
	current := name
	for {
		i, ok := r.byName[current]
		if !ok {
			return nil, missing, current
		}
		p := r.entries[i].Param
		if p.IsFree() {
			return p, resolved, current
		}
		if slices.Contains(visited, current) {
			return nil, looped, current
		}
		visited = append(visited, current)
		current = p.Link().Target()
	}
}

// Bind re-derives the backing store and every storage handle from the
// declared links of the whole tree.
func (e *Engine) Bind(ctx context.Context) *Report {
	logger := ctxlog.FromContext(ctx)
	entries := node.Flatten(e.root)
	free := node.FreeParameterCount(e.root)

	e.arena.Reset(free)
	slot := 0
	for _, en := range entries {
		p := en.Param
		p.Unbind()
		if l := p.Link(); l.IsValue() {
			h := e.arena.Handle(slot)
			h.Store(l.Default())
			p.Bind(h)
			slot++
		}
	}

	res, duplicates := newResolver(entries)
	report := &Report{
		Parameters: len(entries),
		Slots:      free,
		Duplicates: duplicates,
		Generation: e.arena.Generation(),
	}
	for _, name := range duplicates {
		logger.Warn("Duplicate qualified parameter name, first match wins.", "parameter", name)
	}

	for _, en := range entries {
		l := en.Param.Link()
		if l.IsValue() {
			continue
		}
		root, result, at := res.root(l.Target())
		switch result {
		case resolved:
			en.Param.Bind(root.Handle())
			report.Aliased++
		case missing:
			report.Unresolved = append(report.Unresolved, Issue{Parameter: en.Name, Target: at})
			logger.Warn("Reference target not found, parameter reads as zero.", "parameter", en.Name, "target", at)
		case looped:
			report.Cycles = append(report.Cycles, Issue{Parameter: en.Name, Target: at})
			logger.Warn("Reference chain loops, parameter reads as zero.", "parameter", en.Name, "at", at)
		}
	}

	e.output = param.Handle{}
	if out, result, _ := res.root(OutputName); result == resolved {
		e.output = out.Handle()
		report.OutputBound = true
	} else {
		logger.Debug("No output tap resolved, output is silent.", "name", OutputName)
	}

	e.entries = entries
	e.bound = true
	logger.Debug("Bind complete.",
		"parameters", report.Parameters,
		"slots", report.Slots,
		"aliased", report.Aliased,
		"unresolved", len(report.Unresolved),
		"cycles", len(report.Cycles),
		"output_bound", report.OutputBound,
	)
	return report
}
