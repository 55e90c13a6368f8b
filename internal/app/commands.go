package app

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/vk/phisynth/internal/engine"
	"github.com/vk/phisynth/internal/hcl"
	"github.com/vk/phisynth/internal/remote"
	"github.com/vk/phisynth/internal/sink"
	"github.com/vk/phisynth/internal/spectrum"
	"github.com/vk/phisynth/internal/studio"
	"gopkg.in/yaml.v3"
)

// renderBatch renders the configured duration as one closed batch.
func (a *App) renderBatch(st *studio.Studio) ([]float32, error) {
	start := time.Now()
	samples, err := st.RunBatch(a.config.Samples)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("Rendered batch.", "samples", len(samples), "elapsed", time.Since(start))
	return samples, nil
}

func (a *App) render(ctx context.Context, st *studio.Studio) error {
	samples, err := a.renderBatch(st)
	if err != nil {
		return err
	}
	out := &sink.WAVFile{Path: a.config.OutPath}
	if err := out.Play(ctx, samples, 1, a.params.SampleRate); err != nil {
		return fmt.Errorf("failed to write %s: %w", a.config.OutPath, err)
	}
	fmt.Fprintf(a.outW, "wrote %d samples to %s\n", len(samples), a.config.OutPath)
	return nil
}

func (a *App) play(ctx context.Context, st *studio.Studio) error {
	samples, err := a.renderBatch(st)
	if err != nil {
		return err
	}
	if _, ok := a.player.(*sink.PortAudio); ok {
		if info, err := sink.Describe(); err == nil {
			a.logger.Debug("Audio device.", "version", info.Version, "host_api", info.HostAPI,
				"device", info.DefaultOutput, "default_sample_rate", info.SampleRate)
		}
	}
	a.logger.Info("▶️ Playing.", "samples", len(samples), "sample_rate", a.params.SampleRate)
	if err := a.player.Play(ctx, samples, 1, a.params.SampleRate); err != nil {
		return fmt.Errorf("playback failed: %w", err)
	}
	return nil
}

func (a *App) analyze(st *studio.Studio) error {
	samples, err := a.renderBatch(st)
	if err != nil {
		return err
	}
	s, err := spectrum.Analyze(samples, a.params.SampleRate)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.outW, "samples:            %d\n", len(samples))
	fmt.Fprintf(a.outW, "dominant frequency: %.2f Hz\n", s.Dominant())
	fmt.Fprintf(a.outW, "peak:               %.4f\n", spectrum.Peak(samples))
	fmt.Fprintf(a.outW, "rms:                %.4f\n", spectrum.RMS(samples))
	return nil
}

func (a *App) ports() error {
	ports, err := a.listPorts()
	if err != nil {
		return fmt.Errorf("failed to list MIDI ports: %w", err)
	}
	return ports.Fprint(a.outW)
}

func (a *App) remote(ctx context.Context, st *studio.Studio) error {
	a.logReport(st.Bind(ctx))
	return remote.Serve(ctx, st, remote.Options{
		URL:       a.config.EditorURL,
		Namespace: a.config.EditorNamespace,
	})
}

type inspectIssue struct {
	Parameter string `yaml:"parameter"`
	Target    string `yaml:"target"`
}

type inspectRow struct {
	Name  string  `yaml:"name"`
	Link  string  `yaml:"link"`
	Slot  int     `yaml:"slot"`
	Value float32 `yaml:"value"`
}

type inspectDoc struct {
	Parameters  int            `yaml:"parameters"`
	Slots       int            `yaml:"slots"`
	Aliased     int            `yaml:"aliased"`
	OutputBound bool           `yaml:"output_bound"`
	Unresolved  []inspectIssue `yaml:"unresolved,omitempty"`
	Cycles      []inspectIssue `yaml:"cycles,omitempty"`
	Duplicates  []string       `yaml:"duplicates,omitempty"`
	Table       []inspectRow   `yaml:"table"`
}

func issues(in []engine.Issue) []inspectIssue {
	out := make([]inspectIssue, len(in))
	for i, is := range in {
		out[i] = inspectIssue{Parameter: is.Parameter, Target: is.Target}
	}
	return out
}

func newInspectDoc(r *engine.Report, rows []engine.Row) *inspectDoc {
	doc := &inspectDoc{
		Parameters:  r.Parameters,
		Slots:       r.Slots,
		Aliased:     r.Aliased,
		OutputBound: r.OutputBound,
		Unresolved:  issues(r.Unresolved),
		Cycles:      issues(r.Cycles),
		Duplicates:  r.Duplicates,
		Table:       make([]inspectRow, len(rows)),
	}
	for i, row := range rows {
		doc.Table[i] = inspectRow{Name: row.Name, Link: row.Link.String(), Slot: row.Slot, Value: row.Value}
	}
	return doc
}

func (a *App) inspect(st *studio.Studio, r *engine.Report) error {
	switch a.config.Format {
	case FormatHCL:
		return hcl.Write(a.outW, st.Snapshot())
	case FormatYAML:
		enc := yaml.NewEncoder(a.outW)
		enc.SetIndent(2)
		if err := enc.Encode(newInspectDoc(r, st.Table())); err != nil {
			return err
		}
		return enc.Close()
	}
	return a.inspectText(r, st.Table())
}

func (a *App) inspectText(r *engine.Report, rows []engine.Row) error {
	fmt.Fprintf(a.outW, "parameters: %d  slots: %d  aliased: %d  output bound: %t\n",
		r.Parameters, r.Slots, r.Aliased, r.OutputBound)
	for _, is := range r.Unresolved {
		fmt.Fprintf(a.outW, "unresolved: %s -> %s\n", is.Parameter, is.Target)
	}
	for _, is := range r.Cycles {
		fmt.Fprintf(a.outW, "cycle:      %s -> %s\n", is.Parameter, is.Target)
	}
	for _, d := range r.Duplicates {
		fmt.Fprintf(a.outW, "duplicate:  %s\n", d)
	}
	fmt.Fprintln(a.outW)

	tw := tabwriter.NewWriter(a.outW, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tLINK\tSLOT\tVALUE")
	for _, row := range rows {
		slot := "-"
		if row.Slot >= 0 {
			slot = fmt.Sprint(row.Slot)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%g\n", row.Name, row.Link, slot, row.Value)
	}
	return tw.Flush()
}
