// Package midiports enumerates MIDI input and output ports for display.
// Nothing in the synth consumes MIDI yet.
package midiports

import (
	"errors"
	"fmt"
	"io"
)

// ErrUnavailable is returned when no MIDI backend is compiled in or it cannot
// be opened.
var ErrUnavailable = errors.New("MIDI backend unavailable")

// Port is one enumerated MIDI port.
type Port struct {
	Number int
	Name   string
}

// Ports lists the ports found at enumeration time.
type Ports struct {
	Inputs  []Port
	Outputs []Port
}

// Fprint writes the listing in the "index: name" form.
func (p Ports) Fprint(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "Available input ports:"); err != nil {
		return err
	}
	for _, in := range p.Inputs {
		if _, err := fmt.Fprintf(w, "%d: %s\n", in.Number, in.Name); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, "\nAvailable output ports:"); err != nil {
		return err
	}
	for _, out := range p.Outputs {
		if _, err := fmt.Fprintf(w, "%d: %s\n", out.Number, out.Name); err != nil {
			return err
		}
	}
	return nil
}
