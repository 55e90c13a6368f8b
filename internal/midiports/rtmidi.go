//go:build !headless

package midiports

import (
	"fmt"

	"gitlab.com/gomidi/midi/v2/drivers"
	"gitlab.com/gomidi/midi/v2/drivers/rtmididrv"
)

// List opens the RtMidi driver, enumerates its ports and closes it again.
func List() (Ports, error) {
	drv, err := rtmididrv.New()
	if err != nil {
		return Ports{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer drv.Close()

	ins, err := drv.Ins()
	if err != nil {
		return Ports{}, fmt.Errorf("failed to list MIDI inputs: %w", err)
	}
	outs, err := drv.Outs()
	if err != nil {
		return Ports{}, fmt.Errorf("failed to list MIDI outputs: %w", err)
	}
	return Ports{Inputs: fromInputs(ins), Outputs: fromOutputs(outs)}, nil
}

func fromInputs(ins []drivers.In) []Port {
	ports := make([]Port, len(ins))
	for i, in := range ins {
		ports[i] = Port{Number: in.Number(), Name: in.String()}
	}
	return ports
}

func fromOutputs(outs []drivers.Out) []Port {
	ports := make([]Port, len(outs))
	for i, out := range outs {
		ports[i] = Port{Number: out.Number(), Name: out.String()}
	}
	return ports
}
