//go:build headless

package midiports

// List always fails in headless builds.
func List() (Ports, error) {
	return Ports{}, ErrUnavailable
}
