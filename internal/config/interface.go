package config

import (
	"context"
	"io"
)

// Loader is the interface for a format-specific patch loader.
type Loader interface {
	// Load reads patch declarations from the given paths, in order, and
	// merges them into one Patch.
	Load(ctx context.Context, paths ...string) (*Patch, error)
}

// Writer serialises a Patch back into a format-specific document.
type Writer interface {
	Write(w io.Writer, p *Patch) error
}
