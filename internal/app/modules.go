package app

import (
	"github.com/vk/phisynth/internal/registry"
	"github.com/vk/phisynth/internal/units"
)

// coreModules is the definitive list of all modules that are compiled into
// the phisynth binary.
var coreModules = []registry.Module{
	&units.Module{},
}
