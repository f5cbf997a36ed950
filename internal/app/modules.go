package app

import (
	"github.com/specialistvlad/batchignore/internal/nodes"
	"github.com/specialistvlad/batchignore/internal/registry"
)

// coreModules is the definitive list of all modules that are compiled into
// the batchignore binary.
var coreModules = []registry.Module{
	&nodes.Module{},
}
