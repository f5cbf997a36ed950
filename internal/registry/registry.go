package registry

import (
	"context"
	"io/fs"
	"sort"

	"github.com/specialistvlad/batchignore/internal/ctxlog"
	"github.com/specialistvlad/batchignore/internal/manifest"
)

// Module is the interface that all node modules must implement to be registered.
type Module interface {
	Register(r *Registry)
}

// Registry holds the registered handlers and node definitions for a single
// application instance.
type Registry struct {
	handlers    map[string]*Handler
	definitions map[string]*manifest.Node
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		handlers:    make(map[string]*Handler),
		definitions: make(map[string]*manifest.Node),
	}
}

// Populate adds node definitions. A definition replaces an earlier one with
// the same ID, which is how user manifests override the embedded ones.
func (r *Registry) Populate(ctx context.Context, defs []*manifest.Node) {
	logger := ctxlog.FromContext(ctx)
	for _, def := range defs {
		if previous, exists := r.definitions[def.ID]; exists {
			logger.Debug("Overriding node definition.", "node", def.ID, "previous", filePath(previous), "file", filePath(def))
		}
		r.definitions[def.ID] = def
	}
}

// Node returns the definition registered under id.
func (r *Registry) Node(id string) (*manifest.Node, bool) {
	def, ok := r.definitions[id]
	return def, ok
}

// Nodes returns every node definition sorted by ID.
func (r *Registry) Nodes() []*manifest.Node {
	out := make([]*manifest.Node, 0, len(r.definitions))
	for _, def := range r.definitions {
		out = append(out, def)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func filePath(def *manifest.Node) string {
	if def.FSInformation == nil {
		return ""
	}
	return def.FSInformation.FilePath
}

// ManifestProvider is implemented by modules that ship the manifests for the
// handlers they register.
type ManifestProvider interface {
	Manifests() fs.FS
}
