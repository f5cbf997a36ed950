package nodes

import (
	"embed"
	"io/fs"

	"github.com/specialistvlad/batchignore/internal/registry"
)

// Stable node identifiers, as declared in the embedded manifests.
const (
	BatchIgnoreManagerID = "BatchIgnoreManager"
	NodeIDFormatterID    = "NodeIDFormatter"
	NodeListAddID        = "NodeListAdd"
	NodeListRemoveID     = "NodeListRemove"
)

// Handler names referenced by the manifests' lifecycle blocks.
const (
	OnRunValidateIgnoreList = "OnRunValidateIgnoreList"
	OnRunFormatNodeIDs      = "OnRunFormatNodeIDs"
	OnRunAddToNodeList      = "OnRunAddToNodeList"
	OnRunRemoveFromNodeList = "OnRunRemoveFromNodeList"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the node handlers with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.Register(OnRunValidateIgnoreList, registry.NewHandler(OnRunValidate))
	r.Register(OnRunFormatNodeIDs, registry.NewHandler(OnRunFormat))
	r.Register(OnRunAddToNodeList, registry.NewHandler(OnRunAdd))
	r.Register(OnRunRemoveFromNodeList, registry.NewHandler(OnRunRemove))
}

//go:embed manifests/*.hcl
var manifestFS embed.FS

// Manifests returns the node manifests embedded in the binary.
func (m *Module) Manifests() fs.FS {
	sub, err := fs.Sub(manifestFS, "manifests")
	if err != nil {
		// The pattern above guarantees the directory exists.
		panic(err)
	}
	return sub
}
