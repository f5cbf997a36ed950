package manifest

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/batchignore/internal/ctxlog"
	"github.com/specialistvlad/batchignore/internal/fsutil"
)

// Extension is the file extension of manifest files.
const Extension = ".hcl"

// Load parses every manifest file found in fsys. Node IDs must be unique
// within one call.
func Load(ctx context.Context, fsys fs.FS) ([]*Node, error) {
	logger := ctxlog.FromContext(ctx)

	filePaths, err := fsutil.FindFilesByExtension(fsys, ".", Extension)
	if err != nil {
		return nil, fmt.Errorf("failed to walk manifest directory: %w", err)
	}
	if len(filePaths) == 0 {
		logger.Warn("No manifest files found")
		return nil, nil
	}
	logger.Debug("Found manifest files to load", "files", filePaths)

	parser := hclparse.NewParser()
	definedIn := make(map[string]string)
	var nodes []*Node

	for _, filePath := range filePaths {
		data, err := fs.ReadFile(fsys, filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read manifest %s: %w", filePath, err)
		}

		hclFile, diags := parser.ParseHCL(data, filePath)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", filePath, diags)
		}

		parsed, diags := ParseFile(ctx, hclFile, filePath)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to process node definitions in %s: %w", filePath, diags)
		}

		for _, node := range parsed {
			if previous, exists := definedIn[node.ID]; exists {
				return nil, fmt.Errorf("node '%s' is defined in both %s and %s", node.ID, previous, filePath)
			}
			definedIn[node.ID] = filePath
		}
		nodes = append(nodes, parsed...)
	}

	logger.Debug("Manifests loaded", "node_definitions_loaded", len(nodes))
	return nodes, nil
}
