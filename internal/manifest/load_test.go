package manifest

import (
	"context"
	"fmt"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
)

func nodeSrc(id string) string {
	return fmt.Sprintf("node %q {\n  lifecycle { on_run = \"OnRun\" }\n}\n", id)
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("loads all files in sorted order", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{
			"b.hcl":     {Data: []byte(nodeSrc("B"))},
			"a.hcl":     {Data: []byte(nodeSrc("A"))},
			"readme.md": {Data: []byte("ignored")},
			"sub/c.hcl": {Data: []byte(nodeSrc("C"))},
		}

		nodes, err := Load(context.Background(), fsys)

		require.NoError(t, err)
		require.Len(t, nodes, 3)
		require.Equal(t, "A", nodes[0].ID)
		require.Equal(t, "B", nodes[1].ID)
		require.Equal(t, "C", nodes[2].ID)
		require.Equal(t, "sub/c.hcl", nodes[2].FSInformation.FilePath)
	})

	t.Run("empty filesystem", func(t *testing.T) {
		t.Parallel()

		nodes, err := Load(context.Background(), fstest.MapFS{})

		require.NoError(t, err)
		require.Empty(t, nodes)
	})

	t.Run("syntax error", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{"bad.hcl": {Data: []byte(`node "A" {`)}}

		_, err := Load(context.Background(), fsys)

		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to parse HCL file bad.hcl")
	})

	t.Run("invalid definition", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{"bad.hcl": {Data: []byte(`node "A" {}`)}}

		_, err := Load(context.Background(), fsys)

		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to process node definitions in bad.hcl")
	})

	t.Run("duplicate id across files", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{
			"a.hcl": {Data: []byte(nodeSrc("A"))},
			"b.hcl": {Data: []byte(nodeSrc("A"))},
		}

		_, err := Load(context.Background(), fsys)

		require.Error(t, err)
		require.Contains(t, err.Error(), "node 'A' is defined in both a.hcl and b.hcl")
	})
}
