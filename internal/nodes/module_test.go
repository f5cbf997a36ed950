package nodes

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/specialistvlad/batchignore/internal/ctxlog"
	"github.com/specialistvlad/batchignore/internal/i18n"
	"github.com/specialistvlad/batchignore/internal/manifest"
	"github.com/specialistvlad/batchignore/internal/registry"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
	"golang.org/x/text/language"
)

var _ registry.ManifestProvider = (*Module)(nil)

// newRegistry builds a registry from the embedded manifests and this module.
func newRegistry(ctx context.Context, t *testing.T) *registry.Registry {
	t.Helper()

	module := &Module{}
	defs, err := manifest.Load(ctx, module.Manifests())
	require.NoError(t, err)

	reg := registry.New()
	module.Register(reg)
	reg.Populate(ctx, defs)
	require.NoError(t, reg.Validate(ctx), "embedded manifests must match the Go handlers")
	return reg
}

func TestManifests_DeclareAllNodes(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	reg := newRegistry(ctx, t)

	var ids []string
	for _, def := range reg.Nodes() {
		ids = append(ids, def.ID)
	}
	require.Equal(t, []string{BatchIgnoreManagerID, NodeIDFormatterID, NodeListAddID, NodeListRemoveID}, ids)

	validator, ok := reg.Node(BatchIgnoreManagerID)
	require.True(t, ok)
	require.Equal(t, "批量忽略管理器", validator.DisplayName(language.SimplifiedChinese))
	require.Equal(t, "Batch Ignore Manager", validator.DisplayName(language.English))

	listInput, ok := validator.Input("node_list")
	require.True(t, ok)
	require.True(t, listInput.Multiline)
	require.True(t, listInput.Default.RawEquals(cty.StringVal("[]")))

	formatter, ok := reg.Node(NodeIDFormatterID)
	require.True(t, ok)
	idsInput, ok := formatter.Input("node_ids")
	require.True(t, ok)
	require.False(t, idsInput.Multiline)
	require.True(t, idsInput.Default.RawEquals(cty.StringVal("")))
}

func TestInvoke_Validator(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := ctxlog.WithLogger(context.Background(), logger)
	ctx = i18n.WithLocale(ctx, language.English)
	reg := newRegistry(ctx, t)

	// --- Act ---
	outputs, err := reg.Invoke(ctx, BatchIgnoreManagerID, map[string]cty.Value{
		"ignore_enabled": cty.True,
		"node_list":      cty.StringVal(`["4","8"]`),
	})

	// --- Assert ---
	require.NoError(t, err)
	require.Len(t, outputs, 3)
	require.Equal(t, "status", outputs[0].Name)
	require.Equal(t, "ignore_enabled", outputs[1].Name)
	require.Equal(t, "node_list", outputs[2].Name)
	require.Equal(t, "Managing 2 nodes, ignore: enabled", outputs[0].Value.AsString())
	require.True(t, outputs[1].Value.True())
	require.Equal(t, `["4", "8"]`, outputs[2].Value.AsString())
	require.Contains(t, logs.String(), "node=BatchIgnoreManager")
}

func TestInvoke_ValidatorDefaults(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	reg := newRegistry(ctx, t)

	outputs, err := reg.Invoke(ctx, BatchIgnoreManagerID, nil)

	require.NoError(t, err)
	require.Equal(t, "管理 0 个节点，忽略状态: 禁用", outputs[0].Value.AsString())
	require.True(t, outputs[1].Value.False())
	require.Equal(t, "[]", outputs[2].Value.AsString())
}

func TestInvoke_ValidatorRejectsAndLogs(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	ctx := ctxlog.WithLogger(context.Background(), slog.New(slog.NewTextHandler(&logs, nil)))
	reg := newRegistry(ctx, t)

	outputs, err := reg.Invoke(ctx, BatchIgnoreManagerID, map[string]cty.Value{
		"ignore_enabled": cty.StringVal("true"),
		"node_list":      cty.StringVal("not json"),
	})

	require.NoError(t, err, "node failures are reported in outputs, not as errors")
	require.True(t, outputs[1].Value.False())
	require.Equal(t, "[]", outputs[2].Value.AsString())
	require.Contains(t, logs.String(), "Node list rejected.")
	require.Contains(t, logs.String(), "kind=decode")
}

func TestInvoke_FormatterAndEditors(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	reg := newRegistry(ctx, t)

	formatted, err := reg.Invoke(ctx, NodeIDFormatterID, map[string]cty.Value{"node_ids": cty.StringVal("x,y,z")})
	require.NoError(t, err)
	require.Len(t, formatted, 1)
	require.Equal(t, "formatted", formatted[0].Name)
	require.Equal(t, "[\n  \"x\",\n  \"y\",\n  \"z\"\n]", formatted[0].Value.AsString())

	empty, err := reg.Invoke(ctx, NodeIDFormatterID, nil)
	require.NoError(t, err)
	require.Equal(t, "[]", empty[0].Value.AsString())

	added, err := reg.Invoke(ctx, NodeListAddID, map[string]cty.Value{
		"node_list": formatted[0].Value,
		"node_ids":  cty.StringVal("z, w"),
	})
	require.NoError(t, err)
	require.Equal(t, "[\n  \"x\",\n  \"y\",\n  \"z\",\n  \"w\"\n]", added[0].Value.AsString())

	removed, err := reg.Invoke(ctx, NodeListRemoveID, map[string]cty.Value{
		"node_list": added[0].Value,
		"node_ids":  cty.StringVal("x,w"),
	})
	require.NoError(t, err)
	require.Equal(t, "[\n  \"y\",\n  \"z\"\n]", removed[0].Value.AsString())
}
