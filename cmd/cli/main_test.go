package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/specialistvlad/batchignore/internal/cli"
	"github.com/specialistvlad/batchignore/internal/testutil"
	"github.com/stretchr/testify/require"
)

func TestRun_ValidatorText(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	args := []string{"-locale", "en", "BatchIgnoreManager", "ignore_enabled=true", `node_list=["1","2","3"]`}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, &bytes.Buffer{}, args)

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, "Managing 3 nodes, ignore: enabled\ntrue\n[\"1\", \"2\", \"3\"]\n", out.String())
}

func TestRun_ValidatorDefaultsChinese(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}

	err := run(out, &bytes.Buffer{}, []string{"-locale", "zh-Hans", "BatchIgnoreManager"})

	require.NoError(t, err)
	require.Equal(t, "管理 0 个节点，忽略状态: 禁用\nfalse\n[]\n", out.String())
}

func TestRun_InvalidListForcesIgnoreOff(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}

	err := run(out, &bytes.Buffer{}, []string{"-locale", "en", "BatchIgnoreManager", "ignore_enabled=true", `node_list={"a":1}`})

	require.NoError(t, err, "node failures are reported in the outputs, not as errors")
	require.Equal(t, "Error: node list must be an array\nfalse\n[]\n", out.String())
}

func TestRun_FormatterJSON(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	args := []string{"-output", "json", "NodeIDFormatter", "node_ids= 12, 7 ,,3"}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, &bytes.Buffer{}, args)

	// --- Assert ---
	require.NoError(t, err)
	require.JSONEq(t, `{"formatted": "[\n  \"12\",\n  \"7\",\n  \"3\"\n]"}`, out.String())
}

func TestRun_List(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}

	err := run(out, &bytes.Buffer{}, []string{"-list", "-locale", "en"})

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 5)
	require.True(t, strings.HasPrefix(lines[0], "ID"))
	require.Contains(t, lines[1], "BatchIgnoreManager")
	require.Contains(t, lines[1], "Batch Ignore Manager")
	require.Contains(t, lines[2], "NodeIDFormatter")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, &bytes.Buffer{}, []string{"-h"})

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}

	err := run(out, &bytes.Buffer{}, []string{"--this-is-not-a-valid-flag"})

	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

func TestRun_InvocationErrors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "unknown node", args: []string{"Nope"}, wantErr: "unknown node 'Nope'"},
		{name: "unknown input", args: []string{"NodeIDFormatter", "ids=a"}, wantErr: "node 'NodeIDFormatter' has no input named 'ids'"},
		{name: "unconvertible input", args: []string{"BatchIgnoreManager", "ignore_enabled=maybe"}, wantErr: "input 'ignore_enabled'"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := run(&bytes.Buffer{}, &bytes.Buffer{}, tc.args)

			require.Error(t, err)
			exitErr, ok := err.(*cli.ExitError)
			require.True(t, ok, "expected *cli.ExitError, got %T", err)
			require.Equal(t, 2, exitErr.Code)
			require.Contains(t, exitErr.Message, tc.wantErr)
		})
	}
}

func TestRun_StartupError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// A manifest with a syntax error makes app.NewApp fail while loading.
	tempDir := testutil.WriteFiles(t, map[string]string{"main.hcl": `node "A" {`})

	// --- Act ---
	runErr := run(&bytes.Buffer{}, &bytes.Buffer{}, []string{"-manifests", tempDir, "NodeIDFormatter"})

	// --- Assert ---
	require.Error(t, runErr)
	require.Contains(t, runErr.Error(), "application startup failed")
}
