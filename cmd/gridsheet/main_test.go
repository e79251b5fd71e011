package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) error {
	t.Helper()
	homedir.DisableCache = true
	t.Setenv("HOME", t.TempDir())
	t.Setenv("GRIDSHEET_CONFIG_PATH", t.TempDir())
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(os.Stderr)
	return cmd.Execute()
}

func TestConvertCSVToJSON(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.csv")
	out := filepath.Join(dir, "out.json")
	require.NoError(t, os.WriteFile(in, []byte("a,1\nb,2\n"), 0o644))

	require.NoError(t, execute(t, "convert", in, out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"name":"out.json"`)
	assert.Contains(t, string(data), `"1":"1"`)
}

func TestReplayToCSV(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.csv")
	steps := filepath.Join(dir, "steps.yaml")
	out := filepath.Join(dir, "out.csv")
	require.NoError(t, os.WriteFile(in, []byte("b,2\na,1\n"), 0o644))
	require.NoError(t, os.WriteFile(steps, []byte("- op: sort\n  column: A\n- op: update\n  cell: C1\n  value: x\n"), 0o644))

	require.NoError(t, execute(t, "replay", steps, "--input", in, "--output", out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "a,1,x\nb,2,\n", string(data))
}

func TestShowMissingFile(t *testing.T) {
	err := execute(t, "show", filepath.Join(t.TempDir(), "nope.csv"))
	assert.ErrorContains(t, err, "file not found")
}

func TestInvalidConfigValue(t *testing.T) {
	in := filepath.Join(t.TempDir(), "in.csv")
	require.NoError(t, os.WriteFile(in, []byte("a\n"), 0o644))
	err := execute(t, "show", in, "--sort", "sideways")
	assert.ErrorContains(t, err, "sort.direction")
}

func TestVersion(t *testing.T) {
	assert.NoError(t, execute(t, "version", "--short"))
}
