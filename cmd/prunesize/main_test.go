package main

import (
	"bytes"
	"context"
	"flag"
	"strings"
	"testing"

	"github.com/katalvlaran/prunesize/preset"
	"github.com/katalvlaran/prunesize/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runArgs executes run with captured output.
func runArgs(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err = run(context.Background(), args, &out, &errOut)

	return out.String(), errOut.String(), err
}

// TestRun_NoArgs prints the banner and the four zero-based grids.
func TestRun_NoArgs(t *testing.T) {
	out, errOut, err := runArgs(t)
	require.NoError(t, err)
	assert.Empty(t, errOut)
	assert.True(t, strings.HasPrefix(out, "----"))
	assert.Contains(t, out, "Exact pruning value")
	assert.Contains(t, out, "Permutation pruning value")
	assert.Contains(t, out, "Orientation pruning value")
	assert.Contains(t, out, "Layout pruning value")
	assert.Contains(t, out, "(for 2 to 5 corners and 4 to 7 edges)")
	assert.Contains(t, out, " 0.27 ")
	assert.Equal(t, 4, strings.Count(out, "[["), "one matrix per mode")
}

// TestRun_AllPresets prints a heading per preset.
func TestRun_AllPresets(t *testing.T) {
	out, _, err := runArgs(t, "-preset", "all", "-style", "markdown")
	require.NoError(t, err)
	cat, err := preset.Load()
	require.NoError(t, err)
	for _, name := range cat.Names() {
		assert.Contains(t, out, "== "+name+":")
	}
	assert.Contains(t, out, "|---|---:|")
}

// TestRun_AutoStyle picks the boxed table on a terminal.
func TestRun_AutoStyle(t *testing.T) {
	old := isTerminal
	defer func() { isTerminal = old }()

	isTerminal = func() bool { return true }
	out, _, err := runArgs(t, "-style", "auto")
	require.NoError(t, err)
	assert.Contains(t, out, "─")

	isTerminal = func() bool { return false }
	out, _, err = runArgs(t, "-style", "auto")
	require.NoError(t, err)
	assert.Contains(t, out, "[[")
}

// TestRun_Blocks prints the named-block summary.
func TestRun_Blocks(t *testing.T) {
	out, _, err := runArgs(t, "-blocks", "-bytes", "4", "-style", "markdown", "-precision", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "(4 bytes per entry)")
	assert.Contains(t, out, "DLB_222 (1c/3e)")
	// Exact 2c/3e: 5322240 entries · 4 bytes.
	assert.Contains(t, out, "| DB_123 (2c/3e) | 21.2890 |")
}

// TestRun_Errors covers the failure paths that exit 1.
func TestRun_Errors(t *testing.T) {
	_, _, err := runArgs(t, "-preset", "nope")
	assert.ErrorIs(t, err, preset.ErrUnknownPreset)

	_, _, err = runArgs(t, "-style", "html")
	assert.ErrorIs(t, err, render.ErrUnknownStyle)

	_, _, err = runArgs(t, "-precision", "-3")
	assert.ErrorIs(t, err, render.ErrBadFormat)

	_, _, err = runArgs(t, "-bytes", "0", "-blocks")
	assert.Error(t, err)

	_, _, err = runArgs(t, "extra")
	assert.Error(t, err)

	_, _, err = runArgs(t, "-h")
	assert.ErrorIs(t, err, flag.ErrHelp)
}

// TestRun_VersionAndList cover the informational flags.
func TestRun_VersionAndList(t *testing.T) {
	out, _, err := runArgs(t, "-version")
	require.NoError(t, err)
	assert.Equal(t, "prunesize version "+version+"\n", out)

	out, _, err = runArgs(t, "-list")
	require.NoError(t, err)
	assert.Contains(t, out, "zero-based")
	assert.Contains(t, out, "split")
}
