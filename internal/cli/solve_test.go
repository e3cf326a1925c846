package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

// runCommand executes the solve command with args and returns its stdout.
func runCommand(t *testing.T, args ...string) string {
	t.Helper()

	var out bytes.Buffer
	cmd := newSolveCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	require.NoError(t, cmd.Execute())
	return out.String()
}

func TestSolveCommandSingleRun(t *testing.T) {
	out := runCommand(t,
		"--cities", "10",
		"--instance", "ring",
		"--iterations", "5",
		"--seed", "42",
	)

	require.Contains(t, out, "best cost")
	require.Contains(t, out, "iterations")
	require.Contains(t, out, "tour")
}

func TestSolveCommandMultiStart(t *testing.T) {
	out := runCommand(t,
		"--cities", "10",
		"--instance", "uniform",
		"--iterations", "5",
		"--seed", "42",
		"--workers", "3",
	)

	require.Contains(t, out, "best cost")
	require.Contains(t, out, "3 completed")
	require.Contains(t, out, "cost stddev")
}

func TestSolveCommandReadsConfigFile(t *testing.T) {
	path := writeConfig(t, `
cities = 8
instance = "ring"
max_iterations = 4
`)

	out := runCommand(t, "--config", path)
	require.Contains(t, out, "best cost")
}

func TestSolveCommandRejectsBadInputs(t *testing.T) {
	cases := [][]string{
		{"--cities", "1"},
		{"--instance", "spiral"},
		{"--acceptance", "fastest"},
		{"--iterations", "0"},
	}
	for _, args := range cases {
		cmd := newSolveCmd()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs(args)
		require.Error(t, cmd.Execute(), "%v", args)
	}
}
