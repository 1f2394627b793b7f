package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoCases = `2
1
BATUMI KUTAISI
2
KUTAISI POTI
POTI ZUGDIDI
`

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestSolve_Stdin(t *testing.T) {
	out, _, err := execute(t, twoCases, "solve")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "Case #1: 1", lines[0])
	assert.Equal(t, "KUTAISI BATUMI", lines[1])
	assert.Equal(t, "Case #2: 2", lines[2])
	assert.True(t, strings.HasPrefix(lines[3], "BATUMI "), "first purchase leaves home: %q", lines[3])
	assert.True(t, strings.HasSuffix(lines[4], " BATUMI"), "last purchase returns home: %q", lines[4])
}

func TestSolve_FileAndFlags(t *testing.T) {
	in := writeFile(t, "in.txt", "1\n1\nHOME A\n")
	dot := filepath.Join(t.TempDir(), "dot")

	out, _, err := execute(t, "", "solve", in,
		"--home", "HOME", "--exact", "--bound", "none", "-j", "1", "--dot-dir", dot)
	require.NoError(t, err)
	assert.Equal(t, "Case #1: 1\nA HOME\n", out)

	b, err := os.ReadFile(filepath.Join(dot, "case_1.dot"))
	require.NoError(t, err)
	assert.Contains(t, string(b), "HOME -- A")
}

func TestSolve_ConfigFile(t *testing.T) {
	cfg := writeFile(t, "freeride.yaml", "home: HOME\nworkers: 2\n")

	out, _, err := execute(t, "1\n2\nHOME A\nA HOME\n", "solve", "--config", cfg)
	require.NoError(t, err)
	assert.Equal(t, "Case #1: 0\n", out)
}

func TestSolve_OrderedOutput(t *testing.T) {
	var b strings.Builder
	const n = 12
	fmt.Fprintf(&b, "%d\n", n)
	for i := 1; i <= n; i++ {
		fmt.Fprintf(&b, "1\nBATUMI C%d\n", i)
	}

	out, _, err := execute(t, b.String(), "solve", "-j", "4")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2*n)
	for i := 1; i <= n; i++ {
		assert.Equal(t, fmt.Sprintf("Case #%d: 1", i), lines[2*(i-1)])
		assert.Equal(t, fmt.Sprintf("C%d BATUMI", i), lines[2*(i-1)+1])
	}
}

func TestSolve_Errors(t *testing.T) {
	_, _, err := execute(t, "1\n2\nA B\n", "solve")
	require.Error(t, err, "truncated input")

	_, _, err = execute(t, twoCases, "solve", "--bound", "tight")
	require.Error(t, err, "unknown bound policy")

	_, _, err = execute(t, twoCases, "solve", "--workers", "0")
	require.Error(t, err)

	// A case over capacity fails on its own; the others are still printed.
	var b strings.Builder
	b.WriteString("2\n101\n")
	for i := 0; i < 101; i++ {
		fmt.Fprintf(&b, "X%d Y%d\n", i, i)
	}
	b.WriteString("1\nBATUMI A\n")
	out, _, err := execute(t, b.String(), "solve")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "case 1")
	assert.Equal(t, "Case #2: 1\nA BATUMI\n", out)
}

func TestSolve_DebugLogsImprovements(t *testing.T) {
	_, stderr, err := execute(t, twoCases, "solve", "--debug")
	require.NoError(t, err)
	assert.Contains(t, stderr, "search.improved")
	assert.Contains(t, stderr, "case.solved")
}

func TestCache_SolveCountPurge(t *testing.T) {
	db := filepath.Join(t.TempDir(), "solutions.db")

	first, _, err := execute(t, twoCases, "solve", "--cache", db)
	require.NoError(t, err)

	_, stderr, err := execute(t, twoCases, "solve", "--cache", db)
	require.NoError(t, err)
	assert.Contains(t, stderr, "case.cached")

	second, _, err := execute(t, twoCases, "solve", "--cache", db)
	require.NoError(t, err)
	assert.Equal(t, first, second, "cached answers print identically")

	out, _, err := execute(t, "", "cache", "count", "--cache", db)
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)

	out, _, err = execute(t, "", "cache", "purge", "--cache", db)
	require.NoError(t, err)
	assert.Equal(t, "removed 2 cached solution(s)\n", out)

	out, _, err = execute(t, "", "cache", "count", "--cache", db)
	require.NoError(t, err)
	assert.Equal(t, "0\n", out)
}

func TestCache_RequiresPath(t *testing.T) {
	_, _, err := execute(t, "", "cache", "count")
	require.Error(t, err)
}
