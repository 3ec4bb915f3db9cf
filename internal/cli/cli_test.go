package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/patrol/grid"
	"github.com/katalvlaran/patrol/internal/cli"
	"github.com/katalvlaran/patrol/internal/config"
	"github.com/katalvlaran/patrol/puzzle"
)

const lab = `....#.....
.........#
..........
..#.......
.......#..
..........
.#..^.....
........#.
#.........
......#...
`

// writeFile stores content under a fresh temp dir and returns its path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// execute runs the app with args and returns stdout and stderr.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	app := cli.New().WithOutput(&stdout, &stderr).WithInput(strings.NewReader(stdin))
	err := app.ExecuteWithArgs(context.Background(), args)
	return stdout.String(), stderr.String(), err
}

func TestRun_Text(t *testing.T) {
	path := writeFile(t, "lab.txt", lab)
	out, _, err := execute(t, "", "run", "--workers", "2", path)
	require.NoError(t, err)
	assert.Equal(t, "visited: 41\nobstructions: 6\n", out)
}

func TestRun_JSONFromStdin(t *testing.T) {
	out, _, err := execute(t, lab, "run", "--json", "-")
	require.NoError(t, err)

	var got map[string]int
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, map[string]int{"width": 10, "height": 10, "visited": 41, "obstructions": 6}, got)
}

func TestRun_LogsToStderr(t *testing.T) {
	out, errOut, err := execute(t, lab, "run", "--log-format", "json", "--log-level", "info", "-")
	require.NoError(t, err)
	assert.NotContains(t, out, "duration_ms")
	assert.Contains(t, errOut, `"visited":41`)
	assert.Contains(t, errOut, `"obstructions":6`)
}

func TestRun_ConfigFile(t *testing.T) {
	cfg := writeFile(t, "patrol.yaml", "workers: 1\nlog:\n  level: error\n")
	out, errOut, err := execute(t, lab, "run", "-c", cfg, "-")
	require.NoError(t, err)
	assert.Equal(t, "visited: 41\nobstructions: 6\n", out)
	assert.Empty(t, errOut, "info logs are filtered at level error")
}

func TestRun_Errors(t *testing.T) {
	badCfg := writeFile(t, "bad.yaml", "workers: -3\n")

	cases := []struct {
		name  string
		stdin string
		args  []string
		err   error
	}{
		{"BadLayout", "..x\n.^.", []string{"run", "-"}, grid.ErrUnknownCell},
		{"BaseLoops", ".#.\n#^#\n.#.", []string{"run", "-"}, puzzle.ErrBaseRunLoops},
		{"BadConfig", lab, []string{"run", "-c", badCfg, "-"}, config.ErrInvalidConfig},
		{"MissingConfig", lab, []string{"run", "-c", "/nonexistent/patrol.yaml", "-"}, config.ErrConfigNotFound},
		{"BadLogLevel", lab, []string{"run", "--log-level", "loud", "-"}, config.ErrInvalidConfig},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := execute(t, tc.stdin, tc.args...)
			assert.ErrorIs(t, err, tc.err)
		})
	}

	_, _, err := execute(t, "", "run", filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, _, err = execute(t, "", "run")
	assert.Error(t, err, "a layout argument is required")
}

func TestTrace(t *testing.T) {
	out, _, err := execute(t, "..#..\n....#\n..^..\n", "trace", "-")
	require.NoError(t, err)
	assert.Equal(t, "..#..\n..XX#\n..^X.\nverdict: terminated, squares: 4, states: 6\n", out)
}

func TestTrace_Looping(t *testing.T) {
	out, _, err := execute(t, ".#.\n#^#\n.#.", "trace", "-")
	require.NoError(t, err)
	assert.Equal(t, ".#.\n#^#\n.#.\nverdict: looping, squares: 0, states: 4\n", out)
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "patrol dev (unknown)\n", out)
}
