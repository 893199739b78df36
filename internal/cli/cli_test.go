package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lakret/gir/office"
)

// execute runs the root command with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, logs bytes.Buffer
	c := New(&logs, LogInfo)
	root := c.RootCommand()
	root.SetOut(&out)
	root.SetErr(&logs)
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gir.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
[maze]
width = 5
algorithm = "dfs"

[search]
favorite = 1352
goal = [31, 39]
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	def := DefaultConfig()
	assert.Equal(t, 5, cfg.Maze.Width)
	assert.Equal(t, def.Maze.Height, cfg.Maze.Height, "missing keys keep defaults")
	assert.Equal(t, "dfs", cfg.Maze.Algorithm)
	assert.Equal(t, 1352, cfg.Search.Favorite)
	assert.Equal(t, [2]int{31, 39}, cfg.Search.Goal)
	assert.Equal(t, def.Search.Start, cfg.Search.Start)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = LoadConfig(writeConfig(t, "[maze\nwidth ="))
	assert.Error(t, err)
}

func TestMazeCommand(t *testing.T) {
	out, err := execute(t, "maze", "--width", "4", "--height", "3", "--seed", "9")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 2*3+1)
	assert.Equal(t, "+---+---+---+---+", lines[0])

	again, err := execute(t, "maze", "--width", "4", "--height", "3", "--seed", "9")
	require.NoError(t, err)
	assert.Equal(t, out, again)
}

func TestMazeCommand_Solve(t *testing.T) {
	out, err := execute(t, "maze", "--width", "5", "--height", "5", "--solve")
	require.NoError(t, err)
	assert.Contains(t, out, "route length:")
	assert.Contains(t, out, glyphStart)
	assert.Contains(t, out, glyphGoal)
}

func TestMazeCommand_Errors(t *testing.T) {
	_, err := execute(t, "maze", "--algorithm", "wilson")
	assert.Error(t, err)

	_, err = execute(t, "maze", "--width", "0")
	assert.Error(t, err)
}

func TestMazeCommand_Config(t *testing.T) {
	path := writeConfig(t, "[maze]\nwidth = 2\nheight = 1\n")

	out, err := execute(t, "--config", path, "maze")
	require.NoError(t, err)
	assert.Equal(t, "+---+---+", strings.Split(out, "\n")[0])

	// Flags win over the file.
	out, err = execute(t, "--config", path, "maze", "--width", "3")
	require.NoError(t, err)
	assert.Equal(t, "+---+---+---+", strings.Split(out, "\n")[0])
}

func TestSearchCommand(t *testing.T) {
	out, err := execute(t, "search", "--favorite", "10", "--start", "1,1", "--goal", "7,4", "--size", "10")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 11)
	assert.Contains(t, lines[10], "steps:")
	assert.Contains(t, lines[10], "11")
	assert.Contains(t, lines[1], glyphStart)
}

func TestSearchCommand_Errors(t *testing.T) {
	_, err := execute(t, "search", "--start", "1;1")
	assert.Error(t, err)

	_, err = execute(t, "search", "--favorite", "10", "--start", "1,0")
	assert.ErrorIs(t, err, office.ErrBlocked)
}

func TestDotCommand(t *testing.T) {
	out, err := execute(t, "dot", "maze", "--width", "2", "--height", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "digraph")
	assert.Contains(t, out, "(0,0)")

	out, err = execute(t, "dot", "office", "--favorite", "10", "--size", "3")
	require.NoError(t, err)
	assert.Contains(t, out, `"0,0" -> "0,1"`)

	out, err = execute(t, "dot", "grid", "--width", "2", "--height", "1")
	require.NoError(t, err)
	assert.Contains(t, out, `"(0,0)" -> "(0,1)"`)

	_, err = execute(t, "dot", "tree")
	assert.Error(t, err)
}

func TestParsePos(t *testing.T) {
	cases := []struct {
		in   string
		want office.Pos
		ok   bool
	}{
		{"1,1", office.Pos{X: 1, Y: 1}, true},
		{" 31 , 39 ", office.Pos{X: 31, Y: 39}, true},
		{"7", office.Pos{}, false},
		{"a,1", office.Pos{}, false},
		{"1,b", office.Pos{}, false},
	}
	for _, tc := range cases {
		got, err := parsePos(tc.in)
		if !tc.ok {
			assert.Errorf(t, err, "%q", tc.in)
			continue
		}
		require.NoErrorf(t, err, "%q", tc.in)
		assert.Equal(t, tc.want, got)
	}
}

func TestLoggerContext(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, log.DebugLevel)

	ctx := withLogger(context.Background(), l)
	assert.Same(t, l, loggerFromContext(ctx))
	assert.Same(t, log.Default(), loggerFromContext(context.Background()))

	newProgress(l).done("finished", "items", 3)
	assert.Contains(t, buf.String(), "finished")
	assert.Contains(t, buf.String(), "elapsed=")
}
