package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/cubelets"
)

// execute runs the root command with fresh flag values and a config file
// in a temp dir.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	configPath, gapFlag, verbose = "", -1, false
	runPNG, showMoves, showPNG = "", "", ""

	cfg := filepath.Join(t.TempDir(), "config.json")
	var stdout, stderr bytes.Buffer
	rootCmd.SetArgs(append([]string{"--config", cfg}, args...))
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	t.Cleanup(func() {
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestShowSolved(t *testing.T) {
	out, _, err := execute(t, "", "show")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "      W W W \n"))
	assert.Contains(t, out, "Selection: none\n")
	assert.Contains(t, out, "Highlighted (0):\n")
	assert.Contains(t, out, "Solved: yes\n")
	assert.Contains(t, out, "Facelets: "+cubelets.NewState(cubelets.DefaultGap).Net().FaceletString())
}

func TestShowMoves(t *testing.T) {
	out, _, err := execute(t, "", "show", "--moves", "R U R' U'")
	require.NoError(t, err)
	assert.Contains(t, out, "Turns: 4\n")
	assert.Contains(t, out, "Solved: no\n")

	want := cubelets.ApplyMoves(cubelets.NewState(cubelets.DefaultGap), cubelets.SexyMove)
	assert.Contains(t, out, "Facelets: "+want.Net().FaceletString())

	out, _, err = execute(t, "", "show", "-m", "R R U U'")
	require.NoError(t, err)
	assert.Contains(t, out, "Moves: R R U U' (4)\n")
	assert.Contains(t, out, "Simplified: R2 (1)\n")
}

func TestShowBadMoves(t *testing.T) {
	_, _, err := execute(t, "", "show", "--moves", "R Q")
	require.Error(t, err)
	assert.ErrorIs(t, err, cubelets.ErrInvalidNotation)
}

func TestShowPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "net.png")
	out, _, err := execute(t, "", "show", "--png", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+path)

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestRunFromStdin(t *testing.T) {
	script := "# right face\npick 2-1-1 +x\nrotate right\n"
	out, _, err := execute(t, script, "run")
	require.NoError(t, err)

	assert.Contains(t, out, "Selection: x=2\n")
	assert.Contains(t, out, "Highlighted (9): 2-0-0 2-0-1 2-0-2 2-1-0 2-1-1 2-1-2 2-2-0 2-2-1 2-2-2\n")
	assert.Contains(t, out, "Turns: 1\n")
	assert.Contains(t, out, "Solved: no\n")
}

func TestRunFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.txt")
	require.NoError(t, os.WriteFile(path, []byte("move R\npick 0-0-0 -y\ncancel\nmove R'\n"), 0644))

	png := filepath.Join(t.TempDir(), "final.png")
	out, _, err := execute(t, "", "run", path, "--png", png)
	require.NoError(t, err)
	assert.Contains(t, out, "Selection: none\n")
	assert.Contains(t, out, "Solved: yes\n")
	assert.Contains(t, out, "Turns: 2\n")

	_, err = os.Stat(png)
	assert.NoError(t, err)
}

func TestRunVerboseLogs(t *testing.T) {
	_, stderr, err := execute(t, "pick 2-1-1 +x\nrotate left\n", "run", "--verbose")
	require.NoError(t, err)
	assert.Contains(t, stderr, "msg=pick")
	assert.Contains(t, stderr, "msg=rotate")
}

func TestRunBadScript(t *testing.T) {
	_, _, err := execute(t, "pick 2-1-1 +x\nrotate twice\n", "run")
	require.Error(t, err)
	assert.ErrorIs(t, err, cubelets.ErrInvalidDirection)
	assert.Contains(t, err.Error(), "line 2")

	_, _, err = execute(t, "", "run", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestGapFlag(t *testing.T) {
	_, _, err := execute(t, "", "show", "--gap", "2")
	assert.Error(t, err)

	_, _, err = execute(t, "", "show", "--gap", "0")
	assert.NoError(t, err)
}

func TestConfigSetAndShow(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "config.json")

	out, _, err := execute(t, "", "config", "set", "sticker_size", "16", "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "Saved "+cfg)

	_, _, err = execute(t, "", "config", "set", "palette.B", "#112233", "--config", cfg)
	require.NoError(t, err)

	out, _, err = execute(t, "", "config", "show", "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "sticker_size: 16\n")
	assert.Contains(t, out, "palette.B: #112233\n")
	assert.Contains(t, out, "gap: 0.15\n")

	_, _, err = execute(t, "", "config", "set", "gap", "3", "--config", cfg)
	assert.Error(t, err)
}
