package app

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/vk/turnmaze/internal/config"
	"github.com/vk/turnmaze/internal/fsutil"
	"github.com/vk/turnmaze/internal/maze"
	"github.com/vk/turnmaze/internal/solver"
	"github.com/vk/turnmaze/internal/testutil"
)

// fixedClock returns a clock that advances by step on every call.
func fixedClock(step time.Duration) func() time.Time {
	t := time.Date(2024, 12, 16, 0, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(step)
		return t
	}
}

// stubLoader returns a fixed model or error.
type stubLoader struct {
	model *config.Model
	err   error
	paths []string
}

func (l *stubLoader) Load(_ context.Context, paths ...string) (*config.Model, error) {
	l.paths = paths
	return l.model, l.err
}

func setupApp(t *testing.T, cfg Config, loader config.Loader) (*App, *bytes.Buffer, *testutil.SafeBuffer) {
	t.Helper()

	appConfig, err := NewConfig(cfg)
	require.NoError(t, err)

	out := &bytes.Buffer{}
	logs := &testutil.SafeBuffer{}
	a, err := NewApp(out, logs, appConfig, loader)
	require.NoError(t, err)
	a.now = fixedClock(2 * time.Millisecond)
	return a, out, logs
}

func TestNewConfig(t *testing.T) {
	cfg, err := NewConfig(Config{})
	require.NoError(t, err)
	require.Equal(t, &Config{WorkDir: ".", LogFormat: "text", LogLevel: "warn"}, cfg)

	_, err = NewConfig(Config{ConfigPath: "turnmaze.hcl", InputPath: "maze.txt"})
	require.ErrorContains(t, err, "cannot be combined")
}

func TestNewApp_WorkDirModel(t *testing.T) {
	dir := t.TempDir()

	a, _, _ := setupApp(t, Config{WorkDir: dir}, nil)
	require.Equal(t, []*config.Maze{{
		Name:   "default",
		Input:  filepath.Join(dir, "input.txt"),
		Output: filepath.Join(dir, "output.txt"),
	}}, a.Model().Mazes)

	a, _, _ = setupApp(t, Config{WorkDir: dir, InputPath: "custom.txt"}, nil)
	require.Equal(t, "custom.txt", a.Model().Mazes[0].Input)
	require.Equal(t, filepath.Join(dir, "output.txt"), a.Model().Mazes[0].Output)
}

func TestNewApp_UsesLoaderForSettings(t *testing.T) {
	model := &config.Model{Mazes: []*config.Maze{{Name: "x", Input: "x.txt", Output: "x.out"}}}
	loader := &stubLoader{model: model}

	a, _, _ := setupApp(t, Config{ConfigPath: "settings.hcl"}, loader)
	require.Same(t, model, a.Model())
	require.Equal(t, []string{"settings.hcl"}, loader.paths)

	appConfig, err := NewConfig(Config{ConfigPath: "settings.hcl"})
	require.NoError(t, err)
	_, err = NewApp(&bytes.Buffer{}, &bytes.Buffer{}, appConfig, &stubLoader{err: errors.New("boom")})
	require.ErrorContains(t, err, "failed to load settings: boom")
}

func TestRun_ReferenceMaze(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, "input.txt", testutil.Example1.Text)

	a, out, logs := setupApp(t, Config{WorkDir: dir}, nil)
	require.NoError(t, a.Run(context.Background()))

	header := "Dimensions: 15 x 15\n" +
		"Solved in: 2 ms. Search count: 93\n" +
		"Best path cost 7036 points\n"
	require.Equal(t, header, out.String())
	require.Empty(t, logs.String(), "nothing is logged below warn level")

	written := testutil.ReadFile(t, filepath.Join(dir, "output.txt"))
	require.True(t, strings.HasPrefix(written, header))

	grid := strings.TrimPrefix(written, header)
	require.Equal(t, testutil.Example1.Text, maze.Strip(grid))
	require.Equal(t, 15, len(testutil.Lines(grid)))
	require.Contains(t, grid, ">")
}

func TestRun_IsIdempotent(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, "input.txt", testutil.Example2.Text)
	output := filepath.Join(dir, "output.txt")

	a, _, _ := setupApp(t, Config{WorkDir: dir}, nil)
	require.NoError(t, a.Run(context.Background()))
	first := testutil.ReadFile(t, output)

	a, _, _ = setupApp(t, Config{WorkDir: dir}, nil)
	require.NoError(t, a.Run(context.Background()))
	require.Equal(t, first, testutil.ReadFile(t, output))
	require.Contains(t, first, "Best path cost 11048 points\n")
}

func TestRun_NoPath(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, "input.txt", testutil.Maze("#####", "#S#E#", "#####"))

	a, out, logs := setupApp(t, Config{WorkDir: dir}, nil)
	require.NoError(t, a.Run(context.Background()))

	require.Contains(t, out.String(), "Best path cost none points\n")
	require.Contains(t, logs.String(), "No path found to the goal.\n")

	written := testutil.ReadFile(t, filepath.Join(dir, "output.txt"))
	require.True(t, strings.HasSuffix(written, "Best path cost none points\n#####\n#S#E#\n#####\n"))
	require.NotContains(t, written, ">", "no path glyphs expected")
}

func TestRun_FatalErrors(t *testing.T) {
	testCases := []struct {
		name   string
		input  string
		assert func(t *testing.T, err error)
	}{
		{
			name:  "missing input",
			input: "",
			assert: func(t *testing.T, err error) {
				var ioErr *fsutil.IOError
				require.ErrorAs(t, err, &ioErr)
			},
		},
		{
			name:  "short row",
			input: testutil.Maze("#####", "#S.E", "#####"),
			assert: func(t *testing.T, err error) {
				var formatErr *maze.FormatError
				require.ErrorAs(t, err, &formatErr)
				require.Equal(t, 2, formatErr.Line)
			},
		},
		{
			name:  "invalid character",
			input: testutil.Maze("#####", "#S*E#", "#####"),
			assert: func(t *testing.T, err error) {
				var formatErr *maze.FormatError
				require.ErrorAs(t, err, &formatErr)
			},
		},
		{
			name:  "two starts",
			input: testutil.Maze("######", "#SS.E#", "######"),
			assert: func(t *testing.T, err error) {
				var cfgErr *solver.ConfigError
				require.ErrorAs(t, err, &cfgErr)
			},
		},
		{
			name:  "no end",
			input: testutil.Maze("#####", "#S..#", "#####"),
			assert: func(t *testing.T, err error) {
				var cfgErr *solver.ConfigError
				require.ErrorAs(t, err, &cfgErr)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			if tc.input != "" {
				testutil.WriteFile(t, dir, "input.txt", tc.input)
			}

			a, out, _ := setupApp(t, Config{WorkDir: dir}, nil)
			err := a.Run(context.Background())
			require.Error(t, err)
			tc.assert(t, err)
			require.Empty(t, out.String())
			require.NoFileExists(t, filepath.Join(dir, "output.txt"))
		})
	}
}

func TestRun_SeveralMazes(t *testing.T) {
	dir := t.TempDir()
	first := testutil.WriteFile(t, dir, "a.txt", testutil.Maze("S.E"))
	second := testutil.WriteFile(t, dir, "b.txt", testutil.Maze("S#E"))

	loader := &stubLoader{model: &config.Model{Mazes: []*config.Maze{
		{Name: "a", Input: first, Output: filepath.Join(dir, "a.out")},
		{Name: "b", Input: second, Output: filepath.Join(dir, "b.out")},
	}}}

	a, out, _ := setupApp(t, Config{ConfigPath: "settings.hcl"}, loader)
	require.NoError(t, a.Run(context.Background()))

	want := "[a]\n" +
		"Dimensions: 3 x 1\nSolved in: 2 ms. Search count: 3\nBest path cost 2 points\n" +
		"[b]\n" +
		"Dimensions: 3 x 1\nSolved in: 2 ms. Search count: 1\nBest path cost none points\n"
	require.Equal(t, want, out.String())
	require.Equal(t, "Dimensions: 3 x 1\nSolved in: 2 ms. Search count: 3\nBest path cost 2 points\nS>E\n",
		testutil.ReadFile(t, filepath.Join(dir, "a.out")))
	require.FileExists(t, filepath.Join(dir, "b.out"))
}

func TestRun_SeveralMazesNamesFailingMaze(t *testing.T) {
	dir := t.TempDir()
	good := testutil.WriteFile(t, dir, "a.txt", testutil.Maze("S.E"))

	loader := &stubLoader{model: &config.Model{Mazes: []*config.Maze{
		{Name: "a", Input: good, Output: filepath.Join(dir, "a.out")},
		{Name: "broken", Input: filepath.Join(dir, "missing.txt"), Output: filepath.Join(dir, "b.out")},
	}}}

	a, _, _ := setupApp(t, Config{ConfigPath: "settings.hcl"}, loader)
	err := a.Run(context.Background())
	require.ErrorContains(t, err, `maze "broken"`)
	require.FileExists(t, filepath.Join(dir, "a.out"))
}

func TestRun_DebugLogging(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, "input.txt", testutil.Maze("S.E"))

	a, _, logs := setupApp(t, Config{WorkDir: dir, LogLevel: "debug", LogFormat: "json"}, nil)
	require.NoError(t, a.Run(context.Background()))

	require.Contains(t, logs.String(), `"msg":"Search reached the end tile."`)
	require.Contains(t, logs.String(), `"maze":"default"`)
}

func TestRun_NoPathNoticeIgnoresLogLevel(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, "input.txt", testutil.Maze("#####", "#S#E#", "#####"))

	a, _, logs := setupApp(t, Config{WorkDir: dir, LogLevel: "error"}, nil)
	require.NoError(t, a.Run(context.Background()))

	require.Equal(t, "No path found to the goal.\n", logs.String())
}
