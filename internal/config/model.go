package config

import (
	"fmt"
	"path/filepath"
)

// DefaultInputName and DefaultOutputName are the file names used inside a
// working directory when no explicit paths are given.
const (
	DefaultInputName  = "input.txt"
	DefaultOutputName = "output.txt"
)

// Model is the list of mazes a run solves, in order.
type Model struct {
	Mazes []*Maze
}

// Maze is one input/output pair.
type Maze struct {
	Name   string
	Input  string
	Output string
}

// ForWorkDir returns the single-maze model rooted at dir: dir/input.txt is
// solved into dir/output.txt.
func ForWorkDir(dir string) *Model {
	return &Model{Mazes: []*Maze{{
		Name:   "default",
		Input:  filepath.Join(dir, DefaultInputName),
		Output: filepath.Join(dir, DefaultOutputName),
	}}}
}

// Validate checks that the model names at least one maze, that every maze
// has an input and an output, and that names and outputs are unique.
func (m *Model) Validate() error {
	if len(m.Mazes) == 0 {
		return fmt.Errorf("config: no mazes defined")
	}

	names := make(map[string]bool, len(m.Mazes))
	outputs := make(map[string]string, len(m.Mazes))
	for _, mz := range m.Mazes {
		switch {
		case mz.Name == "":
			return fmt.Errorf("config: maze without a name")
		case names[mz.Name]:
			return fmt.Errorf("config: maze %q is defined more than once", mz.Name)
		case mz.Input == "":
			return fmt.Errorf("config: maze %q has no input", mz.Name)
		case mz.Output == "":
			return fmt.Errorf("config: maze %q has no output", mz.Name)
		}
		names[mz.Name] = true

		out := filepath.Clean(mz.Output)
		if other, ok := outputs[out]; ok {
			return fmt.Errorf("config: mazes %q and %q both write %s", other, mz.Name, out)
		}
		if filepath.Clean(mz.Input) == out {
			return fmt.Errorf("config: maze %q would overwrite its own input %s", mz.Name, out)
		}
		outputs[out] = mz.Name
	}
	return nil
}
