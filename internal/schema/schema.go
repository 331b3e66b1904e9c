// Package schema holds the HCL decoding structs for turnmaze settings files.
package schema

import (
	"github.com/hashicorp/hcl/v2"
)

// File represents the top-level structure of a settings file.
type File struct {
	WorkDir *string `hcl:"workdir,optional"`
	Mazes   []*Maze `hcl:"maze,block"`
}

// Maze represents a `maze` block. Input and Output are kept as expressions so
// they can refer to `workdir` and `name` and call string functions.
type Maze struct {
	Name   string         `hcl:"name,label"`
	Input  hcl.Expression `hcl:"input"`
	Output hcl.Expression `hcl:"output,optional"`
}
