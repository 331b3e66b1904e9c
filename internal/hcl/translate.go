package hcl

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/turnmaze/internal/config"
	"github.com/vk/turnmaze/internal/ctxlog"
	"github.com/vk/turnmaze/internal/schema"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
	"github.com/zclconf/go-cty/cty/gocty"
)

// functions are the helpers available inside maze block expressions.
var functions = map[string]function.Function{
	"format":    stdlib.FormatFunc,
	"lower":     stdlib.LowerFunc,
	"upper":     stdlib.UpperFunc,
	"trimspace": stdlib.TrimSpaceFunc,
}

// translateFile converts the decoded blocks of one file into mazes.
func (l *Loader) translateFile(ctx context.Context, file string, root *schema.File) ([]*config.Maze, error) {
	workDir := filepath.Dir(file)
	if root.WorkDir != nil && *root.WorkDir != "" {
		workDir = resolve(workDir, *root.WorkDir)
	}
	ctxlog.FromContext(ctx).Debug("Resolved working directory.", "file", file, "workdir", workDir)

	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"workdir": cty.StringVal(workDir),
		},
		Functions: functions,
	}

	mazes := make([]*config.Maze, 0, len(root.Mazes))
	for _, block := range root.Mazes {
		mz, err := translateMaze(evalCtx, workDir, block)
		if err != nil {
			return nil, err
		}
		mazes = append(mazes, mz)
	}
	return mazes, nil
}

// translateMaze evaluates the path expressions of one maze block.
func translateMaze(parent *hcl.EvalContext, workDir string, block *schema.Maze) (*config.Maze, error) {
	evalCtx := parent.NewChild()
	evalCtx.Variables = map[string]cty.Value{
		"name": cty.StringVal(block.Name),
	}

	input, ok, err := evalPath(evalCtx, block.Input)
	if err != nil {
		return nil, fmt.Errorf("maze %q: input: %w", block.Name, err)
	}
	if !ok {
		return nil, fmt.Errorf("maze %q: input must not be null", block.Name)
	}
	input = resolve(workDir, input)

	output, ok, err := evalPath(evalCtx, block.Output)
	if err != nil {
		return nil, fmt.Errorf("maze %q: output: %w", block.Name, err)
	}
	if ok {
		output = resolve(workDir, output)
	} else {
		output = filepath.Join(filepath.Dir(input), config.DefaultOutputName)
	}

	return &config.Maze{Name: block.Name, Input: input, Output: output}, nil
}

// evalPath evaluates expr to a string. ok is false when the value is null.
func evalPath(evalCtx *hcl.EvalContext, expr hcl.Expression) (string, bool, error) {
	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return "", false, diags
	}
	if val.IsNull() {
		return "", false, nil
	}
	if !val.IsWhollyKnown() {
		return "", false, fmt.Errorf("value is not known")
	}

	str, err := convert.Convert(val, cty.String)
	if err != nil {
		return "", false, fmt.Errorf("cannot convert %s to string: %w", val.Type().FriendlyName(), err)
	}

	var path string
	if err := gocty.FromCtyValue(str, &path); err != nil {
		return "", false, err
	}
	if path == "" {
		return "", false, fmt.Errorf("path must not be empty")
	}
	return path, true, nil
}

// resolve joins a relative path onto base.
func resolve(base, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(base, path)
}
