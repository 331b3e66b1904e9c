package integration_tests

import (
	"bytes"
	"context"
	"testing"

	"github.com/vk/turnmaze/internal/app"
	"github.com/vk/turnmaze/internal/cli"
	"github.com/vk/turnmaze/internal/hcl"
	"github.com/vk/turnmaze/internal/testutil"
)

// runPipeline drives the same parse, build and run sequence as the binary.
func runPipeline(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	stdout := &bytes.Buffer{}
	stderr := &testutil.SafeBuffer{}

	cfg, shouldExit, err := cli.Parse(args, stdout)
	if err != nil || shouldExit {
		return stdout.String(), stderr.String(), err
	}

	a, err := app.NewApp(stdout, stderr, cfg, hcl.NewLoader())
	if err != nil {
		return stdout.String(), stderr.String(), err
	}
	err = a.Run(context.Background())
	return stdout.String(), stderr.String(), err
}
