package config

import "context"

// Loader is the interface for a format-specific settings loader.
type Loader interface {
	// Load reads settings from the given files or directories and returns
	// the mazes they describe.
	Load(ctx context.Context, paths ...string) (*Model, error)
}
