package solver

// ConfigError reports a maze that cannot be searched, such as one without
// exactly one start and one end tile.
type ConfigError struct {
	Reason string
}

// Error implements the error interface for ConfigError.
func (e *ConfigError) Error() string {
	return "maze config: " + e.Reason
}
