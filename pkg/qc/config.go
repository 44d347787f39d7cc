package qc

// Config controls which checks run and their options.
type Config struct {
	// DisabledChecks contains check IDs to skip.
	DisabledChecks map[string]bool

	// CheckOptions holds check-specific options keyed by check ID, e.g.
	// an alternate forbidden-word list for check_009. Defaults live in
	// the checks themselves; options substitute them wholesale.
	CheckOptions map[string]map[string]any
}

// NewConfig creates a default configuration with all checks enabled.
func NewConfig() *Config {
	return &Config{
		DisabledChecks: make(map[string]bool),
		CheckOptions:   make(map[string]map[string]any),
	}
}

// IsDisabled returns true if the check should be skipped.
func (c *Config) IsDisabled(id string) bool {
	if c == nil {
		return false
	}
	return c.DisabledChecks[id]
}

// Disable disables a check by ID.
func (c *Config) Disable(id string) *Config {
	c.DisabledChecks[id] = true
	return c
}

// SetCheckOptions sets check-specific options.
func (c *Config) SetCheckOptions(id string, opts map[string]any) *Config {
	c.CheckOptions[id] = opts
	return c
}

// GetCheckOptions returns check-specific options, nil when none are set.
func (c *Config) GetCheckOptions(id string) map[string]any {
	if c == nil {
		return nil
	}
	return c.CheckOptions[id]
}
