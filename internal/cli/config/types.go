// Package config loads articleqc configuration from file, environment,
// and flags.
package config

import (
	"github.com/kotoha-works/articleqc/pkg/qc"
)

// Default configuration values.
const (
	DefaultReportDir = "queue/reports"
	DefaultOutput    = "auto"
)

// DefaultSites is the full site roster checked by "check all".
var DefaultSites = []string{
	"yane", "kagi", "kyutoki", "ohaka", "gaichuu", "kekkon", "ihin", "fuyouhin", "zeirishi",
}

// Config is the resolved articleqc configuration.
type Config struct {
	// BaseDir is the directory holding one subdirectory per site.
	BaseDir string `koanf:"base_dir"`
	// ReportDir receives the YAML reports; relative paths resolve
	// against BaseDir.
	ReportDir string `koanf:"report_dir"`
	// Sites is the roster used when checking "all".
	Sites []string `koanf:"sites"`
	// Output selects the renderer mode: auto, text, json, yaml.
	Output  string `koanf:"output"`
	Verbose bool   `koanf:"verbose"`

	// QC holds check-level configuration.
	QC *QCConfig `koanf:"qc"`
}

// QCConfig configures the check set.
type QCConfig struct {
	// Disabled lists check IDs to skip.
	Disabled []string `koanf:"disabled"`
	// Checks holds check-specific options keyed by check ID, e.g. an
	// alternate forbidden-word list under check_009.
	Checks map[string]map[string]any `koanf:"checks"`
}

// BuildQCConfig converts the file-level QC section into the engine's
// check configuration.
func (c *Config) BuildQCConfig() *qc.Config {
	cfg := qc.NewConfig()
	if c.QC == nil {
		return cfg
	}
	for _, id := range c.QC.Disabled {
		cfg.Disable(id)
	}
	for id, opts := range c.QC.Checks {
		cfg.SetCheckOptions(id, opts)
	}
	return cfg
}
