// Package branding provides compile-time identity values for the CLI.
//
// The values live in branding.yaml next to this file and are baked into
// the binary with //go:embed.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	HomeDir     string `yaml:"home_dir"`
	EnvPrefix   string `yaml:"env_prefix"`
	DefaultHost string `yaml:"default_host"`
	DefaultPort int    `yaml:"default_port"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing or empty.
		defaults = brand{
			CLIName:     "fsdevtools",
			DisplayName: "FSDevTools",
			Description: "Command line tooling for FirstSpirit project development",
			HomeDir:     ".fsdevtools",
			EnvPrefix:   "FSDEVTOOLS",
			DefaultHost: "localhost",
			DefaultPort: 8000,
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "fsdevtools").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".fsdevtools").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "FSDEVTOOLS").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// DefaultHost returns the server host used when none is configured.
func DefaultHost() string { load(); return defaults.DefaultHost }

// DefaultPort returns the server port used when none is configured.
func DefaultPort() int { load(); return defaults.DefaultPort }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("host") → "FSDEVTOOLS_HOST".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
