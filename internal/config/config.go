package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/e-Spirit/FSDevTools-sub005/internal/branding"
	"github.com/e-Spirit/FSDevTools-sub005/internal/output"
	"github.com/e-Spirit/FSDevTools-sub005/internal/permission"
	"github.com/e-Spirit/FSDevTools-sub005/internal/webapp"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Configuration keys.
const (
	KeyHost           = "host"
	KeyPort           = "port"
	KeyProject        = "project"
	KeyPermissionMode = "permission_mode"
	KeyWebAppScopes   = "web_app_scopes"
	KeyOutput         = "output"
)

// flagKeys maps command line flags to the keys they override.
var flagKeys = map[string]string{
	"host":            KeyHost,
	"port":            KeyPort,
	"project":         KeyProject,
	"permission-mode": KeyPermissionMode,
	"web-app-scopes":  KeyWebAppScopes,
	"output":          KeyOutput,
}

// Keys returns the supported configuration keys in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(flagKeys))
	for _, k := range flagKeys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Dir returns the path to the config directory (~/.fsdevtools/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file.
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	viper.SetDefault(KeyHost, branding.DefaultHost())
	viper.SetDefault(KeyPort, branding.DefaultPort())
	viper.SetDefault(KeyPermissionMode, string(permission.Default))
	viper.SetDefault(KeyOutput, string(output.Text))

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// BindFlags lets flags present in fs override configured values. Only
// flags the user actually set take precedence.
func BindFlags(fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := viper.BindPFlag(key, f); err != nil {
			return fmt.Errorf("binding flag --%s: %w", name, err)
		}
	}
	return nil
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Host returns the configured server host.
func Host() string { return viper.GetString(KeyHost) }

// Port returns the configured server port.
func Port() int { return viper.GetInt(KeyPort) }

// Project returns the configured project name.
func Project() string { return viper.GetString(KeyProject) }

// PermissionMode resolves the configured permission mode.
func PermissionMode() (permission.Mode, error) {
	m, err := permission.Resolve(viper.GetString(KeyPermissionMode))
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", KeyPermissionMode, err)
	}
	return m, nil
}

// WebAppScopes resolves the configured web app scopes. Unset yields none.
func WebAppScopes() ([]webapp.Identifier, error) {
	ids, err := webapp.Extract(scopesString(viper.Get(KeyWebAppScopes)))
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", KeyWebAppScopes, err)
	}
	return ids, nil
}

// OutputFormat resolves the configured output format.
func OutputFormat() (output.Format, error) {
	f, err := output.ParseFormat(viper.GetString(KeyOutput))
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", KeyOutput, err)
	}
	return f, nil
}

// scopesString accepts both a comma-separated string and a YAML list.
func scopesString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case []any:
		parts := make([]string, len(val))
		for i, p := range val {
			parts[i] = fmt.Sprint(p)
		}
		return strings.Join(parts, ",")
	case []string:
		return strings.Join(val, ",")
	default:
		return fmt.Sprint(val)
	}
}

// Set validates and writes a config key-value pair, then saves the config
// file. Values are stored in canonical form.
func Set(key, value string) error {
	canonical, err := normalize(key, value)
	if err != nil {
		return err
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	configFile := FilePath()

	// Write through a private instance so defaults and bound flags are not
	// persisted.
	file := viper.New()
	file.SetConfigFile(configFile)
	file.SetConfigType(fileType)
	if err := file.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("reading config file %s: %w", configFile, err)
	}
	file.Set(key, canonical)

	if err := file.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	viper.Set(key, canonical)
	return nil
}

func normalize(key, value string) (any, error) {
	switch key {
	case KeyHost, KeyProject:
		v := strings.TrimSpace(value)
		if v == "" {
			return nil, fmt.Errorf("%s must not be empty", key)
		}
		return v, nil
	case KeyPort:
		p, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || p <= 0 || p > 65535 {
			return nil, fmt.Errorf("invalid port %q", value)
		}
		return p, nil
	case KeyPermissionMode:
		m, err := permission.Resolve(value)
		if err != nil {
			return nil, err
		}
		return string(m), nil
	case KeyWebAppScopes:
		ids, err := webapp.ParseMultiple(value)
		if err != nil {
			return nil, err
		}
		return strings.Join(webapp.Names(ids), ","), nil
	case KeyOutput:
		f, err := output.ParseFormat(value)
		if err != nil {
			return nil, err
		}
		return string(f), nil
	default:
		return nil, fmt.Errorf("unknown config key %q (known keys: %s)", key, strings.Join(Keys(), ", "))
	}
}
