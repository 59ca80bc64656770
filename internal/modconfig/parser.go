package modconfig

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/e-Spirit/FSDevTools-sub005/internal/webapp"
	"go.yaml.in/yaml/v3"
)

// ParseFile reads, validates and decodes a module configuration file.
func ParseFile(path string) ([]Module, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data, path)
}

// Parse validates and decodes a module configuration document. source names
// the document in error messages. Schema violations are returned as an
// *InvalidError; a bad webAppName or moduleVersion fails the whole document.
func Parse(data []byte, source string) ([]Module, error) {
	result, err := Validate(data)
	if err != nil {
		return nil, fmt.Errorf("validating module configuration %s: %w", source, err)
	}
	if !result.Valid {
		return nil, &InvalidError{Source: source, Issues: result.Issues}
	}

	var modules []Module
	if err := yaml.Unmarshal(data, &modules); err != nil {
		return nil, fmt.Errorf("parsing module configuration %s: %w", source, err)
	}

	for i := range modules {
		if err := modules[i].resolve(); err != nil {
			return nil, fmt.Errorf("module configuration %s: %w", source, err)
		}
	}
	slog.Debug("loaded module configuration", "source", source, "modules", len(modules))
	return modules, nil
}

func (m *Module) resolve() error {
	m.ModuleName = strings.TrimSpace(m.ModuleName)
	if v := strings.TrimSpace(m.ModuleVersion); v != "" {
		c, err := semver.NewConstraint(v)
		if err != nil {
			return fmt.Errorf("module %q: invalid moduleVersion %q: %w", m.ModuleName, v, err)
		}
		m.constraint = c
	}

	for ci := range m.Components.WebComponents {
		wc := &m.Components.WebComponents[ci]
		for ai := range wc.WebApps {
			app := &wc.WebApps[ai]
			id, err := webapp.ParseSingle(app.WebAppName)
			if err != nil {
				return fmt.Errorf("module %q web component %q: %w", m.ModuleName, wc.ComponentName, err)
			}
			app.id = id
			app.ProjectName = strings.TrimSpace(app.ProjectName)
			if id.IsGlobal() && app.ProjectName != "" {
				slog.Warn("ignoring project name for global web app",
					"module", m.ModuleName, "component", wc.ComponentName, "webapp", id.String(), "project", app.ProjectName)
				app.ProjectName = ""
			}
		}
	}
	return nil
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
