package modconfig

import (
	"github.com/Masterminds/semver/v3"
	"github.com/e-Spirit/FSDevTools-sub005/internal/webapp"
)

// Module is one entry of a configuration file.
type Module struct {
	ModuleName    string     `yaml:"moduleName" json:"moduleName"`
	ModuleVersion string     `yaml:"moduleVersion,omitempty" json:"moduleVersion,omitempty"`
	Components    Components `yaml:"components" json:"components"`

	constraint *semver.Constraints
}

// Components groups the configurable parts of a module.
type Components struct {
	WebComponents     []WebComponent     `yaml:"webComponents,omitempty" json:"webComponents,omitempty"`
	ProjectComponents []ProjectComponent `yaml:"projectComponents,omitempty" json:"projectComponents,omitempty"`
	Services          []Service          `yaml:"services,omitempty" json:"services,omitempty"`
}

// WebComponent assigns a module web component to one or more web apps.
type WebComponent struct {
	ComponentName string   `yaml:"componentName" json:"componentName"`
	WebApps       []WebApp `yaml:"webApps" json:"webApps"`
}

// WebApp is a single web app target of a web component. ProjectName names
// the project of a project scoped web app and falls back to the globally
// configured project when empty. It is ignored for global web apps.
type WebApp struct {
	WebAppName  string   `yaml:"webAppName" json:"webAppName"`
	ProjectName string   `yaml:"projectName,omitempty" json:"projectName,omitempty"`
	Files       []string `yaml:"files,omitempty" json:"files,omitempty"`
	Deploy      *bool    `yaml:"deploy,omitempty" json:"deploy,omitempty"`

	id webapp.Identifier
}

// ID returns the resolved web app identifier. It is nil until the
// configuration has been loaded through Parse or ParseFile.
func (w WebApp) ID() webapp.Identifier { return w.id }

// Deploys reports whether the web app is deployed after configuration.
// Deployment is on unless explicitly disabled.
func (w WebApp) Deploys() bool {
	return w.Deploy == nil || *w.Deploy
}

// ProjectComponent assigns a module project component to projects.
type ProjectComponent struct {
	ComponentName string       `yaml:"componentName" json:"componentName"`
	ProjectApps   []ProjectApp `yaml:"projectApps" json:"projectApps"`
}

// ProjectApp is a project target of a project component.
type ProjectApp struct {
	ProjectName string   `yaml:"projectName" json:"projectName"`
	Files       []string `yaml:"files,omitempty" json:"files,omitempty"`
}

// Service configures a module service.
type Service struct {
	ServiceName string   `yaml:"serviceName" json:"serviceName"`
	AutoStart   bool     `yaml:"autoStart,omitempty" json:"autoStart,omitempty"`
	Restart     bool     `yaml:"restart,omitempty" json:"restart,omitempty"`
	Files       []string `yaml:"files,omitempty" json:"files,omitempty"`
}
