package remote

import (
	"context"
	"fmt"
	"strconv"

	"github.com/e-Spirit/FSDevTools-sub005/internal/identifier"
	"github.com/e-Spirit/FSDevTools-sub005/internal/modconfig"
	"github.com/e-Spirit/FSDevTools-sub005/internal/permission"
	"github.com/e-Spirit/FSDevTools-sub005/internal/webapp"
)

// Client is the set of server operations the CLI issues.
type Client interface {
	Export(ctx context.Context, req ExportRequest) error
	Import(ctx context.Context, req ImportRequest) error
	ExternalSync(ctx context.Context, req SyncRequest) error
	InstallModule(ctx context.Context, req InstallRequest) error
	ConfigureModules(ctx context.Context, req ConfigureRequest) error
	ActivateWebServer(ctx context.Context, req ActivateRequest) error
	ListServices(ctx context.Context) error
	StartService(ctx context.Context, req ServiceRequest) error
	StopService(ctx context.Context, req ServiceRequest) error
	RestartService(ctx context.Context, req ServiceRequest) error
	ListSchedules(ctx context.Context) error
	StartSchedule(ctx context.Context, req ScheduleRequest) error
}

// Connection addresses a server and the project operations run against.
type Connection struct {
	Host    string `json:"host" yaml:"host"`
	Port    int    `json:"port" yaml:"port"`
	Project string `json:"project,omitempty" yaml:"project,omitempty"`
}

// Address returns host:port.
func (c Connection) Address() string {
	return c.Host + ":" + strconv.Itoa(c.Port)
}

// Validate checks that the connection can address a server.
func (c Connection) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("no host configured")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	return nil
}

// ExportRequest exports store elements and project properties to Dir.
type ExportRequest struct {
	Dir         string
	Identifiers []identifier.Identifier
}

// ImportRequest imports a previous export from Dir.
type ImportRequest struct {
	Dir            string
	PermissionMode permission.Mode
}

// Direction of an external sync.
type Direction string

const (
	DirectionExport Direction = "export"
	DirectionImport Direction = "import"
)

// SyncRequest runs an external sync in Direction.
type SyncRequest struct {
	Direction      Direction
	Dir            string
	Identifiers    []identifier.Identifier
	PermissionMode permission.Mode
}

// InstallRequest installs a module archive and, for each web app scope,
// configures the module's web components in the project.
type InstallRequest struct {
	File         string
	Project      string
	WebAppScopes []webapp.Identifier
}

// ConfigureRequest applies module configuration entries.
type ConfigureRequest struct {
	Source  string
	Modules []modconfig.Module
}

// ActivateRequest assigns a web server to the project's web apps.
type ActivateRequest struct {
	Scopes []webapp.Identifier
	Server string
	Force  bool
}

// ServiceRequest selects the module services to start, stop or restart. An
// empty Names list selects every service with auto start enabled.
type ServiceRequest struct {
	Names []string
}

// ScheduleRequest runs the schedule entry Name, in the configured project if
// one is set and on the server otherwise.
type ScheduleRequest struct {
	Name string
}
