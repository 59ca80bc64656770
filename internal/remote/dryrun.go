package remote

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"text/tabwriter"

	"github.com/e-Spirit/FSDevTools-sub005/internal/identifier"
	"github.com/e-Spirit/FSDevTools-sub005/internal/output"
	"github.com/e-Spirit/FSDevTools-sub005/internal/webapp"
)

// Step is one operation a Client would send.
type Step struct {
	Operation string         `json:"operation" yaml:"operation"`
	Target    Connection     `json:"target" yaml:"target"`
	Params    map[string]any `json:"params,omitempty" yaml:"params,omitempty"`
}

// DryRun is a Client that prints each step to w instead of sending it.
// It is safe for concurrent use.
type DryRun struct {
	conn   Connection
	w      io.Writer
	format output.Format

	mu    sync.Mutex
	steps []Step
}

var _ Client = (*DryRun)(nil)

// NewDryRun returns a DryRun targeting conn and printing steps to w.
func NewDryRun(conn Connection, w io.Writer, format output.Format) *DryRun {
	return &DryRun{conn: conn, w: w, format: format}
}

// Steps returns the steps recorded so far.
func (d *DryRun) Steps() []Step {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]Step, len(d.steps))
	copy(out, d.steps)
	return out
}

func (d *DryRun) Export(ctx context.Context, req ExportRequest) error {
	if len(req.Identifiers) == 0 {
		return fmt.Errorf("export: no identifiers")
	}
	return d.record(ctx, "export", true, map[string]any{
		"dir":         req.Dir,
		"identifiers": identifierNames(req.Identifiers),
	})
}

func (d *DryRun) Import(ctx context.Context, req ImportRequest) error {
	return d.record(ctx, "import", true, map[string]any{
		"dir":            req.Dir,
		"permissionMode": string(req.PermissionMode.Remote()),
	})
}

func (d *DryRun) ExternalSync(ctx context.Context, req SyncRequest) error {
	switch req.Direction {
	case DirectionExport, DirectionImport:
	default:
		return fmt.Errorf("external sync: unknown direction %q", req.Direction)
	}
	params := map[string]any{
		"dir":            req.Dir,
		"permissionMode": string(req.PermissionMode.Remote()),
	}
	if len(req.Identifiers) > 0 {
		params["identifiers"] = identifierNames(req.Identifiers)
	}
	return d.record(ctx, "extsync-"+string(req.Direction), true, params)
}

func (d *DryRun) InstallModule(ctx context.Context, req InstallRequest) error {
	if req.File == "" {
		return fmt.Errorf("install module: no module file")
	}
	params := map[string]any{"file": req.File}
	if len(req.WebAppScopes) > 0 {
		params["webAppScopes"] = webapp.Names(req.WebAppScopes)
	}
	// Web components are only configured when a project is given.
	if req.Project != "" {
		params["project"] = req.Project
	}
	return d.record(ctx, "module-install", false, params)
}

func (d *DryRun) ConfigureModules(ctx context.Context, req ConfigureRequest) error {
	var targets []string
	for _, m := range req.Modules {
		for _, wc := range m.Components.WebComponents {
			for _, app := range wc.WebApps {
				target := m.ModuleName + ":" + wc.ComponentName + " -> " + app.ID().String()
				if !app.ID().IsGlobal() {
					project := app.ProjectName
					if project == "" {
						project = d.conn.Project
					}
					if project == "" {
						return fmt.Errorf("configure modules: web app %s of %s:%s has no project and no global project is set", app.ID(), m.ModuleName, wc.ComponentName)
					}
					target += "@" + project
				}
				targets = append(targets, target)
			}
		}
		for _, pc := range m.Components.ProjectComponents {
			for _, app := range pc.ProjectApps {
				targets = append(targets, m.ModuleName+":"+pc.ComponentName+" -> "+app.ProjectName)
			}
		}
		for _, s := range m.Components.Services {
			targets = append(targets, m.ModuleName+":"+s.ServiceName)
		}
	}
	return d.record(ctx, "module-configure", false, map[string]any{
		"source":  req.Source,
		"modules": len(req.Modules),
		"targets": targets,
	})
}

func (d *DryRun) ActivateWebServer(ctx context.Context, req ActivateRequest) error {
	if len(req.Scopes) == 0 {
		return fmt.Errorf("activate web server: no scopes")
	}
	for _, s := range req.Scopes {
		if s.IsGlobal() {
			return fmt.Errorf("activate web server: global web app %s is not bound to a project", s)
		}
	}
	return d.record(ctx, "activate-webserver", true, map[string]any{
		"scopes": webapp.Names(req.Scopes),
		"server": req.Server,
		"force":  req.Force,
	})
}

func (d *DryRun) ListServices(ctx context.Context) error {
	return d.record(ctx, "service-list", false, nil)
}

func (d *DryRun) StartService(ctx context.Context, req ServiceRequest) error {
	return d.services(ctx, "service-start", req)
}

func (d *DryRun) StopService(ctx context.Context, req ServiceRequest) error {
	return d.services(ctx, "service-stop", req)
}

// RestartService also starts services that are not running.
func (d *DryRun) RestartService(ctx context.Context, req ServiceRequest) error {
	return d.services(ctx, "service-restart", req)
}

func (d *DryRun) services(ctx context.Context, op string, req ServiceRequest) error {
	params := map[string]any{"autoStartOnly": len(req.Names) == 0}
	if len(req.Names) > 0 {
		params["services"] = req.Names
	}
	return d.record(ctx, op, false, params)
}

// ListSchedules lists the project's schedule entries, or the server's when
// no project is configured.
func (d *DryRun) ListSchedules(ctx context.Context) error {
	return d.record(ctx, "schedule-list", false, nil)
}

func (d *DryRun) StartSchedule(ctx context.Context, req ScheduleRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("start schedule: no schedule name")
	}
	return d.record(ctx, "schedule-start", false, map[string]any{"name": strings.TrimSpace(req.Name)})
}

func (d *DryRun) record(ctx context.Context, op string, needsProject bool, params map[string]any) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := d.conn.Validate(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if needsProject && d.conn.Project == "" {
		return fmt.Errorf("%s: no project configured", op)
	}

	step := Step{Operation: op, Target: d.conn, Params: params}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.steps = append(d.steps, step)
	slog.Debug("planned remote step", "operation", op, "address", d.conn.Address(), "project", d.conn.Project)

	if d.w == nil {
		return nil
	}
	return output.Write(d.w, d.format, step, func(w io.Writer) error {
		return writeStepText(w, step)
	})
}

func writeStepText(w io.Writer, s Step) error {
	target := s.Target.Address()
	if s.Target.Project != "" {
		target += " project " + s.Target.Project
	}
	fmt.Fprintf(w, "%s (%s)\n", s.Operation, target)

	keys := make([]string, 0, len(s.Params))
	for k := range s.Params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	for _, k := range keys {
		fmt.Fprintf(tw, "  %s\t%s\n", k, formatValue(s.Params[k]))
	}
	return tw.Flush()
}

func formatValue(v any) string {
	switch val := v.(type) {
	case []string:
		if len(val) == 0 {
			return "-"
		}
		return strings.Join(val, ", ")
	case string:
		if val == "" {
			return "-"
		}
		return val
	default:
		return fmt.Sprint(val)
	}
}

func identifierNames(ids []identifier.Identifier) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
