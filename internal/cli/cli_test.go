package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/e-Spirit/FSDevTools-sub005/internal/remote"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// recordingClient captures requests instead of printing them.
type recordingClient struct {
	mu        sync.Mutex
	exports   []remote.ExportRequest
	imports   []remote.ImportRequest
	syncs     []remote.SyncRequest
	installs  []remote.InstallRequest
	configs   []remote.ConfigureRequest
	activates []remote.ActivateRequest
	services  map[string][]remote.ServiceRequest
	schedules []remote.ScheduleRequest
	listed    []string
}

func (r *recordingClient) Export(_ context.Context, req remote.ExportRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.exports = append(r.exports, req)
	return nil
}

func (r *recordingClient) Import(_ context.Context, req remote.ImportRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.imports = append(r.imports, req)
	return nil
}

func (r *recordingClient) ExternalSync(_ context.Context, req remote.SyncRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.syncs = append(r.syncs, req)
	return nil
}

func (r *recordingClient) InstallModule(_ context.Context, req remote.InstallRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.installs = append(r.installs, req)
	return nil
}

func (r *recordingClient) ConfigureModules(_ context.Context, req remote.ConfigureRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.configs = append(r.configs, req)
	return nil
}

func (r *recordingClient) ActivateWebServer(_ context.Context, req remote.ActivateRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.activates = append(r.activates, req)
	return nil
}

func (r *recordingClient) ListServices(context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listed = append(r.listed, "services")
	return nil
}

func (r *recordingClient) StartService(_ context.Context, req remote.ServiceRequest) error {
	r.service("start", req)
	return nil
}

func (r *recordingClient) StopService(_ context.Context, req remote.ServiceRequest) error {
	r.service("stop", req)
	return nil
}

func (r *recordingClient) RestartService(_ context.Context, req remote.ServiceRequest) error {
	r.service("restart", req)
	return nil
}

func (r *recordingClient) service(action string, req remote.ServiceRequest) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.services == nil {
		r.services = make(map[string][]remote.ServiceRequest)
	}
	r.services[action] = append(r.services[action], req)
}

func (r *recordingClient) ListSchedules(context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listed = append(r.listed, "schedules")
	return nil
}

func (r *recordingClient) StartSchedule(_ context.Context, req remote.ScheduleRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.schedules = append(r.schedules, req)
	return nil
}

// resetFlags restores every flag in the tree to its default so commands can
// be executed repeatedly within one test binary.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if r, ok := f.Value.(interface{ Reset() }); ok {
			r.Reset()
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// isolate points HOME at a fresh directory so config files written by
// commands stay inside the test.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

// run executes the root command with args and returns stdout. The default
// dry-run client prints to stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
	resetFlags(rootCmd)

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return stdout.String(), err
}

// runRecorded executes the root command against a recording client.
func runRecorded(t *testing.T, args ...string) (*recordingClient, error) {
	t.Helper()
	rec := &recordingClient{}
	orig := newClient
	newClient = func(*cobra.Command) (remote.Client, error) { return rec, nil }
	t.Cleanup(func() { newClient = orig })

	_, err := run(t, args...)
	return rec, err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}
