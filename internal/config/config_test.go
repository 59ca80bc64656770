package config

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/e-Spirit/FSDevTools-sub005/internal/output"
	"github.com/e-Spirit/FSDevTools-sub005/internal/parsing"
	"github.com/e-Spirit/FSDevTools-sub005/internal/permission"
	"github.com/e-Spirit/FSDevTools-sub005/internal/webapp"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func setup(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	viper.Reset()
	t.Cleanup(viper.Reset)
	Load()
	return home
}

func TestLoad_Defaults(t *testing.T) {
	setup(t)

	if Host() != "localhost" || Port() != 8000 || Project() != "" {
		t.Errorf("defaults = %s:%d %q", Host(), Port(), Project())
	}
	if m, err := PermissionMode(); err != nil || m != permission.None {
		t.Errorf("PermissionMode = %s, %v", m, err)
	}
	if f, err := OutputFormat(); err != nil || f != output.Text {
		t.Errorf("OutputFormat = %s, %v", f, err)
	}
	if ids, err := WebAppScopes(); err != nil || len(ids) != 0 {
		t.Errorf("WebAppScopes = %v, %v", ids, err)
	}
}

func TestSet_PersistsCanonicalValues(t *testing.T) {
	setup(t)

	sets := [][2]string{
		{KeyPermissionMode, "store-element"},
		{KeyWebAppScopes, "PREVIEW, global(fs5root)"},
		{KeyPort, "9000"},
		{KeyProject, " mithras "},
	}
	for _, kv := range sets {
		if err := Set(kv[0], kv[1]); err != nil {
			t.Fatalf("Set(%s, %s) error: %v", kv[0], kv[1], err)
		}
	}

	data, err := os.ReadFile(FilePath())
	if err != nil {
		t.Fatalf("reading config file: %v", err)
	}
	for _, want := range []string{"permission_mode: STORE_ELEMENT", "web_app_scopes:", "preview,global(fs5root)", "port: 9000", "project: mithras"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("config file missing %q:\n%s", want, data)
		}
	}
	if strings.Contains(string(data), "host") {
		t.Errorf("defaults were persisted:\n%s", data)
	}

	// Reload from disk.
	viper.Reset()
	Load()
	if m, _ := PermissionMode(); m != permission.StoreElement {
		t.Errorf("PermissionMode after reload = %s", m)
	}
	ids, err := WebAppScopes()
	if err != nil || len(ids) != 2 || ids[1] != webapp.Identifier(webapp.FS5Root) {
		t.Errorf("WebAppScopes after reload = %v, %v", ids, err)
	}
	if Port() != 9000 || Project() != "mithras" {
		t.Errorf("connection after reload = %d %q", Port(), Project())
	}
}

func TestSet_Rejects(t *testing.T) {
	setup(t)

	tests := []struct {
		key, value string
		want       error
	}{
		{KeyPermissionMode, "4211_invalid-value", parsing.ErrUnknownValue},
		{KeyWebAppScopes, "global", parsing.ErrMalformed},
		{KeyWebAppScopes, "production", parsing.ErrUnknownValue},
		{KeyPort, "http", nil},
		{KeyPort, "70000", nil},
		{KeyOutput, "xml", nil},
		{KeyHost, " ", nil},
		{"mirror_url", "x", nil},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			err := Set(tt.key, tt.value)
			if err == nil {
				t.Fatal("Set succeeded")
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
	if _, err := os.Stat(FilePath()); !os.IsNotExist(err) {
		t.Errorf("rejected values created a config file: %v", err)
	}
}

func TestEnvironment(t *testing.T) {
	t.Setenv("FSDEVTOOLS_PROJECT", "env-project")
	t.Setenv("FSDEVTOOLS_PERMISSION_MODE", "bogus")
	setup(t)

	if Project() != "env-project" {
		t.Errorf("Project = %q", Project())
	}
	if _, err := PermissionMode(); !errors.Is(err, parsing.ErrUnknownValue) {
		t.Errorf("PermissionMode error = %v", err)
	}
}

func TestBindFlags(t *testing.T) {
	setup(t)

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("host", "", "")
	fs.Int("port", 0, "")
	if err := fs.Parse([]string{"--host", "cms.example.com"}); err != nil {
		t.Fatal(err)
	}
	if err := BindFlags(fs); err != nil {
		t.Fatalf("BindFlags error: %v", err)
	}
	if Host() != "cms.example.com" {
		t.Errorf("Host = %q", Host())
	}
	if Port() != 8000 {
		t.Errorf("unset flag overrode port: %d", Port())
	}
}

func TestScopesString(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{nil, ""},
		{"preview,live", "preview,live"},
		{[]any{"preview", "live"}, "preview,live"},
		{[]string{"staging"}, "staging"},
	}
	for _, tt := range tests {
		if got := scopesString(tt.in); got != tt.want {
			t.Errorf("scopesString(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
