package modconfig

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/e-Spirit/FSDevTools-sub005/internal/parsing"
	"github.com/e-Spirit/FSDevTools-sub005/internal/webapp"
)

const testdataDir = "testdata"

func testPath(name string) string {
	return filepath.Join(testdataDir, name)
}

func TestParseFile_YAML(t *testing.T) {
	modules, err := ParseFile(testPath("valid.yaml"))
	if err != nil {
		t.Fatalf("ParseFile error: %v", err)
	}
	if len(modules) != 2 {
		t.Fatalf("got %d modules, want 2", len(modules))
	}

	m := modules[0]
	if m.ModuleName != "abtesting" {
		t.Errorf("ModuleName = %q", m.ModuleName)
	}
	if m.Constraint() == nil {
		t.Fatal("constraint not parsed")
	}

	apps := m.Components.WebComponents[0].WebApps
	if len(apps) != 3 {
		t.Fatalf("got %d web apps, want 3", len(apps))
	}
	wantIDs := []webapp.Identifier{webapp.Preview, webapp.Staging, webapp.FS5Root}
	for i, want := range wantIDs {
		if apps[i].ID() != want {
			t.Errorf("webApps[%d].ID() = %v, want %v", i, apps[i].ID(), want)
		}
	}
	if !apps[0].Deploys() || apps[1].Deploys() || !apps[2].Deploys() {
		t.Errorf("Deploys = %v %v %v, want true false true", apps[0].Deploys(), apps[1].Deploys(), apps[2].Deploys())
	}
	if len(apps[0].Files) != 1 || apps[0].Files[0] != "web.xml" {
		t.Errorf("Files = %v", apps[0].Files)
	}

	pc := m.Components.ProjectComponents
	if len(pc) != 1 || pc[0].ProjectApps[0].ProjectName != "mithras" {
		t.Errorf("ProjectComponents = %+v", pc)
	}
	svc := m.Components.Services
	if len(svc) != 1 || !svc[0].AutoStart || !svc[0].Restart {
		t.Errorf("Services = %+v", svc)
	}

	if modules[1].Constraint() != nil {
		t.Error("second module has unexpected constraint")
	}
}

func TestParseFile_JSON(t *testing.T) {
	modules, err := ParseFile(testPath("valid.json"))
	if err != nil {
		t.Fatalf("ParseFile error: %v", err)
	}
	apps := modules[0].Components.WebComponents[0].WebApps
	if g, ok := apps[0].ID().(webapp.Global); !ok || g.ID() != "legacy-app" {
		t.Errorf("webApps[0].ID() = %v", apps[0].ID())
	}
	if apps[0].ProjectName != "" {
		t.Errorf("global web app kept project name %q", apps[0].ProjectName)
	}
	if apps[1].ID() != webapp.Identifier(webapp.Live) {
		t.Errorf("webApps[1].ID() = %v, want live", apps[1].ID())
	}
}

func TestParseFile_SchemaViolations(t *testing.T) {
	for _, file := range []string{
		"invalid-missing-name.yaml",
		"invalid-unknown-field.yaml",
		"invalid-empty-webapps.yaml",
		"invalid-bad-deploy.yaml",
	} {
		t.Run(file, func(t *testing.T) {
			_, err := ParseFile(testPath(file))
			var ie *InvalidError
			if !errors.As(err, &ie) {
				t.Fatalf("error = %v, want *InvalidError", err)
			}
			if len(ie.Issues) == 0 {
				t.Error("no issues reported")
			}
			if !strings.Contains(err.Error(), file) {
				t.Errorf("error %q does not name the source", err)
			}
		})
	}
}

func TestParseFile_WebAppErrors(t *testing.T) {
	tests := []struct {
		file string
		want error
	}{
		{"bad-scope.yaml", parsing.ErrUnknownValue},
		{"bad-global.yaml", parsing.ErrMalformed},
	}
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			_, err := ParseFile(testPath(tt.file))
			if !errors.Is(err, tt.want) {
				t.Fatalf("error = %v, want %v", err, tt.want)
			}
			if !strings.Contains(err.Error(), "SearchWeb") {
				t.Errorf("error %q does not name the component", err)
			}
		})
	}
}

func TestParseFile_BadVersion(t *testing.T) {
	_, err := ParseFile(testPath("bad-version.yaml"))
	if err == nil || !strings.Contains(err.Error(), "moduleVersion") {
		t.Fatalf("error = %v, want moduleVersion error", err)
	}
}

func TestParseFile_Errors(t *testing.T) {
	if _, err := ParseFile(testPath("missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
	if _, err := ParseFile(testPath("not-yaml.yaml")); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestParse_EmptyDocument(t *testing.T) {
	_, err := Parse([]byte("[]"), "inline")
	var ie *InvalidError
	if !errors.As(err, &ie) {
		t.Fatalf("error = %v, want *InvalidError", err)
	}
}
