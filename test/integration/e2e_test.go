//go:build integration

package integration_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/e-Spirit/FSDevTools-sub005/internal/config"
	"github.com/e-Spirit/FSDevTools-sub005/internal/identifier"
	"github.com/e-Spirit/FSDevTools-sub005/internal/modconfig"
	"github.com/e-Spirit/FSDevTools-sub005/internal/output"
	"github.com/e-Spirit/FSDevTools-sub005/internal/parsing"
	"github.com/e-Spirit/FSDevTools-sub005/internal/remote"
	"github.com/spf13/viper"
)

func connection() remote.Connection {
	return remote.Connection{Host: config.Host(), Port: config.Port(), Project: config.Project()}
}

// TestFullFlowConfigureAndSync tests the complete flow:
// persist settings -> reload -> resolve identifiers -> plan export, sync and
// module configuration against a dry-run client.
func TestFullFlowConfigureAndSync(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	// Step 1: Persist connection and defaults.
	config.Load()
	settings := [][2]string{
		{config.KeyHost, "cms.example.com"},
		{config.KeyPort, "8080"},
		{config.KeyProject, "mithras"},
		{config.KeyPermissionMode, "store-element"},
		{config.KeyWebAppScopes, "preview, live"},
	}
	for _, kv := range settings {
		if err := config.Set(kv[0], kv[1]); err != nil {
			t.Fatalf("config.Set(%s): %v", kv[0], err)
		}
	}
	assertFileContains(t, filepath.Join(env.HomeDir, ".fsdevtools", "config.yaml"), "permission_mode: STORE_ELEMENT")

	// Step 2: Reload from disk as a fresh process would.
	viper.Reset()
	config.Load()

	mode, err := config.PermissionMode()
	if err != nil {
		t.Fatalf("PermissionMode: %v", err)
	}
	scopes, err := config.WebAppScopes()
	if err != nil {
		t.Fatalf("WebAppScopes: %v", err)
	}

	var out bytes.Buffer
	client := remote.NewDryRun(connection(), &out, output.JSON)

	// Step 3: Export resolved identifiers.
	ids, err := identifier.ParseExportIdentifiers([]string{"root:pagestore", "page:homepage", "projectproperty:ALL"})
	if err != nil {
		t.Fatalf("ParseExportIdentifiers: %v", err)
	}
	if err := client.Export(ctx, remote.ExportRequest{Dir: env.ProjectDir, Identifiers: ids}); err != nil {
		t.Fatalf("Export: %v", err)
	}

	// Step 4: External sync with the configured permission mode.
	if err := client.ExternalSync(ctx, remote.SyncRequest{
		Direction:      remote.DirectionExport,
		Dir:            env.ProjectDir,
		Identifiers:    ids,
		PermissionMode: mode,
	}); err != nil {
		t.Fatalf("ExternalSync: %v", err)
	}

	// Step 5: Install and configure a module.
	fsm := filepath.Join(env.ProjectDir, "abtesting.fsm")
	writeFile(t, fsm, "archive")
	if err := client.InstallModule(ctx, remote.InstallRequest{File: fsm, Project: config.Project(), WebAppScopes: scopes}); err != nil {
		t.Fatalf("InstallModule: %v", err)
	}

	cfgFile := filepath.Join(env.ProjectDir, "modules.json")
	writeFile(t, cfgFile, `[{"moduleName": "abtesting", "components": {"webComponents": [
		{"componentName": "AbTestingWebApp", "webApps": [{"webAppName": "global(fs5root)"}]}]}}]`)
	modules, err := modconfig.ParseFile(cfgFile)
	if err != nil {
		t.Fatalf("modconfig.ParseFile: %v", err)
	}
	if err := client.ConfigureModules(ctx, remote.ConfigureRequest{Source: cfgFile, Modules: modules}); err != nil {
		t.Fatalf("ConfigureModules: %v", err)
	}

	// Step 6: Verify every step was printed as a JSON document.
	steps := client.Steps()
	if len(steps) != 4 {
		t.Fatalf("got %d steps, want 4", len(steps))
	}
	assertContains(t, out.String(), `"abtesting:AbTestingWebApp `)
	dec := json.NewDecoder(&out)
	for i := range steps {
		var s remote.Step
		if err := dec.Decode(&s); err != nil {
			t.Fatalf("decoding step %d: %v", i, err)
		}
		if s.Operation != steps[i].Operation {
			t.Errorf("step %d operation = %q, want %q", i, s.Operation, steps[i].Operation)
		}
		if s.Target.Address() != "cms.example.com:8080" || s.Target.Project != "mithras" {
			t.Errorf("step %d target = %+v", i, s.Target)
		}
	}
	if steps[1].Params["permissionMode"] != "STORE_ELEMENT_PERMISSIONS" {
		t.Errorf("sync permission mode = %v", steps[1].Params["permissionMode"])
	}
}

// TestFullFlowRejectsBadInput verifies that invalid identifiers never reach
// the client.
func TestFullFlowRejectsBadInput(t *testing.T) {
	env := setupTestEnv(t)
	config.Load()

	client := remote.NewDryRun(remote.Connection{Host: "localhost", Port: 8000, Project: "mithras"}, nil, output.Text)

	if _, err := identifier.ParseExportIdentifiers([]string{"root:pagestore", "root:nostore"}); !errors.Is(err, parsing.ErrUnknownValue) {
		t.Errorf("ParseExportIdentifiers error = %v, want ErrUnknownValue", err)
	}

	cfgFile := filepath.Join(env.ProjectDir, "modules.yaml")
	writeFile(t, cfgFile, "- moduleName: broken\n  components:\n    webComponents:\n      - componentName: Web\n        webApps:\n          - webAppName: global\n")
	if _, err := modconfig.ParseFile(cfgFile); !errors.Is(err, parsing.ErrMalformed) {
		t.Errorf("modconfig.ParseFile error = %v, want ErrMalformed", err)
	}

	if err := config.Set(config.KeyPermissionMode, "4211_invalid-value"); err == nil {
		t.Error("invalid permission mode persisted")
	}

	if len(client.Steps()) != 0 {
		t.Errorf("client received steps: %+v", client.Steps())
	}
}
