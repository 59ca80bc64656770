package cli

import (
	"fmt"

	"github.com/e-Spirit/FSDevTools-sub005/internal/remote"
	"github.com/e-Spirit/FSDevTools-sub005/internal/webapp"
	"github.com/spf13/cobra"
)

var (
	activateScopes webapp.ListValue
	activateServer string
	activateForce  bool
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Project level operations",
}

var activateWebServerCmd = &cobra.Command{
	Use:   "activate-webserver",
	Short: "Assign a web server to project web apps",
	Long: `Assign --server to the project web apps named by --scopes (preview,
staging, webedit, live). With --force the assignment replaces an active server.`,
	Args: cobra.NoArgs,
	RunE: runActivateWebServer,
}

func init() {
	activateWebServerCmd.Flags().Var(&activateScopes, "scopes", "Comma-separated web app scopes")
	activateWebServerCmd.Flags().StringVar(&activateServer, "server", "", "Web server name")
	activateWebServerCmd.Flags().BoolVar(&activateForce, "force", false, "Replace an active web server")
	_ = activateWebServerCmd.MarkFlagRequired("scopes")
	_ = activateWebServerCmd.MarkFlagRequired("server")
	projectCmd.AddCommand(activateWebServerCmd)
	rootCmd.AddCommand(projectCmd)
}

func runActivateWebServer(cmd *cobra.Command, args []string) error {
	scopes := activateScopes.Identifiers()
	for _, s := range scopes {
		if s.IsGlobal() {
			return fmt.Errorf("activating web server: %s is a global web app, only project scopes are allowed", s)
		}
	}

	client, err := newClient(cmd)
	if err != nil {
		return err
	}
	return client.ActivateWebServer(cmd.Context(), remote.ActivateRequest{
		Scopes: scopes,
		Server: activateServer,
		Force:  activateForce,
	})
}
