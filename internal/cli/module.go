package cli

import (
	"fmt"
	"os"

	"github.com/e-Spirit/FSDevTools-sub005/internal/config"
	"github.com/e-Spirit/FSDevTools-sub005/internal/modconfig"
	"github.com/e-Spirit/FSDevTools-sub005/internal/remote"
	"github.com/e-Spirit/FSDevTools-sub005/internal/webapp"
	"github.com/spf13/cobra"
)

var (
	moduleWebAppScopes webapp.ListValue
	moduleVersion      string
)

var moduleCmd = &cobra.Command{
	Use:   "module",
	Short: "Install and configure modules",
}

var moduleInstallCmd = &cobra.Command{
	Use:   "install <fsm-file>",
	Short: "Install a module archive",
	Long: `Install a module archive on the server. With --project, the module's web
components are configured for each scope in --web-app-scopes. Scopes are
preview, staging, webedit and live; global web apps are given as global(<id>).`,
	Args: cobra.ExactArgs(1),
	RunE: runModuleInstall,
}

var moduleConfigureCmd = &cobra.Command{
	Use:   "configure <config-file>",
	Short: "Apply a module configuration file",
	Long: `Apply a YAML or JSON module configuration file. Entries carrying a
moduleVersion constraint are skipped unless --module-version satisfies it.`,
	Args: cobra.ExactArgs(1),
	RunE: runModuleConfigure,
}

func init() {
	moduleInstallCmd.Flags().Var(&moduleWebAppScopes, "web-app-scopes", "Comma-separated web app scopes, e.g. preview,global(fs5root)")
	moduleConfigureCmd.Flags().StringVar(&moduleVersion, "module-version", "", "Installed module version used to select entries")
	moduleCmd.AddCommand(moduleInstallCmd)
	moduleCmd.AddCommand(moduleConfigureCmd)
	rootCmd.AddCommand(moduleCmd)
}

func runModuleInstall(cmd *cobra.Command, args []string) error {
	file := args[0]
	if _, err := os.Stat(file); err != nil {
		return fmt.Errorf("reading module file: %w", err)
	}

	scopes, err := config.WebAppScopes()
	if err != nil {
		return err
	}

	client, err := newClient(cmd)
	if err != nil {
		return err
	}
	return client.InstallModule(cmd.Context(), remote.InstallRequest{
		File:         file,
		Project:      config.Project(),
		WebAppScopes: scopes,
	})
}

func runModuleConfigure(cmd *cobra.Command, args []string) error {
	modules, err := modconfig.ParseFile(args[0])
	if err != nil {
		return err
	}
	selected, err := modconfig.Select(modules, moduleVersion)
	if err != nil {
		return err
	}
	if len(selected) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No entries in %s apply to module version %s.\n", args[0], moduleVersion)
		return nil
	}

	client, err := newClient(cmd)
	if err != nil {
		return err
	}
	return client.ConfigureModules(cmd.Context(), remote.ConfigureRequest{
		Source:  args[0],
		Modules: selected,
	})
}
