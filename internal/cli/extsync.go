package cli

import (
	"github.com/e-Spirit/FSDevTools-sub005/internal/config"
	"github.com/e-Spirit/FSDevTools-sub005/internal/identifier"
	"github.com/e-Spirit/FSDevTools-sub005/internal/permission"
	"github.com/e-Spirit/FSDevTools-sub005/internal/remote"
	"github.com/spf13/cobra"
)

var (
	extsyncDir  string
	extsyncMode = permission.Default
)

var extsyncCmd = &cobra.Command{
	Use:   "extsync",
	Short: "Run an external sync",
	Long: `Synchronize project content with a directory. The --permission-mode flag
accepts NONE, ALL, STORE_ELEMENT and WORKFLOW as well as the server names
(STORE_ELEMENT_PERMISSIONS), in any case and with '-' or '_' separators.`,
}

var extsyncExportCmd = &cobra.Command{
	Use:   "export [identifiers...]",
	Short: "Export project content for external sync",
	RunE: func(cmd *cobra.Command, args []string) error {
		ids, err := resolveExportIdentifiers(args)
		if err != nil {
			return err
		}
		return runExtsync(cmd, remote.DirectionExport, ids)
	},
}

var extsyncImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Import externally synced content",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExtsync(cmd, remote.DirectionImport, nil)
	},
}

func init() {
	pf := extsyncCmd.PersistentFlags()
	pf.StringVar(&extsyncDir, "dir", ".", "Sync directory")
	pf.Var(&extsyncMode, "permission-mode", "Permissions to transfer: NONE, ALL, STORE_ELEMENT or WORKFLOW")
	extsyncCmd.AddCommand(extsyncExportCmd)
	extsyncCmd.AddCommand(extsyncImportCmd)
	rootCmd.AddCommand(extsyncCmd)
}

func runExtsync(cmd *cobra.Command, dir remote.Direction, ids []identifier.Identifier) error {
	mode, err := config.PermissionMode()
	if err != nil {
		return err
	}

	client, err := newClient(cmd)
	if err != nil {
		return err
	}
	return client.ExternalSync(cmd.Context(), remote.SyncRequest{
		Direction:      dir,
		Dir:            extsyncDir,
		Identifiers:    ids,
		PermissionMode: mode,
	})
}
