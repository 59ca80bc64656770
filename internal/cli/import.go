package cli

import (
	"github.com/e-Spirit/FSDevTools-sub005/internal/config"
	"github.com/e-Spirit/FSDevTools-sub005/internal/permission"
	"github.com/e-Spirit/FSDevTools-sub005/internal/remote"
	"github.com/spf13/cobra"
)

var (
	importDir  string
	importMode = permission.Default
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import a previous export into the project",
	Args:  cobra.NoArgs,
	RunE:  runImport,
}

func init() {
	importCmd.Flags().StringVar(&importDir, "dir", ".", "Source directory")
	importCmd.Flags().Var(&importMode, "permission-mode", "Permissions to import: NONE, ALL, STORE_ELEMENT or WORKFLOW")
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	mode, err := config.PermissionMode()
	if err != nil {
		return err
	}

	client, err := newClient(cmd)
	if err != nil {
		return err
	}
	return client.Import(cmd.Context(), remote.ImportRequest{
		Dir:            importDir,
		PermissionMode: mode,
	})
}
