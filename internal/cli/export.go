package cli

import (
	"fmt"

	"github.com/e-Spirit/FSDevTools-sub005/internal/identifier"
	"github.com/e-Spirit/FSDevTools-sub005/internal/parsing"
	"github.com/e-Spirit/FSDevTools-sub005/internal/remote"
	"github.com/spf13/cobra"
)

var exportDir string

var exportCmd = &cobra.Command{
	Use:   "export [identifiers...]",
	Short: "Export store elements and project properties",
	Long: `Export store elements to a directory. Identifiers take the forms

  root:<store>                   store root, e.g. root:pagestore
  <prefix>:<uid>                 element by uid, e.g. page:homepage
  entities:<content2 uid>        entities of a data source
  path:/<store path>             element by store path
  schema:<uid>[option=value]     schema, e.g. schema:products[exportGidMapping=true]
  projectproperty:<type>         project property, or projectproperty:ALL

Identifiers may also be given comma-separated in one argument. Without
identifiers every store root and all project properties are exported.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportDir, "dir", ".", "Target directory")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	ids, err := resolveExportIdentifiers(args)
	if err != nil {
		return err
	}

	client, err := newClient(cmd)
	if err != nil {
		return err
	}
	return client.Export(cmd.Context(), remote.ExportRequest{
		Dir:         exportDir,
		Identifiers: ids,
	})
}

func resolveExportIdentifiers(args []string) ([]identifier.Identifier, error) {
	raw := parsing.SplitAll(args)
	if len(raw) == 0 {
		return identifier.DefaultExportIdentifiers(), nil
	}
	ids, err := identifier.ParseExportIdentifiers(raw)
	if err != nil {
		return nil, fmt.Errorf("resolving export identifiers: %w", err)
	}
	return ids, nil
}
