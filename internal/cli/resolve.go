package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/e-Spirit/FSDevTools-sub005/internal/config"
	"github.com/e-Spirit/FSDevTools-sub005/internal/identifier"
	"github.com/e-Spirit/FSDevTools-sub005/internal/output"
	"github.com/e-Spirit/FSDevTools-sub005/internal/permission"
	"github.com/e-Spirit/FSDevTools-sub005/internal/webapp"
	"github.com/spf13/cobra"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve raw identifiers and print their canonical form",
	Long: `Resolve raw option values the way other commands do and print what they
resolve to. Useful for checking scripts and configuration before running them.`,
}

var resolveRootCmd = &cobra.Command{
	Use:   "root <identifier>...",
	Short: "Resolve store root identifiers such as root:pagestore",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		nodes, err := identifier.ParseRootNodeIdentifiers(args)
		if err != nil {
			return fmt.Errorf("resolving root node identifiers: %w", err)
		}
		entries := make([]resolveEntry, len(nodes))
		for i, n := range nodes {
			entries[i] = resolveEntry{Input: inputAt(args, i, len(nodes)), Kind: string(n.Family()), Canonical: n.String(), Detail: string(n.UidType())}
		}
		return printResolved(cmd, entries)
	},
}

var resolveExportCmd = &cobra.Command{
	Use:   "export <identifier>...",
	Short: "Resolve export identifiers",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ids, err := resolveExportIdentifiers(args)
		if err != nil {
			return err
		}
		entries := make([]resolveEntry, len(ids))
		for i, id := range ids {
			entries[i] = resolveEntry{Input: inputAt(args, i, len(ids)), Kind: string(id.Family()), Canonical: id.String()}
		}
		return printResolved(cmd, entries)
	},
}

var resolveWebAppCmd = &cobra.Command{
	Use:   "webapp <scopes>",
	Short: "Resolve a comma-separated web app scope list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ids, err := webapp.ParseMultiple(args[0])
		if err != nil {
			return fmt.Errorf("resolving web app identifiers: %w", err)
		}
		entries := make([]resolveEntry, len(ids))
		for i, id := range ids {
			entries[i] = resolveEntry{Input: args[0], Kind: "webapp", Canonical: id.String(), Detail: string(id.Scope())}
		}
		return printResolved(cmd, entries)
	},
}

var resolvePermissionCmd = &cobra.Command{
	Use:   "permission <mode>",
	Short: "Resolve a permission mode",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := permission.Resolve(args[0])
		if err != nil {
			return err
		}
		return printResolved(cmd, []resolveEntry{{
			Input:     args[0],
			Kind:      "permission",
			Canonical: m.String(),
			Detail:    string(m.Remote()),
		}})
	},
}

func init() {
	resolveCmd.AddCommand(resolveRootCmd)
	resolveCmd.AddCommand(resolveExportCmd)
	resolveCmd.AddCommand(resolveWebAppCmd)
	resolveCmd.AddCommand(resolvePermissionCmd)
	rootCmd.AddCommand(resolveCmd)
}

// inputAt pairs results with their raw input when each input produced
// exactly one result.
func inputAt(args []string, i, results int) string {
	if len(args) != results {
		return ""
	}
	return args[i]
}

// resolveEntry is one resolved value for display.
type resolveEntry struct {
	Input     string `json:"input" yaml:"input"`
	Kind      string `json:"kind" yaml:"kind"`
	Canonical string `json:"canonical" yaml:"canonical"`
	Detail    string `json:"detail,omitempty" yaml:"detail,omitempty"`
}

func printResolved(cmd *cobra.Command, entries []resolveEntry) error {
	format, err := config.OutputFormat()
	if err != nil {
		return err
	}
	return output.Write(cmd.OutOrStdout(), format, entries, func(w io.Writer) error {
		tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
		fmt.Fprintln(tw, "INPUT\tKIND\tCANONICAL\tDETAIL")
		for _, e := range entries {
			detail := e.Detail
			if detail == "" {
				detail = "-"
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.Input, e.Kind, e.Canonical, detail)
		}
		return tw.Flush()
	})
}
