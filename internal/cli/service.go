package cli

import (
	"context"

	"github.com/e-Spirit/FSDevTools-sub005/internal/parsing"
	"github.com/e-Spirit/FSDevTools-sub005/internal/remote"
	"github.com/spf13/cobra"
)

var serviceNames string

var serviceCmd = &cobra.Command{
	Use:   "service",
	Short: "Start, stop and list module services",
}

var serviceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the services installed on the server",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient(cmd)
		if err != nil {
			return err
		}
		return client.ListServices(cmd.Context())
	},
}

type serviceCall func(remote.Client, context.Context, remote.ServiceRequest) error

func newServiceCmd(use, short string, call serviceCall) *cobra.Command {
	c := &cobra.Command{
		Use:   use,
		Short: short,
		Long: short + `. Without --service-names every service with auto start
enabled is processed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}
			return call(client, cmd.Context(), remote.ServiceRequest{Names: splitServiceNames(serviceNames)})
		},
	}
	c.Flags().StringVarP(&serviceNames, "service-names", "n", "", "Comma-separated service names")
	return c
}

func init() {
	serviceCmd.AddCommand(serviceListCmd)
	serviceCmd.AddCommand(newServiceCmd("start", "Start services that are not running", remote.Client.StartService))
	serviceCmd.AddCommand(newServiceCmd("stop", "Stop running services", remote.Client.StopService))
	serviceCmd.AddCommand(newServiceCmd("restart", "Restart services, starting those that are not running", remote.Client.RestartService))
	rootCmd.AddCommand(serviceCmd)
}

// splitServiceNames splits a comma-separated list, dropping blank names.
func splitServiceNames(raw string) []string {
	var names []string
	for _, n := range parsing.SplitList(raw) {
		if n != "" {
			names = append(names, n)
		}
	}
	return names
}
