package cli

import (
	"github.com/e-Spirit/FSDevTools-sub005/internal/remote"
	"github.com/spf13/cobra"
)

var scheduleName string

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "List and run schedule entries",
	Long: `List and run schedule entries. With --project the entries of that project
are used, otherwise the server's own entries.`,
}

var scheduleListCmd = &cobra.Command{
	Use:   "list",
	Short: "List schedule entries",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient(cmd)
		if err != nil {
			return err
		}
		return client.ListSchedules(cmd.Context())
	},
}

var scheduleStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Run a schedule entry",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient(cmd)
		if err != nil {
			return err
		}
		return client.StartSchedule(cmd.Context(), remote.ScheduleRequest{Name: scheduleName})
	},
}

func init() {
	scheduleStartCmd.Flags().StringVarP(&scheduleName, "name", "n", "", "Name of the schedule entry")
	_ = scheduleStartCmd.MarkFlagRequired("name")
	scheduleCmd.AddCommand(scheduleListCmd)
	scheduleCmd.AddCommand(scheduleStartCmd)
	rootCmd.AddCommand(scheduleCmd)
}
