package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/e-Spirit/FSDevTools-sub005/internal/branding"
	"github.com/e-Spirit/FSDevTools-sub005/internal/config"
	"github.com/e-Spirit/FSDevTools-sub005/internal/output"
	"github.com/e-Spirit/FSDevTools-sub005/internal/remote"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	flagHost    string
	flagPort    int
	flagProject string
	flagOutput  = output.Text
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` drives a FirstSpirit server from the command line: export and
import project content, run external syncs, install and configure modules,
activate web servers, control services and run schedule entries. Store roots, web app scopes and permission modes are given
as plain strings such as "root:pagestore", "global(fs5root)" or "store-element".`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagHost, "host", "", "Server host (default from config, then "+branding.DefaultHost()+")")
	pf.IntVar(&flagPort, "port", 0, fmt.Sprintf("Server port (default from config, then %d)", branding.DefaultPort()))
	pf.StringVarP(&flagProject, "project", "p", "", "Project name")
	pf.VarP(&flagOutput, "output", "o", "Output format: "+formatNames())
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
}

func formatNames() string {
	names := make([]string, 0, len(output.Formats()))
	for _, f := range output.Formats() {
		names = append(names, f.String())
	}
	return strings.Join(names, ", ")
}

// setup loads configuration, applies flag overrides and installs the
// default logger before any command runs.
func setup(cmd *cobra.Command, args []string) error {
	level := slog.LevelWarn
	if flagVerbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))

	config.Load()
	if err := config.BindFlags(cmd.Flags()); err != nil {
		return err
	}
	slog.Debug("configuration loaded", "file", config.FilePath(), "command", cmd.CommandPath())
	return nil
}

// newClient builds the client commands send their requests to. Tests
// replace it with a recording client.
var newClient = func(cmd *cobra.Command) (remote.Client, error) {
	format, err := config.OutputFormat()
	if err != nil {
		return nil, err
	}
	conn := remote.Connection{
		Host:    config.Host(),
		Port:    config.Port(),
		Project: config.Project(),
	}
	return remote.NewDryRun(conn, cmd.OutOrStdout(), format), nil
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", err)
	}
	return err
}
