package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/akyairhashvil/contribcheck/internal/tui"
	"github.com/spf13/cobra"
)

// rootOptions holds the flags shared by every command.
type rootOptions struct {
	configPath string
	envFile    string
	user       string
	endpoint   string
	theme      string
	dbPath     string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "contribcheck",
		Short: "Show a GitHub user's contribution calendar in the terminal",
		Long: `contribcheck fetches a user's contribution calendar from the GitHub GraphQL
API and renders it as a grid, highlighting whether anything was contributed today.

Credentials are read from the config file, then a .env file in the working
directory, then GITHUB_TOKEN / GITHUB_USER, then flags.`,
		Version:       tui.AppVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, opts)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "Config file (default: $XDG_CONFIG_HOME/contribcheck/config.yaml)")
	flags.StringVar(&opts.envFile, "env-file", "", "Dotenv file with GITHUB_TOKEN / GITHUB_USER (default: ./.env)")
	flags.StringVarP(&opts.user, "user", "u", "", "GitHub username (or set GITHUB_USER env)")
	flags.StringVar(&opts.endpoint, "endpoint", "", "GraphQL endpoint (or set CONTRIBCHECK_ENDPOINT env)")
	flags.StringVar(&opts.theme, "theme", "", "UI theme: default, dracula or mono")
	flags.StringVar(&opts.dbPath, "db", "", "History database path")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(newFetchCmd(opts))
	cmd.AddCommand(newHistoryCmd(opts))
	return cmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Alas, there's been an error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
