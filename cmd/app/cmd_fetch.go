package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/akyairhashvil/contribcheck/internal/config"
	"github.com/akyairhashvil/contribcheck/internal/fetch"
	"github.com/akyairhashvil/contribcheck/internal/models"
	"github.com/akyairhashvil/contribcheck/internal/report"
	"github.com/akyairhashvil/contribcheck/internal/util"
	"github.com/spf13/cobra"
)

// now is replaced in tests.
var now = time.Now

func newFetchCmd(opts *rootOptions) *cobra.Command {
	var pdfPath string
	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch the calendar once and print it",
		Long: `Fetch the contribution calendar once, print a plain grid with a summary and
exit. The outcome is recorded in the fetch history.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFetch(cmd, opts, pdfPath)
		},
	}
	cmd.Flags().StringVar(&pdfPath, "pdf", "", "Also write a PDF report to this path")
	return cmd
}

func runFetch(cmd *cobra.Command, opts *rootOptions, pdfPath string) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}
	if err := ensureToken(&cfg); err != nil {
		return err
	}
	if err := checkConfig(cfg, false); err != nil {
		return err
	}
	svc, err := openServices(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer svc.Close()

	coord := fetch.NewCoordinator(svc.client, cfg.Username,
		fetch.WithRecorder(svc.db),
		fetch.WithLogger(svc.logger),
		fetch.WithTokenFingerprint(util.TokenFingerprint(cfg.Token)))
	coord.Trigger()

	ticker := time.NewTicker(config.PollInterval)
	defer ticker.Stop()
	for !coord.Poll() {
		select {
		case <-cmd.Context().Done():
			return cmd.Context().Err()
		case <-ticker.C:
		}
	}

	st := coord.State()
	if st.Status != models.FetchSucceeded {
		return errors.New(st.Message)
	}
	today := now().Format(models.DateLayout)
	writeCalendar(cmd.OutOrStdout(), cfg.Username, st.Calendar, today)

	if pdfPath != "" {
		ropts := report.Options{Login: cfg.Username, Today: today, GeneratedAt: now()}
		if err := report.WritePDF(st.Calendar, ropts, pdfPath); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", pdfPath)
	}
	return nil
}
