package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/akyairhashvil/contribcheck/internal/config"
	"github.com/akyairhashvil/contribcheck/internal/database"
	"github.com/akyairhashvil/contribcheck/internal/models"
	"github.com/spf13/cobra"
)

func newHistoryCmd(opts *rootOptions) *cobra.Command {
	var (
		limit, keep int
		login       string
		failed      bool
		oldest      bool
	)
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent fetch outcomes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			svc, err := openServices(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer svc.Close()

			out := cmd.OutOrStdout()
			if keep > 0 {
				removed, err := svc.db.PruneHistory(cmd.Context(), keep)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Pruned %d records\n", removed)
			}
			q := database.NewHistoryQuery().Limit(limit)
			if login != "" {
				q.WhereLogin(login)
			}
			if failed {
				q.WhereStatus(models.FetchFailed)
			}
			if oldest {
				q.OrderBy("finished_at ASC")
			}
			records, err := svc.db.QueryFetches(cmd.Context(), q)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				fmt.Fprintln(out, "No fetches recorded")
				return nil
			}
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "FINISHED\tLOGIN\tSTATUS\tDURATION\tTOTAL\tMESSAGE")
			for _, rec := range records {
				total := ""
				if rec.Status == models.FetchSucceeded {
					total = fmt.Sprintf("%d", rec.TotalContributions)
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
					rec.FinishedAt.Local().Format("2006-01-02 15:04:05"),
					rec.Login, rec.Status, rec.Duration().Round(time.Millisecond), total, rec.Message)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", config.HistoryLimit, "Number of records to show")
	cmd.Flags().IntVar(&keep, "prune", 0, "Delete all but the newest N records first")
	cmd.Flags().StringVar(&login, "login", "", "Only show fetches for this login")
	cmd.Flags().BoolVar(&failed, "failed", false, "Only show failed fetches")
	cmd.Flags().BoolVar(&oldest, "oldest", false, "List oldest fetches first")
	return cmd
}
