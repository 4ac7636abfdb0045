package cmd

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/jsvec/faceoff/app"
	"github.com/jsvec/faceoff/core/lineup/history"
	"github.com/jsvec/faceoff/infra/logger"
)

var (
	flagHistLimit    int
	flagHistStrategy string
	flagHistPlayer   string
	flagHistSince    string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Past optimisation runs",
}

var historyLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List recorded runs",
	RunE:  runHistoryLs,
}

func init() {
	historyLsCmd.Flags().IntVarP(&flagHistLimit, "limit", "n", 0, "show only the most recent N runs (default history.keep)")
	historyLsCmd.Flags().StringVarP(&flagHistStrategy, "strategy", "s", "", "filter by strategy")
	historyLsCmd.Flags().StringVar(&flagHistPlayer, "player", "", "filter runs containing this player")
	historyLsCmd.Flags().StringVar(&flagHistSince, "since", "", "filter runs after YYYY-MM-DD")
	historyCmd.AddCommand(historyLsCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryLs(cmd *cobra.Command, args []string) error {
	ctx, stop := signalContext()
	defer stop()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	svc, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := svc.Close(); err != nil {
			logger.New("main").Errorf("service close: %v", err)
		}
	}()

	q := history.Query{
		Strategy: flagHistStrategy,
		Player:   flagHistPlayer,
		Limit:    flagHistLimit,
	}
	if q.Limit == 0 {
		q.Limit = cfg.History.Keep
	}
	if flagHistSince != "" {
		start, err := time.Parse("2006-01-02", flagHistSince)
		if err != nil {
			return fmt.Errorf("bad --since date: %w", err)
		}
		q.Start = start
	}

	records, err := svc.History().Query(ctx, q)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TIME\tSTRATEGY\tPLAYERS\tCOST\tEFFECTIVE\tPENALTY\tSTATUS")
	for _, r := range records {
		status := "ok"
		if r.Infeasible {
			status = "incomplete"
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%.1f\t%.2f\t%.0f%%\t%s\n",
			r.Timestamp.Format("2006-01-02 15:04"), r.Strategy, len(r.Roster),
			r.TotalCost, r.EffectiveValue, r.PenaltyFraction*100, status)
	}
	return tw.Flush()
}
