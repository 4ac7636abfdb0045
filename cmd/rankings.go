package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsvec/faceoff/app"
	"github.com/jsvec/faceoff/core/scoring"
	"github.com/jsvec/faceoff/infra/logger"
	"github.com/jsvec/faceoff/pkg/export"
)

var flagRankLimit int

var rankingsCmd = &cobra.Command{
	Use:   "rankings",
	Short: "Score the pool and print players by projected value",
	RunE:  runRankings,
}

func init() {
	rankingsCmd.Flags().IntVarP(&flagRankLimit, "limit", "n", 0, "print only the top N players")
	rootCmd.AddCommand(rankingsCmd)
}

func runRankings(cmd *cobra.Command, args []string) error {
	ctx, stop := signalContext()
	defer stop()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	format, err := export.ParseFormat(flagFormat)
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

	players, _, err := svc.Pool(ctx)
	if err != nil {
		return err
	}
	cands, err := svc.Rankings(ctx, players)
	if err != nil {
		return err
	}
	if flagRankLimit > 0 && flagRankLimit < len(cands) {
		cands = cands[:flagRankLimit]
	}
	return export.WriteRankings(cmd.OutOrStdout(), cands, format)
}

var breakdownCmd = &cobra.Command{
	Use:   "breakdown <player name>",
	Short: "Show the fantasy point composition for one player",
	Args:  cobra.ExactArgs(1),
	RunE:  runBreakdown,
}

func init() {
	rootCmd.AddCommand(breakdownCmd)
}

func runBreakdown(cmd *cobra.Command, args []string) error {
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

	players, _, err := svc.Pool(ctx)
	if err != nil {
		return err
	}
	for _, p := range players {
		if p.Name == args[0] {
			fmt.Fprint(cmd.OutOrStdout(), scoring.FormatBreakdown(p))
			return nil
		}
	}
	return fmt.Errorf("player %q not in the pool", args[0])
}
