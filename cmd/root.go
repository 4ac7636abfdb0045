package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jsvec/faceoff/app"
	"github.com/jsvec/faceoff/config"
	"github.com/jsvec/faceoff/infra/logger"
	"github.com/jsvec/faceoff/pkg/export"
)

var (
	cfgPath string

	flagSource    string
	flagFile      string
	flagPrices    string
	flagStrategy  string
	flagBudget    float64
	flagTeams     []string
	flagGameday   string
	flagSeason    string
	flagRefresh   bool
	flagFormat    string
	flagShowSubs  bool
	flagShowExcl  bool
	flagShowShort bool
	flagVerbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "faceoff",
	Short: "Fantasy hockey lineup optimizer",
	Long: `faceoff scores an NHL player pool and selects a starter and substitute
lineup under a soft budget, using live league statistics or local files.`,
	RunE: runLineup,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "config.yaml", "configuration file")
	rootCmd.PersistentFlags().StringVar(&flagSource, "source", "", "pool source: api, csv or json")
	rootCmd.PersistentFlags().StringVar(&flagFile, "file", "", "pool file for the csv and json sources")
	rootCmd.PersistentFlags().StringVar(&flagPrices, "prices", "", "price list CSV")
	rootCmd.PersistentFlags().StringSliceVar(&flagTeams, "teams", nil, "restrict the pool to these team abbreviations")
	rootCmd.PersistentFlags().StringVar(&flagGameday, "gameday", "", "restrict the pool to teams playing on YYYY-MM-DD")
	rootCmd.PersistentFlags().StringVar(&flagSeason, "season", "", "season identifier, e.g. 20252026")
	rootCmd.PersistentFlags().BoolVar(&flagRefresh, "refresh", false, "bypass cached API payloads")
	rootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "f", "", "output format: text, csv, json or markdown")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "trace exclusions and swaps to stderr while the run progresses")

	rootCmd.Flags().StringVarP(&flagStrategy, "strategy", "s", "", "selection strategy: greedy, iterative or advanced")
	rootCmd.Flags().Float64VarP(&flagBudget, "budget", "b", 0, "budget base before penalties apply")
	rootCmd.Flags().BoolVar(&flagShowSubs, "subs", true, "include substitutes in the output")
	rootCmd.Flags().BoolVar(&flagShowExcl, "excluded", false, "list players excluded from scoring")
	rootCmd.Flags().BoolVar(&flagShowShort, "shortages", true, "report unfilled or relaxed slots")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

// loadConfig loads the configured file and layers the command line flags on
// top. A missing default config file falls back to built-in defaults so the
// tool works flag-only.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var cfg *config.Config
	if _, err := os.Stat(cfgPath); os.IsNotExist(err) && !cmd.Flags().Changed("config") {
		cfg = config.Default()
	} else {
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
	}

	if flagSource != "" {
		cfg.Data.Source = strings.ToLower(flagSource)
	}
	if flagFile != "" {
		cfg.Data.File = flagFile
	}
	if flagPrices != "" {
		cfg.Data.PriceFile = flagPrices
	}
	if len(flagTeams) > 0 {
		cfg.Data.Teams = flagTeams
	}
	if flagGameday != "" {
		cfg.Data.Gameday = flagGameday
	}
	if flagSeason != "" {
		cfg.Data.Season = flagSeason
	}
	if flagRefresh {
		cfg.Data.ForceRefresh = true
	}
	if flagStrategy != "" {
		cfg.Lineup.Strategy = strings.ToLower(flagStrategy)
	}
	if flagBudget > 0 {
		cfg.Lineup.Budget.Base = flagBudget
	}
	return cfg, cfg.Finalize()
}

// traceEvents streams exclusion and swap events to stderr until both typed
// streams are closed by the service.
func traceEvents(ev *app.Events) {
	excl := ev.Exclusions.Subscribe()
	swaps := ev.Swaps.Subscribe()
	for excl != nil || swaps != nil {
		select {
		case e, ok := <-excl:
			if !ok {
				excl = nil
				continue
			}
			fmt.Fprintf(os.Stderr, "excluded %s: %s\n", e.Player, e.Reason)
		case e, ok := <-swaps:
			if !ok {
				swaps = nil
				continue
			}
			fmt.Fprintf(os.Stderr, "swap %s %s: %s -> %s (%.2f)\n",
				e.Position, e.Set, e.Out, e.In, e.Effective)
		}
	}
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func runLineup(cmd *cobra.Command, args []string) error {
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
	if flagVerbose {
		go traceEvents(svc.Events())
	}

	res, err := svc.Run(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	built := res.Lineup
	if !flagShowSubs {
		built.Substitutes = nil
	}
	if err := export.WriteLineup(out, built, format); err != nil {
		return err
	}

	if format == export.FormatText {
		if flagShowShort {
			for _, sh := range res.Report.Shortages {
				if sh.Relaxed {
					fmt.Fprintf(out, "note: %s %s filled %d of %d after relaxing the value floor\n",
						sh.Position, sh.Set, sh.Filled, sh.Wanted)
				} else {
					fmt.Fprintf(out, "warning: %s %s filled %d of %d\n",
						sh.Position, sh.Set, sh.Filled, sh.Wanted)
				}
			}
		}
		if flagShowExcl {
			for _, ex := range res.Excluded {
				fmt.Fprintf(out, "excluded: %s (%v)\n", ex.Player.Name, ex.Reason)
			}
		}
	}
	return nil
}
