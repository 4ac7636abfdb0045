package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jsvec/faceoff/providers/nhl"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "API payload cache maintenance",
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all cached API payloads",
	RunE:  runCacheClear,
}

func init() {
	cacheCmd.AddCommand(cacheClearCmd)
	rootCmd.AddCommand(cacheCmd)
}

func runCacheClear(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	maxAge := time.Duration(cfg.Data.CacheMaxAgeHours) * time.Hour
	store, err := nhl.NewCacheStore(cfg.Data.CacheDir, maxAge)
	if err != nil {
		return err
	}
	if err := store.Clear(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "cache %s cleared\n", cfg.Data.CacheDir)
	return nil
}
