package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the generation stamp cache",
}

var cacheListCmd = &cobra.Command{
	Use:   "list",
	Short: "List generation stamps",
	Args:  cobra.NoArgs,
	RunE:  runCacheList,
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear [target]...",
	Short: "Remove stamps so the next generate rewrites the targets",
	Long: `Clear removes the stamps for the given targets, or every stamp when no
target is given. The next generate run rewrites the affected targets.`,
	RunE: runCacheClear,
}

func init() {
	cacheCmd.AddCommand(cacheListCmd)
	cacheCmd.AddCommand(cacheClearCmd)
	rootCmd.AddCommand(cacheCmd)
}

func runCacheList(cmd *cobra.Command, _ []string) error {
	if cacheService == nil {
		return fmt.Errorf("cache: %w", errNotConfigured)
	}
	warnMemoryCache(cmd)

	stamps, err := cacheService.List(cmd.Context())
	if err != nil {
		return err
	}
	if len(stamps) == 0 {
		cmd.Println(mutedLine("no stamps"))
		return nil
	}

	for _, st := range stamps {
		cmd.Printf("%s  %s  %s\n", st.Target, shortDigest(st.Digest), st.GeneratedAt.UTC().Format(time.RFC3339))
	}
	return nil
}

func runCacheClear(cmd *cobra.Command, args []string) error {
	if cacheService == nil {
		return fmt.Errorf("cache: %w", errNotConfigured)
	}
	warnMemoryCache(cmd)

	removed, err := cacheService.Clear(cmd.Context(), args...)
	if err != nil {
		return err
	}
	cmd.Println(successLine(fmt.Sprintf("removed %d stamp(s)", removed)))
	return nil
}

// warnMemoryCache notes that stamps do not outlive the process.
func warnMemoryCache(cmd *cobra.Command) {
	if settingsService != nil && settingsService.CacheDir() == "" {
		cmd.Println(mutedLine("cache.dir is not set; stamps are kept in memory for one run"))
	}
}

func shortDigest(d string) string {
	if len(d) > 12 {
		return d[:12]
	}
	return d
}
