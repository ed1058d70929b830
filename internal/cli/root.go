// Package cli is the cobra command surface. Every command builds the fx
// container through app.Run, does its work and tears the container down.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var igUser string

var rootCmd = &cobra.Command{
	Use:   "ig-reels-analytics",
	Short: "Scrape engagement metrics for Instagram posts and reels",
	Long: `ig-reels-analytics resolves likes, comments and view counts for a post or
reel through a chain of increasingly expensive sources (authenticated API,
direct page fetch, browser automation) and keeps the results in a local
record store.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&igUser, "user", "", "Username whose stored session to load (anonymous when empty)")
}

// Execute runs the CLI with the given base context.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// printJSON writes v to stdout, indented. Log output goes to stderr so
// stdout stays machine-readable.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}
