package cli

import (
	"context"
	"errors"

	"github.com/NandoXu/ig-reels-analytics/internal/app"
	"github.com/NandoXu/ig-reels-analytics/internal/repositories/record"
	"github.com/spf13/cobra"
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape <url|shortcode>",
	Short: "Scrape one post and store the result",
	Long: `Runs the full extraction chain for a single post URL or bare shortcode,
stores the record and prints it as JSON. Failed stages are embedded in the
record's error field; the exit code is non-zero only when the identifier
itself is unusable.`,
	Example: `  ig-reels-analytics scrape https://www.instagram.com/reel/Cxyz123abcd/
  ig-reels-analytics scrape Cxyz123abcd --user myaccount`,
	Args: cobra.ExactArgs(1),
	RunE: runScrape,
}

func init() {
	rootCmd.AddCommand(scrapeCmd)
}

func runScrape(cmd *cobra.Command, args []string) error {
	target := args[0]

	return app.Run(cmd.Context(), func(ctx context.Context, deps app.Deps) error {
		rec, err := deps.Pipeline.ScrapeAndStore(ctx, target, igUser)
		if errors.Is(err, record.ErrInvalidLink) {
			return errors.New("no shortcode derivable from " + target)
		}
		if err != nil {
			return err
		}
		return printJSON(rec)
	})
}
