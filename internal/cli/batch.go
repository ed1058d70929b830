package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/NandoXu/ig-reels-analytics/internal/app"
	"github.com/spf13/cobra"
)

var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Scrape every post listed in a file",
	Long: `Reads post URLs or shortcodes from a file (one per line, commas also
accepted, # starts a comment) and scrapes them strictly in order. Each record
is stored before the next scrape begins and printed as one JSON line.`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	links, err := readLinks(args[0])
	if err != nil {
		return err
	}
	if len(links) == 0 {
		return fmt.Errorf("no links found in %s", args[0])
	}

	return app.Run(cmd.Context(), func(ctx context.Context, deps app.Deps) error {
		records, err := deps.Pipeline.Batch(ctx, links, igUser)

		enc := json.NewEncoder(os.Stdout)
		for _, rec := range records {
			if encErr := enc.Encode(rec); encErr != nil {
				return encErr
			}
		}
		return err
	})
}

func readLinks(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read link file: %w", err)
	}

	var links []string
	for _, line := range strings.Split(string(data), "\n") {
		for _, field := range strings.Split(line, ",") {
			field = strings.TrimSpace(field)
			if field == "" || strings.HasPrefix(field, "#") {
				continue
			}
			links = append(links, field)
		}
	}
	return links, nil
}
