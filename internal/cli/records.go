package cli

import (
	"context"
	"errors"

	"github.com/NandoXu/ig-reels-analytics/internal/app"
	"github.com/NandoXu/ig-reels-analytics/internal/domain"
	"github.com/NandoXu/ig-reels-analytics/internal/repositories/record"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print every stored record, most recent first",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var deleteCmd = &cobra.Command{
	Use:   "delete <url>",
	Short: "Remove the stored record for a post link",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(deleteCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	return app.Run(cmd.Context(), func(ctx context.Context, deps app.Deps) error {
		records, err := deps.Records.ListAll(ctx)
		if err != nil {
			return err
		}
		if records == nil {
			records = []*domain.PostResult{}
		}
		return printJSON(records)
	})
}

func runDelete(cmd *cobra.Command, args []string) error {
	link := args[0]

	return app.Run(cmd.Context(), func(ctx context.Context, deps app.Deps) error {
		err := deps.Records.DeleteByLink(ctx, link)
		if errors.Is(err, record.ErrInvalidLink) {
			return errors.New("no shortcode derivable from " + link)
		}
		return err
	})
}
