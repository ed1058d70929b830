package cli

import (
	"context"

	"github.com/NandoXu/ig-reels-analytics/internal/app"
	"github.com/spf13/cobra"
)

var refreshOnce bool

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Re-scrape every stored record",
	Long: `Runs one refresh pass over all stored records, then keeps running on the
configured interval until interrupted. With --once, exits after the first
pass.`,
	Args: cobra.NoArgs,
	RunE: runRefresh,
}

func init() {
	rootCmd.AddCommand(refreshCmd)
	refreshCmd.Flags().BoolVar(&refreshOnce, "once", false, "Run a single refresh pass and exit")
}

func runRefresh(cmd *cobra.Command, args []string) error {
	return app.Run(cmd.Context(), func(ctx context.Context, deps app.Deps) error {
		if igUser != "" {
			deps.Config.Instagram.Username = igUser
		}

		if err := deps.Refresher.RefreshAll(ctx); err != nil {
			return err
		}
		if refreshOnce || !deps.Config.Refresh.Enabled {
			return nil
		}

		if err := deps.Refresher.Start(ctx); err != nil {
			return err
		}
		<-ctx.Done()
		return deps.Refresher.Stop()
	})
}
