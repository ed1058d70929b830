package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/NandoXu/ig-reels-analytics/internal/app"
	"github.com/spf13/cobra"
)

var loginPassword string

var loginCmd = &cobra.Command{
	Use:   "login <username>",
	Short: "Log in and store a session for later scrapes",
	Long: `Performs a credential login and exports the session file so scrape and
batch can load it with --user. The password comes from --password or from
the INSTAGRAM_PASS environment variable via config.`,
	Args: cobra.ExactArgs(1),
	RunE: runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout <username>",
	Short: "Remove the stored session for a username",
	Args:  cobra.ExactArgs(1),
	RunE:  runLogout,
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Password for the account")
}

func runLogin(cmd *cobra.Command, args []string) error {
	username := args[0]

	return app.Run(cmd.Context(), func(ctx context.Context, deps app.Deps) error {
		password := loginPassword
		if password == "" {
			password = deps.Config.Instagram.Password
		}
		if password == "" {
			return errors.New("no password given: set --password or INSTAGRAM_PASS")
		}

		if err := deps.Instagram.Login(ctx, username, password); err != nil {
			return fmt.Errorf("login failed: %w", err)
		}
		fmt.Printf("Session stored for %s\n", username)
		return nil
	})
}

func runLogout(cmd *cobra.Command, args []string) error {
	username := args[0]

	return app.Run(cmd.Context(), func(ctx context.Context, deps app.Deps) error {
		if err := deps.Instagram.Logout(username); err != nil {
			return fmt.Errorf("logout failed: %w", err)
		}
		fmt.Printf("Session removed for %s\n", username)
		return nil
	})
}
