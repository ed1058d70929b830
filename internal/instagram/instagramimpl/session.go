package instagramimpl

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Davincible/goinsta/v3"
	"github.com/NandoXu/ig-reels-analytics/internal/instagram"
	apperrors "github.com/NandoXu/ig-reels-analytics/pkg/errors"
	"github.com/NandoXu/ig-reels-analytics/pkg/retry"
)

func (ig *IgImpl) sessionPath(username string) string {
	return filepath.Join(ig.Config.Instagram.SessionDir, username)
}

// UseSession loads a stored session for username. Absence of the session
// file and failed validation are soft failures: the client falls back to an
// anonymous instance and scraping proceeds.
func (ig *IgImpl) UseSession(username string) error {
	path := ig.sessionPath(username)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("no session for %q: %w", username, instagram.ErrSessionNotFound)
	}

	imported, err := goinsta.Import(path)
	if err != nil {
		return apperrors.Wrap(err, "failed to import session for "+username)
	}

	ig.Client = imported

	if !ig.validateSession() {
		ig.Logger.Warn("Session loaded but appears to be invalid, continuing anonymously", "username", username)
		ig.Client = goinsta.New("", "")
		return fmt.Errorf("session for %q: %w", username, instagram.ErrSessionInvalid)
	}

	ig.Logger.Info("Using existing session", "username", username)
	return nil
}

// Login performs a credential login with bounded retries and exports the
// session so later scrapes can load it by username.
func (ig *IgImpl) Login(ctx context.Context, username, password string) error {
	ig.Client = goinsta.New(username, password)

	loginErr := retry.Do(ctx, ig.Logger, "InstagramLogin", func() error {
		return ig.Client.Login()
	}, retry.DefaultConfig())
	if loginErr != nil {
		return apperrors.Wrap(loginErr, "failed to log in after multiple attempts")
	}

	ig.Logger.Info("Successfully logged in with credentials", "username", username)

	if err := ig.saveSession(username); err != nil {
		ig.Logger.Warn("Failed to save session", "error", err)
	}

	return nil
}

// Logout removes the stored session file for username.
func (ig *IgImpl) Logout(username string) error {
	path := ig.sessionPath(username)
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("no session for %q: %w", username, instagram.ErrSessionNotFound)
		}
		return fmt.Errorf("failed to remove session for %q: %w", username, err)
	}

	ig.Client = goinsta.New("", "")
	ig.Logger.Info("Session removed", "username", username)
	return nil
}

// validateSession checks the current session with a cheap API call.
func (ig *IgImpl) validateSession() bool {
	if ig.Client == nil {
		return false
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	done := make(chan bool, 1)
	var valid bool

	go func() {
		defer func() {
			if r := recover(); r != nil {
				ig.Logger.Error("Panic in session validation", "panic", r)
				valid = false
			}
			done <- true
		}()

		err := ig.Client.Account.Sync()
		valid = err == nil
	}()

	select {
	case <-done:
		return valid
	case <-ctx.Done():
		ig.Logger.Warn("Session validation timed out")
		return false
	}
}

func (ig *IgImpl) saveSession(username string) error {
	if ig.Client == nil {
		return fmt.Errorf("no active session to save")
	}

	if err := os.MkdirAll(ig.Config.Instagram.SessionDir, 0o755); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}

	path := ig.sessionPath(username)
	if err := ig.Client.Export(path); err != nil {
		return fmt.Errorf("failed to export session: %w", err)
	}

	ig.Logger.Info("Session saved", "path", path)
	return nil
}
