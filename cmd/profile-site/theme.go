// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/pdiddy/profile-site/internal/prefs"
)

var themeCmd = &cobra.Command{
	Use:   "theme [show|toggle|light|dark]",
	Short: "Show or change the saved color theme",
	Long: `Theme manages the light/dark preference kept in prefs.db under the
state directory. With no saved preference the theme follows the
terminal background. "toggle" flips the current theme and saves it;
"light" and "dark" save that theme directly.`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"show", "toggle", "light", "dark"},
	RunE:      runTheme,
}

func init() {
	rootCmd.AddCommand(themeCmd)
}

func runTheme(cmd *cobra.Command, args []string) error {
	action := "show"
	if len(args) == 1 {
		action = args[0]
	}

	store, err := prefs.NewStore(siteConfig().Prefs)
	if err != nil {
		return err
	}
	defer store.Close()

	return themeAction(context.Background(), cmd.OutOrStdout(), store, action, lipgloss.HasDarkBackground())
}

// themeAction applies action to the session stored in store and prints
// the resulting theme.
func themeAction(ctx context.Context, w io.Writer, store prefs.ThemeStore, action string, darkBackground bool) error {
	s, err := prefs.Open(ctx, store, prefs.SystemTheme(darkBackground))
	if err != nil {
		return fmt.Errorf("loading theme: %w", err)
	}

	switch action {
	case "show":
	case "toggle":
		if _, err := s.Toggle(ctx); err != nil {
			return fmt.Errorf("saving theme: %w", err)
		}
	default:
		t, err := prefs.ParseTheme(action)
		if err != nil {
			return fmt.Errorf("unknown action %q: use show, toggle, light, or dark", action)
		}
		if err := s.Set(ctx, t); err != nil {
			return fmt.Errorf("saving theme: %w", err)
		}
	}

	source := "saved"
	if !s.Persisted {
		source = "from terminal background"
	}
	fmt.Fprintf(w, "%s (%s)\n", s.Theme(), source)
	return nil
}
