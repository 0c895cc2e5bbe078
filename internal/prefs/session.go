// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package prefs

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pdiddy/profile-site/pkg/types"
)

// ErrInvalidTheme reports a theme value other than "light" or "dark".
var ErrInvalidTheme = errors.New("invalid theme")

// ParseTheme converts "light" or "dark" (any case) to a Theme.
func ParseTheme(s string) (types.Theme, error) {
	switch types.Theme(strings.ToLower(strings.TrimSpace(s))) {
	case types.ThemeLight:
		return types.ThemeLight, nil
	case types.ThemeDark:
		return types.ThemeDark, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidTheme, s)
}

// ThemeStore is the persistence a Session needs. *Store implements it.
type ThemeStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// Session is the theme state owned by one view controller. It starts from
// the persisted preference, or from the fallback when none is stored or
// the stored value is unreadable, and persists every change.
type Session struct {
	store ThemeStore
	theme types.Theme
	// Persisted reports whether the theme came from the store.
	Persisted bool
}

// Open loads the session theme.
func Open(ctx context.Context, store ThemeStore, fallback types.Theme) (*Session, error) {
	s := &Session{store: store, theme: fallback}
	raw, err := store.Get(ctx, KeyTheme)
	switch {
	case errors.Is(err, ErrNotFound):
		return s, nil
	case err != nil:
		return nil, err
	}
	if t, err := ParseTheme(raw); err == nil {
		s.theme = t
		s.Persisted = true
	}
	return s, nil
}

// Theme returns the current theme.
func (s *Session) Theme() types.Theme {
	return s.theme
}

// Set changes and persists the theme.
func (s *Session) Set(ctx context.Context, t types.Theme) error {
	if _, err := ParseTheme(string(t)); err != nil {
		return err
	}
	if err := s.store.Set(ctx, KeyTheme, string(t)); err != nil {
		return err
	}
	s.theme = t
	s.Persisted = true
	return nil
}

// Toggle flips between light and dark, persists, and returns the new theme.
func (s *Session) Toggle(ctx context.Context) (types.Theme, error) {
	next := s.theme.Toggled()
	if err := s.Set(ctx, next); err != nil {
		return s.theme, err
	}
	return next, nil
}

// SystemTheme maps a platform dark-mode signal to a Theme.
func SystemTheme(prefersDark bool) types.Theme {
	if prefersDark {
		return types.ThemeDark
	}
	return types.ThemeLight
}
