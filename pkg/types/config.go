// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// ServeConfig holds settings for the HTTP server.
type ServeConfig struct {
	// Addr is the listen address (default ":8080").
	Addr string `json:"addr" yaml:"addr"`

	// ReadHeaderTimeout bounds the time to read request headers (default 10s).
	ReadHeaderTimeout time.Duration `json:"read_header_timeout" yaml:"read_header_timeout"`

	// WriteTimeout bounds the time to write a response (default 30s).
	WriteTimeout time.Duration `json:"write_timeout" yaml:"write_timeout"`

	// IdleTimeout bounds keep-alive connections (default 60s).
	IdleTimeout time.Duration `json:"idle_timeout" yaml:"idle_timeout"`

	// ShutdownTimeout bounds graceful shutdown (default 10s).
	ShutdownTimeout time.Duration `json:"shutdown_timeout" yaml:"shutdown_timeout"`
}

// BuildConfig holds settings for the static site build.
type BuildConfig struct {
	// OutDir is the directory that receives the generated files (default "public").
	OutDir string `json:"out_dir" yaml:"out_dir"`
}

// NoticeConfig holds settings for transient user notices.
type NoticeConfig struct {
	// DismissAfter is how long a notice stays visible (default 1.5s).
	DismissAfter time.Duration `json:"dismiss_after" yaml:"dismiss_after"`
}

// PrefsConfig holds settings for the local preference store.
type PrefsConfig struct {
	// StateDir is the directory containing prefs.db
	// (default ~/.config/profile-site).
	StateDir string `json:"state_dir" yaml:"state_dir"`
}

// SiteConfig groups all configuration for profile-site.
type SiteConfig struct {
	// Profile is the path to a YAML profile data file. Empty selects the
	// embedded default profile.
	Profile string `json:"profile" yaml:"profile"`

	Serve  ServeConfig  `json:"serve" yaml:"serve"`
	Build  BuildConfig  `json:"build" yaml:"build"`
	Notice NoticeConfig `json:"notice" yaml:"notice"`
	Prefs  PrefsConfig  `json:"prefs" yaml:"prefs"`
}
