// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the profile-site CLI. It serves the
// academic profile page, builds it as static files, and exposes the
// publication filter and export formats on the command line.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pdiddy/profile-site/internal/catalog"
	"github.com/pdiddy/profile-site/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// logger is built in PersistentPreRunE; commands that do not log leave it
// as a no-op.
var logger = zap.NewNop()

// rootCmd is the base command for the profile-site CLI.
var rootCmd = &cobra.Command{
	Use:   "profile-site",
	Short: "Academic profile page with publication filtering and export",
	Long: `profile-site renders an academic profile (research areas, publications,
projects, teaching, service, contact) as a web page. The page can be
served over HTTP or built as static files.

The publication list is filterable by free-text query, year, and tags.
Publications export as BibTeX or CSL-YAML and the whole profile exports
as a Markdown CV. Subcommands expose the same operations in the terminal.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		l, err := config.Build()
		if err != nil {
			return fmt.Errorf("initializing logger: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./profile-site.yaml or ~/.config/profile-site/profile-site.yaml)")
	rootCmd.PersistentFlags().String("profile", "", "profile data file in YAML (default: built-in profile)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")

	_ = viper.BindPFlag("profile", rootCmd.PersistentFlags().Lookup("profile"))

	viper.SetDefault("serve.addr", ":8080")
	viper.SetDefault("serve.read_header_timeout", 10*time.Second)
	viper.SetDefault("serve.write_timeout", 30*time.Second)
	viper.SetDefault("serve.idle_timeout", 60*time.Second)
	viper.SetDefault("serve.shutdown_timeout", 10*time.Second)
	viper.SetDefault("build.out_dir", "public")
	viper.SetDefault("notice.dismiss_after", 1500*time.Millisecond)
	viper.SetDefault("state_dir", defaultStateDir())
}

func defaultStateDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".profile-site"
	}
	return filepath.Join(home, ".config", "profile-site")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("profile-site")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "profile-site"))
		}
	}

	viper.SetEnvPrefix("PROFILE_SITE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// siteConfig collects the resolved configuration.
func siteConfig() types.SiteConfig {
	return types.SiteConfig{
		Profile: viper.GetString("profile"),
		Serve: types.ServeConfig{
			Addr:              viper.GetString("serve.addr"),
			ReadHeaderTimeout: viper.GetDuration("serve.read_header_timeout"),
			WriteTimeout:      viper.GetDuration("serve.write_timeout"),
			IdleTimeout:       viper.GetDuration("serve.idle_timeout"),
			ShutdownTimeout:   viper.GetDuration("serve.shutdown_timeout"),
		},
		Build:  types.BuildConfig{OutDir: viper.GetString("build.out_dir")},
		Notice: types.NoticeConfig{DismissAfter: viper.GetDuration("notice.dismiss_after")},
		Prefs:  types.PrefsConfig{StateDir: viper.GetString("state_dir")},
	}
}

// loadProfile reads the configured profile data.
func loadProfile() (*types.Profile, error) {
	return catalog.Load(siteConfig().Profile)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
