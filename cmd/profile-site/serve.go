// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/profile-site/internal/site"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the profile page over HTTP",
	Long: `Serve renders the profile page on every request. Publication filters
travel in the query string (q, year, tag) and the theme choice in a
cookie. Citations are served at /publications/{id}/bibtex and the CV at
/cv.md (download) and /cv (HTML).

The server stops gracefully on SIGINT or SIGTERM.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default :8080)")
	_ = viper.BindPFlag("serve.addr", serveCmd.Flags().Lookup("addr"))

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := siteConfig()
	p, err := loadProfile()
	if err != nil {
		return err
	}
	logger.Info("loaded profile",
		zap.String("name", p.Name),
		zap.Int("publications", len(p.Publications)),
		zap.String("source", profileSource(cfg.Profile)))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return site.Serve(ctx, cfg.Serve, site.NewHandler(p, logger), logger)
}

func profileSource(path string) string {
	if path == "" {
		return "built-in"
	}
	return path
}
