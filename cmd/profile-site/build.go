// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/profile-site/internal/site"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Write the profile site as static files",
	Long: `Build writes index.html with every publication listed, cv.md and
cv.html, publications.bib, and one bib/<id>.bib per publication. Static
pages have no filter controls, theme toggle, or contact form; those need
the server.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().String("out", "", "output directory (default public)")
	_ = viper.BindPFlag("build.out_dir", buildCmd.Flags().Lookup("out"))

	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg := siteConfig()
	p, err := loadProfile()
	if err != nil {
		return err
	}
	_, err = site.Build(context.Background(), p, cfg.Build.OutDir, cmd.OutOrStdout())
	return err
}
