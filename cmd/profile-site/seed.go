// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/profile-site/internal/catalog"
)

var seedCmd = &cobra.Command{
	Use:   "seed [path]",
	Short: "Write the built-in profile to a YAML file for editing",
	Long: `Seed writes the built-in profile data to path (default profile.yaml).
Edit the file and pass it with --profile or the "profile" config key to
publish your own profile.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().Bool("force", false, "overwrite an existing file")

	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, args []string) error {
	path := "profile.yaml"
	if len(args) == 1 {
		path = args[0]
	}
	force, _ := cmd.Flags().GetBool("force")
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	p, err := catalog.Default()
	if err != nil {
		return err
	}
	if err := catalog.Write(path, p); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}
