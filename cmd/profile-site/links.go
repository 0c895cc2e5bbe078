// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/profile-site/internal/linkcheck"
)

var linksCmd = &cobra.Command{
	Use:   "links",
	Short: "Check that the profile's external links resolve",
	Long: `Links requests every external link in the profile (publication PDFs,
DOIs, code repositories, project pages, syllabi, social profiles) and
reports the ones that fail. Throttled responses are retried with
backoff. The command exits non-zero when any link is broken.`,
	RunE: runLinks,
}

func init() {
	linksCmd.Flags().Duration("timeout", 15*time.Second, "per-request timeout")
	linksCmd.Flags().Int("concurrency", 4, "number of links checked at once")
	linksCmd.Flags().Bool("all", false, "list working links too")

	rootCmd.AddCommand(linksCmd)
}

func runLinks(cmd *cobra.Command, args []string) error {
	p, err := loadProfile()
	if err != nil {
		return err
	}
	timeout, _ := cmd.Flags().GetDuration("timeout")
	concurrency, _ := cmd.Flags().GetInt("concurrency")
	all, _ := cmd.Flags().GetBool("all")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	links := linkcheck.Links(p)
	fmt.Fprintf(cmd.ErrOrStderr(), "Checking %d links...\n", len(links))

	checker := linkcheck.NewChecker(timeout)
	checker.Concurrency = concurrency
	results, err := checker.Check(ctx, links)
	if err != nil {
		return err
	}

	broken := reportLinks(cmd.OutOrStdout(), results, all)
	if broken > 0 {
		return fmt.Errorf("%d broken link(s)", broken)
	}
	return nil
}

// reportLinks prints a table of results and returns the number of broken
// links.
func reportLinks(w io.Writer, results []linkcheck.Result, all bool) int {
	broken := 0
	header := false
	for _, r := range results {
		if r.OK() && !all {
			continue
		}
		if !header {
			fmt.Fprintf(w, "%-6s  %-8s  %-36s  %s\n", "Status", "Kind", "Source", "URL")
			fmt.Fprintln(w, strings.Repeat("-", 100))
			header = true
		}
		status := fmt.Sprint(r.Status)
		if r.Err != nil {
			status = "error"
		}
		fmt.Fprintf(w, "%-6s  %-8s  %-36s  %s\n", status, r.Kind, truncate(r.Source, 36), r.URL)
		if !r.OK() {
			broken++
			if r.Err != nil {
				fmt.Fprintf(w, "        %v\n", r.Err)
			}
		}
	}
	fmt.Fprintf(w, "\n%d checked, %d broken\n", len(results), broken)
	return broken
}
