// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/profile-site/internal/export"
	"github.com/pdiddy/profile-site/internal/pubfilter"
	"github.com/pdiddy/profile-site/pkg/types"
)

var pubsCmd = &cobra.Command{
	Use:   "pubs [query]",
	Short: "List publications matching a query, year, and tags",
	Long: `Pubs filters the publication list the same way the page does. The query
matches title, abstract, venue, and authors case-insensitively; --year
selects one year ("All" for every year); each --tag must be present on
a publication for it to match.

An unparseable year is reported and ignored. Unknown tags are reported
with the closest known tag as a suggestion.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPubs,
}

func init() {
	pubsCmd.Flags().String("year", pubfilter.AllYears, `publication year, or "All"`)
	pubsCmd.Flags().StringArray("tag", nil, "required tag (repeatable)")
	pubsCmd.Flags().Bool("json", false, "output results as JSON")
	pubsCmd.Flags().Bool("csl", false, "output results as CSL-YAML")
	pubsCmd.Flags().Bool("years", false, "list the distinct publication years")
	pubsCmd.Flags().Bool("tags", false, "list the distinct tags")

	rootCmd.AddCommand(pubsCmd)
}

func runPubs(cmd *cobra.Command, args []string) error {
	p, err := loadProfile()
	if err != nil {
		return err
	}
	out, errw := cmd.OutOrStdout(), cmd.ErrOrStderr()

	if ok, _ := cmd.Flags().GetBool("years"); ok {
		for _, y := range pubfilter.Years(p.Publications) {
			fmt.Fprintln(out, y)
		}
		return nil
	}
	if ok, _ := cmd.Flags().GetBool("tags"); ok {
		for _, t := range pubfilter.Tags(p.Publications) {
			fmt.Fprintln(out, t)
		}
		return nil
	}

	rawYear, _ := cmd.Flags().GetString("year")
	tags, _ := cmd.Flags().GetStringArray("tag")
	var query string
	if len(args) > 0 {
		query = args[0]
	}
	c := criteriaFromFlags(errw, p, query, rawYear, tags)
	logger.Debug("filtering publications")

	results := pubfilter.Filter(p.Publications, c)

	jsonOutput, _ := cmd.Flags().GetBool("json")
	cslOutput, _ := cmd.Flags().GetBool("csl")
	switch {
	case jsonOutput && cslOutput:
		return fmt.Errorf("--json and --csl are mutually exclusive")
	case jsonOutput:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	case cslOutput:
		return export.FormatCSL(results, out)
	}
	printPublications(out, results)
	return nil
}

// criteriaFromFlags parses the filter flags, warning about and dropping
// any input that does not apply.
func criteriaFromFlags(errw io.Writer, p *types.Profile, query, rawYear string, tags []string) pubfilter.Criteria {
	c := pubfilter.Default()
	c.Query = query

	y, err := pubfilter.ParseYear(rawYear)
	if err != nil {
		fmt.Fprintf(errw, "warning: %v; showing all years\n", err)
	} else {
		c.Year = y
	}

	for _, t := range tags {
		if !c.HasTag(t) {
			c = c.WithTagToggled(t)
		}
	}

	known := pubfilter.Tags(p.Publications)
	for _, t := range pubfilter.UnknownTags(c.ActiveTags, known) {
		if s := pubfilter.SuggestTag(t, known); s != "" {
			fmt.Fprintf(errw, "warning: no publication has tag %q (did you mean %q?)\n", t, s)
		} else {
			fmt.Fprintf(errw, "warning: no publication has tag %q\n", t)
		}
	}
	return c
}

func printPublications(w io.Writer, pubs []types.Publication) {
	if len(pubs) == 0 {
		fmt.Fprintln(w, "No publications match your filters.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-24s  %-50s  %-28s  %s\n", "Year", "ID", "Title", "Venue", "Tags")
	fmt.Fprintln(w, strings.Repeat("-", 130))
	for _, p := range pubs {
		fmt.Fprintf(w, "%-4d  %-24s  %-50s  %-28s  %s\n",
			p.Year, truncate(p.ID, 24), truncate(p.Title, 50), truncate(p.Venue, 28), strings.Join(p.Tags, ", "))
	}
	fmt.Fprintf(w, "\n%d publication(s)\n", len(pubs))
}

// truncate shortens s to n runes, marking the cut with "...".
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
