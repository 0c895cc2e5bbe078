// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/profile-site/internal/export"
	"github.com/pdiddy/profile-site/internal/notify"
	"github.com/pdiddy/profile-site/pkg/types"
)

var bibtexCmd = &cobra.Command{
	Use:   "bibtex [id]",
	Short: "Print a publication's BibTeX citation",
	Long: `BibTeX prints the citation for one publication, or for every publication
with --all. With --copy the citation is also placed on the system
clipboard and a short notice reports whether the copy succeeded.

--check reads BibTeX entries from a file (or stdin with "-") and reports
whether each one is well formed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBibTeX,
}

func init() {
	bibtexCmd.Flags().Bool("copy", false, "copy the citation to the clipboard")
	bibtexCmd.Flags().Bool("all", false, "print every publication")
	bibtexCmd.Flags().String("check", "", `validate BibTeX entries in a file ("-" for stdin)`)

	rootCmd.AddCommand(bibtexCmd)
}

func runBibTeX(cmd *cobra.Command, args []string) error {
	if path, _ := cmd.Flags().GetString("check"); path != "" {
		return checkBibTeX(cmd, path)
	}

	p, err := loadProfile()
	if err != nil {
		return err
	}

	all, _ := cmd.Flags().GetBool("all")
	text, err := citation(p, args, all)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), text)

	if copyIt, _ := cmd.Flags().GetBool("copy"); copyIt {
		copyWithNotice(cmd.ErrOrStderr(), notify.SystemClipboard{}, text)
	}
	return nil
}

// citation returns the BibTeX for the requested publication, or for all
// of them, without a trailing newline.
func citation(p *types.Profile, args []string, all bool) (string, error) {
	switch {
	case all:
		return strings.TrimSuffix(export.ToBibTeXList(p.Publications), "\n"), nil
	case len(args) == 1:
		pub, ok := p.Publication(args[0])
		if !ok {
			return "", fmt.Errorf("publication %q not found", args[0])
		}
		return export.ToBibTeX(pub), nil
	default:
		return "", fmt.Errorf("publication id required (or --all)")
	}
}

// copyWithNotice copies text and waits until the outcome notice has been
// shown. A failed copy is reported, not returned.
func copyWithNotice(w io.Writer, clip notify.Clipboard, text string) {
	n := notify.NewNotifier(siteConfig().Notice.DismissAfter, w)
	defer n.Close()
	<-notify.CopyCitation(clip, n, text)
}

func checkBibTeX(cmd *cobra.Command, path string) error {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	entries, err := export.ParseBibTeXList(string(data))
	out := cmd.OutOrStdout()
	for _, e := range entries {
		fmt.Fprintf(out, "ok  @%s{%s} (%d fields)\n", e.Type, e.Key, len(e.Order))
	}
	if errors.Is(err, export.ErrMalformedEntry) {
		return fmt.Errorf("%s: %w", path, err)
	}
	return err
}
