// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/pdiddy/profile-site/internal/export"
	"github.com/pdiddy/profile-site/internal/site"
	"github.com/pdiddy/profile-site/pkg/types"
)

var cvCmd = &cobra.Command{
	Use:   "cv",
	Short: "Export the profile as a Markdown CV",
	Long: `CV writes the profile document: name, title, tagline, then Education,
Research Areas, Selected Publications, Teaching, and Service sections.

By default the Markdown goes to stdout. --out writes it to a file, or to
the suggested filename (e.g. Alex-Morgan-CV.md) inside a directory.
--render shows it formatted for the terminal and --html converts it to
a standalone HTML page.`,
	RunE: runCV,
}

func init() {
	cvCmd.Flags().String("out", "", "output file or directory")
	cvCmd.Flags().Bool("render", false, "render the Markdown for the terminal")
	cvCmd.Flags().Bool("html", false, "output HTML instead of Markdown")

	rootCmd.AddCommand(cvCmd)
}

func runCV(cmd *cobra.Command, args []string) error {
	p, err := loadProfile()
	if err != nil {
		return err
	}
	render, _ := cmd.Flags().GetBool("render")
	asHTML, _ := cmd.Flags().GetBool("html")
	out, _ := cmd.Flags().GetString("out")

	if render && (asHTML || out != "") {
		return fmt.Errorf("--render cannot be combined with --html or --out")
	}

	doc := export.ToProfileDocument(p)
	if render {
		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(80),
		)
		if err != nil {
			return fmt.Errorf("creating renderer: %w", err)
		}
		text, err := r.Render(doc)
		if err != nil {
			return fmt.Errorf("rendering cv: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), text)
		return nil
	}

	data := []byte(doc)
	name := export.CVFilename(p)
	if asHTML {
		var buf bytes.Buffer
		if err := site.RenderCV(&buf, p, types.ThemeLight, name); err != nil {
			return err
		}
		data = buf.Bytes()
		name = strings.TrimSuffix(name, ".md") + ".html"
	}

	if out == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}

	path := cvOutputPath(out, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing cv: %w", err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s\n", path)
	return nil
}

// cvOutputPath resolves --out: an existing directory, or a path ending in
// a separator, receives the suggested filename.
func cvOutputPath(out, name string) string {
	if strings.HasSuffix(out, string(os.PathSeparator)) || strings.HasSuffix(out, "/") {
		return filepath.Join(out, name)
	}
	if info, err := os.Stat(out); err == nil && info.IsDir() {
		return filepath.Join(out, name)
	}
	return out
}
