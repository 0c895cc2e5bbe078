// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package site

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/pdiddy/profile-site/internal/catalog"
	"github.com/pdiddy/profile-site/internal/export"
	"github.com/pdiddy/profile-site/pkg/types"
)

// BuildResult summarizes a static build.
type BuildResult struct {
	OutDir string
	Files  []string
}

// Build writes the static site for p into outDir: the page with every
// publication listed, the profile document as Markdown and HTML, the
// combined bibliography, and one BibTeX file per publication. Progress
// lines go to w.
func Build(ctx context.Context, p *types.Profile, outDir string, w io.Writer) (*BuildResult, error) {
	if err := catalog.Validate(p); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Join(outDir, "bib"), 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	res := &BuildResult{OutDir: outDir}

	write := func(name string, data []byte) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !filepath.IsLocal(name) {
			return fmt.Errorf("output file %q escapes %s", name, outDir)
		}
		path := filepath.Join(outDir, name)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", name, err)
		}
		res.Files = append(res.Files, name)
		fmt.Fprintf(w, "  wrote %s (%d bytes)\n", path, len(data))
		return nil
	}

	var page bytes.Buffer
	err := NewPage(p, PageOptions{Static: true, Self: staticLinks.Page, Now: time.Now()}).Render(&page)
	if err != nil {
		return nil, err
	}
	if err := write("index.html", page.Bytes()); err != nil {
		return nil, err
	}

	if err := write("cv.md", []byte(export.ToProfileDocument(p))); err != nil {
		return nil, err
	}

	var cv bytes.Buffer
	if err := RenderCV(&cv, p, types.ThemeLight, "cv.md"); err != nil {
		return nil, err
	}
	if err := write("cv.html", cv.Bytes()); err != nil {
		return nil, err
	}

	if err := write("publications.bib", []byte(export.ToBibTeXList(p.Publications))); err != nil {
		return nil, err
	}
	for _, pub := range p.Publications {
		name := filepath.Join("bib", export.BibFilename(pub))
		if err := write(name, []byte(export.ToBibTeX(pub)+"\n")); err != nil {
			return nil, err
		}
	}

	fmt.Fprintf(w, "Build complete: %d files in %s\n", len(res.Files), outDir)
	return res, nil
}
