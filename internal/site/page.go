// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package site renders the profile page and serves it over HTTP or writes
// it out as static files. Filter state travels in the request query
// string and the theme flag in a cookie, so every request is rendered from
// scratch against the read-only profile.
package site

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"
	"time"

	"github.com/pdiddy/profile-site/internal/export"
	"github.com/pdiddy/profile-site/internal/pubfilter"
	"github.com/pdiddy/profile-site/pkg/types"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(
	template.New("site").
		Funcs(template.FuncMap{"join": strings.Join}).
		ParseFS(templateFS, "templates/*.tmpl"),
)

// NavItem is one header navigation anchor.
type NavItem struct {
	ID    string
	Label string
}

var navItems = []NavItem{
	{"research", "Research"},
	{"publications", "Publications"},
	{"projects", "Projects"},
	{"teaching", "Teaching"},
	{"service", "Service"},
	{"contact", "Contact"},
}

// Links holds the download targets, which differ between the server and a
// static build.
type Links struct {
	CV   string
	Bib  func(id string) string
	Page string
}

var (
	serverLinks = Links{
		CV:   "/cv.md",
		Bib:  func(id string) string { return "/publications/" + id + "/bibtex" },
		Page: "/",
	}
	staticLinks = Links{
		CV:   "cv.md",
		Bib:  func(id string) string { return "bib/" + id + ".bib" },
		Page: "index.html",
	}
)

// TagChip is a tag filter button; Href applies the toggled criteria.
type TagChip struct {
	Name   string
	Active bool
	Href   string
}

// YearOption is one entry of the year selector.
type YearOption struct {
	Value    string
	Label    string
	Selected bool
}

// Result is a visible publication with its citation link.
type Result struct {
	types.Publication
	BibHref string
}

// Page is the view model for the profile page template.
type Page struct {
	Profile     *types.Profile
	Nav         []NavItem
	Theme       types.Theme
	Static      bool
	Self        string
	Links       Links
	CVFilename  string
	ShortName   string
	CurrentYear int
	Scholar     *types.Social

	Criteria    pubfilter.Criteria
	Ignored     []string
	YearOptions []YearOption
	TagChips    []TagChip
	Results     []Result
}

// PageOptions carries the per-request inputs to NewPage.
type PageOptions struct {
	Criteria pubfilter.Criteria
	Ignored  []string
	Theme    types.Theme
	Static   bool
	Self     string
	Now      time.Time
}

// NewPage builds the view model: the filtered publication list plus the
// year and tag controls derived from the full list.
func NewPage(p *types.Profile, opts PageOptions) *Page {
	links := serverLinks
	if opts.Static {
		links = staticLinks
	}
	if opts.Theme == "" {
		opts.Theme = types.ThemeLight
	}
	if opts.Now.IsZero() {
		opts.Now = time.Now()
	}

	page := &Page{
		Profile:     p,
		Nav:         navItems,
		Theme:       opts.Theme,
		Static:      opts.Static,
		Self:        opts.Self,
		Links:       links,
		CVFilename:  export.CVFilename(p),
		ShortName:   export.ShortName(p),
		CurrentYear: opts.Now.Year(),
		Criteria:    opts.Criteria,
		Ignored:     opts.Ignored,
	}
	if page.Self == "" {
		page.Self = "/"
	}
	for i := range p.Socials {
		if strings.Contains(strings.ToLower(p.Socials[i].Label), "scholar") {
			page.Scholar = &p.Socials[i]
			break
		}
	}

	page.YearOptions = append(page.YearOptions, YearOption{
		Value: pubfilter.AllYears, Label: pubfilter.AllYears, Selected: opts.Criteria.Year.IsAll(),
	})
	for _, y := range pubfilter.Years(p.Publications) {
		page.YearOptions = append(page.YearOptions, YearOption{
			Value:    fmt.Sprint(y),
			Label:    fmt.Sprint(y),
			Selected: opts.Criteria.Year.Value() == y,
		})
	}

	for _, tag := range pubfilter.Tags(p.Publications) {
		next := opts.Criteria.WithTagToggled(tag)
		page.TagChips = append(page.TagChips, TagChip{
			Name:   tag,
			Active: opts.Criteria.HasTag(tag),
			Href:   filterHref(next),
		})
	}

	for _, pub := range pubfilter.Filter(p.Publications, opts.Criteria) {
		page.Results = append(page.Results, Result{Publication: pub, BibHref: links.Bib(pub.ID)})
	}

	return page
}

// filterHref links to the page with c applied.
func filterHref(c pubfilter.Criteria) string {
	if q := c.Encode(); q != "" {
		return "/?" + q + "#publications"
	}
	return "/#publications"
}

// Render writes the page HTML to w.
func (p *Page) Render(w io.Writer) error {
	if err := templates.ExecuteTemplate(w, "page", p); err != nil {
		return fmt.Errorf("rendering page: %w", err)
	}
	return nil
}

// cvPage is the view model for the HTML rendering of the profile document.
type cvPage struct {
	Title    string
	Theme    types.Theme
	Body     template.HTML
	Download string
	Filename string
}

// RenderCV writes the profile document as a standalone HTML page.
func RenderCV(w io.Writer, p *types.Profile, theme types.Theme, download string) error {
	body, err := export.RenderHTML(export.ToProfileDocument(p))
	if err != nil {
		return err
	}
	if theme == "" {
		theme = types.ThemeLight
	}
	data := cvPage{
		Title:    p.Name + " — CV",
		Theme:    theme,
		Body:     template.HTML(body), // goldmark output; raw HTML in the source is dropped by default
		Download: download,
		Filename: export.CVFilename(p),
	}
	if err := templates.ExecuteTemplate(w, "cv", data); err != nil {
		return fmt.Errorf("rendering cv: %w", err)
	}
	return nil
}
