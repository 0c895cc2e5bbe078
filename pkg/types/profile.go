// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for profile-site: the
// profile data set, its publication records, and stage configuration.
package types

// Publication is one bibliographic entry shown on the profile page,
// matched by the publication filter and exported as a citation.
type Publication struct {
	// ID is the unique citation key (e.g. "morgan2024deepgene").
	ID string `json:"id" yaml:"id"`

	// Title is the publication title.
	Title string `json:"title" yaml:"title"`

	// Authors lists the authors in byline order.
	Authors []string `json:"authors" yaml:"authors"`

	// Venue is the journal or conference name.
	Venue string `json:"venue" yaml:"venue"`

	// Year is the publication year. Always positive.
	Year int `json:"year" yaml:"year"`

	// Tags are topic labels. Order matters for display only.
	Tags []string `json:"tags" yaml:"tags"`

	// DOI is the digital object identifier, empty when the work has none.
	DOI string `json:"doi,omitempty" yaml:"doi,omitempty"`

	// PDF links to the full text. "#" is a placeholder and counts as absent.
	PDF string `json:"pdf,omitempty" yaml:"pdf,omitempty"`

	// Code links to the source repository.
	Code string `json:"code,omitempty" yaml:"code,omitempty"`

	// Abstract is the publication abstract.
	Abstract string `json:"abstract,omitempty" yaml:"abstract,omitempty"`
}

// HasPDF reports whether the publication carries a real PDF link.
func (p Publication) HasPDF() bool {
	return p.PDF != "" && p.PDF != "#"
}

// HasTag reports whether tag is one of the publication's tags.
func (p Publication) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Social is an outbound profile link (Scholar, ORCID, GitHub, email).
type Social struct {
	Label string `json:"label" yaml:"label"`
	Href  string `json:"href" yaml:"href"`
}

// ResearchArea is one research card with its keyword chips.
type ResearchArea struct {
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Keywords    []string `json:"keywords" yaml:"keywords"`
}

// Project is an open-source project card.
type Project struct {
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Link        string   `json:"link" yaml:"link"`
	Tags        []string `json:"tags" yaml:"tags"`
}

// Course is a teaching entry.
type Course struct {
	Course string `json:"course" yaml:"course"`
	Term   string `json:"term" yaml:"term"`
	Role   string `json:"role" yaml:"role"`
	Link   string `json:"link,omitempty" yaml:"link,omitempty"`
}

// Profile is the complete static data set behind the page.
type Profile struct {
	// Name is the display name, including any honorific (e.g. "Dr. Alex Morgan").
	Name string `json:"name" yaml:"name"`

	// Title is the professional title shown under the name.
	Title string `json:"title" yaml:"title"`

	// Tagline is the one-sentence summary in the hero section.
	Tagline string `json:"tagline" yaml:"tagline"`

	// Email receives contact form messages through the mail client.
	Email string `json:"email" yaml:"email"`

	// Highlights are the short badges shown above the name.
	Highlights []string `json:"highlights,omitempty" yaml:"highlights,omitempty"`

	// Education lists degree lines for the exported CV.
	Education []string `json:"education" yaml:"education"`

	Socials       []Social       `json:"socials" yaml:"socials"`
	ResearchAreas []ResearchArea `json:"research_areas" yaml:"research_areas"`
	Publications  []Publication  `json:"publications" yaml:"publications"`
	Projects      []Project      `json:"projects" yaml:"projects"`
	Teaching      []Course       `json:"teaching" yaml:"teaching"`
	Service       []string       `json:"service" yaml:"service"`
}

// Publication returns the publication with the given ID.
func (p *Profile) Publication(id string) (Publication, bool) {
	for _, pub := range p.Publications {
		if pub.ID == id {
			return pub, true
		}
	}
	return Publication{}, false
}

// Theme is the page color scheme preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Toggled returns the opposite theme.
func (t Theme) Toggled() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}
