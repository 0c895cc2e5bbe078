// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/pdiddy/profile-site/pkg/types"
)

// ToProfileDocument renders the whole profile as Markdown. Every section
// heading is always present; an empty collection leaves its heading with
// no list items beneath it.
func ToProfileDocument(p *types.Profile) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n%s\n\n%s\n\n", p.Name, p.Title, p.Tagline)

	section(&b, "Education", p.Education, func(s string) string { return s })

	section(&b, "Research Areas", p.ResearchAreas, func(r types.ResearchArea) string {
		return fmt.Sprintf("%s: %s", r.Title, strings.Join(r.Keywords, ", "))
	})

	section(&b, "Selected Publications", p.Publications, func(pub types.Publication) string {
		return fmt.Sprintf("%s (%d). %s. %s.", strings.Join(pub.Authors, ", "), pub.Year, pub.Title, pub.Venue)
	})

	section(&b, "Teaching", p.Teaching, func(c types.Course) string {
		return fmt.Sprintf("%s (%s) — %s", c.Course, c.Term, c.Role)
	})

	section(&b, "Service", p.Service, func(s string) string { return s })

	return strings.TrimSuffix(b.String(), "\n")
}

// section writes "## title", one "- item" line per element, and a blank
// line after the section.
func section[T any](b *strings.Builder, title string, items []T, line func(T) string) {
	fmt.Fprintf(b, "## %s\n", title)
	for _, it := range items {
		fmt.Fprintf(b, "- %s\n", line(it))
	}
	b.WriteString("\n")
}

// honorifics are dropped from the front of a name when deriving filenames.
var honorifics = map[string]bool{
	"dr": true, "prof": true, "professor": true, "mr": true, "ms": true, "mrs": true, "mx": true,
}

// ShortName returns the profile name without a leading honorific, e.g.
// "Alex Morgan" for "Dr. Alex Morgan".
func ShortName(p *types.Profile) string {
	words := strings.Fields(p.Name)
	if len(words) > 1 && honorifics[strings.ToLower(strings.TrimSuffix(words[0], "."))] {
		words = words[1:]
	}
	return strings.Join(words, " ")
}

// CVFilename returns the suggested download name for the profile
// document, e.g. "Alex-Morgan-CV.md" for "Dr. Alex Morgan".
func CVFilename(p *types.Profile) string {
	var parts []string
	for _, w := range strings.Fields(ShortName(p)) {
		clean := strings.Map(func(r rune) rune {
			if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' {
				return r
			}
			return -1
		}, w)
		if clean != "" {
			parts = append(parts, clean)
		}
	}
	if len(parts) == 0 {
		return "CV.md"
	}
	return strings.Join(parts, "-") + "-CV.md"
}
