// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pubfilter selects the visible subset of publications from a
// free-text query, a year and a set of active tags. Every function is pure:
// inputs are never mutated and results are new values.
package pubfilter

import (
	"sort"
	"strings"

	"github.com/pdiddy/profile-site/pkg/types"
)

// Criteria holds the current user-chosen constraints. The zero value is
// the default: empty query, all years, no tags.
type Criteria struct {
	Query      string
	Year       Year
	ActiveTags []string
}

// Default returns criteria that match every publication.
func Default() Criteria {
	return Criteria{}
}

// Reset returns the default criteria regardless of c.
func (c Criteria) Reset() Criteria {
	return Default()
}

// IsDefault reports whether c filters nothing out.
func (c Criteria) IsDefault() bool {
	return strings.TrimSpace(c.Query) == "" && c.Year.IsAll() && len(c.ActiveTags) == 0
}

// HasTag reports whether tag is active.
func (c Criteria) HasTag(tag string) bool {
	for _, t := range c.ActiveTags {
		if t == tag {
			return true
		}
	}
	return false
}

// WithTagToggled returns a copy of c with tag toggled.
func (c Criteria) WithTagToggled(tag string) Criteria {
	c.ActiveTags = ToggleTag(c.ActiveTags, tag)
	return c
}

// Filter returns the publications that satisfy c, in their original order.
func Filter(pubs []types.Publication, c Criteria) []types.Publication {
	q := strings.ToLower(strings.TrimSpace(c.Query))
	out := make([]types.Publication, 0, len(pubs))
	for _, p := range pubs {
		if matchText(p, q) && matchYear(p, c.Year) && matchTags(p, c.ActiveTags) {
			out = append(out, p)
		}
	}
	return out
}

// Matches reports whether a single publication satisfies c.
func Matches(p types.Publication, c Criteria) bool {
	q := strings.ToLower(strings.TrimSpace(c.Query))
	return matchText(p, q) && matchYear(p, c.Year) && matchTags(p, c.ActiveTags)
}

// matchText checks the lowercased query against each searchable field on
// its own; a match spanning two fields does not count.
func matchText(p types.Publication, q string) bool {
	if q == "" {
		return true
	}
	fields := [...]string{p.Title, p.Abstract, p.Venue, strings.Join(p.Authors, " ")}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

func matchYear(p types.Publication, y Year) bool {
	if y.IsAll() {
		return true
	}
	return p.Year == y.Value()
}

// matchTags applies AND semantics: every active tag must be present.
func matchTags(p types.Publication, active []string) bool {
	for _, t := range active {
		if !p.HasTag(t) {
			return false
		}
	}
	return true
}

// ToggleTag removes tag from active if present, otherwise appends it.
// The input slice is left untouched.
func ToggleTag(active []string, tag string) []string {
	out := make([]string, 0, len(active)+1)
	found := false
	for _, t := range active {
		if t == tag {
			found = true
			continue
		}
		out = append(out, t)
	}
	if !found {
		out = append(out, tag)
	}
	return out
}

// Years returns the distinct publication years, newest first.
func Years(pubs []types.Publication) []int {
	seen := make(map[int]bool)
	var years []int
	for _, p := range pubs {
		if !seen[p.Year] {
			seen[p.Year] = true
			years = append(years, p.Year)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}

// Tags returns the distinct tags across all publications in ascending
// lexicographic order.
func Tags(pubs []types.Publication) []string {
	seen := make(map[string]bool)
	var tags []string
	for _, p := range pubs {
		for _, t := range p.Tags {
			if !seen[t] {
				seen[t] = true
				tags = append(tags, t)
			}
		}
	}
	sort.Strings(tags)
	return tags
}
