// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export turns profile data into text for the user to copy or
// download: BibTeX and CSL citations for publications, and a Markdown
// profile document (the CV) for the whole profile.
package export

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/pdiddy/profile-site/pkg/types"
)

// entryType is the BibTeX entry type used for every publication.
const entryType = "article"

// ErrMalformedEntry reports text that is not a single BibTeX entry.
var ErrMalformedEntry = errors.New("malformed bibtex entry")

// ToBibTeX renders one publication as a BibTeX entry keyed by its ID.
// Fields appear in a fixed order (author, title, journal, year, doi) and
// doi is omitted when the publication has none. The result has no
// trailing newline.
func ToBibTeX(p types.Publication) string {
	fields := []string{
		field("author", bibAuthors(p.Authors)),
		field("title", p.Title),
		field("journal", p.Venue),
		field("year", strconv.Itoa(p.Year)),
	}
	if p.DOI != "" {
		fields = append(fields, field("doi", p.DOI))
	}
	return fmt.Sprintf("@%s{%s,\n%s\n}", entryType, p.ID, strings.Join(fields, ",\n"))
}

// ToBibTeXList renders publications as consecutive entries separated by a
// blank line, ending with a newline.
func ToBibTeXList(pubs []types.Publication) string {
	if len(pubs) == 0 {
		return ""
	}
	entries := make([]string, len(pubs))
	for i, p := range pubs {
		entries[i] = ToBibTeX(p)
	}
	return strings.Join(entries, "\n\n") + "\n"
}

// field writes one "key = {value}" line. Entries hold one field per
// line, so line breaks in the value are folded to spaces.
func field(key, value string) string {
	return fmt.Sprintf("  %s = {%s}", key, strings.Join(strings.Fields(value), " "))
}

// bibAuthors strips initials' periods and joins names with " and ".
func bibAuthors(authors []string) string {
	names := make([]string, len(authors))
	for i, a := range authors {
		names[i] = strings.ReplaceAll(a, ".", "")
	}
	return strings.Join(names, " and ")
}

// BibFilename returns the suggested download name for a publication's
// citation.
func BibFilename(p types.Publication) string {
	return p.ID + ".bib"
}
