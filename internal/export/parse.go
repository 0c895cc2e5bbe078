// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"fmt"
	"regexp"
	"strings"
)

// Entry is a parsed BibTeX entry.
type Entry struct {
	Type   string
	Key    string
	Fields map[string]string
	// Order lists field names as they appeared.
	Order []string
}

var (
	headerPattern = regexp.MustCompile(`^@([A-Za-z]+)\{([^,\s{}]+),$`)
	fieldPattern  = regexp.MustCompile(`^\s*([A-Za-z][A-Za-z0-9_-]*)\s*=\s*\{(.*)\}$`)
)

// ParseBibTeX parses a single entry in the layout ToBibTeX produces: a
// header line, one "key = {value}" field per line separated by commas, and
// a closing brace. Values may not contain newlines.
func ParseBibTeX(s string) (Entry, error) {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	if len(lines) < 2 {
		return Entry{}, fmt.Errorf("%w: too short", ErrMalformedEntry)
	}

	m := headerPattern.FindStringSubmatch(strings.TrimSpace(lines[0]))
	if m == nil {
		return Entry{}, fmt.Errorf("%w: bad header %q", ErrMalformedEntry, lines[0])
	}
	if strings.TrimSpace(lines[len(lines)-1]) != "}" {
		return Entry{}, fmt.Errorf("%w: missing closing brace", ErrMalformedEntry)
	}

	e := Entry{Type: strings.ToLower(m[1]), Key: m[2], Fields: make(map[string]string)}
	body := lines[1 : len(lines)-1]
	for i, line := range body {
		last := i == len(body)-1
		line = strings.TrimRight(line, " \t\r")
		if !last {
			if !strings.HasSuffix(line, ",") {
				return Entry{}, fmt.Errorf("%w: field %d not followed by a comma", ErrMalformedEntry, i+1)
			}
			line = strings.TrimSuffix(line, ",")
		}
		fm := fieldPattern.FindStringSubmatch(line)
		if fm == nil {
			return Entry{}, fmt.Errorf("%w: bad field %q", ErrMalformedEntry, line)
		}
		name := strings.ToLower(fm[1])
		if _, dup := e.Fields[name]; dup {
			return Entry{}, fmt.Errorf("%w: duplicate field %s", ErrMalformedEntry, name)
		}
		e.Fields[name] = fm[2]
		e.Order = append(e.Order, name)
	}
	return e, nil
}

// ParseBibTeXList parses entries separated by blank lines, as written by
// ToBibTeXList. It returns the entries read before the first malformed one
// together with that entry's error.
func ParseBibTeXList(s string) ([]Entry, error) {
	var entries []Entry
	for i, chunk := range strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n\n") {
		if strings.TrimSpace(chunk) == "" {
			continue
		}
		e, err := ParseBibTeX(chunk)
		if err != nil {
			return entries, fmt.Errorf("entry %d: %w", i+1, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
