// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pubfilter

import (
	"strings"

	"github.com/hbollon/go-edlib"
)

// minSuggestSimilarity is the lowest normalized Levenshtein similarity at
// which a known tag is offered as a correction.
const minSuggestSimilarity = 0.5

// SuggestTag returns the known tag closest to tag, compared case-insensitively,
// or "" when none is similar enough. An exact match returns itself.
func SuggestTag(tag string, known []string) string {
	want := strings.ToLower(strings.TrimSpace(tag))
	if want == "" {
		return ""
	}

	best := ""
	var bestScore float32
	for _, k := range known {
		score, err := edlib.StringsSimilarity(want, strings.ToLower(k), edlib.Levenshtein)
		if err != nil {
			continue
		}
		if score > bestScore {
			best, bestScore = k, score
		}
	}
	if bestScore < minSuggestSimilarity {
		return ""
	}
	return best
}

// UnknownTags returns the tags in active that are not in known, keeping
// their order.
func UnknownTags(active, known []string) []string {
	set := make(map[string]bool, len(known))
	for _, k := range known {
		set[k] = true
	}
	var out []string
	for _, t := range active {
		if !set[t] {
			out = append(out, t)
		}
	}
	return out
}
