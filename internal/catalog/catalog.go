// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog loads the static profile data set. A default profile is
// embedded in the binary; an alternate YAML file with the same schema can
// replace it. Loading validates the publication invariants so the filter
// and export stages can treat their input as well formed.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/profile-site/pkg/types"
)

//go:embed profile.yaml
var defaultProfile []byte

var (
	// ErrDuplicateID reports two publications sharing a citation key.
	ErrDuplicateID = errors.New("duplicate publication id")

	// ErrInvalidPublication reports a publication with a missing or
	// malformed key or a missing year.
	ErrInvalidPublication = errors.New("invalid publication")
)

// idPattern is the citation-key character set. Keys become BibTeX entry
// keys, URL path segments and file names, so separators are excluded.
var idPattern = regexp.MustCompile(`^[A-Za-z0-9_:.-]+$`)

// Default returns the embedded profile.
func Default() (*types.Profile, error) {
	p, err := Parse(defaultProfile)
	if err != nil {
		return nil, fmt.Errorf("embedded profile: %w", err)
	}
	return p, nil
}

// Load reads a profile from path. An empty path selects the embedded
// default profile.
func Load(path string) (*types.Profile, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profile: %w", err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("profile %s: %w", path, err)
	}
	return p, nil
}

// Parse decodes and validates a YAML profile document.
func Parse(data []byte) (*types.Profile, error) {
	var p types.Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing profile: %w", err)
	}
	normalize(&p)
	if err := Validate(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// normalize folds line breaks and runs of whitespace in the single-line
// publication fields, as YAML block scalars introduce them.
func normalize(p *types.Profile) {
	for i := range p.Publications {
		pub := &p.Publications[i]
		pub.Title = oneLine(pub.Title)
		pub.Venue = oneLine(pub.Venue)
		pub.DOI = oneLine(pub.DOI)
		for j, a := range pub.Authors {
			pub.Authors[j] = oneLine(a)
		}
	}
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Validate checks that every publication has a well-formed key and a
// positive year, that keys are unique, and that title, venue and DOI fit
// on one line.
func Validate(p *types.Profile) error {
	seen := make(map[string]int, len(p.Publications))
	for i, pub := range p.Publications {
		if pub.ID == "" {
			return fmt.Errorf("%w: publication %d has no id", ErrInvalidPublication, i)
		}
		if !idPattern.MatchString(pub.ID) {
			return fmt.Errorf("%w: id %q may only contain letters, digits and _:.-", ErrInvalidPublication, pub.ID)
		}
		for name, v := range map[string]string{"title": pub.Title, "venue": pub.Venue, "doi": pub.DOI} {
			if strings.ContainsAny(v, "\r\n") {
				return fmt.Errorf("%w: %s has a multi-line %s", ErrInvalidPublication, pub.ID, name)
			}
		}
		if pub.Year <= 0 {
			return fmt.Errorf("%w: %s has year %d", ErrInvalidPublication, pub.ID, pub.Year)
		}
		if j, ok := seen[pub.ID]; ok {
			return fmt.Errorf("%w: %s at positions %d and %d", ErrDuplicateID, pub.ID, j, i)
		}
		seen[pub.ID] = i
	}
	return nil
}

// Write saves a profile as YAML, e.g. to seed a custom data file from the
// embedded default.
func Write(path string, p *types.Profile) error {
	if err := Validate(p); err != nil {
		return err
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshaling profile: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
