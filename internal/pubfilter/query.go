// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pubfilter

import (
	"fmt"
	"net/url"
	"strings"
)

// Query parameter names used by the page's filter controls.
const (
	ParamQuery = "q"
	ParamYear  = "year"
	ParamTag   = "tag"
)

// FromQuery builds criteria from request parameters: q, year, and a
// repeated tag. Values that fail to parse are left at their defaults and
// described in the returned ignored list. Empty and repeated tags are
// dropped silently.
func FromQuery(v url.Values) (Criteria, []string) {
	var c Criteria
	var ignored []string

	c.Query = v.Get(ParamQuery)

	if raw := v.Get(ParamYear); raw != "" {
		y, err := ParseYear(raw)
		if err != nil {
			ignored = append(ignored, err.Error())
		} else {
			c.Year = y
		}
	}

	seen := make(map[string]bool)
	for _, t := range v[ParamTag] {
		t = strings.TrimSpace(t)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		c.ActiveTags = append(c.ActiveTags, t)
	}

	return c, ignored
}

// Values is the inverse of FromQuery. Default fields are omitted.
func (c Criteria) Values() url.Values {
	v := url.Values{}
	if q := strings.TrimSpace(c.Query); q != "" {
		v.Set(ParamQuery, c.Query)
	}
	if !c.Year.IsAll() {
		v.Set(ParamYear, c.Year.String())
	}
	for _, t := range c.ActiveTags {
		v.Add(ParamTag, t)
	}
	return v
}

// Encode returns the criteria as a URL query string without the leading
// "?". Default criteria encode to "".
func (c Criteria) Encode() string {
	return c.Values().Encode()
}

// String describes the criteria for logs and CLI summaries.
func (c Criteria) String() string {
	return fmt.Sprintf("query=%q year=%s tags=%v", strings.TrimSpace(c.Query), c.Year, c.ActiveTags)
}
