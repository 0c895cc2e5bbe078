// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pubfilter

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// AllYears is the label of the no-year-filter sentinel.
const AllYears = "All"

// ErrInvalidYear reports a year selector value that is neither "All" nor a
// positive integer.
var ErrInvalidYear = errors.New("invalid year")

// Year is either the All sentinel (the zero value) or a specific year.
type Year struct {
	v int
}

// YearOf returns a Year selecting n. Non-positive n selects all years.
func YearOf(n int) Year {
	if n <= 0 {
		return Year{}
	}
	return Year{v: n}
}

// IsAll reports whether y is the All sentinel.
func (y Year) IsAll() bool { return y.v == 0 }

// Value returns the selected year, or 0 for All.
func (y Year) Value() int { return y.v }

// String returns "All" or the decimal year.
func (y Year) String() string {
	if y.IsAll() {
		return AllYears
	}
	return strconv.Itoa(y.v)
}

// ParseYear converts a selector value into a Year. Empty input and "All"
// (any case) select all years; a string of decimal digits with a positive
// value selects that year. Anything else returns ErrInvalidYear, and the
// caller should keep its current selection.
func ParseYear(s string) (Year, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, AllYears) {
		return Year{}, nil
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return Year{}, fmt.Errorf("%w: %q", ErrInvalidYear, s)
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return Year{}, fmt.Errorf("%w: %q", ErrInvalidYear, s)
	}
	return Year{v: n}, nil
}
