// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parse

import (
	"regexp"
	"strings"
	"time"
)

// PubMed exports carry dates in a handful of shapes. Each pattern maps to
// the time layout used to parse it.
var dateFormats = []struct {
	pattern *regexp.Regexp
	layout  string
}{
	{regexp.MustCompile(`^\d{4} [A-Za-z]{3} \d{1,2}$`), "2006 Jan 2"},
	{regexp.MustCompile(`^\d{4} [A-Za-z]{3}$`), "2006 Jan"},
	{regexp.MustCompile(`^\d{4}$`), "2006"},
}

// rangeDate matches season-style ranges like "2023 Jan-Mar"; the first
// month stands in for the whole range.
var rangeDate = regexp.MustCompile(`^(\d{4}) ([A-Za-z]{3})-[A-Za-z]{3}$`)

// ParseDate resolves a raw publication date string to a time.Time through
// a cascade of accepted formats: full date, year+month, month range
// (first month wins), and bare year (resolved to January). The second
// return value reports whether the string was resolvable; a false result
// leaves the article usable for hotspot analysis but excluded from
// date-bucketed analyses.
func ParseDate(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}

	for _, f := range dateFormats {
		if !f.pattern.MatchString(s) {
			continue
		}
		if t, err := time.Parse(f.layout, s); err == nil {
			return t, true
		}
	}

	if m := rangeDate.FindStringSubmatch(s); m != nil {
		if t, err := time.Parse("2006 Jan", m[1]+" "+m[2]); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}
