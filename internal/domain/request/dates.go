package request

import (
	"errors"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

var ErrUnparseableDates = errors.New("unparseable shoot dates descriptor")

// Layouts accepted for the human-entered shoot dates field. The field is free
// text in the intake form, so parsing is best effort; callers must treat a
// parse failure as "skip", never as fatal.
var dateLayouts = []string{
	"2006-01-02",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"01/02/2006",
}

// Spaced separators only: a bare hyphen is ambiguous with ISO dates.
var spacedRangeSep = regexp.MustCompile(`\s+(?:-|–|to|through)\s+`)

var dayYearOnly = regexp.MustCompile(`^(\d{1,2}),?\s+(\d{4})$`)

// ParseEndDate derives a request's shoot end date from its descriptor. For a
// range ("Mar 3 - Mar 5, 2026", "2026-03-03 to 2026-03-05") the last segment
// wins; a single date is its own end date.
func ParseEndDate(descriptor string) (time.Time, error) {
	trimmed := strings.TrimSpace(descriptor)
	if trimmed == "" {
		return time.Time{}, ErrUnparseableDates
	}

	if t, ok := parseSingle(trimmed); ok {
		return t, nil
	}

	segments := spacedRangeSep.Split(trimmed, -1)
	last := strings.TrimSpace(segments[len(segments)-1])
	if t, ok := parseSingle(last); ok {
		return t, nil
	}

	// "Mar 3-5, 2026": the trailing part carries only day and year, the month
	// lives on the leading part.
	if idx := strings.LastIndexAny(trimmed, "-–"); idx > 0 {
		// The en-dash is multi-byte: slice past the whole separator rune.
		_, sepLen := utf8.DecodeRuneInString(trimmed[idx:])
		tail := strings.TrimSpace(trimmed[idx+sepLen:])
		if m := dayYearOnly.FindStringSubmatch(tail); m != nil {
			head := strings.Fields(strings.TrimSpace(trimmed[:idx]))
			if len(head) > 0 {
				if t, ok := parseSingle(head[0] + " " + m[1] + ", " + m[2]); ok {
					return t, nil
				}
			}
		}
	}

	return time.Time{}, ErrUnparseableDates
}

func parseSingle(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
