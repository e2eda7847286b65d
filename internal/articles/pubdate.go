package articles

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Publication dates come in a date-and-time or a date-only form.
var pubdateLayouts = []string{"2006-01-02 15:04", "2006-01-02"}

// ErrDateInvalid flags a publication date in neither accepted form.
var ErrDateInvalid = errors.New("articles: publication date is invalid")

// ParsePubdate interprets value in the given location, trying the
// date-and-time layout first and the date-only layout second. The feed
// assembler shares this parser so index and feed timestamps always agree.
func ParsePubdate(value string, loc *time.Location) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, fmt.Errorf("%w: empty value", ErrDateInvalid)
	}
	if loc == nil {
		loc = time.UTC
	}
	for _, layout := range pubdateLayouts {
		if when, err := time.ParseInLocation(layout, trimmed, loc); err == nil {
			return when, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrDateInvalid, value)
}
