// Package timeparse turns human-entered duration strings like "1.25h" or
// "45m" into time.Duration values.
package timeparse

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidFormat is returned when the input is not a recognized duration.
var ErrInvalidFormat = errors.New("invalid duration format")

// Units lists the accepted unit suffixes, for help and prompt text.
const Units = "d, h, m, s"

var tokenRe = regexp.MustCompile(`^(\d+(?:\.\d+)?)(d|h|m|s)`)

var unitDurations = map[string]time.Duration{
	"d": 24 * time.Hour,
	"h": time.Hour,
	"m": time.Minute,
	"s": time.Second,
}

// Parse converts a duration string into a time.Duration. The empty string is
// valid and means zero ("now"). Tokens are value+unit pairs and may be
// compounded, e.g. "1h30m"; decimal values are accepted, e.g. "1.25h".
// Anything else returns ErrInvalidFormat. Negative durations cannot be
// expressed.
func Parse(input string) (time.Duration, error) {
	s := strings.TrimSpace(strings.ToLower(input))
	if s == "" {
		return 0, nil
	}

	var total time.Duration
	for len(s) > 0 {
		m := tokenRe.FindStringSubmatch(s)
		if m == nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, input)
		}
		value, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, input)
		}
		total += time.Duration(value * float64(unitDurations[m[2]]))
		s = strings.TrimSpace(s[len(m[0]):])
	}
	return total, nil
}
