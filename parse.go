package taskbench

import (
	"regexp"
	"strconv"
)

// Diagnostic line shape: GET <url> -> code:<status> total:<seconds>s
//
// Membership in the sample set hinges on the total token alone; the status is
// extracted when present but never required. The grammar is deliberately
// strict: a locale decimal comma or inserted whitespace fails the match and
// the trial is dropped.
var (
	totalPattern  = regexp.MustCompile(`total:([0-9]+(?:\.[0-9]+)?)s`)
	statusPattern = regexp.MustCompile(`code:([0-9]+)`)
)

// ParseDiagnostic extracts the elapsed duration in seconds and the HTTP
// status from a trial's diagnostic line. ok reports whether the line carried
// a parseable "total:<seconds>s" token.
func ParseDiagnostic(line string) (duration float64, status int, ok bool) {
	m := totalPattern.FindStringSubmatch(line)
	if m == nil {
		return 0, 0, false
	}

	duration, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, 0, false
	}

	if s := statusPattern.FindStringSubmatch(line); s != nil {
		status, _ = strconv.Atoi(s[1])
	}

	return duration, status, true
}
