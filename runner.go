package taskbench

import "strings"

// Run executes count sequential trials against target and folds the parsed
// timings into Stats. Each trial is attempted exactly once; a line that does
// not parse consumes its trial slot and contributes nothing. count <= 0 runs
// zero trials without calling request.
//
// progress receives every completed trial, parseable or not, in order.
func Run(count int, target string, request RequestFunc, progress func(t Trial)) Stats {
	samples := []float64{}
	failed := 0

	for i := 1; i <= count; i++ {
		line, _ := request(target)
		line = strings.TrimRight(line, " \t\r\n")

		t := Trial{Index: i, Line: line}
		// the pattern match is the sole membership criterion, even when
		// the invocation itself reported an error
		t.Duration, t.Status, t.OK = ParseDiagnostic(line)

		if progress != nil {
			progress(t)
		}

		if !t.OK {
			failed++

			continue
		}

		samples = append(samples, t.Duration)
	}

	return CollectStats(samples, failed)
}
