package taskbench

import "fmt"

// Final report strings are part of the tool's output contract and must stay
// byte-for-byte stable.
const (
	meanMsg      = "Moyenne sur %d requêtes: %.6fs\n"
	noSamplesMsg = "Aucun temps collecté.\n"
)

// FormatReport renders the final mean-latency report over the samples that
// actually parsed, or the no-data message when none did.
func FormatReport(stat Stats) string {
	if stat.SampleCount == 0 {
		return noSamplesMsg
	}

	return fmt.Sprintf(meanMsg, stat.SampleCount, stat.Mean)
}

const statMsg = `#summary:
total_count: 	%d
sample_count:	%d
parse_failure:	%d
#durations:
sum:	%.6fs
min:	%.6fs
max:	%.6fs
mean:	%.6fs
median:	%.6fs
90th:	%.6fs
95th:	%.6fs
`

// FormatStat renders the verbose per-run breakdown.
func FormatStat(stat Stats) string {
	return fmt.Sprintf(
		statMsg,
		stat.SampleCount+stat.FailedCount,
		stat.SampleCount,
		stat.FailedCount,
		stat.Sum,
		stat.Min,
		stat.Max,
		stat.Mean,
		stat.Median,
		stat.P90,
		stat.P95,
	)
}
