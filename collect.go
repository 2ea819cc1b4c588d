package taskbench

import (
	"math"
	"sort"
)

// CollectStats folds a finished sample set into Stats. An empty set yields a
// zero-valued Stats carrying only the failure count, the degraded-but-success
// state the caller reports as "no timings collected".
func CollectStats(samples []float64, failed int) Stats {
	stat := Stats{FailedCount: failed}

	if len(samples) == 0 {
		return stat
	}

	min := math.Inf(1)
	max := math.Inf(-1)

	var sum float64 = 0

	for _, d := range samples {
		min = math.Min(min, d)
		max = math.Max(max, d)
		sum += d
	}

	stat.SampleCount = len(samples)
	stat.Sum = sum
	stat.Min = min
	stat.Max = max
	stat.Mean = sum / float64(len(samples))

	sorted := make([]float64, len(samples))
	copy(sorted, samples)
	sort.Float64s(sorted)

	if len(sorted) == 1 {
		// percentile needs two points to interpolate; a lone sample is
		// its own median and tail
		stat.Median = sorted[0]
		stat.P90 = sorted[0]
		stat.P95 = sorted[0]

		return stat
	}

	stat.Median = percentile(sorted, 50)
	stat.P90 = percentile(sorted, 90)
	stat.P95 = percentile(sorted, 95)

	return stat
}

const (
	maxPercentile        = 100
	minPercentile        = 0
	minPercentileDataLen = 2
)

func percentile(data []float64, p float64) float64 {
	if p < minPercentile {
		return math.NaN()
	}

	if p > maxPercentile {
		return math.NaN()
	}

	n := float64(len(data))

	if n < minPercentileDataLen {
		return math.NaN()
	}

	rank := (p/100)*(n-1) + 1
	ri := float64(int64(rank))
	rf := rank - ri
	i := int(ri) - 1

	return data[i] + rf*(data[i+1]-data[i])
}
