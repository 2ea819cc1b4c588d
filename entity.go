package taskbench

// Trial is a single request attempt. At most one timing sample comes out of
// it; OK reports whether the diagnostic line carried one.
type Trial struct {
	Index    int
	Line     string
	Duration float64
	Status   int
	OK       bool
}

// Stats summarizes one sampling run. Durations are in seconds.
type Stats struct {
	SampleCount int
	FailedCount int
	Sum         float64
	Min         float64
	Max         float64
	Mean        float64
	Median      float64
	P90         float64
	P95         float64
}
