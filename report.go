package taskbench

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// RunReport is the JSON document written next to the console report.
type RunReport struct {
	GeneratedAt time.Time `json:"generated_at"`
	Target      string    `json:"target"`
	Requested   int       `json:"requested"`
	Sampled     int       `json:"sampled"`
	MeanS       float64   `json:"mean_s"`
	MinS        float64   `json:"min_s"`
	MaxS        float64   `json:"max_s"`
	MedianS     float64   `json:"median_s"`
	P90S        float64   `json:"p90_s"`
	P95S        float64   `json:"p95_s"`
}

func NewRunReport(target string, requested int, stat Stats) RunReport {
	return RunReport{
		GeneratedAt: time.Now().UTC(),
		Target:      target,
		Requested:   requested,
		Sampled:     stat.SampleCount,
		MeanS:       stat.Mean,
		MinS:        stat.Min,
		MaxS:        stat.Max,
		MedianS:     stat.Median,
		P90S:        stat.P90,
		P95S:        stat.P95,
	}
}

const reportFileMode = 0o644

// WriteReport serializes the report to path, indented.
func WriteReport(path string, report RunReport) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("could not marshal report: %w", err)
	}

	err = os.WriteFile(path, data, reportFileMode)
	if err != nil {
		return fmt.Errorf("could not write report: %w", err)
	}

	return nil
}
