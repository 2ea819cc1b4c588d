package taskbench_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/LGVbtw/taskbench"
)

func TestWriteReport(t *testing.T) {
	stat := taskbench.CollectStats([]float64{0.1, 0.2}, 1)
	report := taskbench.NewRunReport("http://example.test/api/tasks/", 3, stat)

	path := filepath.Join(t.TempDir(), "report.json")

	if err := taskbench.WriteReport(path, report); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	loaded := taskbench.RunReport{}
	if err := json.Unmarshal(data, &loaded); err != nil {
		t.Fatal(err)
	}

	if loaded.Target != report.Target {
		t.Fatalf("expected target %q but got %q", report.Target, loaded.Target)
	}

	if loaded.Requested != 3 || loaded.Sampled != 2 {
		t.Fatalf("unexpected counts in %+v", loaded)
	}

	if loaded.MeanS != report.MeanS {
		t.Fatalf("expected mean %v but got %v", report.MeanS, loaded.MeanS)
	}
}

func TestWriteReportBadPath(t *testing.T) {
	report := taskbench.NewRunReport("http://t/", 0, taskbench.Stats{})

	err := taskbench.WriteReport(filepath.Join(t.TempDir(), "missing", "report.json"), report)
	if err == nil {
		t.Fatal("expected an error for an unwritable path")
	}
}
