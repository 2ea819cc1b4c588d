package taskbench_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/LGVbtw/taskbench"
)

func TestCurlRequestToolNotFound(t *testing.T) {
	request, err := taskbench.CurlRequest("definitely-not-a-real-tool-xyz")
	if !errors.Is(err, taskbench.ErrToolNotFound) {
		t.Fatalf("expected %v but got %v", taskbench.ErrToolNotFound, err)
	}

	if request != nil {
		t.Fatal("expected no request func")
	}
}

func TestCurlRequestInvokesTool(t *testing.T) {
	// echo stands in for curl: it reproduces its arguments, so the
	// captured line carries the target and the literal format template,
	// which must not parse as a timing
	request, err := taskbench.CurlRequest("echo")
	if err != nil {
		t.Fatal(err)
	}

	line, err := request("http://example.test/api/tasks/")
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(line, "http://example.test/api/tasks/") {
		t.Fatalf("expected line to carry the target but got %q", line)
	}

	if _, _, ok := taskbench.ParseDiagnostic(line); ok {
		t.Fatalf("template line should not parse: %q", line)
	}
}

var diagLinePattern = regexp.MustCompile(`^GET \S+ -> code:\d+ total:\d+\.\d{6}s$`)

func TestHTTPRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	request := taskbench.HTTPRequest(2 * time.Second)

	line, err := request(srv.URL)
	if err != nil {
		t.Fatal(err)
	}

	if !diagLinePattern.MatchString(line) {
		t.Fatalf("unexpected diagnostic line %q", line)
	}

	duration, status, ok := taskbench.ParseDiagnostic(line)
	if !ok {
		t.Fatalf("line did not parse: %q", line)
	}

	if status != http.StatusOK {
		t.Fatalf("expected status 200 but got %d", status)
	}

	if duration < 0 {
		t.Fatalf("expected non-negative duration but got %v", duration)
	}
}

func TestHTTPRequestReportsStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "missing", http.StatusNotFound)
	}))
	defer srv.Close()

	request := taskbench.HTTPRequest(2 * time.Second)

	line, err := request(srv.URL)
	if err != nil {
		t.Fatal(err)
	}

	_, status, ok := taskbench.ParseDiagnostic(line)
	if !ok || status != http.StatusNotFound {
		t.Fatalf("expected parsed 404 line but got %q", line)
	}
}

func TestHTTPRequestError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	target := srv.URL
	srv.Close()

	request := taskbench.HTTPRequest(time.Second)

	line, err := request(target)
	if err == nil {
		t.Fatal("expected an error for an unreachable target")
	}

	if line != "" {
		t.Fatalf("expected no line but got %q", line)
	}
}
