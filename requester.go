package taskbench

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os/exec"
	"time"
)

var ErrToolNotFound = errors.New("request tool not found")

// RequestFunc is the request-issuing capability: one GET against target,
// returning the diagnostic line its backend produced. The sampler only
// depends on the line, not on how it was made.
type RequestFunc func(target string) (string, error)

// CurlRequest builds a RequestFunc backed by an external curl-compatible
// tool. The tool is resolved on PATH up front; an unresolvable tool is the
// one fatal precondition of a run.
func CurlRequest(tool string) (RequestFunc, error) {
	path, err := exec.LookPath(tool)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrToolNotFound, tool)
	}

	return func(target string) (string, error) {
		format := fmt.Sprintf("GET %s -> code:%%{http_code} total:%%{time_total}s", target)

		out, err := exec.Command(path, "-s", "-o", "/dev/null", "-w", format, target).Output()
		if err != nil {
			return string(out), fmt.Errorf("could not invoke %s: %w", tool, err)
		}

		return string(out), nil
	}, nil
}

// HTTPRequest builds a RequestFunc backed by the stdlib client, producing
// the same diagnostic line as the curl backend. The client timeout is the
// only bound on a trial; the sampler itself never enforces one.
func HTTPRequest(timeout time.Duration) RequestFunc {
	client := &http.Client{Timeout: timeout}

	return func(target string) (string, error) {
		start := time.Now()

		resp, err := client.Get(target)
		if err != nil {
			return "", fmt.Errorf("request failed: %w", err)
		}

		// drain before reading the clock so the elapsed time covers
		// the full transfer, like curl's time_total
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()

		elapsed := time.Since(start)

		return fmt.Sprintf("GET %s -> code:%d total:%.6fs", target, resp.StatusCode, elapsed.Seconds()), nil
	}
}
