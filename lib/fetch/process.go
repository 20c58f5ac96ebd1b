package fetch

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// ProcessFetcher shells out to an external HTTP client and captures
// its stdout. It exists as a fallback for environments where direct
// HTTP is blocked or the in-process client keeps getting challenged.
type ProcessFetcher struct {
	// Binary is the client executable, "curl" when empty.
	Binary string
}

func (f ProcessFetcher) Fetch(ctx context.Context, url string) (string, error) {
	binary := f.Binary
	if binary == "" {
		binary = "curl"
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, binary, "-s", url)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return "", fmt.Errorf("%s: %w: %s", binary, err, msg)
		}
		return "", fmt.Errorf("%s: %w", binary, err)
	}
	if stdout.Len() == 0 {
		return "", fmt.Errorf("%s: empty response for %s", binary, url)
	}

	return stdout.String(), nil
}
