package backend

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Command runs an external extractor program once per request, passing the
// URL as the last argument. Standard output is the document; on a non-zero
// exit, standard error is the error text.
type Command struct {
	Path string
	Args []string
}

// NewCommand returns a Command from an argv-style slice.
func NewCommand(argv []string) (*Command, error) {
	if len(argv) == 0 || strings.TrimSpace(argv[0]) == "" {
		return nil, errors.New("extractor command is empty")
	}
	return &Command{Path: argv[0], Args: append([]string(nil), argv[1:]...)}, nil
}

func (c *Command) ExtractWebsiteStyles(ctx context.Context, url string) (string, error) {
	args := append(append([]string(nil), c.Args...), url)
	cmd := exec.CommandContext(ctx, c.Path, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", errors.New(msg)
		}
		return "", fmt.Errorf("run %s: %w", c.Path, err)
	}

	return stdout.String(), nil
}
