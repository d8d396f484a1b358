// Package gitsrc obtains unified-diff text from an external git binary.
// The rest of the tool only consumes the text; diff computation itself
// is git's job.
package gitsrc

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
)

// Sentinel errors for diff retrieval failures.
var (
	// ErrGitNotFound indicates the git binary could not be located or started.
	ErrGitNotFound = errors.New("git executable not found")
	// ErrDiffFailed indicates git ran but exited non-zero.
	ErrDiffFailed = errors.New("git diff failed")
)

// DefaultBinary is the git executable resolved via PATH.
const DefaultBinary = "git"

// Source supplies unified-diff text for a revision pair.
type Source interface {
	Diff(ctx context.Context, from, to string) (string, error)
}

// CLI is a Source backed by a git subprocess.
type CLI struct {
	// Binary is the git executable to run. Empty means DefaultBinary.
	Binary string

	// Logger receives debug records for each invocation. Nil disables
	// logging.
	Logger *slog.Logger
}

// Diff runs `git diff <from> <to>` and returns its stdout as a string.
// Invalid output bytes degrade to the replacement character; the parser
// downstream tolerates them. The context bounds the subprocess.
func (c CLI) Diff(ctx context.Context, from, to string) (string, error) {
	binary := c.Binary
	if binary == "" {
		binary = DefaultBinary
	}

	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, binary, "diff", from, to)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	c.logDebug(ctx, "running git diff", "binary", binary, "from", from, "to", to)

	err := cmd.Run()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", fmt.Errorf("%w: %w", ErrDiffFailed, ctxErr)
		}

		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			msg := strings.TrimSpace(stderr.String())
			if msg == "" {
				msg = exitErr.String()
			}

			return "", fmt.Errorf("%w: %s", ErrDiffFailed, msg)
		}

		return "", fmt.Errorf("%w: %w", ErrGitNotFound, err)
	}

	c.logDebug(ctx, "git diff complete", "bytes", stdout.Len())

	return strings.ToValidUTF8(stdout.String(), "�"), nil
}

func (c CLI) logDebug(ctx context.Context, msg string, args ...any) {
	if c.Logger != nil {
		c.Logger.DebugContext(ctx, msg, args...)
	}
}
