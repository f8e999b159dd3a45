package vcs

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// DefaultBinary is the git executable looked up in PATH.
const DefaultBinary = "git"

// describeArgs lists the most recent reachable tag, without commit suffixes.
//
//nolint:gochecknoglobals // Read-only argument list.
var describeArgs = []string{"describe", "--tags", "--abbrev=0"}

// errEmptyTag is returned when git succeeds but prints nothing.
var errEmptyTag = errors.New("git returned an empty tag")

// Describer resolves the latest tag of a repository.
type Describer interface {
	LatestTag(ctx context.Context) (string, error)
}

// CommandError describes a git invocation that exited with a non-zero status.
type CommandError struct {
	// Args is the full command line.
	Args []string
	// Dir is the working directory the command ran in.
	Dir string
	// ExitCode is the process exit status.
	ExitCode int
	// Stderr is the trimmed standard error output.
	Stderr string

	err error
}

// Error implements error.
func (e *CommandError) Error() string {
	return fmt.Sprintf("%s exited with status %d: %s", strings.Join(e.Args, " "), e.ExitCode, e.Stderr)
}

// Unwrap returns the underlying *exec.ExitError.
func (e *CommandError) Unwrap() error {
	return e.err
}

// GitDescriber runs `git describe` in a fixed directory.
type GitDescriber struct {
	// Binary is the git executable, DefaultBinary when empty.
	Binary string
	// Dir is the working tree the tag is looked up in.
	Dir string
}

// NewGitDescriber creates a describer for the working tree at dir.
func NewGitDescriber(binary, dir string) *GitDescriber {
	if binary == "" {
		binary = DefaultBinary
	}

	return &GitDescriber{
		Binary: binary,
		Dir:    dir,
	}
}

// LatestTag returns the most recent tag reachable from HEAD in Dir.
// A non-zero exit status is reported as *CommandError.
func (g *GitDescriber) LatestTag(ctx context.Context) (string, error) {
	binary := g.Binary
	if binary == "" {
		binary = DefaultBinary
	}

	var stdout, stderr bytes.Buffer

	//nolint:gosec // The binary comes from the operator's configuration.
	cmd := exec.CommandContext(ctx, binary, describeArgs...)
	cmd.Dir = g.Dir
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", &CommandError{
				Args:     append([]string{binary}, describeArgs...),
				Dir:      g.Dir,
				ExitCode: exitErr.ExitCode(),
				Stderr:   strings.TrimSpace(stderr.String()),
				err:      err,
			}
		}

		return "", fmt.Errorf("run %s: %w", binary, err)
	}

	tag := strings.TrimSpace(stdout.String())
	if tag == "" {
		return "", errEmptyTag
	}

	return tag, nil
}
