package vcs

import (
	"context"
	"errors"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// gitRepo initializes a repository with a single empty commit and returns its path.
func gitRepo(t *testing.T) string {
	t.Helper()

	if _, err := exec.LookPath(DefaultBinary); err != nil {
		t.Skip("git is not installed")
	}

	dir := t.TempDir()
	runGit(t, dir, "init", "--quiet")
	runGit(t, dir, "commit", "--quiet", "--allow-empty", "-m", "init")

	return dir
}

// runGit runs git in dir with an isolated identity and fails the test on error.
func runGit(t *testing.T, dir string, args ...string) {
	t.Helper()

	base := []string{
		"-c", "user.name=docs",
		"-c", "user.email=docs@example.org",
		"-c", "commit.gpgsign=false",
		"-c", "tag.gpgsign=false",
	}

	cmd := exec.Command(DefaultBinary, append(base, args...)...)
	cmd.Dir = dir

	out, err := cmd.CombinedOutput()
	require.NoError(t, err, string(out))
}

// TestLatestTag_Lightweight reads a lightweight tag.
func TestLatestTag_Lightweight(t *testing.T) {
	t.Parallel()

	dir := gitRepo(t)
	runGit(t, dir, "tag", "v1.2.3")

	tag, err := NewGitDescriber("", dir).LatestTag(context.Background())
	require.NoError(t, err)
	require.Equal(t, "v1.2.3", tag)
}

// TestLatestTag_MostRecent picks the tag closest to HEAD without a commit suffix.
func TestLatestTag_MostRecent(t *testing.T) {
	t.Parallel()

	dir := gitRepo(t)
	runGit(t, dir, "tag", "-a", "v1.0.0", "-m", "first")
	runGit(t, dir, "commit", "--quiet", "--allow-empty", "-m", "second")
	runGit(t, dir, "tag", "-a", "v1.1.0-rc1", "-m", "second")
	runGit(t, dir, "commit", "--quiet", "--allow-empty", "-m", "third")

	tag, err := NewGitDescriber(DefaultBinary, dir).LatestTag(context.Background())
	require.NoError(t, err)
	require.Equal(t, "v1.1.0-rc1", tag)
}

// TestLatestTag_NoTags reports the exit status and stderr of git.
func TestLatestTag_NoTags(t *testing.T) {
	t.Parallel()

	dir := gitRepo(t)

	tag, err := NewGitDescriber("", dir).LatestTag(context.Background())
	require.Error(t, err)
	require.Empty(t, tag)

	var cmdErr *CommandError
	require.ErrorAs(t, err, &cmdErr)
	require.NotZero(t, cmdErr.ExitCode)
	require.NotEmpty(t, cmdErr.Stderr)
	require.Equal(t, dir, cmdErr.Dir)
	require.Equal(t, []string{"git", "describe", "--tags", "--abbrev=0"}, cmdErr.Args)
	require.Contains(t, cmdErr.Error(), "git describe --tags --abbrev=0 exited with status")

	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)
}

// TestLatestTag_MissingBinary wraps the lookup failure without a CommandError.
func TestLatestTag_MissingBinary(t *testing.T) {
	t.Parallel()

	_, err := NewGitDescriber("docs-version-no-such-git", t.TempDir()).LatestTag(context.Background())
	require.Error(t, err)

	var cmdErr *CommandError
	require.False(t, errors.As(err, &cmdErr))
	require.ErrorIs(t, err, exec.ErrNotFound)
}

// TestLatestTag_MissingDir fails before git starts.
func TestLatestTag_MissingDir(t *testing.T) {
	t.Parallel()

	if _, err := exec.LookPath(DefaultBinary); err != nil {
		t.Skip("git is not installed")
	}

	_, err := NewGitDescriber("", filepath.Join(t.TempDir(), "missing")).LatestTag(context.Background())
	require.Error(t, err)
}

// TestLatestTag_Canceled honors an already canceled context.
func TestLatestTag_Canceled(t *testing.T) {
	t.Parallel()

	if _, err := exec.LookPath(DefaultBinary); err != nil {
		t.Skip("git is not installed")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewGitDescriber("", t.TempDir()).LatestTag(ctx)
	require.Error(t, err)
}
