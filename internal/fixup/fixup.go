// Package fixup creates fixup commits by invoking the git CLI.
package fixup

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// ErrFixupFailed reports a non-zero exit from git commit --fixup.
var ErrFixupFailed = errors.New("fixup: git commit --fixup failed")

// Runner creates fixup commits in a fixed repository directory.
type Runner struct {
	// Dir is the working directory for git commands.
	Dir string
}

// NewRunner creates a Runner for the repository at dir.
func NewRunner(dir string) *Runner {
	return &Runner{Dir: dir}
}

// Apply runs git commit --fixup sha. Stdio is inherited so hook output and
// prompts stay visible to the user; the picker has released the terminal by
// the time this runs.
func (r *Runner) Apply(ctx context.Context, sha string) error {
	cmd := exec.CommandContext(ctx, "git", "commit", "--fixup", sha)
	cmd.Dir = r.Dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%w: %v", ErrFixupFailed, err)
	}
	return nil
}
