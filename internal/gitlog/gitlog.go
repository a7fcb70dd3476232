// Package gitlog reads commit history from the git CLI for the picker.
package gitlog

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// Sentinel errors for caller-checkable conditions.
var (
	ErrGitNotFound = errors.New("gitlog: git not found on PATH")
	ErrNotRepo     = errors.New("gitlog: not a git repository")
)

// Field and record separators used in the git log format string. Neither
// byte can appear in a commit summary, so splitting on them is unambiguous.
const (
	fieldSep  = "\x1f"
	recordSep = "\x1e"
)

// Commit is one entry in the browsable history.
type Commit struct {
	SHA     string // abbreviated hash, stable identifier
	Summary string // first line of the commit message
}

// Client reads commit history by running git in a fixed directory.
type Client struct {
	// Dir is the working directory for git commands.
	Dir string

	// run executes one git invocation and returns its stdout.
	// Replaceable in tests.
	run func(dir string, args ...string) ([]byte, error)
}

// NewClient creates a Client that runs git in the given directory.
func NewClient(dir string) *Client {
	return &Client{Dir: dir, run: runGit}
}

func runGit(dir string, args ...string) ([]byte, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	return cmd.Output()
}

// Check verifies that git is on PATH and Dir is inside a git repository.
func (c *Client) Check() error {
	if _, err := exec.LookPath("git"); err != nil {
		return ErrGitNotFound
	}
	if _, err := c.run(c.Dir, "rev-parse", "--git-dir"); err != nil {
		return fmt.Errorf("%w: %s", ErrNotRepo, c.Dir)
	}
	return nil
}

// Page returns up to count commits starting skip entries below HEAD, in
// git log order. Fewer than count (or none) means the history is exhausted.
func (c *Client) Page(skip, count int) ([]Commit, error) {
	if count <= 0 {
		return nil, nil
	}
	out, err := c.run(c.Dir,
		"log",
		"--skip="+strconv.Itoa(skip),
		"-n", strconv.Itoa(count),
		"--format=%h"+fieldSep+"%s"+recordSep,
	)
	if err != nil {
		return nil, fmt.Errorf("gitlog: listing commits: %w", err)
	}
	return parsePage(out), nil
}

// FullMessage returns the complete commit message for sha.
func (c *Client) FullMessage(sha string) (string, error) {
	out, err := c.run(c.Dir, "log", "-1", "--format=%B", sha)
	if err != nil {
		return "", fmt.Errorf("gitlog: message for %s: %w", sha, err)
	}
	return string(out), nil
}

// parsePage splits raw git log output into commits. Records missing the
// field separator (malformed or empty) are skipped.
func parsePage(out []byte) []Commit {
	var commits []Commit
	for _, rec := range bytes.Split(out, []byte(recordSep)) {
		// git emits a newline between records; strip it along with
		// any trailing whitespace.
		sha, summary, ok := strings.Cut(strings.TrimSpace(string(rec)), fieldSep)
		if !ok || sha == "" {
			continue
		}
		commits = append(commits, Commit{SHA: sha, Summary: summary})
	}
	return commits
}
