package history

import "strings"

// MessageFetcher fetches the full commit message for a SHA.
type MessageFetcher interface {
	FullMessage(sha string) (string, error)
}

// Expansion tracks which commit indices show their message body, and caches
// the derived body lines. Bodies are fetched lazily on first expansion and
// cached for the session; collapsing keeps the cache.
type Expansion struct {
	fetcher  MessageFetcher
	expanded map[int]bool
	bodies   map[int][]string
	sentinel string // body shown for commits with no text beyond the summary
}

// NewExpansion creates an empty Expansion store. sentinel is the single
// body line substituted when a commit message has no description.
func NewExpansion(fetcher MessageFetcher, sentinel string) *Expansion {
	return &Expansion{
		fetcher:  fetcher,
		expanded: make(map[int]bool),
		bodies:   make(map[int][]string),
		sentinel: sentinel,
	}
}

// Toggle flips the expansion state of index i, whose commit is identified
// by sha. Expanding fetches and caches the body lines on first use. A fetch
// failure leaves the index expanded with no body rows; the next expand
// retries the fetch.
func (e *Expansion) Toggle(i int, sha string) {
	if e.expanded[i] {
		delete(e.expanded, i)
		return
	}
	e.expanded[i] = true
	if _, ok := e.bodies[i]; ok {
		return
	}
	msg, err := e.fetcher.FullMessage(sha)
	if err != nil {
		return
	}
	e.bodies[i] = bodyLines(msg, e.sentinel)
}

// Collapse removes index i from the expanded set. The body cache is kept.
func (e *Expansion) Collapse(i int) {
	delete(e.expanded, i)
}

// Expanded reports whether index i is expanded.
func (e *Expansion) Expanded(i int) bool {
	return e.expanded[i]
}

// Height returns the display rows for index i: the summary row plus any
// cached body lines when expanded.
func (e *Expansion) Height(i int) int {
	if e.expanded[i] {
		return 1 + len(e.bodies[i])
	}
	return 1
}

// Body returns the cached body lines for index i when expanded, nil
// otherwise.
func (e *Expansion) Body(i int) []string {
	if !e.expanded[i] {
		return nil
	}
	return e.bodies[i]
}

// bodyLines derives display body lines from a full commit message: drop the
// summary line, drop leading blank lines, keep the rest. An empty remainder
// yields the sentinel line.
func bodyLines(msg, sentinel string) []string {
	lines := strings.Split(strings.TrimRight(msg, "\n"), "\n")
	if len(lines) > 0 {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	if len(lines) == 0 {
		return []string{sentinel}
	}
	return lines
}
