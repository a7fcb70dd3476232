// Package history holds the growing commit list and per-commit expansion
// state for the picker. Both structures have a single caller, the Bubble
// Tea update loop, so no locking is needed.
package history

import "github.com/smileynet/fixpick/internal/gitlog"

// Pager fetches ordered pages of commits from an underlying history.
type Pager interface {
	Page(skip, count int) ([]gitlog.Commit, error)
}

// List is an append-only commit list that grows by pulling pages from a
// Pager. Indices are stable: commits are never reordered or removed, and
// a fetched commit never changes.
type List struct {
	pager     Pager
	commits   []gitlog.Commit
	exhausted bool
}

// NewList creates an empty List backed by pager.
func NewList(pager Pager) *List {
	return &List{pager: pager}
}

// Grow appends up to n newly fetched commits. Receiving fewer than n marks
// the history as exhausted. A page-fetch failure acts like an empty page
// without marking exhaustion, so the session stays usable and a later Grow
// may retry.
func (l *List) Grow(n int) {
	if l.exhausted || n <= 0 {
		return
	}
	page, err := l.pager.Page(len(l.commits), n)
	if err != nil {
		return
	}
	l.commits = append(l.commits, page...)
	if len(page) < n {
		l.exhausted = true
	}
}

// EnsureCapacity grows the list by one page when fewer than pageSize
// commits are loaded past index. This keeps the list looking unbounded to
// the viewport for as long as the history has data.
func (l *List) EnsureCapacity(index, pageSize int) {
	if index+pageSize >= len(l.commits) {
		l.Grow(pageSize)
	}
}

// Len returns the number of loaded commits.
func (l *List) Len() int {
	return len(l.commits)
}

// At returns the commit at index i. Panics when out of range, matching
// slice semantics; callers index only within [0, Len()).
func (l *List) At(i int) gitlog.Commit {
	return l.commits[i]
}

// Exhausted reports whether the underlying history has no more commits.
func (l *List) Exhausted() bool {
	return l.exhausted
}
