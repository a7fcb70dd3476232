package picker

// Window is the per-frame result of fitting the commit list to the screen:
// a contiguous run of visible indices starting at the scroll offset, plus
// flags for the hidden-content indicator rows above and below.
type Window struct {
	Indices   []int
	MoreAbove bool
	MoreBelow bool
}

// Contains reports whether index i is visible in the window.
func (w Window) Contains(i int) bool {
	for _, v := range w.Indices {
		if v == i {
			return true
		}
	}
	return false
}

// Fit computes the visible window for a list of total items starting at
// scroll. heightFn returns the display rows for an index (the summary row
// plus any expanded body lines).
//
// Two passes: the first fits items into the budget minus the above-indicator
// row; if the list continues past what fit, the second pass reserves one more
// row for the below-indicator. The re-walk keeps the indicator from silently
// displacing the last fully-fitting item.
func Fit(total int, heightFn func(int) int, rowBudget, scroll int) Window {
	w := Window{MoreAbove: scroll > 0}
	base := rowBudget
	if w.MoreAbove {
		base--
	}
	first := walk(total, heightFn, base, scroll)
	if last := len(first) - 1; last >= 0 && first[last]+1 < total {
		w.Indices = walk(total, heightFn, base-1, scroll)
		w.MoreBelow = true
		return w
	}
	w.Indices = first
	return w
}

// walk collects indices from scroll upward until the next item's height
// would exceed budget.
func walk(total int, heightFn func(int) int, budget, scroll int) []int {
	var vis []int
	rows := 0
	for i := scroll; i < total; i++ {
		h := heightFn(i)
		if rows+h > budget {
			break
		}
		vis = append(vis, i)
		rows += h
	}
	return vis
}

// AdjustScroll returns the new scroll offset after the selection moved to
// selected. w must be the window that was on screen before the move.
//
// Scrolling up realigns exactly to the selection. Moving past the bottom
// advances scroll by one row, plus one extra at the 0→1 boundary to pay for
// the above-indicator row that appears there. The compensation assumes the
// indicator steals exactly one row per transition, which holds for
// single-row budget changes only.
func AdjustScroll(w Window, selected, scroll int) int {
	switch {
	case selected < scroll:
		return selected
	case !w.Contains(selected):
		next := scroll + 1
		if scroll == 0 {
			next++
		}
		return next
	default:
		return scroll
	}
}
