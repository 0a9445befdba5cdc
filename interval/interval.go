// Package interval extracts maximal runs of near-equally spaced items from an
// ordered sequence. Anything exposing a single spacing value can be segmented,
// which includes the groups produced from a previous round of segmentation.
package interval

import "fmt"

// Bearing is satisfied by anything with a single numeric spacing value.
type Bearing interface {
	Interval() float64
}

// IsFlat reports whether two spacing values are equal within marginOfError.
func IsFlat(a, b Bearing, marginOfError float64) bool {
	diff := a.Interval() - b.Interval()
	if diff < 0 {
		diff = -diff
	}
	return diff <= marginOfError
}

// ExtractFlatRun consumes one maximal flat run from items starting at cursor
// and returns the run together with the cursor position just past it.
//
// The item at the cursor is always consumed. The scan then extends the run
// while adjacent spacings stay within marginOfError. At a spacing change the
// transitional item belongs to the denser side: if spacing is about to widen
// the item is still pulled into the current run, if it narrows the item is
// left for the next run. A fully flat tail also absorbs the final item.
func ExtractFlatRun[T Bearing](items []T, cursor int, marginOfError float64) ([]T, int, error) {
	if len(items) == 0 {
		return nil, cursor, fmt.Errorf("cannot extract a run from an empty sequence")
	}
	if cursor < 0 || cursor >= len(items) {
		return nil, cursor, fmt.Errorf("cursor %v out of range for sequence of length %v", cursor, len(items))
	}

	run := []T{items[cursor]}
	cursor++

	for cursor < len(items)-1 {
		if !IsFlat(items[cursor], items[cursor+1], marginOfError) {
			if items[cursor+1].Interval() > items[cursor].Interval()+marginOfError {
				// Spacing widens here, so the boundary item still
				// belongs to the denser run being built.
				run = append(run, items[cursor])
				cursor++
			}
			return run, cursor, nil
		}
		run = append(run, items[cursor])
		cursor++
	}

	if len(items) > 2 && cursor < len(items) && IsFlat(items[len(items)-1], items[len(items)-2], marginOfError) {
		run = append(run, items[cursor])
		cursor++
	}

	return run, cursor, nil
}
