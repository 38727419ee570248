package engine

import (
	"github.com/NSoiffer/MathCAT-sub001/cells"
)

// truncate strips trailing cells which denote an incomplete structure, and
// trailing blanks. It reports false if no truncation cell was stripped or
// nothing would remain.
func truncate(d *Dialect, input []rune) ([]rune, bool) {
	end, stripped := len(input), false
	for end > 0 {
		cell := input[end-1]
		if isTruncatable(d, cell) {
			stripped = true
		} else if !cells.IsBlank(cell) {
			break
		}
		end--
	}
	if !stripped {
		return input, false
	}
	for _, cell := range input[:end] {
		if !cells.IsBlank(cell) {
			return input[:end], true
		}
	}
	return input, false
}

func isTruncatable(d *Dialect, cell rune) bool {
	for _, c := range d.Truncation {
		if c == cell {
			return true
		}
	}
	return false
}
