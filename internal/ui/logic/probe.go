package logic

import (
	"combogrip/internal/domain"
)

// NextFocusable walks from start in dir until focusable reports true.
//
// With wrap the index space is circular and the walk gives up after visiting
// every index once. Without wrap it gives up at either bound. Returns -1 when
// nothing is found or start is outside [0, length).
func NextFocusable(start, length int, dir domain.Direction, wrap bool, focusable func(int) bool) int {
	if length <= 0 || start < 0 || start >= length {
		return -1
	}

	step := dir.Step()
	index := start
	for visited := 0; visited < length; visited++ {
		if focusable(index) {
			return index
		}

		index += step
		if wrap {
			index = (index + length) % length
		} else if index < 0 || index >= length {
			return -1
		}
	}
	return -1
}
