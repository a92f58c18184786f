package ui

// headerFooterRows is the fixed screen estate around the process list:
// title, memory summary, blank, column header, separator above; status
// line, footer hints, blank below.
const headerFooterRows = 8

// viewport computes the window of a long list that keeps the selection on
// screen. While the selection fits in the capacity, the list is pinned to
// the top; once it would scroll off, the selection becomes the last
// visible row. capacity is clamped to >= 0 first, so a degenerate terminal
// yields zero rows rather than a negative size.
func viewport(total, capacity, selected int) (start, visible int) {
	if capacity < 0 {
		capacity = 0
	}

	if selected >= capacity {
		start = selected - capacity + 1
	}

	visible = total - start
	if visible > capacity {
		visible = capacity
	}
	if visible < 0 {
		visible = 0
	}
	return start, visible
}
