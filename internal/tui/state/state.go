package state

import "fmt"

func ClampCursor(cursor, size int) int {
	if size <= 0 {
		return 0
	}
	if cursor >= size {
		return size - 1
	}
	if cursor < 0 {
		return 0
	}
	return cursor
}

// PageStep is the number of list rows a page jump moves, given the terminal
// height and whether the status line takes space.
func PageStep(height int, hasStatus bool) int {
	if height <= 0 {
		return 10
	}
	chromeLines := 4
	if hasStatus {
		chromeLines++
	}
	step := height - chromeLines
	if step < 3 {
		step = 3
	}
	return step
}

func ListHeight(height int, hasStatus bool) int {
	if height <= 0 {
		return 0
	}
	rows := height - 4
	if hasStatus {
		rows--
	}
	if rows < 1 {
		rows = 1
	}
	return rows
}

func CenteredWindow(totalRows, cursor, height int) (int, int) {
	if totalRows <= 0 {
		return 0, 0
	}
	if height <= 0 || totalRows <= height {
		return 0, totalRows
	}
	cursor = ClampCursor(cursor, totalRows)
	start := cursor - height/2
	if start < 0 {
		start = 0
	}
	maxStart := totalRows - height
	if start > maxStart {
		start = maxStart
	}
	return start, start + height
}

func Position(cursor, total int) string {
	if total <= 0 {
		return "0/0"
	}
	return fmt.Sprintf("%d/%d", ClampCursor(cursor, total)+1, total)
}
