package schedule

// SpanCells returns how many consecutive grid cells of cellMinutes the entry
// covers, for rendering one merged block instead of one block per cell. A
// partial trailing cell counts as a whole one; the result is never below 1
// so even a malformed entry still occupies its start cell.
//
// Cell duration varies by grid grain (day/week grids commonly use 30 or 60
// minutes); the calculation is grain-agnostic.
func SpanCells(e Entry, cellMinutes int) int {
	if cellMinutes <= 0 {
		return 1
	}
	d := e.Duration()
	if d <= 0 {
		return 1
	}
	return (d + cellMinutes - 1) / cellMinutes
}
