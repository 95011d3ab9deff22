package board

import "strconv"

// Line is a straight run of board positions, exactly win_length long once
// built by Line or LinesThrough.
type Line []Position

// Line builds the win_length-long straight line starting at start and
// stepping by dir's delta, returning (line, true) iff every cell stays on
// the board.
func Line(start Position, dir Direction, winLength, size int) (Line, bool) {
	dr, dc := dir.Delta()
	row, col := start.Row, start.Col

	line := make(Line, 0, winLength)
	for i := 0; i < winLength; i++ {
		if row < 0 || row >= size || col < 0 || col >= size {
			return nil, false
		}
		line = append(line, Position{Row: row, Col: col})
		row += dr
		col += dc
	}
	return line, true
}

// key returns a canonical string identifying the line's exact cell sequence,
// for use as a map key during deduplication (Line is a slice and so is not
// itself comparable).
func (l Line) key() string {
	b := make([]byte, 0, len(l)*8)
	for _, p := range l {
		b = strconv.AppendInt(b, int64(p.Row), 10)
		b = append(b, ',')
		b = strconv.AppendInt(b, int64(p.Col), 10)
		b = append(b, ';')
	}
	return string(b)
}
