package engine

// column extracts column c top-to-bottom as a line.
func column(b Board, c int) [Size]int {
	var col [Size]int
	for r := 0; r < Size; r++ {
		col[r] = b[r][c]
	}
	return col
}

// setColumn writes a line back into column c.
func setColumn(b *Board, c int, col [Size]int) {
	for r := 0; r < Size; r++ {
		b[r][c] = col[r]
	}
}

// SlideLeft slides every row toward column 0 and merges.
// Returns the new board, the score gained, and whether the board changed.
func SlideLeft(b Board) (Board, int, bool) {
	var next Board
	delta := 0
	changed := false

	for r := 0; r < Size; r++ {
		row, add := slideLine(b[r])
		next[r] = row
		delta += add
		if row != b[r] {
			changed = true
		}
	}
	return next, delta, changed
}

// SlideRight slides every row toward column 3: reverse, reduce, reverse back.
func SlideRight(b Board) (Board, int, bool) {
	var next Board
	delta := 0
	changed := false

	for r := 0; r < Size; r++ {
		row, add := slideLine(reverseLine(b[r]))
		next[r] = reverseLine(row)
		delta += add
		if next[r] != b[r] {
			changed = true
		}
	}
	return next, delta, changed
}

// SlideUp slides every column toward row 0 and merges.
func SlideUp(b Board) (Board, int, bool) {
	var next Board
	delta := 0
	changed := false

	for c := 0; c < Size; c++ {
		col := column(b, c)
		reduced, add := slideLine(col)
		setColumn(&next, c, reduced)
		delta += add
		if reduced != col {
			changed = true
		}
	}
	return next, delta, changed
}

// SlideDown slides every column toward row 3: reverse, reduce, reverse back.
func SlideDown(b Board) (Board, int, bool) {
	var next Board
	delta := 0
	changed := false

	for c := 0; c < Size; c++ {
		col := column(b, c)
		reduced, add := slideLine(reverseLine(col))
		reduced = reverseLine(reduced)
		setColumn(&next, c, reduced)
		delta += add
		if reduced != col {
			changed = true
		}
	}
	return next, delta, changed
}

// Slide performs a move in the given direction. It never mutates b: the
// caller's board is untouched regardless of outcome.
func Slide(b Board, dir Direction) (Board, int, bool) {
	switch dir {
	case DirDown:
		return SlideDown(b)
	case DirUp:
		return SlideUp(b)
	case DirLeft:
		return SlideLeft(b)
	case DirRight:
		return SlideRight(b)
	default:
		return b, 0, false
	}
}
