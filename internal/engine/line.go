package engine

// mergeable reports whether two tiles combine. Numbers merge with equal
// Numbers below MaxNumber (the doubled value must stay inside the tile
// domain); Multipliers merge with equal Multipliers above -4. The two
// classes never merge with each other.
func mergeable(a, b int) bool {
	if a == 0 || a != b {
		return false
	}
	if a > 0 {
		return a < MaxNumber
	}
	return a > -MultiplierCap
}

// slideLine compacts a 4-cell line toward index 0, then merges adjacent
// mergeable pairs in a single left-to-right scan. A tile produced by a
// merge does not merge again within the same move, and the relative order
// of unmerged tiles is preserved.
// Returns the reduced line and the score gained: +2v for a Number merge,
// 2v (negative) for a Multiplier merge.
func slideLine(line [Size]int) (result [Size]int, delta int) {
	packed := make([]int, 0, Size)
	for _, v := range line {
		if v != 0 {
			packed = append(packed, v)
		}
	}

	write := 0
	for i := 0; i < len(packed); i++ {
		v := packed[i]
		if i+1 < len(packed) && mergeable(v, packed[i+1]) {
			v *= 2
			delta += v
			i++
		}
		result[write] = v
		write++
	}
	return result, delta
}

// reverseLine flips a line so the reducer's toward-index-0 motion can serve
// the opposite direction.
func reverseLine(line [Size]int) [Size]int {
	var out [Size]int
	for i := 0; i < Size; i++ {
		out[i] = line[Size-1-i]
	}
	return out
}
