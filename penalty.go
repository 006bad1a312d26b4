package qrcode

// maskFuncs implements the eight mask patterns of spec.md §4.6 step 3,
// indexed by mask number; each reports whether (y, x) is inverted.
var maskFuncs = [8]func(y, x int) bool{
	func(y, x int) bool { return (y+x)%2 == 0 },
	func(y, x int) bool { return y%2 == 0 },
	func(y, x int) bool { return x%3 == 0 },
	func(y, x int) bool { return (y+x)%3 == 0 },
	func(y, x int) bool { return (y/2+x/3)%2 == 0 },
	func(y, x int) bool { return (y*x)%2+(y*x)%3 == 0 },
	func(y, x int) bool { return ((y*x)%2+(y*x)%3)%2 == 0 },
	func(y, x int) bool { return ((y+x)%2+(y*x)%3)%2 == 0 },
}

// chooseMaskPattern builds the matrix under each of the 8 masks and
// returns the one with the lowest total penalty (spec.md §4.7), ties
// broken by the lowest index since masks are scored in ascending order
// and only a strictly lower penalty replaces the incumbent.
func chooseMaskPattern(bits *Bits, level Level, v Version) (int, *ByteMatrix) {
	best := -1
	bestPenalty := 0
	var bestMatrix *ByteMatrix
	for mask := 0; mask < 8; mask++ {
		m := newByteMatrix(v.Dimension())
		embedFunctionPatterns(v, m)
		embedFormatInfo(level, mask, m)
		if v >= 7 {
			embedVersionInfo(v, m)
		}
		placeData(bits, mask, m)

		p := totalPenalty(m)
		if best == -1 || p < bestPenalty {
			best = mask
			bestPenalty = p
			bestMatrix = m
		}
	}
	return best, bestMatrix
}

func totalPenalty(m *ByteMatrix) int {
	return penaltyRule1(m) + penaltyRule2(m) + penaltyRule3(m) + penaltyRule4(m)
}

// penaltyRule1 penalizes runs of 5 or more same-colored modules in
// every row and every column: each run of length L adds L-2.
func penaltyRule1(m *ByteMatrix) int {
	return runPenalty(m, true) + runPenalty(m, false)
}

func runPenalty(m *ByteMatrix, horizontal bool) int {
	dim := m.dim
	penalty := 0
	for i := 0; i < dim; i++ {
		run := 1
		prev := -1
		for j := 0; j < dim; j++ {
			var v int
			if horizontal {
				v = m.Get(j, i)
			} else {
				v = m.Get(i, j)
			}
			if v == prev {
				run++
				continue
			}
			if run >= 5 {
				penalty += run - 2
			}
			run = 1
			prev = v
		}
		if run >= 5 {
			penalty += run - 2
		}
	}
	return penalty
}

// penaltyRule2 penalizes every (possibly overlapping) 2×2 block of
// identically colored modules with 3 points.
func penaltyRule2(m *ByteMatrix) int {
	penalty := 0
	dim := m.dim
	for y := 0; y < dim-1; y++ {
		for x := 0; x < dim-1; x++ {
			v := m.Get(x, y)
			if v == m.Get(x+1, y) && v == m.Get(x, y+1) && v == m.Get(x+1, y+1) {
				penalty += 3
			}
		}
	}
	return penalty
}

// penaltyRule3 penalizes the 1:1:3:1:1 finder-like pattern
// (10111010000, or its reverse) found in any row or column: 40 per
// occurrence.
func penaltyRule3(m *ByteMatrix) int {
	penalty := 0
	dim := m.dim
	for y := 0; y < dim; y++ {
		for x := 0; x < dim; x++ {
			if x+6 < dim && isFinderLike(m, x, y, 1, 0) {
				penalty += 40
			}
			if y+6 < dim && isFinderLike(m, x, y, 0, 1) {
				penalty += 40
			}
		}
	}
	return penalty
}

func isFinderLike(m *ByteMatrix, x, y, dx, dy int) bool {
	at := func(k int) int { return m.Get(x+dx*k, y+dy*k) }
	if !(at(0) == 1 && at(1) == 0 && at(2) == 1 && at(3) == 1 && at(4) == 1 && at(5) == 0 && at(6) == 1) {
		return false
	}
	dim := m.dim
	leadingWhite := x+dx*10 < dim && y+dy*10 < dim &&
		at(7) == 0 && at(8) == 0 && at(9) == 0 && at(10) == 0
	trailingWhite := x-dx*4 >= 0 && y-dy*4 >= 0 &&
		m.Get(x-dx*1, y-dy*1) == 0 && m.Get(x-dx*2, y-dy*2) == 0 &&
		m.Get(x-dx*3, y-dy*3) == 0 && m.Get(x-dx*4, y-dy*4) == 0
	return leadingWhite || trailingWhite
}

// penaltyRule4 penalizes deviation of the dark-module ratio from 50%:
// ⌊|darkPercent-50|/5⌋ × 10, computed with a single truncating division
// rather than rounding to a percentage first and truncating again. The
// two-truncation form (percentage, then /5) loses information that can
// flip which of two candidate masks scores lower (teacher's `bal`-ratio
// fold; ZXing's and nayuki's equivalent single-division formulas).
func penaltyRule4(m *ByteMatrix) int {
	dim := m.dim
	dark := 0
	total := dim * dim
	for y := 0; y < dim; y++ {
		for x := 0; x < dim; x++ {
			if m.Get(x, y) == 1 {
				dark++
			}
		}
	}
	diff := dark*2 - total
	if diff < 0 {
		diff = -diff
	}
	return (diff * 10 / total) * 10
}
