package qrcode

// ByteMatrix is the D×D module grid produced by the matrix builder.
// Cells hold -1 (unset), 0 (light) or 1 (dark); -1 only ever appears
// in an in-progress matrix, distinguishing "data slot not yet written"
// from a function module that has already been set.
type ByteMatrix struct {
	dim        int
	cell       [][]int8
	isFunction [][]bool
}

func newByteMatrix(dim int) *ByteMatrix {
	m := &ByteMatrix{
		dim:        dim,
		cell:       make([][]int8, dim),
		isFunction: make([][]bool, dim),
	}
	for y := range m.cell {
		m.cell[y] = make([]int8, dim)
		m.isFunction[y] = make([]bool, dim)
		for x := range m.cell[y] {
			m.cell[y][x] = -1
		}
	}
	return m
}

// Get returns the value at (x, y): -1, 0 or 1.
func (m *ByteMatrix) Get(x, y int) int { return int(m.cell[y][x]) }

func (m *ByteMatrix) set(x, y int, v int) {
	m.cell[y][x] = int8(v)
}

func (m *ByteMatrix) setFunction(x, y int, v int) {
	m.cell[y][x] = int8(v)
	m.isFunction[y][x] = true
}

func (m *ByteMatrix) Dimension() int { return m.dim }

// positionDetectionPattern is the 7×7 finder pattern.
var positionDetectionPattern = [7][7]int{
	{1, 1, 1, 1, 1, 1, 1},
	{1, 0, 0, 0, 0, 0, 1},
	{1, 0, 1, 1, 1, 0, 1},
	{1, 0, 1, 1, 1, 0, 1},
	{1, 0, 1, 1, 1, 0, 1},
	{1, 0, 0, 0, 0, 0, 1},
	{1, 1, 1, 1, 1, 1, 1},
}

// positionAdjustmentPattern is the 5×5 alignment pattern.
var positionAdjustmentPattern = [5][5]int{
	{1, 1, 1, 1, 1},
	{1, 0, 0, 0, 1},
	{1, 0, 1, 0, 1},
	{1, 0, 0, 0, 1},
	{1, 1, 1, 1, 1},
}

// embedFunctionPatterns lays down every fixed module: the three
// finder blocks and their separators, timing strips, alignment
// patterns, the dark module, and reserved (but not yet valued) format
// and version info areas (spec.md §4.6 step 1).
func embedFunctionPatterns(v Version, m *ByteMatrix) {
	embedFinder(0, 0, m)
	embedFinder(m.dim-7, 0, m)
	embedFinder(0, m.dim-7, m)

	embedHorizontalSeparator(0, 7, m)
	embedHorizontalSeparator(m.dim-8, 7, m)
	embedHorizontalSeparator(0, m.dim-8, m)
	embedVerticalSeparator(7, 0, m)
	embedVerticalSeparator(m.dim-8, 0, m)
	embedVerticalSeparator(7, m.dim-7, m)

	if v >= 2 {
		embedAlignmentPatterns(v, m)
	}
	embedTimingPatterns(m)

	m.setFunction(8, m.dim-8, 1) // dark module, always set

	reserveFormatInfo(m)
	if v >= 7 {
		reserveVersionInfo(m)
	}
}

func embedFinder(xStart, yStart int, m *ByteMatrix) {
	for y := 0; y < 7; y++ {
		for x := 0; x < 7; x++ {
			m.setFunction(xStart+x, yStart+y, positionDetectionPattern[y][x])
		}
	}
}

func embedHorizontalSeparator(xStart, y int, m *ByteMatrix) {
	for x := 0; x < 8; x++ {
		if xStart+x < m.dim {
			m.setFunction(xStart+x, y, 0)
		}
	}
}

func embedVerticalSeparator(x, yStart int, m *ByteMatrix) {
	for y := 0; y < 7; y++ {
		if yStart+y < m.dim {
			m.setFunction(x, yStart+y, 0)
		}
	}
}

func embedAlignmentPatterns(v Version, m *ByteMatrix) {
	centers := v.AlignmentPatternCenters()
	for _, cy := range centers {
		for _, cx := range centers {
			if m.isFunction[cy][cx] {
				continue // overlaps a finder pattern
			}
			for y := 0; y < 5; y++ {
				for x := 0; x < 5; x++ {
					m.setFunction(cx-2+x, cy-2+y, positionAdjustmentPattern[y][x])
				}
			}
		}
	}
}

func embedTimingPatterns(m *ByteMatrix) {
	for i := 8; i < m.dim-8; i++ {
		bit := (i + 1) % 2
		if !m.isFunction[6][i] {
			m.setFunction(i, 6, bit)
		}
		if !m.isFunction[i][6] {
			m.setFunction(6, i, bit)
		}
	}
}

// formatInfoCoordinates gives the 15 (x, y) positions of the first
// copy of format information, in bit order 0..14.
var formatInfoCoordinates = [15][2]int{
	{8, 0}, {8, 1}, {8, 2}, {8, 3}, {8, 4}, {8, 5}, {8, 7}, {8, 8},
	{7, 8}, {5, 8}, {4, 8}, {3, 8}, {2, 8}, {1, 8}, {0, 8},
}

func reserveFormatInfo(m *ByteMatrix) {
	for i := 0; i < 15; i++ {
		c := formatInfoCoordinates[i]
		m.setFunction(c[0], c[1], 0)
		if i < 8 {
			m.setFunction(m.dim-1-i, 8, 0)
		} else {
			m.setFunction(8, m.dim-7+(i-8), 0)
		}
	}
}

func embedFormatInfo(level Level, mask int, m *ByteMatrix) {
	bits := formatInfoBits(level, mask)
	for i := 0; i < 15; i++ {
		bit := (bits >> uint(i)) & 1
		c := formatInfoCoordinates[i]
		m.set(c[0], c[1], bit)
		if i < 8 {
			m.set(m.dim-1-i, 8, bit)
		} else {
			m.set(8, m.dim-7+(i-8), bit)
		}
	}
}

func reserveVersionInfo(m *ByteMatrix) {
	for i := 0; i < 6; i++ {
		for j := 0; j < 3; j++ {
			m.setFunction(i, m.dim-11+j, 0)
			m.setFunction(m.dim-11+j, i, 0)
		}
	}
}

func embedVersionInfo(v Version, m *ByteMatrix) {
	bits := v.versionInfoBits()
	k := 0
	for i := 0; i < 6; i++ {
		for j := 0; j < 3; j++ {
			bit := (bits >> uint(k)) & 1
			k++
			m.set(i, m.dim-11+j, bit)
			m.set(m.dim-11+j, i, bit)
		}
	}
}

// placeData walks the data-region columns right to left in pairs,
// zig-zagging up and down and skipping the vertical timing column,
// writing one bit per non-function cell (spec.md §4.6 step 2). Any
// mask pattern ≥ 0 is applied to each data cell as it is written;
// mask < 0 places data unmasked.
func placeData(bits *Bits, mask int, m *ByteMatrix) {
	bitIndex := 0
	dim := m.dim
	for right := dim - 1; right > 0; right -= 2 {
		if right == 6 {
			right--
		}
		for vert := 0; vert < dim; vert++ {
			upward := ((dim-1-right)/2)%2 == 0
			y := vert
			if upward {
				y = dim - 1 - vert
			}
			for col := 0; col < 2; col++ {
				x := right - col
				if m.isFunction[y][x] {
					continue
				}
				var bit int
				if bitIndex < bits.Size() {
					if bits.b[bitIndex/8]&(1<<uint(7-bitIndex%8)) != 0 {
						bit = 1
					}
					bitIndex++
				}
				if mask >= 0 && maskFuncs[mask](y, x) {
					bit ^= 1
				}
				m.set(x, y, bit)
			}
		}
	}
}
