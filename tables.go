package qrcode

import "fmt"

// Version is a QR Code symbol size, 1 through 40. Dimension = 17+4v.
type Version int

const (
	minVersion Version = 1
	maxVersion Version = 40
)

func (v Version) Dimension() int {
	return 17 + 4*int(v)
}

func (v Version) sizeClass() int {
	return sizeClass(int(v))
}

// ecRow is one (version, level) row of JIS X 0510:2004 Table 9 /
// Annex D: nblock Reed-Solomon blocks, each with check EC
// codewords. Data codewords per block are derived, not stored,
// because the standard splits data as evenly as possible across
// blocks (spec.md §4.5's interleaving algorithm) rather than storing
// two independent group sizes.
type ecRow struct {
	nblock int
	check  int
}

// versionRow holds the per-version static data: the alignment-pattern
// generation parameters (apos, the second center minus 2; astride, the
// constant spacing thereafter — the standard's Annex E table reduces
// to exactly this for every version), the total codeword count, the
// 18-bit version-info BCH codeword (zero below V7, where none is
// embedded), and the four EC rows.
type versionRow struct {
	apos, astride int
	bytes         int
	pattern       int
	level         [4]ecRow
}

// vtab is JIS X 0510:2004 Annex D / Table 9, transcribed in full;
// vtab[0] is unused so that vtab[v] indexes directly by version number.
var vtab = [41]versionRow{
	{},
	{100, 100, 26, 0x0, [4]ecRow{{1, 7}, {1, 10}, {1, 13}, {1, 17}}},
	{16, 100, 44, 0x0, [4]ecRow{{1, 10}, {1, 16}, {1, 22}, {1, 28}}},
	{20, 100, 70, 0x0, [4]ecRow{{1, 15}, {1, 26}, {2, 18}, {2, 22}}},
	{24, 100, 100, 0x0, [4]ecRow{{1, 20}, {2, 18}, {2, 26}, {4, 16}}},
	{28, 100, 134, 0x0, [4]ecRow{{1, 26}, {2, 24}, {4, 18}, {4, 22}}},
	{32, 100, 172, 0x0, [4]ecRow{{2, 18}, {4, 16}, {4, 24}, {4, 28}}},
	{20, 16, 196, 0x7c94, [4]ecRow{{2, 20}, {4, 18}, {6, 18}, {5, 26}}},
	{22, 18, 242, 0x85bc, [4]ecRow{{2, 24}, {4, 22}, {6, 22}, {6, 26}}},
	{24, 20, 292, 0x9a99, [4]ecRow{{2, 30}, {5, 22}, {8, 20}, {8, 24}}},
	{26, 22, 346, 0xa4d3, [4]ecRow{{4, 18}, {5, 26}, {8, 24}, {8, 28}}},
	{28, 24, 404, 0xbbf6, [4]ecRow{{4, 20}, {5, 30}, {8, 28}, {11, 24}}},
	{30, 26, 466, 0xc762, [4]ecRow{{4, 24}, {8, 22}, {10, 26}, {11, 28}}},
	{32, 28, 532, 0xd847, [4]ecRow{{4, 26}, {9, 22}, {12, 24}, {16, 22}}},
	{24, 20, 581, 0xe60d, [4]ecRow{{4, 30}, {9, 24}, {16, 20}, {16, 24}}},
	{24, 22, 655, 0xf928, [4]ecRow{{6, 22}, {10, 24}, {12, 30}, {18, 24}}},
	{24, 24, 733, 0x10b78, [4]ecRow{{6, 24}, {10, 28}, {17, 24}, {16, 30}}},
	{28, 24, 815, 0x1145d, [4]ecRow{{6, 28}, {11, 28}, {16, 28}, {19, 28}}},
	{28, 26, 901, 0x12a17, [4]ecRow{{6, 30}, {13, 26}, {18, 28}, {21, 28}}},
	{28, 28, 991, 0x13532, [4]ecRow{{7, 28}, {14, 26}, {21, 26}, {25, 26}}},
	{32, 28, 1085, 0x149a6, [4]ecRow{{8, 28}, {16, 26}, {20, 30}, {25, 28}}},
	{26, 22, 1156, 0x15683, [4]ecRow{{8, 28}, {17, 26}, {23, 28}, {25, 30}}},
	{24, 24, 1258, 0x168c9, [4]ecRow{{9, 28}, {17, 28}, {23, 30}, {34, 24}}},
	{28, 24, 1364, 0x177ec, [4]ecRow{{9, 30}, {18, 28}, {25, 30}, {30, 30}}},
	{26, 26, 1474, 0x18ec4, [4]ecRow{{10, 30}, {20, 28}, {27, 30}, {32, 30}}},
	{30, 26, 1588, 0x191e1, [4]ecRow{{12, 26}, {21, 28}, {29, 30}, {35, 30}}},
	{28, 28, 1706, 0x1afab, [4]ecRow{{12, 28}, {23, 28}, {34, 28}, {37, 30}}},
	{32, 28, 1828, 0x1b08e, [4]ecRow{{12, 30}, {25, 28}, {34, 30}, {40, 30}}},
	{24, 24, 1921, 0x1cc1a, [4]ecRow{{13, 30}, {26, 28}, {35, 30}, {42, 30}}},
	{28, 24, 2051, 0x1d33f, [4]ecRow{{14, 30}, {28, 28}, {38, 30}, {45, 30}}},
	{24, 26, 2185, 0x1ed75, [4]ecRow{{15, 30}, {29, 28}, {40, 30}, {48, 30}}},
	{28, 26, 2323, 0x1f250, [4]ecRow{{16, 30}, {31, 28}, {43, 30}, {51, 30}}},
	{32, 26, 2465, 0x209d5, [4]ecRow{{17, 30}, {33, 28}, {45, 30}, {54, 30}}},
	{28, 28, 2611, 0x216f0, [4]ecRow{{18, 30}, {35, 28}, {48, 30}, {57, 30}}},
	{32, 28, 2761, 0x228ba, [4]ecRow{{19, 30}, {37, 28}, {51, 30}, {60, 30}}},
	{28, 24, 2876, 0x2379f, [4]ecRow{{19, 30}, {38, 28}, {53, 30}, {63, 30}}},
	{22, 26, 3034, 0x24b0b, [4]ecRow{{20, 30}, {40, 28}, {56, 30}, {66, 30}}},
	{26, 26, 3196, 0x2542e, [4]ecRow{{21, 30}, {43, 28}, {59, 30}, {70, 30}}},
	{30, 26, 3362, 0x26a64, [4]ecRow{{22, 30}, {45, 28}, {62, 30}, {74, 30}}},
	{24, 28, 3532, 0x27541, [4]ecRow{{24, 30}, {47, 28}, {65, 30}, {77, 30}}},
	{28, 28, 3706, 0x28c69, [4]ecRow{{25, 30}, {49, 28}, {68, 30}, {81, 30}}},
}

// TotalCodewords returns the number of data+EC codewords a symbol of
// this version holds.
func (v Version) TotalCodewords() int {
	return vtab[v].bytes
}

// ecBlocks describes the Reed-Solomon block structure for one
// (version, level) pair: the EC codewords carried by every block, and
// one or two groups of (blockCount, dataCodewordsPerBlock).
type ecBlocks struct {
	ecPerBlock int
	groups     [2]blockGroup // groups[1].count == 0 when there is only one group
}

type blockGroup struct {
	count            int
	dataPerBlock     int
}

func (v Version) numBlocks(l Level) int {
	return vtab[v].level[l].nblock
}

// ECBlocks derives the block-group structure for (v, l) from the
// transcribed table via the same floor-division split the interleaver
// uses, so the two representations can never drift apart (spec.md §3's
// invariant: total_codewords == Σ block_count × (data_per_block +
// ec_per_block)).
func (v Version) ECBlocks(l Level) ecBlocks {
	row := vtab[v].level[l]
	total := vtab[v].bytes
	nblock := row.nblock
	ne := row.check
	numDataBytes := total - ne*nblock

	dataPerGroup1 := numDataBytes / nblock
	group2Count := numDataBytes % nblock
	group1Count := nblock - group2Count

	eb := ecBlocks{ecPerBlock: ne}
	eb.groups[0] = blockGroup{count: group1Count, dataPerBlock: dataPerGroup1}
	if group2Count > 0 {
		eb.groups[1] = blockGroup{count: group2Count, dataPerBlock: dataPerGroup1 + 1}
	}
	return eb
}

func (eb ecBlocks) numBlocks() int {
	return eb.groups[0].count + eb.groups[1].count
}

func (eb ecBlocks) totalDataCodewords() int {
	return eb.groups[0].count*eb.groups[0].dataPerBlock + eb.groups[1].count*eb.groups[1].dataPerBlock
}

// dataBytes returns the number of pure data codewords (total minus EC)
// a symbol of version v at level l can carry.
func (v Version) dataBytes(l Level) int {
	row := vtab[v].level[l]
	return vtab[v].bytes - row.nblock*row.check
}

// AlignmentPatternCenters returns the row/column centers of the
// alignment patterns for this version (JIS X 0510:2004 Annex E), empty
// for V1. The first center is always 6; subsequent centers start at
// apos+2 and increase by astride until the symbol edge.
func (v Version) AlignmentPatternCenters() []int {
	if v == 1 {
		return nil
	}
	row := vtab[v]
	siz := v.Dimension()
	var centers []int
	for x := 4; x+5 < siz; {
		centers = append(centers, x+2)
		if x == 4 {
			x = row.apos
		} else {
			x += row.astride
		}
	}
	return centers
}

// versionInfoBits returns the 18-bit BCH-encoded version descriptor
// embedded in symbols of version 7 and above; it is zero (and unused)
// below V7.
func (v Version) versionInfoBits() int {
	return vtab[v].pattern
}

// formatInfoPoly and formatInfoMask implement the 15-bit BCH code
// (generator 0x537) over the 5-bit (level, mask) input, XORed with the
// fixed mask pattern 0x5412 per JIS X 0510:2004 §8.9.
const (
	formatInfoPoly = 0x537
	formatInfoMask = 0x5412
)

// formatInfoBits computes the masked 15-bit format information for
// the given level and mask pattern.
func formatInfoBits(l Level, mask int) int {
	data := (l.Bits() << 3) | mask
	bch := bchCode(data, formatInfoPoly)
	return ((data << 10) | bch) ^ formatInfoMask
}

// versionInfoPoly is the generator for the 18-bit version information
// BCH code (V7 and above), 0x1F25.
const versionInfoPoly = 0x1f25

// bchCode computes the BCH error-correction remainder for value
// against the generator poly: shift value left so its low-order bits
// are clear for the remainder, then repeatedly XOR the generator,
// shifted to align its top bit with value's current top bit, until
// value's degree drops below the generator's. This is the systematic
// binary BCH encoding used for both format and version information
// (JIS X 0510:2004 §8.9/§8.10).
func bchCode(value, poly int) int {
	polyBits := bitLength(poly)
	value <<= uint(polyBits - 1)
	for bitLength(value) >= polyBits {
		value ^= poly << uint(bitLength(value)-polyBits)
	}
	return value
}

// bitLength returns the position of the highest set bit, counting from 1.
func bitLength(x int) int {
	n := 0
	for x != 0 {
		x >>= 1
		n++
	}
	return n
}

func init() {
	if err := verifyECTables(); err != nil {
		panic(err)
	}
	if err := verifyVersionInfoTable(); err != nil {
		panic(err)
	}
}

// verifyVersionInfoTable cross-checks every tabulated V7+ version-info
// codeword against a fresh BCH computation, so the table transcription
// and the BCH computation can never silently disagree.
func verifyVersionInfoTable() error {
	for v := 7; v <= int(maxVersion); v++ {
		bch := bchCode(v, versionInfoPoly)
		computed := (v << 12) | bch
		if computed != vtab[v].pattern {
			return fmt.Errorf("qrcode: version info mismatch at version %d: table %#x computed %#x", v, vtab[v].pattern, computed)
		}
	}
	return nil
}

// verifyECTables checks the spec's table invariant for every
// (version, level) row: an implementer transcription bug here is a
// program bug, not a caller error, so it panics at init per
// spec.md §7's InternalInvariant policy.
func verifyECTables() error {
	for v := int(minVersion); v <= int(maxVersion); v++ {
		for l := L; l <= H; l++ {
			eb := Version(v).ECBlocks(l)
			got := eb.numBlocks()*eb.ecPerBlock + eb.totalDataCodewords()
			want := Version(v).TotalCodewords()
			if got != want {
				return fmt.Errorf("qrcode: EC table invariant failed at version %d level %v: got %d want %d", v, l, got, want)
			}
		}
	}
	return nil
}
