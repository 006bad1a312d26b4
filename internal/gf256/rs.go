package gf256

import "sync"

// RSEncoder performs systematic Reed-Solomon encoding over a Field,
// producing a fixed number of error-correction bytes per call.
type RSEncoder struct {
	f      *Field
	degree int
	gen    *Poly
}

// NewRSEncoder returns an encoder that generates degree EC bytes per
// ECC call, using the generator polynomial
//
//	G(x) = ∏_{i=0}^{degree-1} (x - α^i)
//
// cached process-wide by degree so repeated calls at the same EC
// codeword count (the common case: many blocks share one version/level)
// never repeat the polynomial multiplication.
func NewRSEncoder(f *Field, degree int) *RSEncoder {
	return &RSEncoder{f: f, degree: degree, gen: generator(f, degree)}
}

type genKey struct {
	f      *Field
	degree int
}

var genCache struct {
	once sync.Once
	mu   sync.Mutex
	m    map[genKey]*Poly
}

// generator returns the cached generator polynomial for the given
// (field, degree) pair, computing and storing it on first use. Keying
// by field pointer as well as degree matters because a process may use
// more than one Field (the QR Code field and, e.g., a Data Matrix
// field share a degree without sharing a generator). Populating the
// cache lazily but behind a mutex (rather than eagerly at init, since
// the field itself is supplied by the caller) is sufficient: the mutex
// guarantees publication of a freshly computed polynomial before any
// other goroutine observes the cache entry.
func generator(f *Field, degree int) *Poly {
	genCache.once.Do(func() { genCache.m = make(map[genKey]*Poly) })

	key := genKey{f: f, degree: degree}
	genCache.mu.Lock()
	defer genCache.mu.Unlock()
	if p, ok := genCache.m[key]; ok {
		return p
	}
	g := f.NewPoly(1)
	for i := 0; i < degree; i++ {
		g = g.Mul(f.NewPoly(1, f.Exp(i)))
	}
	genCache.m[key] = g
	return g
}

// ECC computes the degree error-correction bytes for data and writes
// them into check, which must have length degree. Panics if degree is
// zero or data is empty, per the spec's closed invariant set: a caller
// requesting zero EC bytes or encoding an empty block is a programmer
// error, not a recoverable runtime condition.
func (e *RSEncoder) ECC(data []byte, check []byte) {
	if e.degree == 0 {
		panic("gf256: zero EC degree")
	}
	if len(data) == 0 {
		panic("gf256: empty data block")
	}
	if len(check) != e.degree {
		panic("gf256: check buffer size mismatch")
	}

	// Systematic encoding: remainder of data(x)·x^degree mod G(x),
	// computed by simulating polynomial long division with an LFSR
	// over the padded message.
	remainder := make([]int, len(data))
	for i, b := range data {
		remainder[i] = int(b)
	}
	remainder = append(remainder, make([]int, e.degree)...)

	for i := 0; i < len(data); i++ {
		coeff := remainder[i]
		if coeff == 0 {
			continue
		}
		for j, gc := range e.gen.p {
			remainder[i+j] ^= e.f.Mul(coeff, int(gc))
		}
	}

	copy(check, byteSlice(remainder[len(data):]))
}

func byteSlice(xs []int) []byte {
	b := make([]byte, len(xs))
	for i, x := range xs {
		b[i] = byte(x)
	}
	return b
}
