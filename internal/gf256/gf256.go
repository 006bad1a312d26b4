// Package gf256 implements arithmetic in GF(2⁸), the field used by
// QR Code's Reed-Solomon error correction (JIS X 0510:2004 Annex A).
package gf256

// Field represents an instance of GF(256) defined by a primitive
// polynomial and generator. The QR Code standard uses the polynomial
// x⁸+x⁴+x³+x²+1 (0x11D) with generator α=2.
type Field struct {
	exp [510]byte // exp[i] = exp[i%255], folded for wraparound-free indexing
	log [256]byte
}

// NewField returns a new field using the given primitive polynomial
// (with the top bit omitted, e.g. 0x11D) and generator.
func NewField(poly, generator int) *Field {
	f := new(Field)
	x := 1
	for i := 0; i < 255; i++ {
		f.exp[i] = byte(x)
		f.log[x] = byte(i)
		x *= generator
		if x >= 256 {
			x ^= poly
		}
	}
	for i := 255; i < 510; i++ {
		f.exp[i] = f.exp[i-255]
	}
	return f
}

// Add returns x+y in the field (addition is XOR in characteristic 2).
func (f *Field) Add(x, y int) int {
	return x ^ y
}

// Exp returns the generator raised to the e'th power, e taken mod 255.
func (f *Field) Exp(e int) int {
	e %= 255
	if e < 0 {
		e += 255
	}
	return int(f.exp[e])
}

// Log returns the discrete log of x, the e such that Exp(e) == x.
// Log(0) is undefined and returns 0.
func (f *Field) Log(x int) int {
	if x == 0 {
		return 0
	}
	return int(f.log[x])
}

// Mul returns x*y in the field.
func (f *Field) Mul(x, y int) int {
	if x == 0 || y == 0 {
		return 0
	}
	return int(f.exp[int(f.log[x])+int(f.log[y])])
}

// Inv returns the multiplicative inverse of x. Panics if x is zero.
func (f *Field) Inv(x int) int {
	if x == 0 {
		panic("gf256: inverse of zero")
	}
	return int(f.exp[255-int(f.log[x])])
}

// A Poly is a polynomial over the field, coefficients in descending
// degree order (Poly[0] is the coefficient of the highest-degree term).
type Poly struct {
	f *Field
	p []byte // p[0] is high-order coefficient
}

// NewPoly returns a new polynomial over field f with the given
// coefficients, high order first. Leading zero coefficients (other
// than the constant polynomial) are stripped.
func (f *Field) NewPoly(p ...int) *Poly {
	np := &Poly{f: f, p: make([]byte, len(p))}
	for i, c := range p {
		np.p[i] = byte(c)
	}
	return np.norm()
}

func (p *Poly) norm() *Poly {
	i := 0
	for i < len(p.p)-1 && p.p[i] == 0 {
		i++
	}
	p.p = p.p[i:]
	return p
}

// Degree returns the degree of the polynomial.
func (p *Poly) Degree() int {
	return len(p.p) - 1
}

// Coeff returns the coefficient of x^deg.
func (p *Poly) Coeff(deg int) int {
	i := p.Degree() - deg
	if i < 0 || i >= len(p.p) {
		return 0
	}
	return int(p.p[i])
}

// LeadingCoeff returns the coefficient of the highest-degree term.
func (p *Poly) LeadingCoeff() int {
	if len(p.p) == 0 {
		return 0
	}
	return int(p.p[0])
}

// Eval evaluates p at x.
func (p *Poly) Eval(x int) int {
	if len(p.p) == 0 {
		return 0
	}
	y := int(p.p[0])
	for _, c := range p.p[1:] {
		y = p.f.Mul(y, x) ^ int(c)
	}
	return y
}

// Mul returns the product p*q.
func (p *Poly) Mul(q *Poly) *Poly {
	if p.f != q.f {
		panic("gf256: mismatched fields")
	}
	np := &Poly{f: p.f, p: make([]byte, len(p.p)+len(q.p)-1)}
	for i, pc := range p.p {
		if pc == 0 {
			continue
		}
		for j, qc := range q.p {
			np.p[i+j] ^= byte(p.f.Mul(int(pc), int(qc)))
		}
	}
	return np.norm()
}

// Monomial returns the polynomial coeff·x^degree.
func (f *Field) Monomial(coeff, degree int) *Poly {
	if coeff == 0 {
		return f.NewPoly(0)
	}
	p := make([]int, degree+1)
	p[0] = coeff
	return f.NewPoly(p...)
}
