// poly.go - Kyber polynomial.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

// domain tags whether a Poly's coefficients represent a normal-order
// element of R_q or its image under the NTT.
type domain int

const (
	domainNormal domain = iota
	domainNTT
)

// Poly is an element of R_q = Z_q[X]/(X^n+1), represented as
// coeffs[0] + coeffs[1]*X + ... + coeffs[n-1]*X^(n-1), always stored
// reduced modulo both q and X^n+1. A Poly carries a domain tag so that
// accidentally multiplying a normal-order Poly by an NTT-domain one is
// caught rather than silently producing garbage.
type Poly struct {
	coeffs [kyberN]ModQ
	domain domain
}

// Add returns p+o, reduced coefficientwise mod q. Both operands must be
// in the same domain; the result carries p's domain.
func (p Poly) Add(o Poly) (Poly, error) {
	if p.domain != o.domain {
		return Poly{}, ErrDomainMismatch
	}
	var r Poly
	r.domain = p.domain
	for i := range r.coeffs {
		r.coeffs[i] = addModQ(p.coeffs[i], o.coeffs[i])
	}
	return r, nil
}

// Sub returns p-o, reduced coefficientwise mod q. Both operands must be
// in the same domain; the result carries p's domain.
func (p Poly) Sub(o Poly) (Poly, error) {
	if p.domain != o.domain {
		return Poly{}, ErrDomainMismatch
	}
	var r Poly
	r.domain = p.domain
	for i := range r.coeffs {
		r.coeffs[i] = subModQ(p.coeffs[i], o.coeffs[i])
	}
	return r, nil
}

// Mul returns p*o in R_q. If both operands are in normal domain, the
// product is computed by schoolbook multiplication reduced modulo
// X^n+1. If both are in NTT domain, the product is the NTT-domain
// pointwise (base) multiplication whose inverse-NTT equals the normal-
// domain product. Mixing domains fails with ErrDomainMismatch.
func (p Poly) Mul(o Poly) (Poly, error) {
	if p.domain != o.domain {
		return Poly{}, ErrDomainMismatch
	}
	if p.domain == domainNTT {
		return Poly{coeffs: nttBaseMul(p.coeffs, o.coeffs), domain: domainNTT}, nil
	}
	return Poly{coeffs: schoolbookMul(p.coeffs, o.coeffs), domain: domainNormal}, nil
}

// NTT returns the forward NTT of p. p must be in normal domain.
func (p Poly) NTT() (Poly, error) {
	if p.domain != domainNormal {
		return Poly{}, ErrDomainMismatch
	}
	return Poly{coeffs: ntt(p.coeffs), domain: domainNTT}, nil
}

// InvNTT returns the inverse NTT of p, mapping it back to normal
// domain. p must be in NTT domain.
func (p Poly) InvNTT() (Poly, error) {
	if p.domain != domainNTT {
		return Poly{}, ErrDomainMismatch
	}
	return Poly{coeffs: invNTT(p.coeffs), domain: domainNormal}, nil
}

// ScalarMul returns p scaled by the integer k, coefficientwise mod q.
// The domain is preserved: scaling by a plain integer commutes with
// both the NTT and the ring reduction.
func (p Poly) ScalarMul(k int) Poly {
	kk := ModQ(((k % kyberQ) + kyberQ) % kyberQ)
	var r Poly
	r.domain = p.domain
	for i, c := range p.coeffs {
		r.coeffs[i] = mulModQ(c, kk)
	}
	return r
}

// Pow returns p raised to the non-negative integer exponent e, via
// repeated squaring using Mul. Both the normal-domain (schoolbook,
// modulo X^n+1) and NTT-domain (pointwise) multiplications support
// this; the domain of the result matches p's.
func (p Poly) Pow(e int) (Poly, error) {
	if e < 0 {
		return Poly{}, ErrInvalidParameter
	}

	result := onePoly(p.domain)
	base := p
	for e > 0 {
		if e&1 == 1 {
			var err error
			if result, err = result.Mul(base); err != nil {
				return Poly{}, err
			}
		}
		var err error
		if base, err = base.Mul(base); err != nil {
			return Poly{}, err
		}
		e >>= 1
	}
	return result, nil
}

// onePoly returns the multiplicative identity (the constant polynomial
// 1) in the given domain. In NTT domain the constant polynomial 1
// projects to (1,0) in every degree-2 base-multiplication slot, not to
// an all-ones vector.
func onePoly(d domain) Poly {
	var r Poly
	r.domain = d
	if d == domainNormal {
		r.coeffs[0] = 1
		return r
	}
	for i := 0; i < kyberN; i += 2 {
		r.coeffs[i] = 1
	}
	return r
}

// schoolbookMul computes the product of two normal-domain coefficient
// vectors reduced modulo X^n+1. This is the O(n^2) reference
// multiplication: Poly.Mul uses it for normal-domain operands, and
// tests use it as a ground truth for the NTT. KeyGen/Enc/Dec multiply
// only in the NTT domain (see ntt.go).
func schoolbookMul(a, b [kyberN]ModQ) [kyberN]ModQ {
	var wide [2 * kyberN]ModQ
	for i, av := range a {
		if av == 0 {
			continue
		}
		for j, bv := range b {
			wide[i+j] = addModQ(wide[i+j], mulModQ(av, bv))
		}
	}

	// Reduction mod X^n+1: X^n === -1, so fold the upper half back by
	// subtraction.
	var r [kyberN]ModQ
	for i := 0; i < kyberN; i++ {
		r[i] = subModQ(wide[i], wide[i+kyberN])
	}
	return r
}

// FromMsg converts a SymSize-byte message into a Poly in normal domain,
// per Decompress_1(Decode_1(msg)): bit 0 of byte i maps to coefficient
// 8*i+0 (etc.), with a 0 bit mapping to coefficient 0 and a 1 bit
// mapping to coefficient ceil(q/2) = 1665.
func FromMsg(msg []byte) (Poly, error) {
	if len(msg) != SymSize {
		return Poly{}, ErrInvalidLength
	}
	return DecompressPoly(DecodePoly(msg, 1), 1), nil
}

// ToMsg converts a Poly in normal domain back into a SymSize-byte
// message, per Encode_1(Compress_1(p)).
func ToMsg(p Poly) []byte {
	return EncodePoly(CompressPoly(p, 1), 1)
}
