// polyvec.go - Vector of Kyber polynomials.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

// PolyVec is an ordered, fixed-length sequence of k Poly, representing
// an element of R_q^k.
type PolyVec []Poly

// newPolyVec allocates a PolyVec of k zero Polys in the given domain.
func newPolyVec(k int, d domain) PolyVec {
	v := make(PolyVec, k)
	for i := range v {
		v[i].domain = d
	}
	return v
}

// Add returns the coefficientwise sum of two PolyVecs of equal length.
func (v PolyVec) Add(o PolyVec) (PolyVec, error) {
	if len(v) != len(o) {
		return nil, ErrShapeMismatch
	}
	r := make(PolyVec, len(v))
	for i := range v {
		sum, err := v[i].Add(o[i])
		if err != nil {
			return nil, err
		}
		r[i] = sum
	}
	return r, nil
}

// NTT returns the elementwise forward NTT of v.
func (v PolyVec) NTT() (PolyVec, error) {
	r := make(PolyVec, len(v))
	for i := range v {
		t, err := v[i].NTT()
		if err != nil {
			return nil, err
		}
		r[i] = t
	}
	return r, nil
}

// InvNTT returns the elementwise inverse NTT of v.
func (v PolyVec) InvNTT() (PolyVec, error) {
	r := make(PolyVec, len(v))
	for i := range v {
		t, err := v[i].InvNTT()
		if err != nil {
			return nil, err
		}
		r[i] = t
	}
	return r, nil
}

// Dot returns the dot product v^T . o, a single Poly, computed in the
// NTT domain: both v and o must be NTT-domain PolyVecs of equal
// length.
func (v PolyVec) Dot(o PolyVec) (Poly, error) {
	if len(v) != len(o) {
		return Poly{}, ErrShapeMismatch
	}
	acc := Poly{domain: domainNTT}
	for i := range v {
		term, err := v[i].Mul(o[i])
		if err != nil {
			return Poly{}, err
		}
		if acc, err = acc.Add(term); err != nil {
			return Poly{}, err
		}
	}
	return acc, nil
}

// EncodePolyVec packs every element of v with EncodePoly(_, d) and
// concatenates the results.
func EncodePolyVec(v PolyVec, d int) []byte {
	out := make([]byte, 0, len(v)*32*d)
	for _, p := range v {
		out = append(out, EncodePoly(p, d)...)
	}
	return out
}

// DecodePolyVec is the inverse of EncodePolyVec for a PolyVec of
// length k.
func DecodePolyVec(buf []byte, k, d int) PolyVec {
	v := make(PolyVec, k)
	chunk := 32 * d
	for i := range v {
		v[i] = DecodePoly(buf[i*chunk:(i+1)*chunk], d)
	}
	return v
}
