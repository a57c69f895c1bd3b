// polymatrix.go - k x k matrix of Kyber polynomials, and its expansion.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

import "golang.org/x/crypto/sha3"

// PolyMatrix is a row-major k x k matrix of Poly, in practice always
// held in NTT domain.
type PolyMatrix []PolyVec

// MulVec returns A . v, a PolyVec of length k whose i-th element is the
// dot product of A's i-th row with v, computed in the NTT domain.
func (a PolyMatrix) MulVec(v PolyVec) (PolyVec, error) {
	if len(v) != len(a) {
		return nil, ErrShapeMismatch
	}
	r := make(PolyVec, len(a))
	for i, row := range a {
		dot, err := row.Dot(v)
		if err != nil {
			return nil, err
		}
		r[i] = dot
	}
	return r, nil
}

// genMatrix deterministically expands a 32-byte seed rho into a k x k
// PolyMatrix in NTT domain, via Parse(SHAKE-128(rho || idx)).
//
// When transposed is false (KeyGen's A), row i, column j uses index
// bytes (j, i); when transposed is true (Enc's A^T, the transpose of
// KeyGen's matrix), row i, column j uses index bytes (i, j). This
// single bool is what makes Enc re-derive the transpose of the exact
// matrix KeyGen generated, which the scheme's correctness depends on.
func genMatrix(rho []byte, k int, transposed bool) PolyMatrix {
	m := make(PolyMatrix, k)

	xof := sha3.NewShake128()
	seed := make([]byte, SymSize+2)
	copy(seed, rho)

	for i := 0; i < k; i++ {
		m[i] = make(PolyVec, k)
		for j := 0; j < k; j++ {
			if transposed {
				seed[SymSize], seed[SymSize+1] = byte(i), byte(j)
			} else {
				seed[SymSize], seed[SymSize+1] = byte(j), byte(i)
			}

			xof.Reset()
			xof.Write(seed)
			m[i][j] = parse(xof)
		}
	}
	return m
}
