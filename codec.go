// codec.go - Polynomial byte encoding, and lossy compression.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

// EncodePoly packs a Poly's coefficients, each assumed already reduced
// to [0, 2^d), into 32*d bytes: the concatenation of the coefficients'
// d-bit little-endian representations, byte 0 holding stream bits 0..7.
func EncodePoly(p Poly, d int) []byte {
	out := make([]byte, 32*d)

	var acc uint32
	var accBits uint
	pos := 0
	for _, c := range p.coeffs {
		acc |= uint32(c) << accBits
		accBits += uint(d)
		for accBits >= 8 {
			out[pos] = byte(acc)
			acc >>= 8
			accBits -= 8
			pos++
		}
	}
	return out
}

// DecodePoly is the inverse of EncodePoly: it reads buf as a stream of
// d-bit little-endian groups and returns the 256 resulting
// coefficients as a normal-domain Poly.
func DecodePoly(buf []byte, d int) Poly {
	var r Poly
	r.domain = domainNormal

	mask := uint32(1)<<uint(d) - 1
	var acc uint32
	var accBits uint
	pos := 0
	for i := 0; i < kyberN; i++ {
		for accBits < uint(d) {
			acc |= uint32(buf[pos]) << accBits
			pos++
			accBits += 8
		}
		r.coeffs[i] = ModQ(acc & mask)
		acc >>= uint(d)
		accBits -= uint(d)
	}
	return r
}

// CompressPoly applies Compress_d coefficientwise: each coefficient c
// in [0, q) is mapped to round(2^d/q * c) mod 2^d, with ties rounded
// up. The exact integer formula (x*2^d + floor(q/2)) / q avoids any
// floating point rounding error.
func CompressPoly(p Poly, d int) Poly {
	mod := uint32(1) << uint(d)
	var r Poly
	r.domain = p.domain
	for i, c := range p.coeffs {
		v := (uint64(c)*uint64(mod) + kyberQ/2) / kyberQ
		r.coeffs[i] = ModQ(uint32(v) & (mod - 1))
	}
	return r
}

// DecompressPoly applies Decompress_d coefficientwise: each
// coefficient y in [0, 2^d) is mapped to round(q/2^d * y), ties rounded
// up, via the exact integer formula (y*q + 2^(d-1)) / 2^d.
func DecompressPoly(p Poly, d int) Poly {
	var r Poly
	r.domain = p.domain
	half := uint32(1) << uint(d-1)
	for i, c := range p.coeffs {
		v := (uint32(c)*kyberQ + half) >> uint(d)
		r.coeffs[i] = ModQ(v)
	}
	return r
}
