// sampler.go - Uniform rejection sampling and centered binomial sampling.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

import "golang.org/x/crypto/sha3"

// shake128Rate is the SHAKE-128 block ("rate") size in bytes. It is a
// multiple of 3, so Parse never has to hold a partial 3-byte group
// across a squeeze.
const shake128Rate = 168

// parse rejection-samples a uniform-mod-q Poly from an already-
// initialized SHAKE-128 stream. It reads shake128Rate-byte blocks,
// interprets each successive 3-byte group (B0,B1,B2) as two 12-bit
// candidates
//
//	d1 = B0 + 256*(B1 mod 16)
//	d2 = floor(B1/16) + 16*B2
//
// accepting each candidate less than q, until 256 coefficients have
// been produced. Parse has no deterministic bound on the number of
// bytes it consumes (rejection sampling always terminates with
// probability 1, but not after a fixed number of blocks), so it keeps
// squeezing the XOF until done. Parse is inherently variable-time: its
// control flow depends on public randomness derived from a public
// matrix seed, never on a secret.
func parse(xof sha3.ShakeHash) Poly {
	var r Poly
	r.domain = domainNTT

	var buf [shake128Rate]byte
	ctr := 0
	for ctr < kyberN {
		if _, err := xof.Read(buf[:]); err != nil {
			// sha3.ShakeHash.Read never returns an error; a non-nil
			// error here would indicate a broken XOF implementation.
			panic("kyber: shake128 read failed: " + err.Error())
		}
		for pos := 0; pos+3 <= shake128Rate && ctr < kyberN; pos += 3 {
			d1 := uint16(buf[pos]) | (uint16(buf[pos+1]&0x0f) << 8)
			d2 := (uint16(buf[pos+1]) >> 4) | (uint16(buf[pos+2]) << 4)

			if d1 < kyberQ {
				r.coeffs[ctr] = d1
				ctr++
			}
			if d2 < kyberQ && ctr < kyberN {
				r.coeffs[ctr] = d2
				ctr++
			}
		}
	}
	return r
}

// bitAt returns bit index idx of buf, where bit 0 of a byte is that
// byte's most-significant bit, and bit indices increase from the
// first byte of buf onward (MSB-first within a byte, LSB-byte-first
// overall).
func bitAt(buf []byte, idx int) uint16 {
	byteIdx, bitIdx := idx/8, idx%8
	return uint16(buf[byteIdx]>>uint(7-bitIdx)) & 1
}

// cbd samples a normal-domain Poly whose coefficients follow the
// centered binomial distribution with parameter eta, from exactly
// 64*eta bytes of uniform randomness (512*eta bits).
func cbd(buf []byte, eta int) Poly {
	var r Poly
	r.domain = domainNormal

	for i := 0; i < kyberN; i++ {
		var a, b uint16
		base := 2 * i * eta
		for j := 0; j < eta; j++ {
			a += bitAt(buf, base+j)
		}
		for j := 0; j < eta; j++ {
			b += bitAt(buf, base+eta+j)
		}
		r.coeffs[i] = subModQ(ModQ(a), ModQ(b))
	}
	return r
}

// getNoise deterministically derives a centered-binomial Poly from a
// 32-byte seed and a one-byte nonce, via SHAKE-256(seed || nonce).
func getNoise(seed []byte, nonce byte, eta int) Poly {
	extSeed := make([]byte, 0, SymSize+1)
	extSeed = append(extSeed, seed...)
	extSeed = append(extSeed, nonce)

	buf := make([]byte, 64*eta)
	sha3.ShakeSum256(buf, extSeed)

	return cbd(buf, eta)
}
