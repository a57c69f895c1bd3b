// ntt.go - Number-Theoretic Transform.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

// zetas holds zeta^brv(i) mod q for i in [0, 128), where zeta = 17 is a
// primitive 256th root of unity mod q = 3329 and brv is 7-bit bit-
// reversal. Since q-1 = 3328 = 2^8*13 has no 512th root of unity, the
// negacyclic NTT over R_q only splits X^256+1 into 128 irreducible
// quadratics rather than 256 linear factors. ntt/invNTT's butterfly
// loops use indices 1..127 and nttBaseMul uses 64..127, so index 0
// (zetas[0] == 1) is never read.
var zetas = [128]uint16{
	1, 1729, 2580, 3289, 2642, 630, 1897, 848,
	1062, 1919, 193, 797, 2786, 3260, 569, 1746,
	296, 2447, 1339, 1476, 3046, 56, 2240, 1333,
	1426, 2094, 535, 2882, 2393, 2879, 1974, 821,
	289, 331, 3253, 1756, 1197, 2304, 2277, 2055,
	650, 1977, 2513, 632, 2865, 33, 1320, 1915,
	2319, 1435, 807, 452, 1438, 2868, 1534, 2402,
	2647, 2617, 1481, 648, 2474, 3110, 1227, 910,
	17, 2761, 583, 2649, 1637, 723, 2288, 1100,
	1409, 2662, 3281, 233, 756, 2156, 3015, 3050,
	1703, 1651, 2789, 1789, 1847, 952, 1461, 2687,
	939, 2308, 2437, 2388, 733, 2337, 268, 641,
	1584, 2298, 2037, 3220, 375, 2549, 2090, 1645,
	1063, 319, 2773, 757, 2099, 561, 2466, 2594,
	2804, 1092, 403, 1026, 1143, 2150, 2775, 886,
	1722, 1212, 1874, 1029, 2110, 2935, 885, 2154,
}

// invNTT128 is the inverse of 128 mod q (128*3303 = 1 mod q): each of
// invNTT's seven butterfly layers doubles the values, so invNTT scales
// its output by this constant to return to the normal domain.
const invNTT128 = 3303

// ntt computes the forward, in-place, negacyclic NTT of a normal-domain
// coefficient vector. Input is ordered normally; output is the NTT
// domain representation used by nttBaseMul.
func ntt(a [kyberN]ModQ) [kyberN]ModQ {
	r := a
	k := 1
	for length := 128; length >= 2; length >>= 1 {
		for start := 0; start < kyberN; start += 2 * length {
			zeta := ModQ(zetas[k])
			k++
			for j := start; j < start+length; j++ {
				t := mulModQ(zeta, r[j+length])
				r[j+length] = subModQ(r[j], t)
				r[j] = addModQ(r[j], t)
			}
		}
	}
	return r
}

// invNTT computes the inverse, in-place, negacyclic NTT, mapping an
// NTT-domain coefficient vector back to the normal domain.
func invNTT(a [kyberN]ModQ) [kyberN]ModQ {
	r := a
	k := 127
	for length := 2; length <= 128; length <<= 1 {
		for start := 0; start < kyberN; start += 2 * length {
			zeta := ModQ(zetas[k])
			k--
			for j := start; j < start+length; j++ {
				t := r[j]
				r[j] = addModQ(t, r[j+length])
				r[j+length] = mulModQ(zeta, subModQ(r[j+length], t))
			}
		}
	}
	for i := range r {
		r[i] = mulModQ(r[i], invNTT128)
	}
	return r
}

// nttBaseMul computes the NTT-domain pointwise ("base") multiplication
// of a and b: the product such that invNTT(nttBaseMul(ntt(x), ntt(y)))
// equals the normal-domain product of x and y in R_q.
//
// Each consecutive pair of coefficients (a[2i], a[2i+1]) represents a
// degree-1 polynomial in the quotient ring Z_q[X]/(X^2-gamma_i), for
// gamma_i = zetas[64+i] on even blocks and -zetas[64+i] on the paired
// odd block two coefficients later; multiplication in that ring is a
// single degree-1-by-degree-1 product reduced by X^2 = gamma_i.
func nttBaseMul(a, b [kyberN]ModQ) [kyberN]ModQ {
	var r [kyberN]ModQ
	for i := 0; i < 64; i++ {
		gamma := ModQ(zetas[64+i])
		basemulPair(&r, a, b, 4*i, gamma)
		basemulPair(&r, a, b, 4*i+2, subModQ(0, gamma))
	}
	return r
}

// basemulPair computes, for the pair of coefficients starting at
// offset off, the product (a[off]+a[off+1]X)*(b[off]+b[off+1]X) mod
// (X^2-gamma) and writes the two resulting coefficients into r.
func basemulPair(r *[kyberN]ModQ, a, b [kyberN]ModQ, off int, gamma ModQ) {
	a0, a1 := a[off], a[off+1]
	b0, b1 := b[off], b[off+1]

	r[off] = addModQ(mulModQ(a0, b0), mulModQ(gamma, mulModQ(a1, b1)))
	r[off+1] = addModQ(mulModQ(a0, b1), mulModQ(a1, b0))
}
