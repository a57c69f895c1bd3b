// modq.go - Modular arithmetic over Z_q, q = 3329.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

// ModQ is an element of Z_q stored reduced, i.e. always in [0, q).
type ModQ = uint16

const (
	// barrettShift/barrettMultiplier implement Barrett reduction for any
	// x in [0, q*q): t = (x*barrettMultiplier) >> barrettShift
	// approximates x/q closely enough that a single conditional
	// subtraction after x - t*q lands back in [0, q). Both constants
	// were chosen so this holds for every x in [0, q*q), not just the
	// values arithmetic in this package happens to produce.
	barrettShift      = 32
	barrettMultiplier = (uint64(1) << barrettShift) / kyberQ
)

// barrettReduce32 reduces x, which must be in [0, q*q), to the unique
// representative of x mod q in [0, q). It performs no data-dependent
// branches.
func barrettReduce32(x uint32) uint16 {
	t := uint32((uint64(x) * barrettMultiplier) >> barrettShift)
	r := x - t*kyberQ

	// r is now in [0, 2q); fold the top half down with a constant-time
	// conditional subtraction.
	mask := uint32(int32(r-kyberQ) >> 31) // all-ones iff r < q
	r -= kyberQ &^ mask

	return uint16(r)
}

// addModQ returns a+b mod q.
func addModQ(a, b ModQ) ModQ {
	return barrettReduce32(uint32(a) + uint32(b))
}

// subModQ returns a-b mod q.
func subModQ(a, b ModQ) ModQ {
	return barrettReduce32(uint32(a) + kyberQ - uint32(b))
}

// mulModQ returns a*b mod q.
func mulModQ(a, b ModQ) ModQ {
	return barrettReduce32(uint32(a) * uint32(b))
}
