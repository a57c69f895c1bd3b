// modq_test.go - ModQ arithmetic tests.

package kyber

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBarrettReduce32(t *testing.T) {
	require := require.New(t)

	// Exhaustively checking every x in [0, q*q) is too slow for a unit
	// test; sample densely plus the exact boundary, where a reduction
	// bug is most likely to surface.
	for x := uint32(0); x < kyberQ*kyberQ; x += 97 {
		require.EqualValues(x%kyberQ, barrettReduce32(x), "x=%d", x)
	}
	for x := uint32(kyberQ*kyberQ - 1000); x < kyberQ*kyberQ; x++ {
		require.EqualValues(x%kyberQ, barrettReduce32(x), "x=%d", x)
	}
}

func TestModQArithmetic(t *testing.T) {
	require := require.New(t)

	for a := ModQ(0); a < kyberQ; a += 37 {
		for b := ModQ(0); b < kyberQ; b += 41 {
			require.EqualValues((uint32(a)+uint32(b))%kyberQ, addModQ(a, b))
			require.EqualValues((uint32(a)+kyberQ-uint32(b))%kyberQ, subModQ(a, b))
			require.EqualValues((uint32(a)*uint32(b))%kyberQ, mulModQ(a, b))
		}
	}
}
