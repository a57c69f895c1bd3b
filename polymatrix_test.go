// polymatrix_test.go - PolyMatrix tests.

package kyber

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenMatrixIsTransposed(t *testing.T) {
	require := require.New(t)

	rho := make([]byte, SymSize)
	_, err := rand.Read(rho)
	require.NoError(err)

	k := 3
	a := genMatrix(rho, k, false)
	aT := genMatrix(rho, k, true)

	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			require.Equal(a[i][j].coeffs, aT[j][i].coeffs, "a[%d][%d] vs aT[%d][%d]", i, j, j, i)
		}
	}
}

func TestGenMatrixDeterministic(t *testing.T) {
	require := require.New(t)

	rho := []byte("another fixed 32 byte seed here")
	require.Len(rho, SymSize)

	a1 := genMatrix(rho, 2, false)
	a2 := genMatrix(rho, 2, false)
	for i := range a1 {
		for j := range a1[i] {
			require.Equal(a1[i][j].coeffs, a2[i][j].coeffs)
		}
	}
}

func TestPolyMatrixMulVecShapeMismatch(t *testing.T) {
	require := require.New(t)

	rho := make([]byte, SymSize)
	a := genMatrix(rho, 3, false)
	v := randomPolyVec(t, 2, domainNTT)

	_, err := a.MulVec(v)
	require.ErrorIs(err, ErrShapeMismatch)
}

func TestPolyMatrixMulVecMatchesRowDot(t *testing.T) {
	require := require.New(t)

	rho := make([]byte, SymSize)
	_, err := rand.Read(rho)
	require.NoError(err)

	k := 2
	a := genMatrix(rho, k, false)
	v := randomPolyVec(t, k, domainNTT)

	got, err := a.MulVec(v)
	require.NoError(err)

	for i, row := range a {
		want, err := row.Dot(v)
		require.NoError(err)
		require.Equal(want.coeffs, got[i].coeffs)
	}
}
