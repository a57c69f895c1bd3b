// poly_test.go - Poly tests.

package kyber

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func randomPoly(t *testing.T, d domain) Poly {
	t.Helper()
	buf := make([]byte, 2*kyberN)
	_, err := rand.Read(buf)
	require.NoError(t, err)

	var p Poly
	p.domain = d
	for i := 0; i < kyberN; i++ {
		p.coeffs[i] = ModQ((uint16(buf[2*i]) | uint16(buf[2*i+1])<<8) % kyberQ)
	}
	return p
}

func TestPolyAddSub(t *testing.T) {
	require := require.New(t)

	a := randomPoly(t, domainNormal)
	b := randomPoly(t, domainNormal)

	sum, err := a.Add(b)
	require.NoError(err)
	back, err := sum.Sub(b)
	require.NoError(err)
	require.Equal(a, back)

	// Domain mismatch is caught, not silently miscomputed.
	bNTT := b
	bNTT.domain = domainNTT
	_, err = a.Add(bNTT)
	require.ErrorIs(err, ErrDomainMismatch)
	_, err = a.Sub(bNTT)
	require.ErrorIs(err, ErrDomainMismatch)
}

func TestPolyMulDomainMismatch(t *testing.T) {
	require := require.New(t)

	a := randomPoly(t, domainNormal)
	b := randomPoly(t, domainNTT)

	_, err := a.Mul(b)
	require.ErrorIs(err, ErrDomainMismatch)
}

func TestPolyMulViaNTTMatchesSchoolbook(t *testing.T) {
	require := require.New(t)

	a := randomPoly(t, domainNormal)
	b := randomPoly(t, domainNormal)

	want, err := a.Mul(b)
	require.NoError(err)
	require.Equal(domainNormal, want.domain)

	aNTT, err := a.NTT()
	require.NoError(err)
	bNTT, err := b.NTT()
	require.NoError(err)

	gotNTT, err := aNTT.Mul(bNTT)
	require.NoError(err)
	got, err := gotNTT.InvNTT()
	require.NoError(err)

	require.Equal(want.coeffs, got.coeffs)
}

func TestPolyScalarMul(t *testing.T) {
	require := require.New(t)

	a := randomPoly(t, domainNormal)
	scaled := a.ScalarMul(3)
	for i, c := range a.coeffs {
		require.EqualValues(mulModQ(c, 3), scaled.coeffs[i])
	}
}

func TestPolyPow(t *testing.T) {
	require := require.New(t)

	a := randomPoly(t, domainNormal)

	p0, err := a.Pow(0)
	require.NoError(err)
	require.Equal(onePoly(domainNormal), p0)

	p1, err := a.Pow(1)
	require.NoError(err)
	require.Equal(a, p1)

	p2, err := a.Pow(2)
	require.NoError(err)
	want, err := a.Mul(a)
	require.NoError(err)
	require.Equal(want, p2)

	p3, err := a.Pow(3)
	require.NoError(err)
	want3, err := want.Mul(a)
	require.NoError(err)
	require.Equal(want3, p3)

	_, err = a.Pow(-1)
	require.Error(err)
}

func TestFromMsgToMsg(t *testing.T) {
	require := require.New(t)

	zero := make([]byte, SymSize)
	p, err := FromMsg(zero)
	require.NoError(err)
	for _, c := range p.coeffs {
		require.EqualValues(0, c)
	}
	require.Equal(zero, ToMsg(p))

	allOnes := make([]byte, SymSize)
	for i := range allOnes {
		allOnes[i] = 0xff
	}
	p, err = FromMsg(allOnes)
	require.NoError(err)
	for _, c := range p.coeffs {
		require.EqualValues(1665, c)
	}
	require.Equal(allOnes, ToMsg(p))

	_, err = FromMsg(make([]byte, SymSize+1))
	require.ErrorIs(err, ErrInvalidLength)
}
