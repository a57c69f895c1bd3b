// params_test.go - ParameterSet tests.

package kyber

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var allParams = []*ParameterSet{Kyber512, Kyber768, Kyber1024}

func TestParameterSetSizes(t *testing.T) {
	require := require.New(t)

	cases := []struct {
		p          *ParameterSet
		pk, sk, ct int
	}{
		{Kyber512, 800, 768, 768},
		{Kyber768, 1184, 1152, 1088},
		{Kyber1024, 1568, 1536, 1568},
	}

	for _, c := range cases {
		t.Run(c.p.Name(), func(t *testing.T) {
			require.Equal(c.pk, c.p.PublicKeySize(), "PublicKeySize")
			require.Equal(c.sk, c.p.PrivateKeySize(), "PrivateKeySize")
			require.Equal(c.ct, c.p.CipherTextSize(), "CipherTextSize")
		})
	}
}

func TestParameterSetFromName(t *testing.T) {
	require := require.New(t)

	for _, p := range allParams {
		got, err := ParameterSetFromName(p.Name())
		require.NoError(err)
		require.Same(p, got)
	}

	_, err := ParameterSetFromName("Kyber-42")
	require.ErrorIs(err, ErrInvalidParameter)
}
