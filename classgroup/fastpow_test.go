package classgroup

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFastPowZeroIsIdentity(t *testing.T) {
	d := testDiscriminant(t)
	l := PartialReductionBound(d)
	g, err := Generator(d)
	require.NoError(t, err)

	p, err := FastPow(g, d, big.NewInt(0), l)
	require.NoError(t, err)
	require.True(t, p.Equal(Identity(d)))
}

func TestFastPowTwoMatchesDuplicate(t *testing.T) {
	d := testDiscriminant(t)
	l := PartialReductionBound(d)
	g, err := Generator(d)
	require.NoError(t, err)

	dup, err := Duplicate(g, l)
	require.NoError(t, err)

	pow, err := FastPow(g, d, big.NewInt(2), l)
	require.NoError(t, err)

	require.True(t, dup.Equal(pow))
}

func TestFastPowMatchesRepeatedDuplicate(t *testing.T) {
	d := testDiscriminant(t)
	l := PartialReductionBound(d)
	g, err := Generator(d)
	require.NoError(t, err)

	acc := g
	for i := 0; i < 8; i++ {
		var err error
		acc, err = Duplicate(acc, l)
		require.NoError(t, err)
	}

	pow, err := FastPow(g, d, big.NewInt(256), l)
	require.NoError(t, err)
	require.True(t, acc.Equal(pow))
}

func TestFastPowRejectsNegativeExponent(t *testing.T) {
	d := testDiscriminant(t)
	l := PartialReductionBound(d)
	g, err := Generator(d)
	require.NoError(t, err)

	_, err = FastPow(g, d, big.NewInt(-1), l)
	require.ErrorIs(t, err, ErrInvalidInput)
}
