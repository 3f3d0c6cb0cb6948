package classgroup

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func testDiscriminant(t *testing.T) *big.Int {
	d := CreateDiscriminant([]byte("classgroup form tests"), 512)
	require.True(t, d.Sign() < 0)
	return d
}

func TestIdentityIsReduced(t *testing.T) {
	d := testDiscriminant(t)
	id := Identity(d)
	require.True(t, id.IsReduced())
	require.Equal(t, int64(1), id.a.Int64())
	require.Equal(t, int64(1), id.b.Int64())
}

func TestIdentityDiscriminantIdentity(t *testing.T) {
	d := testDiscriminant(t)
	f := Identity(d)
	require.Zero(t, f.Discriminant().Cmp(d))
}

func TestReduceIdempotent(t *testing.T) {
	d := testDiscriminant(t)
	f := FromAB(d, big.NewInt(97), big.NewInt(55))
	r1 := f.Reduce()
	r2 := r1.Reduce()
	require.True(t, r1.Equal(r2))
	require.True(t, r1.IsReduced())
}

func TestReducedSatisfiesDiscriminantIdentity(t *testing.T) {
	d := testDiscriminant(t)
	f := FromAB(d, big.NewInt(12346), big.NewInt(10617)).Reduce()
	require.Zero(t, f.Discriminant().Cmp(d))
}

func TestGeneratorRequiresDMod8(t *testing.T) {
	// A discriminant with |D| ≡ 7 (mod 8) always satisfies D ≡ 1 (mod 8)
	// (D = -p, so D mod 8 = 8 - (p mod 8) = 1 when p mod 8 = 7), so
	// CreateDiscriminant's output should always admit a generator.
	d := testDiscriminant(t)
	g, err := Generator(d)
	require.NoError(t, err)
	require.True(t, g.IsReduced())
}

func TestGeneratorRejectsWrongResidue(t *testing.T) {
	d := big.NewInt(-3) // -3 mod 8 == 5, not 1
	_, err := Generator(d)
	require.ErrorIs(t, err, ErrNoGenerator)
}

func TestEqualIgnoresUnreducedRepresentation(t *testing.T) {
	d := testDiscriminant(t)
	f := FromAB(d, big.NewInt(98), big.NewInt(283))
	require.True(t, f.Equal(f.Reduce()))
}
