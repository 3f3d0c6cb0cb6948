package vdf

import (
	"encoding/binary"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func appendSegmentBytes(blob, y, pi []byte, T uint64) []byte {
	blob = append(blob, y...)
	blob = append(blob, pi...)
	tBuf := make([]byte, 8)
	binary.BigEndian.PutUint64(tBuf, T)
	return append(blob, tBuf...)
}

func TestCreateDiscriminantDeterministic(t *testing.T) {
	a := CreateDiscriminant([]byte{0x00}, 1024)
	b := CreateDiscriminant([]byte{0x00}, 1024)
	require.Equal(t, a, b)
	require.True(t, a.Sign() < 0)
}

func TestIdentityFixedPointAcrossAPI(t *testing.T) {
	d := CreateDiscriminant([]byte{0x00}, 1024)
	id := FormIdentity(d)

	require.Equal(t, id, FormMultiply(d, id, id))
	require.Equal(t, id, FormPower(d, id, big.NewInt(7)))
}

func TestSquaringMatchesPowerTwoAndMultiply(t *testing.T) {
	d := CreateDiscriminant([]byte("squaring test"), 512)
	g, err := FormGenerator(d)
	require.NoError(t, err)

	mul := FormMultiply(d, g, g)
	pow := FormPower(d, g, big.NewInt(2))

	require.Equal(t, mul, pow)
}

func TestTinyVDFVerifies(t *testing.T) {
	d := CreateDiscriminant([]byte("test"), 512)
	x := FormFromAB(d, big.NewInt(2), big.NewInt(1))

	cfg := NewConfig()
	const T = uint64(100)

	proof := Prove(cfg, d, x, T, nil)
	require.NotNil(t, proof)

	w := 1 + 2*((512+7)/8)
	y := proof[:w]
	pi := proof[w:]

	require.True(t, Verify(d, x, y, pi, T))
}

func TestMediumVDFVerifiesAndRejectsTamper(t *testing.T) {
	d := CreateDiscriminant([]byte("test"), 512)
	x := FormFromAB(d, big.NewInt(2), big.NewInt(1))

	cfg := NewConfig()
	const T = uint64(10000)

	proof := Prove(cfg, d, x, T, nil)
	require.NotNil(t, proof)

	w := 1 + 2*((512+7)/8)
	y := proof[:w]
	pi := append([]byte{}, proof[w:]...)

	require.True(t, Verify(d, x, y, pi, T))

	pi[len(pi)-1] ^= 0xff
	require.False(t, Verify(d, x, y, pi, T))
}

func TestEvaluateZeroReturnsX(t *testing.T) {
	d := CreateDiscriminant([]byte("boundary"), 512)
	x := FormFromAB(d, big.NewInt(2), big.NewInt(1))

	require.Equal(t, x, Evaluate(NewConfig(), d, x, 0, nil))
}

func TestProveZeroReturnsXAndIdentity(t *testing.T) {
	d := CreateDiscriminant([]byte("boundary"), 512)
	x := FormFromAB(d, big.NewInt(2), big.NewInt(1))

	proof := Prove(NewConfig(), d, x, 0, nil)
	w := 1 + 2*((512+7)/8)

	require.Equal(t, x, proof[:w])
	require.Equal(t, FormIdentity(d), proof[w:])
	require.True(t, Verify(d, x, proof[:w], proof[w:], 0))
}

func TestEvaluateOneMatchesNudupl(t *testing.T) {
	d := CreateDiscriminant([]byte("boundary"), 512)
	x := FormFromAB(d, big.NewInt(2), big.NewInt(1))

	got := Evaluate(NewConfig(), d, x, 1, nil)
	want := FormPower(d, x, big.NewInt(2))

	require.Equal(t, want, got)
}

func TestEvaluateWithIntermediatesRoundTripsThroughProveWithIntermediates(t *testing.T) {
	d := CreateDiscriminant([]byte("intermediates"), 512)
	x := FormFromAB(d, big.NewInt(2), big.NewInt(1))
	cfg := NewConfig()
	const T = uint64(256)

	blob := EvaluateWithIntermediates(cfg, d, x, T, nil)
	require.NotNil(t, blob)

	w := 1 + 2*((512+7)/8)
	y := blob[:w]
	intermediates := blob[w:]

	pi := ProveWithIntermediates(cfg, d, x, y, intermediates, T)
	require.NotNil(t, pi)
	require.True(t, Verify(d, x, y, pi, T))
}

func TestProveDoubleAndAddVerifies(t *testing.T) {
	d := CreateDiscriminant([]byte("naive"), 512)
	x := FormFromAB(d, big.NewInt(2), big.NewInt(1))
	cfg := NewConfig()
	const T = uint64(200)

	y := Evaluate(cfg, d, x, T, nil)
	require.NotNil(t, y)

	pi := ProveDoubleAndAdd(d, x, y, T)
	require.NotNil(t, pi)
	require.True(t, Verify(d, x, y, pi, T))
}

func TestCascadeViaAPI(t *testing.T) {
	d := CreateDiscriminant([]byte("cascade api"), 512)
	x0 := FormFromAB(d, big.NewInt(2), big.NewInt(1))
	cfg := NewConfig()

	proof0 := Prove(cfg, d, x0, 500, nil)
	require.NotNil(t, proof0)
	w := 1 + 2*((512+7)/8)
	y0, pi0 := proof0[:w], proof0[w:]

	proof1 := Prove(cfg, d, y0, 500, nil)
	require.NotNil(t, proof1)
	y1, pi1 := proof1[:w], proof1[w:]

	blob := appendSegmentBytes(nil, y0, pi0, 500)
	blob = appendSegmentBytes(blob, y1, pi1, 500)

	require.True(t, VerifyCascade(d, x0, blob, 1000, 512, 1))
}

func TestGetBFromProofAPI(t *testing.T) {
	d := CreateDiscriminant([]byte("cascade api b"), 512)
	x0 := FormFromAB(d, big.NewInt(2), big.NewInt(1))
	cfg := NewConfig()

	proof0 := Prove(cfg, d, x0, 500, nil)
	require.NotNil(t, proof0)
	w := 1 + 2*((512+7)/8)
	y0, pi0 := proof0[:w], proof0[w:]

	blob := appendSegmentBytes(nil, y0, pi0, 500)

	require.NotNil(t, GetBFromProof(d, x0, blob, 500, 0))
}
