package vdf

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"source.quilibrium.com/quilibrium/classgroupvdf/classgroup"
)

func testD(t *testing.T) *big.Int {
	t.Helper()
	return classgroup.CreateDiscriminant([]byte("vdf evaluator tests"), 512)
}

func TestEvaluateZeroIterationsIsFixedPoint(t *testing.T) {
	d := testD(t)
	x, err := classgroup.Generator(d)
	require.NoError(t, err)

	res, err := evaluate(NewConfig(), d, x, 0, nil, false)
	require.NoError(t, err)
	require.True(t, res.y.Equal(x))
}

func TestEvaluateOneIterationMatchesDuplicate(t *testing.T) {
	d := testD(t)
	x, err := classgroup.Generator(d)
	require.NoError(t, err)

	l := classgroup.PartialReductionBound(d)
	dup, err := classgroup.Duplicate(x, l)
	require.NoError(t, err)

	res, err := evaluate(NewConfig(), d, x, 1, nil, false)
	require.NoError(t, err)
	require.True(t, res.y.Equal(dup))
}

func TestEvaluateWithIntermediatesStartsAtX(t *testing.T) {
	d := testD(t)
	x, err := classgroup.Generator(d)
	require.NoError(t, err)

	res, err := evaluate(NewConfig(), d, x, 64, nil, true)
	require.NoError(t, err)
	require.NotEmpty(t, res.intermediates)
	require.True(t, res.intermediates[0].Equal(x))
}

func TestEvaluateCancellationStopsEarly(t *testing.T) {
	d := testD(t)
	x, err := classgroup.Generator(d)
	require.NoError(t, err)

	cfg := NewConfig(WithCancelPollInterval(4))
	calls := 0
	shouldContinue := func() bool {
		calls++
		return calls < 2
	}

	_, err = evaluate(cfg, d, x, 64, shouldContinue, false)
	require.ErrorIs(t, err, ErrCancelled)
}
