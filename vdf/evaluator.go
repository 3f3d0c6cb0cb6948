package vdf

import (
	"math/big"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"source.quilibrium.com/quilibrium/classgroupvdf/classgroup"
)

type evalResult struct {
	y             classgroup.Form
	intermediates []classgroup.Form
}

// evaluate computes y = x^(2^T) in Cl(D) by repeated NUDUPL, optionally
// checkpointing one form every k*l squarings for the prover to consume.
// should_continue is polled every cfg.CancelPollInterval squarings; a
// false reading aborts with ErrCancelled and no partial result.
func evaluate(
	cfg Config,
	d *big.Int,
	x classgroup.Form,
	T uint64,
	shouldContinue func() bool,
	withIntermediates bool,
) (*evalResult, error) {
	logger := cfg.logging()
	l := classgroup.PartialReductionBound(d)

	k, blockL := approximateParametersFor(T, cfg)
	kl := uint64(k) * uint64(blockL)
	if kl == 0 {
		kl = 1
	}

	pollInterval := cfg.CancelPollInterval
	if pollInterval == 0 {
		pollInterval = 1 << 16
	}

	y := x.Clone()

	var intermediates []classgroup.Form
	if withIntermediates {
		intermediates = make([]classgroup.Form, 0, T/kl+1)
	}

	for i := uint64(0); i < T; i++ {
		if withIntermediates && i%kl == 0 {
			intermediates = append(intermediates, y.Clone())
		}

		if shouldContinue != nil && i > 0 && i%pollInterval == 0 {
			if !shouldContinue() {
				logger.Info("vdf evaluation cancelled", zap.Uint64("squarings", i), zap.Uint64("target", T))
				return nil, ErrCancelled
			}
		}

		var err error
		y, err = classgroup.Duplicate(y, l)
		if err != nil {
			return nil, errors.Wrap(err, "evaluate")
		}
	}

	logger.Debug("vdf evaluation complete", zap.Uint64("squarings", T), zap.Int("intermediates", len(intermediates)))

	return &evalResult{y: y, intermediates: intermediates}, nil
}
