package vdf

import (
	"math/big"

	"github.com/pkg/errors"

	"source.quilibrium.com/quilibrium/classgroupvdf/classgroup"
)

// getB derives the Wesolowski challenge prime from the fixed-width
// serialization of x and y. B is a 264-bit prime with bit 263 forced, per
// the Fiat-Shamir construction: it must depend on every public input or a
// prover could forge proofs for exponents other than the claimed T.
func getB(d *big.Int, x, y classgroup.Form) *big.Int {
	buf := append(classgroup.Serialize(x, d), classgroup.Serialize(y, d)...)
	return classgroup.HashPrime(buf, 264, []int{263})
}

// getBlock returns the k-bit digit at position i (0 = least significant)
// of the base-2^k expansion of floor(2^T / B), computed via modular
// exponentiation rather than materializing 2^T directly. The block is
// computed and returned as a big.Int and never exported to bytes, so a
// zero block is simply returned as 0.
func getBlock(i, k int, T uint64, B *big.Int) *big.Int {
	exp := int64(T) - int64(k)*int64(i+1)
	if exp < 0 {
		return big.NewInt(0)
	}

	twoToK := new(big.Int).Lsh(big.NewInt(1), uint(k))
	r := new(big.Int).Exp(big.NewInt(2), big.NewInt(exp), B)
	r.Mul(r, twoToK)
	r.Div(r, B)
	return r.Mod(r, twoToK)
}

// proveBlockWithB implements the (k, l) block-decomposition Wesolowski
// prover: it reconstructs pi = x^(floor(2^T/B)) from the checkpointed
// intermediates without ever forming the big exponent directly, splitting
// each k-bit digit's bucket accumulation into two passes of 2^(k/2) work.
func proveBlockWithB(
	d *big.Int,
	intermediates []classgroup.Form,
	T uint64,
	k, l int,
	B *big.Int,
) (classgroup.Form, error) {
	L := classgroup.PartialReductionBound(d)
	id := classgroup.Identity(d)

	numBuckets := 1 << k
	kl := uint64(k) * uint64(l)
	iMax := int((T + kl - 1) / kl)

	k1 := k / 2
	k0 := k - k1

	pi := id

	for j := l - 1; j >= 0; j-- {
		var err error
		pi, err = classgroup.FastPowInt64(pi, d, int64(1)<<uint(k), L)
		if err != nil {
			return classgroup.Form{}, errors.Wrap(err, "proveBlock: raise pi to 2^k")
		}

		ys := make([]classgroup.Form, numBuckets)
		for b := range ys {
			ys[b] = id
		}

		for i := 0; i < iMax; i++ {
			pos := i*l + j
			if T < uint64(k)*(uint64(pos)+1) {
				continue
			}
			if i >= len(intermediates) {
				return classgroup.Form{}, errors.Wrap(ErrInvalidInput, "proveBlock: missing intermediate")
			}

			b := int(getBlock(pos, k, T, B).Int64())
			ys[b], err = classgroup.Compose(ys[b], intermediates[i], L)
			if err != nil {
				return classgroup.Form{}, errors.Wrap(err, "proveBlock: bucket accumulate")
			}
		}

		for b1 := 0; b1 < (1 << k1); b1++ {
			z := id
			for b0 := 0; b0 < (1 << k0); b0++ {
				z, err = classgroup.Compose(z, ys[b1*(1<<k0)+b0], L)
				if err != nil {
					return classgroup.Form{}, errors.Wrap(err, "proveBlock: b1 pass")
				}
			}
			zp, err := classgroup.FastPowInt64(z, d, int64(b1)<<uint(k0), L)
			if err != nil {
				return classgroup.Form{}, errors.Wrap(err, "proveBlock: b1 raise")
			}
			pi, err = classgroup.Compose(pi, zp, L)
			if err != nil {
				return classgroup.Form{}, errors.Wrap(err, "proveBlock: b1 merge")
			}
		}

		for b0 := 0; b0 < (1 << k0); b0++ {
			z := id
			for b1 := 0; b1 < (1 << k1); b1++ {
				z, err = classgroup.Compose(z, ys[b1*(1<<k0)+b0], L)
				if err != nil {
					return classgroup.Form{}, errors.Wrap(err, "proveBlock: b0 pass")
				}
			}
			zp, err := classgroup.FastPowInt64(z, d, int64(b0), L)
			if err != nil {
				return classgroup.Form{}, errors.Wrap(err, "proveBlock: b0 raise")
			}
			pi, err = classgroup.Compose(pi, zp, L)
			if err != nil {
				return classgroup.Form{}, errors.Wrap(err, "proveBlock: b0 merge")
			}
		}
	}

	return pi.Reduce(), nil
}

// proveFull runs the evaluator to produce y and its intermediates, then
// the block prover to produce pi, honoring should_continue throughout the
// evaluation phase. T = 0 is a fixed point: y = x, pi = identity.
func proveFull(
	cfg Config,
	d *big.Int,
	x classgroup.Form,
	T uint64,
	shouldContinue func() bool,
) (y, pi classgroup.Form, err error) {
	if T == 0 {
		return x.Clone(), classgroup.Identity(d), nil
	}

	k, l := approximateParametersFor(T, cfg)

	res, err := evaluate(cfg, d, x, T, shouldContinue, true)
	if err != nil {
		return classgroup.Form{}, classgroup.Form{}, err
	}

	b := getB(d, x, res.y)
	pi, err = proveBlockWithB(d, res.intermediates, T, k, l, b)
	if err != nil {
		return classgroup.Form{}, classgroup.Form{}, err
	}

	return res.y, pi, nil
}

// proveDoubleAndAdd is the naive reference prover: pi = x^(floor(2^T/B)),
// computed by forming the exact big quotient and a single FastPow call.
// It is correct for any T but materializes a 2^T-sized intermediate, so
// it is a correctness reference, not the production path for large T.
func proveDoubleAndAdd(d *big.Int, x, y classgroup.Form, T uint64) (classgroup.Form, error) {
	L := classgroup.PartialReductionBound(d)
	b := getB(d, x, y)

	quotient := new(big.Int).Lsh(big.NewInt(1), uint(T))
	quotient.Div(quotient, b)

	return classgroup.FastPow(x, d, quotient, L)
}
