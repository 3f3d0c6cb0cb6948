package vdf

import (
	"math/big"

	"source.quilibrium.com/quilibrium/classgroupvdf/classgroup"
)

// verify checks y = x^(2^T) given proof pi, recomputing the challenge
// prime B from x and y. It rejects any input that is not a valid reduced
// form of discriminant D before touching the group arithmetic, and never
// returns an error — adversarial input simply fails the check.
func verify(d *big.Int, x, y, pi classgroup.Form, T uint64) bool {
	_, ok := verifyWithB(d, x, y, pi, T, getB(d, x, y))
	return ok
}

// verifyWithB is the variant that takes B directly instead of recomputing
// it, returning lhs = pi^B * x^r and whether lhs = y held. Its only caller
// is verify; the cascade verifier checks each segment through verify, so
// B is recomputed for every segment.
func verifyWithB(d *big.Int, x, y, pi classgroup.Form, T uint64, B *big.Int) (classgroup.Form, bool) {
	for _, f := range []classgroup.Form{x, y, pi} {
		if !f.IsReduced() || f.Discriminant().Cmp(d) != 0 {
			return classgroup.Form{}, false
		}
	}

	L := classgroup.PartialReductionBound(d)

	r := new(big.Int).Exp(big.NewInt(2), new(big.Int).SetUint64(T), B)

	piB, err := classgroup.FastPow(pi, d, B, L)
	if err != nil {
		return classgroup.Form{}, false
	}
	xr, err := classgroup.FastPow(x, d, r, L)
	if err != nil {
		return classgroup.Form{}, false
	}
	lhs, err := classgroup.Compose(piB, xr, L)
	if err != nil {
		return classgroup.Form{}, false
	}

	return lhs, lhs.Equal(y)
}
