package classgroup

import "math/big"

// FastPow computes x^n in Cl(D) by left-to-right binary exponentiation:
// for each bit of n from the most significant downward, the accumulator
// is squared via Duplicate, and if the bit is set, composed with x via
// Compose. n must be non-negative; n == 0 yields the identity.
func FastPow(x Form, d, n, l *big.Int) (Form, error) {
	if n.Sign() < 0 {
		return Form{}, ErrInvalidInput
	}
	if n.Sign() == 0 {
		return Identity(d), nil
	}

	acc := Identity(d)
	for i := n.BitLen() - 1; i >= 0; i-- {
		var err error
		acc, err = Duplicate(acc, l)
		if err != nil {
			return Form{}, err
		}
		if n.Bit(i) == 1 {
			acc, err = Compose(acc, x, l)
			if err != nil {
				return Form{}, err
			}
		}
	}
	return acc, nil
}

// FastPowInt64 is a convenience wrapper over FastPow for small exponents,
// used by the Wesolowski block algorithm's inner loops (e.g. pow(z, b1)).
func FastPowInt64(x Form, d *big.Int, n int64, l *big.Int) (Form, error) {
	return FastPow(x, d, big.NewInt(n), l)
}
