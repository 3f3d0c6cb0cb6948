package classgroup

import "math/big"

// Compose composes two forms by Gauss composition, solving the two
// composition congruences with solveMod, followed by reduction. The L
// parameter (⌊|D|^(1/4)⌋) is only passed to boundedGCD, which tries an
// L-bounded partial Euclidean step before falling back to an exact gcd,
// so the result is the same for any L. The intermediate coefficients are
// not bounded by L, and the result is not rebuilt from small cofactors.
// Both inputs must have the same discriminant; otherwise the congruences
// generally have no solution and ErrArithmetic is returned.
//
// If either input is not reduced, it is reduced first, matching the
// "reduce first" edge case in the form-algebra specification. Composing
// with the identity returns the other operand unchanged.
func Compose(x, y Form, l *big.Int) (Form, error) {
	f1 := x.Reduce()
	f2 := y.Reduce()

	g := new(big.Int).Add(f1.b, f2.b)
	g = floorDiv(g, bigTwo)

	h := new(big.Int).Sub(f2.b, f1.b)
	h = floorDiv(h, bigTwo)

	w := boundedGCD(boundedGCD(f1.a, f2.a, l), g, l)

	j := new(big.Int).Set(w)
	r := big.NewInt(0)
	s := floorDiv(f1.a, w)
	t := floorDiv(f2.a, w)
	u := floorDiv(g, w)

	b1 := new(big.Int).Mul(h, u)
	b1.Add(b1, new(big.Int).Mul(s, f1.c))
	kTemp, constantFactor, ok := solveMod(new(big.Int).Mul(t, u), b1, new(big.Int).Mul(s, t))
	if !ok {
		return Form{}, ErrArithmetic
	}

	n, _, ok := solveMod(new(big.Int).Mul(t, constantFactor), new(big.Int).Sub(h, new(big.Int).Mul(t, kTemp)), s)
	if !ok {
		return Form{}, ErrArithmetic
	}

	k := new(big.Int).Add(kTemp, new(big.Int).Mul(constantFactor, n))

	l1 := new(big.Int).Sub(new(big.Int).Mul(t, k), h)
	l1 = floorDiv(l1, s)

	tuk := new(big.Int).Mul(t, u)
	tuk.Mul(tuk, k)
	tuk.Sub(tuk, new(big.Int).Mul(h, u))
	tuk.Sub(tuk, new(big.Int).Mul(s, f1.c))
	st := new(big.Int).Mul(s, t)
	m := floorDiv(tuk, st)

	a3 := new(big.Int).Sub(st, new(big.Int).Mul(r, u))

	b3 := new(big.Int).Mul(j, u)
	b3.Add(b3, new(big.Int).Mul(m, r))
	b3.Sub(b3, new(big.Int).Mul(k, t))
	b3.Sub(b3, new(big.Int).Mul(l1, s))

	c3 := new(big.Int).Mul(k, l1)
	c3.Sub(c3, new(big.Int).Mul(j, m))

	return Form{a3, b3, c3}.Reduce(), nil
}

// Duplicate squares a form in Cl(D). It is the special case of
// Compose(f, f, L): with g = b and h = 0 it needs the single gcd
// gcd(a, b) instead of two, then solves the same two congruences as
// Compose with solveMod. As in Compose, L is only used by boundedGCD.
func Duplicate(f Form, l *big.Int) (Form, error) {
	x := f.Reduce()

	h := big.NewInt(0)
	w := boundedGCD(x.a, x.b, l)

	j := new(big.Int).Set(w)
	r := big.NewInt(0)
	s := floorDiv(x.a, w)
	t := s
	u := floorDiv(x.b, w)

	b1 := new(big.Int).Mul(h, u)
	b1.Add(b1, new(big.Int).Mul(s, x.c))
	kTemp, constantFactor, ok := solveMod(new(big.Int).Mul(t, u), b1, new(big.Int).Mul(s, t))
	if !ok {
		return Form{}, ErrArithmetic
	}

	n, _, ok := solveMod(new(big.Int).Mul(t, constantFactor), new(big.Int).Sub(h, new(big.Int).Mul(t, kTemp)), s)
	if !ok {
		return Form{}, ErrArithmetic
	}

	k := new(big.Int).Add(kTemp, new(big.Int).Mul(constantFactor, n))

	l1 := new(big.Int).Sub(new(big.Int).Mul(t, k), h)
	l1 = floorDiv(l1, s)

	tuk := new(big.Int).Mul(t, u)
	tuk.Mul(tuk, k)
	tuk.Sub(tuk, new(big.Int).Mul(h, u))
	tuk.Sub(tuk, new(big.Int).Mul(s, x.c))
	st := new(big.Int).Mul(s, t)
	m := floorDiv(tuk, st)

	a3 := new(big.Int).Sub(st, new(big.Int).Mul(r, u))

	b3 := new(big.Int).Mul(j, u)
	b3.Add(b3, new(big.Int).Mul(m, r))
	b3.Sub(b3, new(big.Int).Mul(k, t))
	b3.Sub(b3, new(big.Int).Mul(l1, s))

	c3 := new(big.Int).Mul(k, l1)
	c3.Sub(c3, new(big.Int).Mul(j, m))

	return Form{a3, b3, c3}.Reduce(), nil
}

// PartialReductionBound returns L = ⌊|D|^(1/4)⌋, the bound Compose and
// Duplicate pass to boundedGCD for its early-exit gcd attempt.
func PartialReductionBound(d *big.Int) *big.Int {
	return root(new(big.Int).Abs(d), 4)
}
