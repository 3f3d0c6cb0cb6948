package classgroup

import "math/big"

// floorDiv divides x by y and rounds toward negative infinity, matching the
// mathematical convention the reduction and composition formulas below are
// written against (big.Int.Quo truncates toward zero instead).
func floorDiv(x, y *big.Int) *big.Int {
	q, r := new(big.Int), new(big.Int)
	q.QuoRem(x, y, r)
	if r.Sign() != 0 && (r.Sign() < 0) != (y.Sign() < 0) {
		q.Sub(q, bigOne)
	}
	return q
}

var (
	bigZero = big.NewInt(0)
	bigOne  = big.NewInt(1)
	bigTwo  = big.NewInt(2)
)

// gcdAllowZero wraps big.Int.GCD, which panics on non-positive inputs, to
// match the usual gcd(0, x) = |x| convention used throughout form reduction.
func gcdAllowZero(a, b *big.Int) *big.Int {
	if a.Sign() == 0 {
		return new(big.Int).Abs(b)
	}
	if b.Sign() == 0 {
		return new(big.Int).Abs(a)
	}
	return new(big.Int).GCD(nil, nil, new(big.Int).Abs(a), new(big.Int).Abs(b))
}

// extGCD returns g, u, v such that g = u*a + v*b, for arbitrary-sign a, b.
func extGCD(a, b *big.Int) (g, u, v *big.Int) {
	r0, r1 := new(big.Int).Set(a), new(big.Int).Set(b)
	s0, s1 := big.NewInt(1), big.NewInt(0)
	t0, t1 := big.NewInt(0), big.NewInt(1)

	if r0.Sign() < 0 {
		r0.Neg(r0)
		s0.Neg(s0)
	}
	if r1.Sign() < 0 {
		r1.Neg(r1)
		t1.Neg(t1)
	}

	for r1.Sign() != 0 {
		q, r := new(big.Int), new(big.Int)
		q.QuoRem(r0, r1, r)
		r0, r1 = r1, r
		s0, s1 = s1, new(big.Int).Sub(s0, new(big.Int).Mul(q, s1))
		t0, t1 = t1, new(big.Int).Sub(t0, new(big.Int).Mul(q, t1))
	}
	return r0, s0, t0
}

// solveMod finds a particular solution s, and a step t, to a*x = b (mod m),
// such that every solution is s + k*t for integer k. Returns ok = false if
// the congruence has no solution.
func solveMod(a, b, m *big.Int) (s, t *big.Int, ok bool) {
	g, d, _ := extGCD(a, m)
	if g.Sign() == 0 {
		return nil, nil, false
	}

	q, r := new(big.Int), new(big.Int)
	q.QuoRem(b, g, r)
	if r.Sign() != 0 {
		return nil, nil, false
	}

	s = new(big.Int).Mul(q, d)
	s.Mod(s, m)
	t = floorDiv(m, g)
	return s, t, true
}

// partialEuclid runs the Euclidean algorithm on (r0, r1) tracking Bezout
// cofactors, stopping as soon as the running remainder's magnitude is at
// most bound. It returns r, u, v with r = u*r0 + v*r1 and |r| <= bound
// (unless r0, r1 were already within bound, in which case it returns
// immediately). This is the "extended-gcd with early exit" building block
// NUCOMP/NUDUPL use to keep intermediate forms small.
func partialEuclid(r0, r1, bound *big.Int) (r, u, v *big.Int) {
	rPrev, rCur := new(big.Int).Set(r0), new(big.Int).Set(r1)
	uPrev, uCur := big.NewInt(1), big.NewInt(0)
	vPrev, vCur := big.NewInt(0), big.NewInt(1)

	for new(big.Int).Abs(rCur).Cmp(bound) > 0 {
		q, rem := new(big.Int), new(big.Int)
		q.QuoRem(rPrev, rCur, rem)
		rPrev, rCur = rCur, rem
		uPrev, uCur = uCur, new(big.Int).Sub(uPrev, new(big.Int).Mul(q, uCur))
		vPrev, vCur = vCur, new(big.Int).Sub(vPrev, new(big.Int).Mul(q, vCur))
	}
	return rCur, uCur, vCur
}

// boundedGCD computes gcd(a, b) exactly, but tries the L-bounded partial
// Euclidean step first: when the bounded remainder it produces already
// divides both inputs, it is the gcd and no full-size gcd computation is
// needed. Falls back to the exact big.Int gcd otherwise.
func boundedGCD(a, b, l *big.Int) *big.Int {
	if a.Sign() == 0 {
		return new(big.Int).Abs(b)
	}
	if b.Sign() == 0 {
		return new(big.Int).Abs(a)
	}
	r, _, _ := partialEuclid(new(big.Int).Abs(a), new(big.Int).Abs(b), l)
	if r.Sign() != 0 {
		amod, bmod := new(big.Int), new(big.Int)
		amod.Mod(a, r)
		bmod.Mod(b, r)
		if amod.Sign() == 0 && bmod.Sign() == 0 {
			return new(big.Int).Abs(r)
		}
	}
	return gcdAllowZero(a, b)
}

// root computes the integer n-th root of a non-negative x via Newton's
// method, matching the "nth_root" primitive the specification assumes of
// the underlying BigInt library.
func root(x *big.Int, n int64) *big.Int {
	if x.Sign() <= 0 {
		return big.NewInt(0)
	}
	if x.Cmp(bigOne) == 0 {
		return big.NewInt(1)
	}

	guess := new(big.Int).Set(x)
	nBig := big.NewInt(n)
	nMinusOne := big.NewInt(n - 1)
	for {
		// next = ((n-1)*guess + x/guess^(n-1)) / n
		powed := new(big.Int).Exp(guess, nMinusOne, nil)
		if powed.Sign() == 0 {
			powed = bigOne
		}
		next := new(big.Int).Mul(nMinusOne, guess)
		next.Add(next, new(big.Int).Quo(x, powed))
		next.Quo(next, nBig)

		if next.Cmp(guess) >= 0 {
			break
		}
		guess = next
	}
	for {
		p := new(big.Int).Exp(guess, nBig, nil)
		if p.Cmp(x) <= 0 {
			break
		}
		guess.Sub(guess, bigOne)
	}
	return guess
}
