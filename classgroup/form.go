// Package classgroup implements the arithmetic of the class group of
// binary quadratic forms of imaginary discriminant: form reduction,
// NUCOMP/NUDUPL composition and squaring, fast exponentiation, the
// hash-to-integer/hash-to-prime primitives, discriminant derivation, and
// fixed-width form serialization.
package classgroup

import "math/big"

// Form is a binary quadratic form (a, b, c) with b^2 - 4ac = D for some
// discriminant D. Forms are cheap value types; every method returns a new
// Form rather than mutating the receiver.
type Form struct {
	a, b, c *big.Int
}

// FromAB builds the form (a, b, c) for the given discriminant, deriving
// c = (b^2 - D) / 4a. It does not reduce the result.
func FromAB(d, a, b *big.Int) Form {
	c := new(big.Int).Mul(b, b)
	c.Sub(c, d)
	c = floorDiv(c, new(big.Int).Mul(a, bigFour))
	return Form{a: new(big.Int).Set(a), b: new(big.Int).Set(b), c: c}
}

var bigFour = big.NewInt(4)

// Identity returns the identity element of Cl(D): (1, 1, (1-D)/4).
func Identity(d *big.Int) Form {
	return FromAB(d, bigOne, bigOne)
}

// Generator returns the form (2, 1, (1-D)/8), which only exists when
// D ≡ 1 (mod 8).
func Generator(d *big.Int) (Form, error) {
	mod8 := new(big.Int).Mod(d, big.NewInt(8))
	if mod8.Cmp(bigOne) != 0 {
		return Form{}, ErrNoGenerator
	}
	return FromAB(d, bigTwo, bigOne), nil
}

// A, B, C expose the form's coefficients. Callers must not mutate the
// returned values.
func (f Form) A() *big.Int { return f.a }
func (f Form) B() *big.Int { return f.b }
func (f Form) C() *big.Int { return f.c }

// Clone returns a deep copy of f.
func (f Form) Clone() Form {
	return Form{
		a: new(big.Int).Set(f.a),
		b: new(big.Int).Set(f.b),
		c: new(big.Int).Set(f.c),
	}
}

// Discriminant recomputes b^2 - 4ac from the form's coefficients.
func (f Form) Discriminant() *big.Int {
	d := new(big.Int).Mul(f.b, f.b)
	ac4 := new(big.Int).Mul(f.a, f.c)
	ac4.Mul(ac4, bigFour)
	d.Sub(d, ac4)
	return d
}

// Normalize brings b into the window -a < b <= a by subtracting an
// appropriate multiple of a from b and adjusting c to match.
func (f Form) Normalize() Form {
	a, b, c := new(big.Int).Set(f.a), new(big.Int).Set(f.b), new(big.Int).Set(f.c)

	negA := new(big.Int).Neg(a)
	if b.Cmp(negA) > 0 && b.Cmp(a) <= 0 {
		return Form{a, b, c}
	}

	r := new(big.Int).Sub(a, b)
	r = floorDiv(r, new(big.Int).Mul(bigTwo, a))

	oldB := new(big.Int).Set(b)
	b.Add(b, new(big.Int).Mul(bigTwo, new(big.Int).Mul(r, a)))

	t1 := new(big.Int).Mul(a, r)
	t1.Mul(t1, r)
	t2 := new(big.Int).Mul(oldB, r)
	c.Add(c, t1)
	c.Add(c, t2)

	return Form{a, b, c}
}

// Reduce returns the canonical reduced representative of f's class:
// a > 0, -a < b <= a, |b| <= a <= c, and b >= 0 whenever a == c.
func (f Form) Reduce() Form {
	g := f.Normalize()
	a, b, c := g.a, g.b, g.c

	for a.Cmp(c) > 0 || (a.Cmp(c) == 0 && b.Sign() < 0) {
		s := new(big.Int).Add(c, b)
		s = floorDiv(s, new(big.Int).Mul(bigTwo, c))

		oldA, oldB := new(big.Int).Set(a), new(big.Int).Set(b)
		a = new(big.Int).Set(c)

		b.Neg(b)
		b.Add(b, new(big.Int).Mul(bigTwo, new(big.Int).Mul(s, c)))

		newC := new(big.Int).Mul(c, s)
		newC.Mul(newC, s)
		newC.Sub(newC, new(big.Int).Mul(oldB, s))
		newC.Add(newC, oldA)
		c = newC
	}

	return Form{a, b, c}.Normalize()
}

// IsReduced reports whether f already satisfies the reduced-form
// invariants without running reduction. It does not check the
// discriminant identity.
func (f Form) IsReduced() bool {
	if f.a.Sign() <= 0 {
		return false
	}
	negA := new(big.Int).Neg(f.a)
	if f.b.Cmp(negA) <= 0 || f.b.Cmp(f.a) > 0 {
		return false
	}
	if f.a.Cmp(f.c) == 0 && f.b.Sign() < 0 {
		return false
	}
	return f.a.Cmp(f.c) <= 0
}

// Equal compares two forms by their reduced (a, b) — the canonical
// representative of the class, matching the specification's componentwise
// equality on reduced forms.
func (f Form) Equal(g Form) bool {
	x, y := f.Reduce(), g.Reduce()
	return x.a.Cmp(y.a) == 0 && x.b.Cmp(y.b) == 0
}
