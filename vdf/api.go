// Package vdf implements a Wesolowski verifiable delay function over the
// class group of binary quadratic forms. Package classgroup provides the
// group arithmetic; this package adds discriminant-and-iteration-count
// parameterized evaluation, proof generation, and verification, exposed
// as a flat byte-oriented API so callers never need to hold a
// classgroup.Form across the boundary.
package vdf

import (
	"math/big"

	"source.quilibrium.com/quilibrium/classgroupvdf/classgroup"
)

// CreateDiscriminant derives a negative discriminant D of exactly nBits
// bits from seed, suitable for use as the modulus of every other call in
// this package.
func CreateDiscriminant(seed []byte, nBits int) *big.Int {
	return classgroup.CreateDiscriminant(seed, nBits)
}

// HashInt derives a deterministic unsigned integer of exactly nBits bits
// from seed.
func HashInt(seed []byte, nBits int) *big.Int {
	return classgroup.HashInt(seed, nBits)
}

// HashPrime derives a deterministic prime of exactly nBits bits from
// seed, with the positions in fixed forced to 1.
func HashPrime(seed []byte, nBits int, fixed []int) *big.Int {
	return classgroup.HashPrime(seed, nBits, fixed)
}

// FormIdentity returns the serialized identity element of Cl(D).
func FormIdentity(d *big.Int) []byte {
	return classgroup.Serialize(classgroup.Identity(d), d)
}

// FormGenerator returns the serialized generator (2, 1, (1-D)/8) of
// Cl(D). Unlike the rest of this file, it returns an error rather than
// nil bytes on failure: D ≡ 1 (mod 8) is a precondition a caller can
// legitimately fail to meet, not an internal bug.
func FormGenerator(d *big.Int) ([]byte, error) {
	g, err := classgroup.Generator(d)
	if err != nil {
		return nil, err
	}
	return classgroup.Serialize(g, d), nil
}

// FormFromAB constructs and reduces the form (a, b, c) for discriminant
// D, returning its serialized encoding.
func FormFromAB(d, a, b *big.Int) []byte {
	return classgroup.Serialize(classgroup.FromAB(d, a, b).Reduce(), d)
}

// FormMultiply composes two serialized forms in Cl(D), returning the
// serialized product, or nil if either input is malformed.
func FormMultiply(d *big.Int, x, y []byte) []byte {
	xf, err := classgroup.Deserialize(x, d)
	if err != nil {
		return nil
	}
	yf, err := classgroup.Deserialize(y, d)
	if err != nil {
		return nil
	}

	l := classgroup.PartialReductionBound(d)
	product, err := classgroup.Compose(xf, yf, l)
	if err != nil {
		return nil
	}
	return classgroup.Serialize(product, d)
}

// FormPower raises a serialized form to exp in Cl(D), returning the
// serialized result, or nil on malformed input or a negative exponent.
func FormPower(d *big.Int, x []byte, exp *big.Int) []byte {
	xf, err := classgroup.Deserialize(x, d)
	if err != nil {
		return nil
	}

	l := classgroup.PartialReductionBound(d)
	p, err := classgroup.FastPow(xf, d, exp, l)
	if err != nil {
		return nil
	}
	return classgroup.Serialize(p, d)
}

// Prove computes y = x^(2^T) and a Wesolowski proof pi, returning
// y ∥ pi, or nil on malformed input or cancellation.
func Prove(cfg Config, d *big.Int, x []byte, T uint64, shouldContinue func() bool) []byte {
	xf, err := classgroup.Deserialize(x, d)
	if err != nil {
		return nil
	}

	y, pi, err := proveFull(cfg, d, xf, T, shouldContinue)
	if err != nil {
		return nil
	}
	return append(classgroup.Serialize(y, d), classgroup.Serialize(pi, d)...)
}

// Evaluate computes y = x^(2^T) only, returning its serialization, or nil
// on malformed input or cancellation.
func Evaluate(cfg Config, d *big.Int, x []byte, T uint64, shouldContinue func() bool) []byte {
	xf, err := classgroup.Deserialize(x, d)
	if err != nil {
		return nil
	}
	if T == 0 {
		return classgroup.Serialize(xf, d)
	}

	res, err := evaluate(cfg, d, xf, T, shouldContinue, false)
	if err != nil {
		return nil
	}
	return classgroup.Serialize(res.y, d)
}

// EvaluateWithIntermediates computes y = x^(2^T) along with the
// checkpointed intermediates the block prover needs, returning
// y ∥ i0 ∥ i1 ∥ …, or nil on malformed input or cancellation.
func EvaluateWithIntermediates(cfg Config, d *big.Int, x []byte, T uint64, shouldContinue func() bool) []byte {
	xf, err := classgroup.Deserialize(x, d)
	if err != nil {
		return nil
	}
	if T == 0 {
		return classgroup.Serialize(xf, d)
	}

	res, err := evaluate(cfg, d, xf, T, shouldContinue, true)
	if err != nil {
		return nil
	}

	out := classgroup.Serialize(res.y, d)
	for _, it := range res.intermediates {
		out = append(out, classgroup.Serialize(it, d)...)
	}
	return out
}

// ProveWithIntermediates runs the block prover directly over a
// caller-supplied intermediates vector (as produced by
// EvaluateWithIntermediates), returning the serialized proof pi, or nil
// on malformed input.
func ProveWithIntermediates(cfg Config, d *big.Int, x, y, intermediates []byte, T uint64) []byte {
	xf, err := classgroup.Deserialize(x, d)
	if err != nil {
		return nil
	}
	yf, err := classgroup.Deserialize(y, d)
	if err != nil {
		return nil
	}
	if T == 0 {
		return classgroup.Serialize(classgroup.Identity(d), d)
	}

	w := classgroup.WidthBytes(d)
	segW := 1 + 2*w
	if len(intermediates)%segW != 0 {
		return nil
	}

	n := len(intermediates) / segW
	forms := make([]classgroup.Form, n)
	for i := 0; i < n; i++ {
		f, err := classgroup.Deserialize(intermediates[i*segW:(i+1)*segW], d)
		if err != nil {
			return nil
		}
		forms[i] = f
	}

	k, l := approximateParametersFor(T, cfg)
	pi, err := proveBlockWithB(d, forms, T, k, l, getB(d, xf, yf))
	if err != nil {
		return nil
	}
	return classgroup.Serialize(pi, d)
}

// ProveDoubleAndAdd runs the naive reference prover, returning the
// serialized proof pi, or nil on malformed input.
func ProveDoubleAndAdd(d *big.Int, x, y []byte, T uint64) []byte {
	xf, err := classgroup.Deserialize(x, d)
	if err != nil {
		return nil
	}
	yf, err := classgroup.Deserialize(y, d)
	if err != nil {
		return nil
	}

	pi, err := proveDoubleAndAdd(d, xf, yf, T)
	if err != nil {
		return nil
	}
	return classgroup.Serialize(pi, d)
}

// Verify checks y = x^(2^T) given proof pi, returning false on any
// malformed input or failed check.
func Verify(d *big.Int, x, y, proof []byte, T uint64) bool {
	xf, err := classgroup.Deserialize(x, d)
	if err != nil {
		return false
	}
	yf, err := classgroup.Deserialize(y, d)
	if err != nil {
		return false
	}
	pif, err := classgroup.Deserialize(proof, d)
	if err != nil {
		return false
	}
	return verify(d, xf, yf, pif, T)
}

// VerifyCascade checks an N-Wesolowski proof blob of recursion+1 chained
// segments against x0 and the claimed total iteration count.
func VerifyCascade(d *big.Int, x0, blob []byte, tTotal uint64, discBits int, recursion uint64) bool {
	x0f, err := classgroup.Deserialize(x0, d)
	if err != nil {
		return false
	}
	return verifyCascade(d, x0f, blob, tTotal, discBits, recursion)
}

// GetBFromProof recomputes the Wesolowski challenge prime for a cascade
// blob's first segment, or nil on malformed input.
func GetBFromProof(d *big.Int, x0, blob []byte, T uint64, recursion uint64) *big.Int {
	x0f, err := classgroup.Deserialize(x0, d)
	if err != nil {
		return nil
	}
	b, err := getBFromProof(d, x0f, blob, T, recursion)
	if err != nil {
		return nil
	}
	return b
}
