package classgroup

import "github.com/pkg/errors"

// ErrInvalidInput covers malformed bytes, wrong form lengths, and
// unreduced or discriminant-mismatched forms presented to a constructor.
var ErrInvalidInput = errors.New("classgroup: invalid input")

// ErrArithmetic is returned by Compose and Duplicate when a composition
// congruence has no solution, as happens when the operands do not share
// a discriminant. Reduce has no iteration bound and never returns it.
var ErrArithmetic = errors.New("classgroup: arithmetic failure")

// ErrNoGenerator is returned by Generator when the discriminant does not
// satisfy D ≡ 1 (mod 8), the precondition for a = 2, b = 1 to be a valid
// form.
var ErrNoGenerator = errors.New("classgroup: discriminant has no generator form")
