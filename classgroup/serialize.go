package classgroup

import "math/big"

// WidthBytes returns d_bits_bytes = ceil(num_bits(D) / 8), the fixed width
// used to encode each of a form's two serialized components.
func WidthBytes(d *big.Int) int {
	bits := new(big.Int).Abs(d).BitLen()
	return (bits + 7) / 8
}

// Serialize encodes a reduced form as sign_byte ∥ a_bytes ∥ b_bytes, each
// of a, b zero-padded on the left to WidthBytes(D). a is always positive
// in a reduced form, so only b carries an explicit sign byte.
func Serialize(f Form, d *big.Int) []byte {
	r := f.Reduce()
	width := WidthBytes(d)

	buf := make([]byte, 1+2*width)
	if r.b.Sign() < 0 {
		buf[0] = 1
	}
	putFixed(buf[1:1+width], r.a)
	putFixed(buf[1+width:], new(big.Int).Abs(r.b))
	return buf
}

func putFixed(dst []byte, v *big.Int) {
	b := v.Bytes()
	if len(b) > len(dst) {
		copy(dst, b[len(b)-len(dst):])
		return
	}
	copy(dst[len(dst)-len(b):], b)
}

// Deserialize parses the encoding produced by Serialize, recomputes c from
// the discriminant identity, and rejects inputs that are the wrong length,
// not reduced, or inconsistent with D.
func Deserialize(buf []byte, d *big.Int) (Form, error) {
	width := WidthBytes(d)
	if len(buf) != 1+2*width {
		return Form{}, ErrInvalidInput
	}

	a := new(big.Int).SetBytes(buf[1 : 1+width])
	b := new(big.Int).SetBytes(buf[1+width:])
	if buf[0] == 1 {
		b.Neg(b)
	} else if buf[0] != 0 {
		return Form{}, ErrInvalidInput
	}
	if a.Sign() == 0 {
		return Form{}, ErrInvalidInput
	}

	f := FromAB(d, a, b)
	if !f.IsReduced() {
		return Form{}, ErrInvalidInput
	}
	if f.Discriminant().Cmp(d) != 0 {
		return Form{}, ErrInvalidInput
	}
	return f, nil
}
