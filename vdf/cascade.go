package vdf

import (
	"encoding/binary"
	"math/big"

	"github.com/pkg/errors"

	"source.quilibrium.com/quilibrium/classgroupvdf/classgroup"
)

// segment is one (y_i, pi_i, T_i) triple of an N-Wesolowski cascade blob.
type segment struct {
	y, pi classgroup.Form
	T     uint64
}

func formWidth(discBits int) int {
	return 1 + 2*((discBits+7)/8)
}

func segmentWidth(discBits int) int {
	return 2*formWidth(discBits) + 8
}

func encodeSegment(d *big.Int, s segment) []byte {
	buf := append([]byte{}, classgroup.Serialize(s.y, d)...)
	buf = append(buf, classgroup.Serialize(s.pi, d)...)
	buf = binary.BigEndian.AppendUint64(buf, s.T)
	return buf
}

func parseSegments(blob []byte, d *big.Int, discBits, n int) ([]segment, error) {
	w := formWidth(discBits)
	segW := 2*w + 8
	if len(blob) != segW*n {
		return nil, errors.Wrap(ErrInvalidInput, "cascade: blob length mismatch")
	}

	segs := make([]segment, n)
	for i := 0; i < n; i++ {
		off := i * segW
		yBytes := blob[off : off+w]
		piBytes := blob[off+w : off+2*w]
		tBytes := blob[off+2*w : off+2*w+8]

		y, err := classgroup.Deserialize(yBytes, d)
		if err != nil {
			return nil, errors.Wrap(err, "cascade: segment y")
		}
		pi, err := classgroup.Deserialize(piBytes, d)
		if err != nil {
			return nil, errors.Wrap(err, "cascade: segment pi")
		}

		segs[i] = segment{y: y, pi: pi, T: binary.BigEndian.Uint64(tBytes)}
	}
	return segs, nil
}

// verifyCascade checks an N-Wesolowski proof blob: N = recursion+1
// segments chained x_{i+1} = y_i, with the segment T_i summing to tTotal.
func verifyCascade(d *big.Int, x0 classgroup.Form, blob []byte, tTotal uint64, discBits int, recursion uint64) bool {
	n := int(recursion) + 1
	segs, err := parseSegments(blob, d, discBits, n)
	if err != nil {
		return false
	}

	var sum uint64
	for _, s := range segs {
		sum += s.T
	}
	if sum != tTotal {
		return false
	}

	x := x0
	for _, s := range segs {
		if !verify(d, x, s.y, s.pi, s.T) {
			return false
		}
		x = s.y
	}
	return true
}

// getBFromProof recomputes the challenge prime for the cascade's first
// segment from x0 and the segment's y, without running full verification.
func getBFromProof(d *big.Int, x0 classgroup.Form, blob []byte, T uint64, recursion uint64) (*big.Int, error) {
	discBits := new(big.Int).Abs(d).BitLen()
	segs, err := parseSegments(blob, d, discBits, int(recursion)+1)
	if err != nil {
		return nil, err
	}
	if len(segs) == 0 {
		return nil, errors.Wrap(ErrInvalidInput, "cascade: empty blob")
	}
	return getB(d, x0, segs[0].y), nil
}
