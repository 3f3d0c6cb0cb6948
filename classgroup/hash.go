package classgroup

import (
	"encoding/binary"
	"math/big"

	"golang.org/x/crypto/sha3"
)

// millerRabinRounds is the fixed witness count used for primality testing
// in HashPrime and discriminant derivation. big.Int.ProbablyPrime's
// base-2 strong test plus this many random-base Miller-Rabin rounds gives
// a false-positive probability far below what's needed at the bit sizes
// this package targets (512-4096 bits).
const millerRabinRounds = 30

// HashInt deterministically derives an unsigned integer of exactly nBits
// bits from seed, by concatenating H(seed ∥ ctr) for ctr = 0, 1, ...
// until there are enough bits, truncating to nBits, and setting the top
// bit so the result has exactly nBits bits.
func HashInt(seed []byte, nBits int) *big.Int {
	needed := (nBits + 7) / 8
	buf := make([]byte, 0, needed+sha3.New256().Size())

	var ctr uint64
	for len(buf) < needed {
		h := sha3.New256()
		h.Write(seed)
		var ctrBytes [8]byte
		binary.BigEndian.PutUint64(ctrBytes[:], ctr)
		h.Write(ctrBytes[:])
		buf = h.Sum(buf)
		ctr++
	}
	buf = buf[:needed]

	n := new(big.Int).SetBytes(buf)
	n.Rsh(n, uint(needed*8-nBits))
	n.SetBit(n, nBits-1, 1)
	return n
}

// HashPrime repeatedly derives HashInt-style candidates from successive
// extensions of seed, forcing the bits at fixedBitPositions to 1 on each
// candidate, until one passes primality testing.
func HashPrime(seed []byte, nBits int, fixedBitPositions []int) *big.Int {
	var attempt uint64
	for {
		attemptSeed := make([]byte, 0, len(seed)+8)
		attemptSeed = append(attemptSeed, seed...)
		var attemptBytes [8]byte
		binary.BigEndian.PutUint64(attemptBytes[:], attempt)
		attemptSeed = append(attemptSeed, attemptBytes[:]...)

		candidate := HashInt(attemptSeed, nBits)
		for _, pos := range fixedBitPositions {
			candidate.SetBit(candidate, pos, 1)
		}

		if candidate.ProbablyPrime(millerRabinRounds) {
			return candidate
		}
		attempt++
	}
}
