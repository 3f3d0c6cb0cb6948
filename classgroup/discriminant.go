package classgroup

import "math/big"

// CreateDiscriminant derives a negative discriminant D of exactly nBits
// bits from seed: D = -p for a prime p with |D| ≡ 7 (mod 8), found via
// HashPrime over seed ∥ 0x00 with the top two bits and bottom three bits
// pinned (the bottom three pinned to 1 is what forces p ≡ 7 mod 8).
func CreateDiscriminant(seed []byte, nBits int) *big.Int {
	extended := append(append([]byte{}, seed...), 0x00)
	fixed := []int{nBits - 1, nBits - 2, 0, 1, 2}
	p := HashPrime(extended, nBits, fixed)
	return new(big.Int).Neg(p)
}
