package bignum

import "crypto/rand"
import "math/big"

// randPrimeBits generates a random probable prime of exactly the given bit
// length using crypto/rand, for use as a realistic fixed modulus in tests
// that need an actual prime rather than just a valid Montgomery modulus.
func randPrimeBits(bits int) (*big.Int, error) {
	return rand.Prime(rand.Reader, bits)
}
