package bignum

import (
	"errors"
	"fmt"
)

// expCheck returns the all-ones mask iff n is a valid modulus (montCheck),
// b is non-zero, b fits within the claimed bBits bits (every bit of b at or
// above bBits is zero), and a < n — mirroring original_source's exp_check,
// which ANDs together exactly these four conditions. It returns the
// all-zero mask otherwise.
func expCheck(n, a *BN, bBits int, b *BN) uint64 {
	nOk := montCheck(n)
	if bBits < 0 || bBits > Width*64 {
		return 0
	}
	bFits := allOnes
	for i := bBits; i < Width*64; i++ {
		bit := (b[i/64] >> uint(i%64)) & 1
		bFits &= uint64(0) - (bit ^ 1)
	}
	var bOr uint64
	for i := 0; i < Width; i++ {
		bOr |= b[i]
	}
	bNonZero := ^eqMask(bOr, 0)
	aLtN := LtMask(a, n)
	return nOk & bFits & bNonZero & aLtN
}

// ModPrecompR2 writes a mod n into res given a precomputed r2 = R^2 mod n
// (see NewPrecompR2), and returns the all-ones mask iff n is a valid
// modulus. On an invalid n, res is unconditionally zeroed rather than left
// holding whatever the (possibly nonsensical) computation produced.
func ModPrecompR2(n, r2, a, res *BN) uint64 {
	ok := montCheck(n)
	mu := modInvU64(n[0])
	var scratch [ScratchWidth]uint64
	var aM BN
	toMont(a, n, mu, r2, &scratch, &aM)
	fromMont(&aM, n, mu, res)
	var zero BN
	cmov(ok, res, &zero, res)
	return ok
}

// Mod writes a mod n into res, computing r2 = R^2 mod n itself. Prefer
// ModPrecompR2 when r2 is already available, e.g. from a prior call on the
// same modulus.
func Mod(n, a, res *BN) uint64 {
	var r2 BN
	precomp(n, &r2)
	return ModPrecompR2(n, &r2, a, res)
}

// ModExpVartimePrecompR2 writes a^b mod n into res given a precomputed
// r2 = R^2 mod n, running in time that depends on the bit pattern of a, b
// and n. bBits bounds the number of low bits of b that are consulted; b
// must be non-zero and less than 2^bBits, and a must be less than n, for
// the returned mask to be all-ones. On an invalid input, res is
// unconditionally zeroed.
func ModExpVartimePrecompR2(n, r2, a *BN, bBits int, b, res *BN) uint64 {
	ok := expCheck(n, a, bBits, b)
	mu := modInvU64(n[0])
	modExpVartime(n, mu, r2, a, bBits, b, res)
	var zero BN
	cmov(ok, res, &zero, res)
	return ok
}

// ModExpVartime is ModExpVartimePrecompR2 computing r2 itself.
func ModExpVartime(n, a *BN, bBits int, b, res *BN) uint64 {
	var r2 BN
	precomp(n, &r2)
	return ModExpVartimePrecompR2(n, &r2, a, bBits, b, res)
}

// ModExpConsttimePrecompR2 writes a^b mod n into res given a precomputed
// r2 = R^2 mod n, taking a path whose timing depends only on bBits and the
// bit lengths of n and b, not on their bit values or a's value. Use this
// whenever a or b is secret. On an invalid input, res is unconditionally
// zeroed.
func ModExpConsttimePrecompR2(n, r2, a *BN, bBits int, b, res *BN) uint64 {
	ok := expCheck(n, a, bBits, b)
	mu := modInvU64(n[0])
	modExpConsttime(n, mu, r2, a, bBits, b, res)
	var zero BN
	cmov(ok, res, &zero, res)
	return ok
}

// ModExpConsttime is ModExpConsttimePrecompR2 computing r2 itself. Because
// precomp's doubling loop runs a fixed 8192 iterations regardless of n, it
// does not reintroduce a modulus-dependent timing signal.
func ModExpConsttime(n, a *BN, bBits int, b, res *BN) uint64 {
	var r2 BN
	precomp(n, &r2)
	return ModExpConsttimePrecompR2(n, &r2, a, bBits, b, res)
}

// ModInvPrimeVartime writes a^-1 mod n into res for prime n, using Fermat's
// little theorem: a^-1 = a^(n-2) mod n. It runs ModExpVartime with the full
// 4096-bit exponent bound, so it is only appropriate when a is not secret;
// callers inverting a secret value against a known-prime modulus should
// build their own constant-time exponentiation call with bBits set to n's
// actual bit length instead.
func ModInvPrimeVartime(n, a, res *BN) uint64 {
	var two, nMinus2 BN
	two[0] = 2
	sub(n, &two, &nMinus2)
	return ModExpVartime(n, a, Width*64, &nMinus2, res)
}

// NewPrecompR2 allocates and returns R^2 mod n, or nil if n is not a valid
// modulus (montCheck fails). Callers that already rejected an invalid n
// earlier and just need the precomputation can skip the nil check; everyone
// else must handle it, the same as the original's allocating precompr2
// entry point which signals both "n invalid" and "allocation failed" by
// returning a null pointer.
func NewPrecompR2(n *BN) *BN {
	if montCheck(n) == 0 {
		return nil
	}
	r2 := new(BN)
	precomp(n, r2)
	return r2
}

// NewFromBytesBE allocates a BN from a big-endian byte string. b must be
// non-empty and no longer than ByteLen bytes; b is implicitly zero-extended
// on the high (left) end if shorter.
func NewFromBytesBE(b []byte) (*BN, error) {
	if len(b) == 0 {
		return nil, errors.New("bignum: empty byte slice")
	}
	if len(b) > ByteLen {
		return nil, fmt.Errorf("bignum: byte slice of length %d exceeds %d bytes", len(b), ByteLen)
	}
	n := new(BN)
	fromBytesBE(b, n)
	return n, nil
}

// NewFromBytesLE is NewFromBytesBE for little-endian byte strings.
func NewFromBytesLE(b []byte) (*BN, error) {
	if len(b) == 0 {
		return nil, errors.New("bignum: empty byte slice")
	}
	if len(b) > ByteLen {
		return nil, fmt.Errorf("bignum: byte slice of length %d exceeds %d bytes", len(b), ByteLen)
	}
	n := new(BN)
	fromBytesLE(b, n)
	return n, nil
}

// ToBytesBE returns n serialized as ByteLen big-endian bytes.
func ToBytesBE(n *BN) []byte {
	out := make([]byte, ByteLen)
	toBytesBE(n, out)
	return out
}

// ToBytesLE returns n serialized as ByteLen little-endian bytes.
func ToBytesLE(n *BN) []byte {
	out := make([]byte, ByteLen)
	toBytesLE(n, out)
	return out
}
