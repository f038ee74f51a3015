// Package bignum implements fixed-width 4096-bit modular arithmetic for
// RSA-class workloads: addition/subtraction with carry, schoolbook and
// Karatsuba multiplication, Montgomery reduction, and both variable-time
// and constant-time modular exponentiation.
//
// Every exported entry point operates on caller-owned limb arrays; the
// package never allocates for in/out parameters unless its doc comment says
// so explicitly (NewPrecompR2, NewFromBytesBE, NewFromBytesLE).
package bignum

import (
	"math/bits"

	subtle "github.com/ericlagergren/subtle"
)

// addCarry computes s = (x + y + cIn) mod 2^64 and returns the output carry.
func addCarry(cIn, x, y uint64) (cOut, s uint64) {
	s, cOut = bits.Add64(x, y, cIn)
	return cOut, s
}

// subBorrow computes d = (x - y - bIn) mod 2^64 and returns the output borrow.
func subBorrow(bIn, x, y uint64) (bOut, d uint64) {
	d, bOut = bits.Sub64(x, y, bIn)
	return bOut, d
}

// mulWideAdd2 computes (hi:lo) = a*b + cIn + *acc, stores lo in *acc and
// returns hi. It is the multiply-accumulate primitive Montgomery reduction
// threads across all 64 limbs of the modulus for each quotient digit.
func mulWideAdd2(a, b, cIn uint64, acc *uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	var c uint64
	lo, c = bits.Add64(lo, cIn, 0)
	hi, _ = bits.Add64(hi, 0, c)
	lo, c = bits.Add64(lo, *acc, 0)
	hi, _ = bits.Add64(hi, 0, c)
	*acc = lo
	return hi
}

// modInvU64 returns mu such that mu*n0 = -1 (mod 2^64). n0 must be odd; the
// modulus invariant checked by montCheck guarantees this for every n this
// package is asked to reduce modulo.
//
// It uses the standard Newton-iteration trick: y = y*(2 - n0*y) doubles the
// number of correct low bits of y on each pass, so six iterations starting
// from the one-bit-correct y=1 suffice to converge across all 64 bits.
func modInvU64(n0 uint64) uint64 {
	y := uint64(1)
	for i := 0; i < 6; i++ {
		y = y * (2 - n0*y)
	}
	return -y
}

// eqMask returns the all-ones mask iff a == b, the all-zero mask otherwise.
//
// It delegates to the shared constant-time primitives the teacher repo
// centralizes in ericlagergren/subtle rather than re-deriving the same bit
// trick locally.
func eqMask(a, b uint64) uint64 {
	return subtle.ConstantTimeEqUint64(a, b)
}

// gteMask returns the all-ones mask iff a >= b, the all-zero mask otherwise.
//
// Built directly from subBorrow: a borrow occurs (b=1) exactly when a < b,
// so b-1 is all-ones when there was no borrow and all-zero when there was.
func gteMask(a, b uint64) uint64 {
	borrow, _ := subBorrow(0, a, b)
	return borrow - 1
}

// choose returns x if mask is all-ones, y if mask is all-zero. mask must be
// one of those two values; behavior is otherwise undefined.
func choose(mask, x, y uint64) uint64 {
	return subtle.ConstantTimeSelectUint64(mask, x, y)
}

const allOnes = ^uint64(0)
