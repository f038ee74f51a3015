package bignum

// montCheck returns the all-ones mask iff n is a valid Montgomery modulus:
// odd (so it has a unique inverse mod 2^64, which modInvU64 needs) and
// strictly greater than 1. It returns the all-zero mask otherwise.
func montCheck(n *BN) uint64 {
	oddMask := uint64(0) - (n[0] & 1)
	var one BN
	one[0] = 1
	gtOne := LtMask(&one, n)
	return oddMask & gtOne
}

// addModN writes (a+b) mod n into res, assuming 0 <= a,b < n. It computes
// the plain-width sum and its follow-up subtraction of n unconditionally,
// then picks whichever is correct with a mask select — the carry from the
// sum and the borrow from the subtraction are never branched on.
func addModN(a, b, n, res *BN) {
	var sum, diff BN
	c0 := add(a, b, &sum)
	c1 := sub(&sum, n, &diff)
	carryMask := uint64(0) - c0
	borrowMask := uint64(0) - c1
	useDiff := carryMask | ^borrowMask
	cmov(useDiff, &diff, &sum, res)
}

// precomp writes R^2 mod n into res, where R = 2^(64*Width). 2^(2*64*Width)
// is 1 doubled 2*64*Width times, so repeated doubling-and-reduction from 1
// reaches R^2 mod n without any separate reduction step.
func precomp(n *BN, res *BN) {
	var acc BN
	acc[0] = 1
	for i := 0; i < 2*64*Width; i++ {
		addModN(&acc, &acc, n, &acc)
	}
	*res = acc
}

// reduction performs one CIOS-style Montgomery reduction step: given a
// 2*Width-limb product c (c < n*R), it writes (c * R^-1) mod n into res.
// mu must satisfy mu*n[0] = -1 mod 2^64 (see modInvU64).
//
// Each outer iteration i clears limb i of the running value by adding a
// multiple qi*n chosen so that t[i] + qi*n[0] overflows to zero mod 2^64,
// then shifts the window of interest up by one limb; after Width iterations
// the low half is guaranteed to be zero and the high half holds the
// reduced, not-yet-fully-reduced result, needing at most one final
// subtraction of n.
func reduction(c *Wide, n *BN, mu uint64, res *BN) {
	var t Wide
	t = *c
	// top holds the carry out of limb 2*Width-1: the running value can reach
	// 2n*R, which needs one bit more than Wide holds when n > 2^4095.
	var top uint64
	for i := 0; i < Width; i++ {
		qi := t[i] * mu
		var carry uint64
		for j := 0; j < Width; j++ {
			carry = mulWideAdd2(qi, n[j], carry, &t[i+j])
		}
		for k := i + Width; k < 2*Width; k++ {
			carry, t[k] = addCarry(0, t[k], carry)
		}
		top += carry
	}

	var hi BN
	copy(hi[:], t[Width:2*Width])
	var sub1 BN
	borrow := sub(&hi, n, &sub1)
	keepHi := top - borrow
	cmov(keepHi, &hi, &sub1, res)
}

// montMul computes (a*b*R^-1) mod n into res — a Montgomery-domain
// multiply. scratch must provide ScratchWidth limbs for the underlying
// Karatsuba multiply.
func montMul(a, b, n *BN, mu uint64, scratch *[ScratchWidth]uint64, res *BN) {
	var wide Wide
	karatsubaMul(a, b, scratch, &wide)
	reduction(&wide, n, mu, res)
}

// montSqr computes (a*a*R^-1) mod n into res.
func montSqr(a, n *BN, mu uint64, scratch *[ScratchWidth]uint64, res *BN) {
	var wide Wide
	karatsubaSqr(a, scratch, &wide)
	reduction(&wide, n, mu, res)
}

// toMont writes a*R mod n into res, moving a into the Montgomery domain.
func toMont(a, n *BN, mu uint64, r2 *BN, scratch *[ScratchWidth]uint64, res *BN) {
	montMul(a, r2, n, mu, scratch, res)
}

// fromMont writes aM*R^-1 mod n into res, moving aM out of the Montgomery
// domain. This is exactly one reduction of aM zero-extended to Wide width —
// cheaper than routing through montMul with a multiplication by 1.
func fromMont(aM, n *BN, mu uint64, res *BN) {
	var wide Wide
	copy(wide[:Width], aM[:])
	reduction(&wide, n, mu, res)
}
