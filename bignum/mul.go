package bignum

// ScratchWidth is the number of limbs of scratch space karatsubaMul and
// karatsubaSqr require. The caller-provided scratch buffer must be disjoint
// from the operands and the result.
const ScratchWidth = 256

// halfWidth is the limb count of each operand half in the single Karatsuba
// split karatsubaMul performs. At the one fixed width this package supports
// (Width=64), a single split to two 32-limb halves is the small cutoff
// spec.md §4.3 calls for: recursing further below 32 limbs buys little and
// costs more bookkeeping, so schoolbook multiplication handles both halves
// directly.
const halfWidth = Width / 2

// schoolbookMul writes a*b into res (2*Width limbs) using ordinary O(n^2)
// multiplication, propagating each row's carry out through as many higher
// limbs of res as needed before starting the next row.
func schoolbookMul(a, b *BN, res *Wide) {
	schoolbookMulSlices(a[:], b[:], res[:])
}

func schoolbookMulSlices(a, b, res []uint64) {
	n := len(a)
	for i := 0; i < 2*n; i++ {
		res[i] = 0
	}
	for i := 0; i < n; i++ {
		var carry uint64
		for j := 0; j < n; j++ {
			carry = mulWideAdd2(a[i], b[j], carry, &res[i+j])
		}
		k := i + n
		for carry != 0 {
			carry, res[k] = addCarry(0, res[k], carry)
			k++
		}
	}
}

// schoolbookSqr writes a*a into res. Squaring has no shortcut at this fixed
// width, so it is a thin alias over schoolbookMul.
func schoolbookSqr(a *BN, res *Wide) {
	schoolbookMul(a, a, res)
}

// karatsubaMul writes a*b into res using one level of Karatsuba's
// three-multiply decomposition:
//
//	a = a1*B + a0,  b = b1*B + b0   (B = 2^(64*halfWidth))
//	a*b = a1*b1*B^2 + (a1*b0 + a0*b1)*B + a0*b0
//	    = z2*B^2 + (z0 + z2 + (a1-a0)*(b0-b1))*B + z0
//
// which needs three halfWidth-by-halfWidth products (z0, z2, and the cross
// term) instead of four. scratch must provide ScratchWidth limbs of
// workspace disjoint from a, b and res.
func karatsubaMul(a, b *BN, scratch *[ScratchWidth]uint64, res *Wide) {
	z0 := scratch[0:Width]
	z2 := scratch[Width : 2*Width]
	xd := scratch[2*Width : 2*Width+halfWidth]
	yd := scratch[2*Width+halfWidth : 3*Width]
	p := scratch[3*Width : 4*Width]

	a0, a1 := a[:halfWidth], a[halfWidth:]
	b0, b1 := b[:halfWidth], b[halfWidth:]

	schoolbookMulSlices(a0, b0, z0)
	schoolbookMulSlices(a1, b1, z2)

	negX := subAbsSlices(xd, a1, a0)
	negY := subAbsSlices(yd, b0, b1)
	neg := negX ^ negY

	schoolbookMulSlices(xd, yd, p)

	for i := 0; i < 2*Width; i++ {
		res[i] = 0
	}
	copy(res[0:Width], z0)
	addShifted(res[:], z2, Width)

	// z1 = z0 + z2 (+/- p), held in a (Width+1)-limb buffer to absorb the
	// carry before it is folded into res at the halfWidth shift.
	var z1 [Width + 1]uint64
	copy(z1[:Width], z0)
	addIntoSlice(z1[:], z2)
	if neg == 0 {
		addIntoSlice(z1[:], p)
	} else {
		subIntoSlice(z1[:], p)
	}
	addShifted(res[:], z1[:], halfWidth)
}

// karatsubaSqr writes a*a into res. There is no squaring-specific shortcut
// taken here beyond what karatsubaMul already does for equal operands, so
// this is a thin alias sharing the same scratch layout.
func karatsubaSqr(a *BN, scratch *[ScratchWidth]uint64, res *Wide) {
	karatsubaMul(a, a, scratch, res)
}

// addIntoSlice adds src into dst (len(dst) == len(src)+1, the extra top
// limb absorbing carry) and returns any carry still left over.
func addIntoSlice(dst, src []uint64) uint64 {
	var c uint64
	for i := range src {
		c, dst[i] = addCarry(c, dst[i], src[i])
	}
	for i := len(src); c != 0 && i < len(dst); i++ {
		c, dst[i] = addCarry(c, dst[i], 0)
	}
	return c
}

// subIntoSlice subtracts src from dst in place, propagating any borrow into
// the remaining high limbs of dst.
func subIntoSlice(dst, src []uint64) uint64 {
	var b uint64
	for i := range src {
		b, dst[i] = subBorrow(b, dst[i], src[i])
	}
	for i := len(src); b != 0 && i < len(dst); i++ {
		b, dst[i] = subBorrow(b, dst[i], 0)
	}
	return b
}

// addShifted adds src into res starting at limb offset shift, propagating
// carry through the rest of res.
func addShifted(res, src []uint64, shift int) {
	var c uint64
	for i := 0; i < len(src); i++ {
		c, res[shift+i] = addCarry(c, res[shift+i], src[i])
	}
	for i := shift + len(src); c != 0 && i < len(res); i++ {
		c, res[i] = addCarry(c, res[i], 0)
	}
}

// subAbsSlices writes |a-b| into dst and returns 1 if a < b (so the
// subtraction had to run the other way round), 0 otherwise.
func subAbsSlices(dst, a, b []uint64) uint64 {
	var borrow uint64
	for i := range a {
		borrow, dst[i] = subBorrow(borrow, a[i], b[i])
	}
	if borrow != 0 {
		var b2 uint64
		for i := range a {
			b2, dst[i] = subBorrow(b2, b[i], a[i])
		}
		return 1
	}
	return 0
}
