package bignum

import "encoding/binary"

// Width is the number of 64-bit limbs in a 4096-bit bignum.
const Width = 64

// WideWidth is the number of limbs in an 8192-bit product-domain bignum.
const WideWidth = 128

// ByteLen is the size in bytes of the big/little-endian serialization of a
// BN.
const ByteLen = Width * 8

// BN is a 4096-bit natural number: 64 limbs, little-endian (index 0 is the
// least significant limb). It represents an integer in [0, 2^4096).
//
// The zero value is the integer 0. BN has no redundant representation and no
// in-band length; callers own the storage and the package never allocates a
// BN implicitly.
type BN [Width]uint64

// Wide is an 8192-bit product-domain scratch value: 128 limbs.
type Wide [WideWidth]uint64

// add writes (a + b) mod 2^4096 into res and returns the carry out of the
// top limb. a, b and res may all alias the same array.
func add(a, b, res *BN) uint64 {
	var c uint64
	for i := 0; i < Width; i++ {
		c, res[i] = addCarry(c, a[i], b[i])
	}
	return c
}

// sub writes (a - b) mod 2^4096 into res and returns the borrow out of the
// top limb. a, b and res may all alias the same array.
func sub(a, b, res *BN) uint64 {
	var c uint64
	for i := 0; i < Width; i++ {
		c, res[i] = subBorrow(c, a[i], b[i])
	}
	return c
}

// cmov writes x into dst where mask is all-ones, and y where mask is
// all-zero, limb by limb. mask must be the result of a mask-producing
// primitive (eqMask, gteMask, LtMask, ...).
func cmov(mask uint64, x, y, dst *BN) {
	for i := 0; i < Width; i++ {
		dst[i] = choose(mask, x[i], y[i])
	}
}

// topIndex returns the index of the most significant non-zero limb of a, or
// 0 if a is the zero bignum.
//
// This is only ever called on a public modulus n, never on secret data, so
// branching on the limb values here does not violate the constant-time
// discipline the exponentiation paths must otherwise uphold.
func topIndex(a *BN) int {
	idx := 0
	for i := Width - 1; i >= 0; i-- {
		if a[i] != 0 {
			idx = i
			break
		}
	}
	return idx
}

// BitLen returns the number of bits needed to represent n, i.e. 64*topIndex(n)
// plus the position of n's highest set bit within that limb. It is 0 for the
// zero bignum.
//
// Callers use it to compute a tight bBits bound for ModExpVartime/
// ModExpConsttime: a tighter bound runs faster than the conservative default
// of 4096.
func (n *BN) BitLen() int {
	i := topIndex(n)
	if n[i] == 0 {
		return 0
	}
	return 64*i + bitLenU64(n[i])
}

func bitLenU64(x uint64) int {
	n := 0
	for x != 0 {
		x >>= 1
		n++
	}
	return n
}

// fromBytesBE loads the big-endian byte string b (len(b) <= ByteLen, high end
// implicitly zero-extended) into dst.
func fromBytesBE(b []byte, dst *BN) {
	var tmp [ByteLen]byte
	copy(tmp[ByteLen-len(b):], b)
	for i := 0; i < Width; i++ {
		dst[i] = binary.BigEndian.Uint64(tmp[(Width-1-i)*8:])
	}
}

// fromBytesLE loads the little-endian byte string b (len(b) <= ByteLen, high
// end implicitly zero-extended) into dst.
func fromBytesLE(b []byte, dst *BN) {
	var tmp [ByteLen]byte
	copy(tmp[:], b)
	for i := 0; i < Width; i++ {
		dst[i] = binary.LittleEndian.Uint64(tmp[i*8:])
	}
}

// toBytesBE serializes b into exactly ByteLen big-endian bytes, most
// significant byte first.
func toBytesBE(b *BN, out []byte) {
	for i := 0; i < Width; i++ {
		binary.BigEndian.PutUint64(out[(Width-1-i)*8:], b[i])
	}
}

// toBytesLE serializes b into exactly ByteLen little-endian bytes, least
// significant byte first.
func toBytesLE(b *BN, out []byte) {
	for i := 0; i < Width; i++ {
		binary.LittleEndian.PutUint64(out[i*8:], b[i])
	}
}

// LtMask returns the all-ones mask iff a < b, the all-zero mask otherwise,
// in constant time with respect to the limb values.
func LtMask(a, b *BN) uint64 {
	acc := uint64(0)
	for i := 0; i < Width; i++ {
		eq := eqMask(a[i], b[i])
		lt := ^gteMask(a[i], b[i])
		acc = choose(eq, acc, choose(lt, allOnes, 0))
	}
	return acc
}

// gteMaskBN returns the all-ones mask iff a >= b, the all-zero mask
// otherwise. It is the multi-limb analog of gteMask: the complement of
// LtMask, which scans every limb from the least significant up and lets each
// unequal limb overwrite the accumulator, so the most significant unequal
// limb decides.
func gteMaskBN(a, b *BN) uint64 {
	return ^LtMask(a, b)
}
