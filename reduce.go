// reduce.go - Montgomery and Barrett reduction.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to this software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

const (
	qInv = -3327 // q^-1 mod 2^16

	// barrettV = floor(2^26/q + 1/2)
	barrettV = int16((1<<26 + kyberQ/2) / kyberQ)
)

// montgomeryReduce computes a 16-bit integer congruent to a * 2^-16 mod q,
// for a 32-bit signed integer a with |a| < q * 2^15. The result lies in
// (-q, q).
func montgomeryReduce(a int32) int16 {
	t := int16(int32(int16(a)) * qInv)
	return int16((a - int32(t)*kyberQ) >> 16)
}

// barrettReduce computes a 16-bit integer congruent to a mod q, lying in
// (-q/2, q/2].
func barrettReduce(a int16) int16 {
	t := int16((int32(barrettV)*int32(a) + (1 << 25)) >> 26)
	return a - t*kyberQ
}

// fqmul computes montgomeryReduce(a * b).
func fqmul(a, b int16) int16 {
	return montgomeryReduce(int32(a) * int32(b))
}
