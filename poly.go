// poly.go - ML-KEM polynomial.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to this software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

import "golang.org/x/crypto/sha3"

// Poly is an element of R_q = Z_q[X]/(X^n+1), represented as
// coeffs[0] + X*coeffs[1] + ... + X^(n-1)*coeffs[n-1]. Coefficients may be
// in standard domain (logically in [0,q)) or NTT (bit-reversed evaluation)
// domain; the domain is implicit from the calling context.
type Poly struct {
	coeffs [kyberN]int16
}

// normalizeCoeff conditionally adds q to a coefficient in (-q, q) so that
// the result lies in [0, q), by arithmetic-shifting the sign bit across a
// mask of q (constant-time, no branch on the coefficient's value).
func normalizeCoeff(x int16) uint16 {
	x += (x >> 15) & kyberQ
	return uint16(x)
}

// add sets p = a + b, coefficient-wise, reduced mod q.
func (p *Poly) add(a, b *Poly) {
	for i := range p.coeffs {
		p.coeffs[i] = barrettReduce(a.coeffs[i] + b.coeffs[i])
	}
}

// sub sets p = a - b, coefficient-wise, reduced mod q.
func (p *Poly) sub(a, b *Poly) {
	for i := range p.coeffs {
		p.coeffs[i] = barrettReduce(a.coeffs[i] - b.coeffs[i])
	}
}

// reduce Barrett-reduces every coefficient of p.
func (p *Poly) reduce() {
	for i := range p.coeffs {
		p.coeffs[i] = barrettReduce(p.coeffs[i])
	}
}

// toMont Montgomery-multiplies every coefficient of p by 2^32 mod q, i.e.
// multiplies it by 2^16 mod q, placing it in Montgomery form.
func (p *Poly) toMont() {
	const f = int16((uint64(1) << 32) % kyberQ)
	for i := range p.coeffs {
		p.coeffs[i] = montgomeryReduce(int32(p.coeffs[i]) * int32(f))
	}
}

// ntt computes the forward NTT of p in place, then Barrett-reduces the
// result.
func (p *Poly) ntt() {
	ntt(&p.coeffs)
	p.reduce()
}

// invNTT computes the inverse NTT of p in place.
func (p *Poly) invNTT() {
	invNTT(&p.coeffs)
}

// baseMulAssign sets p = a * b, treating each as an element of
// Z_q[x]/(x^256+1) via the NTT's quadratic-factor decomposition.
func (p *Poly) baseMulAssign(a, b *Poly) {
	for i := 0; i < kyberN/4; i++ {
		zeta := zetas[64+i]
		basemul(p.coeffs[4*i:4*i+2], a.coeffs[4*i:4*i+2], b.coeffs[4*i:4*i+2], zeta)
		basemul(p.coeffs[4*i+2:4*i+4], a.coeffs[4*i+2:4*i+4], b.coeffs[4*i+2:4*i+4], -zeta)
	}
}

// packBits serializes len(vals) unsigned values of d bits each into dst,
// LSB-first, least-significant value first. dst must hold at least
// ceil(len(vals)*d/8) bytes.
func packBits(dst []byte, vals []uint16, d uint) {
	var buf uint32
	var bits uint
	pos := 0
	for _, v := range vals {
		buf |= uint32(v) << bits
		bits += d
		for bits >= 8 {
			dst[pos] = byte(buf)
			buf >>= 8
			bits -= 8
			pos++
		}
	}
	if bits > 0 {
		dst[pos] = byte(buf)
	}
}

// unpackBits is the inverse of packBits: it extracts len(vals) d-bit lanes
// from src into vals.
func unpackBits(vals []uint16, src []byte, d uint) {
	var buf uint32
	var bits uint
	pos := 0
	mask := uint32(1)<<d - 1
	for i := range vals {
		for bits < d {
			buf |= uint32(src[pos]) << bits
			bits += 8
			pos++
		}
		vals[i] = uint16(buf & mask)
		buf >>= d
		bits -= d
	}
}

// toBytes serializes p's coefficients as 12-bit packed values into r, which
// must be 384 bytes long.
func (p *Poly) toBytes(r []byte) {
	var vals [kyberN]uint16
	for i, c := range p.coeffs {
		vals[i] = normalizeCoeff(c)
	}
	packBits(r, vals[:], 12)
}

// fromBytes deserializes 384 bytes of 12-bit packed values from a into p;
// the inverse of toBytes.
func (p *Poly) fromBytes(a []byte) {
	var vals [kyberN]uint16
	unpackBits(vals[:], a, 12)
	for i, v := range vals {
		p.coeffs[i] = int16(v)
	}
}

// compressConsts gives the (bias, multiplier, shift) magic constants used
// to compute round((2^d/q)*x) without division, for each supported
// compression width. The multiply is done in uint64 for every width, so it
// never overflows; the "mod 2^d" step is the d-bit mask applied after the
// shift.
func compressConsts(d uint) (bias uint64, mult uint64, shift uint) {
	switch d {
	case 1:
		return 1665, 80635, 28
	case 4:
		return 1665, 80635, 28
	case 5:
		return 1664, 40318, 27
	case 10:
		return 1665, 1290167, 32
	case 11:
		return 1664, 645084, 31
	default:
		panic("mlkem: unsupported compression width")
	}
}

// compressCoeff computes round((2^d/q)*x) mod 2^d for a coefficient x.
func compressCoeff(x int16, d uint) uint16 {
	u := uint64(normalizeCoeff(x))
	bias, mult, shift := compressConsts(d)
	v := (u<<d + bias) * mult
	return uint16(v>>shift) & (uint16(1)<<d - 1)
}

// decompressCoeff computes round((q/2^d)*y) for a d-bit compressed value y.
func decompressCoeff(y uint16, d uint) int16 {
	return int16((uint32(y)*kyberQ + (1 << (d - 1))) >> d)
}

// compress writes p's coefficients, compressed to d bits each, into r.
func (p *Poly) compress(r []byte, d uint) {
	var vals [kyberN]uint16
	for i, c := range p.coeffs {
		vals[i] = compressCoeff(c, d)
	}
	packBits(r, vals[:], d)
}

// decompress reads kyberN d-bit compressed coefficients from a into p; an
// approximate (lossy) inverse of compress.
func (p *Poly) decompress(a []byte, d uint) {
	var vals [kyberN]uint16
	unpackBits(vals[:], a, d)
	for i, v := range vals {
		p.coeffs[i] = decompressCoeff(v, d)
	}
}

// fromMsg sets p's coefficients from a 32-byte message: bit i becomes
// (q+1)/2 if set, 0 otherwise, via a constant-time conditional move.
func (p *Poly) fromMsg(msg []byte) {
	const half = int16((kyberQ + 1) / 2)
	for i := 0; i < SymSize; i++ {
		v := msg[i]
		for j := 0; j < 8; j++ {
			mask := -(int16(v>>uint(j)) & 1)
			p.coeffs[8*i+j] = mask & half
		}
	}
}

// toMsg extracts a 32-byte message from p's coefficients, the approximate
// inverse of fromMsg: bit j of byte i is round(2*x/q) mod 2, where x is
// coefficient 8*i+j.
func (p *Poly) toMsg(msg []byte) {
	for i := 0; i < SymSize; i++ {
		msg[i] = 0
		for j := 0; j < 8; j++ {
			bit := compressCoeff(p.coeffs[8*i+j], 1)
			msg[i] |= byte(bit) << uint(j)
		}
	}
}

// getNoise samples p's coefficients from the centered binomial distribution
// with parameter eta, deterministically derived from seed and nonce via
// SHAKE256.
func (p *Poly) getNoise(seed []byte, nonce byte, eta int) {
	buf := make([]byte, eta*kyberN/4)
	h := sha3.NewShake256()
	h.Write(seed)
	h.Write([]byte{nonce})
	if _, err := h.Read(buf); err != nil {
		panic(err) // XOF reads never fail.
	}

	p.cbd(buf, eta)
}
