// cbd.go - Centered binomial distribution.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to this software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

// loadLittleEndian loads the low 8*bytes bits of x, little-endian, into a
// uint64.
func loadLittleEndian(x []byte, bytes int) uint64 {
	var r uint64
	for i, v := range x[:bytes] {
		r |= uint64(v) << (8 * uint(i))
	}
	return r
}

// cbd samples p's coefficients from the centered binomial distribution with
// parameter eta, consuming eta*kyberN/4 bytes of uniformly random input from
// buf.
func (p *Poly) cbd(buf []byte, eta int) {
	switch eta {
	case 2:
		cbd2(p, buf)
	case 3:
		cbd3(p, buf)
	default:
		panic("mlkem: eta must be in {2,3}")
	}
}

// cbd2 implements the eta=2 centered binomial sampler: each coefficient is
// the difference of the popcounts of two independent 2-bit fields drawn from
// a shared 32-bit little-endian word, eight coefficients per word.
func cbd2(p *Poly, buf []byte) {
	for i := 0; i < kyberN/8; i++ {
		t := uint32(loadLittleEndian(buf[4*i:], 4))

		d := t & 0x55555555
		d += (t >> 1) & 0x55555555

		for j := 0; j < 8; j++ {
			a := int16((d >> uint(4*j)) & 0x3)
			b := int16((d >> uint(4*j+2)) & 0x3)
			p.coeffs[8*i+j] = a - b
		}
	}
}

// cbd3 implements the eta=3 centered binomial sampler: each coefficient is
// the difference of the popcounts of two independent 3-bit fields, four
// coefficients drawn from each 24-bit little-endian word.
func cbd3(p *Poly, buf []byte) {
	for i := 0; i < kyberN/4; i++ {
		t := loadLittleEndian(buf[3*i:], 3)

		d := t & 0x00249249
		d += (t >> 1) & 0x00249249
		d += (t >> 2) & 0x00249249

		a0 := int16(d & 0x7)
		b0 := int16((d >> 3) & 0x7)
		a1 := int16((d >> 6) & 0x7)
		b1 := int16((d >> 9) & 0x7)
		a2 := int16((d >> 12) & 0x7)
		b2 := int16((d >> 15) & 0x7)
		a3 := int16((d >> 18) & 0x7)
		b3 := int16((d >> 21) & 0x7)

		p.coeffs[4*i+0] = a0 - b0
		p.coeffs[4*i+1] = a1 - b1
		p.coeffs[4*i+2] = a2 - b2
		p.coeffs[4*i+3] = a3 - b3
	}
}
