// sample.go - Uniform and noise sampling.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to this software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

import "golang.org/x/crypto/sha3"

// genMatrix deterministically generates the k*k matrix A (or its transpose)
// from a public seed, via rejection sampling on a SHAKE128 XOF. Entries of
// the matrix are polynomials whose coefficients look uniformly random over
// Z_q.
func genMatrix(a []PolyVec, seed []byte, transposed bool) {
	const (
		shake128Rate = 168 // xof.BlockSize() is not a constant.
		maxBlocks    = 4
	)
	var buf [shake128Rate * maxBlocks]byte

	var extSeed [SymSize + 2]byte
	copy(extSeed[:SymSize], seed)

	xof := sha3.NewShake128()

	for i, v := range a {
		for j := range v {
			if transposed {
				extSeed[SymSize] = byte(i)
				extSeed[SymSize+1] = byte(j)
			} else {
				extSeed[SymSize] = byte(j)
				extSeed[SymSize+1] = byte(i)
			}

			xof.Write(extSeed[:])
			if _, err := xof.Read(buf[:]); err != nil {
				panic(err) // XOF reads never fail.
			}

			p := &v[j]
			// Every 3 bytes yield two 12-bit candidates: v0 from byte 0 and
			// the low nibble of byte 1, v1 from the high nibble of byte 1
			// and byte 2.
			for ctr, pos, maxPos := 0, 0, len(buf); ctr < kyberN; {
				v0 := (uint16(buf[pos]) | (uint16(buf[pos+1]) << 8)) & 0x0fff
				v1 := (uint16(buf[pos+1])>>4 | (uint16(buf[pos+2]) << 4)) & 0x0fff

				if v0 < kyberQ {
					p.coeffs[ctr] = int16(v0)
					ctr++
				}
				if ctr < kyberN && v1 < kyberQ {
					p.coeffs[ctr] = int16(v1)
					ctr++
				}

				if pos += 3; pos == maxPos {
					// On the unlikely chance 4 blocks is insufficient,
					// incrementally squeeze out 1 block at a time.
					if _, err := xof.Read(buf[:shake128Rate]); err != nil {
						panic(err)
					}
					pos, maxPos = 0, shake128Rate
				}
			}

			xof.Reset()
		}
	}
}

// genNoiseVec fills every element of v by sampling from the centered
// binomial distribution with parameter eta, each element keyed by seed and
// a distinct nonce starting at *nonce; *nonce is advanced by len(v).
func genNoiseVec(v PolyVec, seed []byte, nonce *byte, eta int) {
	for i := range v {
		v[i].getNoise(seed, *nonce, eta)
		*nonce++
	}
}
