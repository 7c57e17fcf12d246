// kem_vectors_test.go - ML-KEM deterministic scenario tests.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to this software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

import (
	"bytes"
	"testing"

	"golang.org/x/crypto/sha3"

	"github.com/stretchr/testify/require"
)

// stubReader is an io.Reader that replays a fixed byte sequence, used to
// drive the implementation with a known, reproducible supply of "entropy".
type stubReader struct {
	buf []byte
}

func (r *stubReader) Read(p []byte) (int, error) {
	n := copy(p, r.buf)
	r.buf = r.buf[n:]
	return n, nil
}

// sequence returns the n-byte sequence start, start+1, ..., wrapping mod 256.
func sequence(start byte, n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = start + byte(i)
	}
	return b
}

// TestDeterministicScenario exercises MLKEM512 end to end with stubbed
// entropy: key_gen consumes a fixed 64-byte "random" sequence, encap
// consumes a fixed 32-byte sequence, and a bit-flipped ciphertext is
// confirmed to trigger implicit rejection rather than an error.
func TestDeterministicScenario(t *testing.T) {
	req := require.New(t)
	p := MLKEM512

	// Scenario 1: key_gen is a deterministic function of its entropy input.
	// Two runs fed the same 0x01..0x40 sequence must produce byte-identical
	// encapsulation and decapsulation keys.
	ek1, dk1, err := p.GenerateKeyPairWithRand(&stubReader{buf: sequence(0x01, 64)})
	req.NoError(err, "GenerateKeyPairWithRand()")
	ek2, dk2, err := p.GenerateKeyPairWithRand(&stubReader{buf: sequence(0x01, 64)})
	req.NoError(err, "GenerateKeyPairWithRand()")
	req.Equal(ek1.packed, ek2.packed, "scenario 1: key_gen must be deterministic in ek")
	req.Equal(dk1.dkPKE, dk2.dkPKE, "scenario 1: key_gen must be deterministic in dk")

	ek, dk := ek1, dk1

	// Scenario 1 (sampler pin): independently rederive rho = SHA3-512(d ||
	// k)[:32] and, separately from genMatrix, rejection-sample the first
	// accepted 12-bit candidate out of SHAKE128(rho || 0x00 || 0x00). This
	// is the same (i,j)=(0,0) expansion genMatrix performs for A, and
	// pins its byte-stride/candidate extraction against a second,
	// independently written implementation rather than merely checking
	// that two key_gen calls agree with each other.
	d := sequence(0x01, 64)[:SymSize]
	var seedIn [SymSize + 1]byte
	copy(seedIn[:SymSize], d)
	seedIn[SymSize] = byte(p.k)
	expanded := sha3.Sum512(seedIn[:])
	rho := expanded[:SymSize]

	xof := sha3.NewShake128()
	xof.Write(rho)
	xof.Write([]byte{0x00, 0x00})
	var block [168]byte
	_, err = xof.Read(block[:])
	req.NoError(err, "xof.Read()")

	var wantFirst uint16
	for pos := 0; ; pos += 3 {
		v0 := (uint16(block[pos]) | uint16(block[pos+1])<<8) & 0x0fff
		if v0 < kyberQ {
			wantFirst = v0
			break
		}
		v1 := (uint16(block[pos+1])>>4 | uint16(block[pos+2])<<4) & 0x0fff
		if v1 < kyberQ {
			wantFirst = v1
			break
		}
	}
	req.Less(wantFirst, uint16(kyberQ), "scenario 1: sampled coefficient must be < q")

	a := p.allocMatrix()
	genMatrix(a, rho, false)
	req.Equal(wantFirst, normalizeCoeff(a[0][0].coeffs[0]), "scenario 1: genMatrix's first sampled coefficient")

	// Scenario 2: encapsulate against (ek, dk) with entropy stubbed to
	// 0x00..0x1F (32 bytes); decap must reproduce the same shared secret.
	encRng := &stubReader{buf: sequence(0x00, 32)}
	ct, ssSender, err := ek.EncapsulateWithRand(encRng)
	req.NoError(err, "EncapsulateWithRand()")

	ssReceiver, err := p.Decapsulate(dk, ct)
	req.NoError(err, "Decapsulate()")
	req.Equal(ssSender, ssReceiver, "scenario 2: shared secrets must match")

	// Scenario 3: flipping bit 0 of c must yield the implicit-rejection
	// key SHAKE256(z || c_flipped)[:32], not the original shared secret.
	flipped := make([]byte, len(ct))
	copy(flipped, ct)
	flipped[0] ^= 0x01

	rkprf := sha3.NewShake256()
	rkprf.Write(dk.z)
	rkprf.Write(flipped)
	wantRejected := make([]byte, SymSize)
	_, err = rkprf.Read(wantRejected)
	req.NoError(err, "rkprf.Read()")

	gotRejected, err := p.Decapsulate(dk, flipped)
	req.NoError(err, "Decapsulate() on tampered ciphertext must not error")
	req.True(bytes.Equal(wantRejected, gotRejected), "scenario 3: rejection key mismatch")
	req.NotEqual(ssSender, gotRejected, "scenario 3: must not recover the original shared secret")
}
