// kem.go - ML-KEM key encapsulation mechanism.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to this software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

import (
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"io"

	"golang.org/x/crypto/sha3"
)

var (
	// ErrInvalidKeySize is the error returned when a byte serialized key is
	// an invalid size for the ParameterSet in use.
	ErrInvalidKeySize = errors.New("mlkem: invalid key size")

	// ErrInvalidCipherTextSize is the error returned when a byte serialized
	// ciphertext is an invalid size for the ParameterSet in use.
	ErrInvalidCipherTextSize = errors.New("mlkem: invalid ciphertext size")
)

// EncapsulationKey is an ML-KEM encapsulation (public) key.
type EncapsulationKey struct {
	p      *ParameterSet
	packed []byte
	h      [SymSize]byte // H(ek), cached.
}

// Bytes returns the byte serialization of an EncapsulationKey.
func (ek *EncapsulationKey) Bytes() []byte {
	b := make([]byte, len(ek.packed))
	copy(b, ek.packed)
	return b
}

// EncapsulationKeyFromBytes deserializes a byte serialized EncapsulationKey.
func (p *ParameterSet) EncapsulationKeyFromBytes(b []byte) (*EncapsulationKey, error) {
	if len(b) != p.encapsulationKeySize {
		return nil, ErrInvalidKeySize
	}

	ek := &EncapsulationKey{
		p:      p,
		packed: make([]byte, len(b)),
	}
	copy(ek.packed, b)
	ek.h = sha3.Sum256(ek.packed)

	return ek, nil
}

// DecapsulationKey is an ML-KEM decapsulation (private) key.
type DecapsulationKey struct {
	p     *ParameterSet
	dkPKE []byte
	ek    *EncapsulationKey
	z     []byte
}

// Bytes returns the byte serialization of a DecapsulationKey.
func (dk *DecapsulationKey) Bytes() []byte {
	p := dk.p

	b := make([]byte, 0, p.decapsulationKeySize)
	b = append(b, dk.dkPKE...)
	b = append(b, dk.ek.packed...)
	b = append(b, dk.ek.h[:]...)
	b = append(b, dk.z...)

	return b
}

// DecapsulationKeyFromBytes deserializes a byte serialized DecapsulationKey.
func (p *ParameterSet) DecapsulationKeyFromBytes(b []byte) (*DecapsulationKey, error) {
	if len(b) != p.decapsulationKeySize {
		return nil, ErrInvalidKeySize
	}

	dk := &DecapsulationKey{p: p}

	off := p.polyVecSize
	dk.dkPKE = make([]byte, off)
	copy(dk.dkPKE, b[:off])

	ek, err := p.EncapsulationKeyFromBytes(b[off : off+p.encapsulationKeySize])
	if err != nil {
		return nil, err
	}
	off += p.encapsulationKeySize
	dk.ek = ek

	off += SymSize // Skip over the stored copy of H(ek), which was recomputed above.

	dk.z = make([]byte, SymSize)
	copy(dk.z, b[off:])

	return dk, nil
}

// GenerateKeyPairWithRand generates an encapsulation/decapsulation key pair
// for the given ParameterSet, using rng as the source of entropy.
func (p *ParameterSet) GenerateKeyPairWithRand(rng io.Reader) (*EncapsulationKey, *DecapsulationKey, error) {
	var seeds [2 * SymSize]byte
	if _, err := io.ReadFull(rng, seeds[:]); err != nil {
		return nil, nil, err
	}
	d, z := seeds[:SymSize], seeds[SymSize:]

	ekPKE, dkPKE := p.indcpaKeyGen(d)

	ek := &EncapsulationKey{p: p, packed: ekPKE}
	ek.h = sha3.Sum256(ek.packed)

	dk := &DecapsulationKey{
		p:     p,
		dkPKE: dkPKE,
		ek:    ek,
		z:     make([]byte, SymSize),
	}
	copy(dk.z, z)

	return ek, dk, nil
}

// GenerateKeyPair generates an encapsulation/decapsulation key pair for the
// given ParameterSet, using crypto/rand.Reader as the source of entropy.
func (p *ParameterSet) GenerateKeyPair() (*EncapsulationKey, *DecapsulationKey, error) {
	return p.GenerateKeyPairWithRand(rand.Reader)
}

// EncapsulateWithRand generates a ciphertext and shared secret bound to ek,
// using rng as the source of entropy for the encapsulated message.
func (ek *EncapsulationKey) EncapsulateWithRand(rng io.Reader) (cipherText, sharedSecret []byte, err error) {
	var m [SymSize]byte
	if _, err = io.ReadFull(rng, m[:]); err != nil {
		return nil, nil, err
	}

	kr := sha3.New512()
	kr.Write(m[:])
	kr.Write(ek.h[:])
	buf := kr.Sum(nil)
	k, coins := buf[:SymSize], buf[SymSize:]

	cipherText = make([]byte, ek.p.cipherTextSize)
	ek.p.indcpaEncrypt(cipherText, m[:], ek.packed, coins)

	sharedSecret = make([]byte, SymSize)
	copy(sharedSecret, k)

	return cipherText, sharedSecret, nil
}

// Encapsulate generates a ciphertext and shared secret bound to ek, using
// crypto/rand.Reader as the source of entropy.
func (ek *EncapsulationKey) Encapsulate() (cipherText, sharedSecret []byte, err error) {
	return ek.EncapsulateWithRand(rand.Reader)
}

// Decapsulate recovers the shared secret bound to cipherText under dk. It
// never returns an error for a malformed ciphertext of the correct length:
// per the Fujisaki-Okamoto transform's implicit rejection, a ciphertext
// that fails re-encryption verification instead yields a pseudorandom
// shared secret indistinguishable from a genuine one to an attacker who
// does not know dk's rejection seed.
func (p *ParameterSet) Decapsulate(dk *DecapsulationKey, cipherText []byte) (sharedSecret []byte, err error) {
	if len(cipherText) != p.cipherTextSize {
		return nil, ErrInvalidCipherTextSize
	}

	m := make([]byte, SymSize)
	p.indcpaDecrypt(m, cipherText, dk.dkPKE)

	kr := sha3.New512()
	kr.Write(m)
	kr.Write(dk.ek.h[:])
	buf := kr.Sum(nil)
	k, coins := buf[:SymSize], buf[SymSize:]

	cmp := make([]byte, p.cipherTextSize)
	p.indcpaEncrypt(cmp, m, dk.ek.packed, coins)

	rkprf := sha3.NewShake256()
	rkprf.Write(dk.z)
	rkprf.Write(cipherText)
	rejected := make([]byte, SymSize)
	if _, err := rkprf.Read(rejected); err != nil {
		panic(err) // XOF reads never fail.
	}

	fail := 1 - subtle.ConstantTimeCompare(cipherText, cmp)
	subtle.ConstantTimeCopy(fail, k, rejected)

	sharedSecret = make([]byte, SymSize)
	copy(sharedSecret, k)

	return sharedSecret, nil
}
