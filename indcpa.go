// indcpa.go - ML-KEM IND-CPA encryption (K-PKE).
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to this software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

import "golang.org/x/crypto/sha3"

// packPublicKey serializes the encapsulation key as the concatenation of
// the 12-bit packed vector of polynomials pkpv and the public seed used to
// generate the matrix A.
func packPublicKey(r []byte, pkpv PolyVec, seed []byte) {
	pkpv.toBytes(r)
	copy(r[len(pkpv)*384:], seed[:SymSize])
}

// unpackPublicKey deserializes an encapsulation key; the inverse of
// packPublicKey.
func unpackPublicKey(pkpv PolyVec, seed, packed []byte) {
	pkpv.fromBytes(packed)
	off := len(pkpv) * 384
	copy(seed, packed[off:off+SymSize])
}

// packCiphertext serializes the ciphertext as the concatenation of the
// du-bit compressed vector u and the dv-bit compressed polynomial v.
func packCiphertext(r []byte, u PolyVec, v *Poly, p *ParameterSet) {
	u.compress(r, uint(p.du))
	v.compress(r[p.compressedVecSize:], uint(p.dv))
}

// unpackCiphertext deserializes a ciphertext; the inverse of
// packCiphertext.
func unpackCiphertext(u PolyVec, v *Poly, c []byte, p *ParameterSet) {
	u.decompress(c, uint(p.du))
	v.decompress(c[p.compressedVecSize:], uint(p.dv))
}

// indcpaKeyGen derives an IND-CPA-secure encryption key pair deterministically
// from a 32-byte seed d, per FIPS 203's K-PKE.KeyGen. It returns the packed
// encapsulation key (the serialized public matrix image plus the seed used
// to regenerate A) and the packed decapsulation key (the serialized secret
// vector).
func (p *ParameterSet) indcpaKeyGen(d []byte) (ekPKE, dkPKE []byte) {
	var buf [SymSize + 1]byte
	copy(buf[:SymSize], d)
	buf[SymSize] = byte(p.k)

	expanded := sha3.Sum512(buf[:])
	publicSeed, noiseSeed := expanded[:SymSize], expanded[SymSize:]

	a := p.allocMatrix()
	genMatrix(a, publicSeed, false)

	var nonce byte
	skpv := p.allocPolyVec()
	genNoiseVec(skpv, noiseSeed, &nonce, p.eta1)

	e := p.allocPolyVec()
	genNoiseVec(e, noiseSeed, &nonce, p.eta1)

	skpv.ntt()
	e.ntt()

	pkpv := p.allocPolyVec()
	for i := range pkpv {
		pkpv[i].baseMulAssign(&a[i][0], &skpv[0])
		var t Poly
		for j := 1; j < p.k; j++ {
			t.baseMulAssign(&a[i][j], &skpv[j])
			pkpv[i].add(&pkpv[i], &t)
		}
		pkpv[i].toMont()
	}
	pkpv.add(pkpv, e)
	pkpv.reduce()

	ekPKE = make([]byte, p.polyVecSize+SymSize)
	dkPKE = make([]byte, p.polyVecSize)
	packPublicKey(ekPKE, pkpv, publicSeed)
	skpv.toBytes(dkPKE)

	return ekPKE, dkPKE
}

// indcpaEncrypt encrypts a 32-byte message m under the packed encapsulation
// key ekPKE, using coins as the randomness for noise sampling, per FIPS
// 203's K-PKE.Encrypt. It writes the resulting ciphertext to c, which must
// be p.cipherTextSize bytes long.
func (p *ParameterSet) indcpaEncrypt(c, m []byte, ekPKE, coins []byte) {
	var mu Poly
	var seed [SymSize]byte

	pkpv := p.allocPolyVec()
	unpackPublicKey(pkpv, seed[:], ekPKE)

	mu.fromMsg(m)

	at := p.allocMatrix()
	genMatrix(at, seed[:], true)

	var nonce byte
	y := p.allocPolyVec()
	genNoiseVec(y, coins, &nonce, p.eta1)

	e1 := p.allocPolyVec()
	genNoiseVec(e1, coins, &nonce, p.eta2)

	var e2 Poly
	e2.getNoise(coins, nonce, p.eta2)

	y.ntt()

	u := p.allocPolyVec()
	for i := range u {
		u[i].dotProductAssign(at[i], y)
	}
	u.invNTT()
	u.add(u, e1)
	u.reduce()

	var v Poly
	v.dotProductAssign(pkpv, y)
	v.invNTT()
	v.add(&v, &e2)
	v.add(&v, &mu)
	v.reduce()

	packCiphertext(c, u, &v, p)
}

// indcpaDecrypt recovers the 32-byte message encrypted in c under the
// packed decapsulation key dkPKE, per FIPS 203's K-PKE.Decrypt. It writes
// the result to m, which must be SymSize bytes long.
func (p *ParameterSet) indcpaDecrypt(m, c []byte, dkPKE []byte) {
	var v, w Poly

	u, skpv := p.allocPolyVec(), p.allocPolyVec()
	unpackCiphertext(u, &v, c, p)
	skpv.fromBytes(dkPKE)

	u.ntt()
	w.dotProductAssign(skpv, u)
	w.invNTT()

	w.sub(&v, &w)
	w.reduce()

	w.toMsg(m)
}
