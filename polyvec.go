// polyvec.go - Vector of ML-KEM polynomials.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to this software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

// PolyVec is a vector of k polynomials, representing an element of the
// module R_q^k.
type PolyVec []Poly

// add sets v = a + b, element-wise.
func (v PolyVec) add(a, b PolyVec) {
	for i := range v {
		v[i].add(&a[i], &b[i])
	}
}

// ntt applies the forward NTT to every element of v, in place.
func (v PolyVec) ntt() {
	for i := range v {
		v[i].ntt()
	}
}

// invNTT applies the inverse NTT to every element of v, in place.
func (v PolyVec) invNTT() {
	for i := range v {
		v[i].invNTT()
	}
}

// reduce Barrett-reduces every coefficient of every element of v.
func (v PolyVec) reduce() {
	for i := range v {
		v[i].reduce()
	}
}

// toBytes serializes v as k 384-byte 12-bit packed polynomials into r.
func (v PolyVec) toBytes(r []byte) {
	for i := range v {
		v[i].toBytes(r[i*384:])
	}
}

// fromBytes deserializes v from k 384-byte 12-bit packed polynomials in a;
// the inverse of toBytes.
func (v PolyVec) fromBytes(a []byte) {
	for i := range v {
		v[i].fromBytes(a[i*384:])
	}
}

// compress writes v's coefficients, compressed to d bits each, into r.
func (v PolyVec) compress(r []byte, d uint) {
	stride := (kyberN * int(d)) / 8
	for i := range v {
		v[i].compress(r[i*stride:], d)
	}
}

// decompress reads d-bit compressed coefficients from a into v; an
// approximate (lossy) inverse of compress.
func (v PolyVec) decompress(a []byte, d uint) {
	stride := (kyberN * int(d)) / 8
	for i := range v {
		v[i].decompress(a[i*stride:], d)
	}
}

// dotProductAssign sets p to the inner product of a and b, treating each as
// a vector of NTT-domain polynomials: p = sum_i a[i]*b[i].
func (p *Poly) dotProductAssign(a, b PolyVec) {
	var t Poly
	p.baseMulAssign(&a[0], &b[0])
	for i := 1; i < len(a); i++ {
		t.baseMulAssign(&a[i], &b[i])
		p.add(p, &t)
	}
	p.reduce()
}
