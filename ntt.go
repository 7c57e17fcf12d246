// ntt.go - Number-Theoretic Transform.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to this software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

// zetas holds the 128 powers of the primitive 256th root of unity mod q
// used by the NTT, in Montgomery form and bit-reversed order.
var zetas = [128]int16{
	-1044, -758, -359, -1517, 1493, 1422, 287, 202,
	-171, 622, 1577, 182, 962, -1202, -1474, 1468,
	573, -1325, 264, 383, -829, 1458, -1602, -130,
	-681, 1017, 732, 608, -1542, 411, -205, -1571,
	1223, 652, -552, 1015, -1293, 1491, -282, -1544,
	516, -8, -320, -666, -1618, -1162, 126, 1469,
	-853, -90, -271, 830, 107, -1421, -247, -951,
	-398, 961, -1508, -725, 448, -1065, 677, -1275,
	-1103, 430, 555, 843, -1251, 871, 1550, 105,
	422, 587, 177, -235, -291, -460, 1574, 1653,
	-246, 778, 1159, -147, -777, 1483, -602, 1119,
	-1590, 644, -872, 349, 418, 329, -156, -75,
	817, 1097, 603, 610, 1322, -1285, -1465, 384,
	-1215, -136, 1218, -1335, -874, 220, -1187, -1659,
	-1185, -1530, -1278, 794, -1510, -854, -870, 478,
	-108, -308, 996, 991, 958, -1460, 1522, 1628,
}

// invNTTFixup is f = mont^2 / 128 mod q, the normalization factor applied
// to every coefficient after the inverse NTT's main butterfly phase.
const invNTTFixup int16 = 1441

// ntt computes the negacyclic number-theoretic transform of a polynomial's
// 256 coefficients in place; input is in normal order, output is in
// bit-reversed order.
func ntt(v *[kyberN]int16) {
	k := 1
	for length := 128; length >= 2; length >>= 1 {
		for start := 0; start < kyberN; start += 2 * length {
			zeta := zetas[k]
			k++
			for j := start; j < start+length; j++ {
				t := fqmul(zeta, v[j+length])
				v[j+length] = v[j] - t
				v[j] = v[j] + t
			}
		}
	}
}

// invNTT computes the inverse negacyclic NTT of a polynomial's 256
// coefficients in place; input is in bit-reversed order, output is in
// normal order. The fixup by invNTTFixup leaves every output coefficient
// multiplied by the Montgomery factor 2^16 mod q, which cancels the 2^-16
// that basemul's fqmul introduces.
func invNTT(v *[kyberN]int16) {
	k := 127
	for length := 2; length <= 128; length <<= 1 {
		for start := 0; start < kyberN; start += 2 * length {
			zeta := zetas[k]
			k--
			for j := start; j < start+length; j++ {
				t := v[j]
				v[j] = barrettReduce(t + v[j+length])
				v[j+length] = v[j+length] - t
				v[j+length] = fqmul(zeta, v[j+length])
			}
		}
	}
	for i := range v {
		v[i] = fqmul(v[i], invNTTFixup)
	}
}

// basemul computes the product of two degree-1 polynomials a(x)=a0+a1*x and
// b(x)=b0+b1*x in Z_q[x]/(x^2-zeta), writing the result into p[0], p[1].
func basemul(p, a, b []int16, zeta int16) {
	p[0] = fqmul(a[1], b[1])
	p[0] = fqmul(p[0], zeta)
	p[0] += fqmul(a[0], b[0])
	p[1] = fqmul(a[0], b[1])
	p[1] += fqmul(a[1], b[0])
}
