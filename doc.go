// doc.go - ML-KEM godoc extras.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to this software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

// Package mlkem implements ML-KEM, the IND-CCA2-secure module-lattice-based
// key encapsulation mechanism standardized by NIST as FIPS 203. Security
// rests on the hardness of the Module Learning With Errors (MLWE) problem.
//
// Three parameter sets are provided: MLKEM512, MLKEM768, and MLKEM1024,
// targeting security comparable to AES-128, AES-192, and AES-256
// respectively.
//
// The underlying IND-CPA public-key encryption scheme (K-PKE) is lifted to
// an IND-CCA2 KEM via a Fujisaki-Okamoto transform with implicit rejection:
// a malformed ciphertext never causes Decapsulate to return an error, it
// instead yields a shared secret derived from a per-key rejection seed, so
// that the decapsulation key's owner is the only party able to distinguish
// a genuine ciphertext from a forged one by its output.
package mlkem
