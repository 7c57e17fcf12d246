// doc_test.go - ML-KEM godoc examples.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to this software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

import (
	"bytes"
)

func Example_keyEncapsulationMechanism() {
	p := MLKEM768

	// Alice, step 1: Generate a key pair.
	aliceEk, aliceDk, err := p.GenerateKeyPair()
	if err != nil {
		panic(err)
	}

	// Alice, step 2: Send the encapsulation key to Bob (not shown).

	// Bob, step 1: Deserialize Alice's encapsulation key from the binary
	// encoding.
	peerEk, err := p.EncapsulationKeyFromBytes(aliceEk.Bytes())
	if err != nil {
		panic(err)
	}

	// Bob, step 2: Generate the ciphertext and shared secret.
	cipherText, bobSharedSecret, err := peerEk.Encapsulate()
	if err != nil {
		panic(err)
	}

	// Bob, step 3: Send the ciphertext to Alice (not shown).

	// Alice, step 3: Decapsulate the ciphertext.
	aliceSharedSecret, err := p.Decapsulate(aliceDk, cipherText)
	if err != nil {
		panic(err)
	}

	// Alice and Bob now hold identical shared secrets.
	if !bytes.Equal(aliceSharedSecret, bobSharedSecret) {
		panic("shared secrets mismatch")
	}
}
