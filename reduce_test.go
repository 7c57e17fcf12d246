// reduce_test.go - Montgomery and Barrett reduction bounds tests.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to this software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBarrettReduceBounds(t *testing.T) {
	req := require.New(t)

	for i := 0; i < nTests*10; i++ {
		var b [2]byte
		_, err := rand.Read(b[:])
		req.NoError(err, "rand.Read()")
		a := int16(uint16(b[0]) | uint16(b[1])<<8)

		r := barrettReduce(a)
		req.True(r > -kyberQ/2-1 && r <= kyberQ/2+1, "barrettReduce(%d) = %d out of range", a, r)
		req.Zero((int32(a)-int32(r))%kyberQ, "barrettReduce(%d) congruence mod q", a)
	}
}

func TestMontgomeryReduceBounds(t *testing.T) {
	req := require.New(t)

	const bound = int32(kyberQ) * (1 << 15)
	for i := 0; i < nTests*10; i++ {
		var b [4]byte
		_, err := rand.Read(b[:])
		req.NoError(err, "rand.Read()")
		a := int32(uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24)
		if a > bound {
			a %= bound
		} else if a < -bound {
			a %= bound
		}

		r := montgomeryReduce(a)
		req.True(r > -kyberQ && r < kyberQ, "montgomeryReduce(%d) = %d out of range", a, r)
	}
}
