// params.go - ML-KEM parameterization.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to this software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

const (
	// SymSize is the size of the shared secret, and of the seeds and hash
	// outputs used internally, in bytes.
	SymSize = 32

	kyberN = 256
	kyberQ = 3329
)

var (
	// MLKEM512 is the ML-KEM-512 parameter set, which targets security
	// comparable to AES-128.
	//
	// This parameter set has an 800 byte encapsulation key, a 1632 byte
	// decapsulation key, and a 768 byte ciphertext.
	MLKEM512 = newParameterSet("ML-KEM-512", 2, 3, 2, 10, 4)

	// MLKEM768 is the ML-KEM-768 parameter set, which targets security
	// comparable to AES-192.
	//
	// This parameter set has a 1184 byte encapsulation key, a 2400 byte
	// decapsulation key, and a 1088 byte ciphertext.
	MLKEM768 = newParameterSet("ML-KEM-768", 3, 2, 2, 10, 4)

	// MLKEM1024 is the ML-KEM-1024 parameter set, which targets security
	// comparable to AES-256.
	//
	// This parameter set has a 1568 byte encapsulation key, a 3168 byte
	// decapsulation key, and a 1568 byte ciphertext.
	MLKEM1024 = newParameterSet("ML-KEM-1024", 4, 2, 2, 11, 5)
)

// ParameterSet is an ML-KEM parameter set.
type ParameterSet struct {
	name string

	k    int
	eta1 int
	eta2 int
	du   int
	dv   int

	polySize           int // 12-bit packed polynomial size, in bytes
	polyVecSize        int // 12-bit packed vector size, in bytes
	compressedPolySize int // dv-bit packed polynomial size, in bytes
	compressedVecSize  int // du-bit packed vector size, in bytes

	encapsulationKeySize int
	decapsulationKeySize int
	cipherTextSize       int
}

// Name returns the name of a given ParameterSet.
func (p *ParameterSet) Name() string {
	return p.name
}

// K returns the module rank of a given ParameterSet.
func (p *ParameterSet) K() int {
	return p.k
}

// EncapsulationKeySize returns the size of an encapsulation key in bytes.
func (p *ParameterSet) EncapsulationKeySize() int {
	return p.encapsulationKeySize
}

// DecapsulationKeySize returns the size of a decapsulation key in bytes.
func (p *ParameterSet) DecapsulationKeySize() int {
	return p.decapsulationKeySize
}

// CipherTextSize returns the size of a ciphertext in bytes.
func (p *ParameterSet) CipherTextSize() int {
	return p.cipherTextSize
}

func newParameterSet(name string, k, eta1, eta2, du, dv int) *ParameterSet {
	var p ParameterSet

	p.name = name
	p.k = k
	p.eta1 = eta1
	p.eta2 = eta2
	p.du = du
	p.dv = dv

	p.polySize = kyberN * 12 / 8
	p.polyVecSize = k * p.polySize
	p.compressedPolySize = kyberN * dv / 8
	p.compressedVecSize = k * kyberN * du / 8

	p.encapsulationKeySize = p.polyVecSize + SymSize
	p.decapsulationKeySize = p.polyVecSize + p.encapsulationKeySize + 2*SymSize
	p.cipherTextSize = p.compressedVecSize + p.compressedPolySize

	return &p
}

func (p *ParameterSet) allocPolyVec() PolyVec {
	return make(PolyVec, p.k)
}

func (p *ParameterSet) allocMatrix() []PolyVec {
	m := make([]PolyVec, p.k)
	for i := range m {
		m[i] = p.allocPolyVec()
	}
	return m
}
