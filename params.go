// params.go - Kyber parameterization.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

const (
	// SymSize is the size of a message, a seed, and most internal hash
	// outputs, in bytes.
	SymSize = 32

	kyberN = 256
	kyberQ = 3329
)

var (
	// Kyber512 is the Kyber-512 parameter set, which aims to provide
	// security equivalent to AES-128.
	//
	// This parameter set has a 768 byte private key, 800 byte public
	// key, and a 768 byte ciphertext.
	Kyber512 = newParameterSet("Kyber-512", 2, 3, 2, 10, 4)

	// Kyber768 is the Kyber-768 parameter set, which aims to provide
	// security equivalent to AES-192.
	//
	// This parameter set has a 1152 byte private key, 1184 byte public
	// key, and a 1088 byte ciphertext.
	Kyber768 = newParameterSet("Kyber-768", 3, 2, 2, 10, 4)

	// Kyber1024 is the Kyber-1024 parameter set, which aims to provide
	// security equivalent to AES-256.
	//
	// This parameter set has a 1536 byte private key, 1568 byte public
	// key, and a 1568 byte ciphertext.
	Kyber1024 = newParameterSet("Kyber-1024", 4, 2, 2, 11, 5)
)

// ParameterSet is an immutable Kyber parameter set.
type ParameterSet struct {
	name string

	k    int
	eta1 int
	eta2 int
	du   int
	dv   int

	polyVecSize int

	publicKeySize  int
	secretKeySize  int
	cipherTextSize int
}

// Name returns the name of a given ParameterSet.
func (p *ParameterSet) Name() string {
	return p.name
}

// K returns the module rank (the number of polynomials per vector) of a
// given ParameterSet.
func (p *ParameterSet) K() int {
	return p.k
}

// PublicKeySize returns the size of a public key in bytes.
func (p *ParameterSet) PublicKeySize() int {
	return p.publicKeySize
}

// PrivateKeySize returns the size of a private key in bytes.
func (p *ParameterSet) PrivateKeySize() int {
	return p.secretKeySize
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

	p.polyVecSize = k * 384 // 12 bits * 256 coeffs / 8 bits-per-byte

	p.publicKeySize = p.polyVecSize + SymSize
	p.secretKeySize = p.polyVecSize
	p.cipherTextSize = k*32*du + 32*dv

	return &p
}
