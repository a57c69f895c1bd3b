// errors.go - Kyber error values.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

import "errors"

var (
	// ErrInvalidLength is the error returned when a byte serialized
	// public key, private key, ciphertext, or message is not the
	// length mandated by the ParameterSet in use.
	ErrInvalidLength = errors.New("kyber: invalid length")

	// ErrInvalidParameter is the error returned when an unknown
	// security level is requested.
	ErrInvalidParameter = errors.New("kyber: invalid parameter set")

	// ErrDomainMismatch is the error returned when an operation that
	// requires both operands to be in the same domain (normal or NTT)
	// is given operands that are not. Reaching this from a valid
	// external call is a bug in this package, not in the caller.
	ErrDomainMismatch = errors.New("kyber: poly domain mismatch")

	// ErrShapeMismatch is the error returned when a PolyVec/PolyMatrix
	// operation is given operands of incompatible dimension. Reaching
	// this from a valid external call is a bug in this package, not in
	// the caller.
	ErrShapeMismatch = errors.New("kyber: polyvec/polymatrix shape mismatch")

	// ErrRandomness is the error returned when the caller-supplied
	// randomness source fails to produce the requested bytes.
	ErrRandomness = errors.New("kyber: randomness source failure")
)
