// kyber.go - External entry points.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

// ParameterSetFromName looks up one of Kyber512, Kyber768, or Kyber1024
// by its Name(). It exists for callers that select a security level
// from configuration (a string) rather than linking against a Go
// identifier directly.
func ParameterSetFromName(name string) (*ParameterSet, error) {
	switch name {
	case Kyber512.name:
		return Kyber512, nil
	case Kyber768.name:
		return Kyber768, nil
	case Kyber1024.name:
		return Kyber1024, nil
	default:
		return nil, ErrInvalidParameter
	}
}
