// doc.go - Kyber godoc extras.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

// Package kyber implements the IND-CPA-secure public-key encryption scheme
// underlying Kyber, a module-lattice (M-LWE) based post-quantum cipher, as
// submitted to round 3 of the NIST Post-Quantum Cryptography project.
//
// This implementation follows the public-domain Kyber round-3 reference
// specification. It deliberately stops at the IND-CPA PKE: callers that need
// IND-CCA2 security (the Fujisaki-Okamoto-transformed KEM) must layer it on
// top of KeyGen/Enc/Dec themselves.
//
// For more information, see https://pq-crystals.org/kyber/index.shtml.
package kyber
