// pke.go - Kyber IND-CPA public-key encryption.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

import (
	"io"

	"golang.org/x/crypto/sha3"
)

// KeyGen generates a public/private key pair for this ParameterSet,
// drawing 32 bytes of randomness from rng.
//
//  1. d <- 32 random bytes; (rho, sigma) <- G(d), G = SHA3-512.
//  2. A[i][j] <- Parse(SHAKE-128(rho || j || i)) for i, j in [0, k).
//  3. s_i <- CBD_eta1(SHAKE-256(sigma || N)), N incrementing from 0.
//  4. e_i <- CBD_eta1(SHAKE-256(sigma || N)), N continuing to increment.
//  5. shat <- NTT(s); ehat <- NTT(e); that <- A.shat + ehat.
//  6. pk <- Encode_12(that) || rho; sk <- Encode_12(shat).
func (p *ParameterSet) KeyGen(rng io.Reader) (pk, sk []byte, err error) {
	d := make([]byte, SymSize)
	if _, err = io.ReadFull(rng, d); err != nil {
		return nil, nil, ErrRandomness
	}

	gOut := sha3.Sum512(d)
	rho, sigma := gOut[:SymSize], gOut[SymSize:]

	a := genMatrix(rho, p.k, false)

	s := make(PolyVec, p.k)
	n := byte(0)
	for i := range s {
		s[i] = getNoise(sigma, n, p.eta1)
		n++
	}

	e := make(PolyVec, p.k)
	for i := range e {
		e[i] = getNoise(sigma, n, p.eta1)
		n++
	}

	shat, err := s.NTT()
	if err != nil {
		return nil, nil, err
	}
	ehat, err := e.NTT()
	if err != nil {
		return nil, nil, err
	}

	that, err := a.MulVec(shat)
	if err != nil {
		return nil, nil, err
	}
	that, err = that.Add(ehat)
	if err != nil {
		return nil, nil, err
	}

	pk = append(EncodePolyVec(that, 12), rho...)
	sk = EncodePolyVec(shat, 12)

	return pk, sk, nil
}

// Enc encrypts the SymSize-byte message m under the public key pk,
// drawing its randomness (the "coins") from coins rather than from an
// io.Reader: per spec.md, encryption is a deterministic function of
// its coins, and callers that want fresh randomness supply fresh
// coins.
//
//  1. Split pk into (that, rho); decode that (NTT domain).
//  2. At[i][j] <- Parse(SHAKE-128(rho || i || j)) -- the transpose of
//     the matrix KeyGen generated.
//  3. r_i <- CBD_eta1(coins, N), e1_i <- CBD_eta2(coins, N), e2 <-
//     CBD_eta2(coins, N), N incrementing throughout.
//  4. rhat <- NTT(r); u <- InvNTT(At.rhat) + e1;
//     v <- InvNTT(that^T.rhat) + e2 + Decompress_1(Decode_1(m)).
//  5. c <- Encode_du(Compress_du(u)) || Encode_dv(Compress_dv(v)).
func (p *ParameterSet) Enc(pk, m, coins []byte) ([]byte, error) {
	if len(pk) != p.publicKeySize {
		return nil, ErrInvalidLength
	}
	if len(m) != SymSize {
		return nil, ErrInvalidLength
	}
	if len(coins) != SymSize {
		return nil, ErrInvalidLength
	}

	thatBytes, rho := pk[:p.polyVecSize], pk[p.polyVecSize:]
	that := DecodePolyVec(thatBytes, p.k, 12)
	for i := range that {
		that[i].domain = domainNTT
	}

	at := genMatrix(rho, p.k, true)

	r := make(PolyVec, p.k)
	n := byte(0)
	for i := range r {
		r[i] = getNoise(coins, n, p.eta1)
		n++
	}
	e1 := make(PolyVec, p.k)
	for i := range e1 {
		e1[i] = getNoise(coins, n, p.eta2)
		n++
	}
	e2 := getNoise(coins, n, p.eta2)

	rhat, err := r.NTT()
	if err != nil {
		return nil, err
	}

	uNTT, err := at.MulVec(rhat)
	if err != nil {
		return nil, err
	}
	u, err := uNTT.InvNTT()
	if err != nil {
		return nil, err
	}
	u, err = u.Add(e1)
	if err != nil {
		return nil, err
	}

	vNTT, err := that.Dot(rhat)
	if err != nil {
		return nil, err
	}
	v, err := vNTT.InvNTT()
	if err != nil {
		return nil, err
	}
	if v, err = v.Add(e2); err != nil {
		return nil, err
	}

	mPoly, err := FromMsg(m)
	if err != nil {
		return nil, err
	}
	if v, err = v.Add(mPoly); err != nil {
		return nil, err
	}

	c1 := make([]byte, 0, p.k*32*p.du)
	for _, ui := range u {
		c1 = append(c1, EncodePoly(CompressPoly(ui, p.du), p.du)...)
	}
	c2 := EncodePoly(CompressPoly(v, p.dv), p.dv)

	return append(c1, c2...), nil
}

// Dec decrypts ciphertext c under the private key sk, returning the
// recovered SymSize-byte message. Dec never fails on correctly sized
// inputs: decryption failure (an exceedingly rare event, bounded by
// the scheme's noise analysis) is silent, per spec.md -- the returned
// bytes simply will not match the original message.
//
//  1. Parse c into u (k polys of du bits) and v (one poly of dv bits),
//     both Decompress_d(Decode_d(...)).
//  2. Decode shat from sk (NTT domain).
//  3. m <- Encode_1(Compress_1(v - InvNTT(shat^T.NTT(u)))).
func (p *ParameterSet) Dec(sk, c []byte) ([]byte, error) {
	if len(sk) != p.secretKeySize {
		return nil, ErrInvalidLength
	}
	if len(c) != p.cipherTextSize {
		return nil, ErrInvalidLength
	}

	uSize := p.k * 32 * p.du
	c1, c2 := c[:uSize], c[uSize:]

	u := DecodePolyVec(c1, p.k, p.du)
	for i := range u {
		u[i] = DecompressPoly(u[i], p.du)
	}
	v := DecompressPoly(DecodePoly(c2, p.dv), p.dv)

	shat := DecodePolyVec(sk, p.k, 12)
	for i := range shat {
		shat[i].domain = domainNTT
	}

	uhat, err := u.NTT()
	if err != nil {
		return nil, err
	}

	svNTT, err := shat.Dot(uhat)
	if err != nil {
		return nil, err
	}
	sv, err := svNTT.InvNTT()
	if err != nil {
		return nil, err
	}

	mPoly, err := v.Sub(sv)
	if err != nil {
		return nil, err
	}

	return ToMsg(mPoly), nil
}
