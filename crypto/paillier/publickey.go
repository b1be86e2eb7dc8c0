// Copyright © 2020 AMIS Technologies
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package paillier implements the Paillier cryptosystem: key generation,
// CRT-accelerated decryption, and the ciphertext-space homomorphic
// operations the rest of the module builds its fixed-point algebra on.
//
// https://en.wikipedia.org/wiki/Paillier_cryptosystem
package paillier

import (
	"math/big"

	"github.com/paillierfx/go-paillierfx/crypto/utils"
)

// MinKeyBits is the smallest modulus size this package will generate.
// Callers after interoperability with other Paillier libraries typically
// want 2048.
const MinKeyBits = 512

// PublicKey is (N, G). G is always N+1, which is what makes encryption a
// single multiply-and-exponentiate: c = (1 + m*N) * r^N mod N^2.
type PublicKey struct {
	N       *big.Int
	NSquare *big.Int
	G       *big.Int
}

func newPublicKey(n *big.Int) *PublicKey {
	return &PublicKey{
		N:       n,
		NSquare: new(big.Int).Mul(n, n),
		G:       new(big.Int).Add(n, big1),
	}
}

// Equal reports whether two public keys share the same modulus.
func (pub *PublicKey) Equal(other *PublicKey) bool {
	if pub == nil || other == nil {
		return pub == other
	}
	return pub.N.Cmp(other.N) == 0
}

// Copy returns a deep copy of pub.
func (pub *PublicKey) Copy() *PublicKey {
	return &PublicKey{
		N:       new(big.Int).Set(pub.N),
		NSquare: new(big.Int).Set(pub.NSquare),
		G:       new(big.Int).Set(pub.G),
	}
}

// RawEncryptWithoutObfuscation returns 1 + m*N mod N^2. The result must be
// obfuscated with a fresh random factor before it is ever disclosed.
// RawEncrypt builds on it, and context.AddPlainToCiphertext uses it to turn
// a plaintext operand into a ciphertext.
func (pub *PublicKey) RawEncryptWithoutObfuscation(m *big.Int) (*big.Int, error) {
	if m.Sign() < 0 || m.Cmp(pub.N) >= 0 {
		return nil, ErrInvalidMessage
	}
	c := new(big.Int).Mul(m, pub.N)
	c.Add(c, big1)
	return c.Mod(c, pub.NSquare), nil
}

// RawEncrypt encrypts m in [0, N) under fresh randomness, returning
// c = (1 + m*N) * r^N mod N^2.
func (pub *PublicKey) RawEncrypt(m *big.Int) (*big.Int, error) {
	c, err := pub.RawEncryptWithoutObfuscation(m)
	if err != nil {
		return nil, err
	}
	return pub.RawObfuscate(c)
}

// RawObfuscate re-randomises a ciphertext by multiplying it with r^N for a
// freshly-sampled r in [1, N), preserving the plaintext it decrypts to.
func (pub *PublicKey) RawObfuscate(c *big.Int) (*big.Int, error) {
	r, err := utils.RandomPositiveInt(pub.N)
	if err != nil {
		return nil, err
	}
	rn := new(big.Int).Exp(r, pub.N, pub.NSquare)
	out := new(big.Int).Mul(c, rn)
	return out.Mod(out, pub.NSquare), nil
}

// RawAdd computes the ciphertext of the sum of the two plaintexts
// underlying c1 and c2: c1 * c2 mod N^2.
func (pub *PublicKey) RawAdd(c1, c2 *big.Int) (*big.Int, error) {
	if err := utils.InRange(c1, big0, pub.NSquare); err != nil {
		return nil, ErrInvalidMessage
	}
	if err := utils.InRange(c2, big0, pub.NSquare); err != nil {
		return nil, ErrInvalidMessage
	}
	out := new(big.Int).Mul(c1, c2)
	return out.Mod(out, pub.NSquare), nil
}

// RawMultiply computes the ciphertext of k times the plaintext underlying
// c, for k in [0, N).
func (pub *PublicKey) RawMultiply(c, k *big.Int) (*big.Int, error) {
	if err := utils.InRange(c, big0, pub.NSquare); err != nil {
		return nil, ErrInvalidMessage
	}
	if k.Sign() < 0 || k.Cmp(pub.N) >= 0 {
		return nil, ErrInvalidMessage
	}
	if k.Cmp(big1) == 0 {
		return new(big.Int).Set(c), nil
	}
	return new(big.Int).Exp(c, k, pub.NSquare), nil
}
