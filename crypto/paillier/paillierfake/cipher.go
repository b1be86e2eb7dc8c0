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

// Package paillierfake provides cipher doubles for tests that would
// otherwise pay the cost of thousands of 2048-bit modular exponentiations.
// FakeCipher performs the real (N, G) algebra but stores plaintexts
// directly so Encrypt/Decrypt are O(1) big.Int ops; MockCipher is a
// call-expectation recorder for tests that only care who called what.
package paillierfake

import (
	"math/big"

	"github.com/paillierfx/go-paillierfx/crypto/paillier"
	"github.com/paillierfx/go-paillierfx/crypto/utils"
)

// Cipher is the subset of paillier.PrivateKey's raw cipher surface that
// higher layers depend on, narrow enough for both FakeCipher and
// MockCipher to satisfy.
type Cipher interface {
	RawEncrypt(m *big.Int) (*big.Int, error)
	RawDecrypt(c *big.Int) (*big.Int, error)
	RawAdd(c1, c2 *big.Int) (*big.Int, error)
	RawMultiply(c, k *big.Int) (*big.Int, error)
	RawObfuscate(c *big.Int) (*big.Int, error)
}

var _ Cipher = (*FakeCipher)(nil)

// FakeCipher wraps a real *paillier.PublicKey for shape/range checking but
// "encrypts" by storing m + a random multiple of N directly, avoiding the
// modexp cost of genuine Paillier encryption. It decrypts exactly, and its
// Add/Multiply/Obfuscate mirror the real homomorphic algebra over plain
// big.Int arithmetic mod N^2, so property tests that loop thousands of
// times stay fast without touching production code paths.
type FakeCipher struct {
	pub *paillier.PublicKey
}

// NewFakeCipher builds a FakeCipher bound to pub's modulus.
func NewFakeCipher(pub *paillier.PublicKey) *FakeCipher {
	return &FakeCipher{pub: pub}
}

// RawEncrypt stores m directly, shifted by a random multiple of N so
// repeated encryptions of the same message don't produce identical
// ciphertexts, matching the real cipher's non-determinism without its cost.
func (f *FakeCipher) RawEncrypt(m *big.Int) (*big.Int, error) {
	if m.Sign() < 0 || m.Cmp(f.pub.N) >= 0 {
		return nil, paillier.ErrInvalidMessage
	}
	r, err := utils.RandomInt(f.pub.N)
	if err != nil {
		return nil, err
	}
	shift := new(big.Int).Mul(f.pub.N, r)
	c := new(big.Int).Add(m, shift)
	return c.Mod(c, f.pub.NSquare), nil
}

// RawDecrypt recovers m = c mod N, the inverse of RawEncrypt's shift.
func (f *FakeCipher) RawDecrypt(c *big.Int) (*big.Int, error) {
	if c.Sign() < 0 || c.Cmp(f.pub.NSquare) >= 0 {
		return nil, paillier.ErrInvalidMessage
	}
	return new(big.Int).Mod(c, f.pub.N), nil
}

// RawAdd adds the underlying plaintexts directly mod N^2, preserving the
// same group structure the real cipher's multiplicative Add produces.
func (f *FakeCipher) RawAdd(c1, c2 *big.Int) (*big.Int, error) {
	out := new(big.Int).Add(c1, c2)
	return out.Mod(out, f.pub.NSquare), nil
}

// RawMultiply scales the stored plaintext by k directly mod N^2.
func (f *FakeCipher) RawMultiply(c, k *big.Int) (*big.Int, error) {
	out := new(big.Int).Mul(c, k)
	return out.Mod(out, f.pub.NSquare), nil
}

// RawObfuscate adds a fresh random multiple of N, changing the ciphertext
// without changing the plaintext it decrypts to.
func (f *FakeCipher) RawObfuscate(c *big.Int) (*big.Int, error) {
	r, err := utils.RandomPositiveInt(f.pub.N)
	if err != nil {
		return nil, err
	}
	out := new(big.Int).Mul(f.pub.N, r)
	out.Add(out, c)
	return out.Mod(out, f.pub.NSquare), nil
}
