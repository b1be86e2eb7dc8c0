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

package context

import (
	"math/big"

	"github.com/paillierfx/go-paillierfx/crypto/utils"
)

var big0 = big.NewInt(0)

// basePow returns Scheme.Base^e as a non-negative exponent power, e taken
// as |e| since this is only ever used to rescale by a non-negative delta.
func (c *Context) basePow(e int) *big.Int {
	if e < 0 {
		e = -e
	}
	return new(big.Int).Exp(big.NewInt(int64(c.Scheme.Base)), big.NewInt(int64(e)), nil)
}

// AddEncoded adds two encoded ring values at possibly different exponents,
// aligning to the smaller exponent (the only direction that doesn't lose
// information) before adding modulo N.
func (c *Context) AddEncoded(v1 *big.Int, e1 int, v2 *big.Int, e2 int) (*big.Int, int, error) {
	a, b, exp := c.alignPlain(v1, e1, v2, e2)
	sum := new(big.Int).Add(a, b)
	return sum.Mod(sum, c.PublicKey.N), exp, nil
}

// AdditiveInverseEncoded returns the additive inverse of an encoded ring
// value: unchanged if zero, otherwise N - value.
func (c *Context) AdditiveInverseEncoded(value *big.Int) *big.Int {
	if value.Sign() == 0 {
		return new(big.Int).Set(value)
	}
	return new(big.Int).Sub(c.PublicKey.N, value)
}

// SubEncoded is addition with the second operand's additive inverse.
func (c *Context) SubEncoded(v1 *big.Int, e1 int, v2 *big.Int, e2 int) (*big.Int, int, error) {
	return c.AddEncoded(v1, e1, c.AdditiveInverseEncoded(v2), e2)
}

// MultiplyEncoded multiplies two encoded ring values modulo N, adding
// their exponents.
func (c *Context) MultiplyEncoded(v1 *big.Int, e1 int, v2 *big.Int, e2 int) (*big.Int, int, error) {
	product := new(big.Int).Mul(v1, v2)
	return product.Mod(product, c.PublicKey.N), e1 + e2, nil
}

// DivideEncodedByScalar divides an encoded ring value by a rational scalar
// b, implemented as multiplication by b's encoded reciprocal — there is no
// general homomorphic division in this scheme. The reciprocal is rounded to
// a float64 and encoded at the exponent EncodeFloat64 chooses for it.
func (c *Context) DivideEncodedByScalar(v *big.Int, exponent int, b *big.Rat) (*big.Int, int, error) {
	if b.Sign() == 0 {
		return nil, 0, ErrInvalidArgument
	}
	reciprocal, _ := new(big.Rat).Inv(b).Float64()
	recipValue, recipExp, err := c.Scheme.EncodeFloat64(reciprocal)
	if err != nil {
		return nil, 0, err
	}
	return c.MultiplyEncoded(v, exponent, recipValue, recipExp)
}

// alignPlain rescales whichever of (v1, e1), (v2, e2) has the larger
// exponent down to the smaller one, returning both stored values at that
// common exponent.
func (c *Context) alignPlain(v1 *big.Int, e1 int, v2 *big.Int, e2 int) (*big.Int, *big.Int, int) {
	if e1 == e2 {
		return v1, v2, e1
	}
	if e1 > e2 {
		delta := c.basePow(e1 - e2)
		shifted := new(big.Int).Mul(v1, delta)
		return shifted.Mod(shifted, c.PublicKey.N), v2, e2
	}
	delta := c.basePow(e2 - e1)
	shifted := new(big.Int).Mul(v2, delta)
	return v1, shifted.Mod(shifted, c.PublicKey.N), e1
}

// AddCiphertexts homomorphically adds two ciphertexts at possibly different
// exponents, rescaling the higher-exponent ciphertext down by scalar
// multiplication before the raw addition. The result is never safe.
func (c *Context) AddCiphertexts(c1 *big.Int, e1 int, c2 *big.Int, e2 int) (*big.Int, int, error) {
	a, b, exp, err := c.alignCiphertexts(c1, e1, c2, e2)
	if err != nil {
		return nil, 0, err
	}
	sum, err := c.PublicKey.RawAdd(a, b)
	if err != nil {
		return nil, 0, err
	}
	return sum, exp, nil
}

// AddPlainToCiphertext adds an encoded plaintext to a ciphertext by
// encrypting the plaintext without obfuscation (the sum is re-randomised
// as a whole by whatever eventually discloses it) and delegating to
// AddCiphertexts.
func (c *Context) AddPlainToCiphertext(cipher *big.Int, cExp int, plain *big.Int, pExp int) (*big.Int, int, error) {
	plainCipher, err := c.PublicKey.RawEncryptWithoutObfuscation(plain)
	if err != nil {
		return nil, 0, err
	}
	return c.AddCiphertexts(cipher, cExp, plainCipher, pExp)
}

// MultiplyCiphertextByScalar scales the plaintext underlying cipher by an
// encoded scalar value (already stored as a non-negative ring element, so
// no extra sign handling is needed), adding exponents.
func (c *Context) MultiplyCiphertextByScalar(cipher *big.Int, cExp int, scalarValue *big.Int, sExp int) (*big.Int, int, error) {
	product, err := c.PublicKey.RawMultiply(cipher, scalarValue)
	if err != nil {
		return nil, 0, err
	}
	return product, cExp + sExp, nil
}

// AdditiveInverseCiphertext returns the modular inverse of a ciphertext
// modulo N^2. It does not obfuscate — composition stays explicit, and the
// caller obfuscates before disclosure.
func (c *Context) AdditiveInverseCiphertext(cipher *big.Int) (*big.Int, error) {
	inv := new(big.Int).ModInverse(cipher, c.PublicKey.NSquare)
	if inv == nil {
		return nil, ErrInvalidArgument
	}
	return inv, nil
}

// ObfuscateCiphertext re-randomises a ciphertext, the only operation that
// produces a safe (freshly-randomised) result.
func (c *Context) ObfuscateCiphertext(cipher *big.Int) (*big.Int, error) {
	return c.PublicKey.RawObfuscate(cipher)
}

// alignExponent raises a ciphertext to base^delta directly, modulo N^2. This
// bypasses RawMultiply's [0,N) scalar guard: delta is an alignment factor,
// not a plaintext message, and routinely exceeds N once the exponent gap is
// large (e.g. a large base to a wide precision gap).
func (c *Context) alignExponent(cipher *big.Int, delta *big.Int) (*big.Int, error) {
	if err := utils.InRange(cipher, big0, c.PublicKey.NSquare); err != nil {
		return nil, ErrInvalidArgument
	}
	return new(big.Int).Exp(cipher, delta, c.PublicKey.NSquare), nil
}

func (c *Context) alignCiphertexts(c1 *big.Int, e1 int, c2 *big.Int, e2 int) (*big.Int, *big.Int, int, error) {
	if e1 == e2 {
		return c1, c2, e1, nil
	}
	if e1 > e2 {
		delta := c.basePow(e1 - e2)
		shifted, err := c.alignExponent(c1, delta)
		if err != nil {
			return nil, nil, 0, err
		}
		return shifted, c2, e2, nil
	}
	delta := c.basePow(e2 - e1)
	shifted, err := c.alignExponent(c2, delta)
	if err != nil {
		return nil, nil, 0, err
	}
	return c1, shifted, e1, nil
}
