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

// Package context binds a public key, an optional private key and an
// encoding scheme, and hosts the homomorphic algebra on encoded and
// encrypted ring values. It is the one place that knows how to align
// exponents, so number.EncodedNumber and number.EncryptedNumber stay thin
// value types that delegate here.
package context

import (
	"math/big"

	"github.com/paillierfx/go-paillierfx/crypto/paillier"
	"github.com/paillierfx/go-paillierfx/encoding"
)

// Context composes a public key, an optional private key, and an encoding
// scheme. A Context with a nil PrivateKey can encrypt, add and decode but
// not decrypt — the shape handed to an untrusted party in real deployments.
type Context struct {
	PublicKey  *paillier.PublicKey
	PrivateKey *paillier.PrivateKey
	Scheme     *encoding.Scheme
}

// NewContext validates that privateKey (if present) and scheme both belong
// to publicKey before binding them together.
func NewContext(publicKey *paillier.PublicKey, privateKey *paillier.PrivateKey, scheme *encoding.Scheme) (*Context, error) {
	if publicKey == nil || scheme == nil {
		return nil, ErrInvalidArgument
	}
	if !scheme.PublicKey.Equal(publicKey) {
		return nil, ErrInvalidArgument
	}
	if privateKey != nil && !privateKey.PublicKey.Equal(publicKey) {
		return nil, ErrInvalidArgument
	}
	return &Context{PublicKey: publicKey, PrivateKey: privateKey, Scheme: scheme}, nil
}

// Compatible reports whether two contexts share the same public key and
// encoding scheme (signedness, precision and base), the condition every
// binary operation across EncodedNumber/EncryptedNumber requires.
func (c *Context) Compatible(other *Context) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.PublicKey.Equal(other.PublicKey) && c.Scheme.Equal(other.Scheme)
}

func (c *Context) checkSameContext(other *Context) error {
	if !c.Compatible(other) {
		return ErrContextMismatch
	}
	return nil
}

// Encrypt returns the ciphertext for a stored ring value.
func (c *Context) Encrypt(value *big.Int) (*big.Int, error) {
	return c.PublicKey.RawEncrypt(value)
}

// Decrypt recovers the stored ring value underlying a ciphertext. It fails
// with ErrNoPrivateKey on an encrypt-only context.
func (c *Context) Decrypt(ciphertext *big.Int) (*big.Int, error) {
	if c.PrivateKey == nil {
		return nil, ErrNoPrivateKey
	}
	return c.PrivateKey.RawDecrypt(ciphertext)
}
