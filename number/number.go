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

// Package number provides EncodedNumber and EncryptedNumber, the value
// types a caller actually works with: (context, value, exponent) triples
// whose arithmetic methods delegate to their shared context.
package number

import (
	"math/big"

	"github.com/paillierfx/go-paillierfx/context"
)

// EncodedNumber is a plaintext value living in the ring, together with the
// exponent that scales it: the number it represents is
// decode(Value) * base^Exponent.
type EncodedNumber struct {
	Ctx      *context.Context
	Value    *big.Int
	Exponent int
}

// NewEncodedInt64 encodes x under ctx's scheme.
func NewEncodedInt64(ctx *context.Context, x int64) (*EncodedNumber, error) {
	value, exponent, err := ctx.Scheme.EncodeInt64(x)
	if err != nil {
		return nil, err
	}
	return &EncodedNumber{Ctx: ctx, Value: value, Exponent: exponent}, nil
}

// NewEncodedFloat64 encodes x under ctx's scheme.
func NewEncodedFloat64(ctx *context.Context, x float64) (*EncodedNumber, error) {
	value, exponent, err := ctx.Scheme.EncodeFloat64(x)
	if err != nil {
		return nil, err
	}
	return &EncodedNumber{Ctx: ctx, Value: value, Exponent: exponent}, nil
}

// NewEncodedBigInt encodes x under ctx's scheme.
func NewEncodedBigInt(ctx *context.Context, x *big.Int) (*EncodedNumber, error) {
	value, exponent, err := ctx.Scheme.EncodeBigInt(x)
	if err != nil {
		return nil, err
	}
	return &EncodedNumber{Ctx: ctx, Value: value, Exponent: exponent}, nil
}

// DecodeInt64 narrows the number to an int64.
func (n *EncodedNumber) DecodeInt64() (int64, error) {
	return n.Ctx.Scheme.DecodeInt64(n.Value, n.Exponent)
}

// DecodeFloat64 widens the number to a float64.
func (n *EncodedNumber) DecodeFloat64() (float64, error) {
	return n.Ctx.Scheme.DecodeFloat64(n.Value, n.Exponent)
}

// DecodeBigInt returns the exact value, failing if the exponent makes it
// non-integral.
func (n *EncodedNumber) DecodeBigInt() (*big.Int, error) {
	return n.Ctx.Scheme.DecodeBigInt(n.Value, n.Exponent)
}

// Add returns n + other, aligning exponents in Ctx.
func (n *EncodedNumber) Add(other *EncodedNumber) (*EncodedNumber, error) {
	if !n.Ctx.Compatible(other.Ctx) {
		return nil, context.ErrContextMismatch
	}
	value, exponent, err := n.Ctx.AddEncoded(n.Value, n.Exponent, other.Value, other.Exponent)
	if err != nil {
		return nil, err
	}
	return &EncodedNumber{Ctx: n.Ctx, Value: value, Exponent: exponent}, nil
}

// Sub returns n - other.
func (n *EncodedNumber) Sub(other *EncodedNumber) (*EncodedNumber, error) {
	if !n.Ctx.Compatible(other.Ctx) {
		return nil, context.ErrContextMismatch
	}
	value, exponent, err := n.Ctx.SubEncoded(n.Value, n.Exponent, other.Value, other.Exponent)
	if err != nil {
		return nil, err
	}
	return &EncodedNumber{Ctx: n.Ctx, Value: value, Exponent: exponent}, nil
}

// Mul returns n * other.
func (n *EncodedNumber) Mul(other *EncodedNumber) (*EncodedNumber, error) {
	if !n.Ctx.Compatible(other.Ctx) {
		return nil, context.ErrContextMismatch
	}
	value, exponent, err := n.Ctx.MultiplyEncoded(n.Value, n.Exponent, other.Value, other.Exponent)
	if err != nil {
		return nil, err
	}
	return &EncodedNumber{Ctx: n.Ctx, Value: value, Exponent: exponent}, nil
}

// DivideByScalar returns n / b, implemented as multiplication by b's
// encoded reciprocal.
func (n *EncodedNumber) DivideByScalar(b *big.Rat) (*EncodedNumber, error) {
	value, exponent, err := n.Ctx.DivideEncodedByScalar(n.Value, n.Exponent, b)
	if err != nil {
		return nil, err
	}
	return &EncodedNumber{Ctx: n.Ctx, Value: value, Exponent: exponent}, nil
}

// Encrypt produces the EncryptedNumber for n.
func (n *EncodedNumber) Encrypt() (*EncryptedNumber, error) {
	ciphertext, err := n.Ctx.Encrypt(n.Value)
	if err != nil {
		return nil, err
	}
	return &EncryptedNumber{Ctx: n.Ctx, Ciphertext: ciphertext, Exponent: n.Exponent, Safe: true}, nil
}

// EncryptedNumber is a ciphertext together with the exponent it was
// encoded at, and whether it has been randomised since its last
// disclosure.
type EncryptedNumber struct {
	Ctx        *context.Context
	Ciphertext *big.Int
	Exponent   int
	Safe       bool
}

// Decrypt recovers the EncodedNumber n represents. Requires Ctx to hold a
// private key.
func (n *EncryptedNumber) Decrypt() (*EncodedNumber, error) {
	value, err := n.Ctx.Decrypt(n.Ciphertext)
	if err != nil {
		return nil, err
	}
	return &EncodedNumber{Ctx: n.Ctx, Value: value, Exponent: n.Exponent}, nil
}

// Add returns n + other, homomorphically. The result is never safe.
func (n *EncryptedNumber) Add(other *EncryptedNumber) (*EncryptedNumber, error) {
	if !n.Ctx.Compatible(other.Ctx) {
		return nil, context.ErrContextMismatch
	}
	ciphertext, exponent, err := n.Ctx.AddCiphertexts(n.Ciphertext, n.Exponent, other.Ciphertext, other.Exponent)
	if err != nil {
		return nil, err
	}
	return &EncryptedNumber{Ctx: n.Ctx, Ciphertext: ciphertext, Exponent: exponent, Safe: false}, nil
}

// AddEncoded returns n + plain, homomorphically adding an unencrypted value.
func (n *EncryptedNumber) AddEncoded(plain *EncodedNumber) (*EncryptedNumber, error) {
	if !n.Ctx.Compatible(plain.Ctx) {
		return nil, context.ErrContextMismatch
	}
	ciphertext, exponent, err := n.Ctx.AddPlainToCiphertext(n.Ciphertext, n.Exponent, plain.Value, plain.Exponent)
	if err != nil {
		return nil, err
	}
	return &EncryptedNumber{Ctx: n.Ctx, Ciphertext: ciphertext, Exponent: exponent, Safe: false}, nil
}

// Sub returns n - other.
func (n *EncryptedNumber) Sub(other *EncryptedNumber) (*EncryptedNumber, error) {
	inv, err := n.Ctx.AdditiveInverseCiphertext(other.Ciphertext)
	if err != nil {
		return nil, err
	}
	negated := &EncryptedNumber{Ctx: other.Ctx, Ciphertext: inv, Exponent: other.Exponent, Safe: false}
	return n.Add(negated)
}

// Mul returns n scaled by an encoded plaintext scalar. The result is
// never safe.
func (n *EncryptedNumber) Mul(scalar *EncodedNumber) (*EncryptedNumber, error) {
	if !n.Ctx.Compatible(scalar.Ctx) {
		return nil, context.ErrContextMismatch
	}
	ciphertext, exponent, err := n.Ctx.MultiplyCiphertextByScalar(n.Ciphertext, n.Exponent, scalar.Value, scalar.Exponent)
	if err != nil {
		return nil, err
	}
	return &EncryptedNumber{Ctx: n.Ctx, Ciphertext: ciphertext, Exponent: exponent, Safe: false}, nil
}

// DivideByScalar divides n by the plaintext rational b, implemented as
// multiplication by b's encoded reciprocal under n's scheme. The reciprocal
// is rounded to a float64 and encoded as NewEncodedFloat64 does.
func (n *EncryptedNumber) DivideByScalar(b *big.Rat) (*EncryptedNumber, error) {
	f, _ := new(big.Rat).Inv(b).Float64()
	reciprocal, err := NewEncodedFloat64(n.Ctx, f)
	if err != nil {
		return nil, err
	}
	return n.Mul(reciprocal)
}

// Obfuscate returns a copy of n re-randomised and marked Safe.
func (n *EncryptedNumber) Obfuscate() (*EncryptedNumber, error) {
	ciphertext, err := n.Ctx.ObfuscateCiphertext(n.Ciphertext)
	if err != nil {
		return nil, err
	}
	return &EncryptedNumber{Ctx: n.Ctx, Ciphertext: ciphertext, Exponent: n.Exponent, Safe: true}, nil
}

// Export returns n's ciphertext, obfuscating first if it isn't already
// safe to disclose.
func (n *EncryptedNumber) Export() (*big.Int, error) {
	if n.Safe {
		return n.Ciphertext, nil
	}
	obfuscated, err := n.Obfuscate()
	if err != nil {
		return nil, err
	}
	return obfuscated.Ciphertext, nil
}

// NewEncodedRat encodes a rational at exponent 0 under ctx's scheme, so the
// stored significand is r rounded half-away-from-zero to an integer.
func NewEncodedRat(ctx *context.Context, r *big.Rat) (*EncodedNumber, error) {
	value, err := ctx.Scheme.EncodeAt(r, 0)
	if err != nil {
		return nil, err
	}
	return &EncodedNumber{Ctx: ctx, Value: value, Exponent: 0}, nil
}
