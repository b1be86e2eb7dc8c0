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
	"testing"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/paillierfx/go-paillierfx/crypto/paillier"
	"github.com/paillierfx/go-paillierfx/encoding"
)

func TestContext(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Context Suite")
}

var _ = Describe("Context", func() {
	var (
		priv *paillier.PrivateKey
		sch  *encoding.Scheme
		ctx  *Context
	)
	BeforeEach(func() {
		var err error
		priv, err = paillier.GenerateKeyPair(paillier.MinKeyBits)
		Expect(err).Should(BeNil())
		sch, err = encoding.NewScheme(priv.PublicKey, true, priv.N.BitLen(), 16)
		Expect(err).Should(BeNil())
		ctx, err = NewContext(priv.PublicKey, priv, sch)
		Expect(err).Should(BeNil())
	})

	It("rejects a scheme bound to a different public key", func() {
		other, err := paillier.GenerateKeyPair(paillier.MinKeyBits)
		Expect(err).Should(BeNil())
		_, err = NewContext(other.PublicKey, nil, sch)
		Expect(err).Should(Equal(ErrInvalidArgument))
	})

	It("builds an encrypt-only context without a private key", func() {
		encryptOnly, err := NewContext(priv.PublicKey, nil, sch)
		Expect(err).Should(BeNil())
		_, err = encryptOnly.Decrypt(big.NewInt(1))
		Expect(err).Should(Equal(ErrNoPrivateKey))
	})

	It("Compatible() requires equal public key and scheme", func() {
		other, err := encoding.NewScheme(priv.PublicKey, true, 64, 10)
		Expect(err).Should(BeNil())
		otherCtx, err := NewContext(priv.PublicKey, priv, other)
		Expect(err).Should(BeNil())
		Expect(ctx.Compatible(otherCtx)).Should(BeFalse())
		Expect(ctx.Compatible(ctx)).Should(BeTrue())
	})

	Context("plaintext algebra", func() {
		It("adds two values at the same exponent", func() {
			v1, e1, err := sch.EncodeInt64(123)
			Expect(err).Should(BeNil())
			v2, e2, err := sch.EncodeInt64(7654)
			Expect(err).Should(BeNil())
			sum, exp, err := ctx.AddEncoded(v1, e1, v2, e2)
			Expect(err).Should(BeNil())
			got, err := sch.DecodeInt64(sum, exp)
			Expect(err).Should(BeNil())
			Expect(got).Should(Equal(int64(7777)))
		})

		It("aligns exponents when adding mismatched scales", func() {
			e1 := -2
			v1, err := sch.EncodeAt(big.NewRat(1, 256), e1) // 1 * 16^-2
			Expect(err).Should(BeNil())
			v2, e2, err := sch.EncodeInt64(1)
			Expect(err).Should(BeNil())
			sum, exp, err := ctx.AddEncoded(v1, e1, v2, e2)
			Expect(err).Should(BeNil())
			got, err := sch.DecodeFloat64(sum, exp)
			Expect(err).Should(BeNil())
			Expect(got).Should(BeNumerically("~", 1.0+1.0/256.0, 1e-9))
		})

		It("computes the additive inverse", func() {
			v, e, err := sch.EncodeInt64(123)
			Expect(err).Should(BeNil())
			inv := ctx.AdditiveInverseEncoded(v)
			sum, exp, err := ctx.AddEncoded(v, e, inv, e)
			Expect(err).Should(BeNil())
			got, err := sch.DecodeInt64(sum, exp)
			Expect(err).Should(BeNil())
			Expect(got).Should(Equal(int64(0)))
		})

		It("multiplies two values, adding exponents", func() {
			v1, e1, err := sch.EncodeInt64(6)
			Expect(err).Should(BeNil())
			v2, e2, err := sch.EncodeInt64(7)
			Expect(err).Should(BeNil())
			product, exp, err := ctx.MultiplyEncoded(v1, e1, v2, e2)
			Expect(err).Should(BeNil())
			got, err := sch.DecodeInt64(product, exp)
			Expect(err).Should(BeNil())
			Expect(got).Should(Equal(int64(42)))
		})

		It("divides by a scalar via its reciprocal", func() {
			v, e, err := sch.EncodeInt64(100)
			Expect(err).Should(BeNil())
			quotient, exp, err := ctx.DivideEncodedByScalar(v, e, big.NewRat(4, 1))
			Expect(err).Should(BeNil())
			got, err := sch.DecodeFloat64(quotient, exp)
			Expect(err).Should(BeNil())
			Expect(got).Should(BeNumerically("~", 25.0, 1e-6))
		})
	})

	Context("ciphertext algebra", func() {
		It("adds two ciphertexts homomorphically", func() {
			v1, e1, err := sch.EncodeInt64(123)
			Expect(err).Should(BeNil())
			v2, e2, err := sch.EncodeInt64(7654)
			Expect(err).Should(BeNil())
			c1, err := ctx.Encrypt(v1)
			Expect(err).Should(BeNil())
			c2, err := ctx.Encrypt(v2)
			Expect(err).Should(BeNil())
			sum, exp, err := ctx.AddCiphertexts(c1, e1, c2, e2)
			Expect(err).Should(BeNil())
			plain, err := ctx.Decrypt(sum)
			Expect(err).Should(BeNil())
			got, err := sch.DecodeInt64(plain, exp)
			Expect(err).Should(BeNil())
			Expect(got).Should(Equal(int64(7777)))
		})

		It("scales a ciphertext by an encoded scalar", func() {
			v, e, err := sch.EncodeInt64(21)
			Expect(err).Should(BeNil())
			k, ek, err := sch.EncodeInt64(3)
			Expect(err).Should(BeNil())
			c, err := ctx.Encrypt(v)
			Expect(err).Should(BeNil())
			product, exp, err := ctx.MultiplyCiphertextByScalar(c, e, k, ek)
			Expect(err).Should(BeNil())
			plain, err := ctx.Decrypt(product)
			Expect(err).Should(BeNil())
			got, err := sch.DecodeInt64(plain, exp)
			Expect(err).Should(BeNil())
			Expect(got).Should(Equal(int64(63)))
		})

		It("cancels via the additive inverse", func() {
			v, e, err := sch.EncodeInt64(123)
			Expect(err).Should(BeNil())
			c, err := ctx.Encrypt(v)
			Expect(err).Should(BeNil())
			inv, err := ctx.AdditiveInverseCiphertext(c)
			Expect(err).Should(BeNil())
			sum, exp, err := ctx.AddCiphertexts(c, e, inv, e)
			Expect(err).Should(BeNil())
			plain, err := ctx.Decrypt(sum)
			Expect(err).Should(BeNil())
			got, err := sch.DecodeInt64(plain, exp)
			Expect(err).Should(BeNil())
			Expect(got).Should(Equal(int64(0)))
		})

		It("obfuscation changes the ciphertext but not the decrypted value", func() {
			v, e, err := sch.EncodeInt64(42)
			Expect(err).Should(BeNil())
			c, err := ctx.Encrypt(v)
			Expect(err).Should(BeNil())
			obf, err := ctx.ObfuscateCiphertext(c)
			Expect(err).Should(BeNil())
			Expect(obf.Cmp(c)).ShouldNot(BeZero())
			plain, err := ctx.Decrypt(obf)
			Expect(err).Should(BeNil())
			got, err := sch.DecodeInt64(plain, e)
			Expect(err).Should(BeNil())
			Expect(got).Should(Equal(int64(42)))
		})
	})
})
