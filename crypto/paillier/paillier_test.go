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

package paillier

import (
	"math/big"
	"testing"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"

	"github.com/paillierfx/go-paillierfx/crypto/utils"
)

func TestPaillier(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Paillier Suite")
}

var _ = Describe("Paillier", func() {
	var priv *PrivateKey
	BeforeEach(func() {
		var err error
		priv, err = GenerateKeyPair(MinKeyBits)
		Expect(err).Should(BeNil())
	})

	It("rejects a key size below MinKeyBits", func() {
		_, err := GenerateKeyPair(MinKeyBits - 1)
		Expect(err).Should(Equal(ErrSmallKeySize))
	})

	It("round-trips a random message", func() {
		m, err := utils.RandomInt(priv.N)
		Expect(err).Should(BeNil())
		c, err := priv.RawEncrypt(m)
		Expect(err).Should(BeNil())
		Expect(c.Cmp(m)).ShouldNot(BeZero())
		got, err := priv.RawDecrypt(c)
		Expect(err).Should(BeNil())
		Expect(got.Cmp(m)).Should(BeZero())
	})

	It("round-trips zero", func() {
		c, err := priv.RawEncrypt(big0)
		Expect(err).Should(BeNil())
		got, err := priv.RawDecrypt(c)
		Expect(err).Should(BeNil())
		Expect(got.Cmp(big0)).Should(BeZero())
	})

	It("round-trips N-1", func() {
		m := new(big.Int).Sub(priv.N, big1)
		c, err := priv.RawEncrypt(m)
		Expect(err).Should(BeNil())
		got, err := priv.RawDecrypt(c)
		Expect(err).Should(BeNil())
		Expect(got.Cmp(m)).Should(BeZero())
	})

	Context("invalid encrypt", func() {
		It("rejects a negative message", func() {
			c, err := priv.RawEncrypt(big.NewInt(-5))
			Expect(err).Should(Equal(ErrInvalidMessage))
			Expect(c).Should(BeNil())
		})

		It("rejects a message >= N", func() {
			c, err := priv.RawEncrypt(priv.N)
			Expect(err).Should(Equal(ErrInvalidMessage))
			Expect(c).Should(BeNil())
		})
	})

	Context("invalid decrypt", func() {
		It("rejects a ciphertext >= N^2", func() {
			got, err := priv.RawDecrypt(priv.NSquare)
			Expect(err).Should(Equal(ErrInvalidMessage))
			Expect(got).Should(BeNil())
		})

		It("rejects a zero ciphertext", func() {
			got, err := priv.RawDecrypt(big0)
			Expect(err).Should(Equal(ErrInvalidMessage))
			Expect(got).Should(BeNil())
		})
	})

	It("homomorphically adds two ciphertexts", func() {
		a, b := big.NewInt(123), big.NewInt(7654)
		ca, err := priv.RawEncrypt(a)
		Expect(err).Should(BeNil())
		cb, err := priv.RawEncrypt(b)
		Expect(err).Should(BeNil())
		sum, err := priv.RawAdd(ca, cb)
		Expect(err).Should(BeNil())
		got, err := priv.RawDecrypt(sum)
		Expect(err).Should(BeNil())
		Expect(got.Cmp(big.NewInt(7777))).Should(BeZero())
	})

	It("homomorphically multiplies a ciphertext by a plaintext scalar", func() {
		a, k := big.NewInt(21), big.NewInt(3)
		ca, err := priv.RawEncrypt(a)
		Expect(err).Should(BeNil())
		product, err := priv.RawMultiply(ca, k)
		Expect(err).Should(BeNil())
		got, err := priv.RawDecrypt(product)
		Expect(err).Should(BeNil())
		Expect(got.Cmp(big.NewInt(63))).Should(BeZero())
	})

	It("obfuscation changes the ciphertext but not the plaintext", func() {
		m := big.NewInt(42)
		c, err := priv.RawEncrypt(m)
		Expect(err).Should(BeNil())
		obf, err := priv.RawObfuscate(c)
		Expect(err).Should(BeNil())
		Expect(obf.Cmp(c)).ShouldNot(BeZero())
		got, err := priv.RawDecrypt(obf)
		Expect(err).Should(BeNil())
		Expect(got.Cmp(m)).Should(BeZero())
	})

	It("Equal() treats p and q as an unordered pair", func() {
		swapped := priv.Copy()
		swapped.p, swapped.q = priv.q, priv.p
		Expect(priv.Equal(swapped)).Should(BeTrue())
	})

	DescribeTable("lFunction()", func(u, x, want *big.Int, wantErr error) {
		got, err := lFunction(u, x)
		if wantErr != nil {
			Expect(err).Should(Equal(wantErr))
			Expect(got).Should(BeNil())
		} else {
			Expect(err).Should(BeNil())
			Expect(got.Cmp(want)).Should(BeZero())
		}
	},
		Entry("(11, 5) -> 2", big.NewInt(11), big.NewInt(5), big.NewInt(2), nil),
		Entry("(1, 2) -> 0", big.NewInt(1), big.NewInt(2), big.NewInt(0), nil),
		Entry("(12, 5) not exact", big.NewInt(12), big.NewInt(5), nil, ErrInvalidArgument),
	)
})
