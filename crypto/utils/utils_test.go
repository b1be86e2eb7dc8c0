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
package utils

import (
	"math/big"
	"testing"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

func TestUtils(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Utils Suite")
}

var _ = Describe("Utils", func() {
	It("RandomInt()", func() {
		got, err := RandomInt(big.NewInt(10))
		Expect(err).Should(BeNil())
		// Should be in [0, 10)
		Expect(got.Cmp(big.NewInt(10))).Should(Equal(-1))
		Expect(got.Cmp(big.NewInt(-1))).Should(Equal(1))
	})

	It("RandomInt() rejects a non-positive bound", func() {
		got, err := RandomInt(big.NewInt(0))
		Expect(err).Should(Equal(ErrInvalidArgument))
		Expect(got).Should(BeNil())
	})

	It("RandomPositiveInt()", func() {
		got, err := RandomPositiveInt(big.NewInt(10))
		Expect(err).Should(BeNil())
		// Should be in [1, 10)
		Expect(got.Cmp(big.NewInt(10))).Should(Equal(-1))
		Expect(got.Cmp(big.NewInt(0))).Should(Equal(1))
	})

	DescribeTable("RandomPositiveInt() rejects n <= 1", func(n *big.Int) {
		got, err := RandomPositiveInt(n)
		Expect(err).Should(Equal(ErrInvalidArgument))
		Expect(got).Should(BeNil())
	},
		Entry("n = 1", big.NewInt(1)),
		Entry("n = 0", big.NewInt(0)),
		Entry("n = -1", big.NewInt(-1)),
	)

	It("uniform sampling covers every value in [1, n)", func() {
		for n := int64(2); n <= 31; n++ {
			seen := make(map[int64]bool)
			for i := 0; i < 1000*int(n); i++ {
				got, err := RandomPositiveInt(big.NewInt(n))
				Expect(err).Should(BeNil())
				seen[got.Int64()] = true
			}
			for v := int64(1); v < n; v++ {
				Expect(seen[v]).Should(BeTrue(), "value %d never sampled for n=%d", v, n)
			}
		}
	})

	It("RandomPrime()", func() {
		bitLen := 5
		got, err := RandomPrime(bitLen)
		Expect(err).Should(BeNil())
		Expect(got.BitLen()).Should(BeNumerically("==", bitLen))
	})

	Context("RandomCoprimeInt()", func() {
		It("should be ok", func() {
			got, err := RandomCoprimeInt(big.NewInt(10))
			Expect(err).Should(BeNil())
			Expect(got).ShouldNot(BeNil())
		})

		It("over max retry", func() {
			maxGenPrimeInt = 0
			got, err := RandomCoprimeInt(big.NewInt(10))
			Expect(err).Should(Equal(ErrExceedMaxRetry))
			Expect(got).Should(BeNil())
			maxGenPrimeInt = 100
		})
	})

	It("IsRelativePrime()", func() {
		Expect(IsRelativePrime(big.NewInt(5), big.NewInt(8))).Should(BeTrue())
		Expect(IsRelativePrime(big.NewInt(6), big.NewInt(8))).Should(BeFalse())
	})

	It("Gcd()", func() {
		Expect(Gcd(big.NewInt(5), big.NewInt(10))).Should(Equal(big.NewInt(5)))
		Expect(Gcd(big.NewInt(5), big.NewInt(8))).Should(Equal(big1))
	})

	DescribeTable("InRange()", func(checkValue, floor, ceil *big.Int, err error) {
		gotErr := InRange(checkValue, floor, ceil)
		if err == nil {
			Expect(gotErr).Should(BeNil())
		} else {
			Expect(gotErr).Should(Equal(err))
		}
	},
		Entry("should be ok", big.NewInt(5), big.NewInt(5), big.NewInt(7), nil),
		Entry("larger floor", big.NewInt(3), big.NewInt(4), big.NewInt(4), ErrInvalidArgument),
		Entry("value is smaller than floor", big.NewInt(3), big.NewInt(4), big.NewInt(6), ErrNotInRange),
		Entry("value is equal to ceil", big.NewInt(6), big.NewInt(4), big.NewInt(6), ErrNotInRange),
	)

	DescribeTable("Sqrt()", func(n int64, want int64) {
		got, err := Sqrt(big.NewInt(n))
		Expect(err).Should(BeNil())
		Expect(got.Int64()).Should(Equal(want))
	},
		Entry("0", int64(0), int64(0)),
		Entry("1", int64(1), int64(1)),
		Entry("perfect square", int64(144), int64(12)),
		Entry("non-perfect square rounds down", int64(143), int64(11)),
		Entry("large value", int64(1<<40+17), int64(1048576)),
	)

	It("Sqrt() rejects negative input", func() {
		got, err := Sqrt(big.NewInt(-1))
		Expect(err).Should(Equal(ErrInvalidArgument))
		Expect(got).Should(BeNil())
	})

	Context("ModPow()", func() {
		It("matches big.Int.Exp for non-negative exponents", func() {
			b, e, m := big.NewInt(4), big.NewInt(13), big.NewInt(497)
			got, err := ModPow(b, e, m)
			Expect(err).Should(BeNil())
			Expect(got).Should(Equal(new(big.Int).Exp(b, e, m)))
		})

		It("supports negative exponents via modular inverse", func() {
			b, m := big.NewInt(4), big.NewInt(497)
			pos, err := ModPow(b, big.NewInt(3), m)
			Expect(err).Should(BeNil())
			neg, err := ModPow(b, big.NewInt(-3), m)
			Expect(err).Should(BeNil())
			roundTrip := new(big.Int).Mul(pos, neg)
			roundTrip.Mod(roundTrip, m)
			Expect(roundTrip).Should(Equal(big1))
		})

		It("fails when b has no inverse mod m", func() {
			got, err := ModPow(big.NewInt(4), big.NewInt(-1), big.NewInt(8))
			Expect(err).Should(Equal(ErrInvalidArgument))
			Expect(got).Should(BeNil())
		})
	})
})
