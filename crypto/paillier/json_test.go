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
	"encoding/json"
	"math/big"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("JSON (de)serialisation", func() {
	It("round-trips a public key", func() {
		priv, err := GenerateKeyPair(MinKeyBits)
		Expect(err).Should(BeNil())

		data, err := json.Marshal(priv.PublicKey)
		Expect(err).Should(BeNil())

		var got PublicKey
		Expect(json.Unmarshal(data, &got)).Should(BeNil())
		Expect(got.Equal(priv.PublicKey)).Should(BeTrue())
	})

	It("round-trips a private key", func() {
		priv, err := GenerateKeyPair(MinKeyBits)
		Expect(err).Should(BeNil())

		data, err := json.Marshal(priv)
		Expect(err).Should(BeNil())

		var got PrivateKey
		Expect(json.Unmarshal(data, &got)).Should(BeNil())
		Expect(got.Equal(priv)).Should(BeTrue())

		m := big.NewInt(42)
		c, err := got.RawEncrypt(m)
		Expect(err).Should(BeNil())
		decrypted, err := got.RawDecrypt(c)
		Expect(err).Should(BeNil())
		Expect(decrypted.Cmp(m)).Should(BeZero())
	})
})
