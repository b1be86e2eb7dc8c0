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
)

// No wire format is mandated by this package; JSON of the decimal modulus
// (and, for a private key, its two prime factors) is one canonical
// encoding among many, chosen here only so cmd/paillierfx has something to
// write to and read from disk.

type publicKeyJSON struct {
	N string `json:"n"`
}

// MarshalJSON encodes pub as its decimal modulus.
func (pub *PublicKey) MarshalJSON() ([]byte, error) {
	return json.Marshal(publicKeyJSON{N: pub.N.String()})
}

// UnmarshalJSON reconstructs pub from its decimal modulus.
func (pub *PublicKey) UnmarshalJSON(data []byte) error {
	var raw publicKeyJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	n, ok := new(big.Int).SetString(raw.N, 10)
	if !ok {
		return ErrInvalidArgument
	}
	*pub = *newPublicKey(n)
	return nil
}

type privateKeyJSON struct {
	P string `json:"p"`
	Q string `json:"q"`
}

// MarshalJSON encodes priv as its two decimal prime factors; N, N² and the
// CRT terms are all re-derived from them on unmarshal.
func (priv *PrivateKey) MarshalJSON() ([]byte, error) {
	return json.Marshal(privateKeyJSON{P: priv.p.String(), Q: priv.q.String()})
}

// UnmarshalJSON reconstructs priv from its two decimal prime factors.
func (priv *PrivateKey) UnmarshalJSON(data []byte) error {
	var raw privateKeyJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	p, ok := new(big.Int).SetString(raw.P, 10)
	if !ok {
		return ErrInvalidArgument
	}
	q, ok := new(big.Int).SetString(raw.Q, 10)
	if !ok {
		return ErrInvalidArgument
	}
	n := new(big.Int).Mul(p, q)
	reconstructed, err := newPrivateKey(p, q, n)
	if err != nil {
		return err
	}
	*priv = *reconstructed
	return nil
}
