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

package keyfile

import (
	"encoding/json"
	"math/big"
	"os"
)

// Ciphertext is the on-disk shape the CLI passes an EncryptedNumber
// between subcommands as: a decimal ciphertext and its exponent. It
// carries no context — the caller must supply matching --precision/
// --base/--signed flags to reconstruct the right scheme.
type Ciphertext struct {
	Ciphertext string `json:"ciphertext"`
	Exponent   int    `json:"exponent"`
	Safe       bool   `json:"safe"`
}

// SaveCiphertext writes value/exponent/safe to path as JSON.
func SaveCiphertext(path string, value *big.Int, exponent int, safe bool) error {
	data, err := json.MarshalIndent(Ciphertext{
		Ciphertext: value.String(),
		Exponent:   exponent,
		Safe:       safe,
	}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// LoadCiphertext reads a ciphertext file previously written by SaveCiphertext.
func LoadCiphertext(path string) (*big.Int, int, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, false, err
	}
	var c Ciphertext
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, 0, false, err
	}
	value, ok := new(big.Int).SetString(c.Ciphertext, 10)
	if !ok {
		return nil, 0, false, ErrMalformedCiphertext
	}
	return value, c.Exponent, c.Safe, nil
}
