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

// Package keyfile reads and writes the JSON key files paillierfx's
// subcommands pass between each other on disk. It exists only for the CLI
// demo; the library itself has no notion of a "key file".
package keyfile

import (
	"encoding/json"
	"os"

	"github.com/paillierfx/go-paillierfx/crypto/paillier"
)

// SavePrivateKey writes priv to path as JSON, 0600 so the prime factors
// aren't world-readable.
func SavePrivateKey(path string, priv *paillier.PrivateKey) error {
	data, err := json.MarshalIndent(priv, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// LoadPrivateKey reads a private key previously written by SavePrivateKey.
func LoadPrivateKey(path string) (*paillier.PrivateKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var priv paillier.PrivateKey
	if err := json.Unmarshal(data, &priv); err != nil {
		return nil, err
	}
	return &priv, nil
}

// SavePublicKey writes pub to path as JSON.
func SavePublicKey(path string, pub *paillier.PublicKey) error {
	data, err := json.MarshalIndent(pub, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// LoadPublicKey reads a public key previously written by SavePublicKey.
func LoadPublicKey(path string) (*paillier.PublicKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var pub paillier.PublicKey
	if err := json.Unmarshal(data, &pub); err != nil {
		return nil, err
	}
	return &pub, nil
}
