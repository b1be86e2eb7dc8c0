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

package keygen

import (
	"github.com/getamis/sirius/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/paillierfx/go-paillierfx/cmd/paillierfx/keyfile"
	"github.com/paillierfx/go-paillierfx/crypto/paillier"
)

var (
	bits       int
	outPrivate string
	outPublic  string
)

// Cmd generates a new Paillier key pair and writes the private and public
// halves to disk.
var Cmd = &cobra.Command{
	Use:   "keygen",
	Short: "Generate a new Paillier key pair",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := viper.BindPFlags(cmd.Flags()); err != nil {
			return err
		}
		bits = viper.GetInt("bits")
		outPrivate = viper.GetString("out-private")
		outPublic = viper.GetString("out-public")

		priv, err := paillier.GenerateKeyPair(bits)
		if err != nil {
			log.Crit("Failed to generate key pair", "err", err)
			return err
		}
		if err := keyfile.SavePrivateKey(outPrivate, priv); err != nil {
			log.Crit("Failed to write private key", "path", outPrivate, "err", err)
			return err
		}
		if err := keyfile.SavePublicKey(outPublic, priv.PublicKey); err != nil {
			log.Crit("Failed to write public key", "path", outPublic, "err", err)
			return err
		}
		log.Info("Generated key pair", "bits", bits, "private", outPrivate, "public", outPublic)
		return nil
	},
}

func init() {
	Cmd.Flags().Int("bits", 2048, "modulus bit length")
	Cmd.Flags().String("out-private", "private.json", "output path for the private key")
	Cmd.Flags().String("out-public", "public.json", "output path for the public key")
}
