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

package decrypt

import (
	"github.com/getamis/sirius/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/paillierfx/go-paillierfx/cmd/paillierfx/keyfile"
	"github.com/paillierfx/go-paillierfx/number"
)

// Cmd decrypts a ciphertext file and decodes it back to a native integer.
var Cmd = &cobra.Command{
	Use:   "decrypt",
	Short: "Decrypt and decode a ciphertext",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := viper.BindPFlags(cmd.Flags()); err != nil {
			return err
		}
		priv, err := keyfile.LoadPrivateKey(viper.GetString("private"))
		if err != nil {
			log.Crit("Failed to read private key", "err", err)
			return err
		}
		ctx, err := keyfile.BuildContext(priv.PublicKey, priv, viper.GetBool("signed"), viper.GetInt("precision"), viper.GetInt("base"))
		if err != nil {
			log.Crit("Failed to build context", "err", err)
			return err
		}

		value, exponent, safe, err := keyfile.LoadCiphertext(viper.GetString("in"))
		if err != nil {
			log.Crit("Failed to read ciphertext", "err", err)
			return err
		}

		encrypted := &number.EncryptedNumber{Ctx: ctx, Ciphertext: value, Exponent: exponent, Safe: safe}
		decoded, err := encrypted.Decrypt()
		if err != nil {
			log.Crit("Failed to decrypt", "err", err)
			return err
		}
		got, err := decoded.DecodeInt64()
		if err != nil {
			log.Crit("Failed to decode", "err", err)
			return err
		}
		log.Info("Decrypted value", "value", got)
		return nil
	},
}

func init() {
	Cmd.Flags().String("private", "private.json", "private key file")
	Cmd.Flags().String("in", "ciphertext.json", "ciphertext file to decrypt")
	Cmd.Flags().Bool("signed", true, "whether the encoding is signed")
	Cmd.Flags().Int("precision", 2048, "encoding precision in bits")
	Cmd.Flags().Int("base", 16, "encoding base")
}
