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

package add

import (
	"github.com/getamis/sirius/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/paillierfx/go-paillierfx/cmd/paillierfx/keyfile"
	"github.com/paillierfx/go-paillierfx/number"
)

// Cmd homomorphically adds two ciphertexts without ever decrypting them.
var Cmd = &cobra.Command{
	Use:   "add",
	Short: "Homomorphically add two ciphertexts",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := viper.BindPFlags(cmd.Flags()); err != nil {
			return err
		}
		pub, err := keyfile.LoadPublicKey(viper.GetString("public"))
		if err != nil {
			log.Crit("Failed to read public key", "err", err)
			return err
		}
		ctx, err := keyfile.BuildContext(pub, nil, viper.GetBool("signed"), viper.GetInt("precision"), viper.GetInt("base"))
		if err != nil {
			log.Crit("Failed to build context", "err", err)
			return err
		}

		aValue, aExponent, aSafe, err := keyfile.LoadCiphertext(viper.GetString("a"))
		if err != nil {
			log.Crit("Failed to read first ciphertext", "err", err)
			return err
		}
		bValue, bExponent, bSafe, err := keyfile.LoadCiphertext(viper.GetString("b"))
		if err != nil {
			log.Crit("Failed to read second ciphertext", "err", err)
			return err
		}

		a := &number.EncryptedNumber{Ctx: ctx, Ciphertext: aValue, Exponent: aExponent, Safe: aSafe}
		b := &number.EncryptedNumber{Ctx: ctx, Ciphertext: bValue, Exponent: bExponent, Safe: bSafe}
		sum, err := a.Add(b)
		if err != nil {
			log.Crit("Failed to add ciphertexts", "err", err)
			return err
		}

		out := viper.GetString("out")
		if err := keyfile.SaveCiphertext(out, sum.Ciphertext, sum.Exponent, sum.Safe); err != nil {
			log.Crit("Failed to write ciphertext", "path", out, "err", err)
			return err
		}
		log.Info("Added ciphertexts", "out", out)
		return nil
	},
}

func init() {
	Cmd.Flags().String("public", "public.json", "public key file")
	Cmd.Flags().String("a", "a.json", "first ciphertext file")
	Cmd.Flags().String("b", "b.json", "second ciphertext file")
	Cmd.Flags().Bool("signed", true, "whether the encoding is signed")
	Cmd.Flags().Int("precision", 2048, "encoding precision in bits")
	Cmd.Flags().Int("base", 16, "encoding base")
	Cmd.Flags().String("out", "sum.json", "output path for the sum ciphertext")
}
