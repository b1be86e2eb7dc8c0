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

package encrypt

import (
	"github.com/getamis/sirius/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/paillierfx/go-paillierfx/cmd/paillierfx/keyfile"
	"github.com/paillierfx/go-paillierfx/number"
)

// Cmd encodes a native integer under a scheme and encrypts it, writing the
// resulting ciphertext and exponent to disk.
var Cmd = &cobra.Command{
	Use:   "encrypt",
	Short: "Encode and encrypt an integer under a public key",
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
		encoded, err := number.NewEncodedInt64(ctx, viper.GetInt64("value"))
		if err != nil {
			log.Crit("Failed to encode value", "err", err)
			return err
		}
		encrypted, err := encoded.Encrypt()
		if err != nil {
			log.Crit("Failed to encrypt value", "err", err)
			return err
		}
		out := viper.GetString("out")
		if err := keyfile.SaveCiphertext(out, encrypted.Ciphertext, encrypted.Exponent, encrypted.Safe); err != nil {
			log.Crit("Failed to write ciphertext", "path", out, "err", err)
			return err
		}
		log.Info("Encrypted value", "out", out)
		return nil
	},
}

func init() {
	Cmd.Flags().String("public", "public.json", "public key file")
	Cmd.Flags().Int64("value", 0, "integer value to encrypt")
	Cmd.Flags().Bool("signed", true, "whether the encoding is signed")
	Cmd.Flags().Int("precision", 2048, "encoding precision in bits")
	Cmd.Flags().Int("base", 16, "encoding base")
	Cmd.Flags().String("out", "ciphertext.json", "output path for the ciphertext")
}
