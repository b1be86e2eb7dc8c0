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

package decode

import (
	"github.com/getamis/sirius/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/paillierfx/go-paillierfx/cmd/paillierfx/keyfile"
	"github.com/paillierfx/go-paillierfx/number"
)

// Cmd decodes a previously-encoded (value, exponent) file back to a
// native double.
var Cmd = &cobra.Command{
	Use:   "decode",
	Short: "Decode an encoded (value, exponent) file to a double",
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
		value, exponent, _, err := keyfile.LoadCiphertext(viper.GetString("in"))
		if err != nil {
			log.Crit("Failed to read encoded value", "err", err)
			return err
		}
		encoded := &number.EncodedNumber{Ctx: ctx, Value: value, Exponent: exponent}
		got, err := encoded.DecodeFloat64()
		if err != nil {
			log.Crit("Failed to decode", "err", err)
			return err
		}
		log.Info("Decoded value", "value", got)
		return nil
	},
}

func init() {
	Cmd.Flags().String("public", "public.json", "public key file")
	Cmd.Flags().String("in", "encoded.json", "encoded value file to decode")
	Cmd.Flags().Bool("signed", true, "whether the encoding is signed")
	Cmd.Flags().Int("precision", 2048, "encoding precision in bits")
	Cmd.Flags().Int("base", 16, "encoding base")
}
