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

package encode

import (
	"github.com/getamis/sirius/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/paillierfx/go-paillierfx/cmd/paillierfx/keyfile"
	"github.com/paillierfx/go-paillierfx/number"
)

// Cmd encodes a native double into the ring without encrypting it, for
// inspecting the (value, exponent) pair a scheme produces.
var Cmd = &cobra.Command{
	Use:   "encode",
	Short: "Encode a double into (value, exponent), without encrypting",
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
		encoded, err := number.NewEncodedFloat64(ctx, viper.GetFloat64("value"))
		if err != nil {
			log.Crit("Failed to encode value", "err", err)
			return err
		}
		out := viper.GetString("out")
		if err := keyfile.SaveCiphertext(out, encoded.Value, encoded.Exponent, false); err != nil {
			log.Crit("Failed to write encoded value", "path", out, "err", err)
			return err
		}
		log.Info("Encoded value", "value", encoded.Value, "exponent", encoded.Exponent, "out", out)
		return nil
	},
}

func init() {
	Cmd.Flags().String("public", "public.json", "public key file")
	Cmd.Flags().Float64("value", 0, "double value to encode")
	Cmd.Flags().Bool("signed", true, "whether the encoding is signed")
	Cmd.Flags().Int("precision", 2048, "encoding precision in bits")
	Cmd.Flags().Int("base", 16, "encoding base")
	Cmd.Flags().String("out", "encoded.json", "output path for the encoded value")
}
