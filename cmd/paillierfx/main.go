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

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/paillierfx/go-paillierfx/cmd/paillierfx/add"
	"github.com/paillierfx/go-paillierfx/cmd/paillierfx/decode"
	"github.com/paillierfx/go-paillierfx/cmd/paillierfx/decrypt"
	"github.com/paillierfx/go-paillierfx/cmd/paillierfx/encode"
	"github.com/paillierfx/go-paillierfx/cmd/paillierfx/encrypt"
	"github.com/paillierfx/go-paillierfx/cmd/paillierfx/keygen"
)

var cmd = &cobra.Command{
	Use:   "paillierfx",
	Short: `Paillier fixed-point homomorphic cryptosystem CLI`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := viper.BindPFlags(cmd.Flags()); err != nil {
			return err
		}
		return nil
	},
}

func init() {
	cmd.AddCommand(keygen.Cmd)
	cmd.AddCommand(encrypt.Cmd)
	cmd.AddCommand(add.Cmd)
	cmd.AddCommand(decrypt.Cmd)
	cmd.AddCommand(encode.Cmd)
	cmd.AddCommand(decode.Cmd)
}

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}
