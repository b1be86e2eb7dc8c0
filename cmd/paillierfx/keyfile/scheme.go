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
	"github.com/paillierfx/go-paillierfx/context"
	"github.com/paillierfx/go-paillierfx/crypto/paillier"
	"github.com/paillierfx/go-paillierfx/encoding"
)

// BuildContext is the one place every subcommand turns its --precision/
// --base/--signed flags plus a loaded key pair into a *context.Context.
// priv may be nil for an encrypt-only context.
func BuildContext(pub *paillier.PublicKey, priv *paillier.PrivateKey, signed bool, precision, base int) (*context.Context, error) {
	scheme, err := encoding.NewScheme(pub, signed, precision, base)
	if err != nil {
		return nil, err
	}
	return context.NewContext(pub, priv, scheme)
}
