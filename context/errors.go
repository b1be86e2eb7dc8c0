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

package context

import "errors"

var (
	// ErrInvalidArgument is returned by NewContext given mismatched keys
	// or scheme.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrContextMismatch is returned by any binary operation whose
	// operands come from incompatible contexts.
	ErrContextMismatch = errors.New("context mismatch")
	// ErrNoPrivateKey is returned by Decrypt on a context built without
	// one, i.e. an encrypt-only context handed to an untrusted party.
	ErrNoPrivateKey = errors.New("context has no private key")
)
