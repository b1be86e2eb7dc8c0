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

package paillier

import "errors"

var (
	// ErrInvalidArgument is returned by constructors and utilities given an
	// out-of-domain argument.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidMessage is returned when a plaintext or ciphertext is
	// outside its required range.
	ErrInvalidMessage = errors.New("invalid message")
	// ErrExceedMaxRetry is returned if key generation retried too many times.
	ErrExceedMaxRetry = errors.New("exceed max retries")
	// ErrSmallKeySize is returned if the requested key size is unsafe.
	ErrSmallKeySize = errors.New("small key size")
)
