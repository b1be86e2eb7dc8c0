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

package encoding

import "errors"

var (
	// ErrInvalidArgument is returned by NewScheme given an out-of-range
	// precision or base.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrEncode is returned when a value cannot be encoded: it is
	// non-finite, or its significand falls outside [minSignificand,
	// maxSignificand].
	ErrEncode = errors.New("cannot encode value")
	// ErrDecode is returned when a stored value falls in the overflow
	// sentinel region: neither <= maxEncoded nor (signed and >= minEncoded).
	ErrDecode = errors.New("cannot decode value")
	// ErrArithmeticOverflow is returned when a decoded value does not fit
	// the requested native integer type.
	ErrArithmeticOverflow = errors.New("arithmetic overflow")
)
