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

// Package utils provides the big-integer primitives the rest of the module
// is built on: uniform sampling, modular exponentiation (including negative
// exponents), integer square roots and range checks.
package utils

import (
	"crypto/rand"
	"errors"
	"math/big"
)

var (
	// ErrInvalidArgument is returned when an argument is outside the domain
	// the function is defined on (e.g. sampling from an empty range).
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotInRange is returned if the value is not in the given range.
	ErrNotInRange = errors.New("not in range")
	// ErrExceedMaxRetry is returned if we retried over times
	ErrExceedMaxRetry = errors.New("exceed max retries")

	// maxGenPrimeInt defines the max retries for rejection sampling helpers
	maxGenPrimeInt = 100

	big1 = big.NewInt(1)
)

// RandomInt generates a random number in [0, n).
func RandomInt(n *big.Int) (*big.Int, error) {
	if n.Sign() <= 0 {
		return nil, ErrInvalidArgument
	}
	return rand.Int(rand.Reader, n)
}

// RandomPositiveInt samples uniformly from [1, n). It draws a bit-string of
// exactly bitLen(n) bits and retries on 0 or values >= n, rather than
// reducing a larger sample mod n, so the distribution stays uniform over
// the whole range instead of biased towards the low end.
func RandomPositiveInt(n *big.Int) (*big.Int, error) {
	if n.Cmp(big1) <= 0 {
		return nil, ErrInvalidArgument
	}
	bitLen := uint(n.BitLen())
	for {
		r, err := rand.Int(rand.Reader, new(big.Int).Lsh(big1, bitLen))
		if err != nil {
			return nil, err
		}
		if r.Sign() == 0 || r.Cmp(n) >= 0 {
			continue
		}
		return r, nil
	}
}

// RandomPrime generates a random prime number with the given bit size.
func RandomPrime(bits int) (*big.Int, error) {
	return rand.Prime(rand.Reader, bits)
}

// RandomCoprimeInt generates a random number in [1, n) that is relatively
// prime to n.
func RandomCoprimeInt(n *big.Int) (*big.Int, error) {
	for i := 0; i < maxGenPrimeInt; i++ {
		r, err := RandomPositiveInt(n)
		if err != nil {
			return nil, err
		}
		if IsRelativePrime(r, n) {
			return r, nil
		}
	}
	return nil, ErrExceedMaxRetry
}

// IsRelativePrime returns whether a and b are relatively prime.
func IsRelativePrime(a, b *big.Int) bool {
	return Gcd(a, b).Cmp(big1) == 0
}

// Gcd calculates the greatest common divisor via the Euclidean algorithm.
func Gcd(a, b *big.Int) *big.Int {
	return new(big.Int).GCD(nil, nil, a, b)
}

// InRange checks that checkValue lies in [floor, ceil).
func InRange(checkValue, floor, ceil *big.Int) error {
	if ceil.Cmp(floor) < 1 {
		return ErrInvalidArgument
	}
	if checkValue.Cmp(floor) < 0 || checkValue.Cmp(ceil) >= 0 {
		return ErrNotInRange
	}
	return nil
}

// Sqrt returns floor(sqrt(n)) for n >= 0, via Newton's method starting from
// 2^ceil(bitLen(n)/2) and iterating until x*x <= n < (x+1)*(x+1).
func Sqrt(n *big.Int) (*big.Int, error) {
	if n.Sign() < 0 {
		return nil, ErrInvalidArgument
	}
	if n.Sign() == 0 {
		return big.NewInt(0), nil
	}
	shift := uint((n.BitLen() + 1) / 2)
	x := new(big.Int).Lsh(big1, shift)
	for {
		// x' = (x + n/x) / 2
		next := new(big.Int).Div(n, x)
		next.Add(next, x)
		next.Rsh(next, 1)
		if next.Cmp(x) >= 0 {
			break
		}
		x = next
	}
	for {
		square := new(big.Int).Mul(x, x)
		if square.Cmp(n) <= 0 {
			break
		}
		x.Sub(x, big1)
	}
	return x, nil
}

// ModPow computes b^e mod m. Unlike big.Int.Exp, it accepts negative e by
// first inverting b modulo m and exponentiating by |e|.
func ModPow(b, e, m *big.Int) (*big.Int, error) {
	if m.Sign() <= 0 {
		return nil, ErrInvalidArgument
	}
	if e.Sign() >= 0 {
		return new(big.Int).Exp(b, e, m), nil
	}
	inv := new(big.Int).ModInverse(b, m)
	if inv == nil {
		return nil, ErrInvalidArgument
	}
	absE := new(big.Int).Neg(e)
	return new(big.Int).Exp(inv, absE, m), nil
}
