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

// Package encoding implements the fixed-point encoding scheme that maps
// integer, long, double and arbitrary-precision decimal scalars into the
// Paillier plaintext ring together with an exponent, so that addition and
// multiplication of encoded numbers behave like fixed-point arithmetic.
//
// A Scheme dispatches between two modes purely through its Base field:
// base 2 ("standard" encoding) treats the exponent as a binary exponent and
// preserves a double's IEEE-754 significand bits exactly when precision
// allows; any other base ("fixed-point" encoding) treats the exponent as a
// base-exponent and bounds quantisation error to base^scale.
package encoding

import (
	"math"
	"math/big"

	"github.com/paillierfx/go-paillierfx/crypto/paillier"
)

var (
	big0 = big.NewInt(0)
	big1 = big.NewInt(1)
)

// Scheme derives the encoding bounds for a public key and a chosen
// signedness, precision and base. Precision counts bits whatever the base:
// a partial-precision scheme bounds its encoded values by 2^Precision.
type Scheme struct {
	PublicKey *paillier.PublicKey
	Signed    bool
	Precision int
	Base      int

	MaxEncoded     *big.Int
	MinEncoded     *big.Int
	MaxSignificand *big.Int
	MinSignificand *big.Int
	fullPrecision  bool
}

// NewScheme builds a Scheme for the given public key. precision must be in
// [1, bitLength(N)], and at least 2 when signed; base must be >= 2.
func NewScheme(pub *paillier.PublicKey, signed bool, precision, base int) (*Scheme, error) {
	if base < 2 {
		return nil, ErrInvalidArgument
	}
	bitLen := pub.N.BitLen()
	if precision < 1 || precision > bitLen {
		return nil, ErrInvalidArgument
	}
	if signed && precision < 2 {
		return nil, ErrInvalidArgument
	}

	s := &Scheme{
		PublicKey:     pub,
		Signed:        signed,
		Precision:     precision,
		Base:          base,
		fullPrecision: precision == bitLen,
	}

	var maxEnc, minEnc *big.Int
	if s.fullPrecision {
		if signed {
			maxEnc = new(big.Int).Rsh(pub.N, 1) // floor(N/2)
			minEnc = new(big.Int).Sub(pub.N, maxEnc)
		} else {
			maxEnc = new(big.Int).Sub(pub.N, big1)
			minEnc = big.NewInt(0)
		}
	} else {
		basePrecision := new(big.Int).Lsh(big1, uint(precision))
		if signed {
			maxEnc = new(big.Int).Rsh(basePrecision, 1)
			maxEnc.Sub(maxEnc, big1)
			minEnc = new(big.Int).Sub(pub.N, maxEnc)
		} else {
			maxEnc = new(big.Int).Sub(basePrecision, big1)
			minEnc = big.NewInt(0)
		}
	}
	s.MaxEncoded = maxEnc
	s.MinEncoded = minEnc
	s.MaxSignificand = new(big.Int).Set(maxEnc)
	if signed {
		s.MinSignificand = new(big.Int).Neg(maxEnc)
	} else {
		s.MinSignificand = big.NewInt(0)
	}
	return s, nil
}

// IsValid reports whether significand lies in [MinSignificand, MaxSignificand].
func (s *Scheme) IsValid(significand *big.Int) bool {
	return significand.Cmp(s.MinSignificand) >= 0 && significand.Cmp(s.MaxSignificand) <= 0
}

// Equal reports whether two schemes agree on public key, signedness,
// precision and base — the compatibility test context.Context relies on.
func (s *Scheme) Equal(other *Scheme) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.PublicKey.Equal(other.PublicKey) &&
		s.Signed == other.Signed &&
		s.Precision == other.Precision &&
		s.Base == other.Base
}

func (s *Scheme) basePow(e int) *big.Int {
	if e < 0 {
		e = -e
	}
	return new(big.Int).Exp(big.NewInt(int64(s.Base)), big.NewInt(int64(e)), nil)
}

// significandOf decodes value into its signed significand per spec.md §4.D:
// value itself if it's within [0, maxEncoded], value-N if signed and within
// [minEncoded, N), otherwise the overflow sentinel region.
func (s *Scheme) significandOf(value *big.Int) (*big.Int, error) {
	if value.Cmp(s.MaxEncoded) <= 0 {
		return new(big.Int).Set(value), nil
	}
	if s.Signed && value.Cmp(s.MinEncoded) >= 0 {
		return new(big.Int).Sub(value, s.PublicKey.N), nil
	}
	return nil, ErrDecode
}

// storedValueOf reduces a (possibly negative) significand into [0, N).
func (s *Scheme) storedValueOf(significand *big.Int) *big.Int {
	return new(big.Int).Mod(significand, s.PublicKey.N)
}

// EncodeBigInt encodes an arbitrary-precision integer, choosing the largest
// exponent e >= 0 such that base^e divides x exactly (stripping trailing
// zero digits in base), to maximise headroom for later homomorphic ops.
func (s *Scheme) EncodeBigInt(x *big.Int) (value *big.Int, exponent int, err error) {
	if !s.Signed && x.Sign() < 0 {
		return nil, 0, ErrEncode
	}
	t := new(big.Int).Set(x)
	baseBig := big.NewInt(int64(s.Base))
	e := 0
	if t.Sign() != 0 {
		q, r := new(big.Int), new(big.Int)
		for {
			q.QuoRem(t, baseBig, r)
			if r.Sign() != 0 {
				break
			}
			t.Set(q)
			e++
		}
	}
	if !s.IsValid(t) {
		return nil, 0, ErrEncode
	}
	return s.storedValueOf(t), e, nil
}

// EncodeInt64 encodes a native signed integer the same way as EncodeBigInt.
func (s *Scheme) EncodeInt64(x int64) (value *big.Int, exponent int, err error) {
	return s.EncodeBigInt(big.NewInt(x))
}

// EncodeAt encodes the rational x at a caller-chosen exponent e, rounding
// the significand half-away-from-zero. This is the path used when a value
// must be represented at a specific exponent, e.g. a divisor's reciprocal
// during DivideByScalar.
func (s *Scheme) EncodeAt(x *big.Rat, e int) (value *big.Int, err error) {
	scale := s.basePow(e)
	var divided *big.Rat
	if e >= 0 {
		divided = new(big.Rat).Quo(x, new(big.Rat).SetInt(scale))
	} else {
		divided = new(big.Rat).Mul(x, new(big.Rat).SetInt(scale))
	}
	significand := roundRatHalfAwayFromZero(divided)
	if !s.Signed && significand.Sign() < 0 {
		return nil, ErrEncode
	}
	if !s.IsValid(significand) {
		return nil, ErrEncode
	}
	return s.storedValueOf(significand), nil
}

// EncodeFloat64 encodes x, choosing an exponent that preserves its
// significand exactly when base == 2 (IEEE-754 binary exponent), or that
// rounds to the finest scale the scheme's precision can hold otherwise.
func (s *Scheme) EncodeFloat64(x float64) (value *big.Int, exponent int, err error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return nil, 0, ErrEncode
	}
	if x == 0 {
		v, e, err := s.EncodeBigInt(big0)
		return v, e, err
	}
	rat := new(big.Rat).SetFloat64(x)
	if rat == nil {
		return nil, 0, ErrEncode
	}

	e := s.exponentForFloat(x)
	v, err := s.EncodeAt(rat, e)
	if err != nil {
		return nil, 0, err
	}
	// Strip trailing zero digits to maximise headroom, same policy as
	// integer encoding, now that the significand is an exact integer.
	significand, decErr := s.significandOf(v)
	if decErr != nil {
		return v, e, nil
	}
	baseBig := big.NewInt(int64(s.Base))
	q, r := new(big.Int), new(big.Int)
	for significand.Sign() != 0 {
		q.QuoRem(significand, baseBig, r)
		if r.Sign() != 0 {
			break
		}
		significand.Set(q)
		e++
	}
	return s.storedValueOf(significand), e, nil
}

// exponentForFloat picks the scheme's preferred exponent for a nonzero x:
// for base 2, the exact binary exponent implied by the float's mantissa;
// for any other base, the finest scale whose significand still fits
// maxSignificand.
func (s *Scheme) exponentForFloat(x float64) int {
	if s.Base == 2 {
		_, exp := math.Frexp(x) // x = frac * 2^exp, 0.5 <= |frac| < 1
		return exp - 53
	}
	// log2(maxSignificand) from its mantissa and binary exponent, which stays
	// finite even when maxSignificand is beyond float64 range.
	mant := new(big.Float)
	maxExp := new(big.Float).SetInt(s.MaxSignificand).MantExp(mant)
	m, _ := mant.Float64()
	log2Max := math.Log2(m) + float64(maxExp)
	log2X := math.Log2(math.Abs(x))
	return int(math.Ceil((log2X - log2Max) / math.Log2(float64(s.Base))))
}

// DecodeBigInt returns the exact value significand*base^exponent. It fails
// with ErrArithmeticOverflow if exponent < 0 and the division isn't exact.
func (s *Scheme) DecodeBigInt(value *big.Int, exponent int) (*big.Int, error) {
	significand, err := s.significandOf(value)
	if err != nil {
		return nil, err
	}
	if exponent >= 0 {
		return new(big.Int).Mul(significand, s.basePow(exponent)), nil
	}
	scale := s.basePow(exponent)
	q, r := new(big.Int), new(big.Int)
	q.QuoRem(significand, scale, r)
	if r.Sign() != 0 {
		return nil, ErrArithmeticOverflow
	}
	return q, nil
}

// DecodeInt64 is DecodeBigInt narrowed to int64, failing with
// ErrArithmeticOverflow if the exact value doesn't fit.
func (s *Scheme) DecodeInt64(value *big.Int, exponent int) (int64, error) {
	v, err := s.DecodeBigInt(value, exponent)
	if err != nil {
		return 0, err
	}
	if !v.IsInt64() {
		return 0, ErrArithmeticOverflow
	}
	return v.Int64(), nil
}

// DecodeFloat64 returns significand*base^exponent as a float64.
func (s *Scheme) DecodeFloat64(value *big.Int, exponent int) (float64, error) {
	significand, err := s.significandOf(value)
	if err != nil {
		return 0, err
	}
	rat := new(big.Rat).SetInt(significand)
	scale := s.basePow(exponent)
	if exponent >= 0 {
		rat.Mul(rat, new(big.Rat).SetInt(scale))
	} else {
		rat.Quo(rat, new(big.Rat).SetInt(scale))
	}
	f, _ := rat.Float64()
	return f, nil
}

func roundRatHalfAwayFromZero(r *big.Rat) *big.Int {
	num := new(big.Int).Set(r.Num())
	den := r.Denom()
	neg := num.Sign() < 0
	if neg {
		num.Neg(num)
	}
	q, rem := new(big.Int), new(big.Int)
	q.QuoRem(num, den, rem)
	doubled := new(big.Int).Lsh(rem, 1)
	if doubled.Cmp(den) >= 0 {
		q.Add(q, big1)
	}
	if neg {
		q.Neg(q)
	}
	return q
}
