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

import (
	"math/big"

	"github.com/paillierfx/go-paillierfx/crypto/utils"
)

const (
	// maxGenN defines the max retries to generate N
	maxGenN = 100
)

var (
	big0 = big.NewInt(0)
	big1 = big.NewInt(1)
)

// PrivateKey holds (p, q) and the CRT terms derived from them, alongside the
// associated public key. Its exported surface exposes p and q only through
// MarshalJSON, which writes them so a key file can be reloaded.
type PrivateKey struct {
	*PublicKey

	p *big.Int
	q *big.Int

	pSquare  *big.Int
	qSquare  *big.Int
	hp       *big.Int
	hq       *big.Int
	qInvModP *big.Int
}

// GenerateKeyPair generates a new Paillier key pair with a modulus of the
// given bit length. bits must be at least MinKeyBits.
func GenerateKeyPair(bits int) (*PrivateKey, error) {
	if bits < MinKeyBits {
		return nil, ErrSmallKeySize
	}
	pqBits := bits / 2
	for i := 0; i < maxGenN; i++ {
		p, err := utils.RandomPrime(pqBits)
		if err != nil {
			return nil, err
		}
		q, err := utils.RandomPrime(pqBits)
		if err != nil {
			return nil, err
		}
		if p.Cmp(q) == 0 {
			continue
		}
		n := new(big.Int).Mul(p, q)
		if n.BitLen() != bits {
			continue
		}
		return newPrivateKey(p, q, n)
	}
	return nil, ErrExceedMaxRetry
}

func newPrivateKey(p, q, n *big.Int) (*PrivateKey, error) {
	pub := newPublicKey(n)

	pSquare := new(big.Int).Mul(p, p)
	qSquare := new(big.Int).Mul(q, q)

	// hp = L_p(g^(p-1) mod p^2)^-1 mod p
	gpm1 := new(big.Int).Exp(pub.G, new(big.Int).Sub(p, big1), pSquare)
	lp, err := lFunction(gpm1, p)
	if err != nil {
		return nil, err
	}
	hp := new(big.Int).ModInverse(lp, p)
	if hp == nil {
		return nil, ErrInvalidArgument
	}

	// hq = L_q(g^(q-1) mod q^2)^-1 mod q
	gqm1 := new(big.Int).Exp(pub.G, new(big.Int).Sub(q, big1), qSquare)
	lq, err := lFunction(gqm1, q)
	if err != nil {
		return nil, err
	}
	hq := new(big.Int).ModInverse(lq, q)
	if hq == nil {
		return nil, ErrInvalidArgument
	}

	qInvModP := new(big.Int).ModInverse(q, p)
	if qInvModP == nil {
		return nil, ErrInvalidArgument
	}

	return &PrivateKey{
		PublicKey: pub,
		p:         new(big.Int).Set(p),
		q:         new(big.Int).Set(q),
		pSquare:   pSquare,
		qSquare:   qSquare,
		hp:        hp,
		hq:        hq,
		qInvModP:  qInvModP,
	}, nil
}

// lFunction computes L(u) = (u-1)/x, exact integer division.
func lFunction(u, x *big.Int) (*big.Int, error) {
	t := new(big.Int).Sub(u, big1)
	q, r := new(big.Int), new(big.Int)
	q.DivMod(t, x, r)
	if r.Sign() != 0 {
		return nil, ErrInvalidArgument
	}
	return q, nil
}

// Equal reports whether two private keys share the same (N, p, q), treating
// p and q as an unordered pair.
func (priv *PrivateKey) Equal(other *PrivateKey) bool {
	if priv == nil || other == nil {
		return priv == other
	}
	if !priv.PublicKey.Equal(other.PublicKey) {
		return false
	}
	same := priv.p.Cmp(other.p) == 0 && priv.q.Cmp(other.q) == 0
	swapped := priv.p.Cmp(other.q) == 0 && priv.q.Cmp(other.p) == 0
	return same || swapped
}

// RawDecrypt recovers m in [0, N) from a ciphertext via CRT recombination:
// reconstructing m mod N from m mod p and m mod q is roughly four times
// faster than a single exponentiation modulo N^2.
func (priv *PrivateKey) RawDecrypt(c *big.Int) (*big.Int, error) {
	if err := utils.InRange(c, big1, priv.NSquare); err != nil {
		return nil, ErrInvalidMessage
	}

	cp := new(big.Int).Exp(c, new(big.Int).Sub(priv.p, big1), priv.pSquare)
	lp, err := lFunction(cp, priv.p)
	if err != nil {
		return nil, err
	}
	mp := new(big.Int).Mul(lp, priv.hp)
	mp.Mod(mp, priv.p)

	cq := new(big.Int).Exp(c, new(big.Int).Sub(priv.q, big1), priv.qSquare)
	lq, err := lFunction(cq, priv.q)
	if err != nil {
		return nil, err
	}
	mq := new(big.Int).Mul(lq, priv.hq)
	mq.Mod(mq, priv.q)

	// CRT recombination (Garner's formula): m = mq + q * (((mp - mq) * qInvModP) mod p),
	// where qInvModP = q^-1 mod p.
	diff := new(big.Int).Sub(mp, mq)
	diff.Mul(diff, priv.qInvModP)
	diff.Mod(diff, priv.p)
	m := new(big.Int).Mul(diff, priv.q)
	m.Add(m, mq)
	return m.Mod(m, priv.N), nil
}

// Copy returns a deep copy of priv.
func (priv *PrivateKey) Copy() *PrivateKey {
	return &PrivateKey{
		PublicKey: priv.PublicKey.Copy(),
		p:         new(big.Int).Set(priv.p),
		q:         new(big.Int).Set(priv.q),
		pSquare:   new(big.Int).Set(priv.pSquare),
		qSquare:   new(big.Int).Set(priv.qSquare),
		hp:        new(big.Int).Set(priv.hp),
		hq:        new(big.Int).Set(priv.hq),
		qInvModP:  new(big.Int).Set(priv.qInvModP),
	}
}
