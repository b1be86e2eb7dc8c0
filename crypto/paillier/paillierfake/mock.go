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

package paillierfake

import (
	"math/big"

	"github.com/stretchr/testify/mock"
)

// MockCipher is a testify/mock double for Cipher, for tests that assert on
// call counts and arguments rather than on actual cryptographic behaviour.
type MockCipher struct {
	mock.Mock
}

var _ Cipher = (*MockCipher)(nil)

// RawEncrypt provides a mock function with given fields: m
func (_m *MockCipher) RawEncrypt(m *big.Int) (*big.Int, error) {
	ret := _m.Called(m)

	var r0 *big.Int
	var r1 error
	if rf, ok := ret.Get(0).(func(*big.Int) (*big.Int, error)); ok {
		return rf(m)
	}
	if rf, ok := ret.Get(0).(func(*big.Int) *big.Int); ok {
		r0 = rf(m)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*big.Int)
	}

	if rf, ok := ret.Get(1).(func(*big.Int) error); ok {
		r1 = rf(m)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// RawDecrypt provides a mock function with given fields: c
func (_m *MockCipher) RawDecrypt(c *big.Int) (*big.Int, error) {
	ret := _m.Called(c)

	var r0 *big.Int
	var r1 error
	if rf, ok := ret.Get(0).(func(*big.Int) (*big.Int, error)); ok {
		return rf(c)
	}
	if rf, ok := ret.Get(0).(func(*big.Int) *big.Int); ok {
		r0 = rf(c)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*big.Int)
	}

	if rf, ok := ret.Get(1).(func(*big.Int) error); ok {
		r1 = rf(c)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// RawAdd provides a mock function with given fields: c1, c2
func (_m *MockCipher) RawAdd(c1 *big.Int, c2 *big.Int) (*big.Int, error) {
	ret := _m.Called(c1, c2)

	var r0 *big.Int
	var r1 error
	if rf, ok := ret.Get(0).(func(*big.Int, *big.Int) (*big.Int, error)); ok {
		return rf(c1, c2)
	}
	if rf, ok := ret.Get(0).(func(*big.Int, *big.Int) *big.Int); ok {
		r0 = rf(c1, c2)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*big.Int)
	}

	if rf, ok := ret.Get(1).(func(*big.Int, *big.Int) error); ok {
		r1 = rf(c1, c2)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// RawMultiply provides a mock function with given fields: c, k
func (_m *MockCipher) RawMultiply(c *big.Int, k *big.Int) (*big.Int, error) {
	ret := _m.Called(c, k)

	var r0 *big.Int
	var r1 error
	if rf, ok := ret.Get(0).(func(*big.Int, *big.Int) (*big.Int, error)); ok {
		return rf(c, k)
	}
	if rf, ok := ret.Get(0).(func(*big.Int, *big.Int) *big.Int); ok {
		r0 = rf(c, k)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*big.Int)
	}

	if rf, ok := ret.Get(1).(func(*big.Int, *big.Int) error); ok {
		r1 = rf(c, k)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// RawObfuscate provides a mock function with given fields: c
func (_m *MockCipher) RawObfuscate(c *big.Int) (*big.Int, error) {
	ret := _m.Called(c)

	var r0 *big.Int
	var r1 error
	if rf, ok := ret.Get(0).(func(*big.Int) (*big.Int, error)); ok {
		return rf(c)
	}
	if rf, ok := ret.Get(0).(func(*big.Int) *big.Int); ok {
		r0 = rf(c)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*big.Int)
	}

	if rf, ok := ret.Get(1).(func(*big.Int) error); ok {
		r1 = rf(c)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewMockCipher creates a new instance of MockCipher. It registers a
// testing interface on the mock and a cleanup function that asserts the
// mock's expectations. The first argument is typically a *testing.T value.
func NewMockCipher(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCipher {
	m := &MockCipher{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
