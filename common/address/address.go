// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//Package address 32 字节身份与记录地址
package address

import (
	"errors"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/sha3"
)

//Size 地址长度
const Size = 32

var addrSeed = []byte("vrfgame address seed for exec name")

//ErrAddressFormat 地址串解析失败
var ErrAddressFormat = errors.New("ErrAddressFormat")

//Address 身份或记录的定位符，base58 展示
type Address [Size]byte

func (a Address) String() string {
	return base58.Encode(a[:])
}

//IsZero 全零地址视为未设置
func (a Address) IsZero() bool {
	return a == Address{}
}

//FromString 解析 base58 地址
func FromString(s string) (Address, error) {
	var a Address
	b, err := base58.Decode(s)
	if err != nil || len(b) != Size {
		return a, ErrAddressFormat
	}
	copy(a[:], b)
	return a, nil
}

//FromBytes 从原始字节构造地址
func FromBytes(b []byte) (Address, error) {
	var a Address
	if len(b) != Size {
		return a, ErrAddressFormat
	}
	copy(a[:], b)
	return a, nil
}

//ExecAddress 执行器名派生的程序地址，记录的 owner 统一指向它
func ExecAddress(name string) Address {
	var a Address
	buf := append(append([]byte(nil), addrSeed...), name...)
	sum := sha3.Sum256(buf)
	copy(a[:], sum[:])
	return a
}
