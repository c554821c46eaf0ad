// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//Package vrf 承诺-揭示式随机数派生
//
//DeriveRandomness 是纯函数：同样的 (proof, seed) 在任何进程里都派生出
//同样的 32 字节随机数，第三方拿到 (seed, proof) 即可独立重算并核对。
package vrf

import "golang.org/x/crypto/sha3"

//RandomnessSize 派生随机数长度
const RandomnessSize = 32

//GameNumberRange 游戏目标数取值范围 [0, 100)
const GameNumberRange = 100

//DeriveRandomness 随机数派生：SHA3-256(proof || seed)
func DeriveRandomness(proof []byte, seed []byte) [RandomnessSize]byte {
	h := sha3.New256()
	h.Write(proof)
	h.Write(seed)
	var out [RandomnessSize]byte
	copy(out[:], h.Sum(nil))
	return out
}

//GameNumber 从随机数取游戏目标数：首字节对 100 取模。
//256 mod 100 != 0，0~55 比 56~99 多出现一轮，偏差可忽略，
//选这个映射只是为了人可猜的十进制区间。
func GameNumber(randomness []byte) uint8 {
	return randomness[0] % GameNumberRange
}

//VerifyFunc proof 校验函数签名
type VerifyFunc func(proof []byte, verifyKey []byte, seed []byte) bool

//Verify 可插拔的 proof 校验。
//默认实现接受任何 proof：当前协议只复刻 commit-reveal-derive 的形状，
//真正的可验证性要换成真实的 VRF 校验才成立。
var Verify VerifyFunc = func(proof []byte, verifyKey []byte, seed []byte) bool {
	return true
}
