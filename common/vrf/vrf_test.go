// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vrf

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/sha3"
)

func TestDeriveRandomnessDeterministic(t *testing.T) {
	proof := bytes.Repeat([]byte{0xff}, 64)
	seed := []byte{0x01, 0x02}

	r1 := DeriveRandomness(proof, seed)
	r2 := DeriveRandomness(proof, seed)
	require.Equal(t, r1, r2)

	//独立重算：第三方拿 (seed, proof) 必须能核对出同一个值
	h := sha3.New256()
	h.Write(proof)
	h.Write(seed)
	require.Equal(t, h.Sum(nil), r1[:])
}

func TestDeriveRandomnessInputSensitivity(t *testing.T) {
	proof := bytes.Repeat([]byte{0xff}, 64)
	seed := []byte{0x01, 0x02}
	base := DeriveRandomness(proof, seed)

	flipped := append([]byte(nil), proof...)
	flipped[0] ^= 1
	require.NotEqual(t, base, DeriveRandomness(flipped, seed))

	otherSeed := []byte{0x01, 0x03}
	require.NotEqual(t, base, DeriveRandomness(proof, otherSeed))
}

func TestGameNumberRange(t *testing.T) {
	var randomness [RandomnessSize]byte
	for b := 0; b < 256; b++ {
		randomness[0] = byte(b)
		n := GameNumber(randomness[:])
		require.Less(t, int(n), GameNumberRange)
	}
}

//TestGameNumberBias 首字节对 100 取模不是均匀分布：
//256 = 2*100 + 56，0~55 比 56~99 多出现一次。这是刻意选择的
//人可猜区间映射，不是均匀性保证
func TestGameNumberBias(t *testing.T) {
	var counts [GameNumberRange]int
	var randomness [RandomnessSize]byte
	for b := 0; b < 256; b++ {
		randomness[0] = byte(b)
		counts[GameNumber(randomness[:])]++
	}
	for n, c := range counts {
		if n <= 55 {
			require.Equal(t, 3, c, "number %d", n)
		} else {
			require.Equal(t, 2, c, "number %d", n)
		}
	}
}

func TestVerifyDefaultAcceptsAnything(t *testing.T) {
	//占位校验：协议不做密码学验证，默认全部接受
	require.True(t, Verify(make([]byte, 64), make([]byte, 32), []byte("seed")))
	require.True(t, Verify(nil, nil, nil))
}
