// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//Package types vrfgame 的记录、指令与收据类型定义
package types

import (
	"bytes"

	"github.com/33cn/vrfgame/common/address"
)

//VrfState 一次承诺会话的记录
//Seed/Randomness/Proof 为 nil 表示字段缺席
//Randomness 和 Proof 要么同时存在要么同时缺席，reveal 时一起写入
type VrfState struct {
	Authority     address.Address
	IsInitialized bool
	Seed          []byte
	Randomness    []byte
	Proof         []byte
	VerifyKey     [VerifyKeySize]byte
}

//GameState 一局游戏的记录
type GameState struct {
	Authority     address.Address
	IsInitialized bool
	Randomness    []byte
	Status        int32
	PlayerGuess   *uint8
	Result        *int32
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	c := make([]byte, len(b))
	copy(c, b)
	return c
}

//Clone 深拷贝，收据生成时避免别名
func (v *VrfState) Clone() *VrfState {
	c := *v
	c.Seed = cloneBytes(v.Seed)
	c.Randomness = cloneBytes(v.Randomness)
	c.Proof = cloneBytes(v.Proof)
	return &c
}

//Clone 深拷贝
func (g *GameState) Clone() *GameState {
	c := *g
	c.Randomness = cloneBytes(g.Randomness)
	if g.PlayerGuess != nil {
		guess := *g.PlayerGuess
		c.PlayerGuess = &guess
	}
	if g.Result != nil {
		result := *g.Result
		c.Result = &result
	}
	return &c
}

//Equal 按值比较两条 vrf 记录
func (v *VrfState) Equal(o *VrfState) bool {
	if v == nil || o == nil {
		return v == o
	}
	return v.Authority == o.Authority &&
		v.IsInitialized == o.IsInitialized &&
		bytes.Equal(v.Seed, o.Seed) &&
		bytes.Equal(v.Randomness, o.Randomness) &&
		bytes.Equal(v.Proof, o.Proof) &&
		v.VerifyKey == o.VerifyKey
}

//Equal 按值比较两条 game 记录
func (g *GameState) Equal(o *GameState) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.Authority != o.Authority || g.IsInitialized != o.IsInitialized ||
		g.Status != o.Status || !bytes.Equal(g.Randomness, o.Randomness) {
		return false
	}
	if (g.PlayerGuess == nil) != (o.PlayerGuess == nil) {
		return false
	}
	if g.PlayerGuess != nil && *g.PlayerGuess != *o.PlayerGuess {
		return false
	}
	if (g.Result == nil) != (o.Result == nil) {
		return false
	}
	if g.Result != nil && *g.Result != *o.Result {
		return false
	}
	return true
}

//StatusName 状态可读名，日志与查询用
func StatusName(status int32) string {
	switch status {
	case GameStatusAwaitingRandomness:
		return "AwaitingRandomness"
	case GameStatusAwaitingGuess:
		return "AwaitingPlayerGuess"
	case GameStatusComplete:
		return "GameComplete"
	}
	return "Unknown"
}

//ResultName 结果可读名
func ResultName(result int32) string {
	switch result {
	case GameResultWin:
		return "Win"
	case GameResultLose:
		return "Lose"
	}
	return "Unknown"
}
