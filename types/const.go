// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

//VrfGameX 执行器名称
const VrfGameX = "vrfgame"

//wire 层的域标识，指令第一个字节
const (
	GameDomain = byte(0)
	VrfDomain  = byte(1)
)

//vrf action ty
const (
	VrfActionInitialize = int32(iota)
	VrfActionCommit
	VrfActionReveal
)

//game action ty
const (
	GameActionInitialize = int32(iota)
	GameActionGuess
)

//game status
// AwaitingRandomness -> AwaitingGuess -> Complete 单向推进
const (
	GameStatusAwaitingRandomness = int32(iota)
	GameStatusAwaitingGuess
	GameStatusComplete
)

//game result
const (
	GameResultWin = int32(iota)
	GameResultLose
)

//固定字段长度
const (
	AddressSize    = 32
	RandomnessSize = 32
	ProofSize      = 64
	VerifyKeySize  = 32

	//MaxSeedSize seed 上限，记录分配时按该上限预留空间
	MaxSeedSize = 256
)

//VrfStateMaxSize vrf 记录编码的最大长度，外部分配原语按此值开辟存储
const VrfStateMaxSize = AddressSize + 1 +
	1 + 4 + MaxSeedSize +
	1 + RandomnessSize +
	1 + ProofSize +
	VerifyKeySize

//GameStateMaxSize game 记录编码的最大长度
const GameStateMaxSize = AddressSize + 1 +
	1 + RandomnessSize +
	1 +
	1 + 1 +
	1 + 1

//receipt log ty
const (
	TyLogVrfInitialize = int64(iota + 901)
	TyLogVrfCommit
	TyLogVrfReveal
	TyLogGameInitialize
	TyLogGameGuess
	TyLogGameReset
	TyLogGameRandom
)

//执行结果，参照 chain33 receipt 语义
const (
	ExecErr = int32(0)
	ExecOk  = int32(2)
)
