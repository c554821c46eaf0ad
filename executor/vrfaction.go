// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"bytes"
	"encoding/hex"

	"github.com/33cn/vrfgame/common/vrf"
	vty "github.com/33cn/vrfgame/types"
)

//占位校验键，协议不对 proof 做密码学校验，见 common/vrf.Verify
var placeholderVerifyKey = bytes.Repeat([]byte{1}, vty.VerifyKeySize)

//vrfInitialize 初始化 vrf 记录，Records: [vrf]
func (a *action) vrfInitialize() (*vty.Receipt, error) {
	addr := a.call.Records[0]
	old, err := a.loadVrf(addr)
	if err != nil {
		return nil, err
	}
	if old != nil && old.IsInitialized {
		return nil, vty.ErrRecordInitialized
	}
	state := &vty.VrfState{
		Authority:     a.fromaddr,
		IsInitialized: true,
	}
	copy(state.VerifyKey[:], placeholderVerifyKey)

	elog.Info("vrf record initialized", "addr", addr.String(), "authority", a.fromaddr.String())
	return &vty.Receipt{
		Ty:   vty.ExecOk,
		KV:   []*vty.KeyValue{vrfKV(addr, state)},
		Logs: []*vty.ReceiptLog{vrfLog(vty.TyLogVrfInitialize, addr, state, "initialize")},
	}, nil
}

//vrfCommit 提交 seed，Records: [vrf, game]。
//重复 commit 允许：丢弃上一轮的 randomness/proof，同一对记录开新一轮。
//game 记录的瞬态字段必须在同一张收据里复位，避免新承诺配旧结果的窗口
func (a *action) vrfCommit(commit *vty.VrfCommit) (*vty.Receipt, error) {
	if commit == nil {
		return nil, vty.ErrMalformedAction
	}
	if len(commit.Seed) > vty.MaxSeedSize {
		return nil, vty.ErrSeedTooLong
	}
	vrfAddr, gameAddr := a.call.Records[0], a.call.Records[1]

	state, err := a.loadVrf(vrfAddr)
	if err != nil {
		return nil, err
	}
	if state == nil {
		return nil, vty.ErrDecodeRecord
	}
	if state.Authority != a.fromaddr {
		return nil, vty.ErrInvalidAuthority
	}

	game, err := a.loadGame(gameAddr)
	if err != nil {
		return nil, err
	}
	prevStatus := vty.GameStatusAwaitingRandomness
	if game == nil {
		//game 记录还是空存储时就地建好，authority 跟随发起者
		game = &vty.GameState{
			Authority:     a.fromaddr,
			IsInitialized: true,
		}
	} else {
		prevStatus = game.Status
	}

	state.Seed = make([]byte, len(commit.Seed))
	copy(state.Seed, commit.Seed)
	state.Randomness = nil
	state.Proof = nil

	game.Randomness = nil
	game.PlayerGuess = nil
	game.Result = nil
	game.Status = vty.GameStatusAwaitingRandomness

	elog.Info("randomness requested", "addr", vrfAddr.String(), "seedLen", len(commit.Seed))
	return &vty.Receipt{
		Ty: vty.ExecOk,
		KV: []*vty.KeyValue{vrfKV(vrfAddr, state), gameKV(gameAddr, game)},
		Logs: []*vty.ReceiptLog{
			vrfLog(vty.TyLogVrfCommit, vrfAddr, state, "commit"),
			gameLog(vty.TyLogGameReset, gameAddr, prevStatus, game),
		},
	}, nil
}

//vrfReveal 揭示 proof 并派生随机数，Records: [vrf, game]。
//randomness 同时写进两条记录，game 状态推进到等待猜数
func (a *action) vrfReveal(reveal *vty.VrfReveal) (*vty.Receipt, error) {
	if reveal == nil || len(reveal.Proof) != vty.ProofSize {
		return nil, vty.ErrMalformedAction
	}
	vrfAddr, gameAddr := a.call.Records[0], a.call.Records[1]

	state, err := a.loadVrf(vrfAddr)
	if err != nil {
		return nil, err
	}
	if state == nil {
		return nil, vty.ErrDecodeRecord
	}
	if state.Authority != a.fromaddr {
		return nil, vty.ErrInvalidAuthority
	}
	if state.Seed == nil {
		return nil, vty.ErrSeedNotCommitted
	}
	if !vrf.Verify(reveal.Proof, state.VerifyKey[:], state.Seed) {
		return nil, vty.ErrInvalidProof
	}

	game, err := a.loadGame(gameAddr)
	if err != nil {
		return nil, err
	}
	if game == nil {
		return nil, vty.ErrDecodeRecord
	}

	randomness := vrf.DeriveRandomness(reveal.Proof, state.Seed)
	state.Proof = append([]byte(nil), reveal.Proof...)
	state.Randomness = randomness[:]

	prevStatus := game.Status
	game.Randomness = randomness[:]
	//等待猜数阶段不允许残留上一轮的猜数与结果
	game.PlayerGuess = nil
	game.Result = nil
	game.Status = vty.GameStatusAwaitingGuess

	elog.Info("randomness fulfilled", "addr", vrfAddr.String(),
		"randomness", hex.EncodeToString(state.Randomness))
	return &vty.Receipt{
		Ty: vty.ExecOk,
		KV: []*vty.KeyValue{vrfKV(vrfAddr, state), gameKV(gameAddr, game)},
		Logs: []*vty.ReceiptLog{
			vrfLog(vty.TyLogVrfReveal, vrfAddr, state, "reveal"),
			gameLog(vty.TyLogGameRandom, gameAddr, prevStatus, game),
		},
	}, nil
}
