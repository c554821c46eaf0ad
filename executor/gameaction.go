// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/vrfgame/common/vrf"
	vty "github.com/33cn/vrfgame/types"
)

//gameInitialize 初始化 game 记录，Records: [game]
func (a *action) gameInitialize() (*vty.Receipt, error) {
	addr := a.call.Records[0]
	old, err := a.loadGame(addr)
	if err != nil {
		return nil, err
	}
	if old != nil && old.IsInitialized {
		return nil, vty.ErrRecordInitialized
	}
	state := &vty.GameState{
		Authority:     a.fromaddr,
		IsInitialized: true,
		Status:        vty.GameStatusAwaitingRandomness,
	}

	elog.Info("game record initialized", "addr", addr.String(), "authority", a.fromaddr.String())
	return &vty.Receipt{
		Ty:   vty.ExecOk,
		KV:   []*vty.KeyValue{gameKV(addr, state)},
		Logs: []*vty.ReceiptLog{gameLog(vty.TyLogGameInitialize, addr, state.Status, state)},
	}, nil
}

//gameGuess 提交猜数并结算，Records: [game]。
//猜数取值范围是调用方前置条件：指令结构上接受任意一个字节，
//但只有 [0,100) 内的值可能命中目标
func (a *action) gameGuess(guess *vty.GameGuess) (*vty.Receipt, error) {
	if guess == nil {
		return nil, vty.ErrMalformedAction
	}
	addr := a.call.Records[0]
	game, err := a.loadGame(addr)
	if err != nil {
		return nil, err
	}
	if game == nil {
		return nil, vty.ErrDecodeRecord
	}
	if game.Authority != a.fromaddr {
		return nil, vty.ErrInvalidAuthority
	}
	if game.Status != vty.GameStatusAwaitingGuess {
		return nil, vty.ErrGameStatus
	}
	//状态不变式保证此处随机数必在，防御性检查
	if game.Randomness == nil {
		return nil, vty.ErrRandomnessNotAvailable
	}

	target := vrf.GameNumber(game.Randomness)
	result := vty.GameResultLose
	if guess.Guess == target {
		result = vty.GameResultWin
	}
	prevStatus := game.Status
	playerGuess := guess.Guess
	game.PlayerGuess = &playerGuess
	game.Result = &result
	game.Status = vty.GameStatusComplete

	elog.Info("game complete", "addr", addr.String(),
		"target", target, "guess", guess.Guess, "result", vty.ResultName(result))
	log := &vty.ReceiptLog{
		Ty: vty.TyLogGameGuess,
		Log: vty.EncodeLog(&vty.ReceiptGame{
			Addr:       addr.String(),
			Authority:  game.Authority.String(),
			PrevStatus: prevStatus,
			Status:     game.Status,
			Guess:      int32(guess.Guess),
			Target:     int32(target),
			Result:     vty.ResultName(result),
		}),
	}
	return &vty.Receipt{
		Ty:   vty.ExecOk,
		KV:   []*vty.KeyValue{gameKV(addr, game)},
		Logs: []*vty.ReceiptLog{log},
	}, nil
}
