// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"encoding/hex"

	"github.com/33cn/vrfgame/common/address"
	"github.com/33cn/vrfgame/runtime"
	vty "github.com/33cn/vrfgame/types"
)

//action 单次操作的执行上下文，调用结束即丢弃
type action struct {
	env      *runtime.Env
	fromaddr address.Address
	call     *runtime.Call
}

func newAction(env *runtime.Env, call *runtime.Call) *action {
	return &action{env: env, fromaddr: call.From, call: call}
}

//loadVrf 读 vrf 记录，存储为空返回 (nil, nil) 表示记录缺席
func (a *action) loadVrf(addr address.Address) (*vty.VrfState, error) {
	data := a.env.Data(addr)
	if len(data) == 0 {
		return nil, nil
	}
	return vty.DecodeVrfState(data)
}

//loadGame 读 game 记录，存储为空返回 (nil, nil)
func (a *action) loadGame(addr address.Address) (*vty.GameState, error) {
	data := a.env.Data(addr)
	if len(data) == 0 {
		return nil, nil
	}
	return vty.DecodeGameState(data)
}

func vrfKV(addr address.Address, v *vty.VrfState) *vty.KeyValue {
	return &vty.KeyValue{Key: runtime.DataKey(addr), Value: vty.EncodeVrfState(v)}
}

func gameKV(addr address.Address, g *vty.GameState) *vty.KeyValue {
	return &vty.KeyValue{Key: runtime.DataKey(addr), Value: vty.EncodeGameState(g)}
}

func vrfLog(ty int64, addr address.Address, v *vty.VrfState, name string) *vty.ReceiptLog {
	r := &vty.ReceiptVrf{
		Addr:      addr.String(),
		Authority: v.Authority.String(),
		Action:    name,
		SeedLen:   len(v.Seed),
	}
	if v.Randomness != nil {
		r.Randomness = hex.EncodeToString(v.Randomness)
	}
	return &vty.ReceiptLog{Ty: ty, Log: vty.EncodeLog(r)}
}

func gameLog(ty int64, addr address.Address, prev int32, g *vty.GameState) *vty.ReceiptLog {
	r := &vty.ReceiptGame{
		Addr:       addr.String(),
		Authority:  g.Authority.String(),
		PrevStatus: prev,
		Status:     g.Status,
	}
	if g.PlayerGuess != nil {
		r.Guess = int32(*g.PlayerGuess)
	}
	if g.Result != nil {
		r.Result = vty.ResultName(*g.Result)
	}
	return &vty.ReceiptLog{Ty: ty, Log: vty.EncodeLog(r)}
}
