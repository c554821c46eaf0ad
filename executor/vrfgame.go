// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//Package executor vrfgame 执行器：承诺-揭示随机数与猜数游戏的状态机。
//每次调用都是一次完整的 load-mutate-store，执行器自身不在调用之间保留
//任何状态，记录以宿主存储为唯一事实来源。
package executor

import (
	log "github.com/inconshreveable/log15"

	"github.com/33cn/vrfgame/common/address"
	"github.com/33cn/vrfgame/runtime"
	vty "github.com/33cn/vrfgame/types"
)

var elog = log.New("module", "execs."+vty.VrfGameX)

//执行器的程序地址，所有记录的 owner 都必须指向它
var execAddr = address.ExecAddress(vty.VrfGameX)

//VRFGame 执行器
type VRFGame struct {
	env *runtime.Env
}

//New 绑定一个记录存储域
func New(env *runtime.Env) *VRFGame {
	return &VRFGame{env: env}
}

//GetName 执行器名
func (v *VRFGame) GetName() string {
	return vty.VrfGameX
}

//ExecAddress 程序地址
func ExecAddress() address.Address {
	return execAddr
}

//各操作引用的记录个数，Records 的排列约定：
//  vrf commit/reveal: [vrf, game]
//  其余操作: [目标记录]
func recordCount(action *vty.VrfGameAction) int {
	if action.Domain == vty.VrfDomain &&
		(action.Ty == vty.VrfActionCommit || action.Ty == vty.VrfActionReveal) {
		return 2
	}
	return 1
}

//Exec 调度入口：解码指令，做所有操作共同的前置校验，再路由到对应的
//状态迁移。返回的收据由宿主整批落盘，任何错误都不产生写入
func (v *VRFGame) Exec(call *runtime.Call) (*vty.Receipt, error) {
	action, err := vty.DecodeAction(call.Payload)
	if err != nil {
		elog.Debug("decode action", "err", err)
		return nil, err
	}
	if len(call.Records) != recordCount(action) {
		return nil, vty.ErrMalformedAction
	}
	//(a) 声称的操作身份必须是本次调用的签名者
	if !call.IsSigner(call.From) {
		return nil, vty.ErrMissingSigner
	}
	//(b) 引用的每条记录都必须在本执行器名下
	for _, addr := range call.Records {
		owner, err := v.env.Owner(addr)
		if err != nil {
			return nil, err
		}
		if owner != execAddr {
			return nil, vty.ErrRecordNotOwned
		}
	}
	elog.Debug("exec", "action", action.ActionName(), "from", call.From.String())
	a := newAction(v.env, call)
	switch action.Domain {
	case vty.VrfDomain:
		switch action.Ty {
		case vty.VrfActionInitialize:
			return a.vrfInitialize()
		case vty.VrfActionCommit:
			return a.vrfCommit(action.GetCommit())
		case vty.VrfActionReveal:
			return a.vrfReveal(action.GetReveal())
		}
	case vty.GameDomain:
		switch action.Ty {
		case vty.GameActionInitialize:
			return a.gameInitialize()
		case vty.GameActionGuess:
			return a.gameGuess(action.GetGuess())
		}
	}
	//DecodeAction 已经拒绝未知判别值，到不了这里
	return nil, vty.ErrActionNotSupport
}
