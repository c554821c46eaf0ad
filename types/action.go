// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "encoding/binary"

//指令 wire 格式：
//  byte0 域标识（0 game / 1 vrf）
//  byte1 操作码
//  其后为操作各自的载荷：
//    vrf commit:  u32 小端长度 + seed
//    vrf reveal:  64 字节 proof
//    game guess:  1 字节
//未知判别值一律拒绝，不做默认分支

//VrfGameAction 解码后的指令，Domain+Ty 二级判别
type VrfGameAction struct {
	Domain byte
	Ty     int32
	Commit *VrfCommit
	Reveal *VrfReveal
	Guess  *GameGuess
}

//VrfCommit commit 载荷
type VrfCommit struct {
	Seed []byte
}

//VrfReveal reveal 载荷
type VrfReveal struct {
	Proof []byte
}

//GameGuess guess 载荷
type GameGuess struct {
	Guess uint8
}

//GetCommit 取 commit 载荷
func (a *VrfGameAction) GetCommit() *VrfCommit {
	if a == nil {
		return nil
	}
	return a.Commit
}

//GetReveal 取 reveal 载荷
func (a *VrfGameAction) GetReveal() *VrfReveal {
	if a == nil {
		return nil
	}
	return a.Reveal
}

//GetGuess 取 guess 载荷
func (a *VrfGameAction) GetGuess() *GameGuess {
	if a == nil {
		return nil
	}
	return a.Guess
}

//ActionName 操作可读名，日志与收据用
func (a *VrfGameAction) ActionName() string {
	switch a.Domain {
	case VrfDomain:
		switch a.Ty {
		case VrfActionInitialize:
			return "vrfInitialize"
		case VrfActionCommit:
			return "vrfCommit"
		case VrfActionReveal:
			return "vrfReveal"
		}
	case GameDomain:
		switch a.Ty {
		case GameActionInitialize:
			return "gameInitialize"
		case GameActionGuess:
			return "gameGuess"
		}
	}
	return "unknown"
}

//DecodeAction 解析指令，截断或多余字节返回 ErrMalformedAction，
//未知判别值返回 ErrActionNotSupport
func DecodeAction(data []byte) (*VrfGameAction, error) {
	if len(data) < 2 {
		return nil, ErrMalformedAction
	}
	domain, op := data[0], data[1]
	payload := data[2:]
	action := &VrfGameAction{Domain: domain, Ty: int32(op)}
	switch domain {
	case VrfDomain:
		switch int32(op) {
		case VrfActionInitialize:
			if len(payload) != 0 {
				return nil, ErrMalformedAction
			}
		case VrfActionCommit:
			if len(payload) < 4 {
				return nil, ErrMalformedAction
			}
			n := binary.LittleEndian.Uint32(payload[:4])
			if uint32(len(payload)-4) != n {
				return nil, ErrMalformedAction
			}
			seed := make([]byte, n)
			copy(seed, payload[4:])
			action.Commit = &VrfCommit{Seed: seed}
		case VrfActionReveal:
			if len(payload) != ProofSize {
				return nil, ErrMalformedAction
			}
			action.Reveal = &VrfReveal{Proof: append([]byte(nil), payload...)}
		default:
			return nil, ErrActionNotSupport
		}
	case GameDomain:
		switch int32(op) {
		case GameActionInitialize:
			if len(payload) != 0 {
				return nil, ErrMalformedAction
			}
		case GameActionGuess:
			if len(payload) != 1 {
				return nil, ErrMalformedAction
			}
			action.Guess = &GameGuess{Guess: payload[0]}
		default:
			return nil, ErrActionNotSupport
		}
	default:
		return nil, ErrActionNotSupport
	}
	return action, nil
}

//EncodeAction 指令编码，客户端侧构造调用载荷
func EncodeAction(a *VrfGameAction) ([]byte, error) {
	buf := []byte{a.Domain, byte(a.Ty)}
	switch a.Domain {
	case VrfDomain:
		switch a.Ty {
		case VrfActionInitialize:
		case VrfActionCommit:
			if a.Commit == nil {
				return nil, ErrMalformedAction
			}
			var l [4]byte
			binary.LittleEndian.PutUint32(l[:], uint32(len(a.Commit.Seed)))
			buf = append(buf, l[:]...)
			buf = append(buf, a.Commit.Seed...)
		case VrfActionReveal:
			if a.Reveal == nil || len(a.Reveal.Proof) != ProofSize {
				return nil, ErrMalformedAction
			}
			buf = append(buf, a.Reveal.Proof...)
		default:
			return nil, ErrActionNotSupport
		}
	case GameDomain:
		switch a.Ty {
		case GameActionInitialize:
		case GameActionGuess:
			if a.Guess == nil {
				return nil, ErrMalformedAction
			}
			buf = append(buf, a.Guess.Guess)
		default:
			return nil, ErrActionNotSupport
		}
	default:
		return nil, ErrActionNotSupport
	}
	return buf, nil
}
