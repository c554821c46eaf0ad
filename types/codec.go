// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"encoding/binary"
)

//记录编码：定宽字段直接平铺，可选字段先写 1 字节存在标记，
//变长字节串加 u32 小端长度前缀。decode(encode(r)) == r 严格成立。
//空存储表示记录缺席，由调用方在 decode 之前判断。

type encoder struct {
	buf []byte
}

func (e *encoder) bytes(b []byte) {
	e.buf = append(e.buf, b...)
}

func (e *encoder) u8(v byte) {
	e.buf = append(e.buf, v)
}

func (e *encoder) bool(v bool) {
	if v {
		e.u8(1)
	} else {
		e.u8(0)
	}
}

func (e *encoder) u32(v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	e.bytes(b[:])
}

//optionBytes 可选变长字节串：标记 + 长度 + 内容
func (e *encoder) optionBytes(b []byte) {
	if b == nil {
		e.u8(0)
		return
	}
	e.u8(1)
	e.u32(uint32(len(b)))
	e.bytes(b)
}

//optionArray 可选定宽字节串：标记 + 内容
func (e *encoder) optionArray(b []byte) {
	if b == nil {
		e.u8(0)
		return
	}
	e.u8(1)
	e.bytes(b)
}

type decoder struct {
	data []byte
	off  int
	err  error
}

func (d *decoder) take(n int) []byte {
	if d.err != nil {
		return nil
	}
	if d.off+n > len(d.data) {
		d.err = ErrDecodeRecord
		return nil
	}
	b := d.data[d.off : d.off+n]
	d.off += n
	return b
}

func (d *decoder) u8() byte {
	b := d.take(1)
	if b == nil {
		return 0
	}
	return b[0]
}

func (d *decoder) bool() bool {
	switch d.u8() {
	case 0:
		return false
	case 1:
		return true
	default:
		d.err = ErrDecodeRecord
		return false
	}
}

func (d *decoder) u32() uint32 {
	b := d.take(4)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

func (d *decoder) option() bool {
	return d.bool()
}

func (d *decoder) optionBytes(max int) []byte {
	if !d.option() {
		return nil
	}
	n := d.u32()
	if d.err == nil && int(n) > max {
		d.err = ErrDecodeRecord
		return nil
	}
	b := d.take(int(n))
	if d.err != nil {
		return nil
	}
	//present-but-empty 与 absent 要区分开，拷贝时保持非 nil
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

func (d *decoder) optionArray(n int) []byte {
	if !d.option() {
		return nil
	}
	b := d.take(n)
	if d.err != nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

//finish 编码之后不允许有多余字节
func (d *decoder) finish() error {
	if d.err != nil {
		return d.err
	}
	if d.off != len(d.data) {
		return ErrDecodeRecord
	}
	return nil
}

//EncodeVrfState 编码 vrf 记录
func EncodeVrfState(v *VrfState) []byte {
	e := &encoder{}
	e.bytes(v.Authority[:])
	e.bool(v.IsInitialized)
	e.optionBytes(v.Seed)
	e.optionArray(v.Randomness)
	e.optionArray(v.Proof)
	e.bytes(v.VerifyKey[:])
	return e.buf
}

//DecodeVrfState 解码 vrf 记录，空输入直接报 ErrDecodeRecord，
//调用方需要先用 len(data) == 0 判断记录是否缺席
func DecodeVrfState(data []byte) (*VrfState, error) {
	d := &decoder{data: data}
	var v VrfState
	copy(v.Authority[:], d.take(AddressSize))
	v.IsInitialized = d.bool()
	v.Seed = d.optionBytes(MaxSeedSize)
	v.Randomness = d.optionArray(RandomnessSize)
	v.Proof = d.optionArray(ProofSize)
	copy(v.VerifyKey[:], d.take(VerifyKeySize))
	if err := d.finish(); err != nil {
		return nil, err
	}
	if (v.Randomness == nil) != (v.Proof == nil) {
		return nil, ErrDecodeRecord
	}
	return &v, nil
}

//EncodeGameState 编码 game 记录
func EncodeGameState(g *GameState) []byte {
	e := &encoder{}
	e.bytes(g.Authority[:])
	e.bool(g.IsInitialized)
	e.optionArray(g.Randomness)
	e.u8(byte(g.Status))
	if g.PlayerGuess == nil {
		e.u8(0)
	} else {
		e.u8(1)
		e.u8(*g.PlayerGuess)
	}
	if g.Result == nil {
		e.u8(0)
	} else {
		e.u8(1)
		e.u8(byte(*g.Result))
	}
	return e.buf
}

//DecodeGameState 解码 game 记录
func DecodeGameState(data []byte) (*GameState, error) {
	d := &decoder{data: data}
	var g GameState
	copy(g.Authority[:], d.take(AddressSize))
	g.IsInitialized = d.bool()
	g.Randomness = d.optionArray(RandomnessSize)
	status := d.u8()
	if d.err == nil && int32(status) > GameStatusComplete {
		return nil, ErrDecodeRecord
	}
	g.Status = int32(status)
	if d.option() {
		guess := d.u8()
		g.PlayerGuess = &guess
	}
	if d.option() {
		result := int32(d.u8())
		if d.err == nil && result > GameResultLose {
			return nil, ErrDecodeRecord
		}
		g.Result = &result
	}
	if err := d.finish(); err != nil {
		return nil, err
	}
	return &g, nil
}
