// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//Package runtime 宿主侧原语：记录分配、属主登记、签名者集合、收据落盘。
//执行器只产出收据，落盘由这里整批完成，失败的操作不留任何写入。
package runtime

import (
	"encoding/binary"

	log "github.com/inconshreveable/log15"
	"github.com/pkg/errors"

	"github.com/33cn/vrfgame/common/address"
	dbm "github.com/33cn/vrfgame/common/db"
	"github.com/33cn/vrfgame/types"
)

var rlog = log.New("module", "runtime")

//存储键布局
//  acct-meta-<addr>  owner[32] + maxSize u32 小端
//  acct-data-<addr>  记录当前编码，分配后为空直到第一次写入
const (
	metaPrefix = "acct-meta-"
	dataPrefix = "acct-data-"
)

//MetaKey 记录元信息键
func MetaKey(addr address.Address) []byte {
	return []byte(metaPrefix + addr.String())
}

//DataKey 记录数据键，执行器的收据 KV 以它为目标
func DataKey(addr address.Address) []byte {
	return []byte(dataPrefix + addr.String())
}

//Env 一个记录存储域
type Env struct {
	db dbm.DB
}

//New 包装一个持久化后端
func New(db dbm.DB) *Env {
	return &Env{db: db}
}

//Alloc 外部分配原语：为新记录开辟空存储并登记属主。
//size 必须覆盖记录可选字段全在场时的最大编码
func (e *Env) Alloc(addr address.Address, owner address.Address, size int) error {
	if e.db.Get(MetaKey(addr)) != nil {
		return types.ErrRecordExist
	}
	meta := make([]byte, address.Size+4)
	copy(meta, owner[:])
	binary.LittleEndian.PutUint32(meta[address.Size:], uint32(size))
	batch := e.db.NewBatch(true)
	batch.Set(MetaKey(addr), meta)
	batch.Set(DataKey(addr), []byte{})
	if err := batch.Write(); err != nil {
		return errors.Wrap(err, "alloc record")
	}
	rlog.Debug("record allocated", "addr", addr.String(), "owner", owner.String(), "size", size)
	return nil
}

//Owner 属主检查入口，未分配的记录返回 ErrRecordNotFound
func (e *Env) Owner(addr address.Address) (address.Address, error) {
	var owner address.Address
	meta := e.db.Get(MetaKey(addr))
	if meta == nil {
		return owner, types.ErrRecordNotFound
	}
	if len(meta) != address.Size+4 {
		return owner, types.ErrDecodeRecord
	}
	copy(owner[:], meta[:address.Size])
	return owner, nil
}

//MaxSize 记录分配时预留的空间
func (e *Env) MaxSize(addr address.Address) (int, error) {
	meta := e.db.Get(MetaKey(addr))
	if meta == nil {
		return 0, types.ErrRecordNotFound
	}
	if len(meta) != address.Size+4 {
		return 0, types.ErrDecodeRecord
	}
	return int(binary.LittleEndian.Uint32(meta[address.Size:])), nil
}

//Data 记录当前内容，长度为 0 表示记录从未写入（缺席）
func (e *Env) Data(addr address.Address) []byte {
	return e.db.Get(DataKey(addr))
}

//Apply 收据整批落盘：所有 KV 一个 batch 写入，要么全部可见要么全不可见。
//写入长度超过记录预留空间的收据整体拒绝
func (e *Env) Apply(receipt *types.Receipt) error {
	if receipt == nil || receipt.Ty != types.ExecOk {
		return nil
	}
	batch := e.db.NewBatch(true)
	for _, kv := range receipt.KV {
		if addr, ok := parseDataKey(kv.Key); ok {
			max, err := e.MaxSize(addr)
			if err != nil {
				return err
			}
			if len(kv.Value) > max {
				return types.ErrRecordOverflow
			}
		}
		batch.Set(kv.Key, kv.Value)
	}
	if err := batch.Write(); err != nil {
		return errors.Wrap(err, "apply receipt")
	}
	return nil
}

func parseDataKey(key []byte) (address.Address, bool) {
	var addr address.Address
	s := string(key)
	if len(s) <= len(dataPrefix) || s[:len(dataPrefix)] != dataPrefix {
		return addr, false
	}
	addr, err := address.FromString(s[len(dataPrefix):])
	if err != nil {
		return addr, false
	}
	return addr, true
}

//Call 一次提交给执行器的操作
//Records 的顺序由具体操作约定，执行器据此取 vrf/game 记录
type Call struct {
	From    address.Address
	Signers []address.Address
	Records []address.Address
	Payload []byte
}

//IsSigner 签名者认证原语："该身份是否为本次调用签了名"
func (c *Call) IsSigner(addr address.Address) bool {
	for _, signer := range c.Signers {
		if signer == addr {
			return true
		}
	}
	return false
}
