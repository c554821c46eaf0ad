// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"sync"

	log "github.com/inconshreveable/log15"
)

var mlog = log.New("module", "db.memdb")

func init() {
	dbCreator := func(name string, dir string, cache int) (DB, error) {
		return NewGoMemDB(name, dir, cache)
	}
	registerDBCreator(MemDBBackendStr, dbCreator, false)
}

//GoMemDB 内存后端，测试与一次性流程用
type GoMemDB struct {
	db   map[string][]byte
	lock sync.RWMutex
}

//NewGoMemDB memdb 不落盘，忽略 name/dir/cache
func NewGoMemDB(name string, dir string, cache int) (*GoMemDB, error) {
	return &GoMemDB{
		db: make(map[string][]byte),
	}, nil
}

//CopyBytes 防止外部持有内部切片
func CopyBytes(b []byte) (copiedBytes []byte) {
	if b == nil {
		return nil
	}
	copiedBytes = make([]byte, len(b))
	copy(copiedBytes, b)
	return copiedBytes
}

func (db *GoMemDB) Get(key []byte) []byte {
	db.lock.RLock()
	defer db.lock.RUnlock()

	if entry, ok := db.db[string(key)]; ok {
		return CopyBytes(entry)
	}
	return nil
}

func (db *GoMemDB) Set(key []byte, value []byte) {
	db.lock.Lock()
	defer db.lock.Unlock()

	db.db[string(key)] = CopyBytes(value)
}

func (db *GoMemDB) Delete(key []byte) {
	db.lock.Lock()
	defer db.lock.Unlock()

	delete(db.db, string(key))
}

func (db *GoMemDB) Close() {
	mlog.Debug("memdb closed")
}

type memBatchOp struct {
	key   []byte
	value []byte //nil 表示删除
}

type memBatch struct {
	db  *GoMemDB
	ops []memBatchOp
}

func (db *GoMemDB) NewBatch(sync bool) Batch {
	return &memBatch{db: db}
}

func (b *memBatch) Set(key, value []byte) {
	b.ops = append(b.ops, memBatchOp{CopyBytes(key), CopyBytes(value)})
}

func (b *memBatch) Delete(key []byte) {
	b.ops = append(b.ops, memBatchOp{CopyBytes(key), nil})
}

func (b *memBatch) Write() error {
	b.db.lock.Lock()
	defer b.db.lock.Unlock()

	for _, op := range b.ops {
		if op.value == nil {
			delete(b.db.db, string(op.key))
		} else {
			b.db.db[string(op.key)] = op.value
		}
	}
	b.ops = nil
	return nil
}
