// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//Package db 记录存储的 KV 抽象，带 goleveldb 与内存两种后端
package db

import "fmt"

//KV 操作内部对状态的最小读写视图
type KV interface {
	Get(key []byte) (value []byte, err error)
	Set(key []byte, value []byte) (err error)
}

//DB 持久化后端
type DB interface {
	Get([]byte) []byte
	Set([]byte, []byte)
	Delete([]byte)
	Close()
	NewBatch(sync bool) Batch
}

//Batch 批量写，Write 整体生效
type Batch interface {
	Set(key, value []byte)
	Delete(key []byte)
	Write() error
}

//后端名
const (
	LevelDBBackendStr   = "leveldb"
	GoLevelDBBackendStr = "goleveldb"
	MemDBBackendStr     = "memdb"
)

type dbCreator func(name string, dir string, cache int) (DB, error)

var backends = map[string]dbCreator{}

func registerDBCreator(backend string, creator dbCreator, force bool) {
	_, ok := backends[backend]
	if !force && ok {
		return
	}
	backends[backend] = creator
}

//NewDB 按后端名创建数据库，未知后端直接 panic，属于部署错误
func NewDB(name string, backend string, dir string, cache int) DB {
	dbCreator, ok := backends[backend]
	if !ok {
		fmt.Printf("Error initializing DB: %v\n", backend)
		panic("initializing DB error")
	}
	db, err := dbCreator(name, dir, cache)
	if err != nil {
		fmt.Printf("Error initializing DB: %v\n", err)
		panic("initializing DB error")
	}
	return db
}
