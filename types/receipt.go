// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "encoding/json"

//KeyValue 一条待落盘的状态写入
type KeyValue struct {
	Key   []byte
	Value []byte
}

//ReceiptLog 操作产生的事件日志，仅供外部观察，不参与状态
type ReceiptLog struct {
	Ty  int64
	Log []byte
}

//Receipt 一次操作的全部产出：要么整体写入，要么整体丢弃
type Receipt struct {
	Ty   int32
	KV   []*KeyValue
	Logs []*ReceiptLog
}

//ReceiptVrf vrf 记录变更日志
type ReceiptVrf struct {
	Addr       string `json:"addr"`
	Authority  string `json:"authority"`
	Action     string `json:"action"`
	SeedLen    int    `json:"seedLen,omitempty"`
	Randomness string `json:"randomness,omitempty"`
}

//ReceiptGame game 记录变更日志
type ReceiptGame struct {
	Addr       string `json:"addr"`
	Authority  string `json:"authority"`
	PrevStatus int32  `json:"prevStatus"`
	Status     int32  `json:"status"`
	Guess      int32  `json:"guess,omitempty"`
	Target     int32  `json:"target,omitempty"`
	Result     string `json:"result,omitempty"`
}

//EncodeLog 日志序列化，收据日志只做观测用途，json 足够
func EncodeLog(v interface{}) []byte {
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return b
}
