// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "errors"

var (
	//ErrMalformedAction 指令载荷无法解析，任何记录都未被触碰
	ErrMalformedAction = errors.New("ErrMalformedAction")
	//ErrActionNotSupport 未知的域或操作码
	ErrActionNotSupport = errors.New("ErrActionNotSupport")
	//ErrMissingSigner 声称的操作身份没有在本次调用上签名
	ErrMissingSigner = errors.New("ErrMissingSigner")
	//ErrInvalidAuthority 签名者与记录的 authority 不一致
	ErrInvalidAuthority = errors.New("ErrInvalidAuthority")
	//ErrRecordNotOwned 记录存储不在本执行器名下
	ErrRecordNotOwned = errors.New("ErrRecordNotOwned")
	//ErrRecordInitialized 记录已经初始化，不能重复初始化
	ErrRecordInitialized = errors.New("ErrRecordInitialized")
	//ErrGameStatus 当前游戏状态下不允许该操作
	ErrGameStatus = errors.New("ErrGameStatus")
	//ErrSeedNotCommitted reveal 之前必须先 commit seed
	ErrSeedNotCommitted = errors.New("ErrSeedNotCommitted")
	//ErrRandomnessNotAvailable 猜数时随机数还未派生，防御性检查
	ErrRandomnessNotAvailable = errors.New("ErrRandomnessNotAvailable")
	//ErrInvalidProof proof 校验不通过
	ErrInvalidProof = errors.New("ErrInvalidProof")
	//ErrDecodeRecord 存储内容与记录编码不符
	ErrDecodeRecord = errors.New("ErrDecodeRecord")
	//ErrSeedTooLong seed 超过记录分配的预留空间
	ErrSeedTooLong = errors.New("ErrSeedTooLong")
	//ErrRecordNotFound 引用的记录尚未分配
	ErrRecordNotFound = errors.New("ErrRecordNotFound")
	//ErrRecordExist 分配时目标地址已经存在
	ErrRecordExist = errors.New("ErrRecordExist")
	//ErrRecordOverflow 写入长度超过记录分配的空间
	ErrRecordOverflow = errors.New("ErrRecordOverflow")
)
