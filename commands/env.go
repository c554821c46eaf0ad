// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/33cn/vrfgame/common/address"
	dbm "github.com/33cn/vrfgame/common/db"
	"github.com/33cn/vrfgame/executor"
	"github.com/33cn/vrfgame/runtime"
	vty "github.com/33cn/vrfgame/types"
)

//env cli 的本地执行环境：落盘的记录存储 + 执行器。
//持有 key 文件即视为对调用签名，真实签名与交易提交在链上宿主里完成
type env struct {
	cfg  *Config
	db   dbm.DB
	rt   *runtime.Env
	exec *executor.VRFGame
}

func openEnv(cmd *cobra.Command) (*env, error) {
	confPath, _ := cmd.Flags().GetString("conf")
	cfg, err := LoadConfig(confPath)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(cfg.DataDir, 0o700); err != nil {
		return nil, errors.Wrap(err, "create data dir")
	}
	db := dbm.NewDB("records", cfg.DBBackend, cfg.DataDir, cfg.DBCache)
	rt := runtime.New(db)
	return &env{cfg: cfg, db: db, rt: rt, exec: executor.New(rt)}, nil
}

func (e *env) close() {
	e.db.Close()
}

//send 提交一次操作：执行 + 收据整批落盘
func (e *env) send(call *runtime.Call) (*vty.Receipt, error) {
	receipt, err := e.exec.Exec(call)
	if err != nil {
		return nil, err
	}
	if err := e.rt.Apply(receipt); err != nil {
		return nil, err
	}
	return receipt, nil
}

func (e *env) loadKey(name string) (address.Address, error) {
	var addr address.Address
	raw, err := os.ReadFile(filepath.Join(e.cfg.KeyDir(), name+".key"))
	if err != nil {
		return addr, errors.Wrapf(err, "load key %q", name)
	}
	seed, err := hex.DecodeString(strings.TrimSpace(string(raw)))
	if err != nil || len(seed) != ed25519.SeedSize {
		return addr, errors.Errorf("key file %q corrupted", name)
	}
	priv := ed25519.NewKeyFromSeed(seed)
	return address.FromBytes(priv.Public().(ed25519.PublicKey))
}

func (e *env) generateKey(name string) (address.Address, error) {
	var addr address.Address
	if err := os.MkdirAll(e.cfg.KeyDir(), 0o700); err != nil {
		return addr, errors.Wrap(err, "create key dir")
	}
	path := filepath.Join(e.cfg.KeyDir(), name+".key")
	if _, err := os.Stat(path); err == nil {
		return addr, errors.Errorf("key %q already exists", name)
	}
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return addr, errors.Wrap(err, "generate key")
	}
	seed := priv.Seed()
	if err := os.WriteFile(path, []byte(hex.EncodeToString(seed)), 0o600); err != nil {
		return addr, errors.Wrap(err, "write key file")
	}
	return address.FromBytes(pub)
}

//allocRecord 外部分配原语：按记录类型预留最大编码空间
func (e *env) allocRecord(kind string) (address.Address, error) {
	var addr address.Address
	if _, err := rand.Read(addr[:]); err != nil {
		return addr, errors.Wrap(err, "new record address")
	}
	var size int
	switch kind {
	case "vrf":
		size = vty.VrfStateMaxSize
	case "game":
		size = vty.GameStateMaxSize
	default:
		return addr, errors.Errorf("unknown record type %q", kind)
	}
	if err := e.rt.Alloc(addr, executor.ExecAddress(), size); err != nil {
		return addr, err
	}
	return addr, nil
}

func parseAddrFlag(cmd *cobra.Command, flag string) (address.Address, error) {
	s, _ := cmd.Flags().GetString(flag)
	addr, err := address.FromString(s)
	if err != nil {
		return addr, errors.Errorf("bad %s address %q", flag, s)
	}
	return addr, nil
}

func printReceipt(receipt *vty.Receipt) {
	for _, l := range receipt.Logs {
		fmt.Printf("log[%d] %s\n", l.Ty, string(l.Log))
	}
}
