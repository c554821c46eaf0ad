// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

//Config cli 本地运行配置
type Config struct {
	Title     string `toml:"title"`
	DataDir   string `toml:"dataDir"`
	DBBackend string `toml:"dbBackend"`
	DBCache   int    `toml:"dbCache"`
}

//DefaultConfig 配置文件缺失时的缺省值
func DefaultConfig() *Config {
	return &Config{
		Title:     "vrfgame",
		DataDir:   "vrfgame-data",
		DBBackend: "leveldb",
		DBCache:   64,
	}
}

//LoadConfig 读 toml 配置，文件不存在时用缺省值
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	return cfg, nil
}

//KeyDir 私钥目录
func (c *Config) KeyDir() string {
	return filepath.Join(c.DataDir, "keys")
}
