// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/33cn/vrfgame/commands"
)

func main() {
	if err := commands.RootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
