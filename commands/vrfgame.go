// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//Package commands vrfgame 的本地命令行：钥匙管理、记录分配、
//commit-reveal-guess 全流程
package commands

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/33cn/vrfgame/common/address"
	"github.com/33cn/vrfgame/common/vrf"
	"github.com/33cn/vrfgame/runtime"
	vty "github.com/33cn/vrfgame/types"
)

//RootCmd 命令树入口
func RootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "vrfgame-cli",
		Short: "commit-reveal randomness guessing game cli",
	}
	rootCmd.PersistentFlags().String("conf", "vrfgame.toml", "config file path")
	rootCmd.AddCommand(
		KeyCmd(),
		RecordCmd(),
		VrfCmd(),
		GameCmd(),
		ShowCmd(),
	)
	return rootCmd
}

//KeyCmd 钥匙管理
func KeyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Key management",
		Args:  cobra.MinimumNArgs(1),
	}
	generate := &cobra.Command{
		Use:   "generate",
		Short: "Generate a named ed25519 key",
		Run:   keyGenerate,
	}
	generate.Flags().StringP("name", "n", "", "key name")
	generate.MarkFlagRequired("name")
	show := &cobra.Command{
		Use:   "show",
		Short: "Show the address of a named key",
		Run:   keyShow,
	}
	show.Flags().StringP("name", "n", "", "key name")
	show.MarkFlagRequired("name")
	cmd.AddCommand(generate, show)
	return cmd
}

func keyGenerate(cmd *cobra.Command, args []string) {
	e, err := openEnv(cmd)
	if err != nil {
		fatal(err)
	}
	defer e.close()
	name, _ := cmd.Flags().GetString("name")
	addr, err := e.generateKey(name)
	if err != nil {
		fatal(err)
	}
	fmt.Println(addr.String())
}

func keyShow(cmd *cobra.Command, args []string) {
	e, err := openEnv(cmd)
	if err != nil {
		fatal(err)
	}
	defer e.close()
	name, _ := cmd.Flags().GetString("name")
	addr, err := e.loadKey(name)
	if err != nil {
		fatal(err)
	}
	fmt.Println(addr.String())
}

//RecordCmd 记录分配
func RecordCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "record",
		Short: "Record storage management",
		Args:  cobra.MinimumNArgs(1),
	}
	alloc := &cobra.Command{
		Use:   "alloc",
		Short: "Allocate empty record storage (vrf|game)",
		Run:   recordAlloc,
	}
	alloc.Flags().StringP("type", "t", "", "record type: vrf or game")
	alloc.MarkFlagRequired("type")
	cmd.AddCommand(alloc)
	return cmd
}

func recordAlloc(cmd *cobra.Command, args []string) {
	e, err := openEnv(cmd)
	if err != nil {
		fatal(err)
	}
	defer e.close()
	kind, _ := cmd.Flags().GetString("type")
	addr, err := e.allocRecord(kind)
	if err != nil {
		fatal(err)
	}
	fmt.Println(addr.String())
}

//VrfCmd 随机数域操作
func VrfCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vrf",
		Short: "Randomness record operations",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(vrfInitCmd(), vrfCommitCmd(), vrfRevealCmd())
	return cmd
}

func vrfInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a randomness record",
		Run:   vrfInit,
	}
	cmd.Flags().StringP("key", "k", "", "authority key name")
	cmd.MarkFlagRequired("key")
	cmd.Flags().StringP("vrf", "r", "", "randomness record address")
	cmd.MarkFlagRequired("vrf")
	return cmd
}

func vrfInit(cmd *cobra.Command, args []string) {
	runOp(cmd, vty.VrfDomain, vty.VrfActionInitialize, "vrf")
}

func vrfCommitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "commit",
		Short: "Commit a seed, resetting the linked game record",
		Run:   vrfCommit,
	}
	cmd.Flags().StringP("key", "k", "", "authority key name")
	cmd.MarkFlagRequired("key")
	cmd.Flags().StringP("vrf", "r", "", "randomness record address")
	cmd.MarkFlagRequired("vrf")
	cmd.Flags().StringP("game", "g", "", "game record address")
	cmd.MarkFlagRequired("game")
	cmd.Flags().StringP("seed", "s", "", "seed, hex encoded")
	cmd.MarkFlagRequired("seed")
	return cmd
}

func vrfCommit(cmd *cobra.Command, args []string) {
	seedHex, _ := cmd.Flags().GetString("seed")
	seed, err := hex.DecodeString(seedHex)
	if err != nil {
		fatal(fmt.Errorf("seed must be hex: %v", err))
	}
	action := &vty.VrfGameAction{
		Domain: vty.VrfDomain,
		Ty:     vty.VrfActionCommit,
		Commit: &vty.VrfCommit{Seed: seed},
	}
	runAction(cmd, action, "vrf", "game")
}

func vrfRevealCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reveal",
		Short: "Reveal a proof and derive randomness",
		Run:   vrfReveal,
	}
	cmd.Flags().StringP("key", "k", "", "authority key name")
	cmd.MarkFlagRequired("key")
	cmd.Flags().StringP("vrf", "r", "", "randomness record address")
	cmd.MarkFlagRequired("vrf")
	cmd.Flags().StringP("game", "g", "", "game record address")
	cmd.MarkFlagRequired("game")
	cmd.Flags().StringP("proof", "p", "", "64-byte proof, hex encoded")
	cmd.MarkFlagRequired("proof")
	return cmd
}

func vrfReveal(cmd *cobra.Command, args []string) {
	proofHex, _ := cmd.Flags().GetString("proof")
	proof, err := hex.DecodeString(proofHex)
	if err != nil || len(proof) != vty.ProofSize {
		fatal(fmt.Errorf("proof must be %d hex-encoded bytes", vty.ProofSize))
	}
	action := &vty.VrfGameAction{
		Domain: vty.VrfDomain,
		Ty:     vty.VrfActionReveal,
		Reveal: &vty.VrfReveal{Proof: proof},
	}
	runAction(cmd, action, "vrf", "game")
}

//GameCmd 游戏域操作
func GameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Game record operations",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(gameInitCmd(), gameGuessCmd())
	return cmd
}

func gameInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a game record",
		Run:   gameInit,
	}
	cmd.Flags().StringP("key", "k", "", "authority key name")
	cmd.MarkFlagRequired("key")
	cmd.Flags().StringP("game", "g", "", "game record address")
	cmd.MarkFlagRequired("game")
	return cmd
}

func gameInit(cmd *cobra.Command, args []string) {
	runOp(cmd, vty.GameDomain, vty.GameActionInitialize, "game")
}

func gameGuessCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "guess",
		Short: "Submit a guess between 0 and 99",
		Run:   gameGuess,
	}
	cmd.Flags().StringP("key", "k", "", "authority key name")
	cmd.MarkFlagRequired("key")
	cmd.Flags().StringP("game", "g", "", "game record address")
	cmd.MarkFlagRequired("game")
	cmd.Flags().Int32P("number", "n", 0, "guessed number, 0-99")
	cmd.MarkFlagRequired("number")
	return cmd
}

func gameGuess(cmd *cobra.Command, args []string) {
	number, _ := cmd.Flags().GetInt32("number")
	//取值校验是调用方职责，核心结构上接受任意字节
	if number < 0 || number >= vrf.GameNumberRange {
		fatal(fmt.Errorf("guess must be in [0, %d)", vrf.GameNumberRange))
	}
	action := &vty.VrfGameAction{
		Domain: vty.GameDomain,
		Ty:     vty.GameActionGuess,
		Guess:  &vty.GameGuess{Guess: uint8(number)},
	}
	runAction(cmd, action, "game")
}

//ShowCmd 记录查询
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show record content",
		Args:  cobra.MinimumNArgs(1),
	}
	showVrf := &cobra.Command{
		Use:   "vrf",
		Short: "Show a randomness record",
		Run:   showVrfRecord,
	}
	showVrf.Flags().StringP("vrf", "r", "", "randomness record address")
	showVrf.MarkFlagRequired("vrf")
	showGame := &cobra.Command{
		Use:   "game",
		Short: "Show a game record",
		Run:   showGameRecord,
	}
	showGame.Flags().StringP("game", "g", "", "game record address")
	showGame.MarkFlagRequired("game")
	cmd.AddCommand(showVrf, showGame)
	return cmd
}

func showVrfRecord(cmd *cobra.Command, args []string) {
	e, err := openEnv(cmd)
	if err != nil {
		fatal(err)
	}
	defer e.close()
	addr, err := parseAddrFlag(cmd, "vrf")
	if err != nil {
		fatal(err)
	}
	data := e.rt.Data(addr)
	if len(data) == 0 {
		fmt.Println("record absent")
		return
	}
	state, err := vty.DecodeVrfState(data)
	if err != nil {
		fatal(err)
	}
	out := map[string]interface{}{
		"authority":   state.Authority.String(),
		"initialized": state.IsInitialized,
	}
	if state.Seed != nil {
		out["seed"] = hex.EncodeToString(state.Seed)
	}
	if state.Randomness != nil {
		out["randomness"] = hex.EncodeToString(state.Randomness)
		out["gameNumber"] = vrf.GameNumber(state.Randomness)
	}
	if state.Proof != nil {
		out["proof"] = hex.EncodeToString(state.Proof)
	}
	printJSON(out)
}

func showGameRecord(cmd *cobra.Command, args []string) {
	e, err := openEnv(cmd)
	if err != nil {
		fatal(err)
	}
	defer e.close()
	addr, err := parseAddrFlag(cmd, "game")
	if err != nil {
		fatal(err)
	}
	data := e.rt.Data(addr)
	if len(data) == 0 {
		fmt.Println("record absent")
		return
	}
	state, err := vty.DecodeGameState(data)
	if err != nil {
		fatal(err)
	}
	out := map[string]interface{}{
		"authority":   state.Authority.String(),
		"initialized": state.IsInitialized,
		"status":      vty.StatusName(state.Status),
	}
	if state.Randomness != nil {
		out["randomness"] = hex.EncodeToString(state.Randomness)
	}
	if state.PlayerGuess != nil {
		out["playerGuess"] = *state.PlayerGuess
	}
	if state.Result != nil {
		out["result"] = vty.ResultName(*state.Result)
	}
	printJSON(out)
}

//runOp 无载荷操作的公共路径
func runOp(cmd *cobra.Command, domain byte, ty int32, recordFlags ...string) {
	runAction(cmd, &vty.VrfGameAction{Domain: domain, Ty: ty}, recordFlags...)
}

//runAction 组装调用并提交：From 取 key 的地址，持钥即签名
func runAction(cmd *cobra.Command, action *vty.VrfGameAction, recordFlags ...string) {
	e, err := openEnv(cmd)
	if err != nil {
		fatal(err)
	}
	defer e.close()
	keyName, _ := cmd.Flags().GetString("key")
	from, err := e.loadKey(keyName)
	if err != nil {
		fatal(err)
	}
	records := make([]address.Address, 0, len(recordFlags))
	for _, flag := range recordFlags {
		addr, err := parseAddrFlag(cmd, flag)
		if err != nil {
			fatal(err)
		}
		records = append(records, addr)
	}
	payload, err := vty.EncodeAction(action)
	if err != nil {
		fatal(err)
	}
	call := &runtime.Call{
		From:    from,
		Signers: []address.Address{from},
		Records: records,
		Payload: payload,
	}
	receipt, err := e.send(call)
	if err != nil {
		fatal(err)
	}
	printReceipt(receipt)
}

func printJSON(v interface{}) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fatal(err)
	}
	fmt.Println(string(b))
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
