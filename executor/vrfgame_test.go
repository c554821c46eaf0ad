// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/33cn/vrfgame/common/address"
	dbm "github.com/33cn/vrfgame/common/db"
	"github.com/33cn/vrfgame/common/vrf"
	"github.com/33cn/vrfgame/runtime"
	vty "github.com/33cn/vrfgame/types"
)

type testChain struct {
	t        *testing.T
	env      *runtime.Env
	exec     *VRFGame
	vrfAddr  address.Address
	gameAddr address.Address
}

func testAddr(b byte) address.Address {
	var a address.Address
	a[31] = b
	return a
}

func newTestChain(t *testing.T) *testChain {
	db, err := dbm.NewGoMemDB("test", "", 0)
	require.NoError(t, err)
	env := runtime.New(db)
	tc := &testChain{
		t:        t,
		env:      env,
		exec:     New(env),
		vrfAddr:  testAddr(0xa1),
		gameAddr: testAddr(0xa2),
	}
	require.NoError(t, env.Alloc(tc.vrfAddr, ExecAddress(), vty.VrfStateMaxSize))
	require.NoError(t, env.Alloc(tc.gameAddr, ExecAddress(), vty.GameStateMaxSize))
	return tc
}

//send 组装调用、执行并落盘
func (tc *testChain) send(from address.Address, action *vty.VrfGameAction,
	records ...address.Address) (*vty.Receipt, error) {
	payload, err := vty.EncodeAction(action)
	require.NoError(tc.t, err)
	call := &runtime.Call{
		From:    from,
		Signers: []address.Address{from},
		Records: records,
		Payload: payload,
	}
	receipt, err := tc.exec.Exec(call)
	if err != nil {
		return nil, err
	}
	require.NoError(tc.t, tc.env.Apply(receipt))
	return receipt, nil
}

func (tc *testChain) mustSend(from address.Address, action *vty.VrfGameAction,
	records ...address.Address) *vty.Receipt {
	receipt, err := tc.send(from, action, records...)
	require.NoError(tc.t, err)
	return receipt
}

func (tc *testChain) vrfState() *vty.VrfState {
	state, err := vty.DecodeVrfState(tc.env.Data(tc.vrfAddr))
	require.NoError(tc.t, err)
	return state
}

func (tc *testChain) gameState() *vty.GameState {
	state, err := vty.DecodeGameState(tc.env.Data(tc.gameAddr))
	require.NoError(tc.t, err)
	return state
}

func vrfInitAction() *vty.VrfGameAction {
	return &vty.VrfGameAction{Domain: vty.VrfDomain, Ty: vty.VrfActionInitialize}
}

func commitAction(seed []byte) *vty.VrfGameAction {
	return &vty.VrfGameAction{Domain: vty.VrfDomain, Ty: vty.VrfActionCommit,
		Commit: &vty.VrfCommit{Seed: seed}}
}

func revealAction(proof []byte) *vty.VrfGameAction {
	return &vty.VrfGameAction{Domain: vty.VrfDomain, Ty: vty.VrfActionReveal,
		Reveal: &vty.VrfReveal{Proof: proof}}
}

func gameInitAction() *vty.VrfGameAction {
	return &vty.VrfGameAction{Domain: vty.GameDomain, Ty: vty.GameActionInitialize}
}

func guessAction(guess uint8) *vty.VrfGameAction {
	return &vty.VrfGameAction{Domain: vty.GameDomain, Ty: vty.GameActionGuess,
		Guess: &vty.GameGuess{Guess: guess}}
}

//完整流程，猜中
func TestScenarioWin(t *testing.T) {
	tc := newTestChain(t)
	authority := testAddr(1)
	seed := []byte{0x01, 0x02}
	proof := bytes.Repeat([]byte{0xff}, vty.ProofSize)

	tc.mustSend(authority, vrfInitAction(), tc.vrfAddr)
	tc.mustSend(authority, gameInitAction(), tc.gameAddr)
	tc.mustSend(authority, commitAction(seed), tc.vrfAddr, tc.gameAddr)

	state := tc.vrfState()
	require.Equal(t, seed, state.Seed)
	require.Nil(t, state.Randomness)
	require.Nil(t, state.Proof)

	tc.mustSend(authority, revealAction(proof), tc.vrfAddr, tc.gameAddr)

	expected := vrf.DeriveRandomness(proof, seed)
	state = tc.vrfState()
	require.Equal(t, expected[:], state.Randomness)
	require.Equal(t, proof, state.Proof)

	game := tc.gameState()
	require.Equal(t, vty.GameStatusAwaitingGuess, game.Status)
	require.Equal(t, expected[:], game.Randomness)
	require.Nil(t, game.PlayerGuess)
	require.Nil(t, game.Result)

	target := vrf.GameNumber(expected[:])
	tc.mustSend(authority, guessAction(target), tc.gameAddr)

	game = tc.gameState()
	require.Equal(t, vty.GameStatusComplete, game.Status)
	require.Equal(t, target, *game.PlayerGuess)
	require.Equal(t, vty.GameResultWin, *game.Result)
}

//完整流程，猜错
func TestScenarioLose(t *testing.T) {
	tc := newTestChain(t)
	authority := testAddr(1)
	seed := []byte{0x01, 0x02}
	proof := bytes.Repeat([]byte{0xff}, vty.ProofSize)

	tc.mustSend(authority, vrfInitAction(), tc.vrfAddr)
	tc.mustSend(authority, gameInitAction(), tc.gameAddr)
	tc.mustSend(authority, commitAction(seed), tc.vrfAddr, tc.gameAddr)
	tc.mustSend(authority, revealAction(proof), tc.vrfAddr, tc.gameAddr)

	expected := vrf.DeriveRandomness(proof, seed)
	wrong := (vrf.GameNumber(expected[:]) + 1) % 100
	tc.mustSend(authority, guessAction(wrong), tc.gameAddr)

	game := tc.gameState()
	require.Equal(t, vty.GameStatusComplete, game.Status)
	require.Equal(t, wrong, *game.PlayerGuess)
	require.Equal(t, vty.GameResultLose, *game.Result)
}

//重新 commit：game 记录的瞬态字段必须跟着复位，
//哪怕它们存在另一条记录里
func TestRecommitResetsGame(t *testing.T) {
	tc := newTestChain(t)
	authority := testAddr(1)
	proof := bytes.Repeat([]byte{0xff}, vty.ProofSize)

	tc.mustSend(authority, vrfInitAction(), tc.vrfAddr)
	tc.mustSend(authority, gameInitAction(), tc.gameAddr)
	tc.mustSend(authority, commitAction([]byte{0x01, 0x02}), tc.vrfAddr, tc.gameAddr)
	tc.mustSend(authority, revealAction(proof), tc.vrfAddr, tc.gameAddr)
	expected := vrf.DeriveRandomness(proof, []byte{0x01, 0x02})
	tc.mustSend(authority, guessAction(vrf.GameNumber(expected[:])), tc.gameAddr)
	require.Equal(t, vty.GameStatusComplete, tc.gameState().Status)

	tc.mustSend(authority, commitAction([]byte{0x03}), tc.vrfAddr, tc.gameAddr)

	state := tc.vrfState()
	require.Equal(t, []byte{0x03}, state.Seed)
	require.Nil(t, state.Randomness)
	require.Nil(t, state.Proof)

	game := tc.gameState()
	require.Equal(t, vty.GameStatusAwaitingRandomness, game.Status)
	require.Nil(t, game.Randomness)
	require.Nil(t, game.PlayerGuess)
	require.Nil(t, game.Result)
}

//authority 不匹配的操作失败且不改动记录
func TestAuthorityEnforcement(t *testing.T) {
	tc := newTestChain(t)
	authority := testAddr(1)
	intruder := testAddr(2)
	proof := bytes.Repeat([]byte{0xff}, vty.ProofSize)

	tc.mustSend(authority, vrfInitAction(), tc.vrfAddr)
	tc.mustSend(authority, gameInitAction(), tc.gameAddr)

	before := tc.env.Data(tc.vrfAddr)
	_, err := tc.send(intruder, commitAction([]byte{1}), tc.vrfAddr, tc.gameAddr)
	require.Equal(t, vty.ErrInvalidAuthority, err)
	require.Equal(t, before, tc.env.Data(tc.vrfAddr))

	tc.mustSend(authority, commitAction([]byte{1}), tc.vrfAddr, tc.gameAddr)
	_, err = tc.send(intruder, revealAction(proof), tc.vrfAddr, tc.gameAddr)
	require.Equal(t, vty.ErrInvalidAuthority, err)

	tc.mustSend(authority, revealAction(proof), tc.vrfAddr, tc.gameAddr)
	gameBefore := tc.env.Data(tc.gameAddr)
	_, err = tc.send(intruder, guessAction(7), tc.gameAddr)
	require.Equal(t, vty.ErrInvalidAuthority, err)
	require.Equal(t, gameBefore, tc.env.Data(tc.gameAddr))
}

//状态只能单向推进，错误相位的 guess 一律拒绝
func TestPhaseMonotonicity(t *testing.T) {
	tc := newTestChain(t)
	authority := testAddr(1)
	proof := bytes.Repeat([]byte{0xff}, vty.ProofSize)

	tc.mustSend(authority, vrfInitAction(), tc.vrfAddr)
	tc.mustSend(authority, gameInitAction(), tc.gameAddr)

	//AwaitingRandomness 阶段不能猜
	_, err := tc.send(authority, guessAction(1), tc.gameAddr)
	require.Equal(t, vty.ErrGameStatus, err)

	tc.mustSend(authority, commitAction([]byte{9}), tc.vrfAddr, tc.gameAddr)
	_, err = tc.send(authority, guessAction(1), tc.gameAddr)
	require.Equal(t, vty.ErrGameStatus, err)

	tc.mustSend(authority, revealAction(proof), tc.vrfAddr, tc.gameAddr)
	tc.mustSend(authority, guessAction(1), tc.gameAddr)

	//GameComplete 之后不能再猜
	_, err = tc.send(authority, guessAction(2), tc.gameAddr)
	require.Equal(t, vty.ErrGameStatus, err)
}

func TestInitializeTwice(t *testing.T) {
	tc := newTestChain(t)
	authority := testAddr(1)

	tc.mustSend(authority, vrfInitAction(), tc.vrfAddr)
	_, err := tc.send(authority, vrfInitAction(), tc.vrfAddr)
	require.Equal(t, vty.ErrRecordInitialized, err)

	tc.mustSend(authority, gameInitAction(), tc.gameAddr)
	_, err = tc.send(authority, gameInitAction(), tc.gameAddr)
	require.Equal(t, vty.ErrRecordInitialized, err)
}

func TestRevealBeforeCommit(t *testing.T) {
	tc := newTestChain(t)
	authority := testAddr(1)
	proof := bytes.Repeat([]byte{0xff}, vty.ProofSize)

	tc.mustSend(authority, vrfInitAction(), tc.vrfAddr)
	tc.mustSend(authority, gameInitAction(), tc.gameAddr)
	_, err := tc.send(authority, revealAction(proof), tc.vrfAddr, tc.gameAddr)
	require.Equal(t, vty.ErrSeedNotCommitted, err)
}

func TestMissingSigner(t *testing.T) {
	tc := newTestChain(t)
	authority := testAddr(1)
	payload, err := vty.EncodeAction(vrfInitAction())
	require.NoError(t, err)
	call := &runtime.Call{
		From:    authority,
		Signers: []address.Address{testAddr(9)},
		Records: []address.Address{tc.vrfAddr},
		Payload: payload,
	}
	_, err = tc.exec.Exec(call)
	require.Equal(t, vty.ErrMissingSigner, err)
}

func TestRecordOwnership(t *testing.T) {
	tc := newTestChain(t)
	authority := testAddr(1)

	//别的域名下的记录
	foreign := testAddr(0xb1)
	require.NoError(t, tc.env.Alloc(foreign, testAddr(0xcc), vty.VrfStateMaxSize))
	_, err := tc.send(authority, vrfInitAction(), foreign)
	require.Equal(t, vty.ErrRecordNotOwned, err)

	//从未分配的记录
	_, err = tc.send(authority, vrfInitAction(), testAddr(0xb2))
	require.Equal(t, vty.ErrRecordNotFound, err)
}

func TestRecordCountMismatch(t *testing.T) {
	tc := newTestChain(t)
	authority := testAddr(1)

	//commit 需要 [vrf, game] 两条记录
	_, err := tc.send(authority, commitAction([]byte{1}), tc.vrfAddr)
	require.Equal(t, vty.ErrMalformedAction, err)
}

//commit 在 game 存储还是空时就地建好 game 记录
func TestCommitCreatesGameRecord(t *testing.T) {
	tc := newTestChain(t)
	authority := testAddr(1)

	tc.mustSend(authority, vrfInitAction(), tc.vrfAddr)
	tc.mustSend(authority, commitAction([]byte{5}), tc.vrfAddr, tc.gameAddr)

	game := tc.gameState()
	require.True(t, game.IsInitialized)
	require.Equal(t, authority, game.Authority)
	require.Equal(t, vty.GameStatusAwaitingRandomness, game.Status)
}

func TestSeedTooLong(t *testing.T) {
	tc := newTestChain(t)
	authority := testAddr(1)

	tc.mustSend(authority, vrfInitAction(), tc.vrfAddr)
	long := make([]byte, vty.MaxSeedSize+1)
	_, err := tc.send(authority, commitAction(long), tc.vrfAddr, tc.gameAddr)
	require.Equal(t, vty.ErrSeedTooLong, err)
}
