// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeActionVrf(t *testing.T) {
	action, err := DecodeAction([]byte{VrfDomain, 0})
	require.NoError(t, err)
	require.Equal(t, VrfActionInitialize, action.Ty)
	require.Equal(t, "vrfInitialize", action.ActionName())

	//commit: u32 小端长度 + seed
	action, err = DecodeAction([]byte{VrfDomain, 1, 2, 0, 0, 0, 0xab, 0xcd})
	require.NoError(t, err)
	require.Equal(t, VrfActionCommit, action.Ty)
	require.Equal(t, []byte{0xab, 0xcd}, action.GetCommit().Seed)

	//reveal: 64 字节 proof
	payload := append([]byte{VrfDomain, 2}, make([]byte, ProofSize)...)
	action, err = DecodeAction(payload)
	require.NoError(t, err)
	require.Equal(t, VrfActionReveal, action.Ty)
	require.Len(t, action.GetReveal().Proof, ProofSize)
}

func TestDecodeActionGame(t *testing.T) {
	action, err := DecodeAction([]byte{GameDomain, 0})
	require.NoError(t, err)
	require.Equal(t, GameActionInitialize, action.Ty)

	action, err = DecodeAction([]byte{GameDomain, 1, 55})
	require.NoError(t, err)
	require.Equal(t, GameActionGuess, action.Ty)
	require.Equal(t, uint8(55), action.GetGuess().Guess)
}

func TestDecodeActionReject(t *testing.T) {
	//未知判别值必须拒绝而不是默认分支
	_, err := DecodeAction([]byte{2, 0})
	require.Equal(t, ErrActionNotSupport, err)
	_, err = DecodeAction([]byte{VrfDomain, 9})
	require.Equal(t, ErrActionNotSupport, err)
	_, err = DecodeAction([]byte{GameDomain, 9})
	require.Equal(t, ErrActionNotSupport, err)

	//截断与多余字节
	_, err = DecodeAction(nil)
	require.Equal(t, ErrMalformedAction, err)
	_, err = DecodeAction([]byte{VrfDomain})
	require.Equal(t, ErrMalformedAction, err)
	_, err = DecodeAction([]byte{VrfDomain, 0, 1})
	require.Equal(t, ErrMalformedAction, err)
	_, err = DecodeAction([]byte{VrfDomain, 1, 5, 0, 0, 0, 1})
	require.Equal(t, ErrMalformedAction, err)
	_, err = DecodeAction([]byte{VrfDomain, 2, 1, 2, 3})
	require.Equal(t, ErrMalformedAction, err)
	_, err = DecodeAction([]byte{GameDomain, 1})
	require.Equal(t, ErrMalformedAction, err)
	_, err = DecodeAction([]byte{GameDomain, 1, 1, 2})
	require.Equal(t, ErrMalformedAction, err)
}

func TestActionWireRoundTrip(t *testing.T) {
	cases := []*VrfGameAction{
		{Domain: VrfDomain, Ty: VrfActionInitialize},
		{Domain: VrfDomain, Ty: VrfActionCommit, Commit: &VrfCommit{Seed: []byte{1, 2}}},
		{Domain: VrfDomain, Ty: VrfActionReveal, Reveal: &VrfReveal{Proof: make([]byte, ProofSize)}},
		{Domain: GameDomain, Ty: GameActionInitialize},
		{Domain: GameDomain, Ty: GameActionGuess, Guess: &GameGuess{Guess: 99}},
	}
	for _, c := range cases {
		data, err := EncodeAction(c)
		require.NoError(t, err)
		decoded, err := DecodeAction(data)
		require.NoError(t, err, c.ActionName())
		require.Equal(t, c.Domain, decoded.Domain)
		require.Equal(t, c.Ty, decoded.Ty)
		require.Equal(t, c.Commit, decoded.Commit)
		require.Equal(t, c.Reveal, decoded.Reveal)
		require.Equal(t, c.Guess, decoded.Guess)
	}
}
