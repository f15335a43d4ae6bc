package crypto

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/iden3/go-iden3-crypto/poseidon"
	"github.com/solana-foundation/zk-blacklist/lib"
)

/*
	PoseidonI is the two-to-one compression capability the tree folds with. It is a
	deterministic pure function of its inputs; argument order matters and is part of
	the protocol fixed by the external verifying circuit. The capability is owned by
	the engine at construction rather than held as ambient global state, so an
	uninitialized hasher is impossible to reach once an engine exists.
*/

// PoseidonI is the hash oracle interface consumed by the tree
type PoseidonI interface {
	// Hash2() compresses two field elements into one; order of arguments matters
	Hash2(left, right fr.Element) (fr.Element, lib.ErrorI)
}

var _ PoseidonI = &Poseidon{} // Ensures *Poseidon implements PoseidonI

// Poseidon is the circom-compatible BN254 Poseidon permutation (the same
// parameter set the on-chain verifier re-derives roots with)
type Poseidon struct{}

// NewPoseidon() returns the production two-to-one hash capability
func NewPoseidon() PoseidonI { return &Poseidon{} }

// Hash2() compresses two field elements with the 2-input Poseidon permutation
func (p *Poseidon) Hash2(left, right fr.Element) (out fr.Element, err lib.ErrorI) {
	l, r := new(big.Int), new(big.Int)
	left.BigInt(l)
	right.BigInt(r)
	h, e := poseidon.Hash([]*big.Int{l, r})
	if e != nil {
		return out, ErrHash(e)
	}
	out.SetBigInt(h)
	return
}
