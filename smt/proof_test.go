package smt

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/solana-foundation/zk-blacklist/lib"
	"github.com/stretchr/testify/require"
)

func TestExclusionRoundTrip(t *testing.T) {
	tree := newTestTree(t)
	for _, b := range []byte{0x01, 0x02, 0x03, 0x04, 0x05} {
		require.NoError(t, tree.Add(ident(b)))
	}
	root, err := tree.Root()
	require.NoError(t, err)
	// 0x99 was never inserted
	proof, err := tree.MerkleProof(ident(0x99))
	require.NoError(t, err)
	require.True(t, proof.LeafValue.IsZero())
	require.Len(t, proof.Siblings, TreeDepth)
	ok, err := VerifyProof(proof, root, testHasher{})
	require.NoError(t, err)
	require.True(t, ok)
}

func TestInclusionRoundTrip(t *testing.T) {
	tree := newTestTree(t)
	require.NoError(t, tree.Insert(ident(0x07), fr.NewElement(42)))
	require.NoError(t, tree.Add(ident(0x08)))
	root, err := tree.Root()
	require.NoError(t, err)
	proof, err := tree.MerkleProof(ident(0x07))
	require.NoError(t, err)
	fortyTwo := fr.NewElement(42)
	require.True(t, proof.LeafValue.Equal(&fortyTwo))
	ok, err := VerifyProof(proof, root, testHasher{})
	require.NoError(t, err)
	require.True(t, ok)
	// the proof is bound to the current root, not an older one
	require.NoError(t, tree.Add(ident(0x09)))
	newRoot, err := tree.Root()
	require.NoError(t, err)
	ok, err = VerifyProof(proof, newRoot, testHasher{})
	require.NoError(t, err)
	require.False(t, ok)
}

func TestEmptyTreeProof(t *testing.T) {
	tree := newTestTree(t)
	proof, err := tree.MerkleProof(ident(0xEE))
	require.NoError(t, err)
	require.True(t, proof.LeafValue.IsZero())
	// an empty tree's proof folds to the empty root through the ladder alone
	ok, err := VerifyProof(proof, tree.EmptyRoot(), testHasher{})
	require.NoError(t, err)
	require.True(t, ok)
}

func TestProofDetectsTamperedLeaf(t *testing.T) {
	tree := newTestTree(t)
	require.NoError(t, tree.Add(ident(0x07)))
	root, err := tree.Root()
	require.NoError(t, err)
	proof, err := tree.MerkleProof(ident(0x07))
	require.NoError(t, err)
	// claiming exclusion for an inserted identity must not verify
	proof.LeafValue.SetZero()
	ok, err := VerifyProof(proof, root, testHasher{})
	require.NoError(t, err)
	require.False(t, ok)
}

// TestSwappedOrderChangesRoot proves the combination step does not commute:
// folding the same siblings with left and right arguments exchanged at every
// level produces a different root
func TestSwappedOrderChangesRoot(t *testing.T) {
	tree := newTestTree(t)
	require.NoError(t, tree.Add(ident(0x07)))
	root, err := tree.Root()
	require.NoError(t, err)
	proof, err := tree.MerkleProof(ident(0x07))
	require.NoError(t, err)
	computed := proof.LeafValue
	position := newNodeIndex(proof.Index)
	for _, sibling := range proof.Siblings {
		// deliberately inverted: even position hashed as the right argument
		left, right := sibling, computed
		if position.isRight() {
			left, right = computed, sibling
		}
		computed, err = testHasher{}.Hash2(left, right)
		require.NoError(t, err)
		position = position.parent()
	}
	require.False(t, computed.Equal(&root))
}

func TestVerifyProofPreconditions(t *testing.T) {
	tree := newTestTree(t)
	root, err := tree.Root()
	require.NoError(t, err)
	proof, err := tree.MerkleProof(ident(0x01))
	require.NoError(t, err)
	// nil hasher
	_, err = VerifyProof(proof, root, nil)
	require.Error(t, err)
	require.Equal(t, lib.CodeUninitializedHasher, err.Code())
	// nil proof
	_, err = VerifyProof(nil, root, testHasher{})
	require.Error(t, err)
	require.Equal(t, lib.CodeNilProof, err.Code())
	// truncated sibling path
	proof.Siblings = proof.Siblings[:TreeDepth-1]
	_, err = VerifyProof(proof, root, testHasher{})
	require.Error(t, err)
	require.Equal(t, lib.CodeInvalidProofLength, err.Code())
}
