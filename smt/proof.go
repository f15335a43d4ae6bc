package smt

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/solana-foundation/zk-blacklist/lib"
	"github.com/solana-foundation/zk-blacklist/lib/crypto"
)

// Proof is a sibling path for one identity: the hashes adjacent to each node
// on the walk from the identity's leaf up to the root, ordered leaf to root,
// plus the value actually stored at the leaf (0 when absent, the exclusion case)
type Proof struct {
	// Index: the full leaf index field element (the circuit's public pubkey hash)
	Index fr.Element `json:"index"`
	// Siblings: one sibling hash per level, ordered leaf to root
	Siblings []fr.Element `json:"siblings"`
	// LeafValue: the value at the identity's leaf; 0 proves exclusion
	LeafValue fr.Element `json:"leafValue"`
}

// MerkleProof() generates the sibling path for an identity against the current
// tree state; it succeeds on any state, including the empty tree
func (s *SMT) MerkleProof(identity []byte) (*Proof, lib.ErrorI) {
	index, err := s.Index(identity)
	if err != nil {
		return nil, err
	}
	target := newNodeIndex(index)
	proof := &Proof{
		Index:    index,
		Siblings: make([]fr.Element, TreeDepth),
		// a missing key is the default value 0
		LeafValue: s.leaves[target],
	}
	// rerun the root fold, retaining the target's sibling at each level
	if _, err = s.fold(func(level int, nodes map[nodeIndex]fr.Element) {
		sibling, ok := nodes[target.sibling()]
		if !ok {
			sibling = s.defaults[level]
		}
		proof.Siblings[level] = sibling
		target = target.parent()
	}); err != nil {
		return nil, err
	}
	return proof, nil
}

// VerifyProof() recomputes the root from a leaf value and its sibling path the
// same way the external circuit does: at each level the path bit decides the
// argument order, left for an even position and right for an odd one
func VerifyProof(proof *Proof, root fr.Element, hasher crypto.PoseidonI) (bool, lib.ErrorI) {
	if hasher == nil {
		return false, ErrUninitializedHasher()
	}
	if proof == nil {
		return false, ErrNilProof()
	}
	if len(proof.Siblings) != TreeDepth {
		return false, ErrInvalidProofLength(len(proof.Siblings))
	}
	computed := proof.LeafValue
	position := newNodeIndex(proof.Index)
	for _, sibling := range proof.Siblings {
		left, right := computed, sibling
		if position.isRight() {
			left, right = sibling, computed
		}
		next, err := hasher.Hash2(left, right)
		if err != nil {
			return false, err
		}
		computed = next
		position = position.parent()
	}
	return computed.Equal(&root), nil
}
