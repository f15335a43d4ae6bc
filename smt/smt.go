package smt

import (
	"encoding/binary"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/solana-foundation/zk-blacklist/lib"
	"github.com/solana-foundation/zk-blacklist/lib/crypto"
)

// =====================================================
// SMT: A fixed-depth sparse Merkle tree over a 2^254
// address space, compatible with an external Poseidon
// exclusion circuit
// =====================================================
//
// 1. An identity (32 byte public key) maps to a leaf position through
//    index = hash2(low128(identity), high128(identity)); only the low
//    254 bits of the index select the path, least significant bit first.
// 2. Leaves that were never inserted hold the default value 0. Only
//    inserted leaves are materialized; an all-empty subtree of height i
//    has the precomputed root D[i], where D[0] = 0 and
//    D[i] = hash2(D[i-1], D[i-1]).
// 3. The root is recomputed on demand by folding the materialized leaf
//    map upward level by level: entries are grouped by parent index
//    (index >> 1), an even index is the left argument and an odd index
//    the right, and a missing sibling is D[level]. The left/right order
//    is a protocol constant fixed by the verifying circuit and is never
//    swapped.
// 4. A proof for an identity is the 254 sibling values met on the walk
//    from its leaf to the root, plus the value stored at the leaf
//    (0 when absent, which is exactly the exclusion case).
//
// The structure is used single threaded, batch style: callers must
// serialize inserts against root and proof queries.

const (
	// TreeDepth is the number of levels between a leaf and the root
	TreeDepth = 254
	// indexMaskBits is the number of index bits that select a path; bits
	// 254 and 255 of a leaf index are structurally irrelevant
	indexMaskBits = TreeDepth
)

// nodeIndex is a fixed-width tree position: the 254 bit index of a node
// within its level, as a little-endian 4x64 bit limb array
type nodeIndex [4]uint64

// newNodeIndex() extracts the traversal position from a leaf index field
// element, masking the structurally irrelevant top bits
func newNodeIndex(e fr.Element) (n nodeIndex) {
	b := e.Bytes() // canonical big-endian form
	for i := 0; i < 4; i++ {
		n[i] = binary.BigEndian.Uint64(b[fr.Bytes-8*(i+1) : fr.Bytes-8*i])
	}
	// keep the low 254 bits only
	n[3] &= (uint64(1) << (indexMaskBits - 192)) - 1
	return
}

// parent() returns the index of the node's parent in the level above (index >> 1)
func (n nodeIndex) parent() (p nodeIndex) {
	p[0] = n[0]>>1 | n[1]<<63
	p[1] = n[1]>>1 | n[2]<<63
	p[2] = n[2]>>1 | n[3]<<63
	p[3] = n[3] >> 1
	return
}

// sibling() returns the index of the node's sibling (parity bit flipped)
func (n nodeIndex) sibling() nodeIndex {
	n[0] ^= 1
	return n
}

// isRight() returns true if the node is the right child of its parent (odd index)
func (n nodeIndex) isRight() bool { return n[0]&1 == 1 }

// SMT is the sparse Merkle tree engine: the materialized leaf map, the
// memoized default-subtree ladder, and the hash capability they fold with
type SMT struct {
	// hasher: the two-to-one hash capability, owned since construction
	hasher crypto.PoseidonI
	// defaults: D[i] is the root of an all-empty subtree of height i
	defaults [TreeDepth + 1]fr.Element
	// leaves: the materialized (non-default) leaves, keyed by masked index
	leaves map[nodeIndex]fr.Element
}

// New() creates a tree engine, computing the default-subtree ladder once;
// it fails fast if the hash capability is missing
func New(hasher crypto.PoseidonI) (*SMT, lib.ErrorI) {
	if hasher == nil {
		return nil, ErrUninitializedHasher()
	}
	s := &SMT{
		hasher: hasher,
		leaves: make(map[nodeIndex]fr.Element),
	}
	// D[0] is the empty-leaf sentinel
	s.defaults[0].SetZero()
	// each level hashes the previous one with itself, in strict order
	for i := 1; i <= TreeDepth; i++ {
		d, err := hasher.Hash2(s.defaults[i-1], s.defaults[i-1])
		if err != nil {
			return nil, err
		}
		s.defaults[i] = d
	}
	return s, nil
}

// Index() derives the leaf index of an identity: hash2 over the identity's
// little-endian 16 byte halves
func (s *SMT) Index(identity []byte) (fr.Element, lib.ErrorI) {
	low, high, err := crypto.IdentityHalves(identity)
	if err != nil {
		return fr.Element{}, err
	}
	return s.hasher.Hash2(low, high)
}

// Insert() stores a value at the identity's leaf, overwriting any prior value
func (s *SMT) Insert(identity []byte, value fr.Element) lib.ErrorI {
	index, err := s.Index(identity)
	if err != nil {
		return err
	}
	s.leaves[newNodeIndex(index)] = value
	return nil
}

// Add() inserts the identity with the conventional blacklist marker value of 1
func (s *SMT) Add(identity []byte) lib.ErrorI {
	var one fr.Element
	one.SetOne()
	return s.Insert(identity, one)
}

// Get() returns the value stored at the identity's leaf, or 0 if never inserted
func (s *SMT) Get(identity []byte) (fr.Element, lib.ErrorI) {
	index, err := s.Index(identity)
	if err != nil {
		return fr.Element{}, err
	}
	// a missing key is the default value 0
	return s.leaves[newNodeIndex(index)], nil
}

// IsExcluded() returns true if the identity is absent from the blacklist
func (s *SMT) IsExcluded(identity []byte) (bool, lib.ErrorI) {
	value, err := s.Get(identity)
	if err != nil {
		return false, err
	}
	return value.IsZero(), nil
}

// Len() returns the number of materialized leaves
func (s *SMT) Len() int { return len(s.leaves) }

// Root() computes the current root by folding the materialized leaves
// bottom-up against the default-subtree ladder
func (s *SMT) Root() (fr.Element, lib.ErrorI) {
	// empty-tree shortcut
	if len(s.leaves) == 0 {
		return s.defaults[TreeDepth], nil
	}
	level, err := s.fold(nil)
	if err != nil {
		return fr.Element{}, err
	}
	root, ok := level[nodeIndex{}]
	if !ok {
		return s.defaults[TreeDepth], nil
	}
	return root, nil
}

// EmptyRoot() returns the root of the all-empty tree, D[254]; the known-good
// baseline used to initialize on-chain state before any entries exist
func (s *SMT) EmptyRoot() fr.Element { return s.defaults[TreeDepth] }

// DefaultHash() returns D[level], the root of an all-empty subtree of the given height
func (s *SMT) DefaultHash(level int) (fr.Element, lib.ErrorI) {
	if level < 0 || level > TreeDepth {
		return fr.Element{}, ErrInvalidLevel(level)
	}
	return s.defaults[level], nil
}

// fold() runs the level-by-level recomputation from the leaf map to the top.
// If onLevel is non nil it is invoked with each level's node map before that
// level is folded, letting proof generation observe siblings along the way
func (s *SMT) fold(onLevel func(level int, nodes map[nodeIndex]fr.Element)) (map[nodeIndex]fr.Element, lib.ErrorI) {
	// start from a copy of the materialized leaves so queries never mutate state
	level := make(map[nodeIndex]fr.Element, len(s.leaves))
	for index, value := range s.leaves {
		level[index] = value
	}
	for depth := 0; depth < TreeDepth; depth++ {
		if onLevel != nil {
			onLevel(depth, level)
		}
		next := make(map[nodeIndex]fr.Element, (len(level)+1)/2)
		for index, value := range level {
			parent := index.parent()
			// both children group under one parent; hash the pair exactly once
			if _, done := next[parent]; done {
				continue
			}
			sibling, ok := level[index.sibling()]
			if !ok {
				sibling = s.defaults[depth]
			}
			// even index = left argument, odd = right; fixed by the circuit
			left, right := value, sibling
			if index.isRight() {
				left, right = sibling, value
			}
			combined, err := s.hasher.Hash2(left, right)
			if err != nil {
				return nil, err
			}
			next[parent] = combined
		}
		level = next
	}
	return level, nil
}
