package smt

import (
	"fmt"

	"github.com/solana-foundation/zk-blacklist/lib"
)

func ErrUninitializedHasher() lib.ErrorI {
	return lib.NewError(lib.CodeUninitializedHasher, lib.TreeModule, "the hash capability is not initialized")
}

func ErrInvalidProofLength(got int) lib.ErrorI {
	return lib.NewError(lib.CodeInvalidProofLength, lib.TreeModule, fmt.Sprintf("a proof must have exactly %d siblings, got %d", TreeDepth, got))
}

func ErrNilProof() lib.ErrorI {
	return lib.NewError(lib.CodeNilProof, lib.TreeModule, "the proof is nil")
}

func ErrInvalidLevel(level int) lib.ErrorI {
	return lib.NewError(lib.CodeInvalidLevel, lib.TreeModule, fmt.Sprintf("level %d is outside the tree [0, %d]", level, TreeDepth))
}
