package crypto

import (
	"fmt"

	"github.com/solana-foundation/zk-blacklist/lib"
)

func ErrInvalidIdentityLength(got int) lib.ErrorI {
	return lib.NewError(lib.CodeInvalidIdentityLength, lib.CryptoModule, fmt.Sprintf("identity must be exactly %d bytes, got %d", IdentitySize, got))
}

func ErrInvalidIdentityEncoding(err error) lib.ErrorI {
	return lib.NewError(lib.CodeInvalidIdentityEncoding, lib.CryptoModule, fmt.Sprintf("identityFromString() failed with err: %s", err.Error()))
}

func ErrHash(err error) lib.ErrorI {
	return lib.NewError(lib.CodeHash, lib.CryptoModule, fmt.Sprintf("hash2() failed with err: %s", err.Error()))
}

func ErrInvalidFieldString(s string) lib.ErrorI {
	return lib.NewError(lib.CodeInvalidFieldString, lib.CryptoModule, fmt.Sprintf("%q is not a valid field element encoding", s))
}
