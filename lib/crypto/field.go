package crypto

import (
	"encoding/hex"
	"math/big"
	"strings"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/mr-tron/base58"
	"github.com/solana-foundation/zk-blacklist/lib"
)

const (
	// IdentitySize is the exact byte length of an identity (a 32 byte public key)
	IdentitySize = 32
	// FieldSize is the byte length of a big-endian encoded field element
	FieldSize = fr.Bytes
)

/*
	All tree values, hashes, and indices are elements of the BN254 scalar field.
	The encodings below are a wire contract with the external proving toolchain and
	the on-chain verifier: hex is 0x-prefixed, 64 lowercase characters, zero padded;
	decimal strings carry the canonical reduced value; the on-chain root is the
	fixed 32 byte big-endian buffer of the element.
*/

// IdentityHalves() splits a 32 byte identity into two field elements: the low and high
// 16 byte halves, each reinterpreted as an unsigned little-endian integer
func IdentityHalves(identity []byte) (low, high fr.Element, err lib.ErrorI) {
	if len(identity) != IdentitySize {
		return low, high, ErrInvalidIdentityLength(len(identity))
	}
	var buf [16]byte
	// reverse each half into big-endian for SetBytes
	for i := 0; i < 16; i++ {
		buf[i] = identity[15-i]
	}
	low.SetBytes(buf[:])
	for i := 0; i < 16; i++ {
		buf[i] = identity[31-i]
	}
	high.SetBytes(buf[:])
	return
}

// IdentityFromString() decodes a 32 byte identity from its base58 form (the native
// public key encoding) or from a 0x-prefixed hex string
func IdentityFromString(s string) ([]byte, lib.ErrorI) {
	var (
		identity []byte
		err      error
	)
	if strings.HasPrefix(s, "0x") {
		identity, err = hex.DecodeString(strings.TrimPrefix(s, "0x"))
	} else {
		identity, err = base58.Decode(s)
	}
	if err != nil {
		return nil, ErrInvalidIdentityEncoding(err)
	}
	if len(identity) != IdentitySize {
		return nil, ErrInvalidIdentityLength(len(identity))
	}
	return identity, nil
}

// IdentityToString() encodes a 32 byte identity into its base58 form
func IdentityToString(identity []byte) string {
	return base58.Encode(identity)
}

// FieldToHex() encodes a field element into its canonical 0x-prefixed,
// zero padded, lowercase hex form
func FieldToHex(e fr.Element) string {
	b := e.Bytes()
	return "0x" + hex.EncodeToString(b[:])
}

// FieldToDecimal() encodes a field element into the decimal string of its
// canonical reduced value
func FieldToDecimal(e fr.Element) string {
	return e.BigInt(new(big.Int)).String()
}

// FieldBytes() encodes a field element into the fixed 32 byte big-endian
// buffer stored on-chain
func FieldBytes(e fr.Element) []byte {
	b := e.Bytes()
	return b[:]
}

// FieldFromHex() decodes a field element from a hex string with an optional 0x prefix
func FieldFromHex(s string) (e fr.Element, err lib.ErrorI) {
	bz, er := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if er != nil || len(bz) > FieldSize {
		return e, ErrInvalidFieldString(s)
	}
	e.SetBytes(bz)
	return
}

// FieldFromDecimal() decodes a field element from a decimal string
func FieldFromDecimal(s string) (e fr.Element, err lib.ErrorI) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok || v.Sign() < 0 {
		return e, ErrInvalidFieldString(s)
	}
	e.SetBigInt(v)
	return
}
