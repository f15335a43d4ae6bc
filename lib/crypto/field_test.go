package crypto

import (
	"bytes"
	"math/big"
	"strings"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/solana-foundation/zk-blacklist/lib"
	"github.com/stretchr/testify/require"
)

func TestIdentityHalvesLittleEndian(t *testing.T) {
	// byte 0 is the least significant byte of the low half
	identity := make([]byte, IdentitySize)
	identity[0] = 1
	low, high, err := IdentityHalves(identity)
	require.NoError(t, err)
	one := fr.NewElement(1)
	require.True(t, low.Equal(&one))
	require.True(t, high.IsZero())
	// byte 16 is the least significant byte of the high half
	identity = make([]byte, IdentitySize)
	identity[16] = 1
	low, high, err = IdentityHalves(identity)
	require.NoError(t, err)
	require.True(t, low.IsZero())
	require.True(t, high.Equal(&one))
	// byte 15 is the most significant byte of the low half: value 2^120
	identity = make([]byte, IdentitySize)
	identity[15] = 1
	low, _, err = IdentityHalves(identity)
	require.NoError(t, err)
	var want fr.Element
	want.SetBigInt(new(big.Int).Lsh(big.NewInt(1), 120))
	require.True(t, low.Equal(&want))
	// the all-zero identity maps to two zero halves
	low, high, err = IdentityHalves(make([]byte, IdentitySize))
	require.NoError(t, err)
	require.True(t, low.IsZero())
	require.True(t, high.IsZero())
}

func TestIdentityHalvesLengthRejected(t *testing.T) {
	for _, size := range []int{0, 16, 31, 33} {
		_, _, err := IdentityHalves(make([]byte, size))
		require.Error(t, err)
		require.Equal(t, lib.CodeInvalidIdentityLength, err.Code())
		require.Equal(t, lib.CryptoModule, err.Module())
	}
}

func TestFieldHexEncoding(t *testing.T) {
	e := fr.NewElement(255)
	encoded := FieldToHex(e)
	// 0x-prefixed, 64 lowercase hex characters, zero padded
	require.Len(t, encoded, 2+2*FieldSize)
	require.True(t, strings.HasPrefix(encoded, "0x"))
	require.Equal(t, strings.ToLower(encoded), encoded)
	require.Equal(t, "0x"+strings.Repeat("0", 62)+"ff", encoded)
	// round trip, with and without the prefix
	decoded, err := FieldFromHex(encoded)
	require.NoError(t, err)
	require.True(t, decoded.Equal(&e))
	decoded, err = FieldFromHex(strings.TrimPrefix(encoded, "0x"))
	require.NoError(t, err)
	require.True(t, decoded.Equal(&e))
	// garbage and oversize strings are rejected
	_, err = FieldFromHex("0xzz")
	require.Error(t, err)
	_, err = FieldFromHex("0x" + strings.Repeat("00", FieldSize+1))
	require.Error(t, err)
}

func TestFieldBytes(t *testing.T) {
	e := fr.NewElement(0x0102)
	bz := FieldBytes(e)
	// the fixed 32 byte big-endian on-chain buffer
	require.Len(t, bz, FieldSize)
	require.Equal(t, byte(0x01), bz[FieldSize-2])
	require.Equal(t, byte(0x02), bz[FieldSize-1])
	require.True(t, bytes.Equal(bz[:FieldSize-2], make([]byte, FieldSize-2)))
	// hex decoding the canonical hex form yields the same buffer
	expected, err := lib.StringToBytes(strings.TrimPrefix(FieldToHex(e), "0x"))
	require.NoError(t, err)
	require.Equal(t, expected, bz)
}

func TestFieldDecimalEncoding(t *testing.T) {
	e := fr.NewElement(12345)
	require.Equal(t, "12345", FieldToDecimal(e))
	decoded, err := FieldFromDecimal("12345")
	require.NoError(t, err)
	require.True(t, decoded.Equal(&e))
	// values are reduced into the field
	modulus := fr.Modulus()
	decoded, err = FieldFromDecimal(new(big.Int).Add(modulus, big.NewInt(3)).String())
	require.NoError(t, err)
	three := fr.NewElement(3)
	require.True(t, decoded.Equal(&three))
	// malformed decimals are rejected
	for _, s := range []string{"", "12a", "-1", "0x10"} {
		_, err = FieldFromDecimal(s)
		require.Error(t, err)
	}
}

func TestIdentityStringRoundTrip(t *testing.T) {
	identity := bytes.Repeat([]byte{0x42}, IdentitySize)
	encoded := IdentityToString(identity)
	decoded, err := IdentityFromString(encoded)
	require.NoError(t, err)
	require.Equal(t, identity, decoded)
	// the 0x hex form is also accepted
	decoded, err = IdentityFromString("0x" + strings.Repeat("42", IdentitySize))
	require.NoError(t, err)
	require.Equal(t, identity, decoded)
	// wrong length and malformed encodings are rejected
	_, err = IdentityFromString("0x42")
	require.Error(t, err)
	require.Equal(t, lib.CodeInvalidIdentityLength, err.Code())
	_, err = IdentityFromString("not base58 at all!!")
	require.Error(t, err)
	require.Equal(t, lib.CodeInvalidIdentityEncoding, err.Code())
}
