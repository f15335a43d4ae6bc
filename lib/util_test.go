package lib

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHexBytesJSONRoundTrip(t *testing.T) {
	original := HexBytes{0x00, 0x01, 0xAB, 0xFF}
	bz, err := json.Marshal(original)
	require.NoError(t, err)
	require.Equal(t, `"0001abff"`, string(bz))
	var decoded HexBytes
	require.NoError(t, json.Unmarshal(bz, &decoded))
	require.Equal(t, original, decoded)
}

func TestStringToBytes(t *testing.T) {
	bz, err := StringToBytes("abcd")
	require.NoError(t, err)
	require.Equal(t, []byte{0xAB, 0xCD}, bz)
	_, err = StringToBytes("not hex")
	require.Error(t, err)
	require.Equal(t, CodeStringToBytes, err.Code())
}

func TestJSONFileRoundTrip(t *testing.T) {
	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}
	dir := t.TempDir()
	saved := payload{Name: "test", Count: 3}
	require.NoError(t, SaveJSONToFile(saved, dir, "payload.json"))
	var loaded payload
	require.NoError(t, NewJSONFromFile(&loaded, dir, "payload.json"))
	require.Equal(t, saved, loaded)
	// a missing file surfaces a read error
	require.Error(t, NewJSONFromFile(&loaded, dir, "missing.json"))
}
