package felt

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/stark-curve/fp"
	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnmarshalJson(t *testing.T) {
	var with Felt
	assert.NoError(t, with.UnmarshalJSON([]byte("0x4437ab")))

	var without Felt
	assert.NoError(t, without.UnmarshalJSON([]byte("4437ab")))
	assert.Equal(t, true, without.Equal(&with))

	var quoted Felt
	assert.NoError(t, quoted.UnmarshalJSON([]byte(`"0x4437ab"`)))
	assert.Equal(t, true, quoted.Equal(&with))
}

func TestMarshalJson(t *testing.T) {
	var f Felt
	f.SetUint64(255)
	got, err := f.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"0xff"`, string(got))
}

func TestFeltCbor(t *testing.T) {
	var val Felt
	_, err := val.SetRandom()
	require.NoError(t, err)

	bytes, err := cbor.Marshal(&val)
	require.NoError(t, err)

	var unmarshaledFelt Felt
	require.NoError(t, cbor.Unmarshal(bytes, &unmarshaledFelt))
	assert.Equal(t, val, unmarshaledFelt)
}

func TestSetBytesCanonical(t *testing.T) {
	var f Felt
	f.SetUint64(255)
	b := f.Bytes()

	var got Felt
	require.NoError(t, got.SetBytesCanonical(b[:]))
	assert.Equal(t, true, got.Equal(&f))

	assert.Error(t, got.SetBytesCanonical(b[1:]), "short buffer")

	modulus := make([]byte, Bytes)
	fp.Modulus().FillBytes(modulus)
	assert.Error(t, got.SetBytesCanonical(modulus), "field order is out of range")
}

func TestString(t *testing.T) {
	var f Felt
	f.SetUint64(255)
	assert.Equal(t, "0xff", f.String())
	assert.Equal(t, "255", f.Text(10))
}

func TestBitLen(t *testing.T) {
	var f Felt
	assert.Equal(t, 0, f.BitLen())
	f.SetUint64(255)
	assert.Equal(t, 8, f.BitLen())
	f.SetUint64(256)
	assert.Equal(t, 9, f.BitLen())
}
