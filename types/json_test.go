package types_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NethermindEth/cairotypes/types"
)

func TestUnmarshalFlexibleForms(t *testing.T) {
	tests := []struct {
		description string
		document    string
	}{
		{"hex string", `"0xff"`},
		{"upper case hex string", `"0XFF"`},
		{"decimal string", `"255"`},
		{"bare number", `255`},
	}

	want := new(types.Uint256).SetUint64(255)
	for _, test := range tests {
		t.Run(test.description, func(t *testing.T) {
			var got types.Uint256
			require.NoError(t, json.Unmarshal([]byte(test.document), &got))
			assert.True(t, want.Equal(&got))
		})
	}
}

func TestUnmarshalWideNumber(t *testing.T) {
	// 2^100 does not fit any machine integer and must survive as a bare
	// JSON number.
	var got types.Uint256
	require.NoError(t, json.Unmarshal([]byte(`1267650600228229401496703205376`), &got))

	want, err := new(types.Uint256).SetString("0x10000000000000000000000000")
	require.NoError(t, err)
	assert.True(t, want.Equal(&got))
}

func TestUnmarshalRejectsShapes(t *testing.T) {
	documents := []struct {
		description string
		document    string
	}{
		{"null", `null`},
		{"true", `true`},
		{"false", `false`},
		{"object", `{"value": "0x1"}`},
		{"array", `["0x1"]`},
	}

	targets := []struct {
		description string
		value       json.Unmarshaler
	}{
		{"felt", new(types.Felt)},
		{"uint256", new(types.Uint256)},
		{"uint256 in 32-bit limbs", new(types.Uint256Bits32)},
		{"uint384", new(types.Uint384)},
	}

	for _, doc := range documents {
		for _, target := range targets {
			t.Run(doc.description+" into "+target.description, func(t *testing.T) {
				err := target.value.UnmarshalJSON([]byte(doc.document))
				assert.ErrorIs(t, err, types.ErrUnsupportedJSONShape)
			})
		}
	}
}

func TestUnmarshalBadNumbers(t *testing.T) {
	var u types.Uint256

	assert.ErrorIs(t, u.UnmarshalJSON([]byte(`-5`)), types.ErrMalformedNumber)
	assert.ErrorIs(t, u.UnmarshalJSON([]byte(`1.5`)), types.ErrMalformedNumber)
	assert.ErrorIs(t, u.UnmarshalJSON([]byte(`1e3`)), types.ErrMalformedNumber)
	assert.ErrorIs(t, u.UnmarshalJSON([]byte(`"0xzz"`)), types.ErrMalformedNumber)
	assert.ErrorIs(t, u.UnmarshalJSON([]byte(`""`)), types.ErrMalformedNumber)
}

func TestUnmarshalOutOfRange(t *testing.T) {
	var u types.Uint256
	err := u.UnmarshalJSON([]byte(`"0x1` + strings.Repeat("0", 64) + `"`))
	assert.ErrorIs(t, err, types.ErrValueOutOfRange)
}

func TestMarshalCanonical(t *testing.T) {
	f := new(types.Felt).SetUint64(255)
	got, err := json.Marshal(f)
	require.NoError(t, err)
	assert.Equal(t, `"0x`+strings.Repeat("0", 62)+`ff"`, string(got))

	w := new(types.Uint384).SetUint64(255)
	got, err = json.Marshal(w)
	require.NoError(t, err)
	assert.Equal(t, `"0x`+strings.Repeat("0", 94)+`ff"`, string(got))
}

func TestMarshalJSONRoundTrip(t *testing.T) {
	value, err := new(types.Uint256).SetString("0xdeadbeef")
	require.NoError(t, err)

	doc, err := json.Marshal(value)
	require.NoError(t, err)

	var back types.Uint256
	require.NoError(t, json.Unmarshal(doc, &back))
	assert.True(t, value.Equal(&back))
}

func TestUnmarshalSlice(t *testing.T) {
	values, err := types.UnmarshalSlice[types.Felt]([]byte(`["0x1a2b3c", 123, "999"]`))
	require.NoError(t, err)
	require.Len(t, values, 3)

	assert.Equal(t, "0x1a2b3c", "0x"+values[0].Impl().Text(16))
	assert.Equal(t, "123", values[1].Impl().Text(10))
	assert.Equal(t, "999", values[2].Impl().Text(10))
}

func TestUnmarshalSliceElementError(t *testing.T) {
	_, err := types.UnmarshalSlice[types.Felt]([]byte(`["0x1a2b3c", 123, "9z9"]`))
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrMalformedNumber)
	assert.Contains(t, err.Error(), "element 2")
}

func TestUnmarshalSliceShape(t *testing.T) {
	_, err := types.UnmarshalSlice[types.Uint256]([]byte(`"0x1"`))
	assert.ErrorIs(t, err, types.ErrUnsupportedJSONShape)

	_, err = types.UnmarshalSlice[types.Uint256]([]byte(`null`))
	assert.ErrorIs(t, err, types.ErrUnsupportedJSONShape)

	_, err = types.UnmarshalSlice[types.Uint256]([]byte(`{"a": 1}`))
	assert.ErrorIs(t, err, types.ErrUnsupportedJSONShape)
}

func TestUnmarshalSliceEmpty(t *testing.T) {
	values, err := types.UnmarshalSlice[types.Uint384]([]byte(`[]`))
	require.NoError(t, err)
	assert.Empty(t, values)
}

func TestMarshalSlice(t *testing.T) {
	values := []types.Uint256{
		*new(types.Uint256).SetUint64(1),
		*new(types.Uint256).SetUint64(255),
	}

	doc, err := json.Marshal(values)
	require.NoError(t, err)
	assert.JSONEq(t, `[
		"0x0000000000000000000000000000000000000000000000000000000000000001",
		"0x00000000000000000000000000000000000000000000000000000000000000ff"
	]`, string(doc))
}

func TestKeccakBytesJSON(t *testing.T) {
	var kb types.KeccakBytes
	require.NoError(t, json.Unmarshal([]byte(`"0x1a2b3c"`), &kb))
	assert.Equal(t, types.KeccakBytes{0x1a, 0x2b, 0x3c}, kb)

	doc, err := json.Marshal(kb)
	require.NoError(t, err)
	assert.Equal(t, `"0x1a2b3c"`, string(doc))

	assert.ErrorIs(t, kb.UnmarshalJSON([]byte(`123`)), types.ErrUnsupportedJSONShape)
	assert.ErrorIs(t, kb.UnmarshalJSON([]byte(`null`)), types.ErrUnsupportedJSONShape)
}
