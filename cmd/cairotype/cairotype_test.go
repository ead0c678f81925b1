package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	cairotype "github.com/NethermindEth/cairotypes/cmd/cairotype"
	"github.com/NethermindEth/cairotypes/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()

	b := new(bytes.Buffer)
	cmd := cairotype.NewCmd()
	cmd.SetOut(b)
	cmd.SetErr(new(bytes.Buffer))
	if args == nil {
		// A nil argument list makes cobra fall back to os.Args.
		args = []string{}
	}
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return b.String(), err
}

func tempCfgFile(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "cairotype.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestCanonicalOutput(t *testing.T) {
	tests := map[string]struct {
		args     []string
		expected string
	}{
		"default felt hex": {
			args:     []string{"0x1a"},
			expected: "0x" + strings.Repeat("0", 62) + "1a\n",
		},
		"default felt decimal": {
			args:     []string{"26"},
			expected: "0x" + strings.Repeat("0", 62) + "1a\n",
		},
		"uint256": {
			args:     []string{"--type", "uint256", "0xff"},
			expected: "0x" + strings.Repeat("0", 62) + "ff\n",
		},
		"uint256b32": {
			args:     []string{"--type", "uint256b32", "255"},
			expected: "0x" + strings.Repeat("0", 62) + "ff\n",
		},
		"uint384": {
			args:     []string{"--type", "uint384", "255"},
			expected: "0x" + strings.Repeat("0", 94) + "ff\n",
		},
		"keccak is not padded": {
			args:     []string{"--type", "keccak", "0xdeadbeef"},
			expected: "0xdeadbeef\n",
		},
		"multiple arguments": {
			args: []string{"1", "2"},
			expected: "0x" + strings.Repeat("0", 63) + "1\n" +
				"0x" + strings.Repeat("0", 63) + "2\n",
		},
		"json string document": {
			args:     []string{"--json", `"0x1a"`},
			expected: "0x" + strings.Repeat("0", 62) + "1a\n",
		},
		"json number document": {
			args:     []string{"--json", "26"},
			expected: "0x" + strings.Repeat("0", 62) + "1a\n",
		},
		"json array document": {
			args: []string{"--json", `[1, "0x2", "3"]`},
			expected: "0x" + strings.Repeat("0", 63) + "1\n" +
				"0x" + strings.Repeat("0", 63) + "2\n" +
				"0x" + strings.Repeat("0", 63) + "3\n",
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			out, err := executeCmd(t, test.args...)
			require.NoError(t, err)
			assert.Equal(t, test.expected, out)
		})
	}
}

func TestLimbsOutput(t *testing.T) {
	t.Run("uint256", func(t *testing.T) {
		// 2**128 + 5 splits into low and high limbs.
		out, err := executeCmd(t, "--type", "uint256", "--limbs",
			"0x"+"1"+strings.Repeat("0", 31)+"5")
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
		require.Len(t, lines, 3)
		assert.Equal(t, "[0:0] 0x5", lines[1])
		assert.Equal(t, "[0:1] 0x1", lines[2])
	})

	t.Run("keccak writes a fresh segment behind a pointer", func(t *testing.T) {
		out, err := executeCmd(t, "--type", "keccak", "--limbs", "0x0102030405060708090a")
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
		require.Len(t, lines, 4)
		assert.Equal(t, "0x0102030405060708090a", lines[0])
		assert.Equal(t, "[0:0] ptr(1:0)", lines[1])
		assert.Equal(t, "[1:0] 0x807060504030201", lines[2])
		assert.Equal(t, "[1:1] 0xa09", lines[3])
	})
}

func TestCBOROutput(t *testing.T) {
	out, err := executeCmd(t, "--cbor", "0x1a")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 2)
	// Byte string of length 32: header 0x58 0x20 then the canonical bytes.
	assert.Equal(t, "cbor: 5820"+strings.Repeat("00", 31)+"1a", lines[1])
}

func TestConfigFile(t *testing.T) {
	t.Run("config file sets the type", func(t *testing.T) {
		path := tempCfgFile(t, "type: uint384\n")

		out, err := executeCmd(t, "--config", path, "255")
		require.NoError(t, err)
		assert.Equal(t, "0x"+strings.Repeat("0", 94)+"ff\n", out)
	})

	t.Run("flag overrides config file", func(t *testing.T) {
		path := tempCfgFile(t, "type: uint384\n")

		out, err := executeCmd(t, "--config", path, "--type", "felt", "255")
		require.NoError(t, err)
		assert.Equal(t, "0x"+strings.Repeat("0", 62)+"ff\n", out)
	})

	t.Run("config file sets the log level", func(t *testing.T) {
		path := tempCfgFile(t, "log-level: error\n")

		_, err := executeCmd(t, "--config", path, "1")
		require.NoError(t, err)
	})

	t.Run("config file does not exist", func(t *testing.T) {
		_, err := executeCmd(t, "--config", "missing-config.yaml", "1")
		require.Error(t, err)
	})
}

func TestArgumentErrors(t *testing.T) {
	t.Run("no arguments", func(t *testing.T) {
		_, err := executeCmd(t)
		require.Error(t, err)
	})

	t.Run("unknown type", func(t *testing.T) {
		_, err := executeCmd(t, "--type", "int8", "1")
		require.ErrorContains(t, err, "unknown type")
	})

	t.Run("malformed number", func(t *testing.T) {
		_, err := executeCmd(t, "zz")
		require.ErrorIs(t, err, types.ErrMalformedNumber)
	})

	t.Run("out of range", func(t *testing.T) {
		_, err := executeCmd(t, "--type", "uint256", "0x1"+strings.Repeat("0", 64))
		require.ErrorIs(t, err, types.ErrValueOutOfRange)
	})

	t.Run("json array element error names the element", func(t *testing.T) {
		_, err := executeCmd(t, "--json", `["1", "zz"]`)
		require.ErrorIs(t, err, types.ErrMalformedNumber)
		require.ErrorContains(t, err, "element 1")
	})

	t.Run("json array rejected without json flag", func(t *testing.T) {
		_, err := executeCmd(t, `[1, 2]`)
		require.ErrorIs(t, err, types.ErrMalformedNumber)
	})

	t.Run("unknown log level", func(t *testing.T) {
		_, err := executeCmd(t, "--log-level", "blah", "1")
		require.Error(t, err)
	})
}
