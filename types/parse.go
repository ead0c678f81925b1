package types

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"
)

// ParseBig parses the flexible textual form shared by all value types:
// either 0x or 0X prefixed hexadecimal, or plain decimal. Hex digits may be
// grouped with underscores. Signs, fractions, exponents and any other base
// prefix are rejected with ErrMalformedNumber.
func ParseBig(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		return nil, fmt.Errorf("%w: signed value %q", ErrMalformedNumber, s)
	}

	if rest, ok := trimHexPrefix(s); ok {
		rest = strings.ReplaceAll(rest, "_", "")
		if rest == "" {
			return nil, fmt.Errorf("%w: empty hex string %q", ErrMalformedNumber, s)
		}
		v, ok := new(big.Int).SetString(rest, 16)
		if !ok {
			return nil, fmt.Errorf("%w: invalid hex string %q", ErrMalformedNumber, s)
		}
		return v, nil
	}

	if s == "" {
		return nil, fmt.Errorf("%w: empty string", ErrMalformedNumber)
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("%w: invalid decimal string %q", ErrMalformedNumber, s)
	}
	return v, nil
}

func trimHexPrefix(s string) (string, bool) {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return s[2:], true
	}
	return s, false
}

// hexBytes decodes a hex string of any length into bytes. The 0x prefix is
// optional, underscores are dropped and an odd digit count is padded with a
// leading zero nibble.
func hexBytes(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	s, _ = trimHexPrefix(s)
	s = strings.ReplaceAll(s, "_", "")
	if len(s)%2 == 1 {
		s = "0" + s
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedNumber, err)
	}
	return b, nil
}

// setString parses s and installs the result into v, enforcing v's width.
func setString(v Value, s string) error {
	n, err := ParseBig(s)
	if err != nil {
		return err
	}
	return setBig(v, n)
}

// setBig installs a non-negative integer into v. An integer whose minimal
// big-endian form is wider than v fails with ErrValueOutOfRange.
func setBig(v Value, n *big.Int) error {
	width := v.ByteLength()
	if need := (n.BitLen() + 7) / 8; need > width {
		return fmt.Errorf("%w: integer needs %d bytes, width is %d", ErrValueOutOfRange, need, width)
	}
	buf := make([]byte, width)
	n.FillBytes(buf)
	return v.SetBytesCanonical(buf)
}
