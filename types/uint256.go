package types

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/holiman/uint256"

	"github.com/NethermindEth/cairotypes/felt"
	"github.com/NethermindEth/cairotypes/vm"
)

// Uint256 is a 256-bit unsigned integer (wraps holiman/uint256.Int): two
// 128-bit limbs and 32 canonical bytes.
type Uint256 uint256.Int

// Impl returns the underlying uint256 implementation.
func (z *Uint256) Impl() *uint256.Int {
	return (*uint256.Int)(z)
}

// ByteLength returns the width of the canonical form.
func (z *Uint256) ByteLength() int {
	return 32
}

// NFields returns the number of memory cells the value occupies.
func (z *Uint256) NFields() int {
	return 2
}

// SetUint64 sets z to v.
func (z *Uint256) SetUint64(v uint64) *Uint256 {
	(*uint256.Int)(z).SetUint64(v)
	return z
}

// SetString sets the value from the flexible textual form.
func (z *Uint256) SetString(s string) (*Uint256, error) {
	if err := setString(z, s); err != nil {
		return nil, err
	}
	return z, nil
}

// SetBytesCanonical sets the value from exactly 32 big-endian bytes.
func (z *Uint256) SetBytesCanonical(data []byte) error {
	if len(data) != 32 {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrByteLengthMismatch, len(data), 32)
	}
	(*uint256.Int)(z).SetBytes(data)
	return nil
}

// Marshal returns the canonical 32 byte form.
func (z *Uint256) Marshal() []byte {
	b := (*uint256.Int)(z).Bytes32()
	return b[:]
}

// Limbs returns the two 128-bit limbs, least significant first.
func (z *Uint256) Limbs() [2]felt.Felt {
	return [2]felt.Felt(splitLimbs(z, 2))
}

// ToMemory writes the limbs at increasing addresses starting at addr and
// returns the address after the value.
func (z *Uint256) ToMemory(w MemoryWriter, addr vm.Relocatable) (vm.Relocatable, error) {
	return writeLimbs(z, 2, w, addr)
}

// FromMemory reads two 128-bit limbs starting at addr.
func (z *Uint256) FromMemory(r MemoryReader, addr vm.Relocatable) error {
	buf, err := readLimbs(2, 16, r, addr)
	if err != nil {
		return err
	}
	return z.SetBytesCanonical(buf)
}

// MarshalJSON encodes the canonical form as a padded hex string.
func (z *Uint256) MarshalJSON() ([]byte, error) {
	return marshalCanonical(z)
}

// UnmarshalJSON decodes the flexible JSON form.
func (z *Uint256) UnmarshalJSON(data []byte) error {
	return unmarshalFlexible(z, data)
}

// MarshalCBOR encodes the canonical form as a byte string.
func (z *Uint256) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(z.Marshal())
}

// UnmarshalCBOR decodes a canonical byte string.
func (z *Uint256) UnmarshalCBOR(data []byte) error {
	var b []byte
	if err := cbor.Unmarshal(data, &b); err != nil {
		return err
	}
	return z.SetBytesCanonical(b)
}

// String returns the canonical form as a padded hex string.
func (z *Uint256) String() string {
	return canonicalHex(z)
}

// Equal reports whether z and other hold the same value.
func (z *Uint256) Equal(other *Uint256) bool {
	if other == nil {
		return false
	}
	return (*uint256.Int)(z).Eq((*uint256.Int)(other))
}
