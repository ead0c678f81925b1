package types

import (
	"fmt"
	"math/big"

	"github.com/fxamacker/cbor/v2"

	"github.com/NethermindEth/cairotypes/felt"
	"github.com/NethermindEth/cairotypes/vm"
)

// Uint384 is a 384-bit unsigned integer: four 96-bit limbs and 48 canonical
// bytes.
type Uint384 big.Int

// Impl returns the underlying big integer.
func (z *Uint384) Impl() *big.Int {
	return (*big.Int)(z)
}

// ByteLength returns the width of the canonical form.
func (z *Uint384) ByteLength() int {
	return 48
}

// NFields returns the number of memory cells the value occupies.
func (z *Uint384) NFields() int {
	return 4
}

// SetUint64 sets z to v.
func (z *Uint384) SetUint64(v uint64) *Uint384 {
	(*big.Int)(z).SetUint64(v)
	return z
}

// SetString sets the value from the flexible textual form.
func (z *Uint384) SetString(s string) (*Uint384, error) {
	if err := setString(z, s); err != nil {
		return nil, err
	}
	return z, nil
}

// SetBytesCanonical sets the value from exactly 48 big-endian bytes.
func (z *Uint384) SetBytesCanonical(data []byte) error {
	if len(data) != 48 {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrByteLengthMismatch, len(data), 48)
	}
	(*big.Int)(z).SetBytes(data)
	return nil
}

// Marshal returns the canonical 48 byte form.
func (z *Uint384) Marshal() []byte {
	buf := make([]byte, 48)
	(*big.Int)(z).FillBytes(buf)
	return buf
}

// Limbs returns the four 96-bit limbs, least significant first.
func (z *Uint384) Limbs() [4]felt.Felt {
	return [4]felt.Felt(splitLimbs(z, 4))
}

// ToMemory writes the limbs at increasing addresses starting at addr and
// returns the address after the value.
func (z *Uint384) ToMemory(w MemoryWriter, addr vm.Relocatable) (vm.Relocatable, error) {
	return writeLimbs(z, 4, w, addr)
}

// FromMemory reads four 96-bit limbs starting at addr.
func (z *Uint384) FromMemory(r MemoryReader, addr vm.Relocatable) error {
	buf, err := readLimbs(4, 12, r, addr)
	if err != nil {
		return err
	}
	return z.SetBytesCanonical(buf)
}

// MarshalJSON encodes the canonical form as a padded hex string.
func (z *Uint384) MarshalJSON() ([]byte, error) {
	return marshalCanonical(z)
}

// UnmarshalJSON decodes the flexible JSON form.
func (z *Uint384) UnmarshalJSON(data []byte) error {
	return unmarshalFlexible(z, data)
}

// MarshalCBOR encodes the canonical form as a byte string.
func (z *Uint384) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(z.Marshal())
}

// UnmarshalCBOR decodes a canonical byte string.
func (z *Uint384) UnmarshalCBOR(data []byte) error {
	var b []byte
	if err := cbor.Unmarshal(data, &b); err != nil {
		return err
	}
	return z.SetBytesCanonical(b)
}

// String returns the canonical form as a padded hex string.
func (z *Uint384) String() string {
	return canonicalHex(z)
}

// Equal reports whether z and other hold the same value.
func (z *Uint384) Equal(other *Uint384) bool {
	if other == nil {
		return false
	}
	return (*big.Int)(z).Cmp((*big.Int)(other)) == 0
}
