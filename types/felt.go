package types

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/NethermindEth/cairotypes/felt"
	"github.com/NethermindEth/cairotypes/vm"
)

// Felt is a field element in its codec role: a single memory cell and 32
// canonical bytes holding an integer below the Stark field order.
type Felt felt.Felt

// NewFelt wraps a copy of the given field element.
func NewFelt(v *felt.Felt) *Felt {
	f := Felt(*v)
	return &f
}

// Impl returns the wrapped field element.
func (z *Felt) Impl() *felt.Felt {
	return (*felt.Felt)(z)
}

// ByteLength returns the width of the canonical form.
func (z *Felt) ByteLength() int {
	return felt.Bytes
}

// NFields returns the number of memory cells the value occupies.
func (z *Felt) NFields() int {
	return 1
}

// SetUint64 sets z to v.
func (z *Felt) SetUint64(v uint64) *Felt {
	(*felt.Felt)(z).SetUint64(v)
	return z
}

// SetString sets the value from the flexible textual form.
func (z *Felt) SetString(s string) (*Felt, error) {
	if err := setString(z, s); err != nil {
		return nil, err
	}
	return z, nil
}

// SetBytesCanonical sets the value from exactly 32 big-endian bytes holding
// an integer below the field order.
func (z *Felt) SetBytesCanonical(data []byte) error {
	if len(data) != felt.Bytes {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrByteLengthMismatch, len(data), felt.Bytes)
	}
	if err := (*felt.Felt)(z).SetBytesCanonical(data); err != nil {
		return fmt.Errorf("%w: %v", ErrValueOutOfRange, err)
	}
	return nil
}

// Marshal returns the canonical 32 byte form.
func (z *Felt) Marshal() []byte {
	return (*felt.Felt)(z).Marshal()
}

// ToMemory writes the value into its single cell at addr and returns the
// address after it.
func (z *Felt) ToMemory(w MemoryWriter, addr vm.Relocatable) (vm.Relocatable, error) {
	if err := w.WriteFelt(addr, (*felt.Felt)(z)); err != nil {
		return vm.Relocatable{}, err
	}
	return addr.Add(1), nil
}

// FromMemory reads the value from its single cell at addr.
func (z *Felt) FromMemory(r MemoryReader, addr vm.Relocatable) error {
	v, err := r.ReadFelt(addr)
	if err != nil {
		return err
	}
	*z = Felt(v)
	return nil
}

// MarshalJSON encodes the canonical form as a padded hex string.
func (z *Felt) MarshalJSON() ([]byte, error) {
	return marshalCanonical(z)
}

// UnmarshalJSON decodes the flexible JSON form.
func (z *Felt) UnmarshalJSON(data []byte) error {
	return unmarshalFlexible(z, data)
}

// MarshalCBOR encodes the canonical form as a byte string.
func (z *Felt) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(z.Marshal())
}

// UnmarshalCBOR decodes a canonical byte string.
func (z *Felt) UnmarshalCBOR(data []byte) error {
	var b []byte
	if err := cbor.Unmarshal(data, &b); err != nil {
		return err
	}
	return z.SetBytesCanonical(b)
}

// String returns the canonical form as a padded hex string.
func (z *Felt) String() string {
	return canonicalHex(z)
}

// Equal reports whether z and other hold the same value.
func (z *Felt) Equal(other *Felt) bool {
	if other == nil {
		return false
	}
	return (*felt.Felt)(z).Equal((*felt.Felt)(other))
}
