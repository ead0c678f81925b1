// Package types converts fixed-width Cairo values between virtual machine
// memory, canonical big-endian byte buffers and textual or JSON forms.
//
// The canonical form of a value is a big-endian buffer of exactly
// ByteLength bytes, zero padded on the left. In VM memory the same value is
// a run of NFields field element cells holding its limbs, least significant
// limb at the lowest address. Parsing accepts 0x or 0X prefixed hexadecimal
// and plain decimal text, and JSON strings or numbers carrying either;
// serialization always emits the canonical form.
package types

import (
	"errors"

	"github.com/NethermindEth/cairotypes/felt"
	"github.com/NethermindEth/cairotypes/vm"
)

var (
	ErrMalformedNumber      = errors.New("malformed number")
	ErrByteLengthMismatch   = errors.New("unexpected byte length")
	ErrValueOutOfRange      = errors.New("value out of range")
	ErrUnsupportedJSONShape = errors.New("unsupported JSON shape")
)

// Value is the byte codec contract shared by every fixed-width value.
type Value interface {
	// ByteLength returns the width of the canonical form.
	ByteLength() int
	// SetBytesCanonical sets the value from its canonical form. The buffer
	// must be exactly ByteLength bytes and hold an in-range integer.
	SetBytesCanonical(data []byte) error
	// Marshal returns the canonical form.
	Marshal() []byte
}

// MemoryValue extends Value with the VM memory layout contract.
type MemoryValue interface {
	Value
	// NFields returns the number of memory cells the value occupies.
	NFields() int
	// ToMemory writes the value's limbs starting at addr and returns the
	// address of the first cell after it.
	ToMemory(w MemoryWriter, addr vm.Relocatable) (vm.Relocatable, error)
	// FromMemory reads the value's limbs starting at addr.
	FromMemory(r MemoryReader, addr vm.Relocatable) error
}

// MemoryWritable is implemented by values that can be staged into memory but
// not read back, such as layouts with segment indirection.
type MemoryWritable interface {
	NFields() int
	ToMemory(w MemoryWriter, addr vm.Relocatable) (vm.Relocatable, error)
}

// MemoryReader is the read half of VM memory a decode needs.
type MemoryReader interface {
	ReadFelt(addr vm.Relocatable) (felt.Felt, error)
}

// MemoryWriter is the write half of VM memory an encode needs.
type MemoryWriter interface {
	WriteFelt(addr vm.Relocatable, v *felt.Felt) error
	WritePointer(addr, target vm.Relocatable) error
	AddSegment() vm.Relocatable
}

var (
	_ MemoryReader = (*vm.Memory)(nil)
	_ MemoryWriter = (*vm.Memory)(nil)

	_ MemoryValue    = (*Felt)(nil)
	_ MemoryValue    = (*Uint256)(nil)
	_ MemoryValue    = (*Uint256Bits32)(nil)
	_ MemoryValue    = (*Uint384)(nil)
	_ MemoryWritable = (*KeccakBytes)(nil)
)
