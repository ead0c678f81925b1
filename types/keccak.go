package types

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/NethermindEth/cairotypes/felt"
	"github.com/NethermindEth/cairotypes/vm"
)

// KeccakBytes is an arbitrary length byte string staged for the keccak
// Cairo code. Its memory form is indirect: the bytes are packed into
// little-endian 64-bit words written to a fresh segment, and the value's
// single cell holds a pointer to that segment.
type KeccakBytes []byte

// SetString sets the value from a hex string of any length. The 0x prefix
// is optional and an odd digit count is padded with a leading zero nibble.
func (z *KeccakBytes) SetString(s string) (*KeccakBytes, error) {
	b, err := hexBytes(s)
	if err != nil {
		return nil, err
	}
	*z = b
	return z, nil
}

// Limbs packs the bytes into little-endian 64-bit words, zero padding the
// last word.
func (z KeccakBytes) Limbs() []felt.Felt {
	limbs := make([]felt.Felt, (len(z)+7)/8)
	for i := range limbs {
		var chunk [8]byte
		copy(chunk[:], z[i*8:])
		limbs[i].SetUint64(binary.LittleEndian.Uint64(chunk[:]))
	}
	return limbs
}

// NFields returns the number of memory cells the value occupies at its own
// address. The packed words live in a separate segment.
func (z KeccakBytes) NFields() int {
	return 1
}

// ToMemory writes the packed words to a fresh segment, stores a pointer to
// it at addr and returns the address after the pointer cell.
func (z KeccakBytes) ToMemory(w MemoryWriter, addr vm.Relocatable) (vm.Relocatable, error) {
	segment := w.AddSegment()
	for i, limb := range z.Limbs() {
		if err := w.WriteFelt(segment.Add(uint64(i)), &limb); err != nil {
			return vm.Relocatable{}, err
		}
	}
	if err := w.WritePointer(addr, segment); err != nil {
		return vm.Relocatable{}, err
	}
	return addr.Add(1), nil
}

// MarshalJSON encodes the bytes as a hex string.
func (z KeccakBytes) MarshalJSON() ([]byte, error) {
	return json.Marshal(z.String())
}

// UnmarshalJSON decodes a JSON string holding hex.
func (z *KeccakBytes) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: expected a hex string", ErrUnsupportedJSONShape)
	}
	_, err := z.SetString(s)
	return err
}

// String returns the bytes as a hex string with the 0x prefix.
func (z KeccakBytes) String() string {
	return "0x" + hex.EncodeToString(z)
}

// Equal reports whether z and other hold the same bytes.
func (z KeccakBytes) Equal(other KeccakBytes) bool {
	return bytes.Equal(z, other)
}
