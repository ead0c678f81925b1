package types

import (
	"fmt"

	"github.com/NethermindEth/cairotypes/felt"
	"github.com/NethermindEth/cairotypes/vm"
)

// splitLimbs cuts the canonical form of v into count equal-width limbs,
// least significant first.
func splitLimbs(v Value, count int) []felt.Felt {
	buf := v.Marshal()
	width := len(buf) / count
	limbs := make([]felt.Felt, count)
	for i := range limbs {
		limbs[i].SetBytes(buf[len(buf)-(i+1)*width : len(buf)-i*width])
	}
	return limbs
}

// writeLimbs writes the limbs of v at increasing addresses starting at addr
// and returns the address of the first cell after the value.
func writeLimbs(v Value, count int, w MemoryWriter, addr vm.Relocatable) (vm.Relocatable, error) {
	for i, limb := range splitLimbs(v, count) {
		if err := w.WriteFelt(addr.Add(uint64(i)), &limb); err != nil {
			return vm.Relocatable{}, err
		}
	}
	return addr.Add(uint64(count)), nil
}

// readLimbs reads count limbs of width bytes each at increasing addresses,
// least significant limb first, and reassembles the canonical form. A limb
// that does not fit its slot fails with ErrValueOutOfRange.
func readLimbs(count, width int, r MemoryReader, addr vm.Relocatable) ([]byte, error) {
	buf := make([]byte, count*width)
	for i := 0; i < count; i++ {
		cellAddr := addr.Add(uint64(i))
		limb, err := r.ReadFelt(cellAddr)
		if err != nil {
			return nil, err
		}
		if limb.BitLen() > width*8 {
			return nil, fmt.Errorf("%w: limb at %s does not fit %d bits", ErrValueOutOfRange, cellAddr, width*8)
		}
		b := limb.Bytes()
		copy(buf[len(buf)-(i+1)*width:], b[felt.Bytes-width:])
	}
	return buf, nil
}
