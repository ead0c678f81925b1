package hints

import (
	"github.com/NethermindEth/cairotypes/felt"
	"github.com/NethermindEth/cairotypes/vm"
)

// BitLength stores the bit length of ids.x into ids.bit_length.
const BitLength = "ids.bit_length = ids.x.bit_length()"

func bitLength() Func {
	return func(m *vm.Memory, _ *Scopes, data *Data, _ map[string]*felt.Felt) error {
		x, err := data.Integer(m, "x")
		if err != nil {
			return err
		}
		addr, err := data.Address("bit_length")
		if err != nil {
			return err
		}
		return m.WriteFelt(addr, new(felt.Felt).SetUint64(uint64(x.BitLen())))
	}
}
