package hints

import (
	"github.com/NethermindEth/cairotypes/felt"
	"github.com/NethermindEth/cairotypes/vm"
)

// SHA256Finalize pads the sha256 builtin segment so the number of processed
// blocks reaches a multiple of the batch size. Each dummy block is the
// all-zero message followed by the initial state and the compression output
// of the zero block.
const SHA256Finalize = `# Add dummy pairs of input and output.
_block_size = int(ids.BLOCK_SIZE)
_sha256_input_chunk_size_felts = int(ids.SHA256_INPUT_CHUNK_SIZE_FELTS)

assert 0 <= _block_size < 20
assert 0 <= _sha256_input_chunk_size_felts < 100

message = [0] * _sha256_input_chunk_size_felts
w = compute_message_schedule(message)
output = sha2_compress_function(IV, w)
padding = (message + IV + output) * (_block_size - 1)
segments.write_arg(ids.sha256_ptr_end, padding)`

const (
	sha256ChunkSize = 16
	sha256StateSize = 8
	sha256BlockSize = 7
)

// sha256IV is the initial hash state of FIPS 180-4.
var sha256IV = [sha256StateSize]uint32{
	0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a,
	0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19,
}

// sha256ZeroOutput is the sha256 compression of one all-zero message block
// starting from sha256IV.
var sha256ZeroOutput = [sha256StateSize]uint32{
	0xda5698be, 0x17b9b469, 0x62335799, 0x779fbeca,
	0x8ce5d491, 0xc0d26243, 0xbafef9ea, 0x1837a9d8,
}

func sha256Finalize() Func {
	return func(m *vm.Memory, _ *Scopes, data *Data, _ map[string]*felt.Felt) error {
		ptr, err := data.Pointer(m, "sha256_ptr_end")
		if err != nil {
			return err
		}

		var message [sha256ChunkSize]uint32
		block := make([]uint32, 0, sha256ChunkSize+2*sha256StateSize)
		block = append(block, message[:]...)
		block = append(block, sha256IV[:]...)
		block = append(block, sha256ZeroOutput[:]...)

		addr := ptr
		for i := 0; i < sha256BlockSize-1; i++ {
			for _, word := range block {
				if err := m.WriteFelt(addr, new(felt.Felt).SetUint64(uint64(word))); err != nil {
					return err
				}
				addr = addr.Add(1)
			}
		}
		return nil
	}
}
