package hints

import (
	"bytes"

	"github.com/NethermindEth/cairotypes/felt"
	"github.com/NethermindEth/cairotypes/types"
	"github.com/NethermindEth/cairotypes/vm"
)

// Hint code strings of the value printing hints, verbatim as they appear in
// Cairo programs.
const (
	PrintFeltHex = `print(f"{hex(ids.value)}")`
	PrintFelt    = `print(f"{ids.value}")`
	PrintString  = `print(f"String: {ids.value}")`
	PrintUint256 = `print(f"{hex(ids.value.high * 2 ** 128 + ids.value.low)}")`
	PrintUint384 = `print(f"{hex(ids.value.d3 * 2 ** 144 + ids.value.d2 * 2 ** 96 + ids.value.d1 * 2 ** 48 + ids.value.d0)}")`

	InfoFelt    = `print(f"Info: {ids.value}")`
	InfoFeltHex = `print(f"Info: {hex(ids.value)}")`
	InfoUint256 = `print(f"Info: {hex(ids.value.high * 2**128 + ids.value.low)}")`
	InfoUint384 = `print(f"Info: {hex(ids.value.d3 * 2 ** 144 + ids.value.d2 * 2 ** 96 + ids.value.d1 * 2 ** 48 + ids.value.d0)}")`

	DebugFelt    = `print(f"Debug: {ids.value}")`
	DebugFeltHex = `print(f"Debug: {hex(ids.value)}")`
	DebugUint256 = `print(f"Debug: {hex(ids.value.high * 2**128 + ids.value.low)}")`
	DebugUint384 = `print(f"Debug: {hex(ids.value.d3 * 2 ** 144 + ids.value.d2 * 2 ** 96 + ids.value.d1 * 2 ** 48 + ids.value.d0)}")`
)

// renderFn resolves ids.value and formats it for logging.
type renderFn func(m *vm.Memory, data *Data) (string, error)

// printValue builds a hint that renders ids.value and emits it through the
// given logger method.
func printValue(emit func(msg string, keysAndValues ...any), msg string, render renderFn) Func {
	return func(m *vm.Memory, _ *Scopes, data *Data, _ map[string]*felt.Felt) error {
		s, err := render(m, data)
		if err != nil {
			return err
		}
		emit(msg, "value", s)
		return nil
	}
}

func renderFeltDec(m *vm.Memory, data *Data) (string, error) {
	value, err := data.Integer(m, "value")
	if err != nil {
		return "", err
	}
	return value.Text(10), nil
}

func renderFeltHex(m *vm.Memory, data *Data) (string, error) {
	value, err := data.Integer(m, "value")
	if err != nil {
		return "", err
	}
	return value.String(), nil
}

// renderString decodes the felt's big-endian bytes as ASCII, dropping the
// zero padding.
func renderString(m *vm.Memory, data *Data) (string, error) {
	value, err := data.Integer(m, "value")
	if err != nil {
		return "", err
	}
	b := value.Bytes()
	return string(bytes.TrimLeft(b[:], "\x00")), nil
}

func renderUint256(m *vm.Memory, data *Data) (string, error) {
	addr, err := data.Address("value")
	if err != nil {
		return "", err
	}
	var value types.Uint256
	if err := value.FromMemory(m, addr); err != nil {
		return "", err
	}
	return value.String(), nil
}

func renderUint384(m *vm.Memory, data *Data) (string, error) {
	addr, err := data.Address("value")
	if err != nil {
		return "", err
	}
	var value types.Uint384
	if err := value.FromMemory(m, addr); err != nil {
		return "", err
	}
	return value.String(), nil
}
