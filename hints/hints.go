// Package hints implements the default hint table: callables keyed by the
// verbatim hint code strings found in compiled Cairo programs. A hint runs
// against the VM memory and the resolved addresses of the identifiers its
// code references.
package hints

import (
	"errors"
	"fmt"

	"github.com/NethermindEth/cairotypes/felt"
	"github.com/NethermindEth/cairotypes/utils"
	"github.com/NethermindEth/cairotypes/vm"
)

var ErrUnknownIdentifier = errors.New("hint references an unknown identifier")

// Func executes one hint occurrence against the VM state.
type Func func(m *vm.Memory, scopes *Scopes, data *Data, constants map[string]*felt.Felt) error

// Data carries the per-site hint information: the hint code and the
// addresses of the identifiers it references.
type Data struct {
	Code string
	Ids  map[string]vm.Relocatable
}

// Address returns the address of the named identifier.
func (d *Data) Address(name string) (vm.Relocatable, error) {
	addr, ok := d.Ids[name]
	if !ok {
		return vm.Relocatable{}, fmt.Errorf("%w: %s", ErrUnknownIdentifier, name)
	}
	return addr, nil
}

// Integer reads the field element stored at the named identifier.
func (d *Data) Integer(m *vm.Memory, name string) (felt.Felt, error) {
	addr, err := d.Address(name)
	if err != nil {
		return felt.Felt{}, err
	}
	return m.ReadFelt(addr)
}

// Pointer reads the address stored at the named identifier.
func (d *Data) Pointer(m *vm.Memory, name string) (vm.Relocatable, error) {
	addr, err := d.Address(name)
	if err != nil {
		return vm.Relocatable{}, err
	}
	return m.ReadPointer(addr)
}

// Scopes is the execution scope dictionary shared between hint runs.
type Scopes struct {
	values map[string]any
}

func NewScopes() *Scopes {
	return &Scopes{values: make(map[string]any)}
}

func (s *Scopes) Set(name string, value any) {
	s.values[name] = value
}

func (s *Scopes) Get(name string) (any, bool) {
	v, ok := s.values[name]
	return v, ok
}

// DefaultHintMapping returns the built-in hint table. Print hints report
// through log at info level.
func DefaultHintMapping(log utils.Logger) map[string]Func {
	return map[string]Func{
		SHA256Finalize: sha256Finalize(),
		PrintFeltHex:   printValue(log.Infow, "Value", renderFeltHex),
		PrintFelt:      printValue(log.Infow, "Value", renderFeltDec),
		PrintString:    printValue(log.Infow, "String", renderString),
		PrintUint256:   printValue(log.Infow, "Value", renderUint256),
		PrintUint384:   printValue(log.Infow, "Value", renderUint384),
		BitLength:      bitLength(),
	}
}

// VerboseHintMapping extends DefaultHintMapping with the info and debug
// print variants, routed at their matching log levels.
func VerboseHintMapping(log utils.Logger) map[string]Func {
	hints := DefaultHintMapping(log)
	hints[InfoFelt] = printValue(log.Infow, "Info", renderFeltDec)
	hints[InfoFeltHex] = printValue(log.Infow, "Info", renderFeltHex)
	hints[InfoUint256] = printValue(log.Infow, "Info", renderUint256)
	hints[InfoUint384] = printValue(log.Infow, "Info", renderUint384)
	hints[DebugFelt] = printValue(log.Debugw, "Debug", renderFeltDec)
	hints[DebugFeltHex] = printValue(log.Debugw, "Debug", renderFeltHex)
	hints[DebugUint256] = printValue(log.Debugw, "Debug", renderUint256)
	hints[DebugUint384] = printValue(log.Debugw, "Debug", renderUint384)
	return hints
}
