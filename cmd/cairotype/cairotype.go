package main

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/NethermindEth/cairotypes/encoder"
	"github.com/NethermindEth/cairotypes/types"
	"github.com/NethermindEth/cairotypes/utils"
	"github.com/NethermindEth/cairotypes/vm"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var Version string

const (
	configF   = "config"
	logLevelF = "log-level"
	colourF   = "colour"
	typeF     = "type"
	jsonF     = "json"
	limbsF    = "limbs"
	cborF     = "cbor"

	defaultConfig = ""
	defaultColour = true
	defaultType   = "felt"
	defaultJSON   = false
	defaultLimbs  = false
	defaultCBOR   = false

	configFlagUsage   = "The yaml configuration file."
	logLevelFlagUsage = "Options: debug, info, warn, error, fatal."
	colourFlagUsage   = "Uses --colour=false command to disable colourized outputs (ANSI Escape Codes)."
	typeFlagUsage     = "Value type to parse. Options: felt, uint256, uint256b32, uint384, keccak."
	jsonFlagUsage     = "Treats each argument as a JSON document instead of a plain string."
	limbsFlagUsage    = "Prints the VM memory cells each value is staged into."
	cborFlagUsage     = "Prints the canonical CBOR encoding of each value as hex."
)

// config is unmarshaled from the merged flag and yaml settings.
type config struct {
	LogLevel utils.LogLevel `mapstructure:"log-level"`
	Colour   bool           `mapstructure:"colour"`
	Type     string         `mapstructure:"type"`
	JSON     bool           `mapstructure:"json"`
	Limbs    bool           `mapstructure:"limbs"`
	CBOR     bool           `mapstructure:"cbor"`
}

// value is what the command needs from a parsed argument.
type value interface {
	json.Unmarshaler
	fmt.Stringer
	types.MemoryWritable
}

var (
	_ value = (*types.Felt)(nil)
	_ value = (*types.Uint256)(nil)
	_ value = (*types.Uint256Bits32)(nil)
	_ value = (*types.Uint384)(nil)
	_ value = (*types.KeccakBytes)(nil)
)

func NewCmd() *cobra.Command {
	cairotypeCmd := &cobra.Command{
		Use:     "cairotype [flags] <value>...",
		Short:   "Parse Cairo VM values and print their canonical representations.",
		Version: Version,
		Args:    cobra.MinimumNArgs(1),
	}

	var cfgFile string
	logLevel := utils.INFO
	cairotypeCmd.Flags().StringVar(&cfgFile, configF, defaultConfig, configFlagUsage)
	cairotypeCmd.Flags().Var(&logLevel, logLevelF, logLevelFlagUsage)
	cairotypeCmd.Flags().Bool(colourF, defaultColour, colourFlagUsage)
	cairotypeCmd.Flags().String(typeF, defaultType, typeFlagUsage)
	cairotypeCmd.Flags().Bool(jsonF, defaultJSON, jsonFlagUsage)
	cairotypeCmd.Flags().Bool(limbsF, defaultLimbs, limbsFlagUsage)
	cairotypeCmd.Flags().Bool(cborF, defaultCBOR, cborFlagUsage)

	cairotypeCmd.RunE = func(cmd *cobra.Command, args []string) error {
		v := viper.New()
		if cfgFile != "" {
			v.SetConfigType("yaml")
			v.SetConfigFile(cfgFile)
			if err := v.ReadInConfig(); err != nil {
				return err
			}
		}

		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return err
		}

		cfg := new(config)
		if err := v.Unmarshal(cfg, viper.DecodeHook(mapstructure.TextUnmarshallerHookFunc())); err != nil {
			return err
		}

		log, err := utils.NewZapLogger(cfg.LogLevel, cfg.Colour)
		if err != nil {
			return err
		}

		for _, arg := range args {
			vals, err := parseMany(cfg.Type, arg, cfg.JSON)
			if err != nil {
				return fmt.Errorf("parse %q: %w", arg, err)
			}
			log.Debugw("Parsed argument", "type", cfg.Type, "input", arg, "count", len(vals))

			for _, val := range vals {
				if err := write(cmd.OutOrStdout(), cfg, val); err != nil {
					return err
				}
			}
		}
		return nil
	}

	return cairotypeCmd
}

// parseMany decodes one command line argument. A JSON array yields one value
// per element, anything else yields a single value.
func parseMany(kind, arg string, asJSON bool) ([]value, error) {
	if trimmed := bytes.TrimSpace([]byte(arg)); asJSON && len(trimmed) > 0 && trimmed[0] == '[' {
		return parseSlice(kind, trimmed)
	}
	val, err := parse(kind, arg, asJSON)
	if err != nil {
		return nil, err
	}
	return []value{val}, nil
}

func parseSlice(kind string, data []byte) ([]value, error) {
	switch kind {
	case "felt":
		return sliceValues[types.Felt, *types.Felt](data)
	case "uint256":
		return sliceValues[types.Uint256, *types.Uint256](data)
	case "uint256b32":
		return sliceValues[types.Uint256Bits32, *types.Uint256Bits32](data)
	case "uint384":
		return sliceValues[types.Uint384, *types.Uint384](data)
	case "keccak":
		return sliceValues[types.KeccakBytes, *types.KeccakBytes](data)
	default:
		return nil, fmt.Errorf("unknown type %q (known: felt, uint256, uint256b32, uint384, keccak)", kind)
	}
}

// sliceValues parses a JSON array of T and returns the elements as values.
func sliceValues[T any, PT interface {
	*T
	value
}](data []byte) ([]value, error) {
	vals, err := types.UnmarshalSlice[T, PT](data)
	if err != nil {
		return nil, err
	}
	out := make([]value, len(vals))
	for i := range vals {
		out[i] = PT(&vals[i])
	}
	return out, nil
}

// parse decodes one command line argument into a fresh value of the requested
// kind. Plain arguments are quoted so both input modes share the JSON path.
func parse(kind, arg string, asJSON bool) (value, error) {
	var val value
	switch kind {
	case "felt":
		val = new(types.Felt)
	case "uint256":
		val = new(types.Uint256)
	case "uint256b32":
		val = new(types.Uint256Bits32)
	case "uint384":
		val = new(types.Uint384)
	case "keccak":
		val = new(types.KeccakBytes)
	default:
		return nil, fmt.Errorf("unknown type %q (known: felt, uint256, uint256b32, uint384, keccak)", kind)
	}

	doc := arg
	if !asJSON {
		doc = strconv.Quote(arg)
	}
	if err := val.UnmarshalJSON([]byte(doc)); err != nil {
		return nil, err
	}
	return val, nil
}

// write prints the canonical form and the representations selected by cfg.
func write(w io.Writer, cfg *config, val value) error {
	if _, err := fmt.Fprintln(w, val.String()); err != nil {
		return err
	}

	if cfg.CBOR {
		raw, err := encoder.Marshal(val)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "cbor: %s\n", hex.EncodeToString(raw)); err != nil {
			return err
		}
	}

	if cfg.Limbs {
		mem := vm.NewMemory()
		base := mem.AddSegment()
		next, err := val.ToMemory(mem, base)
		if err != nil {
			return err
		}
		if err := writeCells(w, mem, base, next); err != nil {
			return err
		}
	}
	return nil
}

// writeCells prints the [from, to) cells of one segment, following any
// pointer cell into the segment it references.
func writeCells(w io.Writer, mem *vm.Memory, from, to vm.Relocatable) error {
	for addr := from; addr.Offset < to.Offset; addr = addr.Add(1) {
		if cell, err := mem.ReadFelt(addr); err == nil {
			if _, err := fmt.Fprintf(w, "[%s] %s\n", addr.String(), cell.String()); err != nil {
				return err
			}
			continue
		}

		ptr, err := mem.ReadPointer(addr)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "[%s] ptr(%s)\n", addr.String(), ptr.String()); err != nil {
			return err
		}
		for target := ptr; ; target = target.Add(1) {
			word, err := mem.ReadFelt(target)
			if errors.Is(err, vm.ErrUnknownCell) {
				break
			}
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintf(w, "[%s] %s\n", target.String(), word.String()); err != nil {
				return err
			}
		}
	}
	return nil
}
