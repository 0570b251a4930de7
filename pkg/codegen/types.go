package codegen

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// Param is the normalized generation unit for one event parameter: the Go
// field name, the Go type expression, and whether the parameter is indexed.
type Param struct {
	Name    string
	Type    string
	Indexed bool
}

// StructRegistry maps an ABI tuple identifier to the Go struct type name
// generated for it.
type StructRegistry map[string]string

// structKey identifies one tuple shape. The raw name alone is not enough
// because contracts may reuse a struct name across libraries with different
// layouts.
func structKey(t abi.Type) string {
	return t.TupleRawName + t.String()
}

// Register records the Go type name for a tuple type.
func (r StructRegistry) Register(t abi.Type, goName string) {
	r[structKey(t)] = goName
}

// ExpandEventInputs maps every event parameter to a Param, preserving
// declaration order. Parameters flagged in the unnamed mask (or carrying no
// name at all) get the positional placeholder p<i> so field names stay
// unique within one event. The mask exists because the ABI parser rewrites
// missing input names to arg<i> before this code sees them.
func ExpandEventInputs(event abi.Event, unnamed []bool, structs StructRegistry) ([]Param, error) {
	params := make([]Param, len(event.Inputs))
	for i, input := range event.Inputs {
		name := input.Name
		if name == "" || (i < len(unnamed) && unnamed[i]) {
			name = fmt.Sprintf("p%d", i)
		}
		bind := bindType
		if input.Indexed {
			bind = bindTopicType
		}
		typ, err := bind(input.Type, structs)
		if err != nil {
			return nil, fmt.Errorf("event %s: parameter %s: %w", event.RawName, name, err)
		}
		params[i] = Param{Name: abi.ToCamelCase(name), Type: typ, Indexed: input.Indexed}
	}
	return params, nil
}

// bindType maps an ABI type to its Go representation.
func bindType(t abi.Type, structs StructRegistry) (string, error) {
	switch t.T {
	case abi.TupleTy:
		name, ok := structs[structKey(t)]
		if !ok {
			return "", fmt.Errorf("%w: tuple %q has no registered struct", ErrUnsupportedType, t.TupleRawName)
		}
		return name, nil
	case abi.ArrayTy:
		elem, err := bindType(*t.Elem, structs)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("[%d]%s", t.Size, elem), nil
	case abi.SliceTy:
		elem, err := bindType(*t.Elem, structs)
		if err != nil {
			return "", err
		}
		return "[]" + elem, nil
	default:
		return bindBasicType(t)
	}
}

func bindBasicType(t abi.Type) (string, error) {
	switch t.T {
	case abi.AddressTy:
		return "common.Address", nil
	case abi.IntTy, abi.UintTy:
		prefix := "uint"
		if t.T == abi.IntTy {
			prefix = "int"
		}
		switch t.Size {
		case 8, 16, 32, 64:
			return fmt.Sprintf("%s%d", prefix, t.Size), nil
		}
		return "*big.Int", nil
	case abi.FixedBytesTy:
		return fmt.Sprintf("[%d]byte", t.Size), nil
	case abi.BytesTy:
		return "[]byte", nil
	case abi.BoolTy:
		return "bool", nil
	case abi.StringTy:
		return "string", nil
	case abi.FunctionTy:
		return "[24]byte", nil
	case abi.HashTy:
		return "common.Hash", nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, t.String())
	}
}

// bindTopicType maps the type of an indexed parameter. Dynamic and composite
// values are stored in topics as their keccak hash, so only the hash is
// recoverable and the field surfaces as common.Hash.
func bindTopicType(t abi.Type, structs StructRegistry) (string, error) {
	switch t.T {
	case abi.StringTy, abi.BytesTy, abi.SliceTy, abi.ArrayTy, abi.TupleTy:
		return "common.Hash", nil
	default:
		return bindType(t, structs)
	}
}

// CollectStructs walks every event input and registers a Go struct name for
// each tuple type encountered, so the type mapper can resolve them later.
func CollectStructs(events []abi.Event) StructRegistry {
	structs := make(StructRegistry)
	for _, ev := range events {
		for _, input := range ev.Inputs {
			collectStructType(input.Type, structs)
		}
	}
	return structs
}

// structName derives a Go identifier from a tuple's raw name, which may
// carry a "Contract.Struct" qualifier.
func structName(t abi.Type) string {
	name := strings.NewReplacer(".", "", "[", "", "]", "").Replace(t.TupleRawName)
	return abi.ToCamelCase(name)
}

func collectStructType(t abi.Type, structs StructRegistry) {
	switch t.T {
	case abi.TupleTy:
		if _, ok := structs[structKey(t)]; ok {
			return
		}
		structs.Register(t, structName(t))
		for _, elem := range t.TupleElems {
			collectStructType(*elem, structs)
		}
	case abi.ArrayTy, abi.SliceTy:
		collectStructType(*t.Elem, structs)
	}
}

// StructDef is an emitted Go struct for an ABI tuple type.
type StructDef struct {
	Name   string
	Fields []Param
}

// ExpandStructs returns the struct definitions backing every tuple the given
// events reference, sorted by name so output is deterministic.
func ExpandStructs(events []abi.Event, structs StructRegistry) ([]StructDef, error) {
	seen := make(map[string]bool)
	var defs []StructDef
	var walk func(t abi.Type) error
	walk = func(t abi.Type) error {
		switch t.T {
		case abi.TupleTy:
			name, ok := structs[structKey(t)]
			if !ok {
				return fmt.Errorf("%w: tuple %q has no registered struct", ErrUnsupportedType, t.TupleRawName)
			}
			if seen[name] {
				return nil
			}
			seen[name] = true
			fields := make([]Param, len(t.TupleElems))
			for i, elem := range t.TupleElems {
				typ, err := bindType(*elem, structs)
				if err != nil {
					return err
				}
				fields[i] = Param{Name: abi.ToCamelCase(t.TupleRawNames[i]), Type: typ}
			}
			defs = append(defs, StructDef{Name: name, Fields: fields})
			for _, elem := range t.TupleElems {
				if err := walk(*elem); err != nil {
					return err
				}
			}
		case abi.ArrayTy, abi.SliceTy:
			return walk(*t.Elem)
		}
		return nil
	}
	for _, ev := range events {
		for _, input := range ev.Inputs {
			if err := walk(input.Type); err != nil {
				return nil, err
			}
		}
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].Name < defs[j].Name })
	return defs, nil
}
