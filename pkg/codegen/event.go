package codegen

import "github.com/ethereum/go-ethereum/accounts/abi"

// EventDef is the synthesized definition of one event's data type together
// with everything the templates need to render it.
type EventDef struct {
	TypeName  string
	FuncName  string
	EventName string // original ABI name, survives overload suffixing
	ABIKey    string // lookup key in the parsed ABI's event table
	Signature string // canonical signature, the stable identity key
	Anonymous  bool
	Tuple      bool // every parameter unnamed: positional fields
	Positional bool // any parameter unnamed: decode by position, not name
	Params     []Param

	DeriveDefault bool
	Derives       []string
}

// ExpandEvent synthesizes the data-type definition for one event. Events
// whose parameters are all unnamed become tuple-style types with positional
// p<i> fields; a single named parameter forces a struct-style type, with
// placeholders substituted for the unnamed rest. Any parameter the type
// mapper cannot express fails the whole event.
func (c *Context) ExpandEvent(event abi.Event) (*EventDef, error) {
	mask := c.unnamedMask(event)
	params, err := ExpandEventInputs(event, mask, c.structs)
	if err != nil {
		return nil, err
	}
	unnamed := func(i int, input abi.Argument) bool {
		return input.Name == "" || (i < len(mask) && mask[i])
	}
	tuple := true
	positional := false
	for i, input := range event.Inputs {
		if unnamed(i, input) {
			positional = true
		} else {
			tuple = false
		}
	}
	alias := c.alias(event)
	return &EventDef{
		TypeName:      EventTypeName(event.RawName, alias),
		FuncName:      EventFunctionName(event.RawName, alias),
		EventName:     event.RawName,
		ABIKey:        event.Name,
		Signature:     event.Sig,
		Anonymous:     event.Anonymous,
		Tuple:         tuple,
		Positional:    positional,
		Params:        params,
		DeriveDefault: CanDeriveDefault(event.Inputs),
		Derives:       c.derives,
	}, nil
}
