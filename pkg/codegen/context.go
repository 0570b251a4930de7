package codegen

import (
	"path"
	"sort"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// DefaultRuntimeImport is the runtime package generated code links against
// unless the caller overrides it.
const DefaultRuntimeImport = "github.com/scalarorg/evmgen/pkg/evmlog"

// Options carries the caller-supplied knobs for one contract.
type Options struct {
	// Aliases maps a canonical event signature to an override identifier,
	// used to disambiguate overloaded event names. Duplicate alias values
	// are a caller error and are rejected at config load.
	Aliases map[string]string

	// Derives lists interface types asserted against every generated event
	// type, e.g. "fmt.Stringer".
	Derives []string

	// RuntimeImport is the import path of the runtime support package.
	RuntimeImport string

	// UnnamedInputs flags which inputs of each event carried no name in the
	// raw ABI document, keyed by the parsed ABI's event table key. The parser
	// substitutes arg<i> names for missing ones, so the raw view has to be
	// recorded before parsing.
	UnnamedInputs map[string][]bool
}

// Context drives event-binding synthesis for a single contract. All methods
// are pure over the state captured here, so repeated expansion of the same
// context yields byte-identical fragments.
type Context struct {
	contract string
	events   map[string]abi.Event
	aliases  map[string]string
	unnamed  map[string][]bool
	structs  StructRegistry
	derives  []string
	runtime  string
}

// NewContext builds a generation context. The struct registry is collected
// once from the event table and the runtime import path is resolved here,
// never re-read during generation.
func NewContext(contract string, contractABI abi.ABI, opts Options) *Context {
	runtime := opts.RuntimeImport
	if runtime == "" {
		runtime = DefaultRuntimeImport
	}
	events := make([]abi.Event, 0, len(contractABI.Events))
	for _, ev := range contractABI.Events {
		events = append(events, ev)
	}
	return &Context{
		contract: abi.ToCamelCase(contract),
		events:   contractABI.Events,
		aliases:  opts.Aliases,
		unnamed:  opts.UnnamedInputs,
		structs:  CollectStructs(events),
		derives:  opts.Derives,
		runtime:  runtime,
	}
}

// Contract returns the normalized contract identifier.
func (c *Context) Contract() string { return c.contract }

// RuntimeImport returns the import path of the runtime support package.
func (c *Context) RuntimeImport() string { return c.runtime }

// RuntimePkg returns the package qualifier generated code uses to reference
// the runtime import.
func (c *Context) RuntimePkg() string { return path.Base(c.runtime) }

// SortedEvents returns the contract's events ordered by canonical signature.
// The sort key carries no semantic meaning; it exists so repeated runs over
// the same ABI produce byte-identical output and a stable decode order.
func (c *Context) SortedEvents() []abi.Event {
	events := make([]abi.Event, 0, len(c.events))
	for _, ev := range c.events {
		events = append(events, ev)
	}
	sort.Slice(events, func(i, j int) bool { return events[i].Sig < events[j].Sig })
	return events
}

// alias looks up the caller-supplied name override for an event, keyed by
// canonical signature.
func (c *Context) alias(ev abi.Event) string { return c.aliases[ev.Sig] }

// unnamedMask returns the unnamed-input flags recorded for an event, keyed
// by its ABI table name so overloads resolve to their own mask.
func (c *Context) unnamedMask(ev abi.Event) []bool { return c.unnamed[ev.Name] }
