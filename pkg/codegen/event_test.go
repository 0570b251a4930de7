package codegen

import (
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T, contract string, opts Options, events ...abi.Event) *Context {
	t.Helper()
	table := make(map[string]abi.Event, len(events))
	for _, ev := range events {
		table[ev.Name] = ev
	}
	return NewContext(contract, abi.ABI{Events: table}, opts)
}

func TestExpandEventStructStyle(t *testing.T) {
	event := abi.NewEvent("Transfer", "Transfer", false, abi.Arguments{
		{Name: "from", Type: mustType(t, "address"), Indexed: true},
		{Name: "to", Type: mustType(t, "address"), Indexed: true},
		{Name: "amount", Type: mustType(t, "uint256")},
	})
	ctx := newTestContext(t, "ERC20", Options{}, event)

	def, err := ctx.ExpandEvent(event)
	require.NoError(t, err)

	require.Equal(t, "TransferFilter", def.TypeName)
	require.Equal(t, "transfer_filter", def.FuncName)
	require.Equal(t, "Transfer", def.EventName)
	require.Equal(t, "Transfer(address,address,uint256)", def.Signature)
	require.False(t, def.Tuple)
	require.False(t, def.Anonymous)
	require.True(t, def.DeriveDefault)

	require.Equal(t, []Param{
		{Name: "From", Type: "common.Address", Indexed: true},
		{Name: "To", Type: "common.Address", Indexed: true},
		{Name: "Amount", Type: "*big.Int"},
	}, def.Params)
}

func TestExpandEventTupleStyle(t *testing.T) {
	// abi.NewEvent rewrites empty names to arg0, arg1; the unnamed mask is
	// what marks the parameters as positional.
	event := abi.NewEvent("Ping", "Ping", false, abi.Arguments{
		{Name: "", Type: mustType(t, "bool")},
		{Name: "", Type: mustType(t, "address")},
	})
	require.Equal(t, "arg0", event.Inputs[0].Name)
	ctx := newTestContext(t, "Pinger", Options{
		UnnamedInputs: map[string][]bool{"Ping": {true, true}},
	}, event)

	def, err := ctx.ExpandEvent(event)
	require.NoError(t, err)

	require.True(t, def.Tuple)
	require.True(t, def.Positional)
	require.Equal(t, []Param{
		{Name: "P0", Type: "bool"},
		{Name: "P1", Type: "common.Address"},
	}, def.Params)
}

func TestExpandEventMixedNamesIsStructStyle(t *testing.T) {
	// a single named parameter forces struct style with placeholders
	event := abi.NewEvent("Foo", "Foo", false, abi.Arguments{
		{Name: "a", Type: mustType(t, "bool")},
		{Name: "", Type: mustType(t, "address")},
	})
	ctx := newTestContext(t, "Foo", Options{
		UnnamedInputs: map[string][]bool{"Foo": {false, true}},
	}, event)

	def, err := ctx.ExpandEvent(event)
	require.NoError(t, err)

	require.False(t, def.Tuple)
	require.True(t, def.Positional)
	require.Equal(t, []Param{
		{Name: "A", Type: "bool"},
		{Name: "P1", Type: "common.Address"},
	}, def.Params)
}

func TestExpandEventNoMaskIsStructStyle(t *testing.T) {
	// without a recorded mask, parser-substituted arg<i> names read as named
	event := abi.NewEvent("Ping", "Ping", false, abi.Arguments{
		{Name: "", Type: mustType(t, "bool")},
	})
	ctx := newTestContext(t, "Pinger", Options{}, event)

	def, err := ctx.ExpandEvent(event)
	require.NoError(t, err)
	require.False(t, def.Tuple)
	require.False(t, def.Positional)
	require.Equal(t, []Param{{Name: "Arg0", Type: "bool"}}, def.Params)
}

func TestExpandEventAlias(t *testing.T) {
	event := abi.NewEvent("Transfer", "Transfer", false, abi.Arguments{
		{Name: "from", Type: mustType(t, "address"), Indexed: true},
	})
	ctx := newTestContext(t, "ERC20", Options{
		Aliases: map[string]string{event.Sig: "TransferEvent"},
	}, event)

	def, err := ctx.ExpandEvent(event)
	require.NoError(t, err)
	require.Equal(t, "TransferEventFilter", def.TypeName)
	require.Equal(t, "transfer_event_filter", def.FuncName)
	// metadata keeps the original ABI name
	require.Equal(t, "Transfer", def.EventName)
}

func TestExpandEventAnonymous(t *testing.T) {
	event := abi.NewEvent("Trace", "Trace", true, abi.Arguments{
		{Name: "data", Type: mustType(t, "bytes32")},
	})
	ctx := newTestContext(t, "Tracer", Options{}, event)

	def, err := ctx.ExpandEvent(event)
	require.NoError(t, err)
	require.True(t, def.Anonymous)
}

func TestExpandEventDeriveDisqualified(t *testing.T) {
	event := abi.NewEvent("Blob", "Blob", false, abi.Arguments{
		{Name: "data", Type: mustType(t, "uint8[33]")},
	})
	ctx := newTestContext(t, "Store", Options{}, event)

	def, err := ctx.ExpandEvent(event)
	require.NoError(t, err)
	require.False(t, def.DeriveDefault)
}

func TestExpandEventDerivesAttached(t *testing.T) {
	event := abi.NewEvent("Transfer", "Transfer", false, nil)
	ctx := newTestContext(t, "ERC20", Options{Derives: []string{"fmt.Stringer"}}, event)

	def, err := ctx.ExpandEvent(event)
	require.NoError(t, err)
	require.Equal(t, []string{"fmt.Stringer"}, def.Derives)
}

func TestExpandEventOverloadedKeepsRawName(t *testing.T) {
	// overloaded events get suffixed ABI table keys but keep the raw name
	ev1 := abi.NewEvent("Transfer", "Transfer", false, abi.Arguments{
		{Name: "a", Type: mustType(t, "address")},
	})
	ev2 := abi.NewEvent("Transfer0", "Transfer", false, abi.Arguments{
		{Name: "a", Type: mustType(t, "address")},
		{Name: "b", Type: mustType(t, "uint256")},
	})
	ctx := newTestContext(t, "ERC20", Options{
		Aliases: map[string]string{ev2.Sig: "TransferWithAmount"},
	}, ev1, ev2)

	def1, err := ctx.ExpandEvent(ev1)
	require.NoError(t, err)
	def2, err := ctx.ExpandEvent(ev2)
	require.NoError(t, err)

	require.Equal(t, "TransferFilter", def1.TypeName)
	require.Equal(t, "TransferWithAmountFilter", def2.TypeName)
	require.Equal(t, "Transfer", def2.EventName)
	require.Equal(t, "Transfer0", def2.ABIKey)
}
