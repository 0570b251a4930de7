package codegen

import (
	"sort"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/stretchr/testify/require"
)

func TestExpandEventsEnum(t *testing.T) {
	transfer := abi.NewEvent("Transfer", "Transfer", false, abi.Arguments{
		{Name: "from", Type: mustType(t, "address"), Indexed: true},
	})
	approval := abi.NewEvent("Approval", "Approval", false, abi.Arguments{
		{Name: "owner", Type: mustType(t, "address"), Indexed: true},
	})
	ctx := newTestContext(t, "ERC20", Options{}, transfer, approval)

	union := ctx.ExpandEventsEnum()
	require.Equal(t, "ERC20Events", union.Name)
	require.Equal(t, "ERC20", union.Contract)
	require.Len(t, union.Variants, 2)

	// variants are ordered by canonical signature, not declaration order
	require.Equal(t, "ApprovalFilter", union.Variants[0].TypeName)
	require.Equal(t, "TransferFilter", union.Variants[1].TypeName)
	require.True(t, sort.SliceIsSorted(union.Variants, func(i, j int) bool {
		return union.Variants[i].Signature < union.Variants[j].Signature
	}))
}

func TestExpandEventsEnumAliasedVariant(t *testing.T) {
	transfer := abi.NewEvent("Transfer", "Transfer", false, nil)
	approval := abi.NewEvent("Approval", "Approval", false, nil)
	ctx := newTestContext(t, "ERC20", Options{
		Aliases: map[string]string{transfer.Sig: "Moved"},
	}, transfer, approval)

	union := ctx.ExpandEventsEnum()
	var names []string
	for _, v := range union.Variants {
		names = append(names, v.TypeName)
	}
	require.Contains(t, names, "MovedFilter")
	require.NotContains(t, names, "TransferFilter")
}

func TestSortedEventsStableAcrossCalls(t *testing.T) {
	a := abi.NewEvent("Alpha", "Alpha", false, nil)
	b := abi.NewEvent("Beta", "Beta", false, nil)
	c := abi.NewEvent("Gamma", "Gamma", false, nil)
	ctx := newTestContext(t, "Multi", Options{}, c, a, b)

	first := ctx.SortedEvents()
	second := ctx.SortedEvents()
	require.Equal(t, first, second)
	require.Equal(t, "Alpha", first[0].RawName)
	require.Equal(t, "Beta", first[1].RawName)
	require.Equal(t, "Gamma", first[2].RawName)
}
