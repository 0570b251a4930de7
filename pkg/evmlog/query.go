package evmlog

import (
	"context"
	"fmt"
	"math/big"

	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// LogFilterer executes server-side log filter queries. *ethclient.Client
// satisfies it.
type LogFilterer interface {
	FilterLogs(ctx context.Context, q ethereum.FilterQuery) ([]types.Log, error)
}

// Query is a lazy log query typed to one decoded event representation.
// Filtering by contract address and event signature happens server-side;
// nothing is fetched until Fetch is called.
type Query[T any] struct {
	filterer LogFilterer
	address  common.Address
	topics   []common.Hash
	unpack   func(*types.Log) (T, error)
	from, to *big.Int
}

// NewQuery builds a query over the given contract address, restricted
// server-side to the given topic0 alternatives and decoded with unpack.
func NewQuery[T any](filterer LogFilterer, address common.Address, topics []common.Hash, unpack func(*types.Log) (T, error)) *Query[T] {
	return &Query[T]{filterer: filterer, address: address, topics: topics, unpack: unpack}
}

// FromBlock restricts the query to logs at or above the given block.
func (q *Query[T]) FromBlock(n *big.Int) *Query[T] {
	q.from = n
	return q
}

// ToBlock restricts the query to logs at or below the given block.
func (q *Query[T]) ToBlock(n *big.Int) *Query[T] {
	q.to = n
	return q
}

// Fetch executes the filter and decodes every returned log.
func (q *Query[T]) Fetch(ctx context.Context) ([]T, error) {
	filter := ethereum.FilterQuery{
		Addresses: []common.Address{q.address},
		FromBlock: q.from,
		ToBlock:   q.to,
	}
	if len(q.topics) > 0 {
		filter.Topics = [][]common.Hash{q.topics}
	}
	logs, err := q.filterer.FilterLogs(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to filter logs: %w", err)
	}
	out := make([]T, 0, len(logs))
	for i := range logs {
		ev, err := q.unpack(&logs[i])
		if err != nil {
			return nil, err
		}
		out = append(out, ev)
	}
	return out, nil
}
