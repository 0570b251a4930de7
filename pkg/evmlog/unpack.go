package evmlog

import (
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// UnpackLog decodes a raw log into out, a pointer to a generated event
// struct. Non-indexed parameters are unpacked from the log data, indexed
// ones from the topics. For non-anonymous events the first topic must match
// the event's signature hash.
func UnpackLog(contractABI abi.ABI, out any, eventName string, log *types.Log) error {
	event, ok := contractABI.Events[eventName]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownEvent, eventName)
	}
	topics := log.Topics
	if !event.Anonymous {
		if len(topics) == 0 || topics[0] != event.ID {
			return ErrSignatureMismatch
		}
		topics = topics[1:]
	}
	if len(log.Data) > 0 {
		if err := contractABI.UnpackIntoInterface(out, eventName, log.Data); err != nil {
			return fmt.Errorf("failed to unpack event data: %w", err)
		}
	}
	var indexed abi.Arguments
	for _, arg := range event.Inputs {
		if arg.Indexed {
			indexed = append(indexed, arg)
		}
	}
	if len(indexed) == 0 {
		return nil
	}
	if err := abi.ParseTopics(out, indexed, topics); err != nil {
		return fmt.Errorf("failed to unpack event topics: %w", err)
	}
	return nil
}

// UnpackLogValues decodes a raw log into one value per event parameter, in
// declaration order, merging indexed topic values with non-indexed data
// values. Generated bindings use it for events whose parameters carry no
// names and cannot be unpacked by field.
func UnpackLogValues(contractABI abi.ABI, eventName string, log *types.Log) ([]any, error) {
	event, ok := contractABI.Events[eventName]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEvent, eventName)
	}
	topics := log.Topics
	if !event.Anonymous {
		if len(topics) == 0 || topics[0] != event.ID {
			return nil, ErrSignatureMismatch
		}
		topics = topics[1:]
	}
	var data []any
	if len(log.Data) > 0 {
		var err error
		data, err = contractABI.Unpack(eventName, log.Data)
		if err != nil {
			return nil, fmt.Errorf("failed to unpack event data: %w", err)
		}
	}
	vals := make([]any, 0, len(event.Inputs))
	ti, di := 0, 0
	for i, input := range event.Inputs {
		if input.Indexed {
			if ti >= len(topics) {
				return nil, fmt.Errorf("%w: missing topic for indexed parameter %d", ErrInvalidLogData, i)
			}
			v, err := topicValue(input.Type, topics[ti])
			if err != nil {
				return nil, err
			}
			vals = append(vals, v)
			ti++
			continue
		}
		if di >= len(data) {
			return nil, fmt.Errorf("%w: missing data for parameter %d", ErrInvalidLogData, i)
		}
		vals = append(vals, data[di])
		di++
	}
	return vals, nil
}

// topicValue decodes a single indexed topic word. Dynamic and composite
// values are topic-hashed on chain, so only the hash itself survives.
func topicValue(t abi.Type, topic common.Hash) (any, error) {
	switch t.T {
	case abi.StringTy, abi.BytesTy, abi.SliceTy, abi.ArrayTy, abi.TupleTy:
		return topic, nil
	default:
		vals, err := abi.Arguments{{Type: t}}.Unpack(topic.Bytes())
		if err != nil {
			return nil, fmt.Errorf("failed to decode topic: %w", err)
		}
		return vals[0], nil
	}
}
