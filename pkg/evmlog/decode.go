package evmlog

import "github.com/ethereum/go-ethereum/core/types"

// Decoder decodes a raw log into one event representation.
type Decoder[E any] func(*types.Log) (E, error)

// DecodeFirstMatch tries every decoder in order and returns the first
// success. The caller fixes the order; generated bindings pass decoders in
// canonical-signature order so dispatch stays deterministic when more than
// one decoder would accept the log.
func DecodeFirstMatch[E any](log *types.Log, decoders []Decoder[E]) (E, error) {
	for _, decode := range decoders {
		if ev, err := decode(log); err == nil {
			return ev, nil
		}
	}
	var zero E
	return zero, ErrInvalidLogData
}
