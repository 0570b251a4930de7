package codegen

import "errors"

// ErrUnsupportedType reports an ABI type the mapper cannot express in Go.
var ErrUnsupportedType = errors.New("unsupported ABI type")
