package codegen

import "github.com/ethereum/go-ethereum/accounts/abi"

// maxDefaultArrayLen is the largest fixed-array length for which a generated
// default-value constructor is emitted. Longer arrays disqualify the whole
// event from default derivation.
const maxDefaultArrayLen = 32

// CanDeriveDefault reports whether a default-value constructor can be
// generated for an event with the given inputs. The answer is true unless a
// disqualifying shape appears anywhere in the parameter list, including
// inside nested tuples, arrays and slices.
func CanDeriveDefault(inputs abi.Arguments) bool {
	for _, input := range inputs {
		if !defaultDerivable(input.Type) {
			return false
		}
	}
	return true
}

func defaultDerivable(t abi.Type) bool {
	switch t.T {
	case abi.ArrayTy:
		return t.Size <= maxDefaultArrayLen && defaultDerivable(*t.Elem)
	case abi.SliceTy:
		return defaultDerivable(*t.Elem)
	case abi.TupleTy:
		for _, elem := range t.TupleElems {
			if !defaultDerivable(*elem) {
				return false
			}
		}
		return true
	default:
		return true
	}
}
