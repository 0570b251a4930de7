package codegen

import (
	"strings"
	"unicode"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// typeSuffix is appended to every event data type so the type can never
// collide with a binding generated for a same-named contract function.
const typeSuffix = "Filter"

// funcSuffix disambiguates event accessors from same-named contract methods.
const funcSuffix = "_filter"

// EventTypeName derives the Go type name for an event's data type. The
// alias, when present, replaces the event name entirely before casing.
func EventTypeName(eventName, alias string) string {
	base := eventName
	if alias != "" {
		base = alias
	}
	return abi.ToCamelCase(base) + typeSuffix
}

// EventFunctionName derives the accessor method name for an event.
func EventFunctionName(eventName, alias string) string {
	base := eventName
	if alias != "" {
		base = alias
	}
	return toSnakeCase(base) + funcSuffix
}

// toSnakeCase lowers a camel- or Pascal-cased identifier, inserting
// underscores at word boundaries. Runs of capitals are kept together so
// acronyms survive: "ERC20Transfer" becomes "erc20_transfer". Already
// snake-cased input passes through unchanged.
func toSnakeCase(s string) string {
	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(runes) + len(runes)/2)
	for i, r := range runes {
		if !unicode.IsUpper(r) {
			b.WriteRune(r)
			continue
		}
		if i > 0 && runes[i-1] != '_' {
			prevLower := unicode.IsLower(runes[i-1]) || unicode.IsDigit(runes[i-1])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if prevLower || (unicode.IsUpper(runes[i-1]) && nextLower) {
				b.WriteRune('_')
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
