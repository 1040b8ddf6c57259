package debruijn

import (
	"fmt"
	"strings"
)

// Strategy selects the evaluation order.
type Strategy int

const (
	NormalOrder Strategy = iota
	ApplicativeOrder
	CallByName
	CallByValue
)

func (s Strategy) String() string {
	switch s {
	case NormalOrder:
		return "normal"
	case ApplicativeOrder:
		return "applicative"
	case CallByName:
		return "cbn"
	case CallByValue:
		return "cbv"
	default:
		return "unknown"
	}
}

// Strong reports whether the strategy reduces under abstractions.
func (s Strategy) Strong() bool {
	return s == NormalOrder || s == ApplicativeOrder
}

// Strategies lists every strategy in declaration order.
func Strategies() []Strategy {
	return []Strategy{NormalOrder, ApplicativeOrder, CallByName, CallByValue}
}

// ParseStrategy accepts the long and short strategy names.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "normal", "normal-order", "no":
		return NormalOrder, nil
	case "applicative", "applicative-order", "ao":
		return ApplicativeOrder, nil
	case "cbn", "call-by-name", "name":
		return CallByName, nil
	case "cbv", "call-by-value", "value":
		return CallByValue, nil
	default:
		return NormalOrder, fmt.Errorf("unknown strategy %q", name)
	}
}
