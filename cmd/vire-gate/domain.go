package main

import (
	"regexp"

	"github.com/bobmcallan/vire-gate/internal/typeval"
)

// tickerPattern matches exchange tickers like BHP or BHP.AX.
var tickerPattern = regexp.MustCompile(`^[A-Z]{1,6}(\.[A-Z]{2,3})?$`)

// TickerSymbol narrows the string kind to an exchange ticker. Range and
// required behavior is inherited from the base kind.
type TickerSymbol struct {
	typeval.String
}

// NewTickerSymbol wraps a ticker string.
func NewTickerSymbol(v string) *TickerSymbol {
	t := &TickerSymbol{}
	t.String = *typeval.NewString(v)
	return t
}

// IsAbsent implements typeval.Value for the narrowed type.
func (v *TickerSymbol) IsAbsent() bool { return v == nil }

// ValidateFormat layers the ticker pattern on the base string checks.
func (v *TickerSymbol) ValidateFormat(param, tool string) typeval.Result {
	if r := v.String.ValidateFormat(param, tool); !r.Valid {
		return r
	}
	return typeval.MatchPattern(v.Value(), tickerPattern, param, tool,
		"an exchange ticker such as BHP.AX", "BHP.AX")
}
