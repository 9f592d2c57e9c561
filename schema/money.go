package schema

import (
	"fmt"
	"strings"
)

// Money is a value of the composite "monetary_amount" type: a decimal
// amount kept as text to avoid rounding, and a currency code.
type Money struct {
	Amount   string
	Currency string
}

// String returns the composite literal, e.g. "(12.50,USD)".
func (m Money) String() string {
	return "(" + m.Amount + "," + m.Currency + ")"
}

// ParseMoney parses a composite literal as returned by the database.
func ParseMoney(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 || s[0] != '(' || s[len(s)-1] != ')' {
		return Money{}, fmt.Errorf("invalid monetary_amount %q", s)
	}
	amount, currency, ok := strings.Cut(s[1:len(s)-1], ",")
	if !ok || strings.Contains(currency, ",") {
		return Money{}, fmt.Errorf("invalid monetary_amount %q", s)
	}
	return Money{
		Amount:   strings.Trim(amount, `"`),
		Currency: strings.Trim(currency, `"`),
	}, nil
}

func decodeMoney(v any) (Money, error) {
	if m, ok := v.(Money); ok {
		return m, nil
	}
	s, err := decodeString(v)
	if err != nil {
		return Money{}, err
	}
	return ParseMoney(s)
}
