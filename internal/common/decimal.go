package common

import "github.com/shopspring/decimal"

// NewDecimalFromString parses an optional decimal string. An empty input
// yields a nil pointer so filters can distinguish "absent" from zero.
func NewDecimalFromString(data string) (*decimal.Decimal, error) {
	if data != "" {
		amount, err := decimal.NewFromString(data)
		if err != nil {
			return nil, err
		}
		return &amount, nil
	}
	return nil, nil
}
