package catalog

import (
	"errors"
	"math"
	"regexp"
	"strconv"

	"github.com/shopspring/decimal"
)

// Number grammar shared by the validator and the parsers. Only ASCII digits
// are accepted, '.' is the only decimal separator and there are no grouping
// separators, whatever the user's locale.
const (
	PriceGrammar = `^\d+(\.\d{1,2})?$`
	StockGrammar = `^\d+$`

	MaxStock      = math.MaxInt32
	priceDecimals = 2
)

var (
	priceRe = regexp.MustCompile(PriceGrammar)
	stockRe = regexp.MustCompile(StockGrammar)
)

// ParsePrice converts text matching PriceGrammar into a decimal.
func ParsePrice(text string) (decimal.Decimal, error) {
	if !priceRe.MatchString(text) {
		return decimal.Zero, &NumberError{Input: text, Err: ErrNumberFormat}
	}
	d, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Zero, &NumberError{Input: text, Err: ErrNumberFormat}
	}
	return d, nil
}

// ParseStock converts text matching StockGrammar into an int no larger than
// MaxStock. Larger values fail with ErrOutOfRange instead of being clamped.
func ParseStock(text string) (int, error) {
	if !stockRe.MatchString(text) {
		return 0, &NumberError{Input: text, Err: ErrNumberFormat}
	}
	v, err := strconv.ParseInt(text, 10, 32)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, &NumberError{Input: text, Err: ErrOutOfRange}
		}
		return 0, &NumberError{Input: text, Err: ErrNumberFormat}
	}
	return int(v), nil
}

// FormatPrice renders a price so that ParsePrice accepts it again.
func FormatPrice(d decimal.Decimal) string {
	return d.Round(priceDecimals).String()
}

func FormatStock(n int) string {
	return strconv.Itoa(n)
}
