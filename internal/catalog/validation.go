package catalog

import (
	"errors"
	"strings"
)

type rule struct {
	kind     ErrorKind
	violated func(SubmittedProduct) bool
}

// rules are evaluated independently and in order. Within a field the
// predicates exclude each other, so a field reports at most one kind.
var rules = []rule{
	{MissingName, func(p SubmittedProduct) bool { return blank(p.Name) }},
	{MissingDescription, func(p SubmittedProduct) bool { return blank(p.Description) }},
	{MissingDetails, func(p SubmittedProduct) bool { return blank(p.Details) }},

	{MissingStock, func(p SubmittedProduct) bool { return blank(p.Stock) }},
	{StockNotAnInteger, func(p SubmittedProduct) bool {
		return !blank(p.Stock) && !stockRe.MatchString(p.Stock)
	}},
	{StockTooLarge, func(p SubmittedProduct) bool {
		_, err := ParseStock(p.Stock)
		return errors.Is(err, ErrOutOfRange)
	}},
	{StockNotGreaterThanZero, func(p SubmittedProduct) bool {
		n, err := ParseStock(p.Stock)
		return err == nil && n <= 0
	}},

	{MissingPrice, func(p SubmittedProduct) bool { return blank(p.Price) }},
	{PriceNotANumber, func(p SubmittedProduct) bool {
		return !blank(p.Price) && !priceRe.MatchString(p.Price)
	}},
	{PriceNotGreaterThanZero, func(p SubmittedProduct) bool {
		d, err := ParsePrice(p.Price)
		return err == nil && !d.IsPositive()
	}},
}

// Validate returns the kind of every rule the submission violates, or nil.
// Callers should treat the result as a set.
func Validate(p SubmittedProduct) []ErrorKind {
	var kinds []ErrorKind
	for _, r := range rules {
		if r.violated(p) {
			kinds = append(kinds, r.kind)
		}
	}
	return kinds
}

func Valid(p SubmittedProduct) bool {
	return len(Validate(p)) == 0
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
