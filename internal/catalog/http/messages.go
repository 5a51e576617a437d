package http

import "product-catalog/internal/catalog"

// ErrorMessageResolver turns a validation key into text for the client.
type ErrorMessageResolver interface {
	Resolve(kind catalog.ErrorKind) string
}

// MessageTable resolves keys from a fixed map. Unknown keys resolve to the
// key itself.
type MessageTable map[catalog.ErrorKind]string

func (t MessageTable) Resolve(kind catalog.ErrorKind) string {
	if msg, ok := t[kind]; ok {
		return msg
	}
	return string(kind)
}

var EnglishMessages = MessageTable{
	catalog.MissingName:             "Please enter a name",
	catalog.MissingDescription:      "Please enter a description",
	catalog.MissingDetails:          "Please enter details",
	catalog.MissingStock:            "Please enter a stock value",
	catalog.StockNotAnInteger:       "The stock value must be an integer",
	catalog.StockNotGreaterThanZero: "The stock must be greater than zero",
	catalog.StockTooLarge:           "The stock value is too large",
	catalog.MissingPrice:            "Please enter a price",
	catalog.PriceNotANumber:         "The price must be a number",
	catalog.PriceNotGreaterThanZero: "The price must be greater than zero",
}
