package catalog

import "strings"

// ToEntity converts a validated submission into a Product. The ID is copied
// only on the update path; on create the repository assigns it.
func ToEntity(p SubmittedProduct) (Product, error) {
	price, err := ParsePrice(p.Price)
	if err != nil {
		return Product{}, err
	}
	quantity, err := ParseStock(p.Stock)
	if err != nil {
		return Product{}, err
	}

	product := Product{
		Name:        strings.TrimSpace(p.Name),
		Description: strings.TrimSpace(p.Description),
		Details:     strings.TrimSpace(p.Details),
		Price:       price,
		Quantity:    quantity,
	}
	if p.HasID() {
		product.ID = p.ID
	}
	return product, nil
}

func ToViewModel(p Product) SubmittedProduct {
	return SubmittedProduct{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Details:     p.Details,
		Price:       FormatPrice(p.Price),
		Stock:       FormatStock(p.Quantity),
	}
}

func ToViewModels(products []Product) []SubmittedProduct {
	views := make([]SubmittedProduct, len(products))
	for i, p := range products {
		views[i] = ToViewModel(p)
	}
	return views
}
