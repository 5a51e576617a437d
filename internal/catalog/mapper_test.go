package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToEntity(t *testing.T) {
	t.Run("create path leaves ID unset", func(t *testing.T) {
		p, err := ToEntity(validSubmission())
		require.NoError(t, err)

		assert.Zero(t, p.ID)
		assert.Equal(t, "n", p.Name)
		assert.Equal(t, "d", p.Description)
		assert.Equal(t, "x", p.Details)
		assert.True(t, decimal.NewFromInt(100).Equal(p.Price))
		assert.Equal(t, 50, p.Quantity)
	})

	t.Run("update path copies ID", func(t *testing.T) {
		in := validSubmission()
		in.ID = 7

		p, err := ToEntity(in)
		require.NoError(t, err)
		assert.Equal(t, int64(7), p.ID)
	})

	t.Run("unvalidated price fails loudly", func(t *testing.T) {
		in := validSubmission()
		in.Price = "10,99"

		_, err := ToEntity(in)
		assert.ErrorIs(t, err, ErrNumberFormat)
	})

	t.Run("overflowing stock fails loudly", func(t *testing.T) {
		in := validSubmission()
		in.Stock = "99999999999"

		_, err := ToEntity(in)
		assert.ErrorIs(t, err, ErrOutOfRange)
	})
}

func TestToViewModel(t *testing.T) {
	p := Product{
		ID:          1,
		Name:        "Produit 1",
		Description: "Description 1",
		Details:     "Details 1",
		Price:       decimal.RequireFromString("10.99"),
		Quantity:    100,
	}

	vm := ToViewModel(p)

	assert.Equal(t, int64(1), vm.ID)
	assert.Equal(t, "Produit 1", vm.Name)
	assert.Equal(t, "10.99", vm.Price)
	assert.Equal(t, "100", vm.Stock)
}

func TestMapper_RoundTrip(t *testing.T) {
	prices := []string{"10.99", "100", "20.50", "0.01", "7.125"}
	quantities := []int{0, 1, 50, MaxStock}

	for _, raw := range prices {
		for _, q := range quantities {
			original := Product{
				ID:          3,
				Name:        "n",
				Description: "d",
				Details:     "x",
				Price:       decimal.RequireFromString(raw),
				Quantity:    q,
			}

			back, err := ToEntity(ToViewModel(original))
			require.NoError(t, err)

			assert.True(t, original.Price.Round(2).Equal(back.Price), "price %s became %s", original.Price, back.Price)
			assert.Equal(t, original.Quantity, back.Quantity)
		}
	}
}

func TestToViewModels_PreservesOrder(t *testing.T) {
	products := []Product{
		{ID: 3, Name: "c", Price: decimal.NewFromInt(1)},
		{ID: 1, Name: "a", Price: decimal.NewFromInt(2)},
		{ID: 2, Name: "b", Price: decimal.NewFromInt(3)},
	}

	views := ToViewModels(products)

	require.Len(t, views, 3)
	assert.Equal(t, []int64{3, 1, 2}, []int64{views[0].ID, views[1].ID, views[2].ID})
}
