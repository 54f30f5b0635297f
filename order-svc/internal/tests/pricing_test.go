package tests

import (
	"testing"

	"luciafood-express/order-svc/internal/domain"
	"luciafood-express/order-svc/internal/service"

	"github.com/stretchr/testify/assert"
)

func TestEffectiveUnitPrice(t *testing.T) {
	preferred := 90.0

	tests := []struct {
		name string
		item domain.MenuItem
		want float64
	}{
		{
			name: "list price when no override",
			item: domain.MenuItem{ListPrice: 100},
			want: 100,
		},
		{
			name: "preferred price wins over list price",
			item: domain.MenuItem{ListPrice: 100, PreferredPrice: &preferred},
			want: 90,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.want, service.EffectiveUnitPrice(testCase.item))
		})
	}
}

func TestLineTotal(t *testing.T) {
	preferred := 12.5
	line := domain.CartLine{
		Item:     domain.MenuItem{ListPrice: 20, PreferredPrice: &preferred},
		Quantity: 4,
	}
	assert.InDelta(t, 50, service.LineTotal(line), 1e-9)
}

func TestCartSubtotal(t *testing.T) {
	lines := []domain.CartLine{
		{Item: domain.MenuItem{ID: 1, ListPrice: 50}, Quantity: 2},
		{Item: domain.MenuItem{ID: 2, ListPrice: 33.33}, Quantity: 3},
	}
	assert.InDelta(t, 199.99, service.CartSubtotal(lines), 1e-9)
	assert.Zero(t, service.CartSubtotal(nil))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 10.01, service.Round2(10.005))
	assert.Equal(t, 10.0, service.Round2(10.0049))
	assert.Equal(t, 0.0, service.Round2(0))
}
