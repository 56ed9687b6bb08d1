package generator

import (
	"testing"

	"retail-analytics/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedConfig() config.SeedConfig {
	return config.SeedConfig{
		Products:  25,
		Customers: 40,
		Orders:    60,
		Reviews:   30,
		BatchSize: 10,
	}
}

func TestGenerator_Counts(t *testing.T) {
	gen := New(42)
	ds := gen.Generate(seedConfig())

	assert.Len(t, ds.Products, 25)
	assert.Len(t, ds.Customers, 40)
	assert.Len(t, ds.Orders, 60)
	assert.Len(t, ds.Reviews, 30)
}

func TestGenerator_Products(t *testing.T) {
	gen := New(42)
	products := gen.Products(50)

	require.Len(t, products, 50)

	for _, p := range products {
		assert.NotEmpty(t, p.ID)
		assert.NotEmpty(t, p.Name)
		assert.Contains(t, categories, p.Category)
		assert.Contains(t, brands, p.Brand)
		assert.GreaterOrEqual(t, p.Price, 10.0)
		assert.Less(t, p.Price, 500.01)
		assert.GreaterOrEqual(t, p.StockQuantity, 0)
		assert.LessOrEqual(t, p.StockQuantity, 500)
		assert.GreaterOrEqual(t, p.Rating, 3.0)
		assert.LessOrEqual(t, p.Rating, 5.0)
		assert.False(t, p.CreatedDate.IsZero())
	}

	assert.Equal(t, "P0001", products[0].ID)
	assert.Equal(t, "P0050", products[49].ID)
}

func TestGenerator_Customers(t *testing.T) {
	gen := New(42)
	customers := gen.Customers(30)

	require.Len(t, customers, 30)

	for _, c := range customers {
		assert.NotEmpty(t, c.ID)
		assert.NotEmpty(t, c.Email)
		assert.Contains(t, cities, c.City)
		assert.Contains(t, states, c.State)
		assert.Contains(t, loyaltyTiers, c.LoyaltyTier)
		assert.False(t, c.JoinDate.IsZero())
	}

	// City and state are drawn as a pair
	cityState := make(map[string]string)
	for i, city := range cities {
		cityState[city] = states[i]
	}
	for _, c := range customers {
		assert.Equal(t, cityState[c.City], c.State)
	}
}

func TestGenerator_Orders(t *testing.T) {
	gen := New(42)
	products := gen.Products(20)
	customers := gen.Customers(10)
	orders := gen.Orders(customers, products, 40)

	require.Len(t, orders, 40)

	customerByID := make(map[string]string)
	for _, c := range customers {
		customerByID[c.ID] = c.Name
	}

	for _, o := range orders {
		require.NotEmpty(t, o.Items)
		assert.LessOrEqual(t, len(o.Items), 5)
		assert.Contains(t, orderStatuses, o.Status)
		assert.Contains(t, paymentMethods, o.PaymentMethod)

		// Order references a generated customer
		name, ok := customerByID[o.CustomerID]
		require.True(t, ok)
		assert.Equal(t, name, o.CustomerName)

		// Total equals the sum of the line items
		var sum float64
		for _, item := range o.Items {
			assert.GreaterOrEqual(t, item.Quantity, 1)
			assert.LessOrEqual(t, item.Quantity, 3)
			assert.InDelta(t, item.UnitPrice*float64(item.Quantity), item.ItemTotal, 0.01)
			sum += item.ItemTotal
		}
		assert.InDelta(t, sum, o.TotalAmount, 0.01)
		assert.InDelta(t, o.TotalAmount*0.08, o.Tax, 0.01)
	}
}

func TestGenerator_Reviews(t *testing.T) {
	gen := New(42)
	products := gen.Products(20)
	customers := gen.Customers(10)
	orders := gen.Orders(customers, products, 40)
	reviews := gen.Reviews(orders, 25)

	require.Len(t, reviews, 25)

	orderByID := make(map[string]bool)
	for _, o := range orders {
		orderByID[o.ID] = true
	}

	for _, r := range reviews {
		assert.True(t, orderByID[r.OrderID])
		assert.GreaterOrEqual(t, r.Rating, 1)
		assert.LessOrEqual(t, r.Rating, 5)
		assert.Equal(t, reviewTexts[r.Rating], r.ReviewText)
		assert.GreaterOrEqual(t, r.HelpfulVotes, 0)
		assert.LessOrEqual(t, r.HelpfulVotes, 50)
	}
}

func TestGenerator_Deterministic(t *testing.T) {
	a := New(7).Generate(seedConfig())
	b := New(7).Generate(seedConfig())

	assert.Equal(t, a.Products, b.Products)
	assert.Equal(t, a.Customers, b.Customers)
	assert.Equal(t, a.Orders, b.Orders)
	assert.Equal(t, a.Reviews, b.Reviews)
}

func TestIsRateLimited(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"Generic test error", assert.AnError, false},
		{"RequestRateTooLarge", errorWithMessage("Error=16500, RetryAfterMs=100, Details='RequestRateTooLarge'"), true},
		{"TooManyRequests", errorWithMessage("TooManyRequests (429)"), true},
		{"Plain connection error", errorWithMessage("connection refused"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, isRateLimited(tt.err))
		})
	}
}

type errorWithMessage string

func (e errorWithMessage) Error() string { return string(e) }
