package generator

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"retail-analytics/internal/config"
	"retail-analytics/internal/model"
)

// Fixed value pools for synthetic documents.
var (
	categories = []string{"Electronics", "Clothing", "Home & Garden", "Sports", "Books", "Toys", "Beauty", "Food"}
	brands     = []string{"BrandA", "BrandB", "BrandC", "BrandD", "BrandE", "Generic"}

	cities = []string{"New York", "Los Angeles", "Chicago", "Houston", "Phoenix", "Philadelphia",
		"San Antonio", "San Diego", "Dallas", "San Jose"}
	states = []string{"NY", "CA", "IL", "TX", "AZ", "PA", "TX", "CA", "TX", "CA"}

	loyaltyTiers = []string{"Bronze", "Silver", "Gold", "Platinum"}

	// Weighted toward Completed.
	orderStatuses  = []string{"Completed", "Completed", "Completed", "Pending", "Shipped"}
	paymentMethods = []string{"Credit Card", "Debit Card", "PayPal", "Cash"}

	reviewTexts = map[int]string{
		1: "Very disappointed with this purchase. Would not recommend.",
		2: "Below expectations. Several issues encountered.",
		3: "Average product. Does the job but nothing special.",
		4: "Good product. Happy with the purchase overall.",
		5: "Excellent quality! Exceeded my expectations. Highly recommend!",
	}
)

// Dataset holds one generated batch of documents for all four collections.
type Dataset struct {
	Products  []model.Product
	Customers []model.Customer
	Orders    []model.Order
	Reviews   []model.Review
}

// Generator produces synthetic retail documents. A fixed seed yields a
// reproducible dataset. Dates are day-granular, anchored to midnight UTC.
type Generator struct {
	rng *rand.Rand
	now time.Time
}

// New creates a generator seeded with the given value.
func New(seed int64) *Generator {
	return &Generator{
		rng: rand.New(rand.NewSource(seed)),
		now: time.Now().UTC().Truncate(24 * time.Hour),
	}
}

// Generate produces a full dataset with the configured document counts.
// Orders reference generated customers and products; reviews reference
// generated orders.
func (g *Generator) Generate(cfg config.SeedConfig) *Dataset {
	products := g.Products(cfg.Products)
	customers := g.Customers(cfg.Customers)
	orders := g.Orders(customers, products, cfg.Orders)
	reviews := g.Reviews(orders, cfg.Reviews)

	return &Dataset{
		Products:  products,
		Customers: customers,
		Orders:    orders,
		Reviews:   reviews,
	}
}

// Products generates n product documents.
func (g *Generator) Products(n int) []model.Product {
	products := make([]model.Product, 0, n)
	for i := 1; i <= n; i++ {
		category := pick(g.rng, categories)
		products = append(products, model.Product{
			ID:            fmt.Sprintf("P%04d", i),
			Name:          fmt.Sprintf("%s Product %d", category, i),
			Category:      category,
			Brand:         pick(g.rng, brands),
			Price:         g.uniform(10, 500),
			Cost:          g.uniform(5, 250),
			StockQuantity: g.rng.Intn(501),
			Rating:        round1(3.0 + g.rng.Float64()*2.0),
			NumReviews:    g.rng.Intn(201),
			CreatedDate:   g.daysAgo(30, 365),
		})
	}
	return products
}

// Customers generates n customer documents.
func (g *Generator) Customers(n int) []model.Customer {
	customers := make([]model.Customer, 0, n)
	for i := 1; i <= n; i++ {
		cityIdx := g.rng.Intn(len(cities))
		customers = append(customers, model.Customer{
			ID:          fmt.Sprintf("C%05d", i),
			Name:        fmt.Sprintf("Customer %d", i),
			Email:       fmt.Sprintf("customer%d@email.com", i),
			City:        cities[cityIdx],
			State:       states[cityIdx],
			JoinDate:    g.daysAgo(1, 730),
			LoyaltyTier: pick(g.rng, loyaltyTiers),
		})
	}
	return customers
}

// Orders generates n order documents referencing the given customers and
// products. Each order carries 1-5 line items with quantities 1-3; the
// total is derived from the unit prices.
func (g *Generator) Orders(customers []model.Customer, products []model.Product, n int) []model.Order {
	orders := make([]model.Order, 0, n)
	for i := 1; i <= n; i++ {
		customer := customers[g.rng.Intn(len(customers))]
		orderDate := g.daysAgo(0, 180)

		numItems := 1 + g.rng.Intn(5)
		items := make([]model.OrderItem, 0, numItems)
		var totalAmount float64

		for j := 0; j < numItems; j++ {
			product := products[g.rng.Intn(len(products))]
			quantity := 1 + g.rng.Intn(3)
			itemTotal := round2(product.Price * float64(quantity))
			totalAmount += itemTotal

			items = append(items, model.OrderItem{
				ProductID:   product.ID,
				ProductName: product.Name,
				Category:    product.Category,
				Quantity:    quantity,
				UnitPrice:   product.Price,
				ItemTotal:   itemTotal,
			})
		}

		totalAmount = round2(totalAmount)
		orders = append(orders, model.Order{
			ID:            fmt.Sprintf("O%06d", i),
			CustomerID:    customer.ID,
			CustomerName:  customer.Name,
			CustomerCity:  customer.City,
			CustomerState: customer.State,
			OrderDate:     orderDate,
			Items:         items,
			TotalAmount:   totalAmount,
			ShippingCost:  g.uniform(5, 15),
			Tax:           round2(totalAmount * 0.08),
			Status:        pick(g.rng, orderStatuses),
			PaymentMethod: pick(g.rng, paymentMethods),
		})
	}
	return orders
}

// Reviews generates n review documents drawn from random line items of the
// given orders, dated 1-30 days after the order.
func (g *Generator) Reviews(orders []model.Order, n int) []model.Review {
	reviews := make([]model.Review, 0, n)
	for i := 1; i <= n; i++ {
		order := orders[g.rng.Intn(len(orders))]
		if len(order.Items) == 0 {
			continue
		}
		item := order.Items[g.rng.Intn(len(order.Items))]
		rating := 1 + g.rng.Intn(5)

		reviews = append(reviews, model.Review{
			ID:           fmt.Sprintf("R%05d", i),
			OrderID:      order.ID,
			ProductID:    item.ProductID,
			ProductName:  item.ProductName,
			CustomerID:   order.CustomerID,
			CustomerName: order.CustomerName,
			Rating:       rating,
			ReviewText:   reviewTexts[rating],
			ReviewDate:   order.OrderDate.AddDate(0, 0, 1+g.rng.Intn(30)),
			HelpfulVotes: g.rng.Intn(51),
		})
	}
	return reviews
}

// uniform draws from [lo, hi) rounded to cents.
func (g *Generator) uniform(lo, hi float64) float64 {
	return round2(lo + g.rng.Float64()*(hi-lo))
}

// daysAgo returns a time between minDays and maxDays before now.
func (g *Generator) daysAgo(minDays, maxDays int) time.Time {
	days := minDays + g.rng.Intn(maxDays-minDays+1)
	return g.now.AddDate(0, 0, -days)
}

func pick(rng *rand.Rand, pool []string) string {
	return pool[rng.Intn(len(pool))]
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
