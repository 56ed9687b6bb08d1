package model

import "time"

// Order represents a customer order document. Customer fields are
// denormalised onto the order at write time; there is no enforced
// referential integrity between collections.
type Order struct {
	ID            string      `json:"orderId" bson:"order_id"`
	CustomerID    string      `json:"customerId" bson:"customer_id"`
	CustomerName  string      `json:"customerName" bson:"customer_name"`
	CustomerCity  string      `json:"customerCity" bson:"customer_city"`
	CustomerState string      `json:"customerState" bson:"customer_state"`
	OrderDate     time.Time   `json:"orderDate" bson:"order_date"`
	Items         []OrderItem `json:"items" bson:"items"`
	TotalAmount   float64     `json:"totalAmount" bson:"total_amount"`
	ShippingCost  float64     `json:"shippingCost" bson:"shipping_cost"`
	Tax           float64     `json:"tax" bson:"tax"`
	Status        string      `json:"status" bson:"status"`
	PaymentMethod string      `json:"paymentMethod" bson:"payment_method"`
}

// OrderItem represents a line item in an order.
type OrderItem struct {
	ProductID   string  `json:"productId" bson:"product_id"`
	ProductName string  `json:"productName" bson:"product_name"`
	Category    string  `json:"category" bson:"category"`
	Quantity    int     `json:"quantity" bson:"quantity"`
	UnitPrice   float64 `json:"unitPrice" bson:"unit_price"`
	ItemTotal   float64 `json:"itemTotal" bson:"item_total"`
}

// StateSales holds per-state order aggregates computed server-side.
type StateSales struct {
	State         string  `json:"state" bson:"_id"`
	TotalOrders   int     `json:"totalOrders" bson:"total_orders"`
	TotalRevenue  float64 `json:"totalRevenue" bson:"total_revenue"`
	AvgOrderValue float64 `json:"avgOrderValue" bson:"avg_order_value"`
}
