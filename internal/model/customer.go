package model

import "time"

// Customer represents a customer document.
type Customer struct {
	ID          string    `json:"customerId" bson:"customer_id"`
	Name        string    `json:"name" bson:"name"`
	Email       string    `json:"email" bson:"email"`
	City        string    `json:"city" bson:"city"`
	State       string    `json:"state" bson:"state"`
	JoinDate    time.Time `json:"joinDate" bson:"join_date"`
	LoyaltyTier string    `json:"loyaltyTier" bson:"loyalty_tier"`
	TotalSpent  float64   `json:"totalSpent" bson:"total_spent"`
	OrderCount  int       `json:"orderCount" bson:"order_count"`
}
