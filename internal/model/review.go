package model

import "time"

// Review represents a product review document.
type Review struct {
	ID           string    `json:"reviewId" bson:"review_id"`
	OrderID      string    `json:"orderId" bson:"order_id"`
	ProductID    string    `json:"productId" bson:"product_id"`
	ProductName  string    `json:"productName" bson:"product_name"`
	CustomerID   string    `json:"customerId" bson:"customer_id"`
	CustomerName string    `json:"customerName" bson:"customer_name"`
	Rating       int       `json:"rating" bson:"rating"`
	ReviewText   string    `json:"reviewText" bson:"review_text"`
	ReviewDate   time.Time `json:"reviewDate" bson:"review_date"`
	HelpfulVotes int       `json:"helpfulVotes" bson:"helpful_votes"`
}

// ProductRating holds per-product review aggregates computed server-side.
type ProductRating struct {
	ProductID   string  `json:"productId" bson:"_id"`
	ProductName string  `json:"productName" bson:"product_name"`
	AvgRating   float64 `json:"avgRating" bson:"avg_rating"`
	ReviewCount int     `json:"reviewCount" bson:"review_count"`
}
