package model

import "time"

// Product represents a catalog product document.
type Product struct {
	ID            string    `json:"productId" bson:"product_id"`
	Name          string    `json:"name" bson:"name"`
	Category      string    `json:"category" bson:"category"`
	Brand         string    `json:"brand" bson:"brand"`
	Price         float64   `json:"price" bson:"price"`
	Cost          float64   `json:"cost" bson:"cost"`
	StockQuantity int       `json:"stockQuantity" bson:"stock_quantity"`
	Rating        float64   `json:"rating" bson:"rating"`
	NumReviews    int       `json:"numReviews" bson:"num_reviews"`
	CreatedDate   time.Time `json:"createdDate" bson:"created_date"`
}

// CategoryStats holds per-category aggregates computed server-side.
type CategoryStats struct {
	Category      string  `json:"category" bson:"_id"`
	TotalProducts int     `json:"totalProducts" bson:"total_products"`
	AvgPrice      float64 `json:"avgPrice" bson:"avg_price"`
	AvgRating     float64 `json:"avgRating" bson:"avg_rating"`
	TotalStock    int     `json:"totalStock" bson:"total_stock"`
}
