package model

// LabelCount is a single entry in a categorical breakdown.
type LabelCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// HistogramBucket is a single fixed-width bucket of a numeric distribution.
type HistogramBucket struct {
	Low   float64 `json:"low"`
	High  float64 `json:"high"`
	Count int     `json:"count"`
}

// RatingCount is a single entry in a review rating distribution.
type RatingCount struct {
	Rating int `json:"rating"`
	Count  int `json:"count"`
}

// OverviewView is the response payload for the business overview.
type OverviewView struct {
	TotalProducts      int            `json:"totalProducts"`
	ProductCategories  int            `json:"productCategories"`
	TotalCustomers     int            `json:"totalCustomers"`
	UniqueStates       int            `json:"uniqueStates"`
	TotalOrders        int            `json:"totalOrders"`
	TotalRevenue       float64        `json:"totalRevenue"`
	TotalReviews       int            `json:"totalReviews"`
	AvgRating          float64        `json:"avgRating"`
	RevenueByState     []StateSales   `json:"revenueByState"`
	ProductsByCategory []CategoryStats `json:"productsByCategory"`
	OrdersByStatus     []LabelCount   `json:"ordersByStatus"`
	PaymentMethods     []LabelCount   `json:"paymentMethods"`
}

// ProductsView is the response payload for product analysis.
type ProductsView struct {
	TotalProducts  int               `json:"totalProducts"`
	AvgPrice       float64           `json:"avgPrice"`
	TotalStock     int               `json:"totalStock"`
	AvgRating      float64           `json:"avgRating"`
	CategoryStats  []CategoryStats   `json:"categoryStats"`
	PriceHistogram []HistogramBucket `json:"priceHistogram"`
	Catalog        []Product         `json:"catalog"`
}

// CustomersView is the response payload for customer analysis.
type CustomersView struct {
	TotalCustomers   int          `json:"totalCustomers"`
	UniqueCities     int          `json:"uniqueCities"`
	UniqueStates     int          `json:"uniqueStates"`
	TopLoyaltyTier   string       `json:"topLoyaltyTier"`
	CustomersByState []LabelCount `json:"customersByState"`
	LoyaltyTiers     []LabelCount `json:"loyaltyTiers"`
	TopCities        []LabelCount `json:"topCities"`
	Directory        []Customer   `json:"directory"`
}

// OrdersView is the response payload for order analysis.
type OrdersView struct {
	TotalOrders         int               `json:"totalOrders"`
	TotalRevenue        float64           `json:"totalRevenue"`
	AvgOrderValue       float64           `json:"avgOrderValue"`
	CompletedOrders     int               `json:"completedOrders"`
	RevenueByState      []StateSales      `json:"revenueByState"`
	StatusBreakdown     []LabelCount      `json:"statusBreakdown"`
	OrderValueHistogram []HistogramBucket `json:"orderValueHistogram"`
	RecentOrders        []Order           `json:"recentOrders"`
}

// ReviewsView is the response payload for review analysis.
type ReviewsView struct {
	TotalReviews       int               `json:"totalReviews"`
	AvgRating          float64           `json:"avgRating"`
	PositiveReviews    int               `json:"positiveReviews"`
	AvgHelpfulVotes    float64           `json:"avgHelpfulVotes"`
	RatingDistribution []RatingCount     `json:"ratingDistribution"`
	TopProducts        []ProductRating   `json:"topProducts"`
	HelpfulVotes       []HistogramBucket `json:"helpfulVotes"`
	RecentReviews      []Review          `json:"recentReviews"`
}
