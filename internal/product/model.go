package product

// Parameter is one name/value characteristic of a listing.
type Parameter struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// ProductInfo is a per-shop priced and stocked listing of a product.
type ProductInfo struct {
	ID           int          `json:"id"`
	Model        string       `json:"model"`
	ExternalID   int          `json:"external_id"`
	ProductID    int          `json:"-"`
	ProductName  string       `json:"product"`
	CategoryID   int          `json:"category"`
	CategoryName string       `json:"category_name"`
	ShopID       int          `json:"shop"`
	ShopName     string       `json:"shop_name"`
	Quantity     int          `json:"quantity"`
	Price        float64      `json:"price"`
	PriceRRC     float64      `json:"price_rrc"`
	Parameters   []*Parameter `json:"product_parameters"`
}

// Filter narrows the product listing; nil fields apply no constraint.
type Filter struct {
	ShopID     *int
	CategoryID *int
}
