package basket

import "time"

// Line is one position of the open basket: a per-shop product listing
// plus the requested quantity.
type Line struct {
	ID            int     `json:"id"`
	ProductInfoID int     `json:"product_info"`
	ProductName   string  `json:"product_name"`
	ShopID        int     `json:"shop"`
	Quantity      int     `json:"quantity"`
	Price         float64 `json:"price"`
	Sum           float64 `json:"sum"`
}

// View is the GET /basket shape: lines plus the grand total.
type View struct {
	ID    int     `json:"id"`
	Lines []*Line `json:"ordered_items"`
	Total float64 `json:"total_sum"`
}

type AddItemInput struct {
	ProductInfoID int `json:"product_info"`
	Quantity      int `json:"quantity"`
}

type UpdateItemInput struct {
	ID       int `json:"id"`
	Quantity int `json:"quantity"`
}

// lineRow is the flat scan target of the basket join.
type lineRow struct {
	LineID        int
	BasketID      int
	ProductInfoID int
	ProductName   string
	ShopID        int
	Quantity      int
	Price         float64
	CreatedAt     time.Time
}
