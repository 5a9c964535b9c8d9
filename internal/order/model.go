package order

import (
	"time"

	"marketflow-be/internal/contact"
)

type Status string

const (
	// StatusBasket is the open, mutable pre-order state.
	StatusBasket Status = "basket"
	// StatusNew is the frozen state entered on placement.
	StatusNew Status = "new"
)

type Order struct {
	ID        int              `json:"id"`
	UserID    int              `json:"-"`
	Status    Status           `json:"state"`
	Contact   *contact.Contact `json:"contact,omitempty"`
	CreatedAt time.Time        `json:"dt"`
	Items     []*Item          `json:"ordered_items"`
	Total     float64          `json:"total_sum"`
}

type Item struct {
	ID            int     `json:"id"`
	ProductInfoID int     `json:"product_info"`
	ProductName   string  `json:"product_name"`
	ShopID        int     `json:"shop"`
	Quantity      int     `json:"quantity"`
	Price         float64 `json:"price"`
	Sum           float64 `json:"sum"`
}

type PlaceParams struct {
	UserID    int
	BasketID  int
	ContactID int
}
