package category

type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Page is the counted listing shape returned by /categories.
type Page struct {
	Count   int         `json:"count"`
	Results []*Category `json:"results"`
}
