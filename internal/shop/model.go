package shop

type Shop struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	UserID int    `json:"-"`
	State  bool   `json:"state"`
}

// StateView is the partner/state read shape.
type StateView struct {
	Name  string `json:"name"`
	State bool   `json:"state"`
}
