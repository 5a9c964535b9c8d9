package user

import "time"

type Role string

const (
	RoleBuyer Role = "buyer"
	RoleShop  Role = "shop"
)

type User struct {
	ID        int    `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"-"`
	Company   string `json:"company"`
	Position  string `json:"position"`
	Type      Role   `json:"type"`
	IsActive  bool   `json:"-"`
}

// ConfirmToken is the one-shot key mailed out after registration.
type ConfirmToken struct {
	UserID    int
	Key       string
	CreatedAt time.Time
}

type RegisterParams struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Company   string `json:"company"`
	Position  string `json:"position"`
	Type      string `json:"type"`
}

type UpdateParams struct {
	UserID    int
	FirstName *string
	LastName  *string
	Email     *string
	Password  *string
	Company   *string
	Position  *string
}
