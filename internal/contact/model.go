package contact

type Contact struct {
	ID     int `json:"id"`
	UserID int `json:"-"`

	City      string `json:"city"`
	Street    string `json:"street"`
	House     string `json:"house"`
	Structure string `json:"structure"`
	Building  string `json:"building"`
	Apartment string `json:"apartment"`
	Phone     string `json:"phone"`
}

type CreateContactInput struct {
	UserID    int
	City      string
	Street    string
	House     string
	Structure string
	Building  string
	Apartment string
	Phone     string
}

type UpdateContactInput struct {
	ContactID int
	UserID    int
	City      *string
	Street    *string
	House     *string
	Structure *string
	Building  *string
	Apartment *string
	Phone     *string
}
