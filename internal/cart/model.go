package cart

import "time"

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
)

// ValidStatus reports whether s is one of the known cart states.
func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

type Cart struct {
	ID          int64     `json:"cartId"`
	DateCreated time.Time `json:"dateCreated"`
	UpdatedAt   time.Time `json:"updatedAt"`
	UserID      int64     `json:"userId"`
	Status      Status    `json:"cartStatus"`
	CompanyID   int64     `json:"companyId"`
	Notes       *string   `json:"notes"`
}

// Item is a cart line joined with its product for display and pricing.
type Item struct {
	CartID      int64   `json:"cartId"`
	ProductID   int64   `json:"productId"`
	Quantity    int64   `json:"quantity"`
	CompanyID   int64   `json:"companyId"`
	ProductName string  `json:"productName"`
	UnitPrice   float64 `json:"unitPrice"`
}

// Details is the soft-success read shape: a missing cart is represented
// as a nil cart with no items rather than an error.
type Details struct {
	Cart  *Cart   `json:"cart"`
	Items []*Item `json:"items"`
}

type AddItemParams struct {
	CartID    int64
	ProductID int64
	Quantity  int64
	CompanyID int64
}
