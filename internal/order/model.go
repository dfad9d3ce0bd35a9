package order

import "time"

const StatusCompleted = "COMPLETED"

type Order struct {
	ID                   int64     `json:"orderId"`
	OrderTotal           float64   `json:"orderTotal"`
	DateCreated          time.Time `json:"dateCreated"`
	Status               string    `json:"status"`
	Paid                 bool      `json:"paid"`
	Notes                *string   `json:"notes"`
	UserID               int64     `json:"userId"`
	ExpectedDeliveryDate time.Time `json:"expectedDeliveryDate"`
	CompanyID            int64     `json:"companyId"`
}

// Line is one order product entry. UnitPrice and Total are price
// snapshots captured at order creation, not live references.
type Line struct {
	OrderID     int64   `json:"orderId"`
	ProductID   int64   `json:"productId"`
	Quantity    int64   `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	Total       float64 `json:"total"`
	CompanyID   int64   `json:"companyId"`
	ProductName string  `json:"productName,omitempty"`
}

type Details struct {
	Order    *Order  `json:"order"`
	Products []*Line `json:"products"`
}

// ProductNeed is aggregate demand for one product from today's paid,
// not-yet-completed orders.
type ProductNeed struct {
	ProductID      int64  `json:"productId"`
	ProductName    string `json:"productName"`
	QuantityNeeded int64  `json:"quantityNeeded"`
}

type CreateFromCartInput struct {
	CartID       int64      `json:"cartId"`
	DeliveryDate *time.Time `json:"deliveryDate"`
	Notes        *string    `json:"notes"`
}

// ConversionResult carries the created order, or the empty-cart shape
// when the cart did not exist (soft success).
type ConversionResult struct {
	Order *Order  `json:"order"`
	Lines []*Line `json:"products"`
	Empty bool    `json:"-"`
}

type UpdateOrderParams struct {
	Status               *string    `json:"status"`
	Paid                 *bool      `json:"paid"`
	Notes                *string    `json:"notes"`
	ExpectedDeliveryDate *time.Time `json:"expectedDeliveryDate"`
}
