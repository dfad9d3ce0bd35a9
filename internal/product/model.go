package product

import "time"

type Product struct {
	ID          int64     `json:"productId"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Description string    `json:"description"`
	CompanyID   int64     `json:"companyId"`
	DateCreated time.Time `json:"dateCreated"`
	Images      []string  `json:"images,omitempty"`
}

type CreateProductParams struct {
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
}

type UpdateProductParams struct {
	Name        *string  `json:"name"`
	Price       *float64 `json:"price"`
	Description *string  `json:"description"`
}
