package material

import "time"

type Material struct {
	ID              int64   `json:"materialId"`
	Name            string  `json:"name"`
	QuantityInStock float64 `json:"quantityInStock"`
	Units           string  `json:"units"`
	CompanyID       int64   `json:"companyId"`
}

// Adjustment is the audit shape returned after a manual stock adjustment.
type Adjustment struct {
	Material         *Material `json:"material"`
	PreviousQuantity float64   `json:"previousQuantity"`
	Adjustment       float64   `json:"adjustment"`
	Reason           string    `json:"reason"`
}

// Transaction is a restock/purchase ledger entry. A committed transaction
// increases the material's stock by Quantity.
type Transaction struct {
	ID           int64     `json:"materialTransactionId"`
	MaterialID   int64     `json:"materialId"`
	CompanyID    int64     `json:"companyId"`
	Cost         float64   `json:"cost"`
	Quantity     float64   `json:"quantity"`
	Units        string    `json:"units"`
	DateCreated  time.Time `json:"dateCreated"`
	MaterialName string    `json:"materialName,omitempty"`
}

type CreateMaterialParams struct {
	Name            string   `json:"name"`
	QuantityInStock *float64 `json:"quantityInStock"`
	Units           string   `json:"units"`
}

type UpdateMaterialParams struct {
	Name            *string  `json:"name"`
	QuantityInStock *float64 `json:"quantityInStock"`
	Units           *string  `json:"units"`
}

type RecordTransactionParams struct {
	MaterialID int64   `json:"materialId"`
	Cost       float64 `json:"cost"`
	Quantity   float64 `json:"quantity"`
	Units      string  `json:"units"`
}
