package inventory

import "time"

// Transaction is one finished-goods inventory movement. Positive
// quantities credit stock (a production run), negative ones debit it.
type Transaction struct {
	ID          int64     `json:"inventoryId"`
	ProductID   int64     `json:"productId"`
	Quantity    int64     `json:"quantity"`
	CompanyID   int64     `json:"companyId"`
	Reason      string    `json:"reason,omitempty"`
	DateCreated time.Time `json:"dateCreated"`
	ProductName string    `json:"productName,omitempty"`
}

// MaterialNeed is the aggregated raw-material demand for one material
// across today's open paid orders.
type MaterialNeed struct {
	MaterialID      int64   `json:"materialId"`
	MaterialName    string  `json:"name"`
	QuantityInStock float64 `json:"quantityInStock"`
	QuantityNeeded  float64 `json:"quantityNeeded"`
	Units           string  `json:"units"`
}

// ProductStock is the summed finished-goods balance for one product.
type ProductStock struct {
	ProductID       int64  `json:"productId"`
	ProductName     string `json:"productName"`
	QuantityInStock int64  `json:"quantityInStock"`
}

// Consumption is one material debit computed for a production run. The
// new quantity is absolute, already clamped by policy.
type Consumption struct {
	MaterialID  int64
	NewQuantity float64
}

type RecordProductionParams struct {
	ProcessID int64  `json:"processId"`
	Reason    string `json:"reason"`
}

type UpdateTransactionParams struct {
	Quantity *int64 `json:"quantity"`
}

// ConsumptionPolicy controls what happens when a production run needs
// more material than is in stock.
type ConsumptionPolicy string

const (
	// PolicyClamp floors stock at zero and lets the run proceed.
	PolicyClamp ConsumptionPolicy = "clamp"
	// PolicyReject fails the run before any stock is touched.
	PolicyReject ConsumptionPolicy = "reject"
)

// PolicyFromString maps a config value to a policy, defaulting to clamp.
func PolicyFromString(s string) ConsumptionPolicy {
	if s == string(PolicyReject) {
		return PolicyReject
	}
	return PolicyClamp
}
