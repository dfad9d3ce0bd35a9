package process

// Process is a company's recipe for producing a product. One production
// run yields ProductsPerBatch units.
type Process struct {
	ID               int64  `json:"processId"`
	ProductID        int64  `json:"productId"`
	Name             string `json:"name"`
	Details          string `json:"details"`
	ProductsPerBatch int64  `json:"productsPerBatch"`
	CompanyID        int64  `json:"companyId"`
}

// MaterialRequirement is one bill-of-materials entry, joined with the
// current material record for display. QuantityNeeded is per batch, not
// per unit.
type MaterialRequirement struct {
	ProcessID       int64   `json:"processId"`
	MaterialID      int64   `json:"materialId"`
	QuantityNeeded  float64 `json:"quantityNeeded"`
	UnitsNeeded     string  `json:"unitsNeeded"`
	CompanyID       int64   `json:"companyId"`
	MaterialName    string  `json:"name"`
	QuantityInStock float64 `json:"quantityInStock"`
	MaterialUnits   string  `json:"materialUnits"`
}

// Resolution is the result of resolving a product into its recipe.
type Resolution struct {
	Process   *Process               `json:"process"`
	Materials []*MaterialRequirement `json:"materials"`
}

// Usage is the reverse lookup: a process that consumes a given material.
type Usage struct {
	ProcessID      int64   `json:"processId"`
	ProcessName    string  `json:"processName"`
	QuantityNeeded float64 `json:"quantityNeeded"`
	Units          string  `json:"units"`
}

type CreateProcessParams struct {
	ProductID        int64                `json:"productId"`
	Name             string               `json:"name"`
	Details          string               `json:"details"`
	ProductsPerBatch int64               `json:"productsPerBatch"`
	Materials        []RequirementsEntry `json:"materials"`
}

type UpdateProcessParams struct {
	Name             *string             `json:"name"`
	Details          *string             `json:"details"`
	ProductsPerBatch *int64              `json:"productsPerBatch"`
	Materials        []RequirementsEntry `json:"materials"`
}

// RequirementsEntry is the write shape for one material list row.
type RequirementsEntry struct {
	MaterialID     int64   `json:"materialId"`
	QuantityNeeded float64 `json:"quantityNeeded"`
	Units          string  `json:"units"`
}
