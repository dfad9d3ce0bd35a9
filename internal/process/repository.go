package process

import (
	"context"
	"database/sql"
)

type Repository interface {
	GetByCompanyID(ctx context.Context, companyID int64) ([]*Process, error)
	GetByID(ctx context.Context, id int64) (*Process, error)
	GetByProductID(ctx context.Context, productID int64) (*Process, error)
	GetRequirements(ctx context.Context, processID int64) ([]*MaterialRequirement, error)
	GetUsageByMaterialID(ctx context.Context, materialID int64) ([]*Usage, error)
	Create(ctx context.Context, companyID int64, params CreateProcessParams) (*Process, error)
	Update(ctx context.Context, productID int64, params UpdateProcessParams) (*Process, error)
	DeleteByProductID(ctx context.Context, productID int64) error
	ReplaceRequirements(ctx context.Context, processID, companyID int64, entries []RequirementsEntry) error
	AddRequirement(ctx context.Context, processID, companyID int64, entry RequirementsEntry) error
	DeleteRequirement(ctx context.Context, processID, materialID int64) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const processColumns = `process_id, product_id, name, details, products_per_batch, company_id`

func scanProcess(row *sql.Row) (*Process, error) {
	p := &Process{}
	err := row.Scan(&p.ID, &p.ProductID, &p.Name, &p.Details, &p.ProductsPerBatch, &p.CompanyID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *repository) GetByCompanyID(ctx context.Context, companyID int64) ([]*Process, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+processColumns+`
		FROM processes
		WHERE company_id = $1
		ORDER BY name
	`, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	processes := []*Process{}
	for rows.Next() {
		p := &Process{}
		if err := rows.Scan(&p.ID, &p.ProductID, &p.Name, &p.Details, &p.ProductsPerBatch, &p.CompanyID); err != nil {
			return nil, err
		}
		processes = append(processes, p)
	}
	return processes, rows.Err()
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Process, error) {
	return scanProcess(r.db.QueryRowContext(ctx, `
		SELECT `+processColumns+` FROM processes WHERE process_id = $1
	`, id))
}

func (r *repository) GetByProductID(ctx context.Context, productID int64) (*Process, error) {
	return scanProcess(r.db.QueryRowContext(ctx, `
		SELECT `+processColumns+` FROM processes WHERE product_id = $1
	`, productID))
}

// GetRequirements loads the material list joined with current material
// records so callers can compare need against stock.
func (r *repository) GetRequirements(ctx context.Context, processID int64) ([]*MaterialRequirement, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT ml.process_id,
		       ml.material_id,
		       ml.quantity_needed,
		       ml.units_needed,
		       ml.company_id,
		       m.name,
		       m.quantity_in_stock,
		       m.units
		FROM material_lists ml
		JOIN materials m ON m.material_id = ml.material_id
		WHERE ml.process_id = $1
	`, processID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reqs := []*MaterialRequirement{}
	for rows.Next() {
		mr := &MaterialRequirement{}
		if err := rows.Scan(
			&mr.ProcessID,
			&mr.MaterialID,
			&mr.QuantityNeeded,
			&mr.UnitsNeeded,
			&mr.CompanyID,
			&mr.MaterialName,
			&mr.QuantityInStock,
			&mr.MaterialUnits,
		); err != nil {
			return nil, err
		}
		reqs = append(reqs, mr)
	}
	return reqs, rows.Err()
}

func (r *repository) GetUsageByMaterialID(ctx context.Context, materialID int64) ([]*Usage, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT p.process_id, p.name, ml.quantity_needed, ml.units_needed
		FROM material_lists ml
		JOIN processes p ON p.process_id = ml.process_id
		WHERE ml.material_id = $1
	`, materialID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	usages := []*Usage{}
	for rows.Next() {
		u := &Usage{}
		if err := rows.Scan(&u.ProcessID, &u.ProcessName, &u.QuantityNeeded, &u.Units); err != nil {
			return nil, err
		}
		usages = append(usages, u)
	}
	return usages, rows.Err()
}

func (r *repository) Create(ctx context.Context, companyID int64, params CreateProcessParams) (*Process, error) {
	p, err := scanProcess(r.db.QueryRowContext(ctx, `
		INSERT INTO processes (product_id, name, details, products_per_batch, company_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+processColumns+`
	`, params.ProductID, params.Name, params.Details, params.ProductsPerBatch, companyID))
	if err != nil {
		return nil, err
	}

	if len(params.Materials) > 0 {
		if err := r.ReplaceRequirements(ctx, p.ID, companyID, params.Materials); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// Update is keyed by product id, matching the 1:1 product/process
// relationship at the HTTP surface. A provided material list replaces the
// existing one wholesale.
func (r *repository) Update(ctx context.Context, productID int64, params UpdateProcessParams) (*Process, error) {
	p, err := scanProcess(r.db.QueryRowContext(ctx, `
		UPDATE processes
		SET name               = COALESCE($1, name),
		    details            = COALESCE($2, details),
		    products_per_batch = COALESCE($3, products_per_batch)
		WHERE product_id = $4
		RETURNING `+processColumns+`
	`, params.Name, params.Details, params.ProductsPerBatch, productID))
	if err != nil || p == nil {
		return p, err
	}

	if len(params.Materials) > 0 {
		if err := r.ReplaceRequirements(ctx, p.ID, p.CompanyID, params.Materials); err != nil {
			return nil, err
		}
	}

	return p, nil
}

func (r *repository) DeleteByProductID(ctx context.Context, productID int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM processes WHERE product_id = $1`, productID)
	return err
}

func (r *repository) ReplaceRequirements(ctx context.Context, processID, companyID int64, entries []RequirementsEntry) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		DELETE FROM material_lists WHERE process_id = $1
	`, processID); err != nil {
		return err
	}

	for _, e := range entries {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO material_lists (process_id, material_id, quantity_needed, units_needed, company_id)
			VALUES ($1, $2, $3, $4, $5)
		`, processID, e.MaterialID, e.QuantityNeeded, e.Units, companyID); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *repository) AddRequirement(ctx context.Context, processID, companyID int64, entry RequirementsEntry) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO material_lists (process_id, material_id, quantity_needed, units_needed, company_id)
		VALUES ($1, $2, $3, $4, $5)
	`, processID, entry.MaterialID, entry.QuantityNeeded, entry.Units, companyID)
	return err
}

func (r *repository) DeleteRequirement(ctx context.Context, processID, materialID int64) error {
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM material_lists WHERE process_id = $1 AND material_id = $2
	`, processID, materialID)
	return err
}
