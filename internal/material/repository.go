package material

import (
	"context"
	"database/sql"
	"time"
)

type Repository interface {
	GetByCompanyID(ctx context.Context, companyID int64) ([]*Material, error)
	GetByID(ctx context.Context, id int64) (*Material, error)
	Create(ctx context.Context, companyID int64, params CreateMaterialParams) (*Material, error)
	Update(ctx context.Context, id int64, params UpdateMaterialParams) (*Material, error)
	UpdateQuantity(ctx context.Context, id int64, quantity float64) (*Material, error)
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, companyID int64, query string) ([]*Material, error)

	InsertTransaction(ctx context.Context, t *Transaction) (*Transaction, error)
	GetTransactionsByCompanyID(ctx context.Context, companyID int64) ([]*Transaction, error)
	GetTransactionsByDateRange(ctx context.Context, companyID int64, start, end time.Time) ([]*Transaction, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const materialColumns = `material_id, name, quantity_in_stock, units, company_id`

func scanMaterial(row *sql.Row) (*Material, error) {
	m := &Material{}
	err := row.Scan(&m.ID, &m.Name, &m.QuantityInStock, &m.Units, &m.CompanyID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

func scanMaterials(rows *sql.Rows) ([]*Material, error) {
	materials := []*Material{}
	for rows.Next() {
		m := &Material{}
		if err := rows.Scan(&m.ID, &m.Name, &m.QuantityInStock, &m.Units, &m.CompanyID); err != nil {
			return nil, err
		}
		materials = append(materials, m)
	}
	return materials, rows.Err()
}

func (r *repository) GetByCompanyID(ctx context.Context, companyID int64) ([]*Material, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+materialColumns+`
		FROM materials
		WHERE company_id = $1
		ORDER BY name
	`, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanMaterials(rows)
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Material, error) {
	return scanMaterial(r.db.QueryRowContext(ctx, `
		SELECT `+materialColumns+` FROM materials WHERE material_id = $1
	`, id))
}

func (r *repository) Create(ctx context.Context, companyID int64, params CreateMaterialParams) (*Material, error) {
	return scanMaterial(r.db.QueryRowContext(ctx, `
		INSERT INTO materials (name, quantity_in_stock, units, company_id)
		VALUES ($1, $2, $3, $4)
		RETURNING `+materialColumns+`
	`, params.Name, params.QuantityInStock, params.Units, companyID))
}

func (r *repository) Update(ctx context.Context, id int64, params UpdateMaterialParams) (*Material, error) {
	return scanMaterial(r.db.QueryRowContext(ctx, `
		UPDATE materials
		SET name              = COALESCE($1, name),
		    quantity_in_stock = COALESCE($2, quantity_in_stock),
		    units             = COALESCE($3, units)
		WHERE material_id = $4
		RETURNING `+materialColumns+`
	`, params.Name, params.QuantityInStock, params.Units, id))
}

func (r *repository) UpdateQuantity(ctx context.Context, id int64, quantity float64) (*Material, error) {
	return scanMaterial(r.db.QueryRowContext(ctx, `
		UPDATE materials
		SET quantity_in_stock = $1
		WHERE material_id = $2
		RETURNING `+materialColumns+`
	`, quantity, id))
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM materials WHERE material_id = $1`, id)
	return err
}

func (r *repository) Search(ctx context.Context, companyID int64, query string) ([]*Material, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+materialColumns+`
		FROM materials
		WHERE company_id = $1 AND name ILIKE '%' || $2 || '%'
		ORDER BY name
	`, companyID, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanMaterials(rows)
}

func (r *repository) InsertTransaction(ctx context.Context, t *Transaction) (*Transaction, error) {
	created := &Transaction{}
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO material_transactions (material_id, company_id, cost, quantity, units)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING material_transaction_id, material_id, company_id, cost, quantity, units, date_created
	`, t.MaterialID, t.CompanyID, t.Cost, t.Quantity, t.Units).Scan(
		&created.ID,
		&created.MaterialID,
		&created.CompanyID,
		&created.Cost,
		&created.Quantity,
		&created.Units,
		&created.DateCreated,
	)
	if err != nil {
		return nil, err
	}

	return created, nil
}

const transactionSelect = `
	SELECT mt.material_transaction_id,
	       mt.material_id,
	       mt.company_id,
	       mt.cost,
	       mt.quantity,
	       mt.units,
	       mt.date_created,
	       m.name
	FROM material_transactions mt
	JOIN materials m ON m.material_id = mt.material_id
`

func scanTransactions(rows *sql.Rows) ([]*Transaction, error) {
	txns := []*Transaction{}
	for rows.Next() {
		t := &Transaction{}
		if err := rows.Scan(
			&t.ID, &t.MaterialID, &t.CompanyID, &t.Cost,
			&t.Quantity, &t.Units, &t.DateCreated, &t.MaterialName,
		); err != nil {
			return nil, err
		}
		txns = append(txns, t)
	}
	return txns, rows.Err()
}

func (r *repository) GetTransactionsByCompanyID(ctx context.Context, companyID int64) ([]*Transaction, error) {
	rows, err := r.db.QueryContext(ctx, transactionSelect+`
		WHERE mt.company_id = $1
		ORDER BY mt.date_created DESC
	`, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTransactions(rows)
}

func (r *repository) GetTransactionsByDateRange(ctx context.Context, companyID int64, start, end time.Time) ([]*Transaction, error) {
	rows, err := r.db.QueryContext(ctx, transactionSelect+`
		WHERE mt.company_id = $1
		  AND mt.date_created >= $2
		  AND mt.date_created < $3
		ORDER BY mt.date_created DESC
	`, companyID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTransactions(rows)
}
