package inventory

import (
	"context"
	"database/sql"

	"go.uber.org/zap"

	"mfgops-be/internal/logger"
)

type Repository interface {
	GetByCompanyID(ctx context.Context, companyID int64) ([]*Transaction, error)
	GetByID(ctx context.Context, id, companyID int64) (*Transaction, error)
	GetByProductID(ctx context.Context, productID, companyID int64) ([]*Transaction, error)
	GetStockByProductID(ctx context.Context, productID, companyID int64) (int64, error)
	ApplyProduction(ctx context.Context, t *Transaction, consumptions []Consumption) (*Transaction, error)
	UpdateQuantity(ctx context.Context, id, companyID, quantity int64) (*Transaction, error)
	Delete(ctx context.Context, id, companyID int64) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const transactionSelect = `
	SELECT
		it.inventory_id,
		it.product_id,
		it.quantity,
		it.company_id,
		COALESCE(it.reason, ''),
		it.date_created,
		COALESCE(p.name, '')
	FROM inventory_transactions it
	LEFT JOIN products p ON p.product_id = it.product_id
`

func scanTransactions(rows *sql.Rows) ([]*Transaction, error) {
	defer rows.Close()

	var transactions []*Transaction
	for rows.Next() {
		var t Transaction
		if err := rows.Scan(
			&t.ID,
			&t.ProductID,
			&t.Quantity,
			&t.CompanyID,
			&t.Reason,
			&t.DateCreated,
			&t.ProductName,
		); err != nil {
			return nil, err
		}
		transactions = append(transactions, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return transactions, nil
}

func (r *repository) GetByCompanyID(ctx context.Context, companyID int64) ([]*Transaction, error) {
	query := transactionSelect + `
		WHERE it.company_id = $1
		ORDER BY it.date_created DESC
	`

	rows, err := r.db.QueryContext(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	return scanTransactions(rows)
}

func (r *repository) GetByID(ctx context.Context, id, companyID int64) (*Transaction, error) {
	query := transactionSelect + `
		WHERE it.inventory_id = $1 AND it.company_id = $2
	`

	var t Transaction
	err := r.db.QueryRowContext(ctx, query, id, companyID).Scan(
		&t.ID,
		&t.ProductID,
		&t.Quantity,
		&t.CompanyID,
		&t.Reason,
		&t.DateCreated,
		&t.ProductName,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *repository) GetByProductID(ctx context.Context, productID, companyID int64) ([]*Transaction, error) {
	query := transactionSelect + `
		WHERE it.product_id = $1 AND it.company_id = $2
		ORDER BY it.date_created DESC
	`

	rows, err := r.db.QueryContext(ctx, query, productID, companyID)
	if err != nil {
		return nil, err
	}
	return scanTransactions(rows)
}

func (r *repository) GetStockByProductID(ctx context.Context, productID, companyID int64) (int64, error) {
	var stock int64
	err := r.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(quantity), 0)
		FROM inventory_transactions
		WHERE product_id = $1 AND company_id = $2
	`, productID, companyID).Scan(&stock)
	if err != nil {
		return 0, err
	}
	return stock, nil
}

// ApplyProduction records the finished-goods credit and writes the
// pre-computed material balances in one transaction.
func (r *repository) ApplyProduction(
	ctx context.Context,
	t *Transaction,
	consumptions []Consumption,
) (*Transaction, error) {

	log := logger.FromCtx(ctx).With(
		zap.String("method", "ApplyProduction"),
		zap.Int64("product_id", t.ProductID),
		zap.Int("material_count", len(consumptions)),
	)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("failed to begin transaction", zap.Error(err))
		return nil, err
	}
	defer tx.Rollback()

	// 1. Credit finished goods
	err = tx.QueryRowContext(ctx, `
		INSERT INTO inventory_transactions (product_id, quantity, company_id, reason)
		VALUES ($1, $2, $3, $4)
		RETURNING inventory_id, product_id, quantity, company_id, COALESCE(reason, ''), date_created
	`, t.ProductID, t.Quantity, t.CompanyID, t.Reason).Scan(
		&t.ID,
		&t.ProductID,
		&t.Quantity,
		&t.CompanyID,
		&t.Reason,
		&t.DateCreated,
	)
	if err != nil {
		log.Error("failed to insert inventory transaction", zap.Error(err))
		return nil, err
	}

	// 2. Write new material balances
	for _, c := range consumptions {
		_, err = tx.ExecContext(ctx, `
			UPDATE materials
			SET quantity_in_stock = $1
			WHERE material_id = $2 AND company_id = $3
		`, c.NewQuantity, c.MaterialID, t.CompanyID)
		if err != nil {
			log.Error("failed to update material stock",
				zap.Int64("material_id", c.MaterialID),
				zap.Error(err),
			)
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		log.Error("failed to commit production transaction", zap.Error(err))
		return nil, err
	}

	log.Info("production run recorded", zap.Int64("transaction_id", t.ID))
	return t, nil
}

func (r *repository) UpdateQuantity(ctx context.Context, id, companyID, quantity int64) (*Transaction, error) {
	var t Transaction
	err := r.db.QueryRowContext(ctx, `
		UPDATE inventory_transactions
		SET quantity = $1
		WHERE inventory_id = $2 AND company_id = $3
		RETURNING inventory_id, product_id, quantity, company_id, COALESCE(reason, ''), date_created
	`, quantity, id, companyID).Scan(
		&t.ID,
		&t.ProductID,
		&t.Quantity,
		&t.CompanyID,
		&t.Reason,
		&t.DateCreated,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *repository) Delete(ctx context.Context, id, companyID int64) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM inventory_transactions WHERE inventory_id = $1 AND company_id = $2
	`, id, companyID)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}
