package order

import (
	"context"
	"database/sql"
	"time"

	"github.com/lib/pq"
	"go.uber.org/zap"

	"mfgops-be/internal/logger"
)

type Repository interface {
	GetByCompanyID(ctx context.Context, companyID int64) ([]*Order, error)
	GetByID(ctx context.Context, id, companyID int64) (*Order, error)
	GetByDateRange(ctx context.Context, companyID int64, from, to time.Time) ([]*Order, error)
	GetLines(ctx context.Context, orderID, companyID int64) ([]*Line, error)
	GetDailyProductNeeds(ctx context.Context, companyID int64, start, end time.Time) ([]*ProductNeed, error)
	CreateWithLines(ctx context.Context, o *Order, lines []*Line, cartID int64) (*Order, error)
	Update(ctx context.Context, id, companyID int64, params UpdateOrderParams) (*Order, error)
	UpdateStatus(ctx context.Context, id, companyID int64, status string) (*Order, error)
	Delete(ctx context.Context, id, companyID int64) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const orderColumns = `order_id, order_total, date_created, status, paid, notes, user_id, expected_delivery_date, company_id`

func scanOrder(row *sql.Row) (*Order, error) {
	var o Order
	err := row.Scan(
		&o.ID,
		&o.OrderTotal,
		&o.DateCreated,
		&o.Status,
		&o.Paid,
		&o.Notes,
		&o.UserID,
		&o.ExpectedDeliveryDate,
		&o.CompanyID,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func scanOrders(rows *sql.Rows) ([]*Order, error) {
	defer rows.Close()

	var orders []*Order
	for rows.Next() {
		var o Order
		if err := rows.Scan(
			&o.ID,
			&o.OrderTotal,
			&o.DateCreated,
			&o.Status,
			&o.Paid,
			&o.Notes,
			&o.UserID,
			&o.ExpectedDeliveryDate,
			&o.CompanyID,
		); err != nil {
			return nil, err
		}
		orders = append(orders, &o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *repository) GetByCompanyID(ctx context.Context, companyID int64) ([]*Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE company_id = $1
		ORDER BY date_created DESC
	`

	rows, err := r.db.QueryContext(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	return scanOrders(rows)
}

func (r *repository) GetByID(ctx context.Context, id, companyID int64) (*Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE order_id = $1 AND company_id = $2
	`

	return scanOrder(r.db.QueryRowContext(ctx, query, id, companyID))
}

func (r *repository) GetByDateRange(
	ctx context.Context,
	companyID int64,
	from, to time.Time,
) ([]*Order, error) {

	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE company_id = $1
		  AND date_created >= $2
		  AND date_created <= $3
		ORDER BY date_created DESC
	`

	rows, err := r.db.QueryContext(ctx, query, companyID, from, to)
	if err != nil {
		return nil, err
	}
	return scanOrders(rows)
}

func (r *repository) GetLines(ctx context.Context, orderID, companyID int64) ([]*Line, error) {
	query := `
		SELECT
			op.order_id,
			op.product_id,
			op.quantity,
			op.unit_price,
			op.total,
			op.company_id,
			COALESCE(p.name, '')
		FROM order_products op
		LEFT JOIN products p ON p.product_id = op.product_id
		WHERE op.order_id = $1 AND op.company_id = $2
	`

	rows, err := r.db.QueryContext(ctx, query, orderID, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []*Line
	for rows.Next() {
		var l Line
		if err := rows.Scan(
			&l.OrderID,
			&l.ProductID,
			&l.Quantity,
			&l.UnitPrice,
			&l.Total,
			&l.CompanyID,
			&l.ProductName,
		); err != nil {
			return nil, err
		}
		lines = append(lines, &l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// GetDailyProductNeeds sums line quantities per product across paid
// orders created inside the window that are not yet completed.
func (r *repository) GetDailyProductNeeds(
	ctx context.Context,
	companyID int64,
	start, end time.Time,
) ([]*ProductNeed, error) {

	log := logger.FromCtx(ctx).With(
		zap.String("method", "GetDailyProductNeeds"),
		zap.Int64("company_id", companyID),
	)

	// 1. Collect qualifying order ids for the window.
	orderRows, err := r.db.QueryContext(ctx, `
		SELECT order_id
		FROM orders
		WHERE company_id = $1
		  AND paid = true
		  AND status <> $2
		  AND date_created >= $3
		  AND date_created <= $4
	`, companyID, StatusCompleted, start, end)
	if err != nil {
		log.Error("failed to query daily orders", zap.Error(err))
		return nil, err
	}
	defer orderRows.Close()

	var orderIDs []int64
	for orderRows.Next() {
		var id int64
		if err := orderRows.Scan(&id); err != nil {
			return nil, err
		}
		orderIDs = append(orderIDs, id)
	}
	if err := orderRows.Err(); err != nil {
		return nil, err
	}

	if len(orderIDs) == 0 {
		return nil, nil
	}

	// 2. Aggregate product demand across those orders.
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			op.product_id,
			COALESCE(p.name, ''),
			SUM(op.quantity)
		FROM order_products op
		LEFT JOIN products p ON p.product_id = op.product_id
		WHERE op.order_id = ANY($1) AND op.company_id = $2
		GROUP BY op.product_id, p.name
		ORDER BY op.product_id
	`, pq.Array(orderIDs), companyID)
	if err != nil {
		log.Error("failed to aggregate product needs", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var needs []*ProductNeed
	for rows.Next() {
		var n ProductNeed
		if err := rows.Scan(&n.ProductID, &n.ProductName, &n.QuantityNeeded); err != nil {
			return nil, err
		}
		needs = append(needs, &n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return needs, nil
}

// CreateWithLines persists the order and its lines in one transaction,
// then flips the source cart to COMPLETED as the final step.
func (r *repository) CreateWithLines(
	ctx context.Context,
	o *Order,
	lines []*Line,
	cartID int64,
) (*Order, error) {

	log := logger.FromCtx(ctx).With(
		zap.String("method", "CreateWithLines"),
		zap.Int64("cart_id", cartID),
		zap.Int("line_count", len(lines)),
	)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("failed to begin transaction", zap.Error(err))
		return nil, err
	}
	defer tx.Rollback()

	// 1. Insert order
	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (
			order_total, status, paid, notes, user_id,
			expected_delivery_date, company_id
		) VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING `+orderColumns+`
	`,
		o.OrderTotal,
		o.Status,
		o.Paid,
		o.Notes,
		o.UserID,
		o.ExpectedDeliveryDate,
		o.CompanyID,
	).Scan(
		&o.ID,
		&o.OrderTotal,
		&o.DateCreated,
		&o.Status,
		&o.Paid,
		&o.Notes,
		&o.UserID,
		&o.ExpectedDeliveryDate,
		&o.CompanyID,
	)
	if err != nil {
		log.Error("failed to insert order", zap.Error(err))
		return nil, err
	}

	// 2. Insert order lines
	for _, l := range lines {
		l.OrderID = o.ID
		_, err = tx.ExecContext(ctx, `
			INSERT INTO order_products (
				order_id, product_id, quantity, unit_price, total, company_id
			) VALUES ($1,$2,$3,$4,$5,$6)
		`,
			l.OrderID,
			l.ProductID,
			l.Quantity,
			l.UnitPrice,
			l.Total,
			l.CompanyID,
		)
		if err != nil {
			log.Error("failed to insert order line",
				zap.Int64("product_id", l.ProductID),
				zap.Error(err),
			)
			return nil, err
		}
	}

	// 3. Mark source cart completed
	_, err = tx.ExecContext(ctx, `
		UPDATE carts
		SET cart_status = 'COMPLETED', updated_at = NOW()
		WHERE cart_id = $1 AND company_id = $2
	`, cartID, o.CompanyID)
	if err != nil {
		log.Error("failed to complete cart", zap.Error(err))
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		log.Error("failed to commit order transaction", zap.Error(err))
		return nil, err
	}

	log.Info("order created from cart", zap.Int64("order_id", o.ID))
	return o, nil
}

func (r *repository) Update(
	ctx context.Context,
	id, companyID int64,
	params UpdateOrderParams,
) (*Order, error) {

	query := `
		UPDATE orders
		SET
			status = COALESCE($1, status),
			paid = COALESCE($2, paid),
			notes = COALESCE($3, notes),
			expected_delivery_date = COALESCE($4, expected_delivery_date)
		WHERE order_id = $5 AND company_id = $6
		RETURNING ` + orderColumns + `
	`

	return scanOrder(r.db.QueryRowContext(ctx, query,
		params.Status,
		params.Paid,
		params.Notes,
		params.ExpectedDeliveryDate,
		id,
		companyID,
	))
}

func (r *repository) UpdateStatus(
	ctx context.Context,
	id, companyID int64,
	status string,
) (*Order, error) {

	query := `
		UPDATE orders
		SET status = $1
		WHERE order_id = $2 AND company_id = $3
		RETURNING ` + orderColumns + `
	`

	return scanOrder(r.db.QueryRowContext(ctx, query, status, id, companyID))
}

func (r *repository) Delete(ctx context.Context, id, companyID int64) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM orders WHERE order_id = $1 AND company_id = $2
	`, id, companyID)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrOrderNotFound
	}
	return nil
}
