package cart

import (
	"context"
	"database/sql"
)

type Repository interface {
	GetActiveByUserID(ctx context.Context, userID int64) (*Cart, error)
	GetByID(ctx context.Context, id int64) (*Cart, error)
	Create(ctx context.Context, userID, companyID int64, notes *string) (*Cart, error)
	UpdateNotes(ctx context.Context, id int64, notes *string) (*Cart, error)
	UpdateStatus(ctx context.Context, id int64, status Status) (*Cart, error)
	Delete(ctx context.Context, id int64) error

	GetItems(ctx context.Context, cartID int64) ([]*Item, error)
	GetItem(ctx context.Context, cartID, productID int64) (*Item, error)
	InsertItem(ctx context.Context, params AddItemParams) (*Item, error)
	UpdateItemQuantity(ctx context.Context, cartID, productID, quantity int64) (*Item, error)
	DeleteItem(ctx context.Context, cartID, productID int64) error
	ClearItems(ctx context.Context, cartID int64) error
	CountItems(ctx context.Context, cartID int64) (int64, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const cartColumns = `cart_id, date_created, updated_at, user_id, cart_status, company_id, notes`

func scanCart(row *sql.Row) (*Cart, error) {
	c := &Cart{}
	err := row.Scan(&c.ID, &c.DateCreated, &c.UpdatedAt, &c.UserID, &c.Status, &c.CompanyID, &c.Notes)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// GetActiveByUserID returns the user's most recent PENDING cart, or nil.
func (r *repository) GetActiveByUserID(ctx context.Context, userID int64) (*Cart, error) {
	return scanCart(r.db.QueryRowContext(ctx, `
		SELECT `+cartColumns+`
		FROM carts
		WHERE user_id = $1 AND cart_status = 'PENDING'
		ORDER BY date_created DESC
		LIMIT 1
	`, userID))
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Cart, error) {
	return scanCart(r.db.QueryRowContext(ctx, `
		SELECT `+cartColumns+` FROM carts WHERE cart_id = $1
	`, id))
}

func (r *repository) Create(ctx context.Context, userID, companyID int64, notes *string) (*Cart, error) {
	return scanCart(r.db.QueryRowContext(ctx, `
		INSERT INTO carts (user_id, company_id, cart_status, notes)
		VALUES ($1, $2, 'PENDING', $3)
		RETURNING `+cartColumns+`
	`, userID, companyID, notes))
}

func (r *repository) UpdateNotes(ctx context.Context, id int64, notes *string) (*Cart, error) {
	return scanCart(r.db.QueryRowContext(ctx, `
		UPDATE carts
		SET notes = $1, updated_at = NOW()
		WHERE cart_id = $2
		RETURNING `+cartColumns+`
	`, notes, id))
}

func (r *repository) UpdateStatus(ctx context.Context, id int64, status Status) (*Cart, error) {
	return scanCart(r.db.QueryRowContext(ctx, `
		UPDATE carts
		SET cart_status = $1, updated_at = NOW()
		WHERE cart_id = $2
		RETURNING `+cartColumns+`
	`, status, id))
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM carts WHERE cart_id = $1`, id)
	return err
}

const itemSelect = `
	SELECT ci.cart_id,
	       ci.product_id,
	       ci.quantity,
	       ci.company_id,
	       COALESCE(p.name, ''),
	       COALESCE(p.price, 0)
	FROM cart_items ci
	LEFT JOIN products p ON p.product_id = ci.product_id
`

func scanItem(row *sql.Row) (*Item, error) {
	i := &Item{}
	err := row.Scan(&i.CartID, &i.ProductID, &i.Quantity, &i.CompanyID, &i.ProductName, &i.UnitPrice)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return i, nil
}

func (r *repository) GetItems(ctx context.Context, cartID int64) ([]*Item, error) {
	rows, err := r.db.QueryContext(ctx, itemSelect+`
		WHERE ci.cart_id = $1
		ORDER BY ci.product_id
	`, cartID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []*Item{}
	for rows.Next() {
		i := &Item{}
		if err := rows.Scan(&i.CartID, &i.ProductID, &i.Quantity, &i.CompanyID, &i.ProductName, &i.UnitPrice); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

func (r *repository) GetItem(ctx context.Context, cartID, productID int64) (*Item, error) {
	return scanItem(r.db.QueryRowContext(ctx, itemSelect+`
		WHERE ci.cart_id = $1 AND ci.product_id = $2
	`, cartID, productID))
}

func (r *repository) InsertItem(ctx context.Context, params AddItemParams) (*Item, error) {
	i := &Item{}
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO cart_items (cart_id, product_id, quantity, company_id)
		VALUES ($1, $2, $3, $4)
		RETURNING cart_id, product_id, quantity, company_id
	`, params.CartID, params.ProductID, params.Quantity, params.CompanyID).
		Scan(&i.CartID, &i.ProductID, &i.Quantity, &i.CompanyID)
	if err != nil {
		return nil, err
	}
	return i, nil
}

func (r *repository) UpdateItemQuantity(ctx context.Context, cartID, productID, quantity int64) (*Item, error) {
	i := &Item{}
	err := r.db.QueryRowContext(ctx, `
		UPDATE cart_items
		SET quantity = $1
		WHERE cart_id = $2 AND product_id = $3
		RETURNING cart_id, product_id, quantity, company_id
	`, quantity, cartID, productID).
		Scan(&i.CartID, &i.ProductID, &i.Quantity, &i.CompanyID)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return i, nil
}

func (r *repository) DeleteItem(ctx context.Context, cartID, productID int64) error {
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM cart_items WHERE cart_id = $1 AND product_id = $2
	`, cartID, productID)
	return err
}

func (r *repository) ClearItems(ctx context.Context, cartID int64) error {
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM cart_items WHERE cart_id = $1
	`, cartID)
	return err
}

func (r *repository) CountItems(ctx context.Context, cartID int64) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(quantity), 0) FROM cart_items WHERE cart_id = $1
	`, cartID).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}
