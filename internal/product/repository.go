package product

import (
	"context"
	"database/sql"
)

type Repository interface {
	GetByCompanyID(ctx context.Context, companyID int64) ([]*Product, error)
	GetByID(ctx context.Context, id int64) (*Product, error)
	GetName(ctx context.Context, id int64) (string, error)
	Create(ctx context.Context, companyID int64, params CreateProductParams) (*Product, error)
	Update(ctx context.Context, id int64, params UpdateProductParams) (*Product, error)
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, companyID int64, query string) ([]*Product, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetByCompanyID(ctx context.Context, companyID int64) ([]*Product, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT product_id, name, price, description, company_id, date_created
		FROM products
		WHERE company_id = $1
		ORDER BY name
	`, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanProducts(rows)
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Product, error) {
	p := &Product{}
	err := r.db.QueryRowContext(ctx, `
		SELECT product_id, name, price, description, company_id, date_created
		FROM products
		WHERE product_id = $1
	`, id).Scan(&p.ID, &p.Name, &p.Price, &p.Description, &p.CompanyID, &p.DateCreated)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return p, nil
}

func (r *repository) GetName(ctx context.Context, id int64) (string, error) {
	var name string
	err := r.db.QueryRowContext(ctx, `
		SELECT name FROM products WHERE product_id = $1
	`, id).Scan(&name)

	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	return name, nil
}

func (r *repository) Create(ctx context.Context, companyID int64, params CreateProductParams) (*Product, error) {
	p := &Product{}
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO products (name, price, description, company_id)
		VALUES ($1, $2, $3, $4)
		RETURNING product_id, name, price, description, company_id, date_created
	`, params.Name, params.Price, params.Description, companyID).
		Scan(&p.ID, &p.Name, &p.Price, &p.Description, &p.CompanyID, &p.DateCreated)
	if err != nil {
		return nil, err
	}

	for _, url := range params.Images {
		if _, err := r.db.ExecContext(ctx, `
			INSERT INTO product_images (product_id, image_url) VALUES ($1, $2)
		`, p.ID, url); err != nil {
			return nil, err
		}
	}
	p.Images = params.Images

	return p, nil
}

func (r *repository) Update(ctx context.Context, id int64, params UpdateProductParams) (*Product, error) {
	p := &Product{}
	err := r.db.QueryRowContext(ctx, `
		UPDATE products
		SET name        = COALESCE($1, name),
		    price       = COALESCE($2, price),
		    description = COALESCE($3, description)
		WHERE product_id = $4
		RETURNING product_id, name, price, description, company_id, date_created
	`, params.Name, params.Price, params.Description, id).
		Scan(&p.ID, &p.Name, &p.Price, &p.Description, &p.CompanyID, &p.DateCreated)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return p, nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE product_id = $1`, id)
	return err
}

func (r *repository) Search(ctx context.Context, companyID int64, query string) ([]*Product, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT product_id, name, price, description, company_id, date_created
		FROM products
		WHERE company_id = $1
		  AND (name ILIKE '%' || $2 || '%' OR description ILIKE '%' || $2 || '%')
		ORDER BY name
	`, companyID, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanProducts(rows)
}

func scanProducts(rows *sql.Rows) ([]*Product, error) {
	products := []*Product{}
	for rows.Next() {
		p := &Product{}
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Description, &p.CompanyID, &p.DateCreated); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
