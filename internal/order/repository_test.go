package order

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func orderRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"order_id", "order_total", "date_created", "status", "paid",
		"notes", "user_id", "expected_delivery_date", "company_id",
	})
}

func TestRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := orderRows().
			AddRow(1, 150.0, time.Now(), "PENDING", true, nil, 3, time.Now(), 7)

		mock.ExpectQuery(`SELECT .* FROM orders WHERE order_id = \$1 AND company_id = \$2`).
			WithArgs(int64(1), int64(7)).
			WillReturnRows(rows)

		o, err := repo.GetByID(ctx, 1, 7)
		assert.NoError(t, err)
		require.NotNil(t, o)
		assert.Equal(t, int64(1), o.ID)
		assert.Equal(t, 150.0, o.OrderTotal)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM orders WHERE order_id = \$1 AND company_id = \$2`).
			WithArgs(int64(1), int64(7)).
			WillReturnRows(orderRows())

		o, err := repo.GetByID(ctx, 1, 7)
		assert.NoError(t, err)
		assert.Nil(t, o)
	})
}

func TestRepository_GetDailyProductNeeds(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	end := start.Add(24*time.Hour - time.Nanosecond)

	t.Run("Success", func(t *testing.T) {
		// 1. Qualifying orders for the window.
		mock.ExpectQuery(`SELECT order_id FROM orders WHERE company_id = \$1 AND paid = true AND status <> \$2`).
			WithArgs(int64(7), StatusCompleted, start, end).
			WillReturnRows(sqlmock.NewRows([]string{"order_id"}).AddRow(10).AddRow(11))

		// 2. Aggregated demand across those orders.
		mock.ExpectQuery(`SELECT .* FROM order_products op LEFT JOIN products p ON p.product_id = op.product_id WHERE op.order_id = ANY\(\$1\) AND op.company_id = \$2 GROUP BY op.product_id, p.name ORDER BY op.product_id`).
			WithArgs(pq.Array([]int64{10, 11}), int64(7)).
			WillReturnRows(sqlmock.NewRows([]string{"product_id", "name", "sum"}).
				AddRow(1, "Chair", 4).
				AddRow(2, "Table", 2))

		needs, err := repo.GetDailyProductNeeds(ctx, 7, start, end)
		assert.NoError(t, err)
		require.Len(t, needs, 2)
		assert.Equal(t, int64(1), needs[0].ProductID)
		assert.Equal(t, int64(4), needs[0].QuantityNeeded)
		assert.Equal(t, "Chair", needs[0].ProductName)
	})

	t.Run("NoOrdersSkipsAggregation", func(t *testing.T) {
		mock.ExpectQuery(`SELECT order_id FROM orders`).
			WithArgs(int64(7), StatusCompleted, start, end).
			WillReturnRows(sqlmock.NewRows([]string{"order_id"}))

		needs, err := repo.GetDailyProductNeeds(ctx, 7, start, end)
		assert.NoError(t, err)
		assert.Nil(t, needs)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("DBError", func(t *testing.T) {
		mock.ExpectQuery(`SELECT order_id FROM orders`).
			WillReturnError(errors.New("db error"))

		_, err := repo.GetDailyProductNeeds(ctx, 7, start, end)
		assert.Error(t, err)
	})
}

func TestRepository_CreateWithLines(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	delivery := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)
	o := &Order{
		OrderTotal:           25.0,
		Status:               "PENDING",
		Paid:                 false,
		UserID:               3,
		ExpectedDeliveryDate: delivery,
		CompanyID:            7,
	}
	lines := []*Line{
		{ProductID: 1, Quantity: 2, UnitPrice: 10, Total: 20, CompanyID: 7},
		{ProductID: 2, Quantity: 1, UnitPrice: 5, Total: 5, CompanyID: 7},
	}

	t.Run("Success", func(t *testing.T) {
		mock.ExpectBegin()

		// 1. Insert order
		mock.ExpectQuery(`INSERT INTO orders`).
			WithArgs(o.OrderTotal, o.Status, o.Paid, o.Notes, o.UserID, o.ExpectedDeliveryDate, o.CompanyID).
			WillReturnRows(orderRows().
				AddRow(100, 25.0, time.Now(), "PENDING", false, nil, 3, delivery, 7))

		// 2. Insert order lines
		mock.ExpectExec(`INSERT INTO order_products`).
			WithArgs(int64(100), lines[0].ProductID, lines[0].Quantity, lines[0].UnitPrice, lines[0].Total, lines[0].CompanyID).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec(`INSERT INTO order_products`).
			WithArgs(int64(100), lines[1].ProductID, lines[1].Quantity, lines[1].UnitPrice, lines[1].Total, lines[1].CompanyID).
			WillReturnResult(sqlmock.NewResult(2, 1))

		// 3. Complete the source cart
		mock.ExpectExec(`UPDATE carts SET cart_status = 'COMPLETED'`).
			WithArgs(int64(9), int64(7)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		mock.ExpectCommit()

		created, err := repo.CreateWithLines(ctx, o, lines, 9)
		assert.NoError(t, err)
		assert.Equal(t, int64(100), created.ID)
		assert.Equal(t, int64(100), lines[0].OrderID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("InsertOrderError", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO orders`).
			WillReturnError(errors.New("insert error"))
		mock.ExpectRollback()

		_, err := repo.CreateWithLines(ctx, o, lines, 9)
		assert.Error(t, err)
	})

	t.Run("InsertLineError", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO orders`).
			WillReturnRows(orderRows().
				AddRow(100, 25.0, time.Now(), "PENDING", false, nil, 3, delivery, 7))
		mock.ExpectExec(`INSERT INTO order_products`).
			WillReturnError(errors.New("insert line error"))
		mock.ExpectRollback()

		_, err := repo.CreateWithLines(ctx, o, lines, 9)
		assert.Error(t, err)
	})

	t.Run("CartUpdateError", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO orders`).
			WillReturnRows(orderRows().
				AddRow(100, 25.0, time.Now(), "PENDING", false, nil, 3, delivery, 7))
		mock.ExpectExec(`INSERT INTO order_products`).WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec(`INSERT INTO order_products`).WillReturnResult(sqlmock.NewResult(2, 1))
		mock.ExpectExec(`UPDATE carts`).
			WillReturnError(errors.New("cart update error"))
		mock.ExpectRollback()

		_, err := repo.CreateWithLines(ctx, o, lines, 9)
		assert.Error(t, err)
	})
}

func TestRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM orders WHERE order_id = \$1 AND company_id = \$2`).
			WithArgs(int64(1), int64(7)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(ctx, 1, 7))
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM orders`).
			WithArgs(int64(1), int64(7)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(ctx, 1, 7)
		assert.Equal(t, ErrOrderNotFound, err)
	})
}
