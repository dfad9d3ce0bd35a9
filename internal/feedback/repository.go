package feedback

import (
	"context"
	"database/sql"
)

type Repository interface {
	GetByUserID(ctx context.Context, userID int64) ([]*Feedback, error)
	GetByCompanyID(ctx context.Context, companyID int64) ([]*Feedback, error)
	GetByID(ctx context.Context, id int64) (*Feedback, error)
	Create(ctx context.Context, userID, companyID int64, message string) (*Feedback, error)
	MarkResolved(ctx context.Context, id, companyID int64) (*Feedback, error)
	Delete(ctx context.Context, id, userID int64) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const feedbackColumns = `feedback_id, user_id, company_id, message, date_created, resolved`

func scanFeedback(row *sql.Row) (*Feedback, error) {
	var f Feedback
	err := row.Scan(&f.ID, &f.UserID, &f.CompanyID, &f.Message, &f.DateCreated, &f.Resolved)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func scanFeedbackRows(rows *sql.Rows) ([]*Feedback, error) {
	defer rows.Close()

	var feedback []*Feedback
	for rows.Next() {
		var f Feedback
		if err := rows.Scan(&f.ID, &f.UserID, &f.CompanyID, &f.Message, &f.DateCreated, &f.Resolved); err != nil {
			return nil, err
		}
		feedback = append(feedback, &f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return feedback, nil
}

func (r *repository) GetByUserID(ctx context.Context, userID int64) ([]*Feedback, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+feedbackColumns+`
		FROM customer_feedback
		WHERE user_id = $1
		ORDER BY date_created DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	return scanFeedbackRows(rows)
}

func (r *repository) GetByCompanyID(ctx context.Context, companyID int64) ([]*Feedback, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+feedbackColumns+`
		FROM customer_feedback
		WHERE company_id = $1
		ORDER BY date_created DESC
	`, companyID)
	if err != nil {
		return nil, err
	}
	return scanFeedbackRows(rows)
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Feedback, error) {
	return scanFeedback(r.db.QueryRowContext(ctx, `
		SELECT `+feedbackColumns+`
		FROM customer_feedback
		WHERE feedback_id = $1
	`, id))
}

func (r *repository) Create(ctx context.Context, userID, companyID int64, message string) (*Feedback, error) {
	return scanFeedback(r.db.QueryRowContext(ctx, `
		INSERT INTO customer_feedback (user_id, company_id, message, resolved)
		VALUES ($1, $2, $3, false)
		RETURNING `+feedbackColumns+`
	`, userID, companyID, message))
}

func (r *repository) MarkResolved(ctx context.Context, id, companyID int64) (*Feedback, error) {
	return scanFeedback(r.db.QueryRowContext(ctx, `
		UPDATE customer_feedback
		SET resolved = true
		WHERE feedback_id = $1 AND company_id = $2
		RETURNING `+feedbackColumns+`
	`, id, companyID))
}

// Delete is scoped to the author: users may retract their own feedback.
func (r *repository) Delete(ctx context.Context, id, userID int64) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM customer_feedback WHERE feedback_id = $1 AND user_id = $2
	`, id, userID)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrFeedbackNotFound
	}
	return nil
}
