package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kaan/studenthub/internal/app/models"
	"github.com/kaan/studenthub/internal/db"
	"github.com/kaan/studenthub/internal/pkg/apperrors"
	"github.com/kaan/studenthub/internal/pkg/dberrors"
	"github.com/kaan/studenthub/internal/pkg/helpers"
)

// FeeFilter narrows a fee listing.
type FeeFilter struct {
	Status       string
	FeeType      string
	Search       string
	StudentID    int64
	AcademicYear string
	Limit        int
	Offset       uint64
}

// FeeRepository handles database operations for fee records
type FeeRepository struct {
	db *pgxpool.Pool
}

// NewFeeRepository creates a new fee repository
func NewFeeRepository(db *pgxpool.Pool) *FeeRepository {
	return &FeeRepository{db: db}
}

// Create creates a new fee record
func (r *FeeRepository) Create(ctx context.Context, fee *models.Fee) error {
	query := `
		INSERT INTO fees (student_id, fee_type, amount, amount_paid, due_date, status, semester, academic_year, remarks)
		VALUES ($1, $2, $3, 0, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		fee.StudentID, fee.FeeType, fee.Amount, fee.DueDate,
		fee.Status, fee.Semester, fee.AcademicYear, fee.Remarks,
	).Scan(&fee.ID, &fee.CreatedAt, &fee.UpdatedAt)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrStudentNotFound
		}
		return fmt.Errorf("error creating fee: %w", err)
	}

	return nil
}

const feeColumns = `
	f.id, f.student_id, f.fee_type, f.amount, f.amount_paid, f.due_date,
	f.paid_date, f.payment_mode, f.transaction_ref, f.status, f.semester,
	f.academic_year, f.remarks, f.created_at, f.updated_at,
	s.first_name || ' ' || s.last_name AS student_name, s.student_number`

func scanFee(row pgx.Row, extra ...interface{}) (*models.Fee, error) {
	var fee models.Fee
	dest := []interface{}{
		&fee.ID,
		&fee.StudentID,
		&fee.FeeType,
		&fee.Amount,
		&fee.AmountPaid,
		&fee.DueDate,
		&fee.PaidDate,
		&fee.PaymentMode,
		&fee.TransactionRef,
		&fee.Status,
		&fee.Semester,
		&fee.AcademicYear,
		&fee.Remarks,
		&fee.CreatedAt,
		&fee.UpdatedAt,
		&fee.StudentName,
		&fee.StudentNumber,
	}
	dest = append(dest, extra...)

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return &fee, nil
}

// GetByID retrieves a fee record by ID
func (r *FeeRepository) GetByID(ctx context.Context, id int64) (*models.Fee, error) {
	query := `
		SELECT ` + feeColumns + `
		FROM fees f
		JOIN students s ON s.id = f.student_id
		WHERE f.id = $1
	`

	fee, err := scanFee(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrFeeNotFound
		}
		return nil, fmt.Errorf("error retrieving fee: %w", err)
	}

	return fee, nil
}

// GetAll retrieves fee records with filtering and pagination
func (r *FeeRepository) GetAll(ctx context.Context, filter FeeFilter) ([]*models.Fee, int64, error) {
	query := squirrel.Select(
		"f.id", "f.student_id", "f.fee_type", "f.amount", "f.amount_paid", "f.due_date",
		"f.paid_date", "f.payment_mode", "f.transaction_ref", "f.status", "f.semester",
		"f.academic_year", "f.remarks", "f.created_at", "f.updated_at",
		"s.first_name || ' ' || s.last_name AS student_name", "s.student_number",
		"COUNT(*) OVER() AS total_count",
	).
		From("fees f").
		Join("students s ON s.id = f.student_id").
		PlaceholderFormat(squirrel.Dollar)

	if filter.Status != "" {
		query = query.Where("f.status = ?", filter.Status)
	}
	if filter.FeeType != "" {
		query = query.Where("f.fee_type = ?", filter.FeeType)
	}
	if filter.StudentID > 0 {
		query = query.Where("f.student_id = ?", filter.StudentID)
	}
	if filter.AcademicYear != "" {
		query = query.Where("f.academic_year = ?", filter.AcademicYear)
	}
	if filter.Search != "" {
		pattern := "%" + helpers.EscapeLikePattern(filter.Search) + "%"
		query = query.Where(squirrel.Or{
			squirrel.ILike{"s.first_name": pattern},
			squirrel.ILike{"s.last_name": pattern},
			squirrel.ILike{"s.student_number": pattern},
		})
	}

	query = query.OrderBy("f.due_date, f.id").
		Limit(uint64(filter.Limit)).
		Offset(filter.Offset)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var fees []*models.Fee
	var total int64

	for rows.Next() {
		fee, err := scanFee(rows, &total)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning row: %w", err)
		}
		fees = append(fees, fee)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return fees, total, nil
}

// Summarize totals fee records matching the filter's non-paging fields
func (r *FeeRepository) Summarize(ctx context.Context, filter FeeFilter) (*models.Fee, int64, error) {
	query := squirrel.Select(
		"COALESCE(SUM(f.amount), 0)",
		"COALESCE(SUM(f.amount_paid), 0)",
		"COUNT(*) FILTER (WHERE f.status IN ('PEN', 'PAR', 'OVD'))",
	).
		From("fees f").
		Join("students s ON s.id = f.student_id").
		PlaceholderFormat(squirrel.Dollar)

	if filter.Status != "" {
		query = query.Where("f.status = ?", filter.Status)
	}
	if filter.FeeType != "" {
		query = query.Where("f.fee_type = ?", filter.FeeType)
	}
	if filter.StudentID > 0 {
		query = query.Where("f.student_id = ?", filter.StudentID)
	}
	if filter.AcademicYear != "" {
		query = query.Where("f.academic_year = ?", filter.AcademicYear)
	}
	if filter.Search != "" {
		pattern := "%" + helpers.EscapeLikePattern(filter.Search) + "%"
		query = query.Where(squirrel.Or{
			squirrel.ILike{"s.first_name": pattern},
			squirrel.ILike{"s.last_name": pattern},
			squirrel.ILike{"s.student_number": pattern},
		})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building SQL: %w", err)
	}

	var totals models.Fee
	var pendingCount int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&totals.Amount, &totals.AmountPaid, &pendingCount)
	if err != nil {
		return nil, 0, fmt.Errorf("error summarizing fees: %w", err)
	}

	return &totals, pendingCount, nil
}

// SummaryForStudent totals one student's fees
func (r *FeeRepository) SummaryForStudent(ctx context.Context, studentID int64) (totalAmount, totalPaid float64, pendingCount int64, err error) {
	err = r.db.QueryRow(ctx, `
		SELECT COALESCE(SUM(amount), 0), COALESCE(SUM(amount_paid), 0),
			COUNT(*) FILTER (WHERE status IN ('PEN', 'PAR', 'OVD'))
		FROM fees
		WHERE student_id = $1`, studentID).Scan(&totalAmount, &totalPaid, &pendingCount)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("error summarizing fees: %w", err)
	}
	return totalAmount, totalPaid, pendingCount, nil
}

// Update updates a fee's chargeable fields and status
func (r *FeeRepository) Update(ctx context.Context, fee *models.Fee) error {
	query := `
		UPDATE fees
		SET fee_type = $1, amount = $2, due_date = $3, status = $4,
			semester = $5, academic_year = $6, remarks = $7, updated_at = NOW()
		WHERE id = $8
	`

	cmdTag, err := r.db.Exec(ctx, query,
		fee.FeeType, fee.Amount, fee.DueDate, fee.Status,
		fee.Semester, fee.AcademicYear, fee.Remarks, fee.ID)
	if err != nil {
		return fmt.Errorf("error updating fee: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrFeeNotFound
	}

	return nil
}

// RecordPayment applies a payment to a fee inside a transaction. The fee
// row is locked so concurrent payments cannot overdraw the balance.
// apply receives the current fee and mutates its payment fields; the
// mutated fields are then written back.
func (r *FeeRepository) RecordPayment(ctx context.Context, id int64, apply func(fee *models.Fee) error) (*models.Fee, error) {
	var result *models.Fee
	err := db.WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		query := `
			SELECT ` + feeColumns + `
			FROM fees f
			JOIN students s ON s.id = f.student_id
			WHERE f.id = $1
			FOR UPDATE OF f
		`

		fee, err := scanFee(tx.QueryRow(ctx, query, id))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrFeeNotFound
			}
			return fmt.Errorf("error locking fee: %w", err)
		}

		if err := apply(fee); err != nil {
			return err
		}

		_, err = tx.Exec(ctx, `
			UPDATE fees
			SET amount_paid = $1, paid_date = $2, payment_mode = $3,
				transaction_ref = $4, status = $5, updated_at = NOW()
			WHERE id = $6`,
			fee.AmountPaid, fee.PaidDate, fee.PaymentMode,
			fee.TransactionRef, fee.Status, fee.ID)
		if err != nil {
			return fmt.Errorf("error recording payment: %w", err)
		}

		result = fee
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Delete deletes a fee record by ID
func (r *FeeRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM fees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting fee: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrFeeNotFound
	}

	return nil
}
