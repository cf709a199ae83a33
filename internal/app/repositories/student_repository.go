package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kaan/studenthub/internal/app/models"
	"github.com/kaan/studenthub/internal/pkg/apperrors"
	"github.com/kaan/studenthub/internal/pkg/dberrors"
	"github.com/kaan/studenthub/internal/pkg/helpers"
)

// Unique constraint names from the schema, used to tell conflicts apart.
const (
	constraintStudentEmail      = "students_email_key"
	constraintStudentNumber     = "students_student_number_key"
	constraintStudentNationalID = "students_national_id_key"
)

// StudentFilter narrows and orders a student listing.
type StudentFilter struct {
	Search       string
	DepartmentID int64
	Semester     int
	Status       string // "active", "inactive" or empty
	SortBy       string
	SortOrder    string
	Limit        int
	Offset       uint64
}

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{db: db}
}

const studentColumns = `
	s.id, s.student_number, s.first_name, s.last_name, s.email, s.phone,
	s.date_of_birth, s.gender, s.blood_group, s.address, s.city, s.state,
	s.postal_code, s.guardian_name, s.guardian_phone, s.national_id,
	s.category, s.department_id, s.admission_date, s.semester, s.gpa,
	s.total_credits, s.is_active, s.created_at, s.updated_at, d.name AS department_name`

func scanStudent(row pgx.Row, extra ...interface{}) (*models.Student, error) {
	var student models.Student
	dest := []interface{}{
		&student.ID,
		&student.StudentNumber,
		&student.FirstName,
		&student.LastName,
		&student.Email,
		&student.Phone,
		&student.DateOfBirth,
		&student.Gender,
		&student.BloodGroup,
		&student.Address,
		&student.City,
		&student.State,
		&student.PostalCode,
		&student.GuardianName,
		&student.GuardianPhone,
		&student.NationalID,
		&student.Category,
		&student.DepartmentID,
		&student.AdmissionDate,
		&student.Semester,
		&student.GPA,
		&student.TotalCredits,
		&student.IsActive,
		&student.CreatedAt,
		&student.UpdatedAt,
		&student.DepartmentName,
	}
	dest = append(dest, extra...)

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return &student, nil
}

// NextStudentNumber draws the next value from the student number sequence.
// Sequence gaps from rolled-back inserts are acceptable.
func (r *StudentRepository) NextStudentNumber(ctx context.Context) (string, error) {
	var seq int64
	if err := r.db.QueryRow(ctx, `SELECT nextval('student_number_seq')`).Scan(&seq); err != nil {
		return "", fmt.Errorf("error generating student number: %w", err)
	}
	return models.FormatStudentNumber(seq), nil
}

// Create creates a new student record
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (
			student_number, first_name, last_name, email, phone, date_of_birth,
			gender, blood_group, address, city, state, postal_code,
			guardian_name, guardian_phone, national_id, category, department_id,
			admission_date, semester, gpa, total_credits, is_active
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		student.StudentNumber, student.FirstName, student.LastName, student.Email,
		student.Phone, student.DateOfBirth, student.Gender, student.BloodGroup,
		student.Address, student.City, student.State, student.PostalCode,
		student.GuardianName, student.GuardianPhone, student.NationalID,
		student.Category, student.DepartmentID, student.AdmissionDate,
		student.Semester, student.GPA, student.TotalCredits, student.IsActive,
	).Scan(&student.ID, &student.CreatedAt, &student.UpdatedAt)
	if err != nil {
		return r.mapWriteError(err)
	}

	return nil
}

func (r *StudentRepository) mapWriteError(err error) error {
	switch {
	case dberrors.IsDuplicateConstraintError(err, constraintStudentEmail):
		return apperrors.ErrStudentEmailExists
	case dberrors.IsDuplicateConstraintError(err, constraintStudentNumber):
		return apperrors.ErrStudentNumberExists
	case dberrors.IsDuplicateConstraintError(err, constraintStudentNationalID):
		return apperrors.ErrStudentNationalIDExists
	case dberrors.IsForeignKeyViolation(err):
		return apperrors.ErrStudentDepartmentNotFound
	}
	return fmt.Errorf("error writing student: %w", err)
}

// GetByID retrieves a student by ID
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	query := `
		SELECT ` + studentColumns + `
		FROM students s
		LEFT JOIN departments d ON d.id = s.department_id
		WHERE s.id = $1
	`

	student, err := scanStudent(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return student, nil
}

// GetAll retrieves students with filtering, sorting and pagination
func (r *StudentRepository) GetAll(ctx context.Context, filter StudentFilter) ([]*models.Student, int64, error) {
	query := squirrel.Select(
		"s.id", "s.student_number", "s.first_name", "s.last_name", "s.email", "s.phone",
		"s.date_of_birth", "s.gender", "s.blood_group", "s.address", "s.city", "s.state",
		"s.postal_code", "s.guardian_name", "s.guardian_phone", "s.national_id",
		"s.category", "s.department_id", "s.admission_date", "s.semester", "s.gpa",
		"s.total_credits", "s.is_active", "s.created_at", "s.updated_at",
		"d.name AS department_name",
		"COUNT(*) OVER() AS total_count",
	).
		From("students s").
		LeftJoin("departments d ON d.id = s.department_id").
		PlaceholderFormat(squirrel.Dollar)

	if filter.Search != "" {
		pattern := "%" + helpers.EscapeLikePattern(filter.Search) + "%"
		query = query.Where(squirrel.Or{
			squirrel.ILike{"s.first_name": pattern},
			squirrel.ILike{"s.last_name": pattern},
			squirrel.ILike{"s.email": pattern},
			squirrel.ILike{"s.student_number": pattern},
		})
	}
	if filter.DepartmentID > 0 {
		query = query.Where("s.department_id = ?", filter.DepartmentID)
	}
	if filter.Semester > 0 {
		query = query.Where("s.semester = ?", filter.Semester)
	}
	switch filter.Status {
	case "active":
		query = query.Where("s.is_active")
	case "inactive":
		query = query.Where("NOT s.is_active")
	}

	query = query.OrderBy(studentOrderClause(filter.SortBy, filter.SortOrder)).
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

	var students []*models.Student
	var total int64

	for rows.Next() {
		student, err := scanStudent(rows, &total)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning row: %w", err)
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return students, total, nil
}

// studentOrderClause whitelists sortable columns. Unknown values fall
// back to the student number.
func studentOrderClause(sortBy, sortOrder string) string {
	column := "s.student_number"
	switch sortBy {
	case "first_name":
		column = "s.first_name"
	case "gpa":
		column = "s.gpa"
	case "created_at":
		column = "s.created_at"
	case "student_number", "":
	}

	direction := "ASC"
	if sortOrder == "desc" {
		direction = "DESC"
	}
	return column + " " + direction
}

// Update updates an existing student record
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	query := `
		UPDATE students
		SET first_name = $1, last_name = $2, email = $3, phone = $4,
			date_of_birth = $5, gender = $6, blood_group = $7, address = $8,
			city = $9, state = $10, postal_code = $11, guardian_name = $12,
			guardian_phone = $13, national_id = $14, category = $15,
			department_id = $16, semester = $17, gpa = $18, total_credits = $19,
			is_active = $20, updated_at = NOW()
		WHERE id = $21
	`

	cmdTag, err := r.db.Exec(ctx, query,
		student.FirstName, student.LastName, student.Email, student.Phone,
		student.DateOfBirth, student.Gender, student.BloodGroup, student.Address,
		student.City, student.State, student.PostalCode, student.GuardianName,
		student.GuardianPhone, student.NationalID, student.Category,
		student.DepartmentID, student.Semester, student.GPA, student.TotalCredits,
		student.IsActive, student.ID)
	if err != nil {
		return r.mapWriteError(err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// Delete deletes a student by ID. Enrollments, attendance and fees
// cascade at the schema level.
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}
