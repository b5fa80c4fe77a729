package sqlxrepos

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/core"
	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/core/enrollment"
)

type enrollmentRow struct {
	ID         string    `db:"id"`
	FullName   string    `db:"full_name"`
	Email      string    `db:"email"`
	Phone      string    `db:"phone"`
	CourseName string    `db:"course_name"`
	Status     string    `db:"status"`
	CreatedAt  time.Time `db:"created_at"`
}

func (r enrollmentRow) unbind() enrollment.Enrollment {
	return enrollment.Enrollment{
		ID:         r.ID,
		FullName:   r.FullName,
		Email:      r.Email,
		Phone:      r.Phone,
		CourseName: r.CourseName,
		Status:     r.Status,
		CreatedAt:  r.CreatedAt.UTC(),
	}
}

type enrollmentRepository struct {
	db sqlx.ExtContext
}

var _ enrollment.Repository = (*enrollmentRepository)(nil) // interface compliance check

func NewEnrollmentRepository(db sqlx.ExtContext) *enrollmentRepository {
	return &enrollmentRepository{db: db}
}

func (repo enrollmentRepository) CreateEnrollment(ctx context.Context, e enrollment.Enrollment) (enrollment.Enrollment, error) {
	row := enrollmentRow{
		ID:         uuid.New().String(),
		FullName:   e.FullName,
		Email:      e.Email,
		Phone:      e.Phone,
		CourseName: e.CourseName,
		Status:     e.Status,
		CreatedAt:  e.CreatedAt.UTC(),
	}
	const q = `INSERT INTO enrollments (id, full_name, email, phone, course_name, status, created_at)
		VALUES (:id, :full_name, :email, :phone, :course_name, :status, :created_at)`
	if _, err := sqlx.NamedExecContext(ctx, repo.db, q, row); err != nil {
		return enrollment.Enrollment{}, errors.Wrap(err, "inserting enrollment")
	}
	return row.unbind(), nil
}

func (repo enrollmentRepository) GetEnrollment(ctx context.Context, id string) (enrollment.Enrollment, error) {
	if !isUUID(id) {
		return enrollment.Enrollment{}, enrollment.ErrNotFound
	}
	var row enrollmentRow
	if err := sqlx.GetContext(ctx, repo.db, &row, `SELECT * FROM enrollments WHERE id = $1`, id); err != nil {
		return enrollment.Enrollment{}, trapNoRowsErr(err, enrollment.ErrNotFound, "selecting enrollment")
	}
	return row.unbind(), nil
}

func (repo enrollmentRepository) QueryEnrollments(ctx context.Context, filter *enrollment.QueryFilter, ordering []core.DBOrdering) ([]enrollment.Enrollment, error) {
	q := `SELECT * FROM enrollments`
	var args []interface{}
	if filter != nil && filter.Status != "" {
		q += ` WHERE status = $1`
		args = append(args, filter.Status)
	}
	var rows []enrollmentRow
	if err := sqlx.SelectContext(ctx, repo.db, &rows, q+orderBy(ordering), args...); err != nil {
		return nil, errors.Wrap(err, "selecting enrollments")
	}
	es := make([]enrollment.Enrollment, 0, len(rows))
	for _, r := range rows {
		es = append(es, r.unbind())
	}
	return es, nil
}

func (repo enrollmentRepository) ApproveEnrollment(ctx context.Context, id string) (enrollment.Enrollment, bool, error) {
	if !isUUID(id) {
		return enrollment.Enrollment{}, false, enrollment.ErrNotFound
	}
	const q = `UPDATE enrollments SET status = $2 WHERE id = $1 AND status = $3 RETURNING *`
	var row enrollmentRow
	err := sqlx.GetContext(ctx, repo.db, &row, q, id, enrollment.StatusApproved, enrollment.StatusPending)
	if err == sql.ErrNoRows {
		return enrollment.Enrollment{}, false, nil
	} else if err != nil {
		return enrollment.Enrollment{}, false, errors.Wrap(err, "approving enrollment")
	}
	return row.unbind(), true, nil
}

func (repo enrollmentRepository) CountEnrollments(ctx context.Context, filter *enrollment.QueryFilter) (int, error) {
	q := `SELECT count(*) FROM enrollments`
	var args []interface{}
	if filter != nil && filter.Status != "" {
		q += ` WHERE status = $1`
		args = append(args, filter.Status)
	}
	var n int
	if err := sqlx.GetContext(ctx, repo.db, &n, q, args...); err != nil {
		return 0, errors.Wrap(err, "counting enrollments")
	}
	return n, nil
}
