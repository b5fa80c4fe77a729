package sqlxrepos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/core"
	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/core/instructor"
)

type instructorRow struct {
	ID             string         `db:"id"`
	Name           string         `db:"name"`
	Role           string         `db:"role"`
	Bio            string         `db:"bio"`
	ImageURL       string         `db:"image_url"`
	ImageKey       null.String    `db:"image_key"`
	Certifications pq.StringArray `db:"certifications"`
	CreatedAt      time.Time      `db:"created_at"`
}

func bindInstructor(ins instructor.Instructor) instructorRow {
	certs := pq.StringArray(ins.Certifications)
	if certs == nil {
		certs = pq.StringArray{}
	}
	return instructorRow{
		ID:             ins.ID,
		Name:           ins.Name,
		Role:           ins.Role,
		Bio:            ins.Bio,
		ImageURL:       ins.ImageURL,
		ImageKey:       null.NewString(ins.ImageKey, ins.ImageKey != ""),
		Certifications: certs,
		CreatedAt:      ins.CreatedAt.UTC(),
	}
}

func (r instructorRow) unbind() instructor.Instructor {
	certs := []string(r.Certifications)
	if certs == nil {
		certs = []string{}
	}
	return instructor.Instructor{
		ID:             r.ID,
		Name:           r.Name,
		Role:           r.Role,
		Bio:            r.Bio,
		ImageURL:       r.ImageURL,
		ImageKey:       r.ImageKey.String,
		Certifications: certs,
		CreatedAt:      r.CreatedAt.UTC(),
	}
}

type instructorRepository struct {
	db sqlx.ExtContext
}

var _ instructor.Repository = (*instructorRepository)(nil) // interface compliance check

func NewInstructorRepository(db sqlx.ExtContext) *instructorRepository {
	return &instructorRepository{db: db}
}

func (repo instructorRepository) CreateInstructor(ctx context.Context, ins instructor.Instructor) (instructor.Instructor, error) {
	ins.ID = uuid.New().String()
	const q = `INSERT INTO instructors (id, name, role, bio, image_url, image_key, certifications, created_at)
		VALUES (:id, :name, :role, :bio, :image_url, :image_key, :certifications, :created_at)`
	row := bindInstructor(ins)
	if _, err := sqlx.NamedExecContext(ctx, repo.db, q, row); err != nil {
		return instructor.Instructor{}, errors.Wrap(err, "inserting instructor")
	}
	return row.unbind(), nil
}

func (repo instructorRepository) GetInstructor(ctx context.Context, id string) (instructor.Instructor, error) {
	if !isUUID(id) {
		return instructor.Instructor{}, instructor.ErrNotFound
	}
	var row instructorRow
	if err := sqlx.GetContext(ctx, repo.db, &row, `SELECT * FROM instructors WHERE id = $1`, id); err != nil {
		return instructor.Instructor{}, trapNoRowsErr(err, instructor.ErrNotFound, "selecting instructor")
	}
	return row.unbind(), nil
}

func (repo instructorRepository) QueryInstructors(ctx context.Context, ordering []core.DBOrdering) ([]instructor.Instructor, error) {
	var rows []instructorRow
	if err := sqlx.SelectContext(ctx, repo.db, &rows, `SELECT * FROM instructors`+orderBy(ordering)); err != nil {
		return nil, errors.Wrap(err, "selecting instructors")
	}
	instructors := make([]instructor.Instructor, 0, len(rows))
	for _, r := range rows {
		instructors = append(instructors, r.unbind())
	}
	return instructors, nil
}

func (repo instructorRepository) UpdateInstructor(ctx context.Context, ins instructor.Instructor) (instructor.Instructor, error) {
	if !isUUID(ins.ID) {
		return instructor.Instructor{}, instructor.ErrNotFound
	}
	const q = `UPDATE instructors SET name = :name, role = :role, bio = :bio, image_url = :image_url,
		image_key = :image_key, certifications = :certifications WHERE id = :id`
	row := bindInstructor(ins)
	res, err := sqlx.NamedExecContext(ctx, repo.db, q, row)
	if err != nil {
		return instructor.Instructor{}, errors.Wrap(err, "updating instructor")
	}
	if err = checkAffected(res, instructor.ErrNotFound, "updating instructor"); err != nil {
		return instructor.Instructor{}, err
	}
	return row.unbind(), nil
}

func (repo instructorRepository) DeleteInstructor(ctx context.Context, id string) error {
	if !isUUID(id) {
		return instructor.ErrNotFound
	}
	res, err := repo.db.ExecContext(ctx, `DELETE FROM instructors WHERE id = $1`, id)
	if err != nil {
		return errors.Wrap(err, "deleting instructor")
	}
	return checkAffected(res, instructor.ErrNotFound, "deleting instructor")
}
