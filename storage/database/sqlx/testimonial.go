package sqlxrepos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/core"
	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/core/testimonial"
)

type testimonialRow struct {
	ID          string    `db:"id"`
	Name        string    `db:"name"`
	Role        string    `db:"role"`
	Content     string    `db:"content"`
	Rating      int       `db:"rating"`
	IsPublished bool      `db:"is_published"`
	CreatedAt   time.Time `db:"created_at"`
}

func (r testimonialRow) unbind() testimonial.Testimonial {
	return testimonial.Testimonial{
		ID:          r.ID,
		Name:        r.Name,
		Role:        r.Role,
		Content:     r.Content,
		Rating:      r.Rating,
		IsPublished: r.IsPublished,
		CreatedAt:   r.CreatedAt.UTC(),
	}
}

func bindTestimonial(t testimonial.Testimonial) testimonialRow {
	return testimonialRow{
		ID:          t.ID,
		Name:        t.Name,
		Role:        t.Role,
		Content:     t.Content,
		Rating:      t.Rating,
		IsPublished: t.IsPublished,
		CreatedAt:   t.CreatedAt.UTC(),
	}
}

type testimonialRepository struct {
	db sqlx.ExtContext
}

var _ testimonial.Repository = (*testimonialRepository)(nil) // interface compliance check

func NewTestimonialRepository(db sqlx.ExtContext) *testimonialRepository {
	return &testimonialRepository{db: db}
}

func (repo testimonialRepository) CreateTestimonial(ctx context.Context, t testimonial.Testimonial) (testimonial.Testimonial, error) {
	t.ID = uuid.New().String()
	const q = `INSERT INTO testimonials (id, name, role, content, rating, is_published, created_at)
		VALUES (:id, :name, :role, :content, :rating, :is_published, :created_at)`
	row := bindTestimonial(t)
	if _, err := sqlx.NamedExecContext(ctx, repo.db, q, row); err != nil {
		return testimonial.Testimonial{}, errors.Wrap(err, "inserting testimonial")
	}
	return row.unbind(), nil
}

func (repo testimonialRepository) GetTestimonial(ctx context.Context, id string) (testimonial.Testimonial, error) {
	if !isUUID(id) {
		return testimonial.Testimonial{}, testimonial.ErrNotFound
	}
	var row testimonialRow
	if err := sqlx.GetContext(ctx, repo.db, &row, `SELECT * FROM testimonials WHERE id = $1`, id); err != nil {
		return testimonial.Testimonial{}, trapNoRowsErr(err, testimonial.ErrNotFound, "selecting testimonial")
	}
	return row.unbind(), nil
}

func (repo testimonialRepository) QueryTestimonials(ctx context.Context, filter *testimonial.QueryFilter, ordering []core.DBOrdering) ([]testimonial.Testimonial, error) {
	q := `SELECT * FROM testimonials`
	if filter != nil && filter.PublishedOnly {
		q += ` WHERE is_published`
	}
	var rows []testimonialRow
	if err := sqlx.SelectContext(ctx, repo.db, &rows, q+orderBy(ordering)); err != nil {
		return nil, errors.Wrap(err, "selecting testimonials")
	}
	ts := make([]testimonial.Testimonial, 0, len(rows))
	for _, r := range rows {
		ts = append(ts, r.unbind())
	}
	return ts, nil
}

func (repo testimonialRepository) UpdateTestimonial(ctx context.Context, t testimonial.Testimonial) (testimonial.Testimonial, error) {
	if !isUUID(t.ID) {
		return testimonial.Testimonial{}, testimonial.ErrNotFound
	}
	const q = `UPDATE testimonials SET name = :name, role = :role, content = :content, rating = :rating,
		is_published = :is_published WHERE id = :id`
	row := bindTestimonial(t)
	res, err := sqlx.NamedExecContext(ctx, repo.db, q, row)
	if err != nil {
		return testimonial.Testimonial{}, errors.Wrap(err, "updating testimonial")
	}
	if err = checkAffected(res, testimonial.ErrNotFound, "updating testimonial"); err != nil {
		return testimonial.Testimonial{}, err
	}
	return row.unbind(), nil
}

func (repo testimonialRepository) DeleteTestimonial(ctx context.Context, id string) error {
	if !isUUID(id) {
		return testimonial.ErrNotFound
	}
	res, err := repo.db.ExecContext(ctx, `DELETE FROM testimonials WHERE id = $1`, id)
	if err != nil {
		return errors.Wrap(err, "deleting testimonial")
	}
	return checkAffected(res, testimonial.ErrNotFound, "deleting testimonial")
}

func (repo testimonialRepository) CountTestimonials(ctx context.Context) (int, error) {
	var n int
	if err := sqlx.GetContext(ctx, repo.db, &n, `SELECT count(*) FROM testimonials`); err != nil {
		return 0, errors.Wrap(err, "counting testimonials")
	}
	return n, nil
}
