package sqlxrepos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/core"
	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/core/course"
)

type courseRow struct {
	ID          string      `db:"id"`
	Title       string      `db:"title"`
	Description string      `db:"description"`
	Price       float64     `db:"price"`
	Duration    string      `db:"duration"`
	ImageURL    null.String `db:"image_url"`
	IsPublished bool        `db:"is_published"`
	CreatedAt   time.Time   `db:"created_at"`
	UpdatedAt   time.Time   `db:"updated_at"`
}

func bindCourse(c course.Course) courseRow {
	return courseRow{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		Price:       c.Price,
		Duration:    c.Duration,
		ImageURL:    null.NewString(c.ImageURL, c.ImageURL != ""),
		IsPublished: c.IsPublished,
		CreatedAt:   c.CreatedAt.UTC(),
		UpdatedAt:   c.UpdatedAt.UTC(),
	}
}

func (r courseRow) unbind() course.Course {
	return course.Course{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Price:       r.Price,
		Duration:    r.Duration,
		ImageURL:    r.ImageURL.String,
		IsPublished: r.IsPublished,
		CreatedAt:   r.CreatedAt.UTC(),
		UpdatedAt:   r.UpdatedAt.UTC(),
	}
}

type courseRepository struct {
	db sqlx.ExtContext
}

var _ course.Repository = (*courseRepository)(nil) // interface compliance check

func NewCourseRepository(db sqlx.ExtContext) *courseRepository {
	return &courseRepository{db: db}
}

func (repo courseRepository) CreateCourse(ctx context.Context, c course.Course) (course.Course, error) {
	c.ID = uuid.New().String()
	const q = `INSERT INTO courses (id, title, description, price, duration, image_url, is_published, created_at, updated_at)
		VALUES (:id, :title, :description, :price, :duration, :image_url, :is_published, :created_at, :updated_at)`
	row := bindCourse(c)
	if _, err := sqlx.NamedExecContext(ctx, repo.db, q, row); err != nil {
		return course.Course{}, errors.Wrap(err, "inserting course")
	}
	return row.unbind(), nil
}

func (repo courseRepository) GetCourse(ctx context.Context, id string) (course.Course, error) {
	if !isUUID(id) {
		return course.Course{}, course.ErrNotFound
	}
	var row courseRow
	if err := sqlx.GetContext(ctx, repo.db, &row, `SELECT * FROM courses WHERE id = $1`, id); err != nil {
		return course.Course{}, trapNoRowsErr(err, course.ErrNotFound, "selecting course")
	}
	return row.unbind(), nil
}

func (repo courseRepository) QueryCourses(ctx context.Context, filter *course.QueryFilter, ordering []core.DBOrdering) ([]course.Course, error) {
	q := `SELECT * FROM courses`
	if filter != nil && filter.PublishedOnly {
		q += ` WHERE is_published`
	}
	var rows []courseRow
	if err := sqlx.SelectContext(ctx, repo.db, &rows, q+orderBy(ordering)); err != nil {
		return nil, errors.Wrap(err, "selecting courses")
	}
	courses := make([]course.Course, 0, len(rows))
	for _, r := range rows {
		courses = append(courses, r.unbind())
	}
	return courses, nil
}

func (repo courseRepository) UpdateCourse(ctx context.Context, c course.Course) (course.Course, error) {
	if !isUUID(c.ID) {
		return course.Course{}, course.ErrNotFound
	}
	const q = `UPDATE courses SET title = :title, description = :description, price = :price, duration = :duration,
		image_url = :image_url, is_published = :is_published, updated_at = :updated_at WHERE id = :id`
	row := bindCourse(c)
	res, err := sqlx.NamedExecContext(ctx, repo.db, q, row)
	if err != nil {
		return course.Course{}, errors.Wrap(err, "updating course")
	}
	if err = checkAffected(res, course.ErrNotFound, "updating course"); err != nil {
		return course.Course{}, err
	}
	return row.unbind(), nil
}

func (repo courseRepository) DeleteCourse(ctx context.Context, id string) error {
	if !isUUID(id) {
		return course.ErrNotFound
	}
	res, err := repo.db.ExecContext(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return errors.Wrap(err, "deleting course")
	}
	return checkAffected(res, course.ErrNotFound, "deleting course")
}

func (repo courseRepository) CountCourses(ctx context.Context) (int, error) {
	var n int
	if err := sqlx.GetContext(ctx, repo.db, &n, `SELECT count(*) FROM courses`); err != nil {
		return 0, errors.Wrap(err, "counting courses")
	}
	return n, nil
}
