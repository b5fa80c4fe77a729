package sqlxrepos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/core"
	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/core/gallery"
)

type galleryRow struct {
	ID        string      `db:"id"`
	Title     string      `db:"title"`
	Category  string      `db:"category"`
	ImageURL  string      `db:"image_url"`
	ImageKey  null.String `db:"image_key"`
	Type      string      `db:"type"`
	CreatedAt time.Time   `db:"created_at"`
}

func bindItem(item gallery.Item) galleryRow {
	return galleryRow{
		ID:        item.ID,
		Title:     item.Title,
		Category:  item.Category,
		ImageURL:  item.ImageURL,
		ImageKey:  null.NewString(item.ImageKey, item.ImageKey != ""),
		Type:      item.Type,
		CreatedAt: item.CreatedAt.UTC(),
	}
}

func (r galleryRow) unbind() gallery.Item {
	return gallery.Item{
		ID:        r.ID,
		Title:     r.Title,
		Category:  r.Category,
		ImageURL:  r.ImageURL,
		ImageKey:  r.ImageKey.String,
		Type:      r.Type,
		CreatedAt: r.CreatedAt.UTC(),
	}
}

type galleryRepository struct {
	db sqlx.ExtContext
}

var _ gallery.Repository = (*galleryRepository)(nil) // interface compliance check

func NewGalleryRepository(db sqlx.ExtContext) *galleryRepository {
	return &galleryRepository{db: db}
}

func (repo galleryRepository) CreateItem(ctx context.Context, item gallery.Item) (gallery.Item, error) {
	item.ID = uuid.New().String()
	const q = `INSERT INTO gallery (id, title, category, image_url, image_key, type, created_at)
		VALUES (:id, :title, :category, :image_url, :image_key, :type, :created_at)`
	row := bindItem(item)
	if _, err := sqlx.NamedExecContext(ctx, repo.db, q, row); err != nil {
		return gallery.Item{}, errors.Wrap(err, "inserting gallery item")
	}
	return row.unbind(), nil
}

func (repo galleryRepository) GetItem(ctx context.Context, id string) (gallery.Item, error) {
	if !isUUID(id) {
		return gallery.Item{}, gallery.ErrNotFound
	}
	var row galleryRow
	if err := sqlx.GetContext(ctx, repo.db, &row, `SELECT * FROM gallery WHERE id = $1`, id); err != nil {
		return gallery.Item{}, trapNoRowsErr(err, gallery.ErrNotFound, "selecting gallery item")
	}
	return row.unbind(), nil
}

func (repo galleryRepository) QueryItems(ctx context.Context, filter *gallery.QueryFilter, ordering []core.DBOrdering) ([]gallery.Item, error) {
	q := `SELECT * FROM gallery`
	var args []interface{}
	if filter != nil && filter.Category != "" {
		q += ` WHERE category = $1`
		args = append(args, filter.Category)
	}
	var rows []galleryRow
	if err := sqlx.SelectContext(ctx, repo.db, &rows, q+orderBy(ordering), args...); err != nil {
		return nil, errors.Wrap(err, "selecting gallery items")
	}
	items := make([]gallery.Item, 0, len(rows))
	for _, r := range rows {
		items = append(items, r.unbind())
	}
	return items, nil
}

func (repo galleryRepository) UpdateItem(ctx context.Context, item gallery.Item) (gallery.Item, error) {
	if !isUUID(item.ID) {
		return gallery.Item{}, gallery.ErrNotFound
	}
	const q = `UPDATE gallery SET title = :title, category = :category WHERE id = :id`
	row := bindItem(item)
	res, err := sqlx.NamedExecContext(ctx, repo.db, q, row)
	if err != nil {
		return gallery.Item{}, errors.Wrap(err, "updating gallery item")
	}
	if err = checkAffected(res, gallery.ErrNotFound, "updating gallery item"); err != nil {
		return gallery.Item{}, err
	}
	return row.unbind(), nil
}

func (repo galleryRepository) DeleteItem(ctx context.Context, id string) error {
	if !isUUID(id) {
		return gallery.ErrNotFound
	}
	res, err := repo.db.ExecContext(ctx, `DELETE FROM gallery WHERE id = $1`, id)
	if err != nil {
		return errors.Wrap(err, "deleting gallery item")
	}
	return checkAffected(res, gallery.ErrNotFound, "deleting gallery item")
}
