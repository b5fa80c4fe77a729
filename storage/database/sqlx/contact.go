package sqlxrepos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/core"
	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/core/contact"
)

type messageRow struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Message   string    `db:"message"`
	CreatedAt time.Time `db:"created_at"`
}

func (r messageRow) unbind() contact.Message {
	return contact.Message{
		ID:        r.ID,
		Name:      r.Name,
		Email:     r.Email,
		Message:   r.Message,
		CreatedAt: r.CreatedAt.UTC(),
	}
}

type contactRepository struct {
	db sqlx.ExtContext
}

var _ contact.Repository = (*contactRepository)(nil) // interface compliance check

func NewContactRepository(db sqlx.ExtContext) *contactRepository {
	return &contactRepository{db: db}
}

func (repo contactRepository) CreateMessage(ctx context.Context, m contact.Message) (contact.Message, error) {
	row := messageRow{
		ID:        uuid.New().String(),
		Name:      m.Name,
		Email:     m.Email,
		Message:   m.Message,
		CreatedAt: m.CreatedAt.UTC(),
	}
	const q = `INSERT INTO contact_messages (id, name, email, message, created_at)
		VALUES (:id, :name, :email, :message, :created_at)`
	if _, err := sqlx.NamedExecContext(ctx, repo.db, q, row); err != nil {
		return contact.Message{}, errors.Wrap(err, "inserting contact message")
	}
	return row.unbind(), nil
}

func (repo contactRepository) QueryMessages(ctx context.Context, ordering []core.DBOrdering) ([]contact.Message, error) {
	var rows []messageRow
	if err := sqlx.SelectContext(ctx, repo.db, &rows, `SELECT * FROM contact_messages`+orderBy(ordering)); err != nil {
		return nil, errors.Wrap(err, "selecting contact messages")
	}
	msgs := make([]contact.Message, 0, len(rows))
	for _, r := range rows {
		msgs = append(msgs, r.unbind())
	}
	return msgs, nil
}

func (repo contactRepository) CountMessages(ctx context.Context) (int, error) {
	var n int
	if err := sqlx.GetContext(ctx, repo.db, &n, `SELECT count(*) FROM contact_messages`); err != nil {
		return 0, errors.Wrap(err, "counting contact messages")
	}
	return n, nil
}
