package sqlxrepos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/core/profile"
)

type profileRow struct {
	ID           string    `db:"id"`
	Email        string    `db:"email"`
	Role         string    `db:"role"`
	PasswordHash []byte    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (r profileRow) unbind() profile.Profile {
	return profile.Profile{
		ID:           r.ID,
		Email:        r.Email,
		Role:         r.Role,
		PasswordHash: r.PasswordHash,
		CreatedAt:    r.CreatedAt.UTC(),
		UpdatedAt:    r.UpdatedAt.UTC(),
	}
}

type profileRepository struct {
	db sqlx.ExtContext
}

var _ profile.Repository = (*profileRepository)(nil) // interface compliance check

func NewProfileRepository(db sqlx.ExtContext) *profileRepository {
	return &profileRepository{db: db}
}

func (repo profileRepository) CreateProfile(ctx context.Context, p profile.Profile) (profile.Profile, error) {
	p.ID = uuid.New().String()
	const q = `INSERT INTO profiles (id, email, role, password_hash, created_at, updated_at)
		VALUES (:id, :email, :role, :password_hash, :created_at, :updated_at)`
	row := profileRow{
		ID:           p.ID,
		Email:        p.Email,
		Role:         p.Role,
		PasswordHash: p.PasswordHash,
		CreatedAt:    p.CreatedAt.UTC(),
		UpdatedAt:    p.UpdatedAt.UTC(),
	}
	if _, err := sqlx.NamedExecContext(ctx, repo.db, q, row); err != nil {
		return profile.Profile{}, errors.Wrap(err, "inserting profile")
	}
	return row.unbind(), nil
}

func (repo profileRepository) GetProfileByID(ctx context.Context, id string) (profile.Profile, error) {
	if !isUUID(id) {
		return profile.Profile{}, profile.ErrNotFound
	}
	var row profileRow
	if err := sqlx.GetContext(ctx, repo.db, &row, `SELECT * FROM profiles WHERE id = $1`, id); err != nil {
		return profile.Profile{}, trapNoRowsErr(err, profile.ErrNotFound, "selecting profile by id")
	}
	return row.unbind(), nil
}

func (repo profileRepository) GetProfileByEmail(ctx context.Context, email string) (profile.Profile, error) {
	var row profileRow
	if err := sqlx.GetContext(ctx, repo.db, &row, `SELECT * FROM profiles WHERE email = $1`, email); err != nil {
		return profile.Profile{}, trapNoRowsErr(err, profile.ErrNotFound, "selecting profile by email")
	}
	return row.unbind(), nil
}

func (repo profileRepository) UpdateProfilePassword(ctx context.Context, id string, hash []byte) error {
	if !isUUID(id) {
		return profile.ErrNotFound
	}
	res, err := repo.db.ExecContext(ctx,
		`UPDATE profiles SET password_hash = $2, updated_at = $3 WHERE id = $1`, id, hash, time.Now().UTC())
	if err != nil {
		return errors.Wrap(err, "updating profile password")
	}
	return checkAffected(res, profile.ErrNotFound, "updating profile password")
}
