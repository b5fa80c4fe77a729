package inmemdb

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/core/profile"
)

type profileRepository struct {
	db *DB
}

func NewProfileRepository(db *DB) profile.Repository {
	return &profileRepository{db: db}
}

func (repo *profileRepository) CreateProfile(_ context.Context, p profile.Profile) (profile.Profile, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	for _, existing := range repo.db.profiles {
		if existing.Email == p.Email {
			return profile.Profile{}, profile.ErrEmailExists
		}
	}
	p.ID = uuid.New().String()
	repo.db.profiles = append(repo.db.profiles, &p)
	return p, nil
}

func (repo *profileRepository) GetProfileByID(_ context.Context, id string) (profile.Profile, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	for _, p := range repo.db.profiles {
		if p.ID == id {
			return *p, nil
		}
	}
	return profile.Profile{}, profile.ErrNotFound
}

func (repo *profileRepository) GetProfileByEmail(_ context.Context, email string) (profile.Profile, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	for _, p := range repo.db.profiles {
		if p.Email == email {
			return *p, nil
		}
	}
	return profile.Profile{}, profile.ErrNotFound
}

func (repo *profileRepository) UpdateProfilePassword(_ context.Context, id string, hash []byte) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	for _, p := range repo.db.profiles {
		if p.ID == id {
			p.PasswordHash = hash
			p.UpdatedAt = time.Now().UTC()
			return nil
		}
	}
	return profile.ErrNotFound
}
