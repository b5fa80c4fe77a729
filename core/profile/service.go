package profile

import (
	"context"
	"errors"
	"time"

	pkgerrors "github.com/pkg/errors"

	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/core"
)

var (
	// errors
	ErrNotFound             = core.NotFoundError("profile not found")
	ErrEmailExists          = errors.New("a profile with this email already exists")
	ErrAuthenticationFailed = errors.New("invalid credentials")
)

type (
	Repository interface {
		CreateProfile(ctx context.Context, p Profile) (Profile, error)
		GetProfileByID(ctx context.Context, id string) (Profile, error)
		GetProfileByEmail(ctx context.Context, email string) (Profile, error)
		UpdateProfilePassword(ctx context.Context, id string, hash []byte) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Authenticate signs a Profile in with its email and password.
func (svc *Service) Authenticate(ctx context.Context, email, pwd string) (Profile, error) {
	p, err := svc.repo.GetProfileByEmail(ctx, core.CleanString(email, true /* lower */))
	if err != nil {
		if core.IsNotFound(err) {
			return Profile{}, ErrAuthenticationFailed
		}
		return Profile{}, pkgerrors.Wrap(err, "finding profile by email")
	}
	if err = p.CheckPassword(pwd); err != nil {
		return Profile{}, ErrAuthenticationFailed
	}
	return p, nil
}

func (svc *Service) GetByID(ctx context.Context, id string) (Profile, error) {
	return svc.repo.GetProfileByID(ctx, id)
}

func (svc *Service) GetByEmail(ctx context.Context, email string) (Profile, error) {
	return svc.repo.GetProfileByEmail(ctx, core.CleanString(email, true /* lower */))
}

// Role returns the role of the Profile identified by id.
func (svc *Service) Role(ctx context.Context, id string) (string, error) {
	p, err := svc.repo.GetProfileByID(ctx, id)
	if err != nil {
		return "", err
	}
	return p.Role, nil
}

func (svc *Service) Create(ctx context.Context, np NewProfile) (Profile, error) {
	if _, err := svc.repo.GetProfileByEmail(ctx, np.Email); err == nil {
		return Profile{}, core.NewValidationError(ErrEmailExists, core.FieldError{Field: "email", Error: ErrEmailExists.Error()})
	} else if !core.IsNotFound(err) {
		return Profile{}, pkgerrors.Wrap(err, "checking email uniqueness")
	}

	now := time.Now().UTC()
	p := Profile{
		Email:     np.Email,
		Role:      np.Role,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := p.SetPassword(np.Password); err != nil {
		return Profile{}, err
	}
	return svc.repo.CreateProfile(ctx, p)
}

func (svc *Service) SetPassword(ctx context.Context, sp SetProfilePassword) error {
	p, err := svc.repo.GetProfileByEmail(ctx, sp.Email)
	if err != nil {
		return err
	}
	if err = p.SetPassword(sp.Password); err != nil {
		return err
	}
	return svc.repo.UpdateProfilePassword(ctx, p.ID, p.PasswordHash)
}
