package instructor

import (
	"context"
	"errors"
	"time"

	pkgerrors "github.com/pkg/errors"

	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/core"
)

var (
	ErrNotFound      = core.NotFoundError("instructor not found")
	ErrImageRequired = errors.New("an image is required")
	ErrImageNotFound = errors.New("image not found in storage")
	ErrNotAnImage    = errors.New("file must be an image")
)

type (
	Repository interface {
		CreateInstructor(ctx context.Context, ins Instructor) (Instructor, error)
		GetInstructor(ctx context.Context, id string) (Instructor, error)
		QueryInstructors(ctx context.Context, ordering []core.DBOrdering) ([]Instructor, error)
		UpdateInstructor(ctx context.Context, ins Instructor) (Instructor, error)
		DeleteInstructor(ctx context.Context, id string) error
	}

	Service struct {
		repo   Repository
		store  core.ObjectStore
		logger core.Logger
	}
)

func NewService(repo Repository, store core.ObjectStore, logger core.Logger) *Service {
	return &Service{repo: repo, store: store, logger: logger}
}

func imageFieldError(err error) error {
	return core.NewValidationError(err, core.FieldError{Field: "image", Error: err.Error()})
}

// putImage uploads the photo to the instructors bucket and returns its URL and key.
func (svc *Service) putImage(ctx context.Context, up core.Upload) (string, string, error) {
	if !up.IsImage() {
		return "", "", imageFieldError(ErrNotAnImage)
	}
	key := core.NewObjectKey(up.Filename)
	url, err := svc.store.Put(ctx, core.BucketInstructors, key, up.Content, up.ContentType)
	if err != nil {
		return "", "", pkgerrors.Wrap(err, "uploading instructor image")
	}
	return url, key, nil
}

// Create inserts an Instructor whose photo is either uploaded now or already stored under ni.ImageKey.
func (svc *Service) Create(ctx context.Context, ni NewInstructor, up *core.Upload) (Instructor, error) {
	var url, key string
	var uploaded bool
	switch {
	case up != nil:
		var err error
		if url, key, err = svc.putImage(ctx, *up); err != nil {
			return Instructor{}, err
		}
		uploaded = true
	case ni.ImageKey != "":
		if !core.ValidObjectKey(ni.ImageKey) {
			return Instructor{}, imageFieldError(ErrImageNotFound)
		}
		exists, err := svc.store.Exists(ctx, core.BucketInstructors, ni.ImageKey)
		if err != nil {
			return Instructor{}, pkgerrors.Wrap(err, "checking instructor image")
		}
		if !exists {
			return Instructor{}, imageFieldError(ErrImageNotFound)
		}
		key = ni.ImageKey
		url = svc.store.PublicURL(core.BucketInstructors, key)
	default:
		return Instructor{}, imageFieldError(ErrImageRequired)
	}

	certs := ni.Certifications
	if certs == nil {
		certs = []string{}
	}
	ins, err := svc.repo.CreateInstructor(ctx, Instructor{
		Name:           ni.Name,
		Role:           ni.Role,
		Bio:            ni.Bio,
		ImageURL:       url,
		ImageKey:       key,
		Certifications: certs,
		CreatedAt:      time.Now().UTC(),
	})
	if err != nil {
		if uploaded {
			svc.removeObject(ctx, key)
		}
		return Instructor{}, pkgerrors.Wrap(err, "creating instructor")
	}
	return ins, nil
}

func (svc *Service) Get(ctx context.Context, id string) (Instructor, error) {
	return svc.repo.GetInstructor(ctx, id)
}

func (svc *Service) Query(ctx context.Context, ordering []core.DBOrdering) ([]Instructor, error) {
	ordering = core.FilterOrderings(ordering, OrderingFields, defaultOrdering)
	return svc.repo.QueryInstructors(ctx, ordering)
}

// Update applies ui and, when up is provided, replaces the photo.
// The previous photo is removed only once the record references the new one.
func (svc *Service) Update(ctx context.Context, id string, ui UpdateInstructor, up *core.Upload) (Instructor, error) {
	ins, err := svc.repo.GetInstructor(ctx, id)
	if err != nil {
		return Instructor{}, err
	}
	ui.apply(&ins)

	prevKey := ins.ImageKey
	if prevKey == "" {
		prevKey = core.KeyFromURL(ins.ImageURL)
	}
	if up != nil {
		if ins.ImageURL, ins.ImageKey, err = svc.putImage(ctx, *up); err != nil {
			return Instructor{}, err
		}
	}

	updated, err := svc.repo.UpdateInstructor(ctx, ins)
	if err != nil {
		if up != nil {
			svc.removeObject(ctx, ins.ImageKey)
		}
		return Instructor{}, pkgerrors.Wrap(err, "updating instructor")
	}
	if up != nil && prevKey != "" && prevKey != updated.ImageKey {
		svc.removeObject(ctx, prevKey)
	}
	return updated, nil
}

// Delete removes the photo on a best-effort basis, then deletes the record.
func (svc *Service) Delete(ctx context.Context, id string) error {
	ins, err := svc.repo.GetInstructor(ctx, id)
	if err != nil {
		return err
	}
	key := ins.ImageKey
	if key == "" {
		key = core.KeyFromURL(ins.ImageURL)
	}
	if key != "" {
		svc.removeObject(ctx, key)
	}
	return svc.repo.DeleteInstructor(ctx, id)
}

func (svc *Service) removeObject(ctx context.Context, key string) {
	if err := svc.store.Remove(ctx, core.BucketInstructors, key); err != nil {
		svc.logger.Warn("removing instructor object", err, map[string]interface{}{"key": key})
	}
}
