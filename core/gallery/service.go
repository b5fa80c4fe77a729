package gallery

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/core"
)

var ErrNotFound = core.NotFoundError("gallery item not found")

type (
	Repository interface {
		CreateItem(ctx context.Context, item Item) (Item, error)
		GetItem(ctx context.Context, id string) (Item, error)
		QueryItems(ctx context.Context, filter *QueryFilter, ordering []core.DBOrdering) ([]Item, error)
		UpdateItem(ctx context.Context, item Item) (Item, error)
		DeleteItem(ctx context.Context, id string) error
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

// Create uploads the file to the gallery bucket, then inserts the Item referencing it.
// The type of the Item is derived from the sniffed content type of the upload.
func (svc *Service) Create(ctx context.Context, ni NewItem, up core.Upload) (Item, error) {
	key := core.NewObjectKey(up.Filename)
	url, err := svc.store.Put(ctx, core.BucketGallery, key, up.Content, up.ContentType)
	if err != nil {
		return Item{}, errors.Wrap(err, "uploading gallery file")
	}

	item, err := svc.repo.CreateItem(ctx, Item{
		Title:     ni.Title,
		Category:  ni.Category,
		ImageURL:  url,
		ImageKey:  key,
		Type:      TypeFor(up.ContentType),
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		svc.removeObject(ctx, key)
		return Item{}, errors.Wrap(err, "creating gallery item")
	}
	return item, nil
}

func (svc *Service) Get(ctx context.Context, id string) (Item, error) {
	return svc.repo.GetItem(ctx, id)
}

func (svc *Service) Query(ctx context.Context, filter *QueryFilter, ordering []core.DBOrdering) ([]Item, error) {
	ordering = core.FilterOrderings(ordering, OrderingFields, defaultOrdering)
	return svc.repo.QueryItems(ctx, filter, ordering)
}

func (svc *Service) Update(ctx context.Context, id string, ui UpdateItem) (Item, error) {
	item, err := svc.repo.GetItem(ctx, id)
	if err != nil {
		return Item{}, err
	}
	ui.apply(&item)
	item, err = svc.repo.UpdateItem(ctx, item)
	return item, errors.Wrap(err, "updating gallery item")
}

// Delete removes the stored file on a best-effort basis, then deletes the record.
func (svc *Service) Delete(ctx context.Context, id string) error {
	item, err := svc.repo.GetItem(ctx, id)
	if err != nil {
		return err
	}

	key := item.ImageKey
	if key == "" {
		key = core.KeyFromURL(item.ImageURL)
	}
	if key != "" {
		svc.removeObject(ctx, key)
	}
	return svc.repo.DeleteItem(ctx, id)
}

func (svc *Service) removeObject(ctx context.Context, key string) {
	if err := svc.store.Remove(ctx, core.BucketGallery, key); err != nil {
		svc.logger.Warn("removing gallery object", err, map[string]interface{}{"key": key})
	}
}
