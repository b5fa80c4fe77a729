package inmemdb

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/core"
	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/core/gallery"
)

type galleryRepository struct {
	db *DB
}

func NewGalleryRepository(db *DB) gallery.Repository {
	return &galleryRepository{db: db}
}

func (repo *galleryRepository) CreateItem(_ context.Context, item gallery.Item) (gallery.Item, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	item.ID = uuid.New().String()
	repo.db.gallery = append(repo.db.gallery, &item)
	return item, nil
}

func (repo *galleryRepository) GetItem(_ context.Context, id string) (gallery.Item, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if _, item := repo.find(id); item != nil {
		return *item, nil
	}
	return gallery.Item{}, gallery.ErrNotFound
}

func (repo *galleryRepository) QueryItems(_ context.Context, filter *gallery.QueryFilter, ordering []core.DBOrdering) ([]gallery.Item, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	items := make([]gallery.Item, 0, len(repo.db.gallery))
	for _, item := range repo.db.gallery {
		if filter != nil && filter.Category != "" && item.Category != filter.Category {
			continue
		}
		items = append(items, *item)
	}
	sort.SliceStable(items, func(i, j int) bool {
		return orderedLess(ordering, func(field string) int {
			switch field {
			case "title":
				return compareStrings(items[i].Title, items[j].Title)
			case "category":
				return compareStrings(items[i].Category, items[j].Category)
			case "created_at":
				return compareTimes(items[i].CreatedAt, items[j].CreatedAt)
			}
			return 0
		})
	})
	return items, nil
}

// UpdateItem only saves the title and category of item.
func (repo *galleryRepository) UpdateItem(_ context.Context, item gallery.Item) (gallery.Item, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, orig := repo.find(item.ID); orig != nil {
		orig.Title = item.Title
		orig.Category = item.Category
		return *orig, nil
	}
	return gallery.Item{}, gallery.ErrNotFound
}

func (repo *galleryRepository) DeleteItem(_ context.Context, id string) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	idx, _ := repo.find(id)
	if idx < 0 {
		return gallery.ErrNotFound
	}
	repo.db.gallery = append(repo.db.gallery[:idx], repo.db.gallery[idx+1:]...)
	return nil
}

func (repo *galleryRepository) find(id string) (int, *gallery.Item) {
	for i, item := range repo.db.gallery {
		if item.ID == id {
			return i, item
		}
	}
	return -1, nil
}
