package inmemdb

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/core"
	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/core/testimonial"
)

type testimonialRepository struct {
	db *DB
}

func NewTestimonialRepository(db *DB) testimonial.Repository {
	return &testimonialRepository{db: db}
}

func (repo *testimonialRepository) CreateTestimonial(_ context.Context, t testimonial.Testimonial) (testimonial.Testimonial, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	t.ID = uuid.New().String()
	repo.db.testimonials = append(repo.db.testimonials, &t)
	return t, nil
}

func (repo *testimonialRepository) GetTestimonial(_ context.Context, id string) (testimonial.Testimonial, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if _, t := repo.find(id); t != nil {
		return *t, nil
	}
	return testimonial.Testimonial{}, testimonial.ErrNotFound
}

func (repo *testimonialRepository) QueryTestimonials(_ context.Context, filter *testimonial.QueryFilter, ordering []core.DBOrdering) ([]testimonial.Testimonial, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	ts := make([]testimonial.Testimonial, 0, len(repo.db.testimonials))
	for _, t := range repo.db.testimonials {
		if filter != nil && filter.PublishedOnly && !t.IsPublished {
			continue
		}
		ts = append(ts, *t)
	}
	sort.SliceStable(ts, func(i, j int) bool {
		return orderedLess(ordering, func(field string) int {
			switch field {
			case "name":
				return compareStrings(ts[i].Name, ts[j].Name)
			case "rating":
				return ts[i].Rating - ts[j].Rating
			case "created_at":
				return compareTimes(ts[i].CreatedAt, ts[j].CreatedAt)
			}
			return 0
		})
	})
	return ts, nil
}

func (repo *testimonialRepository) UpdateTestimonial(_ context.Context, t testimonial.Testimonial) (testimonial.Testimonial, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, orig := repo.find(t.ID); orig != nil {
		*orig = t
		return t, nil
	}
	return testimonial.Testimonial{}, testimonial.ErrNotFound
}

func (repo *testimonialRepository) DeleteTestimonial(_ context.Context, id string) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	idx, _ := repo.find(id)
	if idx < 0 {
		return testimonial.ErrNotFound
	}
	repo.db.testimonials = append(repo.db.testimonials[:idx], repo.db.testimonials[idx+1:]...)
	return nil
}

func (repo *testimonialRepository) CountTestimonials(_ context.Context) (int, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()
	return len(repo.db.testimonials), nil
}

func (repo *testimonialRepository) find(id string) (int, *testimonial.Testimonial) {
	for i, t := range repo.db.testimonials {
		if t.ID == id {
			return i, t
		}
	}
	return -1, nil
}
