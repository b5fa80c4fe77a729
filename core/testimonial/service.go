package testimonial

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/core"
)

var ErrNotFound = core.NotFoundError("testimonial not found")

type (
	Repository interface {
		CreateTestimonial(ctx context.Context, t Testimonial) (Testimonial, error)
		GetTestimonial(ctx context.Context, id string) (Testimonial, error)
		QueryTestimonials(ctx context.Context, filter *QueryFilter, ordering []core.DBOrdering) ([]Testimonial, error)
		UpdateTestimonial(ctx context.Context, t Testimonial) (Testimonial, error)
		DeleteTestimonial(ctx context.Context, id string) error
		CountTestimonials(ctx context.Context) (int, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(ctx context.Context, nt NewTestimonial) (Testimonial, error) {
	return svc.repo.CreateTestimonial(ctx, Testimonial{
		Name:        nt.Name,
		Role:        nt.Role,
		Content:     nt.Content,
		Rating:      nt.Rating,
		IsPublished: nt.IsPublished,
		CreatedAt:   time.Now().UTC(),
	})
}

func (svc *Service) Get(ctx context.Context, id string) (Testimonial, error) {
	return svc.repo.GetTestimonial(ctx, id)
}

func (svc *Service) Query(ctx context.Context, filter *QueryFilter, ordering []core.DBOrdering) ([]Testimonial, error) {
	ordering = core.FilterOrderings(ordering, OrderingFields, defaultOrdering)
	return svc.repo.QueryTestimonials(ctx, filter, ordering)
}

func (svc *Service) Update(ctx context.Context, id string, ut UpdateTestimonial) (Testimonial, error) {
	t, err := svc.repo.GetTestimonial(ctx, id)
	if err != nil {
		return Testimonial{}, err
	}
	ut.apply(&t)
	t, err = svc.repo.UpdateTestimonial(ctx, t)
	return t, errors.Wrap(err, "updating testimonial")
}

func (svc *Service) Delete(ctx context.Context, id string) error {
	return svc.repo.DeleteTestimonial(ctx, id)
}

func (svc *Service) Count(ctx context.Context) (int, error) {
	return svc.repo.CountTestimonials(ctx)
}
