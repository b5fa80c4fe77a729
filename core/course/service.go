package course

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/core"
)

var ErrNotFound = core.NotFoundError("course not found")

type (
	Repository interface {
		CreateCourse(ctx context.Context, c Course) (Course, error)
		GetCourse(ctx context.Context, id string) (Course, error)
		QueryCourses(ctx context.Context, filter *QueryFilter, ordering []core.DBOrdering) ([]Course, error)
		UpdateCourse(ctx context.Context, c Course) (Course, error)
		DeleteCourse(ctx context.Context, id string) error
		CountCourses(ctx context.Context) (int, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(ctx context.Context, nc NewCourse) (Course, error) {
	now := time.Now().UTC()
	c := Course{
		Title:       nc.Title,
		Description: nc.Description,
		Duration:    nc.Duration,
		ImageURL:    nc.ImageURL,
		IsPublished: nc.IsPublished,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if nc.Price != nil {
		c.Price = *nc.Price
	}
	return svc.repo.CreateCourse(ctx, c)
}

func (svc *Service) Get(ctx context.Context, id string) (Course, error) {
	return svc.repo.GetCourse(ctx, id)
}

// GetPublished returns the Course only if it is visible on the public site.
func (svc *Service) GetPublished(ctx context.Context, id string) (Course, error) {
	c, err := svc.repo.GetCourse(ctx, id)
	if err != nil {
		return Course{}, err
	}
	if !c.IsPublished {
		return Course{}, ErrNotFound
	}
	return c, nil
}

// Query lists courses, newest first unless ordering says otherwise.
func (svc *Service) Query(ctx context.Context, filter *QueryFilter, ordering []core.DBOrdering) ([]Course, error) {
	ordering = core.FilterOrderings(ordering, OrderingFields, defaultOrdering)
	return svc.repo.QueryCourses(ctx, filter, ordering)
}

// Pricing lists the published courses, cheapest first.
func (svc *Service) Pricing(ctx context.Context) ([]Course, error) {
	return svc.repo.QueryCourses(ctx, &QueryFilter{PublishedOnly: true}, []core.DBOrdering{pricingOrdering, defaultOrdering})
}

func (svc *Service) Update(ctx context.Context, id string, uc UpdateCourse) (Course, error) {
	c, err := svc.repo.GetCourse(ctx, id)
	if err != nil {
		return Course{}, err
	}
	uc.apply(&c)
	c.UpdatedAt = time.Now().UTC()
	c, err = svc.repo.UpdateCourse(ctx, c)
	return c, errors.Wrap(err, "updating course")
}

func (svc *Service) Delete(ctx context.Context, id string) error {
	return svc.repo.DeleteCourse(ctx, id)
}

func (svc *Service) Count(ctx context.Context) (int, error) {
	return svc.repo.CountCourses(ctx)
}
