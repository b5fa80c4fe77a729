package testimonial

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/core"
)

var (
	OrderingFields  = map[string]bool{"created_at": true, "rating": true, "name": true}
	defaultOrdering = core.DBOrdering{Field: "created_at"}
)

type Testimonial struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Role        string    `json:"role"`
	Content     string    `json:"content"`
	Rating      int       `json:"rating"`
	IsPublished bool      `json:"is_published"`
	CreatedAt   time.Time `json:"created_at"` // UTC
}

// NewTestimonial contains information needed to create a new Testimonial.
type NewTestimonial struct {
	Name        string `json:"name" validate:"required,notblank"`
	Role        string `json:"role"`
	Content     string `json:"content" validate:"required,notblank"`
	Rating      int    `json:"rating" validate:"rating"`
	IsPublished bool   `json:"is_published"`
}

func (nt *NewTestimonial) Validate(validate *validator.Validate) error {
	nt.Name = core.CleanText(nt.Name)
	nt.Role = core.CleanText(nt.Role)
	nt.Content = core.CleanText(nt.Content)
	return validate.Struct(nt)
}

// UpdateTestimonial defines what information may be provided to modify an existing Testimonial.
type UpdateTestimonial struct {
	Name        *string `json:"name" validate:"notblank"`
	Role        *string `json:"role"`
	Content     *string `json:"content" validate:"notblank"`
	Rating      *int    `json:"rating" validate:"rating"`
	IsPublished *bool   `json:"is_published"`
}

func (ut *UpdateTestimonial) Validate(validate *validator.Validate) error {
	for _, s := range []*string{ut.Name, ut.Role, ut.Content} {
		if s != nil {
			*s = core.CleanText(*s)
		}
	}
	return validate.Struct(ut)
}

func (ut UpdateTestimonial) apply(t *Testimonial) {
	if ut.Name != nil {
		t.Name = *ut.Name
	}
	if ut.Role != nil {
		t.Role = *ut.Role
	}
	if ut.Content != nil {
		t.Content = *ut.Content
	}
	if ut.Rating != nil {
		t.Rating = *ut.Rating
	}
	if ut.IsPublished != nil {
		t.IsPublished = *ut.IsPublished
	}
}

type QueryFilter struct {
	PublishedOnly bool
}
