package course

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/core"
)

var (
	// OrderingFields are the fields a list of courses can be ordered by.
	OrderingFields = map[string]bool{"created_at": true, "title": true, "price": true}

	defaultOrdering = core.DBOrdering{Field: "created_at"}
	pricingOrdering = core.DBOrdering{Field: "price", Ascending: true}
)

type Course struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Duration    string    `json:"duration"`
	ImageURL    string    `json:"image_url"`
	IsPublished bool      `json:"is_published"`
	CreatedAt   time.Time `json:"created_at"` // UTC
	UpdatedAt   time.Time `json:"updated_at"` // UTC
}

// NewCourse contains information needed to create a new Course.
type NewCourse struct {
	Title       string   `json:"title" validate:"required,notblank"`
	Description string   `json:"description"`
	Price       *float64 `json:"price" validate:"required,min=0"`
	Duration    string   `json:"duration" validate:"required,notblank"`
	ImageURL    string   `json:"image_url" validate:"omitempty,url"`
	IsPublished bool     `json:"is_published"`
}

func (nc *NewCourse) Validate(validate *validator.Validate) error {
	nc.Title = core.CleanText(nc.Title)
	nc.Description = core.CleanText(nc.Description)
	nc.Duration = core.CleanText(nc.Duration)
	nc.ImageURL = core.CleanString(nc.ImageURL)
	return validate.Struct(nc)
}

// UpdateCourse defines what information may be provided to modify an existing Course.
// Nil fields are left untouched.
type UpdateCourse struct {
	Title       *string  `json:"title" validate:"notblank"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" validate:"omitempty,min=0"`
	Duration    *string  `json:"duration" validate:"notblank"`
	ImageURL    *string  `json:"image_url" validate:"omitempty,url"`
	IsPublished *bool    `json:"is_published"`
}

func (uc *UpdateCourse) Validate(validate *validator.Validate) error {
	for _, s := range []*string{uc.Title, uc.Description, uc.Duration} {
		if s != nil {
			*s = core.CleanText(*s)
		}
	}
	if uc.ImageURL != nil {
		*uc.ImageURL = core.CleanString(*uc.ImageURL)
	}
	return validate.Struct(uc)
}

func (uc UpdateCourse) apply(c *Course) {
	if uc.Title != nil {
		c.Title = *uc.Title
	}
	if uc.Description != nil {
		c.Description = *uc.Description
	}
	if uc.Price != nil {
		c.Price = *uc.Price
	}
	if uc.Duration != nil {
		c.Duration = *uc.Duration
	}
	if uc.ImageURL != nil {
		c.ImageURL = *uc.ImageURL
	}
	if uc.IsPublished != nil {
		c.IsPublished = *uc.IsPublished
	}
}

type QueryFilter struct {
	PublishedOnly bool
}
