package instructor

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/core"
)

var (
	OrderingFields  = map[string]bool{"created_at": true, "name": true}
	defaultOrdering = core.DBOrdering{Field: "created_at"}
)

type Instructor struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Role           string    `json:"role"`
	Bio            string    `json:"bio"`
	ImageURL       string    `json:"image_url"`
	ImageKey       string    `json:"-"`
	Certifications []string  `json:"certifications"`
	CreatedAt      time.Time `json:"created_at"` // UTC
}

// NewInstructor contains information needed to create a new Instructor, besides the photo.
// ImageKey references a photo already in the instructors bucket; it is only used when no file is uploaded.
type NewInstructor struct {
	Name           string   `json:"name" form:"name" validate:"required,notblank,max=200"`
	Role           string   `json:"role" form:"role" validate:"required,notblank,max=200"`
	Bio            string   `json:"bio" form:"bio"`
	ImageKey       string   `json:"image_key" form:"image_key"`
	Certifications []string `json:"certifications" form:"-"`
}

func (ni *NewInstructor) Validate(validate *validator.Validate) error {
	ni.Name = core.CleanText(ni.Name)
	ni.Role = core.CleanText(ni.Role)
	ni.Bio = core.CleanText(ni.Bio)
	ni.ImageKey = core.CleanString(ni.ImageKey)
	ni.Certifications = core.CleanStrings(ni.Certifications)
	return validate.Struct(ni)
}

// UpdateInstructor defines what information may be provided to modify an existing Instructor.
type UpdateInstructor struct {
	Name           *string   `json:"name" validate:"notblank"`
	Role           *string   `json:"role" validate:"notblank"`
	Bio            *string   `json:"bio"`
	Certifications *[]string `json:"certifications"`
}

func (ui *UpdateInstructor) Validate(validate *validator.Validate) error {
	for _, s := range []*string{ui.Name, ui.Role, ui.Bio} {
		if s != nil {
			*s = core.CleanText(*s)
		}
	}
	if ui.Certifications != nil {
		certs := core.CleanStrings(*ui.Certifications)
		ui.Certifications = &certs
	}
	return validate.Struct(ui)
}

func (ui UpdateInstructor) apply(ins *Instructor) {
	if ui.Name != nil {
		ins.Name = *ui.Name
	}
	if ui.Role != nil {
		ins.Role = *ui.Role
	}
	if ui.Bio != nil {
		ins.Bio = *ui.Bio
	}
	if ui.Certifications != nil {
		ins.Certifications = *ui.Certifications
	}
}

// ParseCertifications splits a comma separated list of certifications.
func ParseCertifications(s string) []string {
	return core.CleanStrings(strings.Split(s, ","))
}
