package gallery

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/core"
)

// Types
const (
	TypeImage = "image"
	TypeVideo = "video"
)

var (
	// Categories are the ones proposed by the admin console; any other value is accepted.
	Categories = []string{"Training", "Classroom", "Events", "Fleet", "Safety", "Other"}

	OrderingFields  = map[string]bool{"created_at": true, "title": true, "category": true}
	defaultOrdering = core.DBOrdering{Field: "created_at"}
)

type Item struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Category  string    `json:"category"`
	ImageURL  string    `json:"image_url"`
	ImageKey  string    `json:"-"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"` // UTC
}

// TypeFor returns the Item type matching a content type.
func TypeFor(contentType string) string {
	if strings.HasPrefix(contentType, "video/") {
		return TypeVideo
	}
	return TypeImage
}

// NewItem contains information needed to create a new Item, besides the uploaded file.
type NewItem struct {
	Title    string `json:"title" form:"title" validate:"required,notblank,max=200"`
	Category string `json:"category" form:"category" validate:"required,notblank,max=100"`
}

func (ni *NewItem) Validate(validate *validator.Validate) error {
	ni.Title = core.CleanText(ni.Title)
	ni.Category = core.CleanText(ni.Category)
	return validate.Struct(ni)
}

// UpdateItem defines what may change on an existing Item. The type never changes.
type UpdateItem struct {
	Title    *string `json:"title" validate:"notblank"`
	Category *string `json:"category" validate:"notblank"`
}

func (ui *UpdateItem) Validate(validate *validator.Validate) error {
	for _, s := range []*string{ui.Title, ui.Category} {
		if s != nil {
			*s = core.CleanText(*s)
		}
	}
	return validate.Struct(ui)
}

func (ui UpdateItem) apply(item *Item) {
	if ui.Title != nil {
		item.Title = *ui.Title
	}
	if ui.Category != nil {
		item.Category = *ui.Category
	}
}

type QueryFilter struct {
	Category string `query:"category"`
}

func (qf *QueryFilter) Clean() {
	qf.Category = core.CleanString(qf.Category)
}
