package contact

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/core"
)

var defaultOrdering = core.DBOrdering{Field: "created_at"}

// Message is a contact form submission. Messages are never edited nor deleted.
type Message struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"` // UTC
}

type NewMessage struct {
	Name    string `json:"name" validate:"required,notblank,max=200"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required,notblank,max=5000"`
}

func (nm *NewMessage) Validate(validate *validator.Validate) error {
	nm.Name = core.CleanText(nm.Name)
	nm.Email = core.CleanString(nm.Email, true /* lower */)
	nm.Message = core.CleanText(nm.Message)
	return validate.Struct(nm)
}
