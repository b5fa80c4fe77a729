package testimonial

import (
	"fmt"
	"reflect"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/core"
)

const (
	MinRating = 1
	MaxRating = 5
)

var (
	ratingTag  = "rating"
	ratingText = fmt.Sprintf("rating must be between %d and %d", MinRating, MaxRating)
)

func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = validate.RegisterValidation(ratingTag, ratingValidation, true /* callValidationEvenIfNull */)
	core.RegisterCustomTranslation(validate, translator, ratingTag, ratingText)
}

// ratingValidation checks that a rating is within [MinRating, MaxRating]; nil pointers pass.
func ratingValidation(fl validator.FieldLevel) bool {
	fld := fl.Field()
	if fld.Kind() == reflect.Ptr {
		if fld.IsNil() {
			return true
		}
		fld = fld.Elem()
	}
	switch fld.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		r := fld.Int()
		return r >= MinRating && r <= MaxRating
	}
	return false
}
