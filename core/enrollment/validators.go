package enrollment

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/core"
)

var (
	categoryTag  = "enrollcategory"
	categoryText = "unknown category"

	classTag  = "enrollclass"
	classText = "this class is not part of the selected category"
)

func InitValidators(validate *validator.Validate, translator ut.Translator) {
	validate.RegisterStructValidation(enrollmentStructValidation, NewEnrollment{})
	core.RegisterCustomTranslation(validate, translator, categoryTag, categoryText)
	core.RegisterCustomTranslation(validate, translator, classTag, classText)
}

// enrollmentStructValidation checks that the selected class belongs to the selected category.
func enrollmentStructValidation(sl validator.StructLevel) {
	ne, ok := sl.Current().Interface().(NewEnrollment)
	if !ok || ne.Category == "" || ne.ClassID == "" { // reported by `required`
		return
	}
	cat, ok := FindCategory(ne.Category)
	if !ok {
		sl.ReportError(ne.Category, "category", "Category", categoryTag, "")
		return
	}
	if _, ok := cat.FindClass(ne.ClassID); !ok {
		sl.ReportError(ne.ClassID, "course_id", "ClassID", classTag, "")
	}
}
