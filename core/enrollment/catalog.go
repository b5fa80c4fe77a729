package enrollment

type (
	Class struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}

	Category struct {
		ID      string  `json:"id"`
		Name    string  `json:"name"`
		Classes []Class `json:"classes"`
	}
)

// Categories lists the licence categories and classes offered on the intake form.
var Categories = []Category{
	{
		ID:   "A",
		Name: "Category A – Motorcycles",
		Classes: []Class{
			{ID: "A2", Name: "A2 – Motorcycle"},
			{ID: "A3", Name: "A3 – Three Wheelers (TukTuk)"},
		},
	},
	{
		ID:   "B",
		Name: "Category B – Light Vehicles",
		Classes: []Class{
			{ID: "B1", Name: "B1 – Light Vehicle (Automatic)"},
			{ID: "B2", Name: "B2 – Light Vehicle (Manual)"},
			{ID: "B1_B2", Name: "Combined (B1 + B2)"},
		},
	},
	{
		ID:   "C",
		Name: "Category C – Trucks",
		Classes: []Class{
			{ID: "C1", Name: "C1 – Light Trucks"},
			{ID: "C2", Name: "C2 – Medium Trucks"},
			{ID: "B2_C1", Name: "Combined (B2 + C1)"},
		},
	},
	{
		ID:   "D",
		Name: "Category D – PSV",
		Classes: []Class{
			{ID: "B3", Name: "B3 – Professional 7-Seater"},
			{ID: "D1", Name: "D1 – 14-Seater"},
			{ID: "D2", Name: "D2 – 33-Seater"},
		},
	},
}

func FindCategory(id string) (Category, bool) {
	for _, cat := range Categories {
		if cat.ID == id {
			return cat, true
		}
	}
	return Category{}, false
}

func (cat Category) FindClass(id string) (Class, bool) {
	for _, cls := range cat.Classes {
		if cls.ID == id {
			return cls, true
		}
	}
	return Class{}, false
}

// CourseName returns the "<category name> - <class name>" snapshot stored on an Enrollment.
// The class id is returned as is when the pair is unknown.
func CourseName(categoryID, classID string) string {
	if cat, ok := FindCategory(categoryID); ok {
		if cls, ok := cat.FindClass(classID); ok {
			return cat.Name + " - " + cls.Name
		}
	}
	return classID
}
