package core

type DBOrdering struct {
	Field     string
	Ascending bool
}

func (ord DBOrdering) String() string {
	direction := "DESC"
	if ord.Ascending {
		direction = "ASC"
	}
	return ord.Field + " " + direction
}

// FilterOrderings drops the orderings whose field is not in allowed.
// It falls back to def when nothing is left.
func FilterOrderings(orderings []DBOrdering, allowed map[string]bool, def ...DBOrdering) []DBOrdering {
	kept := make([]DBOrdering, 0, len(orderings))
	for _, ord := range orderings {
		if allowed[ord.Field] {
			kept = append(kept, ord)
		}
	}
	if len(kept) == 0 {
		return def
	}
	return kept
}
