package reorder

import "github.com/goliatone/go-formbuilder/pkg/model"

// Target is the optional drop destination of a drag gesture. The zero value
// means the pointer was released outside any valid drop area.
type Target struct {
	ID    string
	Valid bool
}

// None is the explicit "no drop target" value.
var None = Target{}

// Over returns a target pointing at the item with the given id. An empty id
// produces an invalid target.
func Over(id string) Target {
	if id == "" {
		return None
	}
	return Target{ID: id, Valid: true}
}

// Index returns the position of the field with id, or -1.
func Index(fields []model.Field, id string) int {
	for idx, field := range fields {
		if field.ID == id {
			return idx
		}
	}
	return -1
}

// Fields moves the field identified by sourceID to the position currently
// held by the target field. It returns a new slice in every case; the input
// is never modified. Unknown ids, an invalid target or a target equal to the
// source leave the order untouched.
func Fields(fields []model.Field, sourceID string, target Target) []model.Field {
	if !target.Valid || target.ID == sourceID {
		return model.CloneFields(fields)
	}
	from := Index(fields, sourceID)
	to := Index(fields, target.ID)
	if from < 0 || to < 0 {
		return model.CloneFields(fields)
	}
	return Move(model.CloneFields(fields), from, to)
}
