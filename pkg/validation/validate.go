package validation

// SubmitBlockedMessage is the aggregate message shown when a submission is
// rejected.
const SubmitBlockedMessage = "Please fill out all required fields"

// Issue is a single failing field.
type Issue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Result is the outcome of evaluating a set of values against a schema.
type Result struct {
	Errors    map[string]string `json:"errors"`
	CanSubmit bool              `json:"canSubmit"`

	order []string
}

// Validate checks every schema entry. Values missing from the map count as
// empty; values for ids outside the schema are ignored.
func Validate(schema Schema, values map[string]string) Result {
	result := Result{Errors: map[string]string{}, CanSubmit: true}
	for _, entry := range schema.entries {
		if msg, ok := entry.Rule.Check(values[entry.FieldID]); !ok {
			result.Errors[entry.FieldID] = msg
			result.order = append(result.order, entry.FieldID)
			result.CanSubmit = false
		}
	}
	return result
}

// Issues lists the failures in field order.
func (r Result) Issues() []Issue {
	out := make([]Issue, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, Issue{Field: id, Message: r.Errors[id]})
	}
	return out
}
