package model

// Hints carries the default presentation hints a renderer applies to a field
// type when nothing more specific is configured.
type Hints struct {
	InputType   string `json:"inputType"`
	Widget      string `json:"widget"`
	Placeholder string `json:"placeholder,omitempty"`
	MaxLength   int    `json:"maxLength,omitempty"`
}

const phoneMaxDigits = 15

var fieldTypes = []FieldType{
	FieldTypeText,
	FieldTypeEmail,
	FieldTypePhone,
	FieldTypeAddress,
	FieldTypeDate,
	FieldTypeSelect,
	FieldTypeNumber,
	FieldTypeCustom,
}

// QuickAdd is an entry of the builder's one-click palette.
type QuickAdd struct {
	Type  FieldType
	Label string
}

// QuickAddTypes lists the palette offered by the builder sidebar. The "Name"
// entry is a text field with a preset label.
func QuickAddTypes() []QuickAdd {
	return []QuickAdd{
		{Type: FieldTypeText, Label: "Name"},
		{Type: FieldTypeEmail, Label: LabelFor(FieldTypeEmail)},
		{Type: FieldTypePhone, Label: LabelFor(FieldTypePhone)},
		{Type: FieldTypeAddress, Label: LabelFor(FieldTypeAddress)},
		{Type: FieldTypeDate, Label: LabelFor(FieldTypeDate)},
	}
}

// FieldTypes returns every member of the closed enumeration in declaration
// order.
func FieldTypes() []FieldType {
	return append([]FieldType(nil), fieldTypes...)
}

// Valid reports whether t belongs to the enumeration.
func (t FieldType) Valid() bool {
	for _, candidate := range fieldTypes {
		if candidate == t {
			return true
		}
	}
	return false
}

// ParseFieldType resolves a raw tag into a FieldType.
func ParseFieldType(raw string) (FieldType, bool) {
	t := FieldType(raw)
	if !t.Valid() {
		return "", false
	}
	return t, true
}

// DefaultOptions returns the choices a freshly created field of type t starts
// with. No type implies choices today, so the result is always an empty,
// caller-owned slice.
func DefaultOptions(FieldType) []string {
	return []string{}
}

// HintsFor returns default presentation hints for t.
func HintsFor(t FieldType) Hints {
	switch t {
	case FieldTypeEmail:
		return Hints{InputType: "email", Widget: "input"}
	case FieldTypePhone:
		return Hints{InputType: "tel", Widget: "input", MaxLength: phoneMaxDigits}
	case FieldTypeDate:
		return Hints{InputType: "date", Widget: "input", Placeholder: "YYYY-MM-DD"}
	case FieldTypeSelect:
		return Hints{InputType: "select", Widget: "select", Placeholder: "Select an option"}
	case FieldTypeText, FieldTypeAddress, FieldTypeNumber, FieldTypeCustom:
		return Hints{InputType: "text", Widget: "input"}
	default:
		return Hints{InputType: "text", Widget: "input"}
	}
}
