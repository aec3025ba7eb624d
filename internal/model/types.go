package model

// FieldType is the closed enumeration of field kinds a form can hold.
type FieldType string

const (
	FieldTypeText    FieldType = "text"
	FieldTypeEmail   FieldType = "email"
	FieldTypePhone   FieldType = "phone"
	FieldTypeAddress FieldType = "address"
	FieldTypeDate    FieldType = "date"
	FieldTypeSelect  FieldType = "select"
	FieldTypeNumber  FieldType = "number"
	FieldTypeCustom  FieldType = "custom"
)

const (
	ValidationRuleRequired  = "required"
	ValidationRuleMinLength = "minLength"
	ValidationRuleMaxLength = "maxLength"
	ValidationRulePattern   = "pattern"
	ValidationRuleFormat    = "format"
)

// ValidationRule represents a single validation constraint applied to a field.
// Length limits encode their threshold in Params["value"], pattern rules keep
// the expression in Params["pattern"] and format rules the format name in
// Params["format"]. Every rule carries the user-facing message in
// Params["message"] so snapshots stay plain strings.
type ValidationRule struct {
	Kind   string            `json:"kind"`
	Params map[string]string `json:"params,omitempty"`
}

// Field models an individual input inside a form. ID is assigned once at
// creation and never changes.
type Field struct {
	ID       string    `json:"id"`
	Type     FieldType `json:"type"`
	Label    string    `json:"label"`
	Required bool      `json:"required"`
	Options  []string  `json:"options,omitempty"`
}

// StyleSpec holds the style leaves shared by the input and label sections.
// Input uses BorderColor, label uses Color; both are always populated by the
// default theme.
type StyleSpec struct {
	BorderColor string `json:"borderColor,omitempty" yaml:"borderColor,omitempty"`
	Color       string `json:"color,omitempty" yaml:"color,omitempty"`
	FontSize    string `json:"fontSize" yaml:"fontSize"`
	FontFamily  string `json:"fontFamily" yaml:"fontFamily"`
}

// ButtonStyle holds the submit button colours.
type ButtonStyle struct {
	BackgroundColor string `json:"backgroundColor" yaml:"backgroundColor"`
	Color           string `json:"color" yaml:"color"`
}

// ThemeConfig is the presentational record attached to a form.
type ThemeConfig struct {
	Input  StyleSpec   `json:"input" yaml:"input"`
	Label  StyleSpec   `json:"label" yaml:"label"`
	Button ButtonStyle `json:"button" yaml:"button"`
}

// FormDocument is the authoritative aggregate: a name, an ordered field list
// and a theme. Values are treated as immutable; every edit produces a new
// document.
type FormDocument struct {
	Name   string      `json:"name"`
	Fields []Field     `json:"fields"`
	Theme  ThemeConfig `json:"theme"`
}

// Clone returns a deep copy of the document so callers can mutate the copy
// without touching the original slices.
func (d FormDocument) Clone() FormDocument {
	out := d
	out.Fields = CloneFields(d.Fields)
	return out
}

// CloneFields copies a field slice including each field's options.
func CloneFields(fields []Field) []Field {
	if fields == nil {
		return nil
	}
	out := make([]Field, len(fields))
	for i, field := range fields {
		out[i] = field.Clone()
	}
	return out
}

// Clone returns a copy of the field with its own options slice.
func (f Field) Clone() Field {
	if f.Options != nil {
		f.Options = append(make([]string, 0, len(f.Options)), f.Options...)
	}
	return f
}
