package html

import (
	"sort"
	"strconv"

	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/render"
	"github.com/goliatone/go-formbuilder/pkg/theming"
	"github.com/goliatone/go-formbuilder/pkg/widgets"
)

// DefaultThemeName labels themes derived from the document itself.
const DefaultThemeName = "formbuilder"

type formView struct {
	Name      string      `json:"name"`
	Action    string      `json:"action,omitempty"`
	FormError string      `json:"form_error,omitempty"`
	CreateURL string      `json:"create_url,omitempty"`
	Fields    []fieldView `json:"fields"`
	Theme     themeView   `json:"theme"`
	CSSVars   []cssVar    `json:"css_vars"`
}

type fieldView struct {
	ID          string       `json:"id"`
	ControlID   string       `json:"control_id"`
	Type        string       `json:"type"`
	Label       string       `json:"label"`
	Widget      string       `json:"widget"`
	InputType   string       `json:"input_type"`
	Placeholder string       `json:"placeholder,omitempty"`
	MaxLength   string       `json:"max_length,omitempty"`
	Value       string       `json:"value"`
	Error       string       `json:"error,omitempty"`
	Options     []optionView `json:"options,omitempty"`
}

type optionView struct {
	Value    string `json:"value"`
	Label    string `json:"label"`
	Selected bool   `json:"selected"`
}

type styleView struct {
	BorderColor string `json:"border_color,omitempty"`
	Color       string `json:"color,omitempty"`
	FontSize    string `json:"font_size"`
	FontFamily  string `json:"font_family"`
}

type buttonView struct {
	BackgroundColor string `json:"background_color"`
	Color           string `json:"color"`
}

type themeView struct {
	Input  styleView  `json:"input"`
	Label  styleView  `json:"label"`
	Button buttonView `json:"button"`
}

type cssVar struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

func buildView(doc model.FormDocument, options render.RenderOptions, reg *widgets.Registry) formView {
	cfg := options.Theme
	if cfg == nil {
		cfg = theming.RendererConfig(doc.Theme, DefaultThemeName, "")
	}
	tokens := cfg.Tokens
	token := func(path string) string {
		if value, ok := tokens[path]; ok && value != "" {
			return value
		}
		section, key, _ := theming.ParsePath(path)
		value, _ := theming.Value(doc.Theme, section, key)
		return value
	}

	view := formView{
		Name:      doc.Name,
		Action:    options.Action,
		FormError: options.FormError,
		Theme: themeView{
			Input: styleView{
				BorderColor: token("input.borderColor"),
				FontSize:    token("input.fontSize"),
				FontFamily:  token("input.fontFamily"),
			},
			Label: styleView{
				Color:      token("label.color"),
				FontSize:   token("label.fontSize"),
				FontFamily: token("label.fontFamily"),
			},
			Button: buttonView{
				BackgroundColor: token("button.backgroundColor"),
				Color:           token("button.color"),
			},
		},
	}

	names := make([]string, 0, len(cfg.CSSVars))
	for name := range cfg.CSSVars {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		view.CSSVars = append(view.CSSVars, cssVar{Name: name, Value: cfg.CSSVars[name]})
	}

	view.Fields = make([]fieldView, 0, len(doc.Fields))
	for _, field := range doc.Fields {
		view.Fields = append(view.Fields, buildField(field, options, reg))
	}
	return view
}

func buildField(field model.Field, options render.RenderOptions, reg *widgets.Registry) fieldView {
	hints := model.HintsFor(field.Type)
	widget, ok := reg.Resolve(field)
	if !ok {
		widget = widgets.WidgetInput
	}
	value := options.Values[field.ID]

	out := fieldView{
		ID:          field.ID,
		ControlID:   "fb-" + field.ID,
		Type:        string(field.Type),
		Label:       field.Label,
		Widget:      widget,
		InputType:   hints.InputType,
		Placeholder: hints.Placeholder,
		Value:       value,
		Error:       options.Errors[field.ID],
	}
	if hints.MaxLength > 0 {
		out.MaxLength = strconv.Itoa(hints.MaxLength)
	}
	if widget == widgets.WidgetSelect && out.Placeholder == "" {
		out.Placeholder = model.HintsFor(model.FieldTypeSelect).Placeholder
	}
	for _, opt := range field.Options {
		out.Options = append(out.Options, optionView{Value: opt, Label: opt, Selected: opt == value})
	}
	return out
}
