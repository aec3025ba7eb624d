// Package theming owns the presentational theme attached to a form: the
// defaults applied to new documents, the single-leaf merge used by theme
// edits, the font token vocabulary and the bridges to go-theme (renderer
// configuration and manifest presets). Colour and size values are stored as
// opaque strings; only the UI boundary helper ClampFontSize interprets them.
package theming
