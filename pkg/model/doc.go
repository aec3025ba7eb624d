// Package model defines the form document consumed by every other package.
// Definitions live in internal/model and are re-exported here so callers get
// a stable import path. A FormDocument holds a name, an ordered slice of
// typed fields and a ThemeConfig. FieldType is a closed enumeration (text,
// email, phone, address, date, select, number, custom); the registry helpers
// (LabelFor, DefaultOptions, HintsFor) are total over it. Validation rules
// use canonical identifiers (required, minLength/maxLength, pattern, format)
// with string parameters so derived schemas snapshot deterministically.
package model
