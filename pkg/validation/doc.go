// Package validation derives a per-field validation contract from a form's
// field list and evaluates submitted values against it.
//
// The contract is a pure function of the fields: the same ordered list of
// (id, type) pairs always yields an equal Schema. Derive is cheap and callers
// are expected to re-run it after every structural edit.
package validation
