// Package preview runs the submission flow of a rendered form: it collects
// values field by field, applies the live phone filter, tracks inline errors
// and gates the submit callback on a clean validation result.
package preview
