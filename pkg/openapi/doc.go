// Package openapi exports the validation contract of a form document as an
// OpenAPI 3 schema so clients outside the builder can check submissions
// against the same rules. kin-openapi types are returned directly.
package openapi
