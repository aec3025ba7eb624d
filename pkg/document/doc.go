// Package document implements the copy-on-write operations over a
// FormDocument: adding, deleting and reordering fields, and theme edits.
// Every function returns a new document and leaves its input untouched.
package document
