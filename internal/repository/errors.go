// Package repository holds data access logic for members, layouts and the
// derived seat-assignment history.  Sentinel errors let handlers distinguish
// failure shapes without inspecting SQL error strings.
package repository

import "errors"

// ErrMemberNotFound is returned when a member lookup or update matches no
// row.  Handlers translate this into an HTTP 404 response.
var ErrMemberNotFound = errors.New("member not found")
