package domain

import "errors"

// ErrNotFound indicates the requested row does not exist. Repositories map
// sql.ErrNoRows to this sentinel so callers never depend on database/sql.
var ErrNotFound = errors.New("not found")
