package books

import "errors"

// ErrNotFound is the normal negative result for lookups by id. It is not a
// failure; handlers translate it to 404.
var ErrNotFound = errors.New("book not found")
