package books

import (
	"strconv"
)

// parseID accepts positive decimal ids only. Anything else behaves like an
// unknown id: the route shape is /books/{id} and a non-numeric segment can
// never match a row.
func parseID(s string) (int64, bool) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}
