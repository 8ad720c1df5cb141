package validate

import (
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"
)

var ErrInvalid = errors.New("invalid")

// Statuses is the full lifecycle set for a book.
var Statuses = []string{"to-read", "reading", "completed"}

const DefaultStatus = "to-read"

// RequireBounded trims and ensures length bounds.
func RequireBounded(name, s string, min, max int) (string, error) {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) < min || utf8.RuneCountInString(s) > max {
		return "", errors.New(name + " must be between " + strconv.Itoa(min) + " and " + strconv.Itoa(max) + " characters")
	}
	return s, nil
}

// Status checks membership in the status set.
func Status(s string) (string, error) {
	for _, v := range Statuses {
		if s == v {
			return s, nil
		}
	}
	return "", errors.New("status must be one of: " + strings.Join(Statuses, ", "))
}

// Rating checks the 1..5 range.
func Rating(n int) error {
	if n < 1 || n > 5 {
		return errors.New("rating must be between 1 and 5")
	}
	return nil
}
