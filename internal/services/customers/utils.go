package customers

import (
	"errors"
	"net/http"
	"regexp"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

var (
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrInvalidUsername    = errors.New("username may only contain letters, digits, underscores and hyphens")
	ErrPasswordTooShort   = errors.New("password must have at least 8 characters")
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrCustomerInactive   = errors.New("customer account is deactivated")
)

var ErrorMap = map[error]int{
	ErrInvalidEmail:       http.StatusBadRequest,
	ErrInvalidUsername:    http.StatusBadRequest,
	ErrPasswordTooShort:   http.StatusBadRequest,
	ErrCustomerNotFound:   http.StatusNotFound,
	ErrInvalidCredentials: http.StatusUnauthorized,
	ErrCustomerInactive:   http.StatusForbidden,
}

func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

func IsValidUsername(username string) bool {
	return usernameRegex.MatchString(username)
}
