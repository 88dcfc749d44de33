package database

import (
	"errors"
)

var (
	// ErrUsernameTaken is returned by CreateAccount when the username
	// uniqueness constraint rejects the insert.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrAccountNotFound is returned by CreateActivity when the referenced
	// account does not exist.
	ErrAccountNotFound = errors.New("referenced account does not exist")
)

// resultCoder matches the extended result code carried by sqlite driver
// errors.
type resultCoder interface {
	Code() int
}

func hasResultCode(err error, code int) bool {
	var rc resultCoder
	if errors.As(err, &rc) {
		return rc.Code() == code
	}
	return false
}
