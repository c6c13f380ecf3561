package service

import "errors"

var (
	ErrNameInUse          = errors.New("username already in use")
	ErrEmailInUse         = errors.New("email already in use")
	ErrUserExists         = errors.New("username or email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")

	// ErrDuplicateReview is returned when the author already reviewed the target.
	ErrDuplicateReview = errors.New("user has already reviewed this item")
	// ErrReviewIdentityChanged is returned when an update names a different author or target.
	ErrReviewIdentityChanged = errors.New("a review's author and subject cannot be changed")
)
