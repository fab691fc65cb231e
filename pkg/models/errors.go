package models

import (
	"errors"
)

var (
	ErrGeneral               = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound      = errors.New("there is no")
	ErrCategoryNameNotUnique = errors.New("the category name must be unique for the user")
	ErrUserEmailNotUnique    = errors.New("a user with this email address already exists")
)
