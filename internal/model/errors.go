package model

import "errors"

var (
	// ErrNotFound is returned by stores when the requested entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists is returned by stores when a unique key is already taken.
	ErrAlreadyExists = errors.New("already exists")
)
