package repository

import "errors"

var (
	// ErrUsernameTaken is returned when an insert hits the unique index
	// on users.username. The message doubles as the client-facing error
	// body.
	ErrUsernameTaken = errors.New("given username is already taken")

	// ErrBlogNotFound is returned when an update references an id that
	// does not exist.
	ErrBlogNotFound = errors.New("blog not found")
)
