package services

import "errors"

// ErrDuplicateUsername is returned when registering a username that is
// already taken.
var ErrDuplicateUsername = errors.New("username already exists")

// ErrInvalidCredentials is returned when login fails. Unknown usernames and
// wrong passwords deliberately collapse into this single error so responses
// cannot be used to enumerate accounts.
var ErrInvalidCredentials = errors.New("invalid username or password")
