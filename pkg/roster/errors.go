package roster

import "errors"

var (
	ErrEmptyRoster      = errors.New("roster: no valid participants found")
	ErrDuplicateName    = errors.New("roster: duplicate participant name")
	ErrInvalidName      = errors.New("roster: participant name contains a colon or line break")
	ErrInvalidEmail     = errors.New("roster: invalid email address")
	ErrUnknownFormat    = errors.New("roster: unknown format")
	ErrFailedToReadFile = errors.New("roster: failed to read file")
	ErrFailedToDecode   = errors.New("roster: failed to decode")
)
