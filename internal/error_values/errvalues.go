package errorvalues

import "errors"

var (
	ErrValidation = errors.New("validation error")

	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong name or password")
	ErrInvalidToken     = errors.New("invalid token")

	ErrHabitNotFound = errors.New("habit doesn't exists")
	ErrWrongOwner    = errors.New("habit has different owner")
	ErrOwnerNotFound = errors.New("habit owner doesn't exists")

	ErrEntryExists   = errors.New("entry for this date already exists")
	ErrEntryNotFound = errors.New("entry doesn't exists")
)
