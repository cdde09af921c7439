package storage

import "errors"

var (
	ErrUserExists    = errors.New("user already exists")
	ErrUserNotFound  = errors.New("user not found")
	ErrClassNotFound = errors.New("class not found")
	ErrClassInPast   = errors.New("class is in the past")
	ErrNoSlots       = errors.New("no available slots")
	ErrAlreadyBooked = errors.New("already booked for this class")
)
