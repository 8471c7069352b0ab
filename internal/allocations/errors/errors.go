package errors

import "errors"

var (
	ErrNotFound = errors.New("allocation not found")

	ErrNoRoomsConfigured = errors.New("no rooms marked as available")

	ErrNoRoomFree = errors.New("no rooms available for the specified time")
)
