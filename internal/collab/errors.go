package collab

import "errors"

var (
	// ErrMemberClosed is returned when a member that already left the hub
	// tries to join a room.
	ErrMemberClosed = errors.New("member is closed")
	// ErrInvalidRoom is returned for a non-positive inventory id.
	ErrInvalidRoom = errors.New("invalid inventory id")
	// ErrUnknownCommand is returned for an unrecognized client message.
	ErrUnknownCommand = errors.New("unknown message type")
)
