package editor

import (
	"errors"

	"file-sorter/internal/configstore"
)

var (
	// ErrUnknownCommand is returned when the command name is not in the
	// catalog or does not support the requested operation.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrInvalidValue is returned when a numeric option gets a non-digit value.
	ErrInvalidValue = errors.New("invalid value")

	// ErrConfigUnavailable is returned when the config cannot be loaded or persisted.
	ErrConfigUnavailable = configstore.ErrUnavailable

	// ErrKeyNotFound is returned when the key or marker is not in the config.
	ErrKeyNotFound = errors.New("key not found")

	// ErrRowOutOfRange is returned when a row offset points past the config.
	ErrRowOutOfRange = errors.New("row out of range")

	// ErrProtectedLine is returned when a removal targets a section marker.
	ErrProtectedLine = errors.New("protected line")
)
