package antipasto

import "errors"

var (
	// ErrNoOptions is returned by New when the option list is empty. A
	// menu needs at least one action.
	ErrNoOptions = errors.New("menu options cannot be empty")

	// ErrSessionActive is returned by Show when this Menu is already
	// running a session. Nested menus must be separate Menu instances.
	ErrSessionActive = errors.New("menu session already active")
)
