package agentverse

import "errors"

var (
	// ErrEmptyInput rejects a trigger with blank input before any
	// collaborator is invoked.
	ErrEmptyInput = errors.New("input is empty")

	// ErrBusy rejects a trigger while an invocation is outstanding.
	ErrBusy = errors.New("invocation already in progress")
)
