package goals

import "errors"

var (
	ErrGoalNotFound      = errors.New("goal not found")
	ErrGoalNotActive     = errors.New("goal is not active")
	ErrInvalidStatus     = errors.New("invalid goal status")
	ErrInvalidTransition = errors.New("invalid status transition")
)
