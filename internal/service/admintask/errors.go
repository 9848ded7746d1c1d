package admintask

import "errors"

var (
	ErrInvalidTaskID   = errors.New("invalid task id")
	ErrInvalidRef      = errors.New("invalid task reference")
	ErrUnknownKind     = errors.New("unknown task kind")
	ErrTaskNotFound    = errors.New("task not found")
	ErrAlreadyResolved = errors.New("task already resolved")
	ErrHumanOnly       = errors.New("task resolution requires a human actor")
)
