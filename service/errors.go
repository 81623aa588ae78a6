package service

import (
	"errors"
	"fmt"

	"leads-backend/repository"
)

// Error kinds surfaced to callers. Handlers translate them into HTTP statuses.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrAuthFailure  = errors.New("authentication failed")
)

func invalidInput(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// translateStoreErr maps repository sentinels onto service error kinds
func translateStoreErr(err error, what string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrNotFound, what)
	}
	return err
}
