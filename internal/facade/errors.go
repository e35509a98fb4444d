package facade

import (
	"errors"

	"github.com/holbertonschool/hbnb/internal/repository"
)

// ConflictError reports a business conflict: the write collided with
// state that must stay unique (registered email, (title, owner) pair).
// Handlers translate it into HTTP 409.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

func conflict(message string) error { return &ConflictError{Message: message} }

// translateWrite converts storage-level sentinels into the domain
// taxonomy. A duplicate-key violation means another writer won a race on
// a unique constraint; it surfaces as the same conflict the pre-check
// would have raised.
func translateWrite(err error, message string) error {
	if errors.Is(err, repository.ErrDuplicate) {
		return conflict(message)
	}
	return err
}
