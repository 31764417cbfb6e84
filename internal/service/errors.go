package service

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"assessment-service/internal/repository"
)

// Error taxonomy surfaced to the handler layer. Handlers match with
// errors.Is and map to HTTP statuses; nothing below is ever retried
// silently by the services.
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("invalid input")
	// ErrSessionTerminal marks mutations of a completed or abandoned
	// session, including a second submit.
	ErrSessionTerminal = errors.New("session already finished")
	ErrDuplicateAnswer = errors.New("question already answered in this session")
	// ErrConflict covers concurrent-write rejections; the caller recovers by
	// re-fetching session state.
	ErrConflict = errors.New("session state conflict")
	// ErrUpstream marks a question-generation failure that survived the
	// single strict retry.
	ErrUpstream = errors.New("question generation failed")
)

// mapStoreErr translates storage errors into the service taxonomy.
func mapStoreErr(err error, what string) error {
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return fmt.Errorf("%w: %s", ErrNotFound, what)
	case errors.Is(err, repository.ErrVersionConflict):
		return fmt.Errorf("%w: %s was modified concurrently", ErrConflict, what)
	}
	return err
}
