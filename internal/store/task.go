package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/taskdeck/taskdeck-api/internal/domain"
)

// TaskStore defines the interface for task data persistence. Every
// read and write is scoped by owner: the query predicate itself is the
// access-control boundary, so a task owned by someone else behaves
// exactly like a task that does not exist.
type TaskStore interface {
	// Create saves a new task to the store.
	// Returns ErrInvalidEntity if the owning user does not exist.
	Create(ctx context.Context, task *domain.Task) error

	// ListByOwner retrieves every task owned by the given user,
	// ordered by creation time descending. An owner with no tasks
	// yields an empty (non-nil) slice.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Task, error)

	// GetByIDAndOwner retrieves the task with the given id owned by
	// the given user. Returns ErrTaskNotFound if no such task exists.
	GetByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*domain.Task, error)

	// UpdateByIDAndOwner applies the patch to the task with the given
	// id owned by the given user in a single atomic statement, and
	// returns the updated task. Returns ErrTaskNotFound if no such
	// task exists.
	UpdateByIDAndOwner(
		ctx context.Context,
		id, ownerID uuid.UUID,
		patch domain.TaskPatch,
	) (*domain.Task, error)

	// DeleteByIDAndOwner removes the task with the given id owned by
	// the given user. Returns ErrTaskNotFound if no such task exists.
	DeleteByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) error
}
