package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/taskdeck/taskdeck-api/internal/domain"
	"github.com/taskdeck/taskdeck-api/internal/platform/logger"
	"github.com/taskdeck/taskdeck-api/internal/store"
)

// TaskStore implements the store.TaskStore interface using a
// PostgreSQL database as the storage backend. Every query predicate
// includes the owner id, so ownership is enforced by the database
// rather than by a separate authorization step.
type TaskStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewTaskStore creates a new PostgreSQL implementation of the
// store.TaskStore interface. If logger is nil, the default logger is
// used.
func NewTaskStore(db store.DBTX, log *slog.Logger) *TaskStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &TaskStore{
		db:     db,
		logger: log.With(slog.String("component", "task_store")),
	}
}

// Ensure TaskStore implements store.TaskStore interface
var _ store.TaskStore = (*TaskStore)(nil)

// Create implements store.TaskStore.Create.
// Returns store.ErrInvalidEntity if the owning user does not exist
// (foreign key violation).
func (s *TaskStore) Create(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := task.Validate(); err != nil {
		log.Warn("task validation failed during create",
			slog.String("error", err.Error()),
			slog.String("task_id", task.ID.String()))
		return err
	}

	query := `
		INSERT INTO tasks (id, user_id, title, complete, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		task.ID,
		task.UserID,
		task.Title,
		task.Complete,
		task.CreatedAt,
		task.UpdatedAt,
	)

	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during task creation",
				slog.String("task_id", task.ID.String()),
				slog.String("user_id", task.UserID.String()))
			return fmt.Errorf("%w: user with ID %s not found",
				store.ErrInvalidEntity, task.UserID)
		}

		log.Error("failed to create task",
			slog.String("error", err.Error()),
			slog.String("task_id", task.ID.String()),
			slog.String("user_id", task.UserID.String()))
		return MapError(err)
	}

	log.Info("task created",
		slog.String("task_id", task.ID.String()),
		slog.String("user_id", task.UserID.String()))
	return nil
}

// ListByOwner implements store.TaskStore.ListByOwner.
// Tasks are returned newest-first. An owner with no tasks yields an
// empty slice, not nil.
func (s *TaskStore) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, title, complete, created_at, updated_at
		FROM tasks
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		log.Error("failed to list tasks",
			slog.String("error", err.Error()),
			slog.String("user_id", ownerID.String()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Warn("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	tasks := make([]domain.Task, 0)
	for rows.Next() {
		var task domain.Task
		if err := rows.Scan(
			&task.ID,
			&task.UserID,
			&task.Title,
			&task.Complete,
			&task.CreatedAt,
			&task.UpdatedAt,
		); err != nil {
			log.Error("failed to scan task row",
				slog.String("error", err.Error()),
				slog.String("user_id", ownerID.String()))
			return nil, MapError(err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return tasks, nil
}

// GetByIDAndOwner implements store.TaskStore.GetByIDAndOwner.
// Returns store.ErrTaskNotFound if no task with that id is owned by
// that user.
func (s *TaskStore) GetByIDAndOwner(
	ctx context.Context,
	id, ownerID uuid.UUID,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, title, complete, created_at, updated_at
		FROM tasks
		WHERE id = $1 AND user_id = $2
	`

	var task domain.Task
	err := s.db.QueryRowContext(ctx, query, id, ownerID).Scan(
		&task.ID,
		&task.UserID,
		&task.Title,
		&task.Complete,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrTaskNotFound
		}
		log.Error("failed to get task",
			slog.String("error", err.Error()),
			slog.String("task_id", id.String()),
			slog.String("user_id", ownerID.String()))
		return nil, MapError(err)
	}

	return &task, nil
}

// UpdateByIDAndOwner implements store.TaskStore.UpdateByIDAndOwner.
// The update is a single statement scoped to (id, owner); COALESCE
// leaves absent patch fields untouched. Returns store.ErrTaskNotFound
// if no task matched.
func (s *TaskStore) UpdateByIDAndOwner(
	ctx context.Context,
	id, ownerID uuid.UUID,
	patch domain.TaskPatch,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := patch.Validate(); err != nil {
		log.Warn("task patch validation failed",
			slog.String("error", err.Error()),
			slog.String("task_id", id.String()))
		return nil, err
	}

	query := `
		UPDATE tasks
		SET title = COALESCE($3, title),
		    complete = COALESCE($4, complete),
		    updated_at = $5
		WHERE id = $1 AND user_id = $2
		RETURNING id, user_id, title, complete, created_at, updated_at
	`

	var task domain.Task
	err := s.db.QueryRowContext(
		ctx,
		query,
		id,
		ownerID,
		patch.Title,
		patch.Complete,
		time.Now().UTC(),
	).Scan(
		&task.ID,
		&task.UserID,
		&task.Title,
		&task.Complete,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrTaskNotFound
		}
		log.Error("failed to update task",
			slog.String("error", err.Error()),
			slog.String("task_id", id.String()),
			slog.String("user_id", ownerID.String()))
		return nil, MapError(err)
	}

	log.Info("task updated",
		slog.String("task_id", id.String()),
		slog.String("user_id", ownerID.String()))
	return &task, nil
}

// DeleteByIDAndOwner implements store.TaskStore.DeleteByIDAndOwner.
// Returns store.ErrTaskNotFound if no task matched; deleting an
// already-deleted task therefore always fails the same way.
func (s *TaskStore) DeleteByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM tasks WHERE id = $1 AND user_id = $2`

	result, err := s.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		log.Error("failed to delete task",
			slog.String("error", err.Error()),
			slog.String("task_id", id.String()),
			slog.String("user_id", ownerID.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, "task"); err != nil {
		return store.ErrTaskNotFound
	}

	log.Info("task deleted",
		slog.String("task_id", id.String()),
		slog.String("user_id", ownerID.String()))
	return nil
}
