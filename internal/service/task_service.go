package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/taskdeck/taskdeck-api/internal/cache"
	"github.com/taskdeck/taskdeck-api/internal/domain"
	"github.com/taskdeck/taskdeck-api/internal/store"
)

// TaskService provides task operations scoped to an authenticated
// owner. Reads go through a per-owner cache; any successful write
// invalidates the owner's cache entry before the result is returned,
// so the owner's next list read is a fresh store fetch.
type TaskService interface {
	// ListTasks returns all of the owner's tasks, newest first.
	ListTasks(ctx context.Context, ownerID uuid.UUID) ([]domain.Task, error)

	// CreateTask validates and persists a new task for the owner.
	CreateTask(ctx context.Context, ownerID uuid.UUID, title string, complete bool) (*domain.Task, error)

	// GetTask returns the owner's task with the given id.
	// Returns store.ErrTaskNotFound whether the task belongs to
	// someone else or does not exist at all.
	GetTask(ctx context.Context, ownerID, taskID uuid.UUID) (*domain.Task, error)

	// UpdateTask applies the patch to the owner's task with the given
	// id. Only provided fields are validated and changed.
	UpdateTask(ctx context.Context, ownerID, taskID uuid.UUID, patch domain.TaskPatch) (*domain.Task, error)

	// DeleteTask removes the owner's task with the given id.
	DeleteTask(ctx context.Context, ownerID, taskID uuid.UUID) error
}

// TaskServiceImpl implements the TaskService interface over a
// TaskStore and an explicitly owned TaskCache instance.
type TaskServiceImpl struct {
	taskStore store.TaskStore
	taskCache *cache.TaskCache
	logger    *slog.Logger
}

// NewTaskService creates a new TaskService. The cache instance is
// owned by the caller and shared with no other component.
func NewTaskService(
	taskStore store.TaskStore,
	taskCache *cache.TaskCache,
	logger *slog.Logger,
) TaskService {
	if logger == nil {
		logger = slog.Default()
	}
	return &TaskServiceImpl{
		taskStore: taskStore,
		taskCache: taskCache,
		logger:    logger.With("component", "task_service"),
	}
}

// ListTasks implements TaskService.ListTasks with read-through
// caching: a cache hit skips the store entirely; a miss fetches from
// the store and populates the cache.
func (s *TaskServiceImpl) ListTasks(ctx context.Context, ownerID uuid.UUID) ([]domain.Task, error) {
	if tasks, ok := s.taskCache.Get(ownerID); ok {
		s.logger.Debug("task list served from cache",
			"user_id", ownerID,
			"count", len(tasks))
		return tasks, nil
	}

	tasks, err := s.taskStore.ListByOwner(ctx, ownerID)
	if err != nil {
		s.logger.Error("failed to list tasks",
			"error", err,
			"user_id", ownerID)
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	s.taskCache.Put(ownerID, tasks)

	s.logger.Debug("task list fetched from store",
		"user_id", ownerID,
		"count", len(tasks))
	return tasks, nil
}

// CreateTask implements TaskService.CreateTask.
func (s *TaskServiceImpl) CreateTask(
	ctx context.Context,
	ownerID uuid.UUID,
	title string,
	complete bool,
) (*domain.Task, error) {
	task, err := domain.NewTask(ownerID, title, complete)
	if err != nil {
		return nil, err
	}

	if err := s.taskStore.Create(ctx, task); err != nil {
		s.logger.Error("failed to create task",
			"error", err,
			"user_id", ownerID)
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	// Invalidate before returning so the owner's next list read
	// reflects the new task.
	s.taskCache.Invalidate(ownerID)

	s.logger.Info("task created",
		"task_id", task.ID,
		"user_id", ownerID)
	return task, nil
}

// GetTask implements TaskService.GetTask.
func (s *TaskServiceImpl) GetTask(
	ctx context.Context,
	ownerID, taskID uuid.UUID,
) (*domain.Task, error) {
	task, err := s.taskStore.GetByIDAndOwner(ctx, taskID, ownerID)
	if err != nil {
		return nil, err
	}
	return task, nil
}

// UpdateTask implements TaskService.UpdateTask. The store applies the
// patch atomically scoped to (taskID, ownerID).
func (s *TaskServiceImpl) UpdateTask(
	ctx context.Context,
	ownerID, taskID uuid.UUID,
	patch domain.TaskPatch,
) (*domain.Task, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	task, err := s.taskStore.UpdateByIDAndOwner(ctx, taskID, ownerID, patch)
	if err != nil {
		return nil, err
	}

	s.taskCache.Invalidate(ownerID)

	s.logger.Info("task updated",
		"task_id", taskID,
		"user_id", ownerID)
	return task, nil
}

// DeleteTask implements TaskService.DeleteTask. Deleting a task that
// no longer exists yields store.ErrTaskNotFound, never a partial
// success.
func (s *TaskServiceImpl) DeleteTask(ctx context.Context, ownerID, taskID uuid.UUID) error {
	if err := s.taskStore.DeleteByIDAndOwner(ctx, taskID, ownerID); err != nil {
		return err
	}

	s.taskCache.Invalidate(ownerID)

	s.logger.Info("task deleted",
		"task_id", taskID,
		"user_id", ownerID)
	return nil
}
