package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/taskdeck/taskdeck-api/internal/domain"
)

// MockTaskService implements service.TaskService for testing
type MockTaskService struct {
	ListTasksFn  func(ctx context.Context, ownerID uuid.UUID) ([]domain.Task, error)
	CreateTaskFn func(ctx context.Context, ownerID uuid.UUID, title string, complete bool) (*domain.Task, error)
	GetTaskFn    func(ctx context.Context, ownerID, taskID uuid.UUID) (*domain.Task, error)
	UpdateTaskFn func(ctx context.Context, ownerID, taskID uuid.UUID, patch domain.TaskPatch) (*domain.Task, error)
	DeleteTaskFn func(ctx context.Context, ownerID, taskID uuid.UUID) error

	// Default values used when functions aren't explicitly defined
	Tasks []domain.Task
	Task  *domain.Task
	Err   error
}

// ListTasks implements the service.TaskService interface
func (m *MockTaskService) ListTasks(ctx context.Context, ownerID uuid.UUID) ([]domain.Task, error) {
	if m.ListTasksFn != nil {
		return m.ListTasksFn(ctx, ownerID)
	}
	return m.Tasks, m.Err
}

// CreateTask implements the service.TaskService interface
func (m *MockTaskService) CreateTask(
	ctx context.Context,
	ownerID uuid.UUID,
	title string,
	complete bool,
) (*domain.Task, error) {
	if m.CreateTaskFn != nil {
		return m.CreateTaskFn(ctx, ownerID, title, complete)
	}
	return m.Task, m.Err
}

// GetTask implements the service.TaskService interface
func (m *MockTaskService) GetTask(
	ctx context.Context,
	ownerID, taskID uuid.UUID,
) (*domain.Task, error) {
	if m.GetTaskFn != nil {
		return m.GetTaskFn(ctx, ownerID, taskID)
	}
	return m.Task, m.Err
}

// UpdateTask implements the service.TaskService interface
func (m *MockTaskService) UpdateTask(
	ctx context.Context,
	ownerID, taskID uuid.UUID,
	patch domain.TaskPatch,
) (*domain.Task, error) {
	if m.UpdateTaskFn != nil {
		return m.UpdateTaskFn(ctx, ownerID, taskID, patch)
	}
	return m.Task, m.Err
}

// DeleteTask implements the service.TaskService interface
func (m *MockTaskService) DeleteTask(ctx context.Context, ownerID, taskID uuid.UUID) error {
	if m.DeleteTaskFn != nil {
		return m.DeleteTaskFn(ctx, ownerID, taskID)
	}
	return m.Err
}
