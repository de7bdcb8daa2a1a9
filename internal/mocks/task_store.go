package mocks

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/taskdeck/taskdeck-api/internal/domain"
	"github.com/taskdeck/taskdeck-api/internal/store"
)

// MockTaskStore implements store.TaskStore for testing. The default
// implementation keeps tasks in a map and enforces the same
// (id, owner) scoping as the real store.
type MockTaskStore struct {
	// Function fields for customizable behavior
	CreateFn          func(ctx context.Context, task *domain.Task) error
	ListByOwnerFn     func(ctx context.Context, ownerID uuid.UUID) ([]domain.Task, error)
	GetByIDAndOwnerFn func(ctx context.Context, id, ownerID uuid.UUID) (*domain.Task, error)
	UpdateFn          func(ctx context.Context, id, ownerID uuid.UUID, patch domain.TaskPatch) (*domain.Task, error)
	DeleteFn          func(ctx context.Context, id, ownerID uuid.UUID) error

	// Errors returned by the default implementation when set
	CreateError error
	ListError   error

	// ListCalls counts store reads so tests can assert cache behavior.
	ListCalls int

	mu    sync.Mutex
	Tasks map[uuid.UUID]*domain.Task
}

// NewMockTaskStore creates a new mock store with initialized defaults
func NewMockTaskStore() *MockTaskStore {
	return &MockTaskStore{
		Tasks: make(map[uuid.UUID]*domain.Task),
	}
}

// Create implements the store.TaskStore interface
func (m *MockTaskStore) Create(ctx context.Context, task *domain.Task) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, task)
	}
	if m.CreateError != nil {
		return m.CreateError
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *task
	m.Tasks[task.ID] = &copied
	return nil
}

// ListByOwner implements the store.TaskStore interface
func (m *MockTaskStore) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Task, error) {
	if m.ListByOwnerFn != nil {
		return m.ListByOwnerFn(ctx, ownerID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.ListCalls++
	if m.ListError != nil {
		return nil, m.ListError
	}

	tasks := make([]domain.Task, 0)
	for _, task := range m.Tasks {
		if task.UserID == ownerID {
			tasks = append(tasks, *task)
		}
	}
	sort.Slice(tasks, func(i, j int) bool {
		return tasks[i].CreatedAt.After(tasks[j].CreatedAt)
	})
	return tasks, nil
}

// GetByIDAndOwner implements the store.TaskStore interface
func (m *MockTaskStore) GetByIDAndOwner(
	ctx context.Context,
	id, ownerID uuid.UUID,
) (*domain.Task, error) {
	if m.GetByIDAndOwnerFn != nil {
		return m.GetByIDAndOwnerFn(ctx, id, ownerID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	task, exists := m.Tasks[id]
	if !exists || task.UserID != ownerID {
		return nil, store.ErrTaskNotFound
	}
	copied := *task
	return &copied, nil
}

// UpdateByIDAndOwner implements the store.TaskStore interface
func (m *MockTaskStore) UpdateByIDAndOwner(
	ctx context.Context,
	id, ownerID uuid.UUID,
	patch domain.TaskPatch,
) (*domain.Task, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, ownerID, patch)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	task, exists := m.Tasks[id]
	if !exists || task.UserID != ownerID {
		return nil, store.ErrTaskNotFound
	}

	if patch.Title != nil {
		task.Title = *patch.Title
	}
	if patch.Complete != nil {
		task.Complete = *patch.Complete
	}
	task.UpdatedAt = time.Now().UTC()

	copied := *task
	return &copied, nil
}

// DeleteByIDAndOwner implements the store.TaskStore interface
func (m *MockTaskStore) DeleteByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id, ownerID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	task, exists := m.Tasks[id]
	if !exists || task.UserID != ownerID {
		return store.ErrTaskNotFound
	}
	delete(m.Tasks, id)
	return nil
}
