package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskdeck/taskdeck-api/internal/cache"
	"github.com/taskdeck/taskdeck-api/internal/domain"
	"github.com/taskdeck/taskdeck-api/internal/mocks"
	"github.com/taskdeck/taskdeck-api/internal/service"
	"github.com/taskdeck/taskdeck-api/internal/store"
)

func newTestService(t *testing.T) (service.TaskService, *mocks.MockTaskStore) {
	t.Helper()
	taskStore := mocks.NewMockTaskStore()
	svc := service.NewTaskService(taskStore, cache.NewTaskCache(time.Minute), nil)
	return svc, taskStore
}

func TestTaskService_ListTasks_ReadThrough(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, taskStore := newTestService(t)
	ownerID := uuid.New()

	_, err := svc.CreateTask(ctx, ownerID, "Write report", false)
	require.NoError(t, err)

	// First list misses the cache and hits the store.
	tasks, err := svc.ListTasks(ctx, ownerID)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, 1, taskStore.ListCalls)

	// Second list is served from the cache.
	tasks, err = svc.ListTasks(ctx, ownerID)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, 1, taskStore.ListCalls)
}

func TestTaskService_ListTasks_NewestFirst(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, taskStore := newTestService(t)
	ownerID := uuid.New()

	base := time.Now().UTC()
	for i, title := range []string{"oldest", "middle", "newest"} {
		task := domain.Task{
			ID:        uuid.New(),
			UserID:    ownerID,
			Title:     title,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
			UpdatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		taskStore.Tasks[task.ID] = &task
	}

	tasks, err := svc.ListTasks(ctx, ownerID)
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, "newest", tasks[0].Title)
	assert.Equal(t, "oldest", tasks[2].Title)
}

func TestTaskService_CreateTask(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	ownerID := uuid.New()

	t.Run("valid task", func(t *testing.T) {
		t.Parallel()

		svc, _ := newTestService(t)
		task, err := svc.CreateTask(ctx, ownerID, "Buy milk", false)
		require.NoError(t, err)

		assert.Equal(t, ownerID, task.UserID)
		assert.Equal(t, "Buy milk", task.Title)
		assert.False(t, task.Complete)
	})

	t.Run("invalid title reports the field", func(t *testing.T) {
		t.Parallel()

		svc, _ := newTestService(t)
		_, err := svc.CreateTask(ctx, ownerID, "ab", false)
		require.Error(t, err)

		var vErr *domain.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Contains(t, vErr.Fields, "title")
	})

	t.Run("store failure surfaces", func(t *testing.T) {
		t.Parallel()

		taskStore := mocks.NewMockTaskStore()
		taskStore.CreateError = errors.New("connection refused")
		svc := service.NewTaskService(taskStore, cache.NewTaskCache(time.Minute), nil)

		_, err := svc.CreateTask(ctx, ownerID, "Buy milk", false)
		assert.Error(t, err)
	})
}

func TestTaskService_CacheInvalidationOnWrites(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	strPtr := func(s string) *string { return &s }
	boolPtr := func(b bool) *bool { return &b }

	t.Run("create then list reflects the new task", func(t *testing.T) {
		t.Parallel()

		svc, _ := newTestService(t)
		ownerID := uuid.New()

		// Prime the cache with an empty list.
		tasks, err := svc.ListTasks(ctx, ownerID)
		require.NoError(t, err)
		assert.Empty(t, tasks)

		_, err = svc.CreateTask(ctx, ownerID, "Buy milk", false)
		require.NoError(t, err)

		tasks, err = svc.ListTasks(ctx, ownerID)
		require.NoError(t, err)
		require.Len(t, tasks, 1)
		assert.Equal(t, "Buy milk", tasks[0].Title)
	})

	t.Run("update then list reflects the new title", func(t *testing.T) {
		t.Parallel()

		svc, _ := newTestService(t)
		ownerID := uuid.New()

		task, err := svc.CreateTask(ctx, ownerID, "Buy milk", false)
		require.NoError(t, err)

		_, err = svc.ListTasks(ctx, ownerID) // prime cache
		require.NoError(t, err)

		_, err = svc.UpdateTask(ctx, ownerID, task.ID, domain.TaskPatch{
			Title: strPtr("Buy oat milk"),
		})
		require.NoError(t, err)

		tasks, err := svc.ListTasks(ctx, ownerID)
		require.NoError(t, err)
		require.Len(t, tasks, 1)
		assert.Equal(t, "Buy oat milk", tasks[0].Title)
	})

	t.Run("delete then list is empty", func(t *testing.T) {
		t.Parallel()

		svc, _ := newTestService(t)
		ownerID := uuid.New()

		task, err := svc.CreateTask(ctx, ownerID, "Buy milk", false)
		require.NoError(t, err)

		_, err = svc.ListTasks(ctx, ownerID) // prime cache
		require.NoError(t, err)

		require.NoError(t, svc.DeleteTask(ctx, ownerID, task.ID))

		tasks, err := svc.ListTasks(ctx, ownerID)
		require.NoError(t, err)
		assert.Empty(t, tasks)
	})

	t.Run("failed update leaves the cache intact", func(t *testing.T) {
		t.Parallel()

		svc, taskStore := newTestService(t)
		ownerID := uuid.New()

		_, err := svc.CreateTask(ctx, ownerID, "Buy milk", false)
		require.NoError(t, err)

		_, err = svc.ListTasks(ctx, ownerID)
		require.NoError(t, err)
		listCalls := taskStore.ListCalls

		_, err = svc.UpdateTask(ctx, ownerID, uuid.New(), domain.TaskPatch{
			Complete: boolPtr(true),
		})
		require.ErrorIs(t, err, store.ErrTaskNotFound)

		_, err = svc.ListTasks(ctx, ownerID)
		require.NoError(t, err)
		assert.Equal(t, listCalls, taskStore.ListCalls)
	})
}

func TestTaskService_OwnershipScoping(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, _ := newTestService(t)

	alice := uuid.New()
	bob := uuid.New()

	task, err := svc.CreateTask(ctx, alice, "Alice's secret task", false)
	require.NoError(t, err)

	// Bob cannot see, fetch, update, or delete Alice's task; every
	// path reports not-found, never a leak.
	tasks, err := svc.ListTasks(ctx, bob)
	require.NoError(t, err)
	assert.Empty(t, tasks)

	_, err = svc.GetTask(ctx, bob, task.ID)
	assert.ErrorIs(t, err, store.ErrTaskNotFound)

	title := "hijacked"
	_, err = svc.UpdateTask(ctx, bob, task.ID, domain.TaskPatch{Title: &title})
	assert.ErrorIs(t, err, store.ErrTaskNotFound)

	err = svc.DeleteTask(ctx, bob, task.ID)
	assert.ErrorIs(t, err, store.ErrTaskNotFound)

	// Alice still sees her task, unchanged.
	got, err := svc.GetTask(ctx, alice, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice's secret task", got.Title)
}

func TestTaskService_UpdateTask(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	strPtr := func(s string) *string { return &s }
	boolPtr := func(b bool) *bool { return &b }

	t.Run("partial patch only touches provided fields", func(t *testing.T) {
		t.Parallel()

		svc, _ := newTestService(t)
		ownerID := uuid.New()

		task, err := svc.CreateTask(ctx, ownerID, "Write report", false)
		require.NoError(t, err)

		updated, err := svc.UpdateTask(ctx, ownerID, task.ID, domain.TaskPatch{
			Complete: boolPtr(true),
		})
		require.NoError(t, err)
		assert.Equal(t, "Write report", updated.Title)
		assert.True(t, updated.Complete)
	})

	t.Run("invalid patch title is rejected before the store", func(t *testing.T) {
		t.Parallel()

		svc, _ := newTestService(t)
		ownerID := uuid.New()

		task, err := svc.CreateTask(ctx, ownerID, "Write report", false)
		require.NoError(t, err)

		_, err = svc.UpdateTask(ctx, ownerID, task.ID, domain.TaskPatch{
			Title: strPtr("ab"),
		})
		require.Error(t, err)

		var vErr *domain.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Contains(t, vErr.Fields, "title")
	})
}

func TestTaskService_DeleteTask_Idempotence(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, _ := newTestService(t)
	ownerID := uuid.New()

	task, err := svc.CreateTask(ctx, ownerID, "Buy milk", false)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteTask(ctx, ownerID, task.ID))

	// Repeating the delete always yields not-found.
	assert.ErrorIs(t, svc.DeleteTask(ctx, ownerID, task.ID), store.ErrTaskNotFound)
	assert.ErrorIs(t, svc.DeleteTask(ctx, ownerID, uuid.New()), store.ErrTaskNotFound)
}
