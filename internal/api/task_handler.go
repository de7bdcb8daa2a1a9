package api

import (
	"net/http"

	"github.com/taskdeck/taskdeck-api/internal/api/shared"
	"github.com/taskdeck/taskdeck-api/internal/domain"
	"github.com/taskdeck/taskdeck-api/internal/service"
)

// TaskHandler handles task-related HTTP requests. Every endpoint
// requires an authenticated owner bound to the request context by the
// auth middleware.
type TaskHandler struct {
	taskService service.TaskService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService service.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// List handles GET /tasks requests.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := requireOwner(w, r)
	if !ok {
		return
	}

	tasks, err := h.taskService.ListTasks(r.Context(), ownerID)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, tasks)
}

// Create handles POST /tasks requests.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := requireOwner(w, r)
	if !ok {
		return
	}

	var req CreateTaskRequest
	if !decodeBody(w, r, &req) {
		return
	}

	complete := false
	if req.Complete != nil {
		complete = *req.Complete
	}

	task, err := h.taskService.CreateTask(r.Context(), ownerID, req.Title, complete)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, task)
}

// Get handles GET /tasks/{id} requests.
func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := requireOwner(w, r)
	if !ok {
		return
	}

	taskID, err := getPathUUID(r, "id")
	if err != nil {
		// An unparseable id cannot match any owned task.
		shared.RespondWithError(w, r, http.StatusNotFound, "Task not found")
		return
	}

	task, err := h.taskService.GetTask(r.Context(), ownerID, taskID)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, TaskEnvelope{
		Message: "Task retrieved successfully",
		Task:    task,
	})
}

// Update handles PUT /tasks/{id} requests. Only provided fields are
// changed; the owner and id are immutable.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := requireOwner(w, r)
	if !ok {
		return
	}

	taskID, err := getPathUUID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, "Task not found")
		return
	}

	var req UpdateTaskRequest
	if !decodeBody(w, r, &req) {
		return
	}

	task, err := h.taskService.UpdateTask(r.Context(), ownerID, taskID, domain.TaskPatch{
		Title:    req.Title,
		Complete: req.Complete,
	})
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, task)
}

// Delete handles DELETE /tasks/{id} requests.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := requireOwner(w, r)
	if !ok {
		return
	}

	taskID, err := getPathUUID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, "Task not found")
		return
	}

	if err := h.taskService.DeleteTask(r.Context(), ownerID, taskID); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{
		Message: "Task deleted successfully",
	})
}
