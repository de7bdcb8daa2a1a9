package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// MinTitleLength is the minimum length of a task title after trimming.
const MinTitleLength = 3

// Task represents a single to-do item owned by a user. The owner and
// id are immutable after creation; only the title and completion flag
// may change.
type Task struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Title     string    `json:"title"`
	Complete  bool      `json:"complete"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TaskPatch carries a partial update for a task. Nil fields are left
// untouched by an update.
type TaskPatch struct {
	Title    *string
	Complete *bool
}

// NewTask creates a Task owned by the given user. The title is trimmed
// before validation. Returns a ValidationError listing every violated
// field if the input is invalid.
func NewTask(ownerID uuid.UUID, title string, complete bool) (*Task, error) {
	now := time.Now().UTC()
	task := &Task{
		ID:        uuid.New(),
		UserID:    ownerID,
		Title:     strings.TrimSpace(title),
		Complete:  complete,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks the task's fields.
func (t *Task) Validate() error {
	var v Violations

	if t.ID == uuid.Nil {
		v.Add("id", "cannot be empty")
	}
	if t.UserID == uuid.Nil {
		v.Add("user_id", "cannot be empty")
	}
	addTitleViolations(&v, t.Title)

	return v.Err()
}

// Validate checks the fields provided by the patch. Absent fields are
// not validated. The patch's title is trimmed in place so the stored
// value matches what was validated.
func (p *TaskPatch) Validate() error {
	var v Violations

	if p.Title != nil {
		trimmed := strings.TrimSpace(*p.Title)
		*p.Title = trimmed
		addTitleViolations(&v, trimmed)
	}

	return v.Err()
}

// IsEmpty reports whether the patch carries no fields at all.
func (p *TaskPatch) IsEmpty() bool {
	return p.Title == nil && p.Complete == nil
}

func addTitleViolations(v *Violations, title string) {
	switch {
	case title == "":
		v.Add("title", "cannot be empty")
	case len(title) < MinTitleLength:
		v.Add("title", "must be at least 3 characters")
	}
}
