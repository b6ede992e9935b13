package domain

import (
	"fmt"
	"time"
)

type ViewMode string

const (
	ViewModeAll        ViewMode = "all"
	ViewModeCompleted  ViewMode = "completed"
	ViewModeIncomplete ViewMode = "incomplete"
)

func ParseViewMode(value string) (ViewMode, error) {
	switch mode := ViewMode(value); mode {
	case ViewModeAll, ViewModeCompleted, ViewModeIncomplete:
		return mode, nil
	case "":
		return ViewModeAll, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidViewMode, value)
	}
}

type Task struct {
	ID          string
	Title       string
	Description string
	DueDate     time.Time
	Completed   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TaskDraft carries the user-editable fields of a task for create and edit.
type TaskDraft struct {
	Title       string
	Description string
	DueDate     time.Time
}

// TaskView is a point-in-time copy of the client-side task state.
type TaskView struct {
	Mode       ViewMode
	Tasks      []Task
	Completed  []Task
	Incomplete []Task
}

// Visible returns the list a front end renders for the active mode.
func (v TaskView) Visible() []Task {
	switch v.Mode {
	case ViewModeCompleted:
		return v.Completed
	case ViewModeIncomplete:
		return v.Incomplete
	default:
		return v.Tasks
	}
}
