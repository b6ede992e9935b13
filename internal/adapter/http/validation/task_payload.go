package validation

import (
	"errors"
	"time"

	"taskboard/internal/adapter/http/dto"
	"taskboard/internal/core/domain"
)

var ErrInvalidTaskPayload = errors.New("invalid task payload")

// BuildTaskDraft converts the wire payload into a draft. Emptiness and the
// due date floor are checked by the synchronizer, so a blank field passes
// through here untouched.
func BuildTaskDraft(req dto.TaskRequest) (domain.TaskDraft, error) {
	draft := domain.TaskDraft{
		Title:       req.Title,
		Description: req.Description,
	}

	if req.DueDate != "" {
		dueDate, err := time.Parse("2006-01-02", req.DueDate)
		if err != nil {
			return domain.TaskDraft{}, ErrInvalidTaskPayload
		}
		draft.DueDate = dueDate
	}

	return draft, nil
}

func BuildViewMode(req dto.ViewRequest) (domain.ViewMode, error) {
	return domain.ParseViewMode(req.Mode)
}
