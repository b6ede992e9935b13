package restclient

import (
	"fmt"
	"time"

	"taskboard/internal/core/domain"
)

const dateLayout = "2006-01-02"

func toDomainTasks(payloads []taskPayload) ([]domain.Task, error) {
	tasks := make([]domain.Task, 0, len(payloads))
	for _, payload := range payloads {
		task, err := toDomainTask(payload)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

func toDomainTask(payload taskPayload) (domain.Task, error) {
	task := domain.Task{
		ID:          payload.ID,
		Title:       payload.Title,
		Description: payload.Description,
		Completed:   payload.Completed,
	}

	var err error
	if task.DueDate, err = parseTime(payload.DueDate); err != nil {
		return domain.Task{}, fmt.Errorf("task %s: dueDate: %w", payload.ID, err)
	}
	if !task.DueDate.IsZero() {
		task.DueDate = domain.CalendarDay(task.DueDate)
	}
	if task.CreatedAt, err = parseTime(payload.CreatedAt); err != nil {
		return domain.Task{}, fmt.Errorf("task %s: createdAt: %w", payload.ID, err)
	}
	if task.UpdatedAt, err = parseTime(payload.UpdatedAt); err != nil {
		return domain.Task{}, fmt.Errorf("task %s: updatedAt: %w", payload.ID, err)
	}
	return task, nil
}

// parseTime accepts a bare calendar date or an RFC 3339 timestamp.
func parseTime(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(dateLayout, value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}
