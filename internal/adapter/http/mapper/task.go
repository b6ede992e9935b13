package mapper

import (
	"time"

	"taskboard/internal/adapter/http/dto"
	"taskboard/internal/core/domain"
)

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Completed:   task.Completed,
	}

	if !task.DueDate.IsZero() {
		item.DueDate = task.DueDate.Format("2006-01-02")
	}
	if !task.CreatedAt.IsZero() {
		item.CreatedAt = task.CreatedAt.Format(time.RFC3339)
	}
	if !task.UpdatedAt.IsZero() {
		item.UpdatedAt = task.UpdatedAt.Format(time.RFC3339)
	}

	return item
}

func ToTaskView(view domain.TaskView) dto.TaskView {
	return dto.TaskView{
		Mode:       string(view.Mode),
		Visible:    ToTaskItems(view.Visible()),
		Tasks:      ToTaskItems(view.Tasks),
		Completed:  ToTaskItems(view.Completed),
		Incomplete: ToTaskItems(view.Incomplete),
	}
}
