package dto

type TaskItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"due_date"`
	Completed   bool   `json:"completed"`
	CreatedAt   string `json:"created_at,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}

// TaskView is the store as the UI renders it: the list for the active mode
// plus both partitions.
type TaskView struct {
	Mode       string     `json:"mode"`
	Visible    []TaskItem `json:"visible"`
	Tasks      []TaskItem `json:"tasks"`
	Completed  []TaskItem `json:"completed"`
	Incomplete []TaskItem `json:"incomplete"`
}

type TaskRequest struct {
	Title       string `json:"title" binding:"max=255"`
	Description string `json:"description" binding:"max=65535"`
	DueDate     string `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
}

type TaskStatusRequest struct {
	Completed *bool `json:"completed" binding:"required"`
}

type ViewRequest struct {
	Mode string `json:"mode" binding:"required"`
}
