package ports

import (
	"context"

	"taskboard/internal/core/domain"
)

// TaskService is the remote, authoritative task storage.
type TaskService interface {
	FetchAll(ctx context.Context, token domain.SessionToken) ([]domain.Task, error)
	FetchByStatus(ctx context.Context, token domain.SessionToken, completed bool) ([]domain.Task, error)
	Create(ctx context.Context, token domain.SessionToken, draft domain.TaskDraft) (domain.Task, error)
	UpdateContent(ctx context.Context, token domain.SessionToken, id string, draft domain.TaskDraft) (domain.Task, error)
	UpdateStatus(ctx context.Context, token domain.SessionToken, id string, completed bool) (domain.Task, error)
	Delete(ctx context.Context, token domain.SessionToken, id string) error
}

// TaskSynchronizer is what the inbound adapters drive.
type TaskSynchronizer interface {
	Snapshot() domain.TaskView
	Reload(ctx context.Context) error
	SetViewMode(ctx context.Context, mode domain.ViewMode) error
	ToggleCompleted(ctx context.Context) error
	ToggleIncomplete(ctx context.Context) error
	Create(ctx context.Context, draft domain.TaskDraft) (domain.Task, error)
	Edit(ctx context.Context, id string, draft domain.TaskDraft) (domain.Task, error)
	SetStatus(ctx context.Context, id string, completed bool) (domain.Task, error)
	Delete(ctx context.Context, id string) error
	Reset()
}

type SessionProvider interface {
	SessionToken() domain.SessionToken
}

type HealthChecker interface {
	Ping(ctx context.Context) error
}
