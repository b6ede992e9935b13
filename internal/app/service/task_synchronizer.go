package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"taskboard/internal/app/store"
	"taskboard/internal/core/domain"
	"taskboard/internal/core/ports"
)

const (
	OpLoadAll        = "load all tasks"
	OpLoadCompleted  = "load completed tasks"
	OpLoadIncomplete = "load incomplete tasks"
	OpCreate         = "create task"
	OpEdit           = "edit task"
	OpSetStatus      = "set task status"
	OpDelete         = "delete task"
)

// TaskSynchronizer performs one remote round trip per user action and applies
// the result to the task store.
type TaskSynchronizer struct {
	tasks   ports.TaskService
	store   *store.TaskStore
	session ports.SessionProvider
	now     func() time.Time

	// loadSeq tickets every load; only the newest load may replace the store.
	loadSeq atomic.Uint64
	applyMu sync.Mutex
}

type SynchronizerOption func(*TaskSynchronizer)

// WithClock overrides the clock used to decide what "today" is.
func WithClock(now func() time.Time) SynchronizerOption {
	return func(s *TaskSynchronizer) {
		s.now = now
	}
}

func NewTaskSynchronizer(
	tasks ports.TaskService,
	taskStore *store.TaskStore,
	session ports.SessionProvider,
	opts ...SynchronizerOption,
) *TaskSynchronizer {
	s := &TaskSynchronizer{
		tasks:   tasks,
		store:   taskStore,
		session: session,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.TaskSynchronizer = (*TaskSynchronizer)(nil)

func (s *TaskSynchronizer) Snapshot() domain.TaskView {
	return s.store.Snapshot()
}

func (s *TaskSynchronizer) Reset() {
	s.applyMu.Lock()
	defer s.applyMu.Unlock()

	// Invalidate any load still in flight.
	s.loadSeq.Add(1)
	s.store.Reset()
}

func (s *TaskSynchronizer) LoadAll(ctx context.Context) error {
	return s.load(ctx, OpLoadAll, func(token domain.SessionToken) ([]domain.Task, error) {
		return s.tasks.FetchAll(ctx, token)
	})
}

func (s *TaskSynchronizer) LoadCompleted(ctx context.Context) error {
	return s.load(ctx, OpLoadCompleted, func(token domain.SessionToken) ([]domain.Task, error) {
		return s.tasks.FetchByStatus(ctx, token, true)
	})
}

func (s *TaskSynchronizer) LoadIncomplete(ctx context.Context) error {
	return s.load(ctx, OpLoadIncomplete, func(token domain.SessionToken) ([]domain.Task, error) {
		return s.tasks.FetchByStatus(ctx, token, false)
	})
}

// Reload runs the load that matches the active view mode.
func (s *TaskSynchronizer) Reload(ctx context.Context) error {
	switch s.store.Mode() {
	case domain.ViewModeCompleted:
		return s.LoadCompleted(ctx)
	case domain.ViewModeIncomplete:
		return s.LoadIncomplete(ctx)
	default:
		return s.LoadAll(ctx)
	}
}

// SetViewMode activates mode and loads the matching server collection. The
// mode stays switched even if the load fails.
func (s *TaskSynchronizer) SetViewMode(ctx context.Context, mode domain.ViewMode) error {
	s.store.SetMode(mode)
	return s.Reload(ctx)
}

func (s *TaskSynchronizer) ToggleCompleted(ctx context.Context) error {
	return s.toggle(ctx, domain.ViewModeCompleted)
}

func (s *TaskSynchronizer) ToggleIncomplete(ctx context.Context) error {
	return s.toggle(ctx, domain.ViewModeIncomplete)
}

func (s *TaskSynchronizer) toggle(ctx context.Context, mode domain.ViewMode) error {
	if s.store.Mode() == mode {
		return s.SetViewMode(ctx, domain.ViewModeAll)
	}
	return s.SetViewMode(ctx, mode)
}

func (s *TaskSynchronizer) Create(ctx context.Context, draft domain.TaskDraft) (domain.Task, error) {
	valid, err := domain.ValidateDraft(draft, s.now())
	if err != nil {
		return domain.Task{}, domain.NewOperationError(OpCreate, domain.FailureValidation, err)
	}

	created, err := s.tasks.Create(ctx, s.session.SessionToken(), valid)
	if err != nil {
		zap.L().Warn("failed to create task", zap.Error(err))
		return domain.Task{}, domain.NewOperationError(OpCreate, domain.FailureSubmission, err)
	}

	s.store.Insert(created)
	return created, nil
}

func (s *TaskSynchronizer) Edit(ctx context.Context, id string, draft domain.TaskDraft) (domain.Task, error) {
	valid, err := domain.ValidateDraft(draft, s.now())
	if err != nil {
		return domain.Task{}, domain.NewOperationError(OpEdit, domain.FailureValidation, err)
	}

	updated, err := s.tasks.UpdateContent(ctx, s.session.SessionToken(), id, valid)
	if err != nil {
		zap.L().Warn("failed to edit task", zap.String("task_id", id), zap.Error(err))
		return domain.Task{}, domain.NewOperationError(OpEdit, domain.FailureSubmission, err)
	}

	s.store.ReplaceOne(id, updated)
	return updated, nil
}

func (s *TaskSynchronizer) SetStatus(ctx context.Context, id string, completed bool) (domain.Task, error) {
	updated, err := s.tasks.UpdateStatus(ctx, s.session.SessionToken(), id, completed)
	if err != nil {
		zap.L().Warn("failed to update task status", zap.String("task_id", id), zap.Bool("completed", completed), zap.Error(err))
		return domain.Task{}, domain.NewOperationError(OpSetStatus, domain.FailureStatusUpdate, err)
	}

	s.store.ReplaceOne(id, updated)
	return updated, nil
}

func (s *TaskSynchronizer) Delete(ctx context.Context, id string) error {
	if err := s.tasks.Delete(ctx, s.session.SessionToken(), id); err != nil {
		zap.L().Warn("failed to delete task", zap.String("task_id", id), zap.Error(err))
		return domain.NewOperationError(OpDelete, domain.FailureDelete, err)
	}

	s.store.RemoveOne(id)
	return nil
}

func (s *TaskSynchronizer) load(ctx context.Context, op string, fetch func(domain.SessionToken) ([]domain.Task, error)) error {
	ticket := s.loadSeq.Add(1)

	tasks, err := fetch(s.session.SessionToken())
	if err != nil {
		zap.L().Warn("failed to load tasks", zap.String("op", op), zap.Error(err))
		return domain.NewOperationError(op, domain.FailureLoad, err)
	}

	s.applyMu.Lock()
	defer s.applyMu.Unlock()
	if ticket != s.loadSeq.Load() {
		zap.L().Debug("discarding superseded load", zap.String("op", op), zap.Uint64("ticket", ticket))
		return nil
	}
	s.store.ReplaceAll(tasks)
	return nil
}
