package store

import (
	"fmt"
	"sync"

	"taskboard/internal/core/domain"
)

// PartitionPolicy decides how the completed/incomplete partitions follow
// incremental mutations.
type PartitionPolicy int

const (
	// PartitionPrune only removes a task from the partition it left when its
	// status changes. It never adds it to the other one, so partitions can lag
	// behind the collection until the next full load.
	PartitionPrune PartitionPolicy = iota
	// PartitionRecompute rebuilds both partitions after every mutation.
	PartitionRecompute
)

// ParsePartitionPolicy maps "prune" (or empty) and "recompute" to a policy.
func ParsePartitionPolicy(value string) (PartitionPolicy, error) {
	switch value {
	case "", "prune":
		return PartitionPrune, nil
	case "recompute":
		return PartitionRecompute, nil
	default:
		return 0, fmt.Errorf("unknown partition policy %q", value)
	}
}

// Option configures a TaskStore.
type Option func(*TaskStore)

// WithPartitionPolicy overrides the default PartitionPrune policy.
func WithPartitionPolicy(policy PartitionPolicy) Option {
	return func(s *TaskStore) {
		s.policy = policy
	}
}

// TaskStore holds the task collection backing the current view and its
// completed/incomplete partitions. All accessors return copies.
type TaskStore struct {
	mu         sync.RWMutex
	tasks      []domain.Task
	completed  []domain.Task
	incomplete []domain.Task
	mode       domain.ViewMode
	policy     PartitionPolicy
}

func NewTaskStore(opts ...Option) *TaskStore {
	s := &TaskStore{mode: domain.ViewModeAll}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ReplaceAll swaps in a copy of tasks and recomputes both partitions.
func (s *TaskStore) ReplaceAll(tasks []domain.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tasks = clone(tasks)
	s.partition()
}

// Insert appends task. Partitions are left as they are under PartitionPrune.
func (s *TaskStore) Insert(task domain.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tasks = append(s.tasks, task)
	if s.policy == PartitionRecompute {
		s.partition()
	}
}

// ReplaceOne swaps the task with the given id for task. A status change drops
// the task from the partition it left. It reports false and leaves everything
// untouched when id is not in the collection.
func (s *TaskStore) ReplaceOne(id string, task domain.Task) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.tasks, id)
	if i < 0 {
		return false
	}
	previous := s.tasks[i]
	s.tasks[i] = task

	if s.policy == PartitionRecompute {
		s.partition()
		return true
	}

	if previous.Completed != task.Completed {
		if previous.Completed {
			s.completed = without(s.completed, id)
		} else {
			s.incomplete = without(s.incomplete, id)
		}
		return true
	}

	replaceIn(s.completed, id, task)
	replaceIn(s.incomplete, id, task)
	return true
}

func (s *TaskStore) RemoveOne(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if indexOf(s.tasks, id) < 0 {
		return false
	}
	s.tasks = without(s.tasks, id)
	s.completed = without(s.completed, id)
	s.incomplete = without(s.incomplete, id)
	return true
}

func (s *TaskStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tasks = nil
	s.completed = nil
	s.incomplete = nil
	s.mode = domain.ViewModeAll
}

func (s *TaskStore) Mode() domain.ViewMode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}

func (s *TaskStore) SetMode(mode domain.ViewMode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = mode
}

func (s *TaskStore) Find(id string) (domain.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := indexOf(s.tasks, id); i >= 0 {
		return s.tasks[i], true
	}
	return domain.Task{}, false
}

func (s *TaskStore) Tasks() []domain.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.tasks)
}

func (s *TaskStore) Completed() []domain.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.completed)
}

func (s *TaskStore) Incomplete() []domain.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.incomplete)
}

func (s *TaskStore) Visible() []domain.Task {
	return s.Snapshot().Visible()
}

func (s *TaskStore) Snapshot() domain.TaskView {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return domain.TaskView{
		Mode:       s.mode,
		Tasks:      clone(s.tasks),
		Completed:  clone(s.completed),
		Incomplete: clone(s.incomplete),
	}
}

// partition must be called with the write lock held.
func (s *TaskStore) partition() {
	s.completed = make([]domain.Task, 0, len(s.tasks))
	s.incomplete = make([]domain.Task, 0, len(s.tasks))
	for _, task := range s.tasks {
		if task.Completed {
			s.completed = append(s.completed, task)
		} else {
			s.incomplete = append(s.incomplete, task)
		}
	}
}

func indexOf(tasks []domain.Task, id string) int {
	for i := range tasks {
		if tasks[i].ID == id {
			return i
		}
	}
	return -1
}

func without(tasks []domain.Task, id string) []domain.Task {
	kept := make([]domain.Task, 0, len(tasks))
	for _, task := range tasks {
		if task.ID != id {
			kept = append(kept, task)
		}
	}
	return kept
}

func replaceIn(tasks []domain.Task, id string, task domain.Task) {
	if i := indexOf(tasks, id); i >= 0 {
		tasks[i] = task
	}
}

func clone(tasks []domain.Task) []domain.Task {
	out := make([]domain.Task, len(tasks))
	copy(out, tasks)
	return out
}
