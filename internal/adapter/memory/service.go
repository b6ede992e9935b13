// Package memory is an in-process stand-in for the remote task and account
// API. It backs the demo mode of the serve command and the test suites.
package memory

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"taskboard/internal/core/domain"
	"taskboard/internal/core/ports"
)

type account struct {
	profile      domain.Profile
	passwordHash []byte
}

type Service struct {
	mu         sync.Mutex
	now        func() time.Time
	bcryptCost int
	accounts   map[string]*account
	sessions   map[domain.SessionToken]string
	tasks      map[string][]domain.Task
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func WithBcryptCost(cost int) Option {
	return func(s *Service) {
		s.bcryptCost = cost
	}
}

func NewService(opts ...Option) *Service {
	s := &Service{
		now:        time.Now,
		bcryptCost: bcrypt.DefaultCost,
		accounts:   make(map[string]*account),
		sessions:   make(map[domain.SessionToken]string),
		tasks:      make(map[string][]domain.Task),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var (
	_ ports.TaskService    = (*Service)(nil)
	_ ports.AccountService = (*Service)(nil)
	_ ports.HealthChecker  = (*Service)(nil)
)

func (s *Service) Ping(context.Context) error {
	return nil
}

func (s *Service) Register(_ context.Context, reg domain.Registration) (domain.Profile, domain.SessionToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.accounts[reg.UserName]; exists {
		return domain.Profile{}, "", fieldError("username", "Username is already taken")
	}
	if s.emailTaken(reg.Email) {
		return domain.Profile{}, "", fieldError("email", "Email is already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), s.bcryptCost)
	if err != nil {
		return domain.Profile{}, "", &domain.ServiceError{StatusCode: http.StatusInternalServerError, Err: err}
	}

	acc := &account{
		profile:      domain.Profile{UserName: reg.UserName, Email: reg.Email},
		passwordHash: hash,
	}
	s.accounts[reg.UserName] = acc
	return acc.profile, s.openSession(reg.UserName), nil
}

func (s *Service) Login(_ context.Context, creds domain.Credentials) (domain.Profile, domain.SessionToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.accounts[creds.UserName]
	if !ok {
		return domain.Profile{}, "", fieldError("username", "Username does not exist")
	}
	if bcrypt.CompareHashAndPassword(acc.passwordHash, []byte(creds.Password)) != nil {
		return domain.Profile{}, "", fieldError("password", "Incorrect password")
	}
	return acc.profile, s.openSession(creds.UserName), nil
}

func (s *Service) Logout(_ context.Context, token domain.SessionToken) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, token)
	return nil
}

func (s *Service) UpdateProfile(_ context.Context, token domain.SessionToken, update domain.ProfileUpdate) (domain.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	owner, err := s.owner(token)
	if err != nil {
		return domain.Profile{}, err
	}
	acc := s.accounts[owner]

	if update.UserName != "" && update.UserName != owner {
		if _, taken := s.accounts[update.UserName]; taken {
			return domain.Profile{}, fieldError("username", "Username is already taken")
		}
	}
	if update.Email != "" && update.Email != acc.profile.Email && s.emailTaken(update.Email) {
		return domain.Profile{}, fieldError("email", "Email is already registered")
	}
	if update.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(update.Password), s.bcryptCost)
		if err != nil {
			return domain.Profile{}, &domain.ServiceError{StatusCode: http.StatusInternalServerError, Err: err}
		}
		acc.passwordHash = hash
	}
	if update.Email != "" {
		acc.profile.Email = update.Email
	}
	if update.UserName != "" && update.UserName != owner {
		s.rename(owner, update.UserName)
		acc.profile.UserName = update.UserName
	}
	return acc.profile, nil
}

func (s *Service) FetchAll(_ context.Context, token domain.SessionToken) ([]domain.Task, error) {
	return s.list(token, func(domain.Task) bool { return true })
}

func (s *Service) FetchByStatus(_ context.Context, token domain.SessionToken, completed bool) ([]domain.Task, error) {
	return s.list(token, func(t domain.Task) bool { return t.Completed == completed })
}

func (s *Service) Create(_ context.Context, token domain.SessionToken, draft domain.TaskDraft) (domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	owner, err := s.owner(token)
	if err != nil {
		return domain.Task{}, err
	}

	now := s.now()
	task := domain.Task{
		ID:          uuid.NewString(),
		Title:       draft.Title,
		Description: draft.Description,
		DueDate:     domain.CalendarDay(draft.DueDate),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.tasks[owner] = append(s.tasks[owner], task)
	return task, nil
}

func (s *Service) UpdateContent(_ context.Context, token domain.SessionToken, id string, draft domain.TaskDraft) (domain.Task, error) {
	return s.update(token, id, func(t *domain.Task) {
		t.Title = draft.Title
		t.Description = draft.Description
		t.DueDate = domain.CalendarDay(draft.DueDate)
	})
}

func (s *Service) UpdateStatus(_ context.Context, token domain.SessionToken, id string, completed bool) (domain.Task, error) {
	return s.update(token, id, func(t *domain.Task) {
		t.Completed = completed
	})
}

func (s *Service) Delete(_ context.Context, token domain.SessionToken, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	owner, err := s.owner(token)
	if err != nil {
		return err
	}

	tasks := s.tasks[owner]
	for i := range tasks {
		if tasks[i].ID == id {
			s.tasks[owner] = append(tasks[:i:i], tasks[i+1:]...)
			return nil
		}
	}
	return notFound()
}

func (s *Service) list(token domain.SessionToken, keep func(domain.Task) bool) ([]domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	owner, err := s.owner(token)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Task, 0, len(s.tasks[owner]))
	for _, task := range s.tasks[owner] {
		if keep(task) {
			out = append(out, task)
		}
	}
	return out, nil
}

func (s *Service) update(token domain.SessionToken, id string, apply func(*domain.Task)) (domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	owner, err := s.owner(token)
	if err != nil {
		return domain.Task{}, err
	}

	tasks := s.tasks[owner]
	for i := range tasks {
		if tasks[i].ID == id {
			apply(&tasks[i])
			tasks[i].UpdatedAt = s.now()
			return tasks[i], nil
		}
	}
	return domain.Task{}, notFound()
}

// owner must be called with s.mu held.
func (s *Service) owner(token domain.SessionToken) (string, error) {
	if name, ok := s.sessions[token]; ok {
		return name, nil
	}
	return "", &domain.ServiceError{StatusCode: http.StatusUnauthorized, Err: domain.ErrUnauthenticated}
}

func (s *Service) openSession(userName string) domain.SessionToken {
	token := domain.SessionToken(uuid.NewString())
	s.sessions[token] = userName
	return token
}

func (s *Service) rename(from, to string) {
	s.accounts[to] = s.accounts[from]
	delete(s.accounts, from)
	s.tasks[to] = s.tasks[from]
	delete(s.tasks, from)
	for token, name := range s.sessions {
		if name == from {
			s.sessions[token] = to
		}
	}
}

func (s *Service) emailTaken(email string) bool {
	for _, acc := range s.accounts {
		if acc.profile.Email == email {
			return true
		}
	}
	return false
}

func fieldError(field, message string) error {
	return &domain.ServiceError{StatusCode: http.StatusBadRequest, Field: field, Message: message}
}

func notFound() error {
	return &domain.ServiceError{StatusCode: http.StatusNotFound, Err: domain.ErrTaskNotFound}
}
