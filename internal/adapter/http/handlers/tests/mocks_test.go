package tests

import (
	"context"

	"github.com/stretchr/testify/mock"

	"taskboard/internal/core/domain"
)

type synchronizerMock struct {
	mock.Mock
}

func (m *synchronizerMock) Snapshot() domain.TaskView {
	args := m.Called()
	return args.Get(0).(domain.TaskView)
}

func (m *synchronizerMock) Reload(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *synchronizerMock) SetViewMode(ctx context.Context, mode domain.ViewMode) error {
	return m.Called(ctx, mode).Error(0)
}

func (m *synchronizerMock) ToggleCompleted(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *synchronizerMock) ToggleIncomplete(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *synchronizerMock) Create(ctx context.Context, draft domain.TaskDraft) (domain.Task, error) {
	args := m.Called(ctx, draft)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *synchronizerMock) Edit(ctx context.Context, id string, draft domain.TaskDraft) (domain.Task, error) {
	args := m.Called(ctx, id, draft)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *synchronizerMock) SetStatus(ctx context.Context, id string, completed bool) (domain.Task, error) {
	args := m.Called(ctx, id, completed)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *synchronizerMock) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *synchronizerMock) Reset() {
	m.Called()
}

type authenticatorMock struct {
	mock.Mock
}

func (m *authenticatorMock) Register(ctx context.Context, reg domain.Registration) (domain.Profile, error) {
	args := m.Called(ctx, reg)
	return args.Get(0).(domain.Profile), args.Error(1)
}

func (m *authenticatorMock) Login(ctx context.Context, creds domain.Credentials) (domain.Profile, error) {
	args := m.Called(ctx, creds)
	return args.Get(0).(domain.Profile), args.Error(1)
}

func (m *authenticatorMock) Logout(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *authenticatorMock) UpdateProfile(ctx context.Context, update domain.ProfileUpdate) (domain.Profile, error) {
	args := m.Called(ctx, update)
	return args.Get(0).(domain.Profile), args.Error(1)
}

func (m *authenticatorMock) Current() domain.SessionState {
	return m.Called().Get(0).(domain.SessionState)
}
