package memory_test

import (
	"context"
	"testing"
	"time"

	"taskboard/internal/adapter/memory"
	"taskboard/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newService() *memory.Service {
	return memory.NewService(memory.WithBcryptCost(bcrypt.MinCost))
}

func register(t *testing.T, svc *memory.Service, name string) domain.SessionToken {
	t.Helper()
	_, token, err := svc.Register(context.Background(), domain.Registration{
		UserName: name, Email: name + "@example.com", Password: "secret", PasswordConfirm: "secret",
	})
	require.NoError(t, err)
	return token
}

func TestService_TasksAreScopedToTheSessionOwner(t *testing.T) {
	ctx := context.Background()
	svc := newService()
	ann := register(t, svc, "ann")
	bob := register(t, svc, "bob")

	_, err := svc.Create(ctx, ann, domain.TaskDraft{Title: "t", Description: "d", DueDate: time.Now()})
	require.NoError(t, err)

	annTasks, err := svc.FetchAll(ctx, ann)
	require.NoError(t, err)
	assert.Len(t, annTasks, 1)

	bobTasks, err := svc.FetchAll(ctx, bob)
	require.NoError(t, err)
	assert.Empty(t, bobTasks)
}

func TestService_RejectsUnknownToken(t *testing.T) {
	_, err := newService().FetchAll(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestService_StatusAndDelete(t *testing.T) {
	ctx := context.Background()
	svc := newService()
	token := register(t, svc, "ann")

	created, err := svc.Create(ctx, token, domain.TaskDraft{Title: "t", Description: "d", DueDate: time.Now()})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	_, err = svc.UpdateStatus(ctx, token, created.ID, true)
	require.NoError(t, err)

	done, err := svc.FetchByStatus(ctx, token, true)
	require.NoError(t, err)
	require.Len(t, done, 1)

	require.NoError(t, svc.Delete(ctx, token, created.ID))
	assert.ErrorIs(t, svc.Delete(ctx, token, created.ID), domain.ErrTaskNotFound)
}

func TestService_LoginAndProfile(t *testing.T) {
	ctx := context.Background()
	svc := newService()
	register(t, svc, "ann")

	_, _, err := svc.Login(ctx, domain.Credentials{UserName: "ann", Password: "wrong"})
	assert.Equal(t, "Incorrect password", domain.ServiceMessage(err))

	_, token, err := svc.Login(ctx, domain.Credentials{UserName: "ann", Password: "secret"})
	require.NoError(t, err)

	profile, err := svc.UpdateProfile(ctx, token, domain.ProfileUpdate{UserName: "anna"})
	require.NoError(t, err)
	assert.Equal(t, "anna", profile.UserName)

	_, _, err = svc.Login(ctx, domain.Credentials{UserName: "anna", Password: "secret"})
	assert.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, token))
	_, err = svc.FetchAll(ctx, token)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestService_UpdateProfileRejectsTakenEmail(t *testing.T) {
	ctx := context.Background()
	svc := newService()
	register(t, svc, "ann")
	bob := register(t, svc, "bob")

	_, err := svc.UpdateProfile(ctx, bob, domain.ProfileUpdate{Email: "ann@example.com"})
	require.Error(t, err)
	assert.Equal(t, "Email is already registered", domain.ServiceMessage(err))
	var svcErr *domain.ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "email", svcErr.Field)

	profile, err := svc.UpdateProfile(ctx, bob, domain.ProfileUpdate{Email: "bob@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "bob@example.com", profile.Email)
}
