package restclient_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"taskboard/internal/adapter/memory"
	"taskboard/internal/adapter/restclient"
	"taskboard/internal/core/domain"
	"taskboard/internal/testutil"
)

var fixedNow = time.Date(2026, time.March, 10, 15, 0, 0, 0, time.UTC)

func newClient(t *testing.T) (*restclient.Client, domain.SessionToken) {
	t.Helper()
	backend := memory.NewService(
		memory.WithBcryptCost(bcrypt.MinCost),
		memory.WithClock(func() time.Time { return fixedNow }),
	)
	srv := testutil.StartFakeAPI(t, backend, "sid")

	client := restclient.New(restclient.Config{
		BaseURL:       srv.URL + "/",
		Timeout:       2 * time.Second,
		SessionCookie: "sid",
	})
	profile, token, err := client.Register(context.Background(), domain.Registration{
		UserName: "ann",
		Email:    "ann@example.com",
		Password: "secret",
	})
	require.NoError(t, err)
	require.Equal(t, "ann", profile.UserName)
	require.NotEmpty(t, token)
	return client, token
}

func draft(title string, due time.Time) domain.TaskDraft {
	return domain.TaskDraft{Title: title, Description: title + " details", DueDate: due}
}

func TestClient_TaskLifecycle(t *testing.T) {
	client, token := newClient(t)
	ctx := context.Background()
	due := time.Date(2026, time.March, 12, 0, 0, 0, 0, time.UTC)

	created, err := client.Create(ctx, token, draft("write report", due))
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "write report", created.Title)
	assert.True(t, created.DueDate.Equal(due))
	assert.False(t, created.Completed)
	assert.True(t, created.CreatedAt.Equal(fixedNow))

	other, err := client.Create(ctx, token, draft("buy milk", due))
	require.NoError(t, err)

	all, err := client.FetchAll(ctx, token)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	done, err := client.UpdateStatus(ctx, token, other.ID, true)
	require.NoError(t, err)
	assert.True(t, done.Completed)

	completed, err := client.FetchByStatus(ctx, token, true)
	require.NoError(t, err)
	require.Len(t, completed, 1)
	assert.Equal(t, other.ID, completed[0].ID)

	incomplete, err := client.FetchByStatus(ctx, token, false)
	require.NoError(t, err)
	require.Len(t, incomplete, 1)
	assert.Equal(t, created.ID, incomplete[0].ID)

	edited, err := client.UpdateContent(ctx, token, created.ID, draft("write final report", due.AddDate(0, 0, 1)))
	require.NoError(t, err)
	assert.Equal(t, "write final report", edited.Title)
	assert.True(t, edited.DueDate.Equal(due.AddDate(0, 0, 1)))

	require.NoError(t, client.Delete(ctx, token, created.ID))
	all, err = client.FetchAll(ctx, token)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, other.ID, all[0].ID)
}

func TestClient_NotFoundMapsToTaskNotFound(t *testing.T) {
	client, token := newClient(t)

	err := client.Delete(context.Background(), token, "missing")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrTaskNotFound))
	var svcErr *domain.ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, http.StatusNotFound, svcErr.StatusCode)
}

func TestClient_UnknownTokenIsUnauthenticated(t *testing.T) {
	client, _ := newClient(t)

	_, err := client.FetchAll(context.Background(), "forged")

	assert.True(t, errors.Is(err, domain.ErrUnauthenticated))
}

func TestClient_FieldErrorsCarryMessage(t *testing.T) {
	client, _ := newClient(t)
	ctx := context.Background()

	_, _, err := client.Register(ctx, domain.Registration{UserName: "ann", Email: "other@example.com", Password: "pw"})
	var svcErr *domain.ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "username", svcErr.Field)
	assert.Equal(t, "Username is already taken", svcErr.Message)

	_, _, err = client.Login(ctx, domain.Credentials{UserName: "ann", Password: "wrong"})
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "password", svcErr.Field)
	assert.Equal(t, "Incorrect password", domain.ServiceMessage(err))
}

func TestClient_LoginLogoutAndProfile(t *testing.T) {
	client, first := newClient(t)
	ctx := context.Background()

	profile, second, err := client.Login(ctx, domain.Credentials{UserName: "ann", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "ann@example.com", profile.Email)
	assert.NotEqual(t, first, second)

	updated, err := client.UpdateProfile(ctx, second, domain.ProfileUpdate{Email: "ann@new.example.com"})
	require.NoError(t, err)
	assert.Equal(t, "ann", updated.UserName)
	assert.Equal(t, "ann@new.example.com", updated.Email)

	require.NoError(t, client.Logout(ctx, second))
	_, err = client.FetchAll(ctx, second)
	assert.True(t, errors.Is(err, domain.ErrUnauthenticated))

	_, err = client.FetchAll(ctx, first)
	assert.NoError(t, err)
}

func TestClient_Ping(t *testing.T) {
	client, _ := newClient(t)
	assert.NoError(t, client.Ping(context.Background()))

	down := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer down.Close()
	assert.Error(t, restclient.New(restclient.Config{BaseURL: down.URL}).Ping(context.Background()))
}

func TestClient_DecodesRemotePayloads(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/tasks":
			_, _ = w.Write([]byte(`{"tasks":[
				{"_id":"a1","title":"t","description":"d","dueDate":"2026-04-01","completed":false},
				{"_id":"b2","title":"u","description":"e","dueDate":"2026-04-02T18:30:00.000Z","completed":true,
				 "createdAt":"2026-03-01T10:00:00.000Z","updatedAt":"2026-03-02T10:00:00Z"}
			]}`))
		case "/login":
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"errors":{"zeta":"z","password":"bad password","email":""}}`))
		case "/signup":
			_, _ = w.Write([]byte(`{"user":{"username":"ann","email":"a@b.c"}}`))
		default:
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte(`{"message":"forbidden"}`))
		}
	}))
	defer srv.Close()
	client := restclient.New(restclient.Config{BaseURL: srv.URL})
	ctx := context.Background()

	tasks, err := client.FetchAll(ctx, "tok")
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.True(t, tasks[0].DueDate.Equal(time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, tasks[0].CreatedAt.IsZero())
	assert.True(t, tasks[1].DueDate.Equal(time.Date(2026, time.April, 2, 0, 0, 0, 0, time.UTC)))
	assert.True(t, tasks[1].Completed)
	assert.True(t, tasks[1].UpdatedAt.Equal(time.Date(2026, time.March, 2, 10, 0, 0, 0, time.UTC)))

	_, _, err = client.Login(ctx, domain.Credentials{UserName: "ann", Password: "x"})
	var svcErr *domain.ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "password", svcErr.Field)
	assert.Equal(t, "bad password", svcErr.Message)

	_, _, err = client.Register(ctx, domain.Registration{UserName: "ann", Email: "a@b.c", Password: "x"})
	require.Error(t, err, "signup without a session cookie must fail")

	_, err = client.FetchByStatus(ctx, "tok", true)
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "forbidden", svcErr.Message)
	assert.True(t, errors.Is(err, domain.ErrUnauthenticated))
}
