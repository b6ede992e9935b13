// Package testutil serves the remote task API over the in-memory backend so
// the REST client and the CLI can be exercised end to end.
package testutil

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"taskboard/internal/adapter/memory"
	"taskboard/internal/core/domain"
)

const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

type FakeAPI struct {
	backend    *memory.Service
	cookieName string
}

// NewFakeAPI mounts the remote routes on a fresh gin engine.
func NewFakeAPI(backend *memory.Service, cookieName string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	api := &FakeAPI{backend: backend, cookieName: cookieName}
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	r.POST("/signup", api.signup)
	r.POST("/login", api.login)
	r.GET("/logout", api.logout)
	r.PATCH("/user", api.updateUser)
	r.GET("/tasks", api.listAll)
	r.GET("/tasks/completed", api.listByStatus(true))
	r.GET("/tasks/incompleted", api.listByStatus(false))
	r.POST("/task", api.createTask)
	r.PUT("/updatecontent/:id", api.updateContent)
	r.PUT("/updatestatus/:id", api.updateStatus)
	r.DELETE("/task/:id", api.deleteTask)
	return r
}

// StartFakeAPI runs the fake on an httptest server closed with the test.
func StartFakeAPI(t testing.TB, backend *memory.Service, cookieName string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(NewFakeAPI(backend, cookieName))
	t.Cleanup(srv.Close)
	return srv
}

type accountBody struct {
	UserName string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type taskBody struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"dueDate"`
	Completed   bool   `json:"completed"`
}

type statusBody struct {
	Completed bool `json:"completed"`
}

func (a *FakeAPI) signup(c *gin.Context) {
	var body accountBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid payload"})
		return
	}
	profile, token, err := a.backend.Register(c.Request.Context(), domain.Registration{
		UserName:        body.UserName,
		Email:           body.Email,
		Password:        body.Password,
		PasswordConfirm: body.Password,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.SetCookie(a.cookieName, string(token), 3600, "/", "", false, true)
	c.JSON(http.StatusCreated, gin.H{"user": userJSON(profile)})
}

func (a *FakeAPI) login(c *gin.Context) {
	var body accountBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid payload"})
		return
	}
	profile, token, err := a.backend.Login(c.Request.Context(), domain.Credentials{
		UserName: body.UserName,
		Password: body.Password,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.SetCookie(a.cookieName, string(token), 3600, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"user": userJSON(profile)})
}

func (a *FakeAPI) logout(c *gin.Context) {
	if err := a.backend.Logout(c.Request.Context(), a.token(c)); err != nil {
		writeError(c, err)
		return
	}
	c.SetCookie(a.cookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

func (a *FakeAPI) updateUser(c *gin.Context) {
	var body accountBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid payload"})
		return
	}
	profile, err := a.backend.UpdateProfile(c.Request.Context(), a.token(c), domain.ProfileUpdate{
		UserName:        body.UserName,
		Email:           body.Email,
		Password:        body.Password,
		PasswordConfirm: body.Password,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, userJSON(profile))
}

func (a *FakeAPI) listAll(c *gin.Context) {
	tasks, err := a.backend.FetchAll(c.Request.Context(), a.token(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tasks": tasksJSON(tasks)})
}

func (a *FakeAPI) listByStatus(completed bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		tasks, err := a.backend.FetchByStatus(c.Request.Context(), a.token(c), completed)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"tasks": tasksJSON(tasks)})
	}
}

func (a *FakeAPI) createTask(c *gin.Context) {
	draft, ok := bindDraft(c)
	if !ok {
		return
	}
	task, err := a.backend.Create(c.Request.Context(), a.token(c), draft)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"task": taskJSON(task)})
}

func (a *FakeAPI) updateContent(c *gin.Context) {
	draft, ok := bindDraft(c)
	if !ok {
		return
	}
	task, err := a.backend.UpdateContent(c.Request.Context(), a.token(c), c.Param("id"), draft)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"task": taskJSON(task)})
}

func (a *FakeAPI) updateStatus(c *gin.Context) {
	var body statusBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid payload"})
		return
	}
	task, err := a.backend.UpdateStatus(c.Request.Context(), a.token(c), c.Param("id"), body.Completed)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"task": taskJSON(task)})
}

func (a *FakeAPI) deleteTask(c *gin.Context) {
	if err := a.backend.Delete(c.Request.Context(), a.token(c), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "task deleted"})
}

func (a *FakeAPI) token(c *gin.Context) domain.SessionToken {
	value, err := c.Cookie(a.cookieName)
	if err != nil {
		return ""
	}
	return domain.SessionToken(value)
}

func bindDraft(c *gin.Context) (domain.TaskDraft, bool) {
	var body taskBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid payload"})
		return domain.TaskDraft{}, false
	}
	due, err := time.Parse("2006-01-02", body.DueDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"dueDate": "Invalid due date"}})
		return domain.TaskDraft{}, false
	}
	return domain.TaskDraft{Title: body.Title, Description: body.Description, DueDate: due}, true
}

func writeError(c *gin.Context, err error) {
	var svcErr *domain.ServiceError
	if !errors.As(err, &svcErr) || svcErr.StatusCode == 0 {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	if svcErr.Field != "" {
		c.JSON(svcErr.StatusCode, gin.H{"errors": gin.H{svcErr.Field: svcErr.Message}})
		return
	}
	message := svcErr.Message
	if message == "" && svcErr.Err != nil {
		message = svcErr.Err.Error()
	}
	c.JSON(svcErr.StatusCode, gin.H{"message": message})
}

func userJSON(profile domain.Profile) gin.H {
	return gin.H{"username": profile.UserName, "email": profile.Email}
}

func tasksJSON(tasks []domain.Task) []gin.H {
	out := make([]gin.H, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, taskJSON(task))
	}
	return out
}

func taskJSON(task domain.Task) gin.H {
	return gin.H{
		"_id":         task.ID,
		"title":       task.Title,
		"description": task.Description,
		"dueDate":     task.DueDate.UTC().Format(timestampLayout),
		"completed":   task.Completed,
		"createdAt":   task.CreatedAt.UTC().Format(timestampLayout),
		"updatedAt":   task.UpdatedAt.UTC().Format(timestampLayout),
	}
}
