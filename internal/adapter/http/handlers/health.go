package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"taskboard/internal/adapter/http/middleware"
	"taskboard/internal/core/ports"
)

const (
	StatusOk          = "ok"
	StatusDown        = "down"
	healthPingTimeout = 2 * time.Second
)

type HealthBasic struct {
	AppName           string `json:"app_name"`
	AppVersion        string `json:"app_version"`
	CurrentSystemTime string `json:"current_system_time"`
	Message           string `json:"message"`
}

type HealthServices struct {
	TaskAPI string `json:"task_api"`
}

type HealthAdvanced struct {
	AppName           string         `json:"app_name"`
	AppVersion        string         `json:"app_version"`
	CurrentSystemTime string         `json:"current_system_time"`
	Language          string         `json:"language"`
	Status            HealthServices `json:"status"`
}

type HealthHandler struct {
	remote     ports.HealthChecker
	appName    string
	appVersion string
}

func NewHealthHandler(remote ports.HealthChecker, appName, appVersion string) *HealthHandler {
	if appVersion == "" {
		appVersion = "dev"
	}
	return &HealthHandler{remote: remote, appName: appName, appVersion: appVersion}
}

// CheckHealth is liveness only; an unreachable task API does not fail it.
func (h *HealthHandler) CheckHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthBasic{
		AppName:           h.appName,
		AppVersion:        h.appVersion,
		CurrentSystemTime: time.Now().Format("2006-01-02 15:04:05"),
		Message:           StatusOk,
	})
}

func (h *HealthHandler) CheckHealthReport(c *gin.Context) {
	taskAPIStatus := StatusDown
	if h.pingRemote(c.Request.Context()) {
		taskAPIStatus = StatusOk
	}

	c.JSON(http.StatusOK, HealthAdvanced{
		AppName:           h.appName,
		AppVersion:        h.appVersion,
		CurrentSystemTime: time.Now().Format("2006-01-02 15:04:05"),
		Language:          middleware.GetLang(c),
		Status: HealthServices{
			TaskAPI: taskAPIStatus,
		},
	})
}

func (h *HealthHandler) pingRemote(ctx context.Context) bool {
	if h.remote == nil {
		return false
	}
	timeoutCtx, cancel := context.WithTimeout(ctx, healthPingTimeout)
	defer cancel()
	return h.remote.Ping(timeoutCtx) == nil
}
