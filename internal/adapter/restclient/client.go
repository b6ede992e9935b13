// Package restclient binds the task and account ports to the remote REST API.
// The session token travels as a cookie on every request.
package restclient

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"taskboard/internal/core/domain"
	"taskboard/internal/core/ports"
)

const DefaultSessionCookie = "token"

type Config struct {
	BaseURL       string
	Timeout       time.Duration
	RetryCount    int
	RetryWait     time.Duration
	SessionCookie string
}

type Client struct {
	http          *resty.Client
	sessionCookie string
}

var (
	_ ports.TaskService    = (*Client)(nil)
	_ ports.AccountService = (*Client)(nil)
	_ ports.HealthChecker  = (*Client)(nil)
)

func New(cfg Config) *Client {
	cookie := cfg.SessionCookie
	if cookie == "" {
		cookie = DefaultSessionCookie
	}

	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json").
		SetLogger(zap.L().Sugar())
	if cfg.RetryCount > 0 {
		httpClient.SetRetryCount(cfg.RetryCount)
		if cfg.RetryWait > 0 {
			httpClient.SetRetryWaitTime(cfg.RetryWait)
		}
	}

	return &Client{http: httpClient, sessionCookie: cookie}
}

// Ping reports whether the remote API answers at all; any non-5xx response
// counts as reachable.
func (c *Client) Ping(ctx context.Context) error {
	resp, err := c.http.R().SetContext(ctx).Get("/")
	if err != nil {
		return err
	}
	if resp.StatusCode() >= http.StatusInternalServerError {
		return fmt.Errorf("remote api answered %d", resp.StatusCode())
	}
	return nil
}

func (c *Client) request(ctx context.Context, token domain.SessionToken) *resty.Request {
	req := c.http.R().
		SetContext(ctx).
		SetError(&errorPayload{})
	if token != "" {
		req.SetCookie(&http.Cookie{Name: c.sessionCookie, Value: string(token)})
	}
	return req
}

func (c *Client) sessionToken(resp *resty.Response) (domain.SessionToken, error) {
	for _, cookie := range resp.Cookies() {
		if cookie.Name == c.sessionCookie && cookie.Value != "" {
			return domain.SessionToken(cookie.Value), nil
		}
	}
	return "", &domain.ServiceError{
		StatusCode: resp.StatusCode(),
		Err:        fmt.Errorf("response carries no %q session cookie", c.sessionCookie),
	}
}

// checkResponse turns a transport error or a non-2xx answer into a
// *domain.ServiceError. notFound is what a 404 unwraps to.
func checkResponse(resp *resty.Response, err error, notFound error) error {
	if err != nil {
		return &domain.ServiceError{Err: err}
	}
	if !resp.IsError() {
		return nil
	}

	svcErr := &domain.ServiceError{StatusCode: resp.StatusCode()}
	if payload, ok := resp.Error().(*errorPayload); ok && payload != nil {
		svcErr.Field, svcErr.Message = payload.first()
	}

	switch resp.StatusCode() {
	case http.StatusUnauthorized, http.StatusForbidden:
		svcErr.Err = domain.ErrUnauthenticated
	case http.StatusNotFound:
		svcErr.Err = notFound
	}
	return svcErr
}
