package restclient

import (
	"context"

	"taskboard/internal/core/domain"
)

func (c *Client) FetchAll(ctx context.Context, token domain.SessionToken) ([]domain.Task, error) {
	return c.fetch(ctx, token, "/tasks")
}

func (c *Client) FetchByStatus(ctx context.Context, token domain.SessionToken, completed bool) ([]domain.Task, error) {
	if completed {
		return c.fetch(ctx, token, "/tasks/completed")
	}
	return c.fetch(ctx, token, "/tasks/incompleted")
}

func (c *Client) fetch(ctx context.Context, token domain.SessionToken, path string) ([]domain.Task, error) {
	var out tasksEnvelope
	resp, err := c.request(ctx, token).SetResult(&out).Get(path)
	if err := checkResponse(resp, err, domain.ErrTaskNotFound); err != nil {
		return nil, err
	}
	return toDomainTasks(out.Tasks)
}

func (c *Client) Create(ctx context.Context, token domain.SessionToken, draft domain.TaskDraft) (domain.Task, error) {
	var out taskEnvelope
	resp, err := c.request(ctx, token).
		SetBody(createTaskBody{
			Title:       draft.Title,
			Description: draft.Description,
			DueDate:     formatDate(draft.DueDate),
		}).
		SetResult(&out).
		Post("/task")
	if err := checkResponse(resp, err, domain.ErrTaskNotFound); err != nil {
		return domain.Task{}, err
	}
	return toDomainTask(out.Task)
}

func (c *Client) UpdateContent(ctx context.Context, token domain.SessionToken, id string, draft domain.TaskDraft) (domain.Task, error) {
	var out taskEnvelope
	resp, err := c.request(ctx, token).
		SetPathParam("id", id).
		SetBody(updateContentBody{
			Title:       draft.Title,
			Description: draft.Description,
			DueDate:     formatDate(draft.DueDate),
		}).
		SetResult(&out).
		Put("/updatecontent/{id}")
	if err := checkResponse(resp, err, domain.ErrTaskNotFound); err != nil {
		return domain.Task{}, err
	}
	return toDomainTask(out.Task)
}

func (c *Client) UpdateStatus(ctx context.Context, token domain.SessionToken, id string, completed bool) (domain.Task, error) {
	var out taskEnvelope
	resp, err := c.request(ctx, token).
		SetPathParam("id", id).
		SetBody(updateStatusBody{Completed: completed}).
		SetResult(&out).
		Put("/updatestatus/{id}")
	if err := checkResponse(resp, err, domain.ErrTaskNotFound); err != nil {
		return domain.Task{}, err
	}
	return toDomainTask(out.Task)
}

func (c *Client) Delete(ctx context.Context, token domain.SessionToken, id string) error {
	resp, err := c.request(ctx, token).
		SetPathParam("id", id).
		Delete("/task/{id}")
	return checkResponse(resp, err, domain.ErrTaskNotFound)
}
