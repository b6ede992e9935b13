package restclient

import (
	"context"

	"taskboard/internal/core/domain"
)

func (c *Client) Register(ctx context.Context, reg domain.Registration) (domain.Profile, domain.SessionToken, error) {
	var out userEnvelope
	resp, err := c.request(ctx, "").
		SetBody(signupBody{UserName: reg.UserName, Email: reg.Email, Password: reg.Password}).
		SetResult(&out).
		Post("/signup")
	if err := checkResponse(resp, err, nil); err != nil {
		return domain.Profile{}, "", err
	}

	token, err := c.sessionToken(resp)
	if err != nil {
		return domain.Profile{}, "", err
	}
	return domain.Profile{UserName: out.User.UserName, Email: out.User.Email}, token, nil
}

func (c *Client) Login(ctx context.Context, creds domain.Credentials) (domain.Profile, domain.SessionToken, error) {
	var out userEnvelope
	resp, err := c.request(ctx, "").
		SetBody(loginBody{UserName: creds.UserName, Password: creds.Password}).
		SetResult(&out).
		Post("/login")
	if err := checkResponse(resp, err, nil); err != nil {
		return domain.Profile{}, "", err
	}

	token, err := c.sessionToken(resp)
	if err != nil {
		return domain.Profile{}, "", err
	}
	return domain.Profile{UserName: out.User.UserName, Email: out.User.Email}, token, nil
}

func (c *Client) Logout(ctx context.Context, token domain.SessionToken) error {
	resp, err := c.request(ctx, token).Get("/logout")
	return checkResponse(resp, err, nil)
}

func (c *Client) UpdateProfile(ctx context.Context, token domain.SessionToken, update domain.ProfileUpdate) (domain.Profile, error) {
	var out userPayload
	resp, err := c.request(ctx, token).
		SetBody(profileBody{UserName: update.UserName, Email: update.Email, Password: update.Password}).
		SetResult(&out).
		Patch("/user")
	if err := checkResponse(resp, err, nil); err != nil {
		return domain.Profile{}, err
	}
	return domain.Profile{UserName: out.UserName, Email: out.Email}, nil
}
