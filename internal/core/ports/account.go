package ports

import (
	"context"

	"taskboard/internal/core/domain"
)

// AccountService is the remote user account API.
type AccountService interface {
	Register(ctx context.Context, reg domain.Registration) (domain.Profile, domain.SessionToken, error)
	Login(ctx context.Context, creds domain.Credentials) (domain.Profile, domain.SessionToken, error)
	Logout(ctx context.Context, token domain.SessionToken) error
	UpdateProfile(ctx context.Context, token domain.SessionToken, update domain.ProfileUpdate) (domain.Profile, error)
}

type Authenticator interface {
	Register(ctx context.Context, reg domain.Registration) (domain.Profile, error)
	Login(ctx context.Context, creds domain.Credentials) (domain.Profile, error)
	Logout(ctx context.Context) error
	UpdateProfile(ctx context.Context, update domain.ProfileUpdate) (domain.Profile, error)
	Current() domain.SessionState
}
