package service

import (
	"context"

	"go.uber.org/zap"

	"taskboard/internal/app/session"
	"taskboard/internal/core/domain"
	"taskboard/internal/core/ports"
)

const (
	OpRegister      = "register"
	OpLogin         = "login"
	OpLogout        = "logout"
	OpUpdateProfile = "update profile"
)

// Authenticator runs account operations against the remote service and keeps
// the local session in step with their outcome.
type Authenticator struct {
	accounts ports.AccountService
	session  *session.Session
}

func NewAuthenticator(accounts ports.AccountService, sess *session.Session) *Authenticator {
	return &Authenticator{accounts: accounts, session: sess}
}

var _ ports.Authenticator = (*Authenticator)(nil)

func (a *Authenticator) Current() domain.SessionState {
	return a.session.State()
}

func (a *Authenticator) Register(ctx context.Context, reg domain.Registration) (domain.Profile, error) {
	if err := domain.ValidateRegistration(reg); err != nil {
		return domain.Profile{}, domain.NewOperationError(OpRegister, domain.FailureValidation, err)
	}
	if a.session.IsAuthenticated() {
		return domain.Profile{}, domain.NewOperationError(OpRegister, domain.FailureValidation, domain.ErrAlreadyAuthenticated)
	}

	profile, token, err := a.accounts.Register(ctx, reg)
	if err != nil {
		return domain.Profile{}, domain.NewOperationError(OpRegister, domain.FailureAuth, err)
	}

	a.session.SignIn(profile, token)
	zap.L().Info("user registered", zap.String("username", profile.UserName))
	return profile, nil
}

func (a *Authenticator) Login(ctx context.Context, creds domain.Credentials) (domain.Profile, error) {
	if err := domain.ValidateCredentials(creds); err != nil {
		return domain.Profile{}, domain.NewOperationError(OpLogin, domain.FailureValidation, err)
	}
	if a.session.IsAuthenticated() {
		return domain.Profile{}, domain.NewOperationError(OpLogin, domain.FailureValidation, domain.ErrAlreadyAuthenticated)
	}

	profile, token, err := a.accounts.Login(ctx, creds)
	if err != nil {
		return domain.Profile{}, domain.NewOperationError(OpLogin, domain.FailureAuth, err)
	}

	a.session.SignIn(profile, token)
	zap.L().Info("user logged in", zap.String("username", profile.UserName))
	return profile, nil
}

// Logout always clears the local session; a remote failure is only logged.
func (a *Authenticator) Logout(ctx context.Context) error {
	token := a.session.SessionToken()
	a.session.SignOut()

	if err := a.accounts.Logout(ctx, token); err != nil {
		zap.L().Warn("remote logout failed", zap.Error(err))
	}
	return nil
}

func (a *Authenticator) UpdateProfile(ctx context.Context, update domain.ProfileUpdate) (domain.Profile, error) {
	if err := domain.ValidateProfileUpdate(update); err != nil {
		return domain.Profile{}, domain.NewOperationError(OpUpdateProfile, domain.FailureValidation, err)
	}

	profile, err := a.accounts.UpdateProfile(ctx, a.session.SessionToken(), update)
	if err != nil {
		return domain.Profile{}, domain.NewOperationError(OpUpdateProfile, domain.FailureSubmission, err)
	}

	a.session.UpdateProfile(profile)
	return a.session.Profile(), nil
}
