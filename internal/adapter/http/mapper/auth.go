package mapper

import (
	"taskboard/internal/adapter/http/dto"
	"taskboard/internal/core/domain"
)

func ToProfile(profile domain.Profile) dto.Profile {
	return dto.Profile{Username: profile.UserName, Email: profile.Email}
}

func ToSession(state domain.SessionState) dto.Session {
	out := dto.Session{Authenticated: state.Authenticated}
	if state.Authenticated {
		profile := ToProfile(state.Profile)
		out.Profile = &profile
	}
	return out
}

func ToRegistration(req dto.RegisterRequest) domain.Registration {
	return domain.Registration{
		UserName:        req.Username,
		Email:           req.Email,
		Password:        req.Password,
		PasswordConfirm: req.PasswordConfirm,
	}
}

func ToCredentials(req dto.LoginRequest) domain.Credentials {
	return domain.Credentials{UserName: req.Username, Password: req.Password}
}

func ToProfileUpdate(req dto.ProfileRequest) domain.ProfileUpdate {
	return domain.ProfileUpdate{
		UserName:        req.Username,
		Email:           req.Email,
		Password:        req.Password,
		PasswordConfirm: req.PasswordConfirm,
	}
}
