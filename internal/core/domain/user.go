package domain

// SessionToken is the opaque credential the remote service issues on signup
// and login. It is passed explicitly on every remote call.
type SessionToken string

type Profile struct {
	UserName string
	Email    string
}

type Credentials struct {
	UserName string
	Password string
}

type Registration struct {
	UserName        string
	Email           string
	Password        string
	PasswordConfirm string
}

// ProfileUpdate holds the fields a user wants to change; empty fields are left
// untouched by the remote service.
type ProfileUpdate struct {
	UserName        string
	Email           string
	Password        string
	PasswordConfirm string
}

func (u ProfileUpdate) IsEmpty() bool {
	return u.UserName == "" && u.Email == "" && u.Password == ""
}

type SessionState struct {
	Authenticated bool
	Profile       Profile
}
