package restclient

import "sort"

type taskPayload struct {
	ID          string `json:"_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"dueDate"`
	Completed   bool   `json:"completed"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

type tasksEnvelope struct {
	Tasks []taskPayload `json:"tasks"`
}

type taskEnvelope struct {
	Task taskPayload `json:"task"`
}

type createTaskBody struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"dueDate"`
	Completed   bool   `json:"completed"`
}

type updateContentBody struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"dueDate"`
}

type updateStatusBody struct {
	Completed bool `json:"completed"`
}

type userPayload struct {
	UserName string `json:"username"`
	Email    string `json:"email"`
}

type userEnvelope struct {
	User userPayload `json:"user"`
}

type signupBody struct {
	UserName string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginBody struct {
	UserName string `json:"username"`
	Password string `json:"password"`
}

type profileBody struct {
	UserName string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password,omitempty"`
}

type errorPayload struct {
	Errors  map[string]string `json:"errors"`
	Message string            `json:"message"`
}

var errorFieldOrder = []string{"username", "email", "password"}

// first picks the message shown to the user: username, email and password
// errors win, then any other field in name order, then the top-level message.
func (p *errorPayload) first() (field, message string) {
	for _, name := range errorFieldOrder {
		if msg := p.Errors[name]; msg != "" {
			return name, msg
		}
	}

	others := make([]string, 0, len(p.Errors))
	for name := range p.Errors {
		others = append(others, name)
	}
	sort.Strings(others)
	for _, name := range others {
		if msg := p.Errors[name]; msg != "" {
			return name, msg
		}
	}
	return "", p.Message
}
