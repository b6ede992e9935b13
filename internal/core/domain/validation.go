package domain

import (
	"strings"
	"time"
)

// CalendarDay drops the time of day, keeping t's own year, month and day.
func CalendarDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ValidateDraft trims the text fields and checks that both are set and that
// the due date is not before the calendar day of now.
func ValidateDraft(draft TaskDraft, now time.Time) (TaskDraft, error) {
	draft.Title = strings.TrimSpace(draft.Title)
	draft.Description = strings.TrimSpace(draft.Description)

	if draft.Title == "" {
		return TaskDraft{}, &ValidationError{Field: "title", Err: ErrEmptyField}
	}
	if draft.Description == "" {
		return TaskDraft{}, &ValidationError{Field: "description", Err: ErrEmptyField}
	}
	if draft.DueDate.IsZero() {
		return TaskDraft{}, &ValidationError{Field: "dueDate", Err: ErrEmptyField}
	}
	if CalendarDay(draft.DueDate).Before(CalendarDay(now)) {
		return TaskDraft{}, &ValidationError{Field: "dueDate", Err: ErrDueDateInPast}
	}

	draft.DueDate = CalendarDay(draft.DueDate)
	return draft, nil
}

func ValidateRegistration(reg Registration) error {
	if reg.UserName == "" || reg.Email == "" || reg.Password == "" || reg.PasswordConfirm == "" {
		return &ValidationError{Err: ErrEmptyField}
	}
	if reg.Password != reg.PasswordConfirm {
		return &ValidationError{Field: "password", Err: ErrPasswordMismatch}
	}
	return nil
}

func ValidateCredentials(creds Credentials) error {
	if creds.UserName == "" || creds.Password == "" {
		return &ValidationError{Err: ErrEmptyField}
	}
	return nil
}

func ValidateProfileUpdate(update ProfileUpdate) error {
	if update.Password != "" && update.Password != update.PasswordConfirm {
		return &ValidationError{Field: "password", Err: ErrPasswordMismatch}
	}
	if update.IsEmpty() {
		return &ValidationError{Err: ErrNoProfileChanges}
	}
	return nil
}
