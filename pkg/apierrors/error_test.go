package apierrors_test

import (
	"os"
	"testing"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"taskboard/pkg/apierrors"
	"taskboard/pkg/translator"
)

func TestMain(m *testing.M) {
	translator.Translator = i18n.NewBundle(language.English)
	if err := translator.Translator.AddMessages(language.English, &i18n.Message{
		ID:    apierrors.MsgTaskNotFound,
		Other: "Task not found.",
	}); err != nil {
		os.Exit(1)
	}
	if err := translator.Translator.AddMessages(language.French, &i18n.Message{
		ID:    apierrors.MsgTaskNotFound,
		Other: "Tâche introuvable.",
	}); err != nil {
		os.Exit(1)
	}
	os.Exit(m.Run())
}

func TestCreateError_ReturnsJsonErr(t *testing.T) {
	err := apierrors.CreateError(404, apierrors.MsgTaskNotFound, "en")
	assert.Equal(t, 404, err.ErrDetails.Code)
	assert.Equal(t, "Task not found.", err.ErrDetails.Message)
	assert.Empty(t, err.ErrDetails.Field)
}

func TestGetTransErrorMsg_UsesRequestedLanguage(t *testing.T) {
	assert.Equal(t, "Tâche introuvable.", apierrors.GetTransErrorMsg(apierrors.MsgTaskNotFound, "fr"))
}

func TestGetTransErrorMsg_FallsBackToEnglish(t *testing.T) {
	assert.Equal(t, "Task not found.", apierrors.GetTransErrorMsg(apierrors.MsgTaskNotFound, "de"))
}

func TestGetTransErrorMsg_FallbackToKey(t *testing.T) {
	assert.Equal(t, "unknown_key", apierrors.GetTransErrorMsg("unknown_key", "en"))
}

func TestCreateFieldError_KeepsField(t *testing.T) {
	err := apierrors.CreateFieldError(400, "title", apierrors.MsgTaskNotFound, "en")
	assert.Equal(t, "title", err.ErrDetails.Field)
	assert.Equal(t, "Task not found.", err.ErrDetails.Message)
}

func TestCreateRawError_IsNotTranslated(t *testing.T) {
	err := apierrors.CreateRawError(400, "username", "Username is already taken")
	assert.Equal(t, "Username is already taken", err.ErrDetails.Message)
	assert.Equal(t, "Code: 400, Message: Username is already taken", err.Error())
}
