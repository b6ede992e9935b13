package tests

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	httpadapter "taskboard/internal/adapter/http"
	"taskboard/internal/adapter/http/handlers"
	"taskboard/internal/adapter/memory"
	"taskboard/internal/adapter/restclient"
	appservice "taskboard/internal/app/service"
	"taskboard/internal/app/session"
	"taskboard/internal/app/store"
	"taskboard/internal/testutil"
	"taskboard/pkg/translator"
)

const translationFolder = "../../../../pkg/translator/translation"

// IntegrationSuiteBase runs the local API against the REST client talking to
// a fake remote backed by the in-memory service.
type IntegrationSuiteBase struct {
	suite.Suite

	Backend *memory.Service
	Remote  *httptest.Server
	Store   *store.TaskStore
	Router  *gin.Engine
	Now     time.Time
}

func (s *IntegrationSuiteBase) SetupSuite() {
	gin.SetMode(gin.TestMode)
	translator.InitTranslator(translator.Config{
		TranslationFolder:  translationFolder,
		SupportedLanguages: []string{translator.LanguageEn, translator.LanguageFr},
	})
}

func (s *IntegrationSuiteBase) SetupTest() {
	s.Now = time.Date(2026, time.March, 10, 15, 0, 0, 0, time.UTC)
	s.Backend = memory.NewService(
		memory.WithBcryptCost(bcrypt.MinCost),
		memory.WithClock(func() time.Time { return s.Now }),
	)
	s.Remote = httptest.NewServer(testutil.NewFakeAPI(s.Backend, restclient.DefaultSessionCookie))

	client := restclient.New(restclient.Config{BaseURL: s.Remote.URL, Timeout: 2 * time.Second})
	sess := session.New()
	s.Store = store.NewTaskStore()
	synchronizer := appservice.NewTaskSynchronizer(client, s.Store, sess,
		appservice.WithClock(func() time.Time { return s.Now }))
	authenticator := appservice.NewAuthenticator(client, sess)

	router, err := httpadapter.NewRouter(httpadapter.Handlers{
		Health: handlers.NewHealthHandler(client, "taskboard", "test"),
		Auth:   handlers.NewAuthHandler(authenticator, synchronizer),
		Tasks:  handlers.NewTaskHandler(synchronizer),
	}, authenticator, nil)
	s.Require().NoError(err)
	s.Router = router
}

func (s *IntegrationSuiteBase) TearDownTest() {
	if s.Remote != nil {
		s.Remote.Close()
	}
}

func (s *IntegrationSuiteBase) Do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()
	s.Router.ServeHTTP(rec, req)
	return rec
}

func (s *IntegrationSuiteBase) SignUp(username string) {
	rec := s.Do(http.MethodPost, "/api/auth/register",
		`{"username":"`+username+`","email":"`+username+`@example.com","password":"pw","password_confirm":"pw"}`)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
}
