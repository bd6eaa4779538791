package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"runtime"
	"time"

	"kanbanpro/internal/adapter/blob"
	dbadapter "kanbanpro/internal/adapter/db"
	httpadapter "kanbanpro/internal/adapter/http"
	"kanbanpro/internal/adapter/http/dto"
	"kanbanpro/internal/adapter/http/handlers"
	"kanbanpro/internal/app/service"
	"kanbanpro/internal/app/state"
	"kanbanpro/pkg/translator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

const (
	seedPassword = "kanban123"
	jwtSecret    = "integration-secret"
)

// IntegrationSuiteBase runs the full router over a SQLite file in a temp dir.
type IntegrationSuiteBase struct {
	suite.Suite

	Repo   *dbadapter.KVRepository
	Store  *state.Store
	Router *gin.Engine
	dbPath string
	blobs  string
}

func (s *IntegrationSuiteBase) SetupSuite() {
	gin.SetMode(gin.TestMode)
	translator.InitTranslator(translator.Config{
		TranslationFolder:  filepath.Join(projectRoot(), "pkg", "translator", "translation"),
		SupportedLanguages: []string{translator.LanguageEn, translator.LanguageRu},
	})
}

func (s *IntegrationSuiteBase) SetupTest() {
	dir := s.T().TempDir()
	s.dbPath = filepath.Join(dir, "kanban.db")
	s.blobs = filepath.Join(dir, "attachments")
	s.boot()
}

func (s *IntegrationSuiteBase) TearDownTest() {
	if s.Repo != nil {
		s.Require().NoError(s.Repo.Close())
		s.Repo = nil
	}
}

// Restart reopens the same database, as a process restart would.
func (s *IntegrationSuiteBase) Restart() {
	s.TearDownTest()
	s.boot()
}

func (s *IntegrationSuiteBase) boot() {
	ctx := context.Background()

	db, err := dbadapter.ConnectSQLite(s.dbPath)
	s.Require().NoError(err)
	repo := dbadapter.NewKVRepository(db)
	s.Require().NoError(repo.EnsureSchema(ctx))
	s.Repo = repo

	blobs, err := blob.NewFileStore(s.blobs)
	s.Require().NoError(err)

	hash, err := service.HashPassword(seedPassword)
	s.Require().NoError(err)
	store := state.NewStore(repo)
	s.Require().NoError(store.Load(ctx, state.Seed{PasswordHash: hash}))
	s.Store = store

	authService := service.NewAuthService(store, jwtSecret, time.Hour)
	userService := service.NewUserService(store)
	boardService := service.NewBoardService(store, blobs)
	taskService := service.NewTaskService(store, blobs)
	attachmentService := service.NewAttachmentService(store, blobs, time.UTC)
	analyticsService := service.NewAnalyticsService(store, time.UTC)

	router := gin.New()
	httpadapter.RegisterRoutes(router, authService, httpadapter.Handlers{
		Health:      handlers.NewHealthHandler(repo, "sqlite"),
		Auth:        handlers.NewAuthHandler(authService, userService, boardService, taskService),
		Users:       handlers.NewUserHandler(userService),
		Boards:      handlers.NewBoardHandler(boardService, taskService, analyticsService, time.UTC),
		Tasks:       handlers.NewTaskHandler(taskService, time.UTC),
		Attachments: handlers.NewAttachmentHandler(attachmentService, 1<<20),
	})
	s.Router = router
}

func (s *IntegrationSuiteBase) Login(email string) string {
	rec := s.Do(http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Email: email, Password: seedPassword})
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var session dto.SessionResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &session))
	s.Require().NotEmpty(session.Token)
	return session.Token
}

func (s *IntegrationSuiteBase) Do(method, path, token string, body any) *httptest.ResponseRecorder {
	var payload []byte
	switch value := body.(type) {
	case nil:
	case string:
		payload = []byte(value)
	default:
		var err error
		payload, err = json.Marshal(value)
		s.Require().NoError(err)
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return s.Serve(req)
}

func (s *IntegrationSuiteBase) Serve(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.Router.ServeHTTP(rec, req)
	return rec
}

func (s *IntegrationSuiteBase) Decode(rec *httptest.ResponseRecorder, dst any) {
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), dst), rec.Body.String())
}

func projectRoot() string {
	_, thisFile, _, _ := runtime.Caller(0)
	return filepath.Clean(filepath.Join(filepath.Dir(thisFile), "..", "..", "..", ".."))
}
