package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/martijn/feedbackd/internal/api/dto"
	"github.com/martijn/feedbackd/internal/api/middleware"
	"github.com/martijn/feedbackd/internal/core/service"
	"github.com/martijn/feedbackd/internal/infrastructure/sqlite"
	"go.uber.org/zap"
)

// testEnv holds all test dependencies
type testEnv struct {
	db     *sqlite.DB
	router *gin.Engine
}

// setupTestEnv creates a test environment with in-memory SQLite database
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := sqlite.New(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	// A second pool connection would see its own empty in-memory database
	db.SetMaxOpenConns(1)

	userRepo := sqlite.NewUserRepository(db)
	feedbackRepo := sqlite.NewFeedbackRepository(db)
	sessionRepo := sqlite.NewSessionRepository(db)

	logger := zap.NewNop()
	authService := service.NewAuthService(userRepo, logger)
	sessionService := service.NewSessionService(sessionRepo, "test-secret", "HS256", 60, logger)
	feedbackService := service.NewFeedbackService(feedbackRepo, logger)

	authHandler := NewAuthHandler(authService, sessionService, 60)
	userHandler := NewUserHandler(authService, feedbackService)
	feedbackHandler := NewFeedbackHandler(feedbackService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.SessionMiddleware(sessionService))

	router.GET("/", authHandler.Root)
	router.GET("/register", authHandler.ShowRegisterForm)
	router.POST("/register", authHandler.Register)
	router.GET("/login", authHandler.ShowLoginForm)
	router.POST("/login", authHandler.Login)
	router.GET("/logout", authHandler.Logout)
	router.GET("/users/:username", userHandler.ShowUser)
	router.POST("/users/:username/delete", userHandler.DeleteUser)
	router.GET("/users/:username/feedback/add", feedbackHandler.ShowAddForm)
	router.POST("/users/:username/feedback/add", feedbackHandler.AddFeedback)
	router.GET("/feedback/:id/update", feedbackHandler.ShowFeedback)
	router.POST("/feedback/:id/update", feedbackHandler.UpdateFeedback)
	router.POST("/feedback/:id/delete", feedbackHandler.DeleteFeedback)

	return &testEnv{
		db:     db,
		router: router,
	}
}

// cleanup closes the test database
func (env *testEnv) cleanup() {
	if env.db != nil {
		env.db.Close()
	}
}

// makeRequest performs a request with an optional JSON body and session cookie
func (env *testEnv) makeRequest(t *testing.T, method, path string, body interface{}, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

// register creates a user through the HTTP surface and returns the session cookie
func (env *testEnv) register(t *testing.T, username, password string) *http.Cookie {
	t.Helper()

	w := env.makeRequest(t, http.MethodPost, "/register", dto.RegisterRequest{
		Username: username,
		Password: password,
	}, nil)
	if w.Code != http.StatusSeeOther {
		t.Fatalf("register %s: expected status 303, got %d\nBody: %s", username, w.Code, w.Body.String())
	}

	cookie := sessionCookie(w)
	if cookie == nil {
		t.Fatalf("register %s: no session cookie set", username)
	}
	return cookie
}

// sessionCookie extracts the session cookie from a response, if any
func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.SessionCookieName && c.Value != "" {
			return c
		}
	}
	return nil
}

// parseUserResponse parses the response body into UserResponse
func parseUserResponse(t *testing.T, w *httptest.ResponseRecorder) dto.UserResponse {
	t.Helper()

	var resp dto.UserResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v\nBody: %s", err, w.Body.String())
	}
	return resp
}

// parseFeedbackResponse parses the response body into FeedbackResponse
func parseFeedbackResponse(t *testing.T, w *httptest.ResponseRecorder) dto.FeedbackResponse {
	t.Helper()

	var resp dto.FeedbackResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v\nBody: %s", err, w.Body.String())
	}
	return resp
}

// parseErrorResponse parses the response body into ErrorResponse
func parseErrorResponse(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()

	var resp dto.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse error response: %v\nBody: %s", err, w.Body.String())
	}
	return resp
}

// parseValidationErrorResponse parses the response body into ValidationErrorResponse
func parseValidationErrorResponse(t *testing.T, w *httptest.ResponseRecorder) dto.ValidationErrorResponse {
	t.Helper()

	var resp dto.ValidationErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse validation error response: %v\nBody: %s", err, w.Body.String())
	}
	return resp
}
