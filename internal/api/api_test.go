package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/qa-forum-api/internal/api"
	"github.com/qa-forum-api/internal/config"
	"github.com/qa-forum-api/internal/mocks"
	"github.com/qa-forum-api/internal/models"
	"github.com/qa-forum-api/internal/service"
	"github.com/rs/zerolog"
)

func setupTestRouter() (*gin.Engine, *mocks.MockAccountService, *mocks.MockQuestionService, *mocks.MockAnswerService, *mocks.MockTagService) {
	gin.SetMode(gin.TestMode)

	services, account, question, answer, tag := mocks.NewMockServices()

	cfg := &config.Config{
		Server: config.ServerConfig{
			Port:       "8000",
			CORSOrigin: "http://localhost:3000",
		},
		Session: config.SessionConfig{
			Secret: "test-secret",
			Name:   "qaforum_session",
		},
	}

	log := zerolog.Nop()
	router := api.NewRouter(services, cfg, log)

	return router, account, question, answer, tag
}

func postJSON(router *gin.Engine, path string, body interface{}, cookies []*http.Cookie) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest("POST", path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// login runs POST /login and returns the session cookies for follow-up
// requests
func login(t *testing.T, router *gin.Engine, email string) []*http.Cookie {
	t.Helper()
	w := postJSON(router, "/login", map[string]string{"email": email, "password": "pass"}, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Login failed with status %d", w.Code)
	}
	cookies := w.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("Login set no session cookie")
	}
	return cookies
}

func TestHealthEndpoint(t *testing.T) {
	router, _, _, _, _ := setupTestRouter()

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)

	if response["status"] != "healthy" {
		t.Errorf("Expected status 'healthy', got %v", response["status"])
	}
	if response["service"] != "qa-forum-api" {
		t.Errorf("Expected service name, got %v", response["service"])
	}
}

func TestRegister(t *testing.T) {
	router, account, _, _, _ := setupTestRouter()

	w := postJSON(router, "/register", map[string]string{
		"username": "alice", "email": "alice@test.com", "password": "s3cret99",
	}, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if w.Body.String() != `"success"` {
		t.Errorf("Expected \"success\", got %s", w.Body.String())
	}

	// duplicate email surfaces as the "email" payload
	account.RegisterFunc = func(ctx context.Context, username, email, password string) error {
		return service.ErrDuplicateEmail
	}
	w = postJSON(router, "/register", map[string]string{
		"username": "alice", "email": "alice@test.com", "password": "s3cret99",
	}, nil)
	if w.Body.String() != `"email"` {
		t.Errorf("Expected \"email\", got %s", w.Body.String())
	}
}

func TestRegisterValidation(t *testing.T) {
	router, _, _, _, _ := setupTestRouter()

	// password containing the username is rejected before the service runs
	w := postJSON(router, "/register", map[string]string{
		"username": "alice", "email": "alice@test.com", "password": "alice123",
	}, nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
}

func TestLoginOutcomes(t *testing.T) {
	router, account, _, _, _ := setupTestRouter()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "success", err: nil, want: `"success"`},
		{name: "unknown email", err: service.ErrEmailNotFound, want: `"email"`},
		{name: "wrong password", err: service.ErrPasswordMismatch, want: `"password"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			account.LoginFunc = func(ctx context.Context, email, password string) error {
				return tt.err
			}
			w := postJSON(router, "/login", map[string]string{"email": "a@test.com", "password": "p"}, nil)
			if w.Body.String() != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, w.Body.String())
			}
		})
	}
}

func TestSessionRequired(t *testing.T) {
	router, _, _, _, _ := setupTestRouter()

	w := postJSON(router, "/questions", map[string]interface{}{}, nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401 without a session, got %d", w.Code)
	}

	req := httptest.NewRequest("GET", "/userprofile", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401 without a session, got %d", rec.Code)
	}
}

func TestSessionCarriesEmail(t *testing.T) {
	router, account, _, _, _ := setupTestRouter()

	var gotEmail string
	account.GetProfileFunc = func(ctx context.Context, email string) (*models.Profile, error) {
		gotEmail = email
		return &models.Profile{Account: models.Account{Email: email}}, nil
	}

	cookies := login(t, router, "alice@test.com")

	req := httptest.NewRequest("GET", "/userprofile", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if gotEmail != "alice@test.com" {
		t.Errorf("Expected operation to act as alice@test.com, got %q", gotEmail)
	}
}

func TestAddQuestion(t *testing.T) {
	router, _, question, _, _ := setupTestRouter()
	cookies := login(t, router, "alice@test.com")

	var gotTags []string
	question.AddFunc = func(ctx context.Context, email string, q *models.Question, tagNames []string) (*models.Question, error) {
		gotTags = tagNames
		q.ID = "q1"
		return q, nil
	}

	w := postJSON(router, "/questions", map[string]interface{}{
		"question": map[string]string{"title": "A title", "summary": "sum", "text": "body"},
		"tags":     []string{"coding"},
	}, cookies)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if len(gotTags) != 1 || gotTags[0] != "coding" {
		t.Errorf("Unexpected tags: %v", gotTags)
	}

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	if response["_id"] != "q1" {
		t.Errorf("Expected _id q1, got %v", response["_id"])
	}
}

func TestAddQuestionValidation(t *testing.T) {
	router, _, question, _, _ := setupTestRouter()
	cookies := login(t, router, "alice@test.com")

	called := false
	question.AddFunc = func(ctx context.Context, email string, q *models.Question, tagNames []string) (*models.Question, error) {
		called = true
		return q, nil
	}

	// six tags is over the limit; nothing may persist
	w := postJSON(router, "/questions", map[string]interface{}{
		"question": map[string]string{"title": "A title", "summary": "sum", "text": "body"},
		"tags":     []string{"a", "b", "c", "d", "e", "f"},
	}, cookies)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
	if called {
		t.Error("Service reached despite validation failure")
	}
}

func TestVoteReputationSentinel(t *testing.T) {
	router, _, question, _, _ := setupTestRouter()
	cookies := login(t, router, "alice@test.com")

	question.VoteFunc = func(ctx context.Context, email, kind, questionID, targetID string, change int) (*models.Question, error) {
		return nil, service.ErrInsufficientReputation
	}

	w := postJSON(router, "/vote", map[string]interface{}{
		"type": "question", "id": "q1", "qid": "q1", "change": 1,
	}, cookies)

	if w.Body.String() != `"reputation"` {
		t.Errorf("Expected \"reputation\", got %s", w.Body.String())
	}
}

func TestDeleteTagInUseSentinel(t *testing.T) {
	router, _, _, _, tag := setupTestRouter()
	cookies := login(t, router, "alice@test.com")

	tag.RemoveFunc = func(ctx context.Context, email, id string) (*models.Profile, error) {
		return nil, service.ErrTagInUse
	}

	w := postJSON(router, "/deletetag", map[string]string{"id": "t1"}, cookies)
	if w.Body.String() != `"tag"` {
		t.Errorf("Expected \"tag\", got %s", w.Body.String())
	}
}

func TestViewQuestion(t *testing.T) {
	router, _, question, _, _ := setupTestRouter()

	viewed := ""
	question.ViewFunc = func(ctx context.Context, id string) (*models.Question, error) {
		viewed = id
		return &models.Question{ID: id, Views: 11}, nil
	}

	req := httptest.NewRequest("GET", "/posts/question/q42", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if viewed != "q42" {
		t.Errorf("Expected view of q42, got %q", viewed)
	}

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	if response["views"] != float64(11) {
		t.Errorf("Expected 11 views, got %v", response["views"])
	}
}

func TestGetData(t *testing.T) {
	router, _, question, answer, tag := setupTestRouter()

	question.GetAllFunc = func(ctx context.Context) ([]*models.Question, error) {
		return []*models.Question{{ID: "q1"}}, nil
	}
	tag.GetAllFunc = func(ctx context.Context) ([]*models.Tag, error) {
		return []*models.Tag{{ID: "t1", Name: "coding"}}, nil
	}
	answer.GetAllFunc = func(ctx context.Context) ([]*models.Answer, error) {
		return []*models.Answer{{ID: "a1"}}, nil
	}

	req := httptest.NewRequest("GET", "/data", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var response map[string][]map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	if len(response["questions"]) != 1 || len(response["tags"]) != 1 || len(response["answers"]) != 1 {
		t.Errorf("Unexpected payload shape: %s", w.Body.String())
	}
}

func TestDeleteAccountUsesAdminSession(t *testing.T) {
	router, account, _, _, _ := setupTestRouter()
	cookies := login(t, router, "admin@test.com")

	var gotUser, gotAdmin string
	account.RemoveAccountFunc = func(ctx context.Context, userEmail, adminEmail string) (*models.Profile, error) {
		gotUser, gotAdmin = userEmail, adminEmail
		return &models.Profile{}, nil
	}

	w := postJSON(router, "/deleteaccount", map[string]string{"email": "victim@test.com"}, cookies)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if gotUser != "victim@test.com" || gotAdmin != "admin@test.com" {
		t.Errorf("Expected (victim@test.com, admin@test.com), got (%s, %s)", gotUser, gotAdmin)
	}
}

func TestViewedProfileActsOnViewedUser(t *testing.T) {
	router, _, question, _, _ := setupTestRouter()
	cookies := login(t, router, "admin@test.com")

	// the admin opens bob's profile; the new session cookie remembers it
	w := postJSON(router, "/userprofile", map[string]string{"email": "bob@test.com"}, cookies)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if c := w.Result().Cookies(); len(c) > 0 {
		cookies = c
	}

	var gotEmail string
	question.RemoveFunc = func(ctx context.Context, email, id string) (*models.Profile, error) {
		gotEmail = email
		return &models.Profile{}, nil
	}

	w = postJSON(router, "/deletequestion", map[string]string{"id": "q1"}, cookies)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if gotEmail != "bob@test.com" {
		t.Errorf("Expected operation to act as bob@test.com, got %q", gotEmail)
	}
}

func TestOwnRoutesIgnoreViewedUser(t *testing.T) {
	router, account, question, answer, _ := setupTestRouter()
	cookies := login(t, router, "admin@test.com")

	w := postJSON(router, "/userprofile", map[string]string{"email": "bob@test.com"}, cookies)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if c := w.Result().Cookies(); len(c) > 0 {
		cookies = c
	}

	// fetching one's own profile stays the session owner's, even while a
	// viewed user is set
	var profileEmail string
	account.GetProfileFunc = func(ctx context.Context, email string) (*models.Profile, error) {
		profileEmail = email
		return &models.Profile{Account: models.Account{Email: email}}, nil
	}
	req := httptest.NewRequest("GET", "/userprofile", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}
	if profileEmail != "admin@test.com" {
		t.Errorf("GET /userprofile acted as %q, want the session owner admin@test.com", profileEmail)
	}

	// new questions are attributed to the session owner
	var questionEmail string
	question.AddFunc = func(ctx context.Context, email string, q *models.Question, tagNames []string) (*models.Question, error) {
		questionEmail = email
		return q, nil
	}
	w = postJSON(router, "/questions", map[string]interface{}{
		"question": map[string]string{"title": "A title", "summary": "sum", "text": "body"},
		"tags":     []string{"coding"},
	}, cookies)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if questionEmail != "admin@test.com" {
		t.Errorf("POST /questions acted as %q, want the session owner admin@test.com", questionEmail)
	}

	// new answers likewise
	var answerEmail string
	answer.AddFunc = func(ctx context.Context, email, questionID string, a *models.Answer) (*models.Question, error) {
		answerEmail = email
		return &models.Question{ID: questionID}, nil
	}
	w = postJSON(router, "/answers", map[string]interface{}{
		"id": "q1", "answer": map[string]string{"text": "an answer"},
	}, cookies)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if answerEmail != "admin@test.com" {
		t.Errorf("POST /answers acted as %q, want the session owner admin@test.com", answerEmail)
	}

	// operations on existing content still act as the viewed user
	var removeEmail string
	question.RemoveFunc = func(ctx context.Context, email, id string) (*models.Profile, error) {
		removeEmail = email
		return &models.Profile{}, nil
	}
	w = postJSON(router, "/deletequestion", map[string]string{"id": "q1"}, cookies)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if removeEmail != "bob@test.com" {
		t.Errorf("POST /deletequestion acted as %q, want the viewed user bob@test.com", removeEmail)
	}
}

func TestNotFoundYieldsEmptyBody(t *testing.T) {
	router, _, question, _, _ := setupTestRouter()

	question.ViewFunc = func(ctx context.Context, id string) (*models.Question, error) {
		return nil, service.ErrNotFound
	}

	req := httptest.NewRequest("GET", "/posts/question/missing", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if w.Body.Len() != 0 {
		t.Errorf("Expected empty body for a missing entity, got %s", w.Body.String())
	}
}

func TestLogoutClearsSession(t *testing.T) {
	router, _, _, _, _ := setupTestRouter()
	cookies := login(t, router, "alice@test.com")

	w := postJSON(router, "/logout", map[string]string{}, cookies)
	if w.Code != http.StatusOK {
		t.Fatalf("Logout failed with status %d", w.Code)
	}
	if c := w.Result().Cookies(); len(c) > 0 {
		cookies = c
	}

	w = postJSON(router, "/deletequestion", map[string]string{"id": "q1"}, cookies)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401 after logout, got %d", w.Code)
	}
}
