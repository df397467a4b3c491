package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/example/authsrv/internal/config"
	"github.com/example/authsrv/internal/middleware"
	"github.com/example/authsrv/internal/models"
	"github.com/example/authsrv/internal/routes"
	"github.com/example/authsrv/internal/store"
)

// memStore is an in-memory UserStore for handler tests.
type memStore struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]models.User
}

func newMemStore() *memStore {
	return &memStore{users: make(map[primitive.ObjectID]models.User)}
}

func (s *memStore) Create(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	s.users[user.ID] = *user
	return nil
}

func (s *memStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			copied := u
			return &copied, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *memStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, found := s.users[id]
	if !found {
		return nil, store.ErrNotFound
	}
	copied := u
	return &copied, nil
}

func (s *memStore) Update(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, found := s.users[user.ID]; !found {
		return store.ErrNotFound
	}
	s.users[user.ID] = *user
	return nil
}

// mustByEmail reads a user directly from the store, bypassing the API.
func (s *memStore) mustByEmail(t *testing.T, email string) models.User {
	t.Helper()
	u, err := s.FindByEmail(context.Background(), email)
	require.NoError(t, err)
	return *u
}

// put writes user state directly into the store, bypassing the API.
func (s *memStore) put(u models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.ID] = u
}

type sentMail struct {
	To      string
	Subject string
	Body    string
}

// recordingMailer captures sent mail; when failWith is set every send errors.
type recordingMailer struct {
	mu       sync.Mutex
	sent     []sentMail
	failWith error
}

func (m *recordingMailer) Send(to, subject, htmlBody string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return m.failWith
	}
	m.sent = append(m.sent, sentMail{To: to, Subject: subject, Body: htmlBody})
	return nil
}

func (m *recordingMailer) last(t *testing.T) sentMail {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	require.NotEmpty(t, m.sent)
	return m.sent[len(m.sent)-1]
}

func testConfig() *config.Config {
	return &config.Config{
		AppPort:      "0",
		Environment:  "test",
		JWTSecret:    "unit-test-secret",
		TokenExpires: 7 * 24 * time.Hour,
	}
}

func newTestApp(t *testing.T) (*fiber.App, *memStore, *recordingMailer, *config.Config) {
	t.Helper()
	cfg := testConfig()
	users := newMemStore()
	mailer := &recordingMailer{}

	app := fiber.New()
	routes.Register(app, users, mailer, cfg)
	return app, users, mailer, cfg
}

type apiResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// doRequest runs one request through the app and decodes the uniform body.
func doRequest(t *testing.T, app *fiber.App, method, path string, body any, cookie string) (*http.Response, apiResponse) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: cookie})
	}

	resp, err := app.Test(req, 5000)
	require.NoError(t, err)

	var parsed apiResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	require.NoError(t, resp.Body.Close())
	return resp, parsed
}

// sessionCookie pulls the session token out of a response, "" when absent.
func sessionCookie(resp *http.Response) string {
	for _, c := range resp.Cookies() {
		if c.Name == middleware.SessionCookieName {
			return c.Value
		}
	}
	return ""
}

// register creates an account through the API and returns the session token.
func register(t *testing.T, app *fiber.App, name, email, password string) string {
	t.Helper()
	resp, body := doRequest(t, app, fiber.MethodPost, "/api/auth/register", fiber.Map{
		"name":     name,
		"email":    email,
		"password": password,
	}, "")
	require.True(t, body.Success, "register failed: %s", body.Message)
	token := sessionCookie(resp)
	require.NotEmpty(t, token)
	return token
}
