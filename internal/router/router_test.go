package router

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/time/rate"

	"booktracker-be/internal/config"
	"booktracker-be/internal/database"
	"booktracker-be/internal/jwt"
	"booktracker-be/internal/metrics"
	"booktracker-be/internal/middleware"
	"booktracker-be/internal/models"
	"booktracker-be/internal/repository"
	"booktracker-be/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig() *config.Config {
	return &config.Config{
		AllowedOrigin: "http://localhost:3000",
		FrontendURL:   "http://localhost:3000",
		CookieSecure:  true,
	}
}

type testServer struct {
	router *gin.Engine
	books  service.BookService
}

func newTestServer(t *testing.T, secret string, customize func(*Dependencies)) *testServer {
	t.Helper()

	db, err := database.NewConnection(database.DriverSQLite, filepath.Join(t.TempDir(), "books.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.RunMigrations(db, database.DriverSQLite))

	log := logrus.New()
	log.SetOutput(io.Discard)

	jwtService := jwt.NewJWTService(secret, 30*24*time.Hour)
	bookService := service.NewBookService(
		repository.NewBookRepository(db),
		repository.NewUserBookRepository(db),
		nil,
		time.Minute,
		log,
	)

	deps := Dependencies{
		Config:      testConfig(),
		Logger:      log,
		JWTService:  jwtService,
		AuthService: service.NewAuthService(repository.NewUserRepository(db), jwtService, service.WithHashCost(bcrypt.MinCost)),
		BookService: bookService,
	}
	if customize != nil {
		customize(&deps)
	}

	router, err := New(deps)
	require.NoError(t, err)
	return &testServer{router: router, books: bookService}
}

type request struct {
	method string
	path   string
	body   interface{}
	token  string
	cookie *http.Cookie
}

func (s *testServer) do(t *testing.T, r request) *httptest.ResponseRecorder {
	t.Helper()

	var body io.Reader
	if r.body != nil {
		payload, err := json.Marshal(r.body)
		require.NoError(t, err)
		body = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(r.method, r.path, body)
	if r.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if r.token != "" {
		req.Header.Set("Authorization", "Bearer "+r.token)
	}
	if r.cookie != nil {
		req.AddCookie(r.cookie)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), dest), w.Body.String())
}

func message(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
	}
	decode(t, w, &body)
	return body.Message
}

// signup registers and logs in a user, returning its id and token
func (s *testServer) signup(t *testing.T, username, email string) (string, string) {
	t.Helper()

	w := s.do(t, request{method: http.MethodPost, path: "/api/auth/register", body: gin.H{
		"username": username, "email": email, "password": "secret1",
	}})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = s.do(t, request{method: http.MethodPost, path: "/api/auth/login", body: gin.H{
		"email": email, "password": "secret1",
	}})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var login models.LoginResponse
	decode(t, w, &login)
	return login.UserID, login.Token
}

type bookEnvelope struct {
	Message string `json:"message"`
	Book    struct {
		ID       string `json:"id"`
		User     string `json:"user"`
		Title    string `json:"title"`
		Author   string `json:"author"`
		Status   string `json:"status"`
		IsPublic bool   `json:"isPublic"`
	} `json:"book"`
}

func TestRouter_Banner(t *testing.T) {
	s := newTestServer(t, "secret", nil)

	w := s.do(t, request{method: http.MethodGet, path: "/"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, Banner, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
}

func TestRouter_Health(t *testing.T) {
	s := newTestServer(t, "secret", nil)

	w := s.do(t, request{method: http.MethodGet, path: "/health"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestRouter_NoRoute(t *testing.T) {
	s := newTestServer(t, "secret", nil)

	for _, path := range []string{"/api/unknown", "/api/books/a/b/c"} {
		w := s.do(t, request{method: http.MethodGet, path: path})
		assert.Equal(t, http.StatusNotFound, w.Code, path)
		assert.Equal(t, "API route not found", message(t, w))
	}
}

func TestRouter_Register(t *testing.T) {
	s := newTestServer(t, "secret", nil)

	w := s.do(t, request{method: http.MethodPost, path: "/api/auth/register", body: gin.H{
		"username": "ann", "email": "ann@example.com", "password": "secret1",
	}})
	require.Equal(t, http.StatusCreated, w.Code)

	var user map[string]interface{}
	decode(t, w, &user)
	assert.NotEmpty(t, user["id"])
	assert.Equal(t, "ann", user["username"])
	assert.Equal(t, "ann@example.com", user["email"])
	assert.NotContains(t, user, "password")
	assert.NotContains(t, user, "passwordHash")

	w = s.do(t, request{method: http.MethodPost, path: "/api/auth/register", body: gin.H{
		"username": "ann2", "email": "ann@example.com", "password": "secret2",
	}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "User already exists", message(t, w))
}

func TestRouter_Register_InvalidBody(t *testing.T) {
	s := newTestServer(t, "secret", nil)

	tests := []struct {
		name string
		body gin.H
		want string
	}{
		{name: "missing username", body: gin.H{"email": "ann@example.com", "password": "secret1"}, want: "username is required"},
		{name: "bad email", body: gin.H{"username": "ann", "email": "nope", "password": "secret1"}, want: "email must be a valid email"},
		{name: "short password", body: gin.H{"username": "ann", "email": "ann@example.com", "password": "123"}, want: "password must be at least 6 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := s.do(t, request{method: http.MethodPost, path: "/api/auth/register", body: tt.body})
			require.Equal(t, http.StatusBadRequest, w.Code)

			var body struct {
				Message string   `json:"message"`
				Errors  []string `json:"errors"`
			}
			decode(t, w, &body)
			assert.Equal(t, "Invalid request body", body.Message)
			assert.Contains(t, body.Errors, tt.want)
		})
	}
}

func TestRouter_Login(t *testing.T) {
	s := newTestServer(t, "secret", nil)
	s.do(t, request{method: http.MethodPost, path: "/api/auth/register", body: gin.H{
		"username": "ann", "email": "ann@example.com", "password": "secret1",
	}})

	w := s.do(t, request{method: http.MethodPost, path: "/api/auth/login", body: gin.H{
		"email": "ann@example.com", "password": "secret1",
	}})
	require.Equal(t, http.StatusOK, w.Code)

	var login models.LoginResponse
	decode(t, w, &login)
	assert.Equal(t, "Login successful", login.Message)
	assert.NotEmpty(t, login.UserID)
	assert.NotEmpty(t, login.Token)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	cookie := cookies[0]
	assert.Equal(t, middleware.TokenCookieName, cookie.Name)
	assert.Equal(t, login.Token, cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteNoneMode, cookie.SameSite)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, 30*24*60*60, cookie.MaxAge)
}

func TestRouter_Login_InvalidCredentials(t *testing.T) {
	s := newTestServer(t, "secret", nil)
	s.do(t, request{method: http.MethodPost, path: "/api/auth/register", body: gin.H{
		"username": "ann", "email": "ann@example.com", "password": "secret1",
	}})

	for _, body := range []gin.H{
		{"email": "ann@example.com", "password": "wrong-password"},
		{"email": "nobody@example.com", "password": "secret1"},
	} {
		w := s.do(t, request{method: http.MethodPost, path: "/api/auth/login", body: body})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Invalid email or password", message(t, w))
		assert.Empty(t, w.Result().Cookies())
	}
}

func TestRouter_Logout(t *testing.T) {
	s := newTestServer(t, "secret", nil)

	// Idempotent, no session required
	for i := 0; i < 2; i++ {
		w := s.do(t, request{method: http.MethodPost, path: "/api/auth/logout"})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Logged out successfully", message(t, w))

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, middleware.TokenCookieName, cookies[0].Name)
		assert.Empty(t, cookies[0].Value)
		assert.Negative(t, cookies[0].MaxAge)
	}
}

func TestRouter_LogoutKeepsBearerTokenValid(t *testing.T) {
	s := newTestServer(t, "secret", nil)
	_, token := s.signup(t, "ann", "ann@example.com")

	w := s.do(t, request{method: http.MethodPost, path: "/api/auth/logout", token: token})
	require.Equal(t, http.StatusOK, w.Code)

	// Logout only clears the cookie; tokens are stateless until they expire
	w = s.do(t, request{method: http.MethodGet, path: "/api/books/my", token: token})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestRouter_PasswordTooLong(t *testing.T) {
	s := newTestServer(t, "secret", nil)
	_, token := s.signup(t, "ann", "ann@example.com")

	longASCII := strings.Repeat("p", 80)
	longMultiByte := strings.Repeat("é", 40)

	t.Run("register", func(t *testing.T) {
		w := s.do(t, request{method: http.MethodPost, path: "/api/auth/register", body: gin.H{
			"username": "bob", "email": "bob@example.com", "password": longASCII,
		}})
		require.Equal(t, http.StatusBadRequest, w.Code)

		var body struct {
			Message string   `json:"message"`
			Errors  []string `json:"errors"`
		}
		decode(t, w, &body)
		assert.Equal(t, "Invalid request body", body.Message)
		assert.Contains(t, body.Errors, "password must be at most 72 characters")
	})

	t.Run("register multi-byte", func(t *testing.T) {
		w := s.do(t, request{method: http.MethodPost, path: "/api/auth/register", body: gin.H{
			"username": "bob", "email": "bob@example.com", "password": longMultiByte,
		}})
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Password must be at most 72 bytes", message(t, w))
	})

	t.Run("update profile", func(t *testing.T) {
		w := s.do(t, request{method: http.MethodPatch, path: "/api/auth/profile", token: token, body: gin.H{
			"password": longASCII,
		}})
		require.Equal(t, http.StatusBadRequest, w.Code)

		var body struct {
			Message string   `json:"message"`
			Errors  []string `json:"errors"`
		}
		decode(t, w, &body)
		assert.Equal(t, "Invalid request body", body.Message)
		assert.Contains(t, body.Errors, "password must be at most 72 characters")
	})

	t.Run("update profile multi-byte", func(t *testing.T) {
		w := s.do(t, request{method: http.MethodPatch, path: "/api/auth/profile", token: token, body: gin.H{
			"password": longMultiByte,
		}})
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Password must be at most 72 bytes", message(t, w))
	})

	// The original password still works
	w := s.do(t, request{method: http.MethodPost, path: "/api/auth/login", body: gin.H{
		"email": "ann@example.com", "password": "secret1",
	}})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_Profile(t *testing.T) {
	s := newTestServer(t, "secret", nil)
	id, token := s.signup(t, "ann", "ann@example.com")

	t.Run("no token", func(t *testing.T) {
		w := s.do(t, request{method: http.MethodGet, path: "/api/auth/profile"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Not authorized, no token provided", message(t, w))
	})

	t.Run("invalid token", func(t *testing.T) {
		w := s.do(t, request{method: http.MethodGet, path: "/api/auth/profile", token: "garbage"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Not authorized, invalid token", message(t, w))
	})

	t.Run("cookie", func(t *testing.T) {
		w := s.do(t, request{
			method: http.MethodGet,
			path:   "/api/auth/profile",
			cookie: &http.Cookie{Name: middleware.TokenCookieName, Value: token},
		})
		require.Equal(t, http.StatusOK, w.Code)

		var profile map[string]interface{}
		decode(t, w, &profile)
		assert.Equal(t, id, profile["id"])
		assert.Equal(t, "ann", profile["username"])
		assert.NotContains(t, profile, "passwordHash")
		assert.NotContains(t, profile, "password_hash")
	})

	t.Run("partial update", func(t *testing.T) {
		w := s.do(t, request{method: http.MethodPatch, path: "/api/auth/profile", token: token, body: gin.H{
			"username": "annie",
		}})
		require.Equal(t, http.StatusOK, w.Code)

		var user models.UserResponse
		decode(t, w, &user)
		assert.Equal(t, "annie", user.Username)
		assert.Equal(t, "ann@example.com", user.Email)
	})

	t.Run("email taken", func(t *testing.T) {
		s.signup(t, "bob", "bob@example.com")
		w := s.do(t, request{method: http.MethodPut, path: "/api/auth/profile", token: token, body: gin.H{
			"email": "bob@example.com",
		}})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "User already exists", message(t, w))
	})

	t.Run("vanished user", func(t *testing.T) {
		ghost, err := jwt.NewJWTService("secret", time.Hour).GenerateToken(uuid.NewString(), "user")
		require.NoError(t, err)
		w := s.do(t, request{method: http.MethodGet, path: "/api/auth/profile", token: ghost})
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "User not found", message(t, w))
	})
}

func TestRouter_MissingSecret(t *testing.T) {
	s := newTestServer(t, "", nil)
	forged, err := jwt.NewJWTService("other", time.Hour).GenerateToken(uuid.NewString(), "user")
	require.NoError(t, err)

	w := s.do(t, request{method: http.MethodGet, path: "/api/books/my"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(t, request{method: http.MethodGet, path: "/api/books/my", token: forged})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal Server Error: Missing JWT_SECRET", message(t, w))
}

func TestRouter_LibraryScenario(t *testing.T) {
	s := newTestServer(t, "secret", nil)
	annID, ann := s.signup(t, "ann", "ann@example.com")
	_, bob := s.signup(t, "bob", "bob@example.com")

	w := s.do(t, request{method: http.MethodPost, path: "/api/books", token: ann, body: gin.H{
		"title": "Dune", "author": "Herbert",
	}})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var added bookEnvelope
	decode(t, w, &added)
	assert.Equal(t, "Book added successfully", added.Message)
	assert.Equal(t, "Reading", added.Book.Status)
	assert.Equal(t, annID, added.Book.User)
	assert.False(t, added.Book.IsPublic)
	bookID := added.Book.ID

	w = s.do(t, request{method: http.MethodGet, path: "/api/books/my", token: ann})
	require.Equal(t, http.StatusOK, w.Code)
	var mine []map[string]interface{}
	decode(t, w, &mine)
	require.Len(t, mine, 1)
	assert.Equal(t, bookID, mine[0]["id"])

	w = s.do(t, request{method: http.MethodPatch, path: "/api/books/" + bookID, token: ann, body: gin.H{
		"status": "Completed",
	}})
	require.Equal(t, http.StatusOK, w.Code)
	var updated bookEnvelope
	decode(t, w, &updated)
	assert.Equal(t, "Book updated successfully", updated.Message)
	assert.Equal(t, "Completed", updated.Book.Status)
	assert.Equal(t, "Dune", updated.Book.Title)

	w = s.do(t, request{method: http.MethodPatch, path: "/api/books/" + bookID, token: bob, body: gin.H{
		"title": "Mine now",
	}})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "You are not allowed to update this book", message(t, w))

	w = s.do(t, request{method: http.MethodDelete, path: "/api/books/" + bookID, token: bob})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "You are not allowed to delete this book", message(t, w))

	w = s.do(t, request{method: http.MethodGet, path: "/api/books/my", token: bob})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = s.do(t, request{method: http.MethodDelete, path: "/api/books/" + bookID, token: ann})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Book deleted successfully", message(t, w))

	w = s.do(t, request{method: http.MethodGet, path: "/api/books/my", token: ann})
	assert.JSONEq(t, `[]`, w.Body.String())

	w = s.do(t, request{method: http.MethodDelete, path: "/api/books/" + bookID, token: ann})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Book not found", message(t, w))
}

func TestRouter_AddBook_Validation(t *testing.T) {
	s := newTestServer(t, "secret", nil)
	_, token := s.signup(t, "ann", "ann@example.com")

	tests := []struct {
		name string
		body interface{}
		want string
	}{
		{name: "empty body", body: nil, want: "Please provide title and author"},
		{name: "missing author", body: gin.H{"title": "Dune"}, want: "Please provide title and author"},
		{name: "unknown status", body: gin.H{"title": "Dune", "author": "Herbert", "status": "Abandoned"}, want: "Invalid status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := s.do(t, request{method: http.MethodPost, path: "/api/books", token: token, body: tt.body})
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.want, message(t, w))
		})
	}

	w := s.do(t, request{method: http.MethodPost, path: "/api/books", body: gin.H{"title": "Dune", "author": "Herbert"}})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouter_BookIDChecks(t *testing.T) {
	s := newTestServer(t, "secret", nil)
	_, token := s.signup(t, "ann", "ann@example.com")

	for _, method := range []string{http.MethodPatch, http.MethodDelete} {
		w := s.do(t, request{method: method, path: "/api/books/not-a-uuid", token: token, body: gin.H{"status": "Completed"}})
		assert.Equal(t, http.StatusBadRequest, w.Code, method)
		assert.Equal(t, "Invalid book ID", message(t, w))

		w = s.do(t, request{method: method, path: "/api/books/" + uuid.NewString(), token: token, body: gin.H{"status": "Completed"}})
		assert.Equal(t, http.StatusNotFound, w.Code, method)
		assert.Equal(t, "Book not found", message(t, w))
	}
}

func TestRouter_PublicBooks(t *testing.T) {
	s := newTestServer(t, "secret", nil)
	_, token := s.signup(t, "ann", "ann@example.com")

	w := s.do(t, request{method: http.MethodGet, path: "/api/books/public"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	s.do(t, request{method: http.MethodPost, path: "/api/books", token: token, body: gin.H{"title": "Diary", "author": "Ann"}})
	_, err := s.books.AddPublic(t.Context(), &models.CreateBookRequest{Title: "Dune", Author: "Herbert"})
	require.NoError(t, err)

	w = s.do(t, request{method: http.MethodGet, path: "/api/books/public"})
	require.Equal(t, http.StatusOK, w.Code)

	var books []map[string]interface{}
	decode(t, w, &books)
	require.Len(t, books, 1)
	assert.Equal(t, "Dune", books[0]["title"])
	assert.Equal(t, true, books[0]["isPublic"])
}

func TestRouter_BookQRCode(t *testing.T) {
	s := newTestServer(t, "secret", nil)
	_, ann := s.signup(t, "ann", "ann@example.com")
	_, bob := s.signup(t, "bob", "bob@example.com")

	w := s.do(t, request{method: http.MethodPost, path: "/api/books", token: ann, body: gin.H{"title": "Dune", "author": "Herbert"}})
	require.Equal(t, http.StatusCreated, w.Code)
	var added bookEnvelope
	decode(t, w, &added)

	w = s.do(t, request{method: http.MethodGet, path: "/api/books/" + added.Book.ID + "/qrcode", token: ann})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("\x89PNG")))

	w = s.do(t, request{method: http.MethodGet, path: "/api/books/" + added.Book.ID + "/qrcode", token: bob})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "You are not allowed to share this book", message(t, w))

	w = s.do(t, request{method: http.MethodGet, path: "/api/books/bogus/qrcode", token: ann})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRouter_AuthRateLimit(t *testing.T) {
	limiter := middleware.NewRateLimiter(rate.Limit(0.001), 1)
	t.Cleanup(limiter.Stop)

	s := newTestServer(t, "secret", func(d *Dependencies) {
		d.AuthLimiter = limiter
	})

	w := s.do(t, request{method: http.MethodPost, path: "/api/auth/logout"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, request{method: http.MethodPost, path: "/api/auth/logout"})
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	// Other groups are unaffected
	w = s.do(t, request{method: http.MethodGet, path: "/api/books/public"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_CORSPreflight(t *testing.T) {
	s := newTestServer(t, "secret", nil)

	req := httptest.NewRequest(http.MethodOptions, "/api/books", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestRouter_Metrics(t *testing.T) {
	s := newTestServer(t, "secret", func(d *Dependencies) {
		d.Metrics = metrics.NewMetrics(prometheus.NewRegistry())
	})

	s.do(t, request{method: http.MethodGet, path: "/api/books/public"})

	w := s.do(t, request{method: http.MethodGet, path: "/metrics"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `booktracker_http_requests_total{method="GET",path="/api/books/public",status="200"} 1`)
}
