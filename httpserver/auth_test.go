package httpserver_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/SwapnilRC1995/movies-api-app/auth"
	"github.com/SwapnilRC1995/movies-api-app/user"
)

func postForm(server http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)
	return rec
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == "session_id" {
			return c
		}
	}
	return nil
}

func TestAuthRoutes_Register(t *testing.T) {
	t.Run("success establishes a session and redirects", func(t *testing.T) {
		movies := new(MockMovieService)
		auths := new(MockAuthService)
		server := newTestServer(movies, auths)

		u := user.User{ID: "u-1", Name: "John", Email: "john@mail.com", APIKey: testAPIKey}
		auths.On("Register", mock.Anything, "John", "john@mail.com", "secret", "secret").
			Return(u, nil).Once()

		rec := postForm(server.Router, "/api/movies/register", url.Values{
			"name":             {"John"},
			"email":            {"john@mail.com"},
			"password":         {"secret"},
			"confirm-password": {"secret"},
		})

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/api/moviesForm", rec.Header().Get("Location"))
		cookie := sessionCookie(t, rec)
		require.NotNil(t, cookie, "expected a session cookie on successful registration")
		assert.True(t, cookie.HttpOnly)
		auths.AssertExpectations(t)
	})

	t.Run("password mismatch re-renders the form without a session", func(t *testing.T) {
		movies := new(MockMovieService)
		auths := new(MockAuthService)
		server := newTestServer(movies, auths)

		auths.On("Register", mock.Anything, "John", "john@mail.com", "secret", "other").
			Return(user.User{}, auth.ErrPasswordMismatch).Once()

		rec := postForm(server.Router, "/api/movies/register", url.Values{
			"name":             {"John"},
			"email":            {"john@mail.com"},
			"password":         {"secret"},
			"confirm-password": {"other"},
		})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Password and confirmation do not match")
		assert.Nil(t, sessionCookie(t, rec), "no session cookie on failed registration")
		auths.AssertExpectations(t)
	})
}

func TestAuthRoutes_Login(t *testing.T) {
	t.Run("success establishes a session and redirects", func(t *testing.T) {
		movies := new(MockMovieService)
		auths := new(MockAuthService)
		server := newTestServer(movies, auths)

		u := user.User{ID: "u-1", Email: "john@mail.com", APIKey: testAPIKey}
		auths.On("Login", mock.Anything, "john@mail.com", "secret").Return(u, nil).Once()

		rec := postForm(server.Router, "/api/movies/login", url.Values{
			"email":    {"john@mail.com"},
			"password": {"secret"},
		})

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/api/moviesForm", rec.Header().Get("Location"))
		require.NotNil(t, sessionCookie(t, rec))
		auths.AssertExpectations(t)
	})

	t.Run("wrong password re-renders the form", func(t *testing.T) {
		movies := new(MockMovieService)
		auths := new(MockAuthService)
		server := newTestServer(movies, auths)

		auths.On("Login", mock.Anything, "john@mail.com", "wrong").
			Return(user.User{}, auth.ErrInvalidCredentials).Once()

		rec := postForm(server.Router, "/api/movies/login", url.Values{
			"email":    {"john@mail.com"},
			"password": {"wrong"},
		})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid email or password")
		assert.Nil(t, sessionCookie(t, rec))
		auths.AssertExpectations(t)
	})

	t.Run("unknown email redirects to registration", func(t *testing.T) {
		movies := new(MockMovieService)
		auths := new(MockAuthService)
		server := newTestServer(movies, auths)

		auths.On("Login", mock.Anything, "nobody@mail.com", "secret").
			Return(user.User{}, user.ErrNotFound).Once()

		rec := postForm(server.Router, "/api/movies/login", url.Values{
			"email":    {"nobody@mail.com"},
			"password": {"secret"},
		})

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/api/movies/register", rec.Header().Get("Location"))
		auths.AssertExpectations(t)
	})

	t.Run("corrupt stored token is forbidden", func(t *testing.T) {
		movies := new(MockMovieService)
		auths := new(MockAuthService)
		server := newTestServer(movies, auths)

		auths.On("Login", mock.Anything, "john@mail.com", "secret").
			Return(user.User{}, auth.ErrTokenInvalid).Once()

		rec := postForm(server.Router, "/api/movies/login", url.Values{
			"email":    {"john@mail.com"},
			"password": {"secret"},
		})

		assert.Equal(t, http.StatusForbidden, rec.Code)
		auths.AssertExpectations(t)
	})
}

func TestAuthRoutes_MoviesForm(t *testing.T) {
	t.Run("unauthenticated visitors are sent to login", func(t *testing.T) {
		movies := new(MockMovieService)
		auths := new(MockAuthService)
		server := newTestServer(movies, auths)

		req := httptest.NewRequest(http.MethodGet, "/api/moviesForm", nil)
		rec := httptest.NewRecorder()
		server.Router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/api/movies/login", rec.Header().Get("Location"))
	})

	t.Run("session cookie grants access", func(t *testing.T) {
		movies := new(MockMovieService)
		auths := new(MockAuthService)
		server := newTestServer(movies, auths)

		u := user.User{ID: "u-1", Email: "john@mail.com"}
		auths.On("Login", mock.Anything, "john@mail.com", "secret").Return(u, nil).Once()

		login := postForm(server.Router, "/api/movies/login", url.Values{
			"email":    {"john@mail.com"},
			"password": {"secret"},
		})
		cookie := sessionCookie(t, login)
		require.NotNil(t, cookie)

		req := httptest.NewRequest(http.MethodGet, "/api/moviesForm", nil)
		req.AddCookie(cookie)
		rec := httptest.NewRecorder()
		server.Router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "john@mail.com")
	})

	t.Run("apiKey query parameter grants access without a session", func(t *testing.T) {
		movies := new(MockMovieService)
		auths := new(MockAuthService)
		auths.allowAPIKey()
		server := newTestServer(movies, auths)

		req := httptest.NewRequest(http.MethodGet, "/api/moviesForm?apiKey="+testAPIKey, nil)
		rec := httptest.NewRecorder()
		server.Router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestAuthRoutes_SignOut(t *testing.T) {
	movies := new(MockMovieService)
	auths := new(MockAuthService)
	server := newTestServer(movies, auths)

	u := user.User{ID: "u-1", Email: "john@mail.com"}
	auths.On("Login", mock.Anything, "john@mail.com", "secret").Return(u, nil).Once()

	login := postForm(server.Router, "/api/movies/login", url.Values{
		"email":    {"john@mail.com"},
		"password": {"secret"},
	})
	cookie := sessionCookie(t, login)
	require.NotNil(t, cookie)

	req := httptest.NewRequest(http.MethodGet, "/api/movies/sign-out", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	server.Router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/api/movies/login", rec.Header().Get("Location"))
	cleared := sessionCookie(t, rec)
	require.NotNil(t, cleared, "expected the cookie to be expired")
	assert.Equal(t, -1, cleared.MaxAge)

	// The server-side record is gone too, so replaying the old cookie no
	// longer authenticates.
	req = httptest.NewRequest(http.MethodGet, "/api/moviesForm", nil)
	req.AddCookie(cookie)
	rec = httptest.NewRecorder()
	server.Router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/api/movies/login", rec.Header().Get("Location"))
	auths.AssertExpectations(t)
}

func TestAuthRoutes_LoginForm_RedirectsWhenAuthenticated(t *testing.T) {
	movies := new(MockMovieService)
	auths := new(MockAuthService)
	server := newTestServer(movies, auths)

	u := user.User{ID: "u-1", Email: "john@mail.com"}
	auths.On("Login", mock.Anything, "john@mail.com", "secret").Return(u, nil).Once()

	login := postForm(server.Router, "/api/movies/login", url.Values{
		"email":    {"john@mail.com"},
		"password": {"secret"},
	})
	cookie := sessionCookie(t, login)
	require.NotNil(t, cookie)

	for _, path := range []string{"/api/movies/login", "/api/movies/register"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.AddCookie(cookie)
		rec := httptest.NewRecorder()
		server.Router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusFound, rec.Code, path)
		assert.Equal(t, "/api/moviesForm", rec.Header().Get("Location"), path)
	}
}
