package httpserver

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/SwapnilRC1995/movies-api-app/auth"
	"github.com/SwapnilRC1995/movies-api-app/pkg/session"
	"github.com/SwapnilRC1995/movies-api-app/user"
)

const sessionCookieName = "session_id"

func (s *Server) RegisterAuthRoutes() {
	s.Router.GET("/api/moviesForm", s.handleMoviesForm)
	s.Router.GET("/api/movies/register", s.handleRegisterForm)
	s.Router.POST("/api/movies/register", s.handleRegister)
	s.Router.GET("/api/movies/login", s.handleLoginForm)
	s.Router.POST("/api/movies/login", s.handleLogin)
	s.Router.GET("/api/movies/sign-out", s.handleSignOut)
}

// handleMoviesForm renders the movie entry form. The route accepts either
// an authenticated session or a valid apiKey query parameter, first match
// wins.
func (s *Server) handleMoviesForm(c echo.Context) error {
	sessionStrategy := &auth.SessionStrategy{Sessions: s.Sessions}
	keyStrategy := &auth.APIKeyStrategy{Auth: s.AuthService}

	result := auth.FirstMatch(
		sessionStrategy.Authenticate(c.Request().Context(), s.sessionID(c)),
		keyStrategy.Authenticate(c.Request().Context(), strings.TrimSpace(c.QueryParam("apiKey"))),
	)
	if !result.Authenticated {
		return c.Redirect(http.StatusFound, "/api/movies/login")
	}

	return c.Render(http.StatusOK, "movies-form.html", map[string]interface{}{
		"Email":  result.User.Email,
		"APIKey": strings.TrimSpace(c.QueryParam("apiKey")),
	})
}

func (s *Server) handleRegisterForm(c echo.Context) error {
	if s.authenticated(c) {
		return c.Redirect(http.StatusFound, "/api/moviesForm")
	}
	return c.Render(http.StatusOK, "register.html", map[string]interface{}{})
}

func (s *Server) handleLoginForm(c echo.Context) error {
	if s.authenticated(c) {
		return c.Redirect(http.StatusFound, "/api/moviesForm")
	}
	return c.Render(http.StatusOK, "login.html", map[string]interface{}{})
}

func (s *Server) handleRegister(c echo.Context) error {
	name := c.FormValue("name")
	email := c.FormValue("email")
	password := c.FormValue("password")
	confirmPassword := c.FormValue("confirm-password")

	u, err := s.AuthService.Register(c.Request().Context(), name, email, password, confirmPassword)
	if err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			return c.Render(http.StatusOK, "register.html", map[string]interface{}{
				"Error": "Password and confirmation do not match",
			})
		}
		return err
	}

	if err := s.establishSession(c, u); err != nil {
		return err
	}
	return c.Redirect(http.StatusFound, "/api/moviesForm")
}

func (s *Server) handleLogin(c echo.Context) error {
	email := c.FormValue("email")
	password := c.FormValue("password")

	u, err := s.AuthService.Login(c.Request().Context(), email, password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrTokenInvalid):
			return c.NoContent(http.StatusForbidden)
		case errors.Is(err, auth.ErrInvalidCredentials):
			return c.Render(http.StatusOK, "login.html", map[string]interface{}{
				"Error": "Invalid email or password",
			})
		case errors.Is(err, user.ErrNotFound):
			return c.Redirect(http.StatusFound, "/api/movies/register")
		default:
			return err
		}
	}

	if err := s.establishSession(c, u); err != nil {
		return err
	}
	return c.Redirect(http.StatusFound, "/api/moviesForm")
}

func (s *Server) handleSignOut(c echo.Context) error {
	if id := s.sessionID(c); id != "" {
		_ = s.Sessions.Delete(c.Request().Context(), id)
	}
	c.SetCookie(&http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
	return c.Redirect(http.StatusFound, "/api/movies/login")
}

func (s *Server) sessionID(c echo.Context) string {
	cookie, err := c.Cookie(sessionCookieName)
	if err != nil || cookie == nil {
		return ""
	}
	return cookie.Value
}

func (s *Server) authenticated(c echo.Context) bool {
	strategy := &auth.SessionStrategy{Sessions: s.Sessions}
	return strategy.Authenticate(c.Request().Context(), s.sessionID(c)).Authenticated
}

func (s *Server) establishSession(c echo.Context, u user.User) error {
	id := session.NewID()
	err := s.Sessions.Save(c.Request().Context(), id, session.Session{
		UserID:        u.ID,
		Email:         u.Email,
		Authenticated: true,
	})
	if err != nil {
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     sessionCookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}
