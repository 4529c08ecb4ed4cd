package httpserver

import (
	"context"
	"net/http"
	"strings"

	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/SwapnilRC1995/movies-api-app/auth"
	"github.com/SwapnilRC1995/movies-api-app/errs"
	"github.com/SwapnilRC1995/movies-api-app/movie"
	"github.com/SwapnilRC1995/movies-api-app/pkg/config"
	"github.com/SwapnilRC1995/movies-api-app/pkg/sentry"
	"github.com/SwapnilRC1995/movies-api-app/pkg/session"
)

type Server struct {
	// Router is the Echo router instance
	Router *echo.Echo

	// Addr represents the address the server will listen on
	Addr string

	// Allowed origins for CORS
	AllowOrigins []string

	MovieService movie.Service

	AuthService auth.Service

	// Sessions backs the cookie-session auth strategy.
	Sessions session.Store
}

func Default(cfg *config.Config) *Server {
	s := Server{
		Router:       echo.New(),
		Addr:         ":8000",
		AllowOrigins: []string{"*"},
	}
	if cfg.AllowOrigins != "" {
		s.AllowOrigins = strings.Split(cfg.AllowOrigins, ",")
	}

	s.Router.HTTPErrorHandler = customHTTPErrorHandler
	s.Router.Validator = NewValidator()
	s.Router.Renderer = NewRenderer()
	s.RegisterGlobalMiddlewares()

	s.RegisterAuthRoutes()
	s.RegisterMovieRoutes()
	s.RegisterHealthRoutes()

	s.Router.RouteNotFound("/*", func(c echo.Context) error {
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": "Oops! Route not found",
		})
	})

	return &s
}

func (s *Server) RegisterGlobalMiddlewares() {
	s.Router.Use(middleware.Recover())
	s.Router.Use(middleware.Secure())
	s.Router.Use(middleware.RequestID())
	s.Router.Use(middleware.Gzip())
	s.Router.Use(sentryecho.New(sentryecho.Options{Repanic: true}))
	s.Router.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(20)))

	// CORS
	if len(s.AllowOrigins) > 0 {
		s.Router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: s.AllowOrigins,
		}))
	}
}

func (s *Server) Start() error {
	return s.Router.Start(s.Addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.Router.Shutdown(ctx)
}

// customHTTPErrorHandler maps application errors to appropriate HTTP status codes
func customHTTPErrorHandler(err error, c echo.Context) {
	code := http.StatusInternalServerError
	message := "Internal server error"

	// Check if it's an Echo HTTPError
	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if msg, ok := he.Message.(string); ok {
			message = msg
		}
	} else {
		// Map application error codes to HTTP status codes
		switch errs.ErrorCode(err) {
		case errs.EINVALID:
			code = http.StatusBadRequest
			message = errs.ErrorMessage(err)
		case errs.ENOTFOUND:
			code = http.StatusNotFound
			message = errs.ErrorMessage(err)
		case errs.ECONFLICT:
			code = http.StatusConflict
			message = errs.ErrorMessage(err)
		case errs.EUNAUTHORIZED:
			code = http.StatusUnauthorized
			message = errs.ErrorMessage(err)
		case errs.ENOTIMPLEMENTED:
			code = http.StatusNotImplemented
			message = errs.ErrorMessage(err)
		case errs.EINTERNAL:
			code = http.StatusInternalServerError
			message = "Internal server error"
		}
	}

	if code >= http.StatusInternalServerError {
		sentry.WithContext(c).Error(err)
	}

	// Don't write response if already committed
	if !c.Response().Committed {
		err = c.JSON(code, map[string]string{"error": message})
		if err != nil {
			c.Logger().Error(err)
		}
	}
}
