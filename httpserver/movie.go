package httpserver

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/SwapnilRC1995/movies-api-app/errs"
)

func (s *Server) RegisterMovieRoutes() {
	g := s.Router.Group("/api/movies", s.requireAPIKey)
	g.GET("", s.handleListMovies)
	g.POST("", s.handleCreateMovie)
	g.GET("/:movie_id", s.handleGetMovie)
	g.PUT("/:movie_id", s.handleUpdateMovie)
	g.DELETE("/:movie_id", s.handleDeleteMovie)
}

// requireAPIKey gates every movie route on the apiKey query parameter.
// Failures use the same structured shape as field validation errors and
// short-circuit before any storage access.
func (s *Server) requireAPIKey(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		key := strings.TrimSpace(c.QueryParam("apiKey"))
		if key == "" {
			return writeFieldErrors(c, []FieldError{{
				Value:    "",
				Msg:      msgFieldEmpty,
				Param:    "apiKey",
				Location: locationQuery,
			}})
		}

		u, err := s.AuthService.VerifyAPIKey(c.Request().Context(), key)
		if err != nil {
			return writeFieldErrors(c, []FieldError{{
				Value:    key,
				Msg:      msgInvalidKey,
				Param:    "apiKey",
				Location: locationQuery,
			}})
		}

		c.Set("currentUser", u)
		return next(c)
	}
}

func (s *Server) handleListMovies(c echo.Context) error {
	page := strings.TrimSpace(c.QueryParam("page"))
	perPage := strings.TrimSpace(c.QueryParam("perPage"))
	title := strings.TrimSpace(c.QueryParam("title"))
	wantsView := c.QueryParam("view") == "true"

	fieldErrors := listQueryErrors(page, perPage)
	if len(fieldErrors) > 0 {
		if wantsView {
			viewErrors := map[string]string{}
			for _, fe := range fieldErrors {
				if fe.Param == "page" {
					viewErrors["page"] = fe.Msg
				} else {
					viewErrors["perpage"] = fe.Msg
				}
			}
			return c.Render(http.StatusOK, "movies-form.html", map[string]interface{}{
				"Error":  viewErrors,
				"APIKey": strings.TrimSpace(c.QueryParam("apiKey")),
			})
		}
		return writeFieldErrors(c, fieldErrors)
	}

	pageN, _ := strconv.Atoi(page)
	perPageN, _ := strconv.Atoi(perPage)

	movies, err := s.MovieService.List(c.Request().Context(), pageN, perPageN, title)
	if err != nil {
		return err
	}

	if wantsView {
		return c.Render(http.StatusOK, "data.html", map[string]interface{}{
			"Title":  "Movies",
			"Movies": movies,
		})
	}
	return c.JSON(http.StatusOK, movies)
}

func listQueryErrors(page, perPage string) []FieldError {
	var fieldErrors []FieldError

	check := func(param, value, emptyMsg string) {
		if value == "" {
			fieldErrors = append(fieldErrors, FieldError{
				Value: value, Msg: emptyMsg, Param: param, Location: locationQuery,
			})
			return
		}
		if _, err := strconv.Atoi(value); err != nil {
			fieldErrors = append(fieldErrors, FieldError{
				Value: value, Msg: msgFieldInteger, Param: param, Location: locationQuery,
			})
		}
	}

	check("page", page, "Page number cannot be left blank")
	check("perPage", perPage, "Movies per page cannot be left blank")
	return fieldErrors
}

func (s *Server) handleCreateMovie(c echo.Context) error {
	var req MovieRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	req.normalize(time.Now)

	if err := c.Validate(&req); err != nil {
		var rerr *RequestError
		if errors.As(err, &rerr) {
			return writeFieldErrors(c, rerr.Errors)
		}
		return err
	}

	created, err := s.MovieService.Add(c.Request().Context(), req.ToMovie())
	if err != nil {
		// Storage operation failures ride in the success-status body;
		// callers must inspect the payload, not the status code.
		return c.JSON(http.StatusCreated, map[string]string{
			"error": errs.ErrorMessage(err),
		})
	}
	return c.JSON(http.StatusCreated, created)
}

func (s *Server) handleGetMovie(c echo.Context) error {
	m, err := s.MovieService.Get(c.Request().Context(), c.Param("movie_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, m)
}

func (s *Server) handleUpdateMovie(c echo.Context) error {
	var req MovieRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	req.normalize(time.Now)

	if err := c.Validate(&req); err != nil {
		var rerr *RequestError
		if errors.As(err, &rerr) {
			return writeFieldErrors(c, rerr.Errors)
		}
		return err
	}

	if _, err := s.MovieService.Update(c.Request().Context(), req.ToMovie(), c.Param("movie_id")); err != nil {
		return err
	}
	// 204 cannot carry a body through net/http, so the refreshed document
	// is fetched but not returned.
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) handleDeleteMovie(c echo.Context) error {
	deleted, err := s.MovieService.Delete(c.Request().Context(), c.Param("movie_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusAccepted, deleted)
}
