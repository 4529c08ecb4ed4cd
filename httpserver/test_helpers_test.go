//nolint:unused
package httpserver_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/SwapnilRC1995/movies-api-app/httpserver"
	"github.com/SwapnilRC1995/movies-api-app/movie"
	"github.com/SwapnilRC1995/movies-api-app/pkg/config"
	"github.com/SwapnilRC1995/movies-api-app/pkg/session"
	"github.com/SwapnilRC1995/movies-api-app/user"
)

const testAPIKey = "7f0fae35-bf34-4a33-b08e-1d12ae5d3c63"

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey = "test-secret-key"
	return cfg
}

func newTestServer(movies movie.Service, auths *MockAuthService) *httpserver.Server {
	server := httpserver.Default(testConfig())
	server.MovieService = movies
	server.AuthService = auths
	server.Sessions = session.NewMemoryStore(time.Hour)
	return server
}

type MockMovieService struct {
	mock.Mock
}

func (m *MockMovieService) Add(ctx context.Context, mv movie.Movie) (movie.Movie, error) {
	args := m.Called(ctx, mv)
	return args.Get(0).(movie.Movie), args.Error(1)
}

func (m *MockMovieService) List(ctx context.Context, page, perPage int, title string) ([]movie.Movie, error) {
	args := m.Called(ctx, page, perPage, title)
	return args.Get(0).([]movie.Movie), args.Error(1)
}

func (m *MockMovieService) Get(ctx context.Context, id string) (movie.Movie, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(movie.Movie), args.Error(1)
}

func (m *MockMovieService) Update(ctx context.Context, mv movie.Movie, id string) (movie.Movie, error) {
	args := m.Called(ctx, mv, id)
	return args.Get(0).(movie.Movie), args.Error(1)
}

func (m *MockMovieService) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, name, email, password, confirmPassword string) (user.User, error) {
	args := m.Called(ctx, name, email, password, confirmPassword)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (user.User, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *MockAuthService) VerifyAPIKey(ctx context.Context, key string) (user.User, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(user.User), args.Error(1)
}

// allowAPIKey wires the shared test key to a stock account for routes
// behind the apiKey gate.
func (m *MockAuthService) allowAPIKey() {
	m.On("VerifyAPIKey", mock.Anything, testAPIKey).
		Return(user.User{ID: "u-1", Email: "john@mail.com", APIKey: testAPIKey}, nil)
}
