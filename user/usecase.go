package user

import "context"

type Service interface {
	AddUser(ctx context.Context, u User) (User, error)
	GetUserByEmail(ctx context.Context, email string) (User, error)
	GetUserByAPIKey(ctx context.Context, key string) (User, error)
}

type Repository interface {
	Insert(ctx context.Context, u User) (User, error)
	FindByEmail(ctx context.Context, email string) (User, error)
	FindByAPIKey(ctx context.Context, key string) (User, error)
}

type Usecase struct {
	r Repository
}

func NewUsecase(r Repository) *Usecase {
	return &Usecase{r: r}
}

func (uc *Usecase) AddUser(ctx context.Context, u User) (User, error) {
	if err := u.Validate(); err != nil {
		return User{}, err
	}
	return uc.r.Insert(ctx, u)
}

// GetUserByEmail looks up by exact email match; no normalization is
// applied, so lookups are case-sensitive.
func (uc *Usecase) GetUserByEmail(ctx context.Context, email string) (User, error) {
	if email == "" {
		return User{}, ErrInvalidEmail
	}
	return uc.r.FindByEmail(ctx, email)
}

func (uc *Usecase) GetUserByAPIKey(ctx context.Context, key string) (User, error) {
	if key == "" {
		return User{}, ErrNotFound
	}
	return uc.r.FindByAPIKey(ctx, key)
}
