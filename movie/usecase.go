package movie

import "context"

type Service interface {
	Add(ctx context.Context, m Movie) (Movie, error)
	List(ctx context.Context, page, perPage int, title string) ([]Movie, error)
	Get(ctx context.Context, id string) (Movie, error)
	Update(ctx context.Context, m Movie, id string) (Movie, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type Repository interface {
	Insert(ctx context.Context, m Movie) (Movie, error)
	FindPage(ctx context.Context, page, perPage int, title string) ([]Movie, error)
	FindByID(ctx context.Context, id string) (Movie, error)
	UpdateByID(ctx context.Context, m Movie, id string) (Movie, error)
	DeleteByID(ctx context.Context, id string) (bool, error)
}

type Usecase struct {
	r Repository
}

func NewUsecase(r Repository) *Usecase {
	return &Usecase{r: r}
}

func (uc *Usecase) Add(ctx context.Context, m Movie) (Movie, error) {
	if err := m.Validate(); err != nil {
		return Movie{}, err
	}
	return uc.r.Insert(ctx, m)
}

func (uc *Usecase) List(ctx context.Context, page, perPage int, title string) ([]Movie, error) {
	if page < 1 || perPage < 1 {
		return nil, ErrInvalidPaging
	}
	return uc.r.FindPage(ctx, page, perPage, title)
}

func (uc *Usecase) Get(ctx context.Context, id string) (Movie, error) {
	return uc.r.FindByID(ctx, id)
}

func (uc *Usecase) Update(ctx context.Context, m Movie, id string) (Movie, error) {
	if err := m.Validate(); err != nil {
		return Movie{}, err
	}
	return uc.r.UpdateByID(ctx, m, id)
}

func (uc *Usecase) Delete(ctx context.Context, id string) (bool, error) {
	return uc.r.DeleteByID(ctx, id)
}
