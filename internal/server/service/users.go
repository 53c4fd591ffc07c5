package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/go-dashboard-auth/internal/server/models"
)

// UsersService отдаёт данные пользователей для дашборда:
// список всех пользователей и профиль по id.
type UsersService struct {
	users UsersRepo
}

func NewUsersService(users UsersRepo) *UsersService {
	return &UsersService{users: users}
}

// List возвращает всех пользователей, новые первыми (порядок задаёт репозиторий).
func (s *UsersService) List(ctx context.Context) ([]models.User, error) {
	return s.users.List(ctx)
}

// GetByID возвращает пользователя по id для защищённого профиля.
// Ошибки репозитория (ErrNotFound/ErrInternal) пробрасываются как есть.
func (s *UsersService) GetByID(ctx context.Context, id uuid.UUID) (models.User, error) {
	return s.users.GetByID(ctx, id)
}
