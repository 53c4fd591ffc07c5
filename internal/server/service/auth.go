package service

import (
	"context"
	"errors"
	"strings"

	"github.com/IvanChernomyrdin/go-dashboard-auth/internal/server/config"
	"github.com/IvanChernomyrdin/go-dashboard-auth/internal/server/crypto"
	"github.com/IvanChernomyrdin/go-dashboard-auth/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-dashboard-auth/internal/shared/errors"
)

// AuthService реализует бизнес-логику аутентификации.
//
// Ответственность:
//   - регистрация пользователей
//   - аутентификация (логин)
//   - выпуск bearer токенов
type AuthService struct {
	users UsersRepo

	hasher crypto.Hasher
	jwt    crypto.JWTConfig
}

// AuthResult — результат успешной регистрации или логина:
// публичное представление пользователя и подписанный токен.
type AuthResult struct {
	User  models.User
	Token string
}

// NewAuthService создаёт AuthService с зависимостями и настройками из конфига.
func NewAuthService(users UsersRepo, cfg *config.Config) *AuthService {
	return &AuthService{
		users: users,

		hasher: hasherFromConfig(cfg),
		jwt: crypto.JWTConfig{
			Issuer:     cfg.Auth.Issuer,
			Audience:   cfg.Auth.Audience,
			SigningKey: cfg.Auth.JWT.SigningKey,
			AccessTTL:  cfg.Auth.AccessTTL,
		},
	}
}

// hasherFromConfig выбирает реализацию хэшера по password.hasher.
// Конфиг уже провалидирован, поэтому default тут практически недостижим.
func hasherFromConfig(cfg *config.Config) crypto.Hasher {
	switch strings.ToLower(cfg.Password.Hasher) {
	case "bcrypt":
		return crypto.BcryptHasher{Cost: cfg.Password.Bcrypt.Cost}
	default:
		return crypto.Argon2Hasher{Params: crypto.Argon2Params{
			Time:      cfg.Password.Argon2.Time,
			MemoryKiB: cfg.Password.Argon2.MemoryKiB,
			Threads:   cfg.Password.Argon2.Threads,
			KeyLen:    cfg.Password.Argon2.KeyLen,
			SaltLen:   cfg.Password.Argon2.SaltLen,
		}}
	}
}

// Register регистрирует нового пользователя.
//
// Валидация:
//   - name, email, password обязательны
//   - пароль длиной >= 8 символов
//
// Синтаксис email и состав пароля сервер дальше не проверяет — это
// забота клиентской формы и на безопасность не влияет.
//
// Возвращает:
//   - AuthResult с публичными полями пользователя и токеном
//   - ErrInvalidInput / ErrPasswordTooShort при некорректных данных
//   - ErrAlreadyExists если email уже зарегистрирован
func (s *AuthService) Register(ctx context.Context, name, email, password string) (AuthResult, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	if name == "" || email == "" || password == "" {
		return AuthResult{}, serr.ErrInvalidInput
	}
	if len(password) < 8 {
		return AuthResult{}, serr.ErrPasswordTooShort
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return AuthResult{}, serr.ErrInternal
	}

	id, err := s.users.Create(ctx, name, email, hash)
	if err != nil {
		return AuthResult{}, err
	}

	token, err := crypto.NewAccessToken(id.String(), email, s.jwt)
	if err != nil {
		return AuthResult{}, serr.ErrInternal
	}

	return AuthResult{
		User:  models.User{ID: id, Name: name, Email: email},
		Token: token,
	}, nil
}

// Login аутентифицирует пользователя и выдаёт токен.
//
// Поведение:
//   - не раскрывает факт существования email: "email не найден" и
//     "пароль не подошёл" дают один и тот же ErrInvalidCredentials
//
// Ошибки:
//   - ErrInvalidInput
//   - ErrInvalidCredentials
func (s *AuthService) Login(ctx context.Context, email, password string) (AuthResult, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return AuthResult{}, serr.ErrInvalidInput
	}
	// получаем юзера по email
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		// не палим существование email
		if errors.Is(err, serr.ErrNotFound) {
			return AuthResult{}, serr.ErrInvalidCredentials
		}
		return AuthResult{}, err
	}
	// проверяем пароль
	ok, err := s.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		return AuthResult{}, serr.ErrInternal
	}
	if !ok {
		return AuthResult{}, serr.ErrInvalidCredentials
	}
	// создаём новый bearer токен
	token, err := crypto.NewAccessToken(user.ID.String(), user.Email, s.jwt)
	if err != nil {
		return AuthResult{}, serr.ErrInternal
	}

	// хэш наружу не отдаём
	user.PasswordHash = ""

	return AuthResult{User: user, Token: token}, nil
}
