// Package crypto содержит криптографические примитивы,
// используемые сервером дашборда.
//
// В частности, пакет отвечает за:
//   - хэширование и проверку паролей (argon2id/bcrypt);
//   - генерацию и подпись JWT bearer-токенов;
//   - настройку параметров токенов (issuer, audience, TTL).
package crypto

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWTConfig описывает параметры генерации JWT bearer-токена.
type JWTConfig struct {
	// Issuer — значение поля iss (кто выдал токен).
	Issuer string
	// Audience — значение поля aud (для кого предназначен токен).
	Audience string
	// SigningKey — секретный ключ для подписи токена (HS256).
	// Должен быть достаточно длинным и случайным.
	SigningKey string
	// AccessTTL — срок жизни токена (по умолчанию сутки).
	AccessTTL time.Duration
}

// Claims — полезная нагрузка токена: стандартные claims плюс email,
// чтобы защищённые хендлеры знали пользователя без похода в базу.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// NewAccessToken создаёт и подписывает JWT bearer-токен для пользователя.
//
// Токен содержит:
//   - iss (Issuer)
//   - aud (Audience)
//   - sub (userID)
//   - iat (IssuedAt)
//   - exp (ExpiresAt)
//   - email
//
// Используется алгоритм подписи HS256.
// В случае ошибки подписи возвращается непустая ошибка.
func NewAccessToken(userID, email string, cfg JWTConfig) (string, error) {
	now := time.Now()

	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.Issuer,
			Audience:  []string{cfg.Audience},
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(cfg.AccessTTL)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(cfg.SigningKey))
}
