// Package middleware содержит HTTP middleware сервера.
package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/IvanChernomyrdin/go-dashboard-auth/internal/server/crypto"
	serr "github.com/IvanChernomyrdin/go-dashboard-auth/internal/shared/errors"
	"github.com/IvanChernomyrdin/go-dashboard-auth/internal/shared/models"
)

// ctxKey используется как тип ключа для хранения значений в context.Context.
// Отдельный тип предотвращает коллизии ключей между пакетами.
type ctxKey string

// userIDKey — ключ контекста, под которым хранится ID аутентифицированного пользователя.
const userIDKey ctxKey = "user_id"

// emailKey — ключ контекста, под которым хранится email аутентифицированного пользователя.
const emailKey ctxKey = "email"

// JWTVerifier инкапсулирует параметры проверки JWT bearer-токенов.
//
// Используется в HTTP middleware для:
//   - проверки подписи токена
//   - валидации issuer и audience
//   - извлечения userID и email из claims.
type JWTVerifier struct {
	SigningKey string // симметричный ключ для подписи (HS256)
	Issuer     string // ожидаемый issuer (опционально)
	Audience   string // ожидаемая audience (опционально)
}

// NewJWTVerifier создаёт новый JWTVerifier с заданными параметрами.
func NewJWTVerifier(signingKey, issuer, audience string) *JWTVerifier {
	return &JWTVerifier{SigningKey: signingKey, Issuer: issuer, Audience: audience}
}

// UserIDFromContext извлекает userID аутентифицированного пользователя из контекста.
//
// Возвращает:
//   - userID
//   - false, если пользователь не аутентифицирован
func UserIDFromContext(ctx context.Context) (string, bool) {
	v := ctx.Value(userIDKey)
	s, ok := v.(string)
	return s, ok
}

// EmailFromContext извлекает email аутентифицированного пользователя из контекста.
func EmailFromContext(ctx context.Context) (string, bool) {
	v := ctx.Value(emailKey)
	s, ok := v.(string)
	return s, ok
}

// AuthMiddleware возвращает HTTP middleware для проверки JWT bearer-токенов.
//
// Middleware:
//   - ожидает заголовок Authorization: Bearer <token>
//   - валидирует подпись и claims токена
//   - извлекает userID и email из claims
//   - сохраняет их в context.Context
//
// Коды ошибок:
//   - 401 Unauthorized — токена нет или заголовок не в формате Bearer;
//   - 403 Forbidden — токен есть, но подпись/срок/claims не прошли проверку.
//
// Поход в базу для аутентификации не нужен: токен самодостаточен.
func (v *JWTVerifier) AuthMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := ExtractBearer(r.Header.Get("Authorization"))
			if tokenStr == "" {
				writeError(w, http.StatusUnauthorized, serr.ErrMissingToken)
				return
			}

			claims := &crypto.Claims{}

			parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
			_, err := parser.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
				return []byte(v.SigningKey), nil
			})

			if err != nil {
				// просроченный и битый токен наружу не различаем
				writeError(w, http.StatusForbidden, serr.ErrInvalidToken)
				return
			}

			if v.Issuer != "" && claims.Issuer != v.Issuer {
				writeError(w, http.StatusForbidden, serr.ErrInvalidToken)
				return
			}

			if v.Audience != "" {
				ok := false
				for _, aud := range claims.Audience {
					if aud == v.Audience {
						ok = true
						break
					}
				}
				if !ok {
					writeError(w, http.StatusForbidden, serr.ErrInvalidToken)
					return
				}
			}

			userID := strings.TrimSpace(claims.Subject)
			if userID == "" {
				writeError(w, http.StatusForbidden, serr.ErrInvalidToken)
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			ctx = context.WithValue(ctx, emailKey, claims.Email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ExtractBearer извлекает JWT из заголовка Authorization.
//
// Ожидаемый формат:
//
//	Authorization: Bearer <token>
//
// Возвращает пустую строку, если формат некорректен.
func ExtractBearer(h string) string {
	h = strings.TrimSpace(h)
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// writeError отдаёт ошибку в общем JSON формате {"error": "..."}.
// Дублирует api.WriteError, потому что api импортирует middleware.
func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(models.ErrorResponse{Error: err.Error()})
}
