// Package api реализует HTTP-слой сервера дашборда.
//
// Пакет отвечает за:
//   - обработку входящих запросов и формирование ответов (JSON, статусы);
//   - маппинг доменных ошибок (service/repository) в HTTP-коды и сообщения;
//   - подключение middleware (логирование, проверка JWT и т.д.).
package api

import (
	"encoding/json"
	"net/http"

	"github.com/IvanChernomyrdin/go-dashboard-auth/internal/server/middleware"
	srvmodels "github.com/IvanChernomyrdin/go-dashboard-auth/internal/server/models"
	"github.com/IvanChernomyrdin/go-dashboard-auth/internal/server/service"
	"github.com/IvanChernomyrdin/go-dashboard-auth/internal/shared/logger"
	"github.com/IvanChernomyrdin/go-dashboard-auth/internal/shared/models"
)

// Каждый метод если будет возвращать ответ то будет это делать в JSON
// Вынес Content-Type и JSON для удобства
const (
	JsonContentType string = "application/json"
	ContentType     string = "Content-Type"
)

// Handler агрегирует зависимости HTTP-слоя и предоставляет методы-хендлеры.
//
// Handler содержит:
//   - Svc: сервисный слой (бизнес-логика);
//   - Log: логгер для записи событий и ошибок;
//   - Verifier: компонент проверки JWT и middleware авторизации.
//
// Методы Handler используются роутером для обработки HTTP-запросов.
type Handler struct {
	Svc      *service.Services
	Log      *logger.HTTPLogger
	Verifier *middleware.JWTVerifier
}

// NewHandler создаёт экземпляр Handler с переданными зависимостями.
//
// svc — набор сервисов приложения,
// log — логгер,
// verifier — JWT-проверка и middleware авторизации.
func NewHandler(svc *service.Services, log *logger.HTTPLogger, verifier *middleware.JWTVerifier) *Handler {
	return &Handler{
		Svc:      svc,
		Log:      log,
		Verifier: verifier,
	}
}

// Вспомогательная функция вывода ошибки
func WriteError(w http.ResponseWriter, status int, err error) {
	w.Header().Set(ContentType, JsonContentType)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(models.ErrorResponse{
		Error: err.Error(),
	})
}

// WriteJSON сериализует успешный ответ с указанным статусом.
func WriteJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set(ContentType, JsonContentType)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// toUserView собирает публичное представление пользователя.
// created_at отдаём только если оно реально известно (профиль, список):
// сразу после регистрации сервис его не знает.
func toUserView(u srvmodels.User) models.UserView {
	v := models.UserView{
		ID:    u.ID.String(),
		Name:  u.Name,
		Email: u.Email,
	}
	if !u.CreatedAt.IsZero() {
		t := u.CreatedAt
		v.CreatedAt = &t
	}
	return v
}
