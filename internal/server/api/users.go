// HTTP-хендлеры тестового эндпоинта и списка пользователей
package api

import (
	"net/http"
	"time"

	serr "github.com/IvanChernomyrdin/go-dashboard-auth/internal/shared/errors"
	"github.com/IvanChernomyrdin/go-dashboard-auth/internal/shared/models"
)

// Ping обрабатывает тестовый эндпоинт дашборда.
//
// @Summary      Проверка доступности бэкенда
// @Tags         system
// @Produce      json
// @Success      200 {object} models.PingResponse
// @Router       /api/test [get]
//
// Дашборд дёргает его периодически, чтобы показать статус ONLINE/OFFLINE.
func (h *Handler) Ping(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, models.PingResponse{
		Success:   true,
		Message:   "backend is running",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// ListUsers обрабатывает запрос списка всех пользователей.
//
// @Summary      Список зарегистрированных пользователей
// @Tags         users
// @Produce      json
// @Success      200 {object} models.UsersResponse
// @Failure      500 {object} models.ErrorResponse
// @Router       /api/users [get]
//
// Ответы:
//   - 200 OK: список пользователей, новые первыми;
//   - 500 Internal Server Error: база недоступна.
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Svc.Users.List(r.Context())
	if err != nil {
		h.Log.Logger.Sugar().Error("list users failed")
		WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		return
	}

	views := make([]models.UserView, 0, len(users))
	for _, u := range users {
		views = append(views, toUserView(u))
	}

	WriteJSON(w, http.StatusOK, models.UsersResponse{
		Success: true,
		Count:   len(views),
		Users:   views,
	})
}
