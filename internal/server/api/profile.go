// HTTP-хендлер защищённого профиля
package api

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/go-dashboard-auth/internal/server/middleware"
	serr "github.com/IvanChernomyrdin/go-dashboard-auth/internal/shared/errors"
	"github.com/IvanChernomyrdin/go-dashboard-auth/internal/shared/models"
)

// Profile обрабатывает запрос профиля текущего пользователя.
//
// @Summary      Профиль текущего пользователя
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} models.ProfileResponse
// @Failure      401 {object} models.ErrorResponse "нет bearer токена"
// @Failure      403 {object} models.ErrorResponse "токен не прошёл проверку"
// @Failure      404 {object} models.ErrorResponse "пользователь удалён"
// @Failure      500 {object} models.ErrorResponse
// @Router       /api/profile [get]
//
// Аутентификацию выполняет middleware: сюда запрос доходит уже с userID
// в контексте. Запись перечитывается из базы, чтобы отдать актуальные
// name/created_at, а не то, что было на момент выпуска токена.
func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		// без middleware сюда не попасть
		WriteError(w, http.StatusUnauthorized, serr.ErrMissingToken)
		return
	}

	id, err := uuid.Parse(userID)
	if err != nil {
		WriteError(w, http.StatusForbidden, serr.ErrInvalidToken)
		return
	}

	user, err := h.Svc.Users.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, serr.ErrNotFound) {
			WriteError(w, http.StatusNotFound, serr.ErrNotFound)
			return
		}
		h.Log.Logger.Sugar().Error("profile fetch failed")
		WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		return
	}

	WriteJSON(w, http.StatusOK, models.ProfileResponse{
		Success: true,
		User:    toUserView(user),
	})
}
