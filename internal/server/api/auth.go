// HTTP-хендлеры регистрации и логина
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	serr "github.com/IvanChernomyrdin/go-dashboard-auth/internal/shared/errors"
	"github.com/IvanChernomyrdin/go-dashboard-auth/internal/shared/models"
)

// RegisterRequest описывает тело запроса регистрации пользователя.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest описывает тело запроса входа пользователя.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register обрабатывает регистрацию пользователя.
//
// @Summary      Регистрация нового пользователя
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body RegisterRequest true "name, email, password"
// @Success      200 {object} models.AuthResponse
// @Failure      400 {object} models.ErrorResponse "невалидные данные или email уже занят"
// @Failure      500 {object} models.ErrorResponse
// @Router       /api/register [post]
//
// Ответы:
//   - 200 OK: регистрация успешна, в теле токен и публичные поля пользователя;
//   - 400 Bad Request: неверный JSON, невалидные входные данные или email уже занят;
//   - 500 Internal Server Error: прочие ошибки.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
		return
	}

	res, err := h.Svc.Auth.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrInvalidInput),
			errors.Is(err, serr.ErrPasswordTooShort),
			errors.Is(err, serr.ErrAlreadyExists):
			WriteError(w, http.StatusBadRequest, err)
		default:
			h.Log.Logger.Sugar().Error("register failed")
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	WriteJSON(w, http.StatusOK, models.AuthResponse{
		Success: true,
		Message: "registration successful",
		Token:   res.Token,
		User:    toUserView(res.User),
	})
}

// Login обрабатывает вход пользователя и выдачу bearer токена.
//
// @Summary      Вход пользователя
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "email, password"
// @Success      200 {object} models.AuthResponse
// @Failure      400 {object} models.ErrorResponse "неверные учётные данные"
// @Failure      500 {object} models.ErrorResponse
// @Router       /api/login [post]
//
// Ответы:
//   - 200 OK: успешный вход;
//   - 400 Bad Request: неверный JSON, пустые поля или неверные учётные данные;
//   - 500 Internal Server Error: прочие ошибки.
//
// Для несуществующего email и неверного пароля возвращается один и тот же
// текст ошибки — enumeration resistance.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
		return
	}

	res, err := h.Svc.Auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrInvalidInput),
			errors.Is(err, serr.ErrInvalidCredentials):
			WriteError(w, http.StatusBadRequest, err)
		default:
			h.Log.Logger.Sugar().Error("login failed")
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	WriteJSON(w, http.StatusOK, models.AuthResponse{
		Success: true,
		Message: "login successful",
		Token:   res.Token,
		User:    toUserView(res.User),
	})
}
