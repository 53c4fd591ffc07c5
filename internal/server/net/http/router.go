// Package http реализует маршрутизацию HTTP-слоя сервера дашборда.
//
// Пакет отвечает за:
//   - регистрацию HTTP-маршрутов и настройку роутера (chi);
//   - логирование выполнения HTTP-запросов;
//   - подключение проверки JWT bearer-токенов на защищённых маршрутах.
package http

import (
	"net/http"

	"github.com/IvanChernomyrdin/go-dashboard-auth/internal/server/api"
	"github.com/IvanChernomyrdin/go-dashboard-auth/internal/server/middleware"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"
)

// NewRouter создаёт и настраивает HTTP-роутер сервера.
//
// Роутер использует chi.Router и регистрирует:
//   - публичные эндпоинты под префиксом /api;
//   - middleware логирования для всех запросов;
//   - JWT middleware только на /api/profile.
func NewRouter(h *api.Handler) http.Handler {
	r := chi.NewRouter()
	// логирование всех запросов
	r.Use(middleware.LoggerMiddleware())

	// добавляем swagger
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/api", func(r chi.Router) {
		// Публичные пути
		r.Get("/test", h.Ping)
		r.Get("/users", h.ListUsers)
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)

		// защищённые пути
		r.Group(func(r chi.Router) {
			// проверка bearer токена
			r.Use(h.Verifier.AuthMiddleware())
			r.Get("/profile", h.Profile)
		})
	})

	return r
}
