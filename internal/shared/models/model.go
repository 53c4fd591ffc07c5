// Package models содержит модели HTTP API, общие для сервера и CLI-клиента.
package models

import "time"

// UserView — публичное представление пользователя в HTTP API.
//
// Хэш пароля сюда не попадает никогда: структура собирается
// вручную из доменной модели и отдаётся наружу как есть.
//
// Поля:
//   - ID: идентификатор пользователя (UUID в виде строки)
//   - Name: отображаемое имя
//   - Email: email (натуральный ключ записи)
//   - CreatedAt: время регистрации; заполняется только там, где оно известно
//     (список пользователей, профиль)
type UserView struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// AuthResponse — ответ эндпоинтов регистрации и входа.
//
// Используется в:
//
//	POST /api/register
//	POST /api/login
type AuthResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Token   string   `json:"token"`
	User    UserView `json:"user"`
}

// UsersResponse — ответ эндпоинта списка пользователей.
//
// Используется в:
//
//	GET /api/users
//
// Пользователи отсортированы по created_at, новые первыми.
type UsersResponse struct {
	Success bool       `json:"success"`
	Count   int        `json:"count"`
	Users   []UserView `json:"users"`
}

// ProfileResponse — ответ защищённого эндпоинта профиля.
//
// Используется в:
//
//	GET /api/profile
type ProfileResponse struct {
	Success bool     `json:"success"`
	User    UserView `json:"user"`
}

// PingResponse — ответ тестового эндпоинта.
//
// Используется в:
//
//	GET /api/test
//
// Timestamp — серверное время в формате RFC3339.
type PingResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// ErrorResponse — единый формат ошибки для всех эндпоинтов.
type ErrorResponse struct {
	Error string `json:"error"`
}
