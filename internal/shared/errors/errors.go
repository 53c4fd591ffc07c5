// Package errors содержит общие доменные ошибки приложения.
//
// Эти ошибки используются в service и repository слоях
// и маппятся на HTTP-статусы в api слое.
package errors

import "errors"

var (
	// Входные данные невалидны (пустые обязательные поля)
	ErrInvalidInput = errors.New("all fields are required")
	// Пароль короче минимальной длины
	ErrPasswordTooShort = errors.New("password must be at least 8 characters")
	// Неверные учётные данные. Один и тот же текст для "email не найден" и
	// "пароль не подошёл" — не палим какие email зарегистрированы.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// Email уже занят
	ErrAlreadyExists = errors.New("email already registered")
	// Ресурс не найден
	ErrNotFound = errors.New("not found")
	// Полученные JSON данные с ошибками
	ErrBadJSON = errors.New("bad json")
	// В запросе нет bearer токена
	ErrMissingToken = errors.New("access token required")
	// Токен не прошёл проверку (подпись/срок/claims)
	ErrInvalidToken = errors.New("invalid or expired token")
	// Получена непредвиденная ошибка
	ErrInternal = errors.New("internal error")
)
