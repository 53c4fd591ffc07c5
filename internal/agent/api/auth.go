// В этом файле описаны методы клиента для работы с эндпоинтами сервера:
// регистрация, вход, профиль, список пользователей и проверка доступности.
package api

import "github.com/IvanChernomyrdin/go-dashboard-auth/internal/shared/models"

// RegisterRequest описывает тело запроса регистрации пользователя.
//
// Name, Email и Password передаются в JSON формате в эндпоинт /api/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest описывает тело запроса входа пользователя.
//
// Email и Password передаются в JSON формате в эндпоинт /api/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register выполняет регистрацию пользователя на сервере.
//
// Метод отправляет POST запрос на /api/register и возвращает AuthResponse
// с bearer токеном и публичными полями пользователя.
// В случае ошибки возвращает непустую ошибку и пустой ответ.
func (c *Client) Register(name, email, password string) (models.AuthResponse, error) {
	var resp models.AuthResponse
	err := c.PostJSON("/api/register", RegisterRequest{Name: name, Email: email, Password: password}, &resp, "")
	return resp, err
}

// Login выполняет вход пользователя и получает bearer токен.
//
// Метод отправляет POST запрос на /api/login и возвращает AuthResponse.
// В случае ошибки возвращает непустую ошибку и пустой ответ.
func (c *Client) Login(email, password string) (models.AuthResponse, error) {
	var resp models.AuthResponse
	err := c.PostJSON("/api/login", LoginRequest{Email: email, Password: password}, &resp, "")
	return resp, err
}

// Profile запрашивает профиль текущего пользователя.
//
// Метод отправляет GET запрос на /api/profile и использует token для авторизации.
// В случае ошибки возвращает непустую ошибку и пустой ответ.
func (c *Client) Profile(token string) (models.ProfileResponse, error) {
	var resp models.ProfileResponse
	err := c.GetJSON("/api/profile", &resp, token)
	return resp, err
}

// Users запрашивает список всех зарегистрированных пользователей.
//
// Метод отправляет GET запрос на /api/users. Авторизация не требуется.
func (c *Client) Users() (models.UsersResponse, error) {
	var resp models.UsersResponse
	err := c.GetJSON("/api/users", &resp, "")
	return resp, err
}

// Ping проверяет доступность бэкенда.
//
// Метод отправляет GET запрос на /api/test.
func (c *Client) Ping() (models.PingResponse, error) {
	var resp models.PingResponse
	err := c.GetJSON("/api/test", &resp, "")
	return resp, err
}
