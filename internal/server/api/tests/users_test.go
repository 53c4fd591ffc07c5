package tests

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	srvmodels "github.com/IvanChernomyrdin/go-dashboard-auth/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-dashboard-auth/internal/shared/errors"
	"github.com/IvanChernomyrdin/go-dashboard-auth/internal/shared/models"
)

// Тестовый эндпоинт отвечает success и временем сервера
func TestHandler_Ping(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/test", nil)
	rr := httptest.NewRecorder()

	h.Ping(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp models.PingResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.Equal(t, "backend is running", resp.Message)

	// timestamp в RFC3339
	_, err := time.Parse(time.RFC3339, resp.Timestamp)
	require.NoError(t, err)
}

// Список пользователей: count и порядок как отдал сервис
func TestHandler_ListUsers_OK(t *testing.T) {
	h, users := newTestHandler(t)

	now := time.Now()
	list := []srvmodels.User{
		{ID: uuid.New(), Name: "Bob", Email: "bob@example.com", CreatedAt: now},
		{ID: uuid.New(), Name: "Alice", Email: "alice@example.com", CreatedAt: now.Add(-time.Hour)},
	}

	users.EXPECT().
		List(gomock.Any()).
		Return(list, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	rr := httptest.NewRecorder()

	h.ListUsers(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp models.UsersResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.Equal(t, 2, resp.Count)
	require.Len(t, resp.Users, 2)
	require.Equal(t, "bob@example.com", resp.Users[0].Email)
	require.Equal(t, "alice@example.com", resp.Users[1].Email)
	require.NotNil(t, resp.Users[0].CreatedAt)
}

// Пустая база — success с нулевым count
func TestHandler_ListUsers_Empty(t *testing.T) {
	h, users := newTestHandler(t)

	users.EXPECT().
		List(gomock.Any()).
		Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	rr := httptest.NewRecorder()

	h.ListUsers(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp models.UsersResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.Equal(t, 0, resp.Count)
}

// База недоступна — 500
func TestHandler_ListUsers_InternalError(t *testing.T) {
	h, users := newTestHandler(t)

	users.EXPECT().
		List(gomock.Any()).
		Return(nil, serr.ErrInternal)

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	rr := httptest.NewRecorder()

	h.ListUsers(rr, req)

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	require.Equal(t, serr.ErrInternal.Error(), decodeError(t, rr))
}
