package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/IvanChernomyrdin/go-dashboard-auth/internal/agent/cli"
	"github.com/IvanChernomyrdin/go-dashboard-auth/internal/agent/config"
	"github.com/IvanChernomyrdin/go-dashboard-auth/internal/shared/models"
)

func TestNewProfileCmd_Success_PrintsUser(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/profile", func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer token-1" {
			t.Fatalf("expected bearer token, got %q", got)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.ProfileResponse{
			Success: true,
			User:    models.UserView{ID: "id-1", Name: "Alice Smith", Email: "alice@example.com"},
		})
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	app := &cli.App{
		ServerURL: srv.URL,
		CredsPath: filepath.Join(t.TempDir(), "creds.json"),
		Creds:     &config.Credentials{Token: "token-1"},
	}

	cmd := cli.NewProfileCmd(app)

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "Alice Smith") || !strings.Contains(got, "alice@example.com") {
		t.Fatalf("unexpected output: %q", got)
	}
}

// Нет токена — подсказываем выполнить login
func TestNewProfileCmd_NoToken_ReturnsError(t *testing.T) {
	app := &cli.App{
		ServerURL: "http://127.0.0.1:3000",
		CredsPath: filepath.Join(t.TempDir(), "creds.json"),
		Creds:     &config.Credentials{},
	}

	cmd := cli.NewProfileCmd(app)
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))

	err := cmd.Execute()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "no token in config") {
		t.Fatalf("unexpected error: %v", err)
	}
}

// Просроченный токен: сервер отвечает 403, ошибка уходит пользователю
func TestNewProfileCmd_ExpiredToken_ReturnsServerError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/profile", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(models.ErrorResponse{Error: "invalid or expired token"})
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	app := &cli.App{
		ServerURL: srv.URL,
		CredsPath: filepath.Join(t.TempDir(), "creds.json"),
		Creds:     &config.Credentials{Token: "stale-token"},
	}

	cmd := cli.NewProfileCmd(app)
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))

	err := cmd.Execute()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "invalid or expired token") {
		t.Fatalf("unexpected error: %v", err)
	}
}
