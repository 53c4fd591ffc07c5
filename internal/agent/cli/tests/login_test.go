package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/IvanChernomyrdin/go-dashboard-auth/internal/agent/cli"
	"github.com/IvanChernomyrdin/go-dashboard-auth/internal/agent/config"
	"github.com/IvanChernomyrdin/go-dashboard-auth/internal/shared/models"
)

func TestNewLoginCmd_Success_SavesTokenAndPrintsMessage(t *testing.T) {
	// тестовый сервер
	mux := http.NewServeMux()
	mux.HandleFunc("/api/login", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("expected POST, got %s", r.Method)
		}

		var req struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Email != "alice@example.com" {
			t.Fatalf("expected email alice@example.com, got %q", req.Email)
		}
		if req.Password != "StrongPass123" {
			t.Fatalf("expected password StrongPass123, got %q", req.Password)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.AuthResponse{
			Success: true,
			Message: "login successful",
			Token:   "token-1",
			User:    models.UserView{ID: "id-1", Name: "Alice", Email: "alice@example.com"},
		})
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	// временный путь под креды
	tmpDir := t.TempDir()
	credsPath := filepath.Join(tmpDir, "creds.json")

	app := &cli.App{
		ServerURL: srv.URL,
		CredsPath: credsPath,
		Creds:     &config.Credentials{},
	}

	cmd := cli.NewLoginCmd(app)

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	cmd.SetArgs([]string{
		"--email", "alice@example.com",
		"--password", "StrongPass123",
	})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	if got := out.String(); !strings.Contains(got, "login ok (token saved)") {
		t.Fatalf("unexpected output: %q", got)
	}

	// проверим, что токен реально сохранился в файл
	loaded, err := config.Load(credsPath)
	if err != nil {
		t.Fatalf("load creds: %v", err)
	}
	if loaded.Token != "token-1" {
		t.Fatalf("expected Token=token-1, got %q", loaded.Token)
	}
	if loaded.User.Email != "alice@example.com" {
		t.Fatalf("expected saved user, got %+v", loaded.User)
	}
}

func TestNewLoginCmd_MissingRequiredFlags_ReturnsError(t *testing.T) {
	tmpDir := t.TempDir()
	credsPath := filepath.Join(tmpDir, "creds.json")

	app := &cli.App{
		ServerURL: "http://127.0.0.1:3000",
		CredsPath: credsPath,
		Creds:     &config.Credentials{},
	}

	cmd := cli.NewLoginCmd(app)
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{
		"--password", "StrongPass123",
		// --email пропущен
	})

	err := cmd.Execute()
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	// Cobra обычно пишет "required flag(s) \"email\" not set"
	if !strings.Contains(err.Error(), "required") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNewLoginCmd_ServerReturnsError_DoesNotWriteCredsFile(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/login", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(models.ErrorResponse{Error: "invalid email or password"})
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	tmpDir := t.TempDir()
	credsPath := filepath.Join(tmpDir, "creds.json")

	app := &cli.App{
		ServerURL: srv.URL,
		CredsPath: credsPath,
		Creds:     &config.Credentials{},
	}

	cmd := cli.NewLoginCmd(app)
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{
		"--email", "alice@example.com",
		"--password", "wrong-password",
	})

	err := cmd.Execute()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "invalid email or password") {
		t.Fatalf("unexpected error: %v", err)
	}

	// файл с кредами не должен появиться
	if _, statErr := os.Stat(credsPath); !os.IsNotExist(statErr) {
		t.Fatalf("expected no creds file, stat err: %v", statErr)
	}
}
