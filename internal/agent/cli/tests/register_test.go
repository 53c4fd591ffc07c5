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

func TestNewRegisterCmd_Success_SavesTokenAndPrintsStrength(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/register", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Name     string `json:"name"`
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Name != "Alice Smith" {
			t.Fatalf("expected name Alice Smith, got %q", req.Name)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.AuthResponse{
			Success: true,
			Message: "registration successful",
			Token:   "token-1",
			User:    models.UserView{ID: "id-1", Name: "Alice Smith", Email: "alice@example.com"},
		})
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

	cmd := cli.NewRegisterCmd(app)

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	cmd.SetArgs([]string{
		"--name", "Alice Smith",
		"--email", "alice@example.com",
		"--password", "StrongPass123!",
	})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "password strength: strong") {
		t.Fatalf("expected strength in output, got %q", got)
	}
	if !strings.Contains(got, "registration successful (user alice@example.com)") {
		t.Fatalf("unexpected output: %q", got)
	}

	// после регистрации пользователь уже залогинен
	loaded, err := config.Load(credsPath)
	if err != nil {
		t.Fatalf("load creds: %v", err)
	}
	if loaded.Token != "token-1" {
		t.Fatalf("expected Token=token-1, got %q", loaded.Token)
	}
}

// Валидация формы срабатывает до похода на сервер
func TestNewRegisterCmd_InvalidForm_NoServerCall(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("server must not be called")
	}))
	defer srv.Close()

	tmpDir := t.TempDir()

	app := &cli.App{
		ServerURL: srv.URL,
		CredsPath: filepath.Join(tmpDir, "creds.json"),
		Creds:     &config.Credentials{},
	}

	cases := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "цифры в имени",
			args: []string{"--name", "Alice123", "--email", "alice@example.com", "--password", "StrongPass123!"},
			want: "name must be 3-30 letters only",
		},
		{
			name: "кривой email",
			args: []string{"--name", "Alice Smith", "--email", "not-an-email", "--password", "StrongPass123!"},
			want: "enter a valid email address",
		},
		{
			name: "слабый пароль",
			args: []string{"--name", "Alice Smith", "--email", "alice@example.com", "--password", "aaaaaaaa"},
			want: "password is too weak",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cmd := cli.NewRegisterCmd(app)
			cmd.SetOut(new(bytes.Buffer))
			cmd.SetErr(new(bytes.Buffer))
			cmd.SetArgs(tc.args)

			err := cmd.Execute()
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected %q, got: %v", tc.want, err)
			}
		})
	}
}

// Пароль можно передать через stdin (для скриптов)
func TestNewRegisterCmd_PasswordStdin(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/register", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Password string `json:"password"`
		}
		json.NewDecoder(r.Body).Decode(&req)
		if req.Password != "StrongPass123!" {
			t.Fatalf("expected password from stdin, got %q", req.Password)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.AuthResponse{
			Success: true,
			Token:   "token-1",
			User:    models.UserView{Email: "alice@example.com"},
		})
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	tmpDir := t.TempDir()

	app := &cli.App{
		ServerURL: srv.URL,
		CredsPath: filepath.Join(tmpDir, "creds.json"),
		Creds:     &config.Credentials{},
	}

	cmd := cli.NewRegisterCmd(app)
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetIn(strings.NewReader("StrongPass123!\n"))
	cmd.SetArgs([]string{
		"--name", "Alice Smith",
		"--email", "alice@example.com",
		"--password-stdin",
	})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}
