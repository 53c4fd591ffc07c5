package tests

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgconn"

	"github.com/IvanChernomyrdin/go-dashboard-auth/internal/server/repository"
	serr "github.com/IvanChernomyrdin/go-dashboard-auth/internal/shared/errors"
)

// Успех
func TestUsersRepository_Create_OK(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewUsersRepository(db)

	id := uuid.New()

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("Alice Smith", "alice@example.com", "hash").
		WillReturnRows(
			sqlmock.NewRows([]string{"id"}).AddRow(id),
		)

	got, err := repo.Create(context.Background(), "Alice Smith", "alice@example.com", "hash")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != id {
		t.Fatalf("expected %v, got %v", id, got)
	}
}

// Email уже занят
func TestUsersRepository_Create_AlreadyExists(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewUsersRepository(db)

	pgErr := &pgconn.PgError{
		Code: "23505", // unique_violation
	}

	mock.ExpectQuery(`INSERT INTO users`).
		WillReturnError(pgErr)

	_, err := repo.Create(context.Background(), "Alice", "alice@example.com", "hash")

	if err != serr.ErrAlreadyExists {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

// Ошибка сервера
func TestUsersRepository_Create_InternalError(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewUsersRepository(db)

	mock.ExpectQuery(`INSERT INTO users`).
		WillReturnError(sql.ErrConnDone)

	_, err := repo.Create(context.Background(), "Alice", "alice@example.com", "hash")

	if err != serr.ErrInternal {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}

// поиск по email (с хэшем — для логина)
func TestUsersRepository_GetByEmail_OK(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewUsersRepository(db)

	id := uuid.New()
	created := time.Now()

	mock.ExpectQuery(`SELECT id, name, email, password_hash, created_at FROM users`).
		WithArgs("alice@example.com").
		WillReturnRows(
			sqlmock.NewRows([]string{"id", "name", "email", "password_hash", "created_at"}).
				AddRow(id, "Alice", "alice@example.com", "hash", created),
		)

	got, err := repo.GetByEmail(context.Background(), "alice@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != id || got.PasswordHash != "hash" || got.Email != "alice@example.com" {
		t.Fatalf("unexpected result: %+v", got)
	}
}

// не найден по email
func TestUsersRepository_GetByEmail_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewUsersRepository(db)

	mock.ExpectQuery(`SELECT id, name, email, password_hash, created_at FROM users`).
		WithArgs("nobody@example.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByEmail(context.Background(), "nobody@example.com")

	if err != serr.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

// email сравнивается как есть, без приведения регистра
func TestUsersRepository_GetByEmail_CaseSensitive(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewUsersRepository(db)

	// ровно тот email, что передали — никакого ToLower
	mock.ExpectQuery(`SELECT id, name, email, password_hash, created_at FROM users`).
		WithArgs("Alice@Example.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByEmail(context.Background(), "Alice@Example.com")

	if err != serr.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

// профиль по id (без хэша)
func TestUsersRepository_GetByID_OK(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewUsersRepository(db)

	id := uuid.New()
	created := time.Now()

	mock.ExpectQuery(`SELECT id, name, email, created_at FROM users`).
		WithArgs(id).
		WillReturnRows(
			sqlmock.NewRows([]string{"id", "name", "email", "created_at"}).
				AddRow(id, "Alice", "alice@example.com", created),
		)

	got, err := repo.GetByID(context.Background(), id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != id || got.PasswordHash != "" {
		t.Fatalf("unexpected result: %+v", got)
	}
}

// пользователь удалён
func TestUsersRepository_GetByID_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewUsersRepository(db)

	id := uuid.New()

	mock.ExpectQuery(`SELECT id, name, email, created_at FROM users`).
		WithArgs(id).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), id)

	if err != serr.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

// список пользователей
func TestUsersRepository_List_OK(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewUsersRepository(db)

	newer := uuid.New()
	older := uuid.New()
	now := time.Now()

	mock.ExpectQuery(`SELECT id, name, email, created_at FROM users ORDER BY created_at DESC`).
		WillReturnRows(
			sqlmock.NewRows([]string{"id", "name", "email", "created_at"}).
				AddRow(newer, "Bob", "bob@example.com", now).
				AddRow(older, "Alice", "alice@example.com", now.Add(-time.Hour)),
		)

	users, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	// новые первыми
	if users[0].ID != newer || users[1].ID != older {
		t.Fatalf("unexpected order: %+v", users)
	}
}

// пустая таблица — не ошибка
func TestUsersRepository_List_Empty(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewUsersRepository(db)

	mock.ExpectQuery(`SELECT id, name, email, created_at FROM users ORDER BY created_at DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "created_at"}))

	users, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users) != 0 {
		t.Fatalf("expected no users, got %d", len(users))
	}
}

// база недоступна
func TestUsersRepository_List_InternalError(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewUsersRepository(db)

	mock.ExpectQuery(`SELECT id, name, email, created_at FROM users`).
		WillReturnError(sql.ErrConnDone)

	_, err := repo.List(context.Background())

	if err != serr.ErrInternal {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}
