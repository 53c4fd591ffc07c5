// Package form содержит клиентскую валидацию формы регистрации/входа.
//
// Это перенесённая на CLI логика формы дашборда: проверка имени, email,
// требования к паролю и оценка его стойкости (weak/medium/strong).
// Всё это — чистый UX: сервер из этих правил повторно проверяет только
// минимальную длину пароля, поэтому на безопасность пакет не влияет.
package form

import (
	"errors"
	"regexp"
	"strings"
)

var (
	// 3-30 символов, только буквы и пробелы
	nameRe = regexp.MustCompile(`^[A-Za-z\s]{3,30}$`)
	// обычная «достаточно хорошая» проверка email
	emailRe   = regexp.MustCompile(`(?i)^[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,}$`)
	upperRe   = regexp.MustCompile(`[A-Z]`)
	lowerRe   = regexp.MustCompile(`[a-z]`)
	digitRe   = regexp.MustCompile(`[0-9]`)
	specialRe = regexp.MustCompile(`[!@#$%^&*()_+\-=\[\]{};':"\\|,.<>\/?]`)
)

// Strength — корзина стойкости пароля.
type Strength int

const (
	StrengthWeak Strength = iota
	StrengthMedium
	StrengthStrong
)

func (s Strength) String() string {
	switch s {
	case StrengthStrong:
		return "strong"
	case StrengthMedium:
		return "medium"
	default:
		return "weak"
	}
}

// Requirements — набор требований к паролю, каждое проверяется отдельно,
// чтобы форма могла подсветить что именно не выполнено.
type Requirements struct {
	Length    bool // длина >= 8
	Uppercase bool // есть заглавная буква
	Lowercase bool // есть строчная буква
	Number    bool // есть цифра
	Special   bool // есть спецсимвол
}

// Met возвращает количество выполненных требований (0..5).
func (r Requirements) Met() int {
	n := 0
	for _, ok := range []bool{r.Length, r.Uppercase, r.Lowercase, r.Number, r.Special} {
		if ok {
			n++
		}
	}
	return n
}

// CheckRequirements проверяет пароль по каждому требованию отдельно.
func CheckRequirements(password string) Requirements {
	return Requirements{
		Length:    len(password) >= 8,
		Uppercase: upperRe.MatchString(password),
		Lowercase: lowerRe.MatchString(password),
		Number:    digitRe.MatchString(password),
		Special:   specialRe.MatchString(password),
	}
}

// PasswordStrength оценивает стойкость пароля по количеству выполненных
// требований: <=2 — weak, <=4 — medium, все 5 — strong.
func PasswordStrength(password string) Strength {
	switch n := CheckRequirements(password).Met(); {
	case n <= 2:
		return StrengthWeak
	case n <= 4:
		return StrengthMedium
	default:
		return StrengthStrong
	}
}

// ValidateName проверяет имя пользователя.
func ValidateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New("name is required")
	}
	if !nameRe.MatchString(name) {
		return errors.New("name must be 3-30 letters only")
	}
	return nil
}

// ValidateEmail проверяет синтаксис email.
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return errors.New("email is required")
	}
	if !emailRe.MatchString(email) {
		return errors.New("enter a valid email address")
	}
	return nil
}

// ValidatePassword проверяет пароль перед регистрацией:
// обязателен, не короче 8 символов и не совсем слабый.
func ValidatePassword(password string) error {
	if password == "" {
		return errors.New("password is required")
	}
	if len(password) < 8 {
		return errors.New("password must be at least 8 characters")
	}
	if PasswordStrength(password) == StrengthWeak {
		return errors.New("password is too weak")
	}
	return nil
}

// ValidateConfirm проверяет совпадение пароля и его подтверждения.
func ValidateConfirm(password, confirm string) error {
	if confirm == "" {
		return errors.New("please confirm your password")
	}
	if password != confirm {
		return errors.New("passwords do not match")
	}
	return nil
}
