package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/IvanChernomyrdin/go-dashboard-auth/internal/agent/config"
	"github.com/IvanChernomyrdin/go-dashboard-auth/internal/agent/form"
)

// NewRegisterCmd создаёт CLI-команду для регистрации нового пользователя.
//
// Команда повторяет поведение формы регистрации дашборда: сперва локально
// проверяет имя, email и пароль (включая оценку стойкости), и только потом
// отправляет запрос на сервер. Пароль можно передать флагом --password,
// иначе он будет запрошен интерактивно со скрытым вводом.
//
// Пример использования:
//
//	dashauth register --name "Alice Smith" --email alice@example.com
//
// В случае успешной регистрации bearer токен сохраняется в локальном конфиге
// и пользователь сразу аутентифицирован.
func NewRegisterCmd(app *App) *cobra.Command {
	var name, email, password string
	var passwordStdin bool

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Регистрация нового пользователя",
		Long: `Регистрация нового пользователя на сервере.

Пример:
  dashauth register --name "Alice Smith" --email alice@example.com
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// локальная валидация формы — как в браузерной версии
			if err := form.ValidateName(name); err != nil {
				return err
			}
			if err := form.ValidateEmail(email); err != nil {
				return err
			}

			if password == "" {
				pw, err := readPasswordInput(cmd, passwordStdin)
				if err != nil {
					return err
				}
				password = pw
			}
			if err := form.ValidatePassword(password); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "password strength: %s\n", form.PasswordStrength(password))

			c := NewAPIClient(app.ServerURL)
			// выполняет добавление нового пользователя в бд
			resp, err := c.Register(name, email, password)
			if err != nil {
				return err
			}

			// сохраняем токен: после регистрации пользователь уже залогинен
			app.Creds.Token = resp.Token
			app.Creds.User = resp.User
			if err := config.Save(app.CredsPath, app.Creds); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "registration successful (user %s)\n", resp.User.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&email, "email", "", "email for registration")
	cmd.Flags().StringVar(&password, "password", "", "password (omit to enter interactively)")
	cmd.Flags().BoolVar(&passwordStdin, "password-stdin", false, "read password from stdin (for scripts)")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("email")

	return cmd
}

// readPasswordInput читает пароль для регистрации/логина.
//
// Режимы:
//   - fromStdin=true: читает пароль из STDIN полностью (удобно для скриптов/CI);
//   - fromStdin=false: читает пароль интерактивно из терминала со скрытым вводом.
//
// Важно:
//   - если fromStdin=false, но stdin не является терминалом, функция вернёт ошибку
//     "stdin is not a terminal; use --password-stdin".
//   - пустой пароль считается ошибкой.
func readPasswordInput(cmd *cobra.Command, fromStdin bool) (string, error) {
	if fromStdin {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read password from stdin: %w", err)
		}
		pw := bytes.TrimRight(b, "\r\n")
		if len(pw) == 0 {
			return "", errors.New("empty password on stdin")
		}
		return string(pw), nil
	}

	return ReadPassword(cmd, "Password: ")
}

// readPassword читает пароль из терминала со скрытым вводом.
func readPassword(cmd *cobra.Command, prompt string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", errors.New("stdin is not a terminal; use --password-stdin")
	}

	fmt.Fprint(cmd.ErrOrStderr(), prompt)
	pwBytes, err := term.ReadPassword(fd)
	fmt.Fprintln(cmd.ErrOrStderr())
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}

	pw := strings.TrimSpace(string(pwBytes))
	if pw == "" {
		return "", errors.New("empty password")
	}
	return pw, nil
}
