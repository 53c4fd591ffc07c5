package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-dashboard-auth/internal/agent/config"
)

// NewLoginCmd создаёт CLI-команду для входа пользователя в систему.
//
// Команда выполняет аутентификацию пользователя на сервере,
// получает bearer токен и сохраняет его в локальный конфигурационный файл.
//
// Для выполнения команды требуется указать обязательный флаг --email.
// Пароль можно передать флагом --password, иначе он будет запрошен
// интерактивно со скрытым вводом.
//
// Пример использования:
//
//	dashauth login --email alice@example.com
//
// В случае успешного выполнения токен сохраняется локально, а пользователю
// выводится сообщение об успешном входе.
func NewLoginCmd(app *App) *cobra.Command {
	var email, password string
	var passwordStdin bool

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Логин пользователя (получить bearer токен)",
		Long: `Логин пользователя.

Пример:
  dashauth login --email alice@example.com
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				pw, err := readPasswordInput(cmd, passwordStdin)
				if err != nil {
					return err
				}
				password = pw
			}

			// создаём API-клиент для общения с сервером
			c := NewAPIClient(app.ServerURL)
			// выполняем логин пользователя
			resp, err := c.Login(email, password)
			if err != nil {
				return err
			}

			// сохраняем полученный токен в состоянии приложения
			app.Creds.Token = resp.Token
			app.Creds.User = resp.User

			// сохраняем токен в локальный конфигурационный файл
			if err := config.Save(app.CredsPath, app.Creds); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "login ok (token saved)")
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email for login")
	cmd.Flags().StringVar(&password, "password", "", "password (omit to enter interactively)")
	cmd.Flags().BoolVar(&passwordStdin, "password-stdin", false, "read password from stdin (for scripts)")
	cmd.MarkFlagRequired("email")

	return cmd
}
