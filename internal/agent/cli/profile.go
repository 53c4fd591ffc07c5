package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewProfileCmd создаёт CLI-команду для просмотра профиля текущего пользователя.
//
// Команда использует сохранённый bearer токен для запроса защищённого
// эндпоинта /api/profile. Перед выполнением требуется, чтобы токен уже был
// сохранён (после выполнения команды login или register).
//
// Пример использования:
//
//	dashauth profile
//
// Если токен отсутствует в конфигурации, команда завершится
// с ошибкой и предложит выполнить вход (login).
func NewProfileCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Профиль текущего пользователя",
		Long: `Показывает профиль пользователя, которому принадлежит сохранённый токен.

Пример:
  dashauth profile
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Creds.Token == "" {
				return fmt.Errorf("no token in config, run: dashauth login")
			}

			c := NewAPIClient(app.ServerURL)
			resp, err := c.Profile(app.Creds.Token)
			if err != nil {
				return err
			}

			u := resp.User
			fmt.Fprintf(cmd.OutOrStdout(), "id:    %s\n", u.ID)
			fmt.Fprintf(cmd.OutOrStdout(), "name:  %s\n", u.Name)
			fmt.Fprintf(cmd.OutOrStdout(), "email: %s\n", u.Email)
			if u.CreatedAt != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "since: %s\n", u.CreatedAt.Format("02.01.2006"))
			}
			return nil
		},
	}

	return cmd
}
