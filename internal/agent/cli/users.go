package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewUsersCmd создаёт CLI-команду для просмотра списка пользователей.
//
// Команда запрашивает /api/users и выводит всех зарегистрированных
// пользователей, новые первыми. Авторизация не требуется.
//
// Пример использования:
//
//	dashauth users
func NewUsersCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Список зарегистрированных пользователей",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := NewAPIClient(app.ServerURL)
			resp, err := c.Users()
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "total: %d\n", resp.Count)
			for _, u := range resp.Users {
				created := ""
				if u.CreatedAt != nil {
					created = u.CreatedAt.Format("02.01.2006 15:04")
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  <%s>  %s\n", u.ID, u.Name, u.Email, created)
			}
			return nil
		},
	}

	return cmd
}
