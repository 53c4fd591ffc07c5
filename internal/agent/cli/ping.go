package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewPingCmd создаёт CLI-команду для проверки доступности бэкенда.
//
// Команда дёргает тестовый эндпоинт /api/test — тот же, которым дашборд
// проверяет статус ONLINE/OFFLINE.
//
// Пример использования:
//
//	dashauth ping
func NewPingCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ping",
		Short: "Проверка доступности бэкенда",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := NewAPIClient(app.ServerURL)
			resp, err := c.Ping()
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s (server time %s)\n", resp.Message, resp.Timestamp)
			return nil
		},
	}

	return cmd
}
