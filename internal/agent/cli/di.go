package cli

import (
	"github.com/IvanChernomyrdin/go-dashboard-auth/internal/agent/api"
	"github.com/spf13/cobra"
)

// для тестов
var (
	NewAPIClient = api.NewClient
	ReadPassword = func(cmd *cobra.Command, prompt string) (string, error) {
		return readPassword(cmd, prompt)
	}
)
