package main

import (
	"github.com/spf13/cobra"

	pkgconfig "gonotes/pkg/config"
)

func newRootCmd() *cobra.Command {
	var envFile string

	rootCmd := &cobra.Command{
		Use:   "gonotes",
		Short: "gonotes - HTTP сервис заметок с регистрацией и JWT",
		Long: `gonotes хранит заметки пользователей в PostgreSQL.

Без подкоманды запускается HTTP сервер (как "gonotes serve").
Настройки читаются из переменных окружения NOTES_* и необязательного .env файла.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), envFile)
		},
	}

	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", pkgconfig.DefaultEnvFile, "путь к .env файлу")

	rootCmd.AddCommand(newServeCmd(&envFile), newMigrateCmd(&envFile))
	return rootCmd
}
