package config

import (
	"github.com/kabanov/user-service/pkg/config"
)

// Config содержит конфигурацию сервиса пользователей
type Config struct {
	HTTP       config.HTTPConfig
	Postgres   config.PostgresConfig
	Validation ValidationConfig
}

// ValidationConfig содержит настройки правила допуска
type ValidationConfig struct {
	RejectionMessage string
}

func NewConfig() (*Config, error) {
	// Загружаем общую конфигурацию
	commonConfig := config.LoadCommonConfig("users", "8080")

	return &Config{
		HTTP:     commonConfig.HTTP,
		Postgres: commonConfig.Postgres,
		Validation: ValidationConfig{
			RejectionMessage: config.GetEnv("AUTHORIZATION_REJECT_MESSAGE",
				"Only adult French residents are allowed to create an account"),
		},
	}, nil
}
