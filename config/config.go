package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server       Server
	Database     Database
	GeminiApiKey string
	LLM          LLM
	JWTSecret    string
}

type Server struct {
	Port string
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type LLM struct {
	DefaultModel   string
	TimeoutSeconds int
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("DATABASE_SSLMODE", "disable")
	viper.SetDefault("LLM_DEFAULT_MODEL", "gemini-1.5-flash")
	viper.SetDefault("LLM_TIMEOUT_SECONDS", 60)

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")
	config.Database.SSLMode = viper.GetString("DATABASE_SSLMODE")

	config.GeminiApiKey = viper.GetString("GEMINI_API_KEY")
	config.LLM.DefaultModel = viper.GetString("LLM_DEFAULT_MODEL")
	config.LLM.TimeoutSeconds = viper.GetInt("LLM_TIMEOUT_SECONDS")

	config.JWTSecret = viper.GetString("JWT_SECRET")
	if config.JWTSecret == "" {
		log.Warn().Msg("JWT_SECRET is not set. Authenticated endpoints will reject all requests.")
	}

	log.Info().Str("port", config.Server.Port).Str("default_model", config.LLM.DefaultModel).Msg("Config loaded")
	return &config, nil
}
