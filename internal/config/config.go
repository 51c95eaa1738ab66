package config

import (
	"fmt"
	"os"
	"time"

	"github.com/samuelerdtman/la-palabra-del-dia/pkg/validator"
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig      `mapstructure:"app" validate:"required"`
	Mongo    MongoConfig    `mapstructure:"mongo" validate:"required"`
	SMTP     SMTPConfig     `mapstructure:"smtp"`
	Pushover PushoverConfig `mapstructure:"pushover"`
	Env      string         `mapstructure:"env" validate:"oneof=development production staging"`
}

type AppConfig struct {
	Port         string        `mapstructure:"port" validate:"required"`
	BaseURL      string        `mapstructure:"base_url" validate:"required,url"`
	Timeout      time.Duration `mapstructure:"timeout" validate:"min=1"`
	ReminderHour int           `mapstructure:"reminder_hour" validate:"min=0,max=23"`
}

type MongoConfig struct {
	URI      string `mapstructure:"uri" validate:"required"`
	Database string `mapstructure:"database" validate:"required"`
}

type SMTPConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
}

type PushoverConfig struct {
	Token string `mapstructure:"token"`
}

func Init() (*Config, error) {
	v := viper.New()

	v.AutomaticEnv()

	configName := os.Getenv("CONFIG_NAME")
	if configName == "" {
		configName = "default"
	}

	v.AddConfigPath("configs")
	v.SetConfigName(configName)

	binds := map[string]string{
		"app.port":       "PORT",
		"app.base_url":   "BASE_URL",
		"mongo.uri":      "MONGO_URI",
		"mongo.database": "MONGO_DB",
		"smtp.host":      "SMTP_HOST",
		"smtp.port":      "SMTP_PORT",
		"smtp.username":  "SMTP_USERNAME",
		"smtp.password":  "SMTP_PASSWORD",
		"smtp.from":      "SMTP_FROM",
		"pushover.token": "PUSHOVER_TOKEN",
	}
	for key, env := range binds {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Config{}

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.ValidateStruct(cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
