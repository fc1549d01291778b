package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App        AppConfig
	DB         DBConfig
	Redis      RedisConfig
	JWT        JWTConfig
	Salesforce SalesforceConfig
	Slack      SlackConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret        string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

// SalesforceConfig holds the AgentForce service-level credentials.
// OrgDomain serves the OAuth token exchange, APIHost the agent API.
type SalesforceConfig struct {
	OrgDomain    string
	APIHost      string
	ClientID     string
	ClientSecret string
	AgentID      string
}

type SlackConfig struct {
	WebhookURL string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	accessExpiry, err := time.ParseDuration(viper.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		accessExpiry = 15 * time.Minute
	}

	refreshExpiry, err := time.ParseDuration(viper.GetString("JWT_REFRESH_EXPIRY"))
	if err != nil {
		refreshExpiry = 7 * 24 * time.Hour
	}

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		DB: DBConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:        viper.GetString("JWT_SECRET"),
			AccessExpiry:  accessExpiry,
			RefreshExpiry: refreshExpiry,
		},
		Salesforce: SalesforceConfig{
			OrgDomain:    viper.GetString("SF_ORG_DOMAIN"),
			APIHost:      viper.GetString("SF_API_HOST"),
			ClientID:     viper.GetString("SF_CLIENT_ID"),
			ClientSecret: viper.GetString("SF_CLIENT_SECRET"),
			AgentID:      viper.GetString("SF_AGENT_ID"),
		},
		Slack: SlackConfig{
			WebhookURL: viper.GetString("SLACK_WEBHOOK_URL"),
		},
	}

	return config, nil
}
