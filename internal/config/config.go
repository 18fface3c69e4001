package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Content ContentConfig `json:"content"`
	Mail    MailConfig    `json:"mail"`
	Site    SiteConfig    `json:"site"`
}

// ContentConfig points at the hosted Sanity dataset the recipes live in.
type ContentConfig struct {
	ProjectID  string `json:"project_id"`
	Dataset    string `json:"dataset"`
	APIVersion string `json:"api_version"`
	Token      string `json:"token"` // only needed for private datasets
	UseCDN     bool   `json:"use_cdn"`
}

type MailConfig struct {
	SendGridKey string `json:"sendgrid_key"`
	From        string `json:"from"`
	FromName    string `json:"from_name"`
}

type SiteConfig struct {
	Domain string `json:"domain"`
}

func Load() (*Config, error) {
	// .env is optional, real deployments use the environment directly
	_ = godotenv.Load()

	config := &Config{
		Content: ContentConfig{
			ProjectID:  os.Getenv("SANITY_PROJECT_ID"),
			Dataset:    getEnvOrDefault("SANITY_DATASET", "production"),
			APIVersion: getEnvOrDefault("SANITY_API_VERSION", "2024-01-01"),
			Token:      os.Getenv("SANITY_TOKEN"),
			UseCDN:     os.Getenv("SANITY_USE_LIVE_API") == "",
		},
		Mail: MailConfig{
			SendGridKey: os.Getenv("SENDGRID_API_KEY"),
			From:        getEnvOrDefault("MAIL_FROM", "kitchen@hearth.recipes"),
			FromName:    getEnvOrDefault("MAIL_FROM_NAME", "Hearth"),
		},
		Site: SiteConfig{
			Domain: getEnvOrDefault("SITE_DOMAIN", "https://hearth.recipes"),
		},
	}

	if config.Content.ProjectID == "" {
		return nil, fmt.Errorf("SANITY_PROJECT_ID is required")
	}

	return config, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
