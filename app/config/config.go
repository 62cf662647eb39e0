package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/samber/oops"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server  Server      `yaml:"server"`
	Log     Log         `yaml:"log"`
	OpenAI  ModelConfig `yaml:"openai" validate:"required"`
	Bitrix  Bitrix      `yaml:"bitrix"`
	Catalog Catalog     `yaml:"catalog"`
	MCP     MCP         `yaml:"mcp"`
}

type Server struct {
	// Address to serve the HTTP API on
	Listen string `yaml:"listen" example:":8000"`
}

type ModelConfig struct {
	// OpenAI base url
	BaseURL string `yaml:"base_url" example:"https://api.openai.com/v1" validate:"required"`
	// OpenAI token
	Token string `yaml:"token" example:"sk-proj-abc123456789DEF789ghi012JKL345mno678PQR901stu234VWX" validate:"required"`
	// OpenAI model
	Model string `yaml:"model" example:"gpt-4" validate:"required"`
}

type Bitrix struct {
	// Bitrix24 incoming webhook URL for lead creation
	WebhookURL string `yaml:"webhook_url" example:"https://example.bitrix24.by/rest/1/abc123def456/crm.lead.add.json" validate:"required"`
}

type Catalog struct {
	// Path to the product catalog file, loaded once at startup
	File string `yaml:"file" example:"data/products.json"`
	// Command that regenerates the catalog file, empty disables the refresh loop
	RefreshCommand []string `yaml:"refresh_command"`
	// Delay between refresh runs, in seconds
	RefreshIntervalSeconds int `yaml:"refresh_interval_seconds" example:"4000"`
}

type MCP struct {
	// Address to serve catalog tools over MCP SSE, empty disables it
	Listen string `yaml:"listen" example:":8090"`
}

type Log struct {
	// Telegram logging config
	Telegram TelegramLog `yaml:"telegram"`
}

type TelegramLog struct {
	// Chat bot token, obtain it via BotFather
	Token string `yaml:"token" example:"1234567890:ABCdefGHIjklMNopQRstUVwxyZ-123456789"`
	// Chat ID to send messages to
	ChatID string `yaml:"chat_id" example:"1001234567890"`
}

func Load() (*Config, error) {
	var result Config

	data, err := os.ReadFile("config.yaml")
	if err != nil {
		return nil, oops.Errorf("failed to read config file: %w", err)
	}

	if err = yaml.Unmarshal(data, &result); err != nil {
		return nil, oops.Errorf("failed to parse YAML config: %w", err)
	}

	if result.Server.Listen == "" {
		result.Server.Listen = ":8000"
	}
	if result.Catalog.File == "" {
		result.Catalog.File = "data/products.json"
	}
	if result.Catalog.RefreshIntervalSeconds == 0 {
		result.Catalog.RefreshIntervalSeconds = 4000
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(result); err != nil {
		return nil, oops.Errorf("failed to validate config: %w", err)
	}

	return &result, nil
}
