package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	YouTube  YouTubeConfig  `yaml:"youtube"`
	AI       AIConfig       `yaml:"ai"`
	Market   MarketConfig   `yaml:"market"`
	Strategy StrategyConfig `yaml:"strategy"`
	Email    EmailConfig    `yaml:"email"`
	Server   ServerConfig   `yaml:"server"`
}

type YouTubeConfig struct {
	APIKey       string `yaml:"api_key" env:"YOUTUBE_API_KEY"`
	ClientID     string `yaml:"client_id" env:"GOOGLE_CLIENT_ID"`
	ClientSecret string `yaml:"client_secret" env:"GOOGLE_CLIENT_SECRET"`
	TokenFile    string `yaml:"token_file"`
}

type AIConfig struct {
	GeminiAPIKey string `yaml:"gemini_api_key" env:"GEMINI_API_KEY"`
	Model        string `yaml:"model"`
}

type MarketConfig struct {
	// Region is passed opaquely to the metadata source.
	Region string `yaml:"region"`
	// MaxResults bounds one scan; the Data API caps search pages at 50.
	MaxResults int64 `yaml:"max_results"`
	// RPM is the estimated revenue per 1,000 views in dollars.
	RPM float64 `yaml:"rpm"`
}

type StrategyConfig struct {
	// TranscriptChars caps the transcript context fed into the prompt,
	// counted in runes so the cut never lands inside a character.
	TranscriptChars int    `yaml:"transcript_chars"`
	Language        string `yaml:"language"`
}

type EmailConfig struct {
	SMTPServer string `yaml:"smtp_server"`
	SMTPPort   int    `yaml:"smtp_port"`
	Username   string `yaml:"username" env:"EMAIL_USERNAME"`
	Password   string `yaml:"password" env:"EMAIL_PASSWORD"`
	FromEmail  string `yaml:"from_email"`
	ToEmail    string `yaml:"to_email"`
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

// Load reads configuration from path (CONFIG_FILE or config.yaml when
// empty), fills secrets from the environment and applies defaults. A
// missing config file is fine; env plus defaults then carry everything.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	if path == "" {
		path = os.Getenv("CONFIG_FILE")
	}
	if path == "" {
		path = "config.yaml"
	}

	var cfg Config
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// Defaults and environment only.
	default:
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

func (c *Config) applyEnv() {
	if c.YouTube.APIKey == "" {
		c.YouTube.APIKey = os.Getenv("YOUTUBE_API_KEY")
	}
	if c.YouTube.ClientID == "" {
		c.YouTube.ClientID = os.Getenv("GOOGLE_CLIENT_ID")
	}
	if c.YouTube.ClientSecret == "" {
		c.YouTube.ClientSecret = os.Getenv("GOOGLE_CLIENT_SECRET")
	}
	if c.AI.GeminiAPIKey == "" {
		c.AI.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	}
	if c.Email.Username == "" {
		c.Email.Username = os.Getenv("EMAIL_USERNAME")
	}
	if c.Email.Password == "" {
		c.Email.Password = os.Getenv("EMAIL_PASSWORD")
	}
}

func (c *Config) applyDefaults() {
	if c.YouTube.TokenFile == "" {
		c.YouTube.TokenFile = "youtube_token.json"
	}
	if c.AI.Model == "" {
		c.AI.Model = "gemini-2.5-flash"
	}
	if c.Market.Region == "" {
		c.Market.Region = "US"
	}
	if c.Market.MaxResults <= 0 {
		c.Market.MaxResults = 25
	}
	if c.Market.MaxResults > 50 {
		c.Market.MaxResults = 50
	}
	if c.Market.RPM == 0 {
		c.Market.RPM = 3.0
	}
	if c.Strategy.TranscriptChars <= 0 {
		c.Strategy.TranscriptChars = 5000
	}
	if c.Strategy.Language == "" {
		c.Strategy.Language = "en"
	}
	if c.Server.Port <= 0 {
		c.Server.Port = 8080
	}
}

func (c *Config) validate() error {
	if c.YouTube.APIKey == "" && (c.YouTube.ClientID == "" || c.YouTube.ClientSecret == "") {
		return fmt.Errorf("YouTube credentials are required (set YOUTUBE_API_KEY, or GOOGLE_CLIENT_ID and GOOGLE_CLIENT_SECRET)")
	}
	if c.Market.RPM < 0 {
		return fmt.Errorf("market.rpm must be greater than zero")
	}
	return nil
}

// RequireAI fails when no Gemini key is configured. The AI side is an
// optional unlock; only strategy operations need it.
func (c *Config) RequireAI() error {
	if c.AI.GeminiAPIKey == "" {
		return fmt.Errorf("Gemini API key is required for strategy generation (set GEMINI_API_KEY or ai.gemini_api_key)")
	}
	return nil
}

// EmailEnabled reports whether the optional report delivery is fully
// configured.
func (c *Config) EmailEnabled() bool {
	return c.Email.SMTPServer != "" && c.Email.Username != "" &&
		c.Email.Password != "" && c.Email.FromEmail != "" && c.Email.ToEmail != ""
}
