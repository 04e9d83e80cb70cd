package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ErrMissingAPIKey is returned when no LLM credential is available.
var ErrMissingAPIKey = errors.New("GOOGLE_API_KEY environment variable not set")

// Config holds all chatbot configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig
	Logger      LoggerConfig

	// LLM Provider Abstraction
	LLM LLMConfig

	// Data store
	Database DatabaseConfig

	Metrics MetricsConfig
}

type EnvironmentConfig struct {
	Name string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	APIKey          string
	Model           string
	MaxTokens       int
	RequestTimeout  time.Duration
	FallbackEnabled bool
	Providers       []ProviderConfig
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `mapstructure:"name"`
	Enabled  bool   `mapstructure:"enabled"`
	Priority int    `mapstructure:"priority"`
	APIKey   string `mapstructure:"api_key"`
	BaseURL  string `mapstructure:"base_url"`
	Model    string `mapstructure:"model"`
}

type DatabaseConfig struct {
	Driver       string
	DSN          string
	Seed         bool
	MaxOpenConns int
	MaxIdleConns int
}

type MetricsConfig struct {
	PushgatewayURL string
	Job            string
}

// Options tweak Load for a single invocation.
type Options struct {
	// ConfigFile, when set, is read instead of searching the default paths.
	ConfigFile string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/jobfinder-chatbot/
func Load(opts Options) (*Config, error) {
	// A missing .env is normal; existing env vars win over the file.
	_ = godotenv.Load()

	v := viper.New()
	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/jobfinder-chatbot/")
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	_ = v.BindEnv("llm.api_key", "GOOGLE_API_KEY", "GEMINI_API_KEY")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if opts.ConfigFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return build(v)
}

func build(v *viper.Viper) (*Config, error) {
	cfg := &Config{}

	cfg.Environment.Name = v.GetString("environment.name")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	cfg.LLM.APIKey = strings.TrimSpace(v.GetString("llm.api_key"))
	cfg.LLM.Model = v.GetString("llm.model")
	cfg.LLM.MaxTokens = v.GetInt("llm.max_tokens")
	cfg.LLM.RequestTimeout = v.GetDuration("llm.request_timeout")
	cfg.LLM.FallbackEnabled = v.GetBool("llm.fallback_enabled")

	var providers []ProviderConfig
	if err := v.UnmarshalKey("llm.providers", &providers); err != nil {
		return nil, fmt.Errorf("invalid llm.providers: %w", err)
	}
	for _, p := range providers {
		p.APIKey = expandEnvVar(v, p.APIKey)
		cfg.LLM.Providers = append(cfg.LLM.Providers, p)
	}

	// Without an explicit list the chatbot talks to Gemini only.
	if len(cfg.LLM.Providers) == 0 {
		cfg.LLM.Providers = []ProviderConfig{{
			Name:     "gemini",
			Enabled:  true,
			Priority: 1,
			APIKey:   cfg.LLM.APIKey,
			Model:    cfg.LLM.Model,
		}}
	}

	if err := validateLLMConfig(&cfg.LLM); err != nil {
		return nil, err
	}

	cfg.Database.Driver = v.GetString("database.driver")
	cfg.Database.DSN = v.GetString("database.dsn")
	cfg.Database.Seed = v.GetBool("database.seed")
	cfg.Database.MaxOpenConns = v.GetInt("database.max_open_conns")
	cfg.Database.MaxIdleConns = v.GetInt("database.max_idle_conns")

	cfg.Metrics.PushgatewayURL = v.GetString("metrics.pushgateway_url")
	cfg.Metrics.Job = v.GetString("metrics.job")

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.mode", "production")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", false)

	// LLM defaults
	v.SetDefault("llm.model", "gemini-2.5-flash")
	// Zero keeps each provider's own output limit. Gemini 2.5 counts thinking
	// tokens against it, so a small cap can leave no room for the answer.
	v.SetDefault("llm.max_tokens", 0)
	v.SetDefault("llm.request_timeout", "30s")
	v.SetDefault("llm.fallback_enabled", false)

	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.dsn", "jobfinder.db")
	v.SetDefault("database.seed", true)
	v.SetDefault("database.max_open_conns", 1)
	v.SetDefault("database.max_idle_conns", 0)

	v.SetDefault("metrics.job", "jobfinder_chatbot")
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if !provider.Enabled {
			continue
		}
		enabledCount++

		if provider.Model == "" {
			return fmt.Errorf("provider %s: model is required", provider.Name)
		}
		if provider.Priority <= 0 {
			return fmt.Errorf("provider %s: priority must be positive", provider.Name)
		}
		if priorityMap[provider.Priority] {
			return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
		}
		priorityMap[provider.Priority] = true

		if provider.APIKey == "" {
			return fmt.Errorf("provider %s: %w", provider.Name, ErrMissingAPIKey)
		}
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}

	return nil
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(v *viper.Viper, value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return value
	}

	envVar := value[2 : len(value)-1]
	if envValue := os.Getenv(envVar); envValue != "" {
		return envValue
	}
	// GOOGLE_API_KEY may also come from config.yaml as llm.api_key
	if envVar == "GOOGLE_API_KEY" || envVar == "GEMINI_API_KEY" {
		return v.GetString("llm.api_key")
	}
	return ""
}
