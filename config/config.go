package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	Throttle   ThrottleConfig

	// FilmBuff specifics
	TMDb      TMDbConfig
	Cache     CacheConfig
	RateLimit RateLimitConfig
	Pipeline  PipelineConfig
	Telegram  TelegramConfig

	// LLM Provider Abstraction
	LLM LLMConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// ThrottleConfig bounds per-client HTTP request rates, independent of the
// process-wide query limiter.
type ThrottleConfig struct {
	Enabled        bool
	RequestsPerMin int
	Burst          int
	MaxClients     int
	ClientTTL      time.Duration
}

type TMDbConfig struct {
	APIKey           string
	BaseURL          string
	Language         string
	Timeout          time.Duration
	ResponseCacheTTL time.Duration
}

const (
	CacheBackendFile  = "file"
	CacheBackendRedis = "redis"
)

type CacheConfig struct {
	Backend  string
	FilePath string
	Expiry   time.Duration
	// MaxSize of 0 keeps the table unbounded.
	MaxSize int
	Redis   RedisConfig
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Key      string
}

type RateLimitConfig struct {
	MaxCalls int
	Period   time.Duration
}

type PipelineConfig struct {
	MinResultLength      int
	InstructionMaxLength int
	SynthesisMaxLength   int
	HandlerTimeout       time.Duration
}

type TelegramConfig struct {
	BotToken   string
	WebhookURL string
	// SecretToken is echoed by Telegram in X-Telegram-Bot-Api-Secret-Token.
	SecretToken string
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"`
	Temperature     float64          `yaml:"temperature"`
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/filmbuff/
func Load() (*Config, error) {
	return LoadFrom("")
}

// LoadFrom reads the config file at path, or searches the default
// locations when path is empty. A missing explicit file is an error.
func LoadFrom(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath("./config")
		viper.AddConfigPath(".")
		viper.AddConfigPath("/etc/filmbuff/")
	}

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.ShutdownTimeout = viper.GetDuration("http_server.shutdown_timeout")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.Throttle.Enabled = viper.GetBool("throttle.enabled")
	cfg.Throttle.RequestsPerMin = viper.GetInt("throttle.requests_per_min")
	cfg.Throttle.Burst = viper.GetInt("throttle.burst")
	cfg.Throttle.MaxClients = viper.GetInt("throttle.max_clients")
	cfg.Throttle.ClientTTL = viper.GetDuration("throttle.client_ttl")

	// TMDb
	cfg.TMDb.APIKey = expandEnvVar(viper.GetString("tmdb.api_key"))
	if tmdbKey := viper.GetString("tmdb_api_key"); tmdbKey != "" {
		cfg.TMDb.APIKey = tmdbKey
	}
	cfg.TMDb.BaseURL = viper.GetString("tmdb.base_url")
	cfg.TMDb.Language = viper.GetString("tmdb.language")
	cfg.TMDb.Timeout = viper.GetDuration("tmdb.timeout")
	cfg.TMDb.ResponseCacheTTL = viper.GetDuration("tmdb.response_cache_ttl")

	// Response cache
	cfg.Cache.Backend = strings.ToLower(viper.GetString("cache.backend"))
	cfg.Cache.FilePath = viper.GetString("cache.file_path")
	cfg.Cache.Expiry = viper.GetDuration("cache.expiry")
	cfg.Cache.MaxSize = viper.GetInt("cache.max_size")
	cfg.Cache.Redis.Addr = viper.GetString("cache.redis.addr")
	cfg.Cache.Redis.Password = expandEnvVar(viper.GetString("cache.redis.password"))
	cfg.Cache.Redis.DB = viper.GetInt("cache.redis.db")
	cfg.Cache.Redis.Key = viper.GetString("cache.redis.key")

	// Query admission
	cfg.RateLimit.MaxCalls = viper.GetInt("rate_limit.max_calls")
	cfg.RateLimit.Period = viper.GetDuration("rate_limit.period")

	cfg.Pipeline.MinResultLength = viper.GetInt("pipeline.min_result_length")
	cfg.Pipeline.InstructionMaxLength = viper.GetInt("pipeline.instruction_max_length")
	cfg.Pipeline.SynthesisMaxLength = viper.GetInt("pipeline.synthesis_max_length")
	cfg.Pipeline.HandlerTimeout = viper.GetDuration("pipeline.handler_timeout")

	cfg.Telegram.BotToken = expandEnvVar(viper.GetString("telegram.bot_token"))
	cfg.Telegram.WebhookURL = viper.GetString("telegram.webhook_url")
	cfg.Telegram.SecretToken = expandEnvVar(viper.GetString("telegram.secret_token"))
	if tgToken := viper.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = viper.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = viper.GetString("llm.max_total_timeout")
	cfg.LLM.Temperature = viper.GetFloat64("llm.temperature")

	if viper.IsSet("llm.providers") {
		providersRaw := viper.Get("llm.providers")
		if providersList, ok := providersRaw.([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					provider := ProviderConfig{
						Name:     getStringFromMap(providerMap, "name"),
						Enabled:  getBoolFromMap(providerMap, "enabled"),
						Priority: getIntFromMap(providerMap, "priority"),
						APIKey:   expandEnvVar(getStringFromMap(providerMap, "api_key")),
						BaseURL:  getStringFromMap(providerMap, "base_url"),
						Model:    getStringFromMap(providerMap, "model"),
						Timeout:  getStringFromMap(providerMap, "timeout"),
					}
					cfg.LLM.Providers = append(cfg.LLM.Providers, provider)
				}
			}
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.shutdown_timeout", "15s")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("throttle.enabled", true)
	viper.SetDefault("throttle.requests_per_min", 60)
	viper.SetDefault("throttle.burst", 10)
	viper.SetDefault("throttle.max_clients", 1000)
	viper.SetDefault("throttle.client_ttl", "5m")

	viper.SetDefault("tmdb.base_url", "https://api.themoviedb.org/3")
	viper.SetDefault("tmdb.language", "en-US")
	viper.SetDefault("tmdb.timeout", "15s")
	viper.SetDefault("tmdb.response_cache_ttl", "10m")

	viper.SetDefault("cache.backend", CacheBackendFile)
	viper.SetDefault("cache.file_path", "query_cache.json")
	viper.SetDefault("cache.expiry", "168h")
	viper.SetDefault("cache.max_size", 0)
	viper.SetDefault("cache.redis.addr", "localhost:6379")
	viper.SetDefault("cache.redis.key", "filmbuff:query_cache")

	viper.SetDefault("rate_limit.max_calls", 5)
	viper.SetDefault("rate_limit.period", "60s")

	viper.SetDefault("pipeline.min_result_length", 50)
	viper.SetDefault("pipeline.instruction_max_length", 300)
	viper.SetDefault("pipeline.synthesis_max_length", 2000)
	viper.SetDefault("pipeline.handler_timeout", "90s")

	// LLM defaults
	viper.SetDefault("llm.fallback_enabled", true)
	viper.SetDefault("llm.retry_attempts", 3)
	viper.SetDefault("llm.retry_delay", "1s")
	viper.SetDefault("llm.max_total_timeout", "120s")
	viper.SetDefault("llm.temperature", 0.7)
}

func (c *Config) validate() error {
	if err := validateLLMConfig(&c.LLM); err != nil {
		return err
	}

	switch c.Cache.Backend {
	case CacheBackendFile:
		if c.Cache.FilePath == "" {
			return fmt.Errorf("cache.file_path is required for the file backend")
		}
	case CacheBackendRedis:
		if c.Cache.Redis.Addr == "" {
			return fmt.Errorf("cache.redis.addr is required for the redis backend")
		}
	default:
		return fmt.Errorf("unknown cache.backend %q", c.Cache.Backend)
	}

	if c.Cache.Expiry <= 0 {
		return fmt.Errorf("cache.expiry must be positive")
	}
	if c.Cache.MaxSize < 0 {
		return fmt.Errorf("cache.max_size must not be negative")
	}
	if c.RateLimit.MaxCalls <= 0 || c.RateLimit.Period <= 0 {
		return fmt.Errorf("rate_limit.max_calls and rate_limit.period must be positive")
	}
	if c.Pipeline.MinResultLength < 0 || c.Pipeline.InstructionMaxLength <= 0 || c.Pipeline.SynthesisMaxLength <= 0 {
		return fmt.Errorf("invalid pipeline length limits")
	}

	return nil
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}.
// Unset variables expand to "".
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
		// an unset placeholder means "not configured"
		return ""
	}

	return value
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("no LLM providers configured - please add llm.providers section to config.yaml")
	}

	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if provider.Model == "" {
			return fmt.Errorf("provider %s: model is required", provider.Name)
		}

		if provider.Enabled {
			enabledCount++

			if provider.Priority <= 0 {
				return fmt.Errorf("provider %s: priority must be positive", provider.Name)
			}

			if priorityMap[provider.Priority] {
				return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
			}
			priorityMap[provider.Priority] = true
		}
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}

	return nil
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
