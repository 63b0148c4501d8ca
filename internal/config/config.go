package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/cypherlabdev/chat-bet-parser-service/pkg/chatbet"
)

// Config holds all configuration for chat-bet-parser-service
type Config struct {
	Server  ServerConfig
	Kafka   KafkaConfig
	Redis   RedisConfig
	Parser  ParserConfig
	Logging LoggingConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// KafkaConfig holds Kafka configuration
type KafkaConfig struct {
	Brokers []string
	Topic   string // Topic to consume from (chat_messages)
	GroupID string
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// ParserConfig holds the parsing engine's defaults
type ParserConfig struct {
	DefaultPrice        float64 // price assumed when a k-sized bet has none
	DefaultSeriesLength int
	RotationMin         int
	RotationMax         int
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
}

// LoadConfig loads configuration from file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("server.port", 8082)
	v.SetDefault("server.read_timeout", 30*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)

	v.SetDefault("kafka.brokers", []string{"localhost:9092"})
	v.SetDefault("kafka.topic", "chat_messages")
	v.SetDefault("kafka.group_id", "chat-bet-parser")

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.ttl", 24*time.Hour)

	v.SetDefault("parser.default_price", -110.0)
	v.SetDefault("parser.default_series_length", 3)
	v.SetDefault("parser.rotation_min", 100)
	v.SetDefault("parser.rotation_max", 9999)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	// Read config file if provided
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Override with environment variables
	v.SetEnvPrefix("CHAT_BET_PARSER")
	v.AutomaticEnv()
	// Replace . with _ for environment variables
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Unmarshal to struct
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// ToDefaults converts config to the engine's defaults
func (c *ParserConfig) ToDefaults() chatbet.Defaults {
	return chatbet.Defaults{
		Price:        c.DefaultPrice,
		SeriesLength: c.DefaultSeriesLength,
		RotationMin:  c.RotationMin,
		RotationMax:  c.RotationMax,
	}
}
