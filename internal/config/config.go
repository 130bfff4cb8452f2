package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/restful-booker/messaging/internal/cache"
	"github.com/restful-booker/messaging/pkg/authgateway"
	"github.com/restful-booker/messaging/pkg/mq"
	"github.com/restful-booker/messaging/pkg/mysql"
	"github.com/spf13/viper"
)

type Config struct {
	API      API                `mapstructure:"api"`
	Database mysql.Config       `mapstructure:"database"`
	Auth     authgateway.Config `mapstructure:"auth"`
	Redis    cache.Config       `mapstructure:"redis"`
	RabbitMQ mq.Config          `mapstructure:"rabbitmq"`
	Worker   Worker             `mapstructure:"worker"`
}

type API struct {
	Port          string `mapstructure:"port"`
	AutoMigrate   bool   `mapstructure:"auto_migrate"`
	PublishEvents bool   `mapstructure:"publish_events"`
}

type Worker struct {
	Prefetch    int    `mapstructure:"prefetch"`
	MetricsPort string `mapstructure:"metrics_port"`
}

func Load() (*Config, error) {
	return LoadFrom("./config")
}

// LoadFrom reads config.yml from path. Values from a local .env file and the process
// environment override the file, e.g. DATABASE_PASSWORD for database.password.
func LoadFrom(path string) (cfg *Config, err error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yml")
	v.AddConfigPath(path)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err = v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.port", ":3006")
	v.SetDefault("auth.timeout", "5s")
	v.SetDefault("redis.ttl", "1m")
	v.SetDefault("worker.prefetch", 1)
	v.SetDefault("worker.metrics_port", ":9106")
	v.SetDefault("api.publish_events", false)
	v.SetDefault("rabbitmq.dead_letter", true)
}
