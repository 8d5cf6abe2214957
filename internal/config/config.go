package config

import (
	"strings"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

// Config carries all process-wide settings. It is loaded once in main and
// passed to constructors; nothing reads the environment after startup.
type Config struct {
	ServerAddr string `env:"SERVER_ADDR,default=:8080"`

	MySQLDSN string `env:"MYSQL_DSN,default=user:password@tcp(127.0.0.1:3306)/equilearn?charset=utf8mb4&parseTime=True"`

	RedisAddr     string `env:"REDIS_ADDR,default=127.0.0.1:6379"`
	RedisPassword string `env:"REDIS_PASSWORD,default="`
	RedisDB       int    `env:"REDIS_DB,default=0"`

	AccessSecret  string `env:"JWT_ACCESS_SECRET,default=secret-key"`
	RefreshSecret string `env:"JWT_REFRESH_SECRET,default=refresh-key"`

	KafkaBrokers string `env:"KAFKA_BROKERS,default="` // comma separated; empty disables the relayer's Kafka sender
	KafkaTopic   string `env:"KAFKA_TOPIC,default=equilearn.donations"`

	SMTPHost     string `env:"SMTP_HOST,default="`
	SMTPPort     int    `env:"SMTP_PORT,default=587"`
	SMTPUsername string `env:"SMTP_USERNAME,default="`
	SMTPPassword string `env:"SMTP_PASSWORD,default="`
	SMTPFrom     string `env:"SMTP_FROM,default=EquiLearn <no-reply@equilearn.org>"`
}

// Load reads .env if present, then decodes the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) KafkaBrokerList() []string {
	if c.KafkaBrokers == "" {
		return nil
	}
	parts := strings.Split(c.KafkaBrokers, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
